package roomclass

// WallThickness is added on each side of a class's inner size.
const WallThickness = 1

// Class is a named room size with a selection weight.
// Inner dimensions exclude the surrounding wall.
type Class struct {
	ID          string `json:"id"`
	InnerWidth  int    `json:"innerWidth"`
	InnerHeight int    `json:"innerHeight"`
	Weight      int    `json:"weight"`
}

// Width returns the placed width including walls.
func (c Class) Width() int {
	return c.InnerWidth + 2*WallThickness
}

// Height returns the placed height including walls.
func (c Class) Height() int {
	return c.InnerHeight + 2*WallThickness
}
