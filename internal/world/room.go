package world

import "math"

// Room represents a rectangular room on the board.
// X2/Y2 and Center are derived at construction and serialized with the room.
type Room struct {
	ID     string `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	X2     int    `json:"x2"`
	Y2     int    `json:"y2"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Center Point  `json:"center"`
}

// NewRoom creates a room with its opposite corner and center filled in.
func NewRoom(id string, x, y, width, height int) Room {
	return Room{
		ID:     id,
		X:      x,
		Y:      y,
		X2:     x + width,
		Y2:     y + height,
		Width:  width,
		Height: height,
		Center: Point{X: x + width/2, Y: y + height/2},
	}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X2 && y >= r.Y && y < r.Y2
}

// Within reports whether the room lies entirely inside a width x height board.
func (r Room) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.X2 <= width && r.Y2 <= height
}

// Intersects returns true if this room overlaps or touches another room.
// Shared edges count, so rooms placed against each other are rejected.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X2 &&
		r.X2 >= other.X &&
		r.Y <= other.Y2 &&
		r.Y2 >= other.Y
}

// DistanceTo returns the Euclidean distance from the room center to p, truncated.
func (r Room) DistanceTo(p Point) int {
	dx := float64(p.X - r.Center.X)
	dy := float64(p.Y - r.Center.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}
