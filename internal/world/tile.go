// Package world provides the spatial model and layout generators for tile maps.
package world

// Tile is a single board cell code.
type Tile int

const (
	// TileSpace is empty space outside any structure.
	TileSpace Tile = 0
	// TileFloor is a walkable floor cell.
	TileFloor Tile = 1
	// TileWall is a room border cell.
	TileWall Tile = 2
)

// String returns the tile's numeric code as text.
func (t Tile) String() string {
	switch t {
	case TileSpace:
		return "0"
	case TileFloor:
		return "1"
	case TileWall:
		return "2"
	default:
		return "?"
	}
}
