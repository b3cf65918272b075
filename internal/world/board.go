package world

import "strings"

// Board is a rasterized tile grid derived from an ordered room list.
// It is rebuilt from scratch after every inserted room.
type Board struct {
	Width  int
	Height int
	Tiles  [][]Tile

	rooms      []Room
	rebuilds   int
	candidates int
}

// NewBoard creates a board of the given size with every cell set to floor.
func NewBoard(width, height int) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		rooms:  make([]Room, 0),
	}
	b.rebuild()
	return b
}

// AddRoom appends a room and rebuilds the tile grid.
// Later rooms are drawn over earlier ones where they share cells.
func (b *Board) AddRoom(room Room) {
	b.rooms = append(b.rooms, room)
	b.rebuild()
}

// Rooms returns a copy of the accepted rooms in insertion order.
func (b *Board) Rooms() []Room {
	out := make([]Room, len(b.rooms))
	copy(out, b.rooms)
	return out
}

// RoomCount returns the number of accepted rooms.
func (b *Board) RoomCount() int {
	return len(b.rooms)
}

// Rebuilds returns how many times the grid has been rasterized.
func (b *Board) Rebuilds() int {
	return b.rebuilds
}

// Candidates returns how many placements random scattering tried,
// accepted or not. It is zero for boards that were not scattered.
func (b *Board) Candidates() int {
	return b.candidates
}

// GetTile returns the tile at the given position, or TileSpace when out of bounds.
func (b *Board) GetTile(x, y int) Tile {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return TileSpace
	}
	return b.Tiles[y][x]
}

// Intersects reports whether room touches or overlaps any accepted room.
func (b *Board) Intersects(room Room) bool {
	for _, other := range b.rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// String renders one digit per cell, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteString(b.Tiles[y][x].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// rebuild resets the grid to floor and rasterizes every room in order.
func (b *Board) rebuild() {
	b.rebuilds++

	tiles := make([][]Tile, b.Height)
	for y := range tiles {
		tiles[y] = make([]Tile, b.Width)
		for x := range tiles[y] {
			tiles[y][x] = TileFloor
		}
	}

	for _, room := range b.rooms {
		for row := 0; row < room.Height; row++ {
			for col := 0; col < room.Width; col++ {
				x, y := room.X+col, room.Y+row
				if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
					continue
				}
				if row == 0 || col == 0 || row == room.Height-1 || col == room.Width-1 {
					tiles[y][x] = TileWall
				} else {
					tiles[y][x] = TileFloor
				}
			}
		}
	}

	b.Tiles = tiles
}
