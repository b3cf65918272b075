package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungen/internal/world"
)

func TestSummarizeEmptyBoard(t *testing.T) {
	s, err := Summarize(world.NewBoard(4, 3))
	require.NoError(t, err)

	assert.Zero(t, s.Rooms)
	assert.Equal(t, 12, s.FloorCells)
	assert.Zero(t, s.WallCells)
	assert.Zero(t, s.Coverage)
}

func TestSummarizeRooms(t *testing.T) {
	b := world.NewBoard(10, 10)
	b.AddRoom(world.NewRoom("a", 0, 0, 4, 4))
	b.AddRoom(world.NewRoom("b", 5, 5, 5, 5))
	b.AddRoom(world.NewRoom("c", 5, 0, 3, 3))

	s, err := Summarize(b)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Rooms)
	assert.InDelta(t, (16.0+25.0+9.0)/3, s.AreaMean, 1e-9)
	assert.InDelta(t, 16.0, s.AreaMedian, 1e-9)
	assert.InDelta(t, 25.0, s.AreaMax, 1e-9)
	assert.InDelta(t, 0.5, s.Coverage, 1e-9)
	// Walls: 12 + 16 + 8 perimeter cells.
	assert.Equal(t, 36, s.WallCells)
	assert.Equal(t, 64, s.FloorCells)
	assert.Zero(t, s.SpaceCells)
	assert.Contains(t, s.String(), "rooms=3")
}

func TestSummarizeGeneratedLayout(t *testing.T) {
	board, err := world.GenerateScatter(context.Background(),
		world.ScatterParams{Width: 40, Height: 40, DesiredRoomCount: 8}, world.NewRNG(3))
	require.NoError(t, err)

	s, err := Summarize(board)
	require.NoError(t, err)
	assert.Equal(t, board.RoomCount(), s.Rooms)
	assert.Equal(t, 40*40, s.FloorCells+s.WallCells+s.SpaceCells)
	assert.LessOrEqual(t, s.Coverage, 1.0)
}
