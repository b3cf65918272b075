// Package report summarizes a generated layout.
package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/samdwyer/dungen/internal/world"
)

// Summary describes the rooms and tiles of one layout.
type Summary struct {
	Rooms      int
	AreaMean   float64
	AreaMedian float64
	AreaMax    float64
	AreaTotal  float64
	FloorCells int
	WallCells  int
	SpaceCells int
	// Coverage is the share of board cells covered by rooms, walls included.
	Coverage float64
}

// Summarize computes a Summary for board.
func Summarize(board *world.Board) (Summary, error) {
	s := Summary{Rooms: board.RoomCount()}

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			switch board.GetTile(x, y) {
			case world.TileFloor:
				s.FloorCells++
			case world.TileWall:
				s.WallCells++
			case world.TileSpace:
				s.SpaceCells++
			}
		}
	}

	if s.Rooms == 0 {
		return s, nil
	}

	areas := make(stats.Float64Data, 0, s.Rooms)
	for _, r := range board.Rooms() {
		areas = append(areas, float64(r.Width*r.Height))
	}

	var err error
	if s.AreaMean, err = areas.Mean(); err != nil {
		return s, fmt.Errorf("room area mean: %w", err)
	}
	if s.AreaMedian, err = areas.Median(); err != nil {
		return s, fmt.Errorf("room area median: %w", err)
	}
	if s.AreaMax, err = areas.Max(); err != nil {
		return s, fmt.Errorf("room area max: %w", err)
	}
	if s.AreaTotal, err = areas.Sum(); err != nil {
		return s, fmt.Errorf("room area sum: %w", err)
	}
	if cells := board.Width * board.Height; cells > 0 {
		s.Coverage = s.AreaTotal / float64(cells)
	}

	return s, nil
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("rooms=%d area_mean=%.1f area_median=%.1f area_max=%.0f coverage=%.2f floor=%d wall=%d",
		s.Rooms, s.AreaMean, s.AreaMedian, s.AreaMax, s.Coverage, s.FloorCells, s.WallCells)
}
