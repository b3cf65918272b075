package world

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungen/internal/roomclass"
	"github.com/samdwyer/dungen/internal/telemetry"
)

// MaxScatterAttempts is how many consecutive rejected candidates are
// tolerated; the next rejection ends scattering.
const MaxScatterAttempts = 15

// ScatterParams tunes random room placement.
type ScatterParams struct {
	Width            int
	Height           int
	DesiredRoomCount int

	// Classes overrides the embedded room class table when set.
	Classes *roomclass.Registry
}

// Validate checks the board can be sampled.
func (p ScatterParams) Validate() error {
	if err := validateBoard(p.Width, p.Height); err != nil {
		return err
	}
	if p.DesiredRoomCount < 0 {
		return fmt.Errorf("%w: desired room count %d", ErrInvalidDimensions, p.DesiredRoomCount)
	}
	return nil
}

// GenerateScatter places rooms at random positions, rejecting any candidate
// that touches an accepted room. It may return fewer rooms than requested
// once the attempt budget runs out; that is not an error.
func GenerateScatter(ctx context.Context, p ScatterParams, rng *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	classes := p.Classes
	if classes == nil {
		classes = roomclass.MustLoadRegistry()
	}

	if w, h := classes.MaxSize(); p.Width < w || p.Height < h {
		slog.Debug("board smaller than largest room class, oversized candidates will be rejected",
			"width", p.Width, "height", p.Height, "class_width", w, "class_height", h)
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "layout.scatter")
	defer span.End()

	startTime := time.Now()
	board := NewBoard(p.Width, p.Height)

	failures, candidates := 0, 0
	for board.RoomCount() < p.DesiredRoomCount && failures <= MaxScatterAttempts {
		candidates++
		x := rng.Intn(p.Width)
		y := rng.Intn(p.Height)

		class := classes.Pick(rng)
		width, height := class.Width(), class.Height()

		// Clamp instead of rejecting; rooms drawn near the far edge slide back onto the board.
		if x+width > p.Width {
			x = p.Width - width
		}
		if y+height > p.Height {
			y = p.Height - height
		}

		room := NewRoom(fmt.Sprintf("ruin room: %d", board.RoomCount()), x, y, width, height)
		if !room.Within(p.Width, p.Height) || board.Intersects(room) {
			failures++
			continue
		}

		board.AddRoom(room)
		failures = 0
	}
	board.candidates = candidates

	slog.Debug("scatter layout generated",
		"width", p.Width,
		"height", p.Height,
		"desired", p.DesiredRoomCount,
		"rooms", board.RoomCount(),
		"candidates", candidates,
	)

	span.SetAttributes(
		attribute.Int("layout.width", p.Width),
		attribute.Int("layout.height", p.Height),
		attribute.Int("layout.desired_room_count", p.DesiredRoomCount),
		attribute.Int("layout.room_count", board.RoomCount()),
		attribute.Int("layout.candidates", candidates),
		attribute.Int("layout.rebuilds", board.Rebuilds()),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return board, nil
}
