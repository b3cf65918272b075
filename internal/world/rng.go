package world

import (
	"errors"
	"fmt"
	"math/rand"
)

// MaxDimension caps board width and height. The full grid,
// MaxDimension*MaxDimension cells, fits in an int on 32-bit platforms too.
const MaxDimension = 4096

var (
	// ErrInvalidDimensions is returned when a board or room size cannot hold a layout.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrPartitionTooSmall is returned when the minimum partition size cannot
	// contain a minimum room plus its wall.
	ErrPartitionTooSmall = errors.New("minimum partition size too small for minimum room")
)

// NewRNG returns the random source for one generation run.
// Each run must own its own source; draw order determines the layout.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// validateBoard checks a board size before any grid is allocated.
func validateBoard(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: board %dx%d exceeds %dx%d",
			ErrInvalidDimensions, width, height, MaxDimension, MaxDimension)
	}
	return nil
}
