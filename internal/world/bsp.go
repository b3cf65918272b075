package world

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungen/internal/telemetry"
)

// BSPParams tunes binary space partition generation.
type BSPParams struct {
	Width  int
	Height int

	// MinPartitionSize is the smallest cell edge a split may produce.
	// It must be at least max(MinRoomWidth, MinRoomHeight) + 1.
	MinPartitionSize int
	MinRoomWidth     int
	MinRoomHeight    int
}

// MinPartitionFor returns the smallest legal partition size for the given room minimums.
func MinPartitionFor(minRoomWidth, minRoomHeight int) int {
	return max(minRoomWidth, minRoomHeight) + 1
}

// Validate checks that every random range drawn during generation is non-empty.
func (p BSPParams) Validate() error {
	if err := validateBoard(p.Width, p.Height); err != nil {
		return err
	}
	if p.MinRoomWidth <= 0 || p.MinRoomHeight <= 0 {
		return fmt.Errorf("%w: minimum room %dx%d", ErrInvalidDimensions, p.MinRoomWidth, p.MinRoomHeight)
	}
	if p.MinRoomWidth > p.Width || p.MinRoomHeight > p.Height {
		return fmt.Errorf("%w: minimum room %dx%d does not fit board %dx%d",
			ErrInvalidDimensions, p.MinRoomWidth, p.MinRoomHeight, p.Width, p.Height)
	}
	if need := MinPartitionFor(p.MinRoomWidth, p.MinRoomHeight); p.MinPartitionSize < need {
		return fmt.Errorf("%w: got %d, need at least %d", ErrPartitionTooSmall, p.MinPartitionSize, need)
	}
	return nil
}

// Partition is a BSP tree over a board-sized rectangle.
type Partition struct {
	root *leaf
}

// NewPartition builds the tree and carves one room per terminal cell.
// Params must already be valid.
func NewPartition(p BSPParams, rng *rand.Rand) *Partition {
	root := newLeaf(0, 0, p.Width, p.Height, p.MinPartitionSize, p.MinRoomWidth, p.MinRoomHeight)
	root.generate(rng)
	root.createRooms(rng)
	return &Partition{root: root}
}

// FirstRoom returns the representative room of the whole tree, preferring the
// leftmost subtree that holds one.
func (p *Partition) FirstRoom() (Room, bool) {
	return p.root.firstRoom()
}

// Rooms returns every terminal cell's room and every node's corridors, in
// left-to-right traversal order.
func (p *Partition) Rooms() []Room {
	var rooms []Room
	p.root.walk(func(n *leaf) {
		if n.isLeaf() && n.room != nil {
			rooms = append(rooms, *n.room)
		}
		rooms = append(rooms, n.corridors...)
	})
	return rooms
}

// LeafCount returns the number of terminal cells.
func (p *Partition) LeafCount() int {
	return len(p.root.leaves())
}

// GenerateBSP lays out rooms by recursive binary space partition.
// Rooms never overlap because sibling cells are disjoint.
func GenerateBSP(ctx context.Context, p BSPParams, rng *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "layout.bsp")
	defer span.End()

	startTime := time.Now()

	board := NewBoard(p.Width, p.Height)
	partition := NewPartition(p, rng)
	for _, room := range partition.Rooms() {
		board.AddRoom(room)
	}

	attrs := []any{
		"width", p.Width,
		"height", p.Height,
		"leaves", partition.LeafCount(),
		"rooms", board.RoomCount(),
	}
	if first, ok := partition.FirstRoom(); ok {
		attrs = append(attrs, "first_room_center", first.Center)
	}
	slog.Debug("bsp layout generated", attrs...)

	span.SetAttributes(
		attribute.Int("layout.width", p.Width),
		attribute.Int("layout.height", p.Height),
		attribute.Int("layout.min_partition_size", p.MinPartitionSize),
		attribute.Int("layout.room_count", board.RoomCount()),
		attribute.Int("layout.rebuilds", board.Rebuilds()),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return board, nil
}
