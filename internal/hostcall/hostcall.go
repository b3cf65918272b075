// Package hostcall exposes layout generation to a host that passes every
// parameter as a string and expects a JSON room list back.
package hostcall

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/samdwyer/dungen/internal/world"
)

// BSPRequest holds parsed BSP parameters and the seed actually used.
type BSPRequest struct {
	Params world.BSPParams
	Seed   int64
}

// ScatterRequest holds parsed scatter parameters and the seed actually used.
type ScatterRequest struct {
	Params world.ScatterParams
	Seed   int64
}

// ParseBSP parses string parameters for BSP generation.
// A minimum partition size below what the room minimums need is raised silently.
func ParseBSP(width, height, seed, minPartitionSize, minRoomWidth, minRoomHeight string) (BSPRequest, error) {
	var req BSPRequest
	var err error

	if req.Params.Width, err = parseInt("width", width); err != nil {
		return req, err
	}
	if req.Params.Height, err = parseInt("height", height); err != nil {
		return req, err
	}
	if req.Params.MinRoomWidth, err = parseInt("min room width", minRoomWidth); err != nil {
		return req, err
	}
	if req.Params.MinRoomHeight, err = parseInt("min room height", minRoomHeight); err != nil {
		return req, err
	}
	minSize, err := parseInt("min partition size", minPartitionSize)
	if err != nil {
		return req, err
	}
	req.Params.MinPartitionSize = max(minSize, world.MinPartitionFor(req.Params.MinRoomWidth, req.Params.MinRoomHeight))
	req.Seed = ParseSeed(seed)

	return req, nil
}

// ParseScatter parses string parameters for random room placement.
func ParseScatter(width, height, desiredRoomCount, seed string) (ScatterRequest, error) {
	var req ScatterRequest
	var err error

	if req.Params.Width, err = parseInt("width", width); err != nil {
		return req, err
	}
	if req.Params.Height, err = parseInt("height", height); err != nil {
		return req, err
	}
	if req.Params.DesiredRoomCount, err = parseInt("desired room count", desiredRoomCount); err != nil {
		return req, err
	}
	req.Seed = ParseSeed(seed)

	return req, nil
}

// ParseSeed parses a decimal seed, falling back to a random one when the
// value is empty or not an integer.
func ParseSeed(s string) int64 {
	seed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return rand.Int63()
	}
	return seed
}

// BSPGenerate runs BSP generation from string parameters and returns the
// JSON-encoded room list.
func BSPGenerate(ctx context.Context, width, height, seed, minPartitionSize, minRoomWidth, minRoomHeight string) (string, error) {
	req, err := ParseBSP(width, height, seed, minPartitionSize, minRoomWidth, minRoomHeight)
	if err != nil {
		return "", err
	}
	board, err := world.GenerateBSP(ctx, req.Params, world.NewRNG(req.Seed))
	if err != nil {
		return "", fmt.Errorf("bsp generate: %w", err)
	}
	return EncodeRooms(board.Rooms())
}

// RandomRoomGenerate runs random room placement from string parameters and
// returns the JSON-encoded room list.
func RandomRoomGenerate(ctx context.Context, width, height, desiredRoomCount, seed string) (string, error) {
	req, err := ParseScatter(width, height, desiredRoomCount, seed)
	if err != nil {
		return "", err
	}
	board, err := world.GenerateScatter(ctx, req.Params, world.NewRNG(req.Seed))
	if err != nil {
		return "", fmt.Errorf("random room generate: %w", err)
	}
	return EncodeRooms(board.Rooms())
}

// EncodeRooms serializes rooms in order. An empty list encodes as [].
func EncodeRooms(rooms []world.Room) (string, error) {
	if rooms == nil {
		rooms = []world.Room{}
	}
	data, err := json.Marshal(rooms)
	if err != nil {
		return "", fmt.Errorf("encoding rooms: %w", err)
	}
	return string(data), nil
}

// DecodeRooms parses a room list produced by EncodeRooms.
func DecodeRooms(data string) ([]world.Room, error) {
	var rooms []world.Room
	if err := json.Unmarshal([]byte(data), &rooms); err != nil {
		return nil, fmt.Errorf("decoding rooms: %w", err)
	}
	return rooms, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", name, s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("parsing %s %q: must not be negative", name, s)
	}
	return v, nil
}
