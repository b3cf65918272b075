package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoomDerivedFields(t *testing.T) {
	r := NewRoom("test", 2, 3, 5, 4)

	assert.Equal(t, "test", r.ID)
	assert.Equal(t, 7, r.X2)
	assert.Equal(t, 7, r.Y2)
	assert.Equal(t, Point{X: 4, Y: 5}, r.Center)
}

func TestRoomIntersects(t *testing.T) {
	base := NewRoom("base", 10, 10, 5, 5) // x2=15, y2=15

	tests := []struct {
		name  string
		other Room
		want  bool
	}{
		{"overlapping", NewRoom("o", 12, 12, 5, 5), true},
		{"contained", NewRoom("o", 11, 11, 2, 2), true},
		{"touching right edge", NewRoom("o", 15, 10, 3, 3), true},
		{"touching bottom edge", NewRoom("o", 10, 15, 3, 3), true},
		{"touching corner", NewRoom("o", 15, 15, 2, 2), true},
		{"touching left edge", NewRoom("o", 7, 10, 3, 3), true},
		{"one column apart", NewRoom("o", 16, 10, 3, 3), false},
		{"one row apart above", NewRoom("o", 10, 6, 3, 3), false},
		{"far away", NewRoom("o", 40, 40, 3, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestRoomDistanceTo(t *testing.T) {
	r := NewRoom("r", 0, 0, 4, 4) // center (2,2)

	tests := []struct {
		name string
		p    Point
		want int
	}{
		{"center", Point{2, 2}, 0},
		{"3-4-5", Point{5, 6}, 5},
		{"truncated", Point{3, 3}, 1}, // sqrt(2)
		{"left of center", Point{0, 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.DistanceTo(tt.p))
		})
	}
}

func TestRoomContainsAndWithin(t *testing.T) {
	r := NewRoom("r", 1, 1, 3, 3)

	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(3, 3))
	assert.False(t, r.Contains(4, 1))
	assert.False(t, r.Contains(0, 2))

	assert.True(t, r.Within(4, 4))
	assert.False(t, r.Within(3, 4))
	assert.False(t, NewRoom("neg", -1, 0, 2, 2).Within(10, 10))
}
