package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV2Basics(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, 1)

	assert.Equal(t, V2(4, 5), V2Add(a, b))
	assert.Equal(t, V2(2, 3), V2Sub(a, b))
	assert.Equal(t, V2(6, 8), V2Scale(a, 2))
	assert.InDelta(t, 5.0, V2Mag(a), 1e-9)
	assert.InDelta(t, 5.0, V2Dist(V2(0, 0), a), 1e-9)
}

func TestV2NormalizeZeroSafe(t *testing.T) {
	assert.Equal(t, Vec2{}, V2Normalize(Vec2{}))

	n := V2Normalize(V2(0, -7))
	assert.InDelta(t, 0.0, n.X, 1e-9)
	assert.InDelta(t, -1.0, n.Y, 1e-9)
}

func TestV2ScaleToLength(t *testing.T) {
	v := V2ScaleToLength(V2(10, 0), 2.5)
	assert.InDelta(t, 2.5, v.X, 1e-9)
	assert.InDelta(t, 0.0, v.Y, 1e-9)

	assert.Equal(t, Vec2{}, V2ScaleToLength(Vec2{}, 5))
}

func TestV2Rotate(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Vec2
	}{
		{"Zero", 0, V2(1, 0)},
		{"Quarter", 90, V2(0, 1)},
		{"Half", 180, V2(-1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2Rotate(V2(1, 0), tt.deg)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestSegmentDistSq(t *testing.T) {
	d, proj := SegmentDistSq(V2(5, 3), V2(0, 0), V2(10, 0))
	assert.InDelta(t, 9.0, d, 1e-9)
	assert.InDelta(t, 0.5, proj, 1e-9)

	d, proj = SegmentDistSq(V2(2, 2), V2(1, 1), V2(1, 1))
	assert.InDelta(t, 2.0, d, 1e-9)
	assert.Equal(t, 0.0, proj)
	assert.False(t, math.IsNaN(d))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 0, Width: 8, Height: 8}

	assert.True(t, RectContains(r, V2(14, 4)))
	assert.True(t, RectContains(r, V2(18, 8)), "edges are inclusive")
	assert.False(t, RectContains(r, V2(18.1, 4)))
	assert.False(t, RectContains(r, V2(9.9, 4)))

	assert.Equal(t, V2(14, 4), RectCenter(r))
	assert.Equal(t, r, RectCentered(V2(14, 4), 8, 8))
}
