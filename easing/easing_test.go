package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
	}{
		{NameLinear, Linear},
		{NameEaseOutQuart, EaseOutQuart},
		{NameEaseInOutQuart, EaseInOutQuart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0.0, tt.fn(0), 1e-12)
			assert.InDelta(t, 1.0, tt.fn(1), 1e-12)
		})
	}
}

func TestMonotonicOnUnitInterval(t *testing.T) {
	for _, fn := range []Func{Linear, EaseOutQuart, EaseInOutQuart} {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			cur := fn(float64(i) / 100)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	}
}

func TestKnownValues(t *testing.T) {
	assert.InDelta(t, 0.9375, EaseOutQuart(0.5), 1e-12)
	assert.InDelta(t, 0.5, EaseInOutQuart(0.5), 1e-12)
	assert.InDelta(t, 8*0.0625*0.0625, EaseInOutQuart(0.25), 1e-12)
	assert.InDelta(t, 1-0.0625*0.0625*8, EaseInOutQuart(0.75), 1e-12)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 0.4, Clamp01(0.4))
	assert.Equal(t, 1.0, Clamp01(1.7))
}

func TestByName(t *testing.T) {
	fn, ok := ByName(NameEaseOutQuart)
	assert.True(t, ok)
	assert.InDelta(t, EaseOutQuart(0.3), fn(0.3), 1e-12)

	_, ok = ByName("bounce")
	assert.False(t, ok)
}
