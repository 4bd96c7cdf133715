package anim

import (
	"time"

	"github.com/lixenwraith/connect-four/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Renderer is the drawing surface consumed by primitives
type Renderer interface {
	DrawLine(a, b vmath.Vec2, width float64, c colorful.Color)
	DrawDisc(center vmath.Vec2, radius float64, c colorful.Color)
}

// Animation is implemented by Timed and Group
type Animation interface {
	Render(now time.Time, r Renderer, skip bool)
	BeginRemove(d time.Duration)
	Done() bool
}
