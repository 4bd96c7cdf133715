package anim

import (
	"github.com/lixenwraith/connect-four/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// DrawCall is one primitive captured by Recorder
type DrawCall struct {
	Kind   Kind
	A, B   vmath.Vec2 // line endpoints, or disc center in A
	Width  float64
	Radius float64
	Color  colorful.Color
}

// Recorder is a Renderer that captures calls instead of drawing
// Used by tests to assert on rendered geometry
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) DrawLine(a, b vmath.Vec2, width float64, c colorful.Color) {
	r.Calls = append(r.Calls, DrawCall{Kind: KindLine, A: a, B: b, Width: width, Color: c})
}

func (r *Recorder) DrawDisc(center vmath.Vec2, radius float64, c colorful.Color) {
	r.Calls = append(r.Calls, DrawCall{Kind: KindRing, A: center, Radius: radius, Color: c})
}

// Reset drops captured calls, keeping capacity
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Discs returns only disc calls
func (r *Recorder) Discs() []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Kind == KindRing {
			out = append(out, c)
		}
	}
	return out
}

// Lines returns only line calls
func (r *Recorder) Lines() []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Kind == KindLine {
			out = append(out, c)
		}
	}
	return out
}
