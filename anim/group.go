package anim

import (
	"time"

	"github.com/lixenwraith/connect-four/engine"
	"github.com/lixenwraith/connect-four/vmath"
)

// Group renders several primitives as one effect
// Each member keeps its own window, so staggered intros give staggered removals
type Group struct {
	members []*Timed
}

// NewGroup creates a group over the given members
func NewGroup(members ...*Timed) *Group {
	return &Group{members: members}
}

// Add appends a member
func (g *Group) Add(m *Timed) {
	g.members = append(g.members, m)
}

// Members returns the members in render order
func (g *Group) Members() []*Timed {
	return g.members
}

// Len returns the member count
func (g *Group) Len() int {
	return len(g.members)
}

// Render advances and draws every member
func (g *Group) Render(now time.Time, r Renderer, skip bool) {
	for _, m := range g.members {
		m.Render(now, r, skip)
	}
}

// BeginRemove starts the same removal duration on every member
func (g *Group) BeginRemove(d time.Duration) {
	for _, m := range g.members {
		m.BeginRemove(d)
	}
}

// Done reports every member has finished removal
func (g *Group) Done() bool {
	for _, m := range g.members {
		if !m.Done() {
			return false
		}
	}
	return true
}

// Settled reports no member is still playing its intro
func (g *Group) Settled() bool {
	for _, m := range g.members {
		if m.Phase() == PhaseAppearing {
			return false
		}
	}
	return true
}

// Cross stroke angles in degrees
const (
	crossAngleA = 40
	crossAngleB = 50
)

// NewCross builds a two-stroke cross centered on center with half-length length
// The second stroke starts stagger after the first
func NewCross(clock engine.TimeProvider, center vmath.Vec2, length float64, opts Options, stagger time.Duration) *Group {
	points := [4]vmath.Vec2{
		vmath.V2(-length, 0),
		vmath.V2(length, 0),
		vmath.V2(0, length),
		vmath.V2(0, -length),
	}
	for i := 0; i < 2; i++ {
		points[i] = vmath.V2Add(vmath.V2Rotate(points[i], crossAngleA), center)
		points[i+2] = vmath.V2Add(vmath.V2Rotate(points[i+2], crossAngleB), center)
	}

	g := NewGroup()
	for i := 0; i < len(points); i += 2 {
		stroke := opts
		stroke.Delay = opts.Delay + time.Duration(i/2)*stagger
		g.Add(NewLine(clock, points[i], points[i+1], stroke))
	}
	return g
}
