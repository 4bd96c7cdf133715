package render

import (
	"math"

	"github.com/lixenwraith/connect-four/anim"
	"github.com/lixenwraith/connect-four/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// View maps world coordinates, with the board centered on the origin, to canvas pixels
type View struct {
	Offset vmath.Vec2
}

// NewView centers the world origin on the canvas
func NewView(c *Canvas) View {
	return View{Offset: c.Center()}
}

// ToCanvas converts a world point to canvas pixels
func (v View) ToCanvas(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2Add(p, v.Offset)
}

// ToWorld converts canvas pixels to a world point
func (v View) ToWorld(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2Sub(p, v.Offset)
}

// CellToWorld returns the world position of a terminal cell's center
func (v View) CellToWorld(x, y int) vmath.Vec2 {
	return v.ToWorld(CellCenter(x, y))
}

// WorldToCell returns the terminal cell containing a world point
func (v View) WorldToCell(p vmath.Vec2) (x, y int) {
	c := v.ToCanvas(p)
	return int(math.Floor(c.X)), int(math.Floor(c.Y / 2))
}

// Translated draws world-space primitives onto a canvas-space renderer
type Translated struct {
	Target anim.Renderer
	View   View
}

func (t Translated) DrawLine(a, b vmath.Vec2, width float64, c colorful.Color) {
	t.Target.DrawLine(t.View.ToCanvas(a), t.View.ToCanvas(b), width, c)
}

func (t Translated) DrawDisc(center vmath.Vec2, radius float64, c colorful.Color) {
	t.Target.DrawDisc(t.View.ToCanvas(center), radius, c)
}
