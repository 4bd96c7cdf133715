package vmath

// Rect is an axis-aligned rectangle in pixel space
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// RectCenter returns the center point of the rect
func RectCenter(r Rect) Vec2 {
	return Vec2{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// RectContains checks if point is within rect, edges inclusive
// Inclusive edges mean a point on a shared boundary hits both neighbours;
// callers scanning left to right resolve it to the first
func RectContains(r Rect, p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// RectCentered builds a rect of the given size around center
func RectCentered(center Vec2, width, height float64) Rect {
	return Rect{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}
}
