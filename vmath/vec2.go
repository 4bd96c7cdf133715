package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in canvas pixel space
// Y grows downward, matching screen rows
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns the euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(b, a))
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2ScaleToLength keeps direction and sets magnitude, zero vectors stay zero
func V2ScaleToLength(v Vec2, length float64) Vec2 {
	return V2Scale(V2Normalize(v), length)
}

// V2Rotate rotates v by deg degrees (clockwise on screen since Y points down)
func V2Rotate(v Vec2, deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// SegmentDistSq returns the squared distance from p to segment ab
// and the normalized projection of p onto ab (unclamped)
func SegmentDistSq(p, a, b Vec2) (distSq, t float64) {
	ab := V2Sub(b, a)
	lenSq := V2MagSq(ab)
	if lenSq == 0 {
		return V2MagSq(V2Sub(p, a)), 0
	}
	t = V2Dot(V2Sub(p, a), ab) / lenSq
	closest := V2Add(a, V2Scale(ab, t))
	return V2MagSq(V2Sub(p, closest)), t
}
