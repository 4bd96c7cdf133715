// Package easing maps normalized progress in [0,1] to eased progress.
// Functions are pure; callers clamp input beforehand.
package easing

import "math"

// Func shapes a normalized progress value
type Func func(x float64) float64

// Linear is the identity curve
func Linear(x float64) float64 {
	return x
}

// EaseOutQuart decelerates toward the end
func EaseOutQuart(x float64) float64 {
	return 1 - math.Pow(1-x, 4)
}

// EaseInOutQuart accelerates through the first half and decelerates through the second
func EaseInOutQuart(x float64) float64 {
	if x < 0.5 {
		return 8 * math.Pow(x, 4)
	}
	return 1 - math.Pow(-2*x+2, 4)/2
}

// Clamp01 limits x to [0,1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Names accepted by ByName
const (
	NameLinear         = "linear"
	NameEaseOutQuart   = "ease-out-quart"
	NameEaseInOutQuart = "ease-in-out-quart"
)

var byName = map[string]Func{
	NameLinear:         Linear,
	NameEaseOutQuart:   EaseOutQuart,
	NameEaseInOutQuart: EaseInOutQuart,
}

// ByName resolves a curve from its config name
func ByName(name string) (Func, bool) {
	fn, ok := byName[name]
	return fn, ok
}
