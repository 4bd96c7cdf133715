package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Button is a one-line clickable label
type Button struct {
	Label string
	X, Y  int
}

// Width returns the label's display width
func (b Button) Width() int {
	return TextWidth(b.Label)
}

// Contains reports whether cell (x, y) is on the button
func (b Button) Contains(x, y int) bool {
	return y == b.Y && x >= b.X && x < b.X+b.Width()
}

// Draw paints the button with solid colors
func (b Button) Draw(s tcell.Screen, fg, bg tcell.Color) {
	FillRow(s, b.X, b.Y, b.Width(), bg)
	DrawText(s, b.X, b.Y, b.Label, fg)
}
