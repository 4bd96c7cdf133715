// Package render rasterizes animation primitives into a pixel buffer and
// flushes it to a terminal using upper half blocks, two pixels per cell.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/connect-four/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// HalfBlock is drawn in every flushed cell: foreground is the top pixel
const HalfBlock = '▀'

// Canvas is a pixel buffer sized to a terminal, pixel (x, y) lives in cell (x, y/2)
// Pixels are sampled at their centers (x+0.5, y+0.5)
type Canvas struct {
	width, height int
	pixels        []RGB
	background    RGB
}

// NewCanvas creates a canvas for a cols x rows terminal
func NewCanvas(cols, rows int, background colorful.Color) *Canvas {
	c := &Canvas{background: FromColorful(background)}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates for a new terminal size and clears
func (c *Canvas) Resize(cols, rows int) {
	c.width = max(cols, 0)
	c.height = max(rows, 0) * 2
	c.pixels = make([]RGB, c.width*c.height)
	c.Clear()
}

// Size returns the pixel dimensions
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Cells returns the terminal dimensions
func (c *Canvas) Cells() (cols, rows int) {
	return c.width, c.height / 2
}

// Center returns the center of the middle pixel
// Shapes anchored here with integer offsets land on pixel centers
func (c *Canvas) Center() vmath.Vec2 {
	return vmath.V2(float64(c.width/2)+0.5, float64(c.height/2)+0.5)
}


// Clear fills every pixel with the background color
func (c *Canvas) Clear() {
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = c.background
	// Exponential copy
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel at (x, y), black when out of bounds
func (c *Canvas) At(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return c.pixels[y*c.width+x]
}

// Set writes one pixel, out-of-bounds writes are dropped
func (c *Canvas) Set(x, y int, col RGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = col
}

// clipRange converts a float span to inclusive pixel indices within [0, limit)
func clipRange(lo, hi float64, limit int) (int, int) {
	return max(int(math.Floor(lo)), 0), min(int(math.Ceil(hi)), limit-1)
}

// DrawDisc fills pixels whose centers lie within radius of center
func (c *Canvas) DrawDisc(center vmath.Vec2, radius float64, col colorful.Color) {
	if radius <= 0 {
		return
	}
	rgb := FromColorful(col)
	r2 := radius * radius

	x0, x1 := clipRange(center.X-radius, center.X+radius, c.width)
	y0, y1 := clipRange(center.Y-radius, center.Y+radius, c.height)
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		row := y * c.width
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			if dx*dx+dy*dy <= r2 {
				c.pixels[row+x] = rgb
			}
		}
	}
}

// DrawLine fills a butt-capped stroke of the given width from a to b
// Widths under one pixel are drawn one pixel wide, zero-length lines draw nothing
func (c *Canvas) DrawLine(a, b vmath.Vec2, width float64, col colorful.Color) {
	if a == b {
		return
	}
	rgb := FromColorful(col)
	half := max(width, 1) / 2
	h2 := half * half

	x0, x1 := clipRange(min(a.X, b.X)-half, max(a.X, b.X)+half, c.width)
	y0, y1 := clipRange(min(a.Y, b.Y)-half, max(a.Y, b.Y)+half, c.height)
	for y := y0; y <= y1; y++ {
		row := y * c.width
		for x := x0; x <= x1; x++ {
			p := vmath.V2(float64(x)+0.5, float64(y)+0.5)
			d2, t := vmath.SegmentDistSq(p, a, b)
			if t >= 0 && t <= 1 && d2 <= h2 {
				c.pixels[row+x] = rgb
			}
		}
	}
}

// Dim blends every pixel toward black, alpha 1 is fully black
func (c *Canvas) Dim(alpha float64) {
	if alpha <= 0 {
		return
	}
	for i, p := range c.pixels {
		c.pixels[i] = Blend(p, RGBBlack, alpha)
	}
}

// Flush writes the buffer to screen as half blocks, it does not call Show
func (c *Canvas) Flush(s tcell.Screen) {
	cols, rows := c.Cells()
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * c.width
		bottom := top + c.width
		for x := 0; x < cols; x++ {
			s.SetContent(x, cy, HalfBlock, nil, HalfBlockStyle(c.pixels[top+x], c.pixels[bottom+x]))
		}
	}
}

// CellCenter maps terminal cell (x, y) to the pixel-space center of the cell
func CellCenter(x, y int) vmath.Vec2 {
	return vmath.V2(float64(x)+0.5, float64(2*y)+1)
}
