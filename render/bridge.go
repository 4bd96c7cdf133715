package render

import "github.com/gdamore/tcell/v2"

// TcellToRGB converts tcell.Color to RGB
// ColorDefault maps to black
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGBBlack
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// HalfBlockStyle paints top as foreground and bottom as background of an upper half block
func HalfBlockStyle(top, bottom RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
}
