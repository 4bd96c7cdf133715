// Package ui draws the text chrome around the board: status, scores, buttons and help.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/connect-four/render"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// DrawText writes text at (x, y) keeping each cell's background, returns the columns used
func DrawText(s tcell.Screen, x, y int, text string, fg tcell.Color) int {
	cols, rows := s.Size()
	if y < 0 || y >= rows {
		return 0
	}
	start := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= cols {
			_, _, style, _ := s.GetContent(x, y)
			_, bg, _ := style.Decompose()
			s.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		x += w
	}
	return x - start
}

// DrawCentered writes text centered on column cx
func DrawCentered(s tcell.Screen, cx, y int, text string, fg tcell.Color) int {
	return DrawText(s, cx-TextWidth(text)/2, y, text, fg)
}

// FillRow paints width cells from (x, y) with a solid background
func FillRow(s tcell.Screen, x, y, width int, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

func tc(c colorful.Color) tcell.Color {
	return render.RGBToTcell(render.FromColorful(c))
}
