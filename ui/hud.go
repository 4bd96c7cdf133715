package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/connect-four/board"
	"github.com/lixenwraith/connect-four/config"
	"github.com/lixenwraith/connect-four/game"
	"github.com/lixenwraith/connect-four/render"
	"github.com/lixenwraith/connect-four/vmath"
)

// HelpLines is the rules text shown by the help panel
var HelpLines = []string{
	"Players take turns dropping colored tokens from the top.",
	"The tokens fall to the lowest available space in the column.",
	"The first player to get four tokens in a row (horizontally,",
	"vertically, or diagonally) wins the game!",
	"",
	"Click a column or press 1-9. r resets, p pauses, q quits.",
}

const (
	resetLabel = " Reset "
	helpLabel  = " ? "
	closeHint  = "Press ? to close"
	pauseText  = " Paused - press p to resume "
	keyHint    = "1-9 drop  r reset  p pause  ? help  q quit"
)

// PlayerName is the display name of a player's color
func PlayerName(p board.Player) string {
	if p == board.PlayerTwo {
		return "Red"
	}
	return "Orange"
}

// StatusText is the headline for a session snapshot
func StatusText(st game.Status) string {
	switch st.State {
	case board.StateWon:
		return PlayerName(st.Winner) + " Wins!"
	case board.StateTied:
		return "Tie Game"
	case board.StateResetting, board.StateExpired:
		if st.Winner != board.Empty {
			return PlayerName(st.Winner) + " Wins!"
		}
		return "New Round"
	default:
		return PlayerName(st.Turn) + " Turn"
	}
}

// HUD lays out and draws text chrome in cell coordinates
type HUD struct {
	palette config.Palette
	layout  game.Layout
	view    render.View

	cols, rows int
	status     vmath.Vec2 // cell anchor of the status line, X is the center column
	scores     [2]vmath.Vec2
	reset      Button
	help       Button
	showHelp   bool
}

// NewHUD creates a HUD for the session layout, call Resize before drawing
func NewHUD(palette config.Palette, layout game.Layout) *HUD {
	return &HUD{
		palette: palette,
		layout:  layout,
		reset:   Button{Label: resetLabel},
		help:    Button{Label: helpLabel},
	}
}

// Resize recomputes anchors for a new terminal size and view
func (h *HUD) Resize(view render.View, cols, rows int) {
	h.view = view
	h.cols = cols
	h.rows = rows

	b := h.layout.Board
	topX, topY := view.WorldToCell(vmath.V2(0, b.Y-h.layout.Gap))
	_, bottomY := view.WorldToCell(vmath.V2(0, b.Y+b.Height))

	h.status = vmath.V2(float64(topX), float64(topY-2))
	for i, c := range h.layout.Indicators {
		x, y := view.WorldToCell(vmath.V2(c.X, c.Y+h.layout.IndicatorRadius))
		h.scores[i] = vmath.V2(float64(x), float64(y+2))
	}

	h.reset.X = topX - h.reset.Width()/2
	h.reset.Y = bottomY + 2
	h.help.X = cols - h.help.Width() - 1
	h.help.Y = 0
}

// MinSize returns the smallest terminal that shows the whole layout
func (h *HUD) MinSize() (cols, rows int) {
	l := h.layout
	width := 2 * (l.Indicators[1].X + l.IndicatorRadius + 1)
	height := l.Board.Height + 2*l.Gap
	return int(width) + 1, int(height/2) + 8
}

// Draw paints the chrome over the flushed canvas
func (h *HUD) Draw(s tcell.Screen, st game.Status) {
	text := tc(h.palette.Text)
	button := tc(h.palette.Button)

	if minCols, minRows := h.MinSize(); h.cols < minCols || h.rows < minRows {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", minCols, minRows)
		DrawCentered(s, h.cols/2, 0, msg, text)
	}

	DrawCentered(s, int(h.status.X), int(h.status.Y), StatusText(st), h.statusColor(st))
	for i, p := range h.scores {
		DrawCentered(s, int(p.X), int(p.Y), strconv.Itoa(st.Score[i]), text)
	}

	h.reset.Draw(s, text, button)
	h.help.Draw(s, text, button)
	DrawCentered(s, h.cols/2, h.rows-1, keyHint, text)

	if st.Paused {
		_, y := h.view.WorldToCell(vmath.Vec2{})
		FillRow(s, h.cols/2-TextWidth(pauseText)/2, y, TextWidth(pauseText), button)
		DrawCentered(s, h.cols/2, y, pauseText, text)
	}

	if h.showHelp {
		h.drawHelp(s, text, button)
	}
}

func (h *HUD) statusColor(st game.Status) tcell.Color {
	p := st.Turn
	if st.Winner != board.Empty {
		p = st.Winner
	} else if st.State != board.StatePlaying {
		return tc(h.palette.Text)
	}
	if p == board.PlayerTwo {
		return tc(h.palette.PlayerTwo)
	}
	return tc(h.palette.PlayerOne)
}

func (h *HUD) drawHelp(s tcell.Screen, fg, bg tcell.Color) {
	width := TextWidth(closeHint)
	for _, l := range HelpLines {
		width = max(width, TextWidth(l))
	}
	width += 4
	height := len(HelpLines) + 4

	x := h.cols/2 - width/2
	y := h.rows/2 - height/2
	for i := 0; i < height; i++ {
		FillRow(s, x, y+i, width, bg)
	}
	for i, l := range HelpLines {
		DrawText(s, x+2, y+1+i, l, fg)
	}
	DrawCentered(s, h.cols/2, y+height-2, closeHint, fg)
}

// HitReset reports a click on the reset button
func (h *HUD) HitReset(x, y int) bool {
	return h.reset.Contains(x, y)
}

// HitHelp reports a click on the help button
func (h *HUD) HitHelp(x, y int) bool {
	return h.help.Contains(x, y)
}

// ToggleHelp flips the help panel, returns true when now shown
func (h *HUD) ToggleHelp() bool {
	h.showHelp = !h.showHelp
	return h.showHelp
}

// ShowingHelp reports whether the help panel is open
func (h *HUD) ShowingHelp() bool {
	return h.showHelp
}

func (h *HUD) ResetButton() Button { return h.reset }
func (h *HUD) HelpButton() Button { return h.help }
