package board

import "github.com/lixenwraith/connect-four/config"

// Win directions in check order: horizontal, vertical, rising, falling
var directions = [4]Cell{
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 1, Col: 1},
}

// CheckWin looks for a run of WinLength through (row, col)
// The reported window is the first along the run that contains the cell
func (b *Board) CheckWin(row, col int) ([]Cell, bool) {
	if !b.inBounds(row, col) {
		return nil, false
	}
	player := b.grid[row][col]
	if player == Empty {
		return nil, false
	}

	for _, d := range directions {
		// Walk back to the start of the run
		r, c, k := row, col, 0
		for b.Cell(r-d.Row, c-d.Col) == player {
			r -= d.Row
			c -= d.Col
			k++
		}

		var run []Cell
		for b.inBounds(r, c) && b.grid[r][c] == player {
			run = append(run, Cell{Row: r, Col: c})
			r += d.Row
			c += d.Col
		}
		if len(run) < config.WinLength {
			continue
		}

		start := min(max(0, k-(config.WinLength-1)), len(run)-config.WinLength)
		return append([]Cell(nil), run[start:start+config.WinLength]...), true
	}
	return nil, false
}
