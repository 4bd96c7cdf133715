package board

import (
	"time"

	"github.com/lixenwraith/connect-four/anim"
	"github.com/lixenwraith/connect-four/config"
	"github.com/lixenwraith/connect-four/engine"
	"github.com/lixenwraith/connect-four/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Params wires a board to its clock, configuration and score sink
type Params struct {
	Clock   engine.TimeProvider
	Config  *config.Config
	Palette config.Palette
	Score   *Score     // shared across rounds, created when nil
	Center  vmath.Vec2 // pixel center of the grid
}

// Board is one round: the grid, its tokens and the animated frame
type Board struct {
	clock   engine.TimeProvider
	board   config.BoardConfig
	timing  config.TimingConfig
	palette config.Palette
	score   *Score

	rows, cols int
	gap        float64
	bounds     vmath.Rect
	columns    []vmath.Rect // drop zones above the top row
	lanes      []vmath.Rect // drop zone plus the column below it

	grid    [][]Player
	tokens  [][]*Token
	fading  []*Token
	history []Cell
	frame   *anim.Group

	turn    Player
	state   State
	winning []Cell
	hover   int

	teardown   bool
	teardownAt time.Time
}

// New builds an empty board and starts its frame intro
func New(p Params) *Board {
	cfg := p.Config
	if cfg == nil {
		cfg = config.Default()
	}
	score := p.Score
	if score == nil {
		score = &Score{}
	}

	b := &Board{
		clock:   p.Clock,
		board:   cfg.Board,
		timing:  cfg.Timing,
		palette: p.Palette,
		score:   score,
		rows:    cfg.Board.Rows,
		cols:    cfg.Board.Cols,
		gap:     cfg.Board.Gap,
		turn:    PlayerOne,
		state:   StatePlaying,
		hover:   -1,
	}
	b.bounds = vmath.RectCentered(p.Center, cfg.Board.Width(), cfg.Board.Height())

	b.grid = make([][]Player, b.rows)
	b.tokens = make([][]*Token, b.rows)
	for r := range b.grid {
		b.grid[r] = make([]Player, b.cols)
		b.tokens[r] = make([]*Token, b.cols)
	}

	b.columns = make([]vmath.Rect, b.cols)
	b.lanes = make([]vmath.Rect, b.cols)
	for c := range b.columns {
		zone := vmath.Rect{
			X:      b.bounds.X + float64(c)*b.gap,
			Y:      b.bounds.Y - b.gap,
			Width:  b.gap,
			Height: b.gap,
		}
		b.columns[c] = zone
		zone.Height += b.bounds.Height
		b.lanes[c] = zone
	}

	b.frame = b.buildFrame()
	return b
}

func (b *Board) buildFrame() *anim.Group {
	left, top := b.bounds.X, b.bounds.Y
	right, bottom := left+b.bounds.Width, top+b.bounds.Height

	opts := anim.Options{
		Color:  b.palette.Grid,
		Width:  b.board.LineWidth,
	}

	corners := [4]vmath.Vec2{
		vmath.V2(left, top),
		vmath.V2(right, top),
		vmath.V2(right, bottom),
		vmath.V2(left, bottom),
	}
	g := anim.NewGroup()
	for i := range corners {
		o := opts
		o.Duration = b.timing.Outline + time.Duration(i)*b.timing.OutlineStagger
		g.Add(anim.NewLine(b.clock, corners[i], corners[(i+1)%len(corners)], o))
	}

	o := opts
	o.Duration = b.timing.Grid
	for c := 1; c < b.cols; c++ {
		x := left + float64(c)*b.gap
		g.Add(anim.NewLine(b.clock, vmath.V2(x, top), vmath.V2(x, bottom), o))
	}
	for r := 1; r < b.rows; r++ {
		y := top + float64(r)*b.gap
		g.Add(anim.NewLine(b.clock, vmath.V2(left, y), vmath.V2(right, y), o))
	}
	return g
}

// HitTestColumn returns the first column whose drop zone, the gap-sized
// square above its top cell, contains p
func (b *Board) HitTestColumn(p vmath.Vec2) (int, bool) {
	return firstContaining(b.columns, p)
}

// ColumnAt resolves a pointer to a column, through the full lane when
// FullColumnClick is set and through HitTestColumn otherwise
func (b *Board) ColumnAt(p vmath.Vec2) (int, bool) {
	if b.board.FullColumnClick {
		return firstContaining(b.lanes, p)
	}
	return b.HitTestColumn(p)
}

func firstContaining(rects []vmath.Rect, p vmath.Vec2) (int, bool) {
	for c, rect := range rects {
		if vmath.RectContains(rect, p) {
			return c, true
		}
	}
	return -1, false
}

// LowestOpenRow returns the bottom-most empty row of col
func (b *Board) LowestOpenRow(col int) (int, bool) {
	if col < 0 || col >= b.cols {
		return -1, false
	}
	for r := b.rows - 1; r >= 0; r-- {
		if b.grid[r][col] == Empty {
			return r, true
		}
	}
	return -1, false
}

// Play places for the player whose turn it is
func (b *Board) Play(col int) Outcome {
	return b.Place(col, b.turn)
}

// Place drops a token for player into col
// Win is checked before tie, so a winning move that fills the board scores
func (b *Board) Place(col int, player Player) Outcome {
	if b.state != StatePlaying || col < 0 || col >= b.cols || player == Empty {
		return OutcomeRejected
	}
	row, ok := b.LowestOpenRow(col)
	if !ok {
		return OutcomeInvalidFullColumn
	}

	cell := Cell{Row: row, Col: col}
	b.grid[row][col] = player
	b.tokens[row][col] = b.newToken(player, cell)
	b.history = append(b.history, cell)

	outcome := OutcomePlaced
	if cells, won := b.CheckWin(row, col); won {
		b.highlight(cells)
		b.winning = cells
		b.score.Add(player)
		b.state = StateWon
		b.ScheduleReset(true)
		outcome = OutcomePlacedAndWon
	} else if b.topRowFull() {
		b.state = StateTied
		b.ScheduleReset(true)
		outcome = OutcomePlacedAndTied
	}

	b.turn = b.turn.Other()
	b.hover = -1
	return outcome
}

func (b *Board) newToken(player Player, cell Cell) *Token {
	ring := anim.NewRing(b.clock, b.CellCenter(cell), b.board.TokenRadius, anim.Options{
		Duration:     b.timing.TokenDrop,
		Color:        b.PlayerColor(player),
		Background:   b.palette.Background,
		Width:        b.board.TokenStroke,
		Easing:       b.timing.EasingFunc(),
		DropDistance: float64(b.rows) * b.gap,
	})
	return newToken(player, cell, ring, b.palette.Highlight)
}

func (b *Board) highlight(cells []Cell) {
	now := b.clock.Now()
	for _, c := range cells {
		if tok := b.tokens[c.Row][c.Col]; tok != nil {
			tok.Blink(now, b.timing.BlinkCount, b.timing.BlinkDuration)
		}
	}
}

func (b *Board) topRowFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.grid[0][c] == Empty {
			return false
		}
	}
	return true
}

// ScheduleReset queues every live token for removal and clears the grid
// With wait the removal starts after the win blink has played out
// Returns false when there was nothing to clear
func (b *Board) ScheduleReset(wait bool) bool {
	if len(b.history) == 0 {
		return false
	}

	now := b.clock.Now()
	at := now
	if wait {
		at = now.Add(2 * time.Duration(b.timing.BlinkCount) * b.timing.BlinkDuration)
	}

	for r := range b.tokens {
		for c, tok := range b.tokens[r] {
			if tok == nil {
				continue
			}
			tok.ScheduleRemove(at, b.timing.Remove)
			b.fading = append(b.fading, tok)
			b.tokens[r][c] = nil
			b.grid[r][c] = Empty
		}
	}
	b.history = b.history[:0]
	b.hover = -1

	if b.state == StatePlaying {
		b.state = StateResetting
	}
	return true
}

// beginTeardown schedules the frame expiry once, on the first token removal
func (b *Board) beginTeardown(now time.Time) {
	if b.teardown {
		return
	}
	b.teardown = true
	b.teardownAt = now.Add(b.timing.TeardownDelay)
	if b.state == StateWon || b.state == StateTied || b.state == StatePlaying {
		b.state = StateResetting
	}
	if b.timing.AnimateTeardown {
		b.frame.BeginRemove(b.timing.TeardownDelay)
	}
}

// SetHover previews the column under p, cleared when off-board or unplayable
func (b *Board) SetHover(p vmath.Vec2) {
	b.hover = -1
	if b.state != StatePlaying {
		return
	}
	col, ok := b.ColumnAt(p)
	if !ok {
		return
	}
	if _, open := b.LowestOpenRow(col); open {
		b.hover = col
	}
}

// ClearHover drops the preview
func (b *Board) ClearHover() {
	b.hover = -1
}

// CellCenter returns the pixel center of a grid cell
func (b *Board) CellCenter(c Cell) vmath.Vec2 {
	return vmath.V2(
		b.bounds.X+(float64(c.Col)+0.5)*b.gap,
		b.bounds.Y+(float64(c.Row)+0.5)*b.gap,
	)
}

// PlayerColor maps a player to its palette color
func (b *Board) PlayerColor(p Player) colorful.Color {
	if p == PlayerTwo {
		return b.palette.PlayerTwo
	}
	return b.palette.PlayerOne
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }
func (b *Board) Bounds() vmath.Rect { return b.bounds }
func (b *Board) Turn() Player { return b.turn }
func (b *Board) State() State { return b.state }
func (b *Board) Score() *Score { return b.score }
func (b *Board) Moves() int { return len(b.history) }
func (b *Board) FadingCount() int { return len(b.fading) }
func (b *Board) Hover() int { return b.hover }
func (b *Board) Frame() *anim.Group { return b.frame }
func (b *Board) Expired() bool { return b.state == StateExpired }

// SetTurn overrides the mover, Empty is ignored
func (b *Board) SetTurn(p Player) {
	if p != Empty {
		b.turn = p
	}
}

// Cell returns the owner of (row, col), Empty when out of range
func (b *Board) Cell(row, col int) Player {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.grid[row][col]
}

// TokenAt returns the live token at (row, col)
func (b *Board) TokenAt(row, col int) *Token {
	if !b.inBounds(row, col) {
		return nil
	}
	return b.tokens[row][col]
}

// WinningCells returns a copy of the last winning line
func (b *Board) WinningCells() []Cell {
	return append([]Cell(nil), b.winning...)
}

// History returns placements of the current round in order
func (b *Board) History() []Cell {
	return append([]Cell(nil), b.history...)
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}
