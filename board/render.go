package board

import (
	"time"

	"github.com/lixenwraith/connect-four/anim"
	"github.com/lixenwraith/connect-four/vmath"
)

// Render draws the round and drives token lifecycles
// Background, frame, slots and live tokens, fading tokens, then the hover preview
func (b *Board) Render(now time.Time, r anim.Renderer) {
	mid := vmath.RectCenter(b.bounds).Y
	r.DrawLine(
		vmath.V2(b.bounds.X, mid),
		vmath.V2(b.bounds.X+b.bounds.Width, mid),
		b.bounds.Height,
		b.palette.Board,
	)

	b.frame.Render(now, r, false)

	for row := range b.tokens {
		for col, tok := range b.tokens[row] {
			if tok == nil {
				r.DrawDisc(b.CellCenter(Cell{Row: row, Col: col}), b.board.TokenRadius, b.palette.Background)
				continue
			}
			if tok.Render(now, r) {
				b.beginTeardown(now)
			}
		}
	}

	kept := b.fading[:0]
	for _, tok := range b.fading {
		if tok.Render(now, r) {
			b.beginTeardown(now)
		}
		if !tok.Done() {
			kept = append(kept, tok)
		}
	}
	clear(b.fading[len(kept):])
	b.fading = kept

	if b.hover >= 0 && b.state == StatePlaying {
		center := b.CellCenter(Cell{Row: 0, Col: b.hover})
		center.Y -= b.gap
		r.DrawDisc(center, b.board.TokenRadius, b.PlayerColor(b.turn))
	}

	if b.teardown && b.state != StateExpired && now.After(b.teardownAt) {
		b.state = StateExpired
	}
}
