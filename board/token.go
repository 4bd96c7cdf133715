package board

import (
	"time"

	"github.com/lixenwraith/connect-four/anim"
	"github.com/lucasb-eyer/go-colorful"
)

// Token is one placed piece, it owns its ring animation
type Token struct {
	player Player
	cell   Cell
	ring   *anim.Timed

	highlight colorful.Color

	blinking   bool
	blinkCount int
	blinkDur   time.Duration
	blinkStart time.Time

	waitAndRemove bool
	removeAt      time.Time
	removeDur     time.Duration
}

func newToken(player Player, cell Cell, ring *anim.Timed, highlight colorful.Color) *Token {
	return &Token{
		player:    player,
		cell:      cell,
		ring:      ring,
		highlight: highlight,
	}
}

// Blink starts count visible/highlighted cycles of dur each half
func (t *Token) Blink(now time.Time, count int, dur time.Duration) {
	if count <= 0 || dur <= 0 {
		return
	}
	t.blinking = true
	t.blinkCount = count
	t.blinkDur = dur
	t.blinkStart = now
}

// ScheduleRemove arms the removal animation to start once now passes at
func (t *Token) ScheduleRemove(at time.Time, d time.Duration) {
	t.waitAndRemove = true
	t.removeAt = at
	t.removeDur = d
}

// Render advances and draws the token
// Returns true on the frame its removal animation starts
func (t *Token) Render(now time.Time, r anim.Renderer) bool {
	started := false
	if t.waitAndRemove && now.After(t.removeAt) {
		t.waitAndRemove = false
		t.blinking = false
		t.ring.BeginRemove(t.removeDur)
		started = true
	}

	if !t.blinking {
		t.ring.Render(now, r, false)
		return started
	}

	t.ring.Advance(now, false)

	cycle := 2 * t.blinkDur
	elapsed := now.Sub(t.blinkStart)
	if elapsed >= cycle {
		n := int(elapsed / cycle)
		t.blinkCount -= n
		t.blinkStart = t.blinkStart.Add(time.Duration(n) * cycle)
		elapsed -= time.Duration(n) * cycle
		if t.blinkCount <= 0 {
			t.blinking = false
			t.blinkCount = 0
			t.ring.Draw(r)
			return started
		}
	}

	if elapsed < t.blinkDur {
		t.ring.Draw(r)
	} else {
		t.ring.DrawTinted(r, t.highlight)
	}
	return started
}

// Done reports the removal animation has finished
func (t *Token) Done() bool {
	return t.ring.Done()
}

func (t *Token) Player() Player { return t.player }
func (t *Token) Cell() Cell { return t.cell }
func (t *Token) Ring() *anim.Timed { return t.ring }
func (t *Token) Blinking() bool { return t.blinking }
func (t *Token) BlinkCount() int { return t.blinkCount }
func (t *Token) PendingRemoval() bool { return t.waitAndRemove }
