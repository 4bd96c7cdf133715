// Package game ties rounds, scoring, input and sound together around the board.
package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/connect-four/anim"
	"github.com/lixenwraith/connect-four/audio"
	"github.com/lixenwraith/connect-four/board"
	"github.com/lixenwraith/connect-four/config"
	"github.com/lixenwraith/connect-four/engine"
	"github.com/lixenwraith/connect-four/vmath"
	"go.uber.org/zap"
)

// SoundPlayer receives effect cues, implemented by audio.SoundManager
type SoundPlayer interface {
	Play(audio.SoundType)
}

type muted struct{}

func (muted) Play(audio.SoundType) {}

// Params configures a session, nil fields get silent or default implementations
type Params struct {
	Clock   *engine.PausableClock
	Config  *config.Config
	Palette config.Palette
	Sound   SoundPlayer
	Logger  *zap.Logger
}

// Status is a read-only snapshot for the HUD
type Status struct {
	Turn   board.Player
	Winner board.Player // set while a won round is clearing
	Score  board.Score
	State  board.State
	Round  uuid.UUID
	Moves  int
	Paused bool
}

// Layout places session elements in world space, the board is centered on the origin
type Layout struct {
	Board           vmath.Rect
	Indicators      [2]vmath.Vec2 // player one, player two
	IndicatorRadius float64
	Gap             float64
}

// Session is the top-level controller, one per program run
type Session struct {
	clock   *engine.PausableClock
	cfg     *config.Config
	palette config.Palette
	sound   SoundPlayer
	base    *zap.Logger
	log     *zap.Logger

	score  board.Score
	board  *board.Board
	round  uuid.UUID
	rounds int
	winner board.Player

	layout     Layout
	indicators [2]anim.Animation
}

// New creates a session and starts the first round
func New(p Params) *Session {
	s := &Session{
		clock:   p.Clock,
		cfg:     p.Config,
		palette: p.Palette,
		sound:   p.Sound,
		base:    p.Logger,
	}
	if s.clock == nil {
		s.clock = engine.NewPausableClock()
	}
	if s.cfg == nil {
		s.cfg = config.Default()
		s.palette = s.cfg.MustPalette()
	}
	if s.sound == nil {
		s.sound = muted{}
	}
	if s.base == nil {
		s.base = zap.NewNop()
	}

	b := s.cfg.Board
	s.layout = Layout{
		Board:           vmath.RectCentered(vmath.Vec2{}, b.Width(), b.Height()),
		IndicatorRadius: b.IndicatorRadius,
		Gap:             b.Gap,
	}
	side := b.Width()/2 + 0.75*b.Gap
	s.layout.Indicators[0] = vmath.V2(-side, -b.Gap/4)
	s.layout.Indicators[1] = vmath.V2(side, -b.Gap/4)

	for i, player := range []board.Player{board.PlayerOne, board.PlayerTwo} {
		color := s.palette.PlayerOne
		if player == board.PlayerTwo {
			color = s.palette.PlayerTwo
		}
		s.indicators[i] = anim.NewRing(s.clock, s.layout.Indicators[i], b.IndicatorRadius, anim.Options{
			Duration: s.cfg.Timing.Indicator,
			Color:    color,
			Easing:   s.cfg.Timing.EasingFunc(),
		})
	}

	s.newRound()
	return s
}

func (s *Session) newRound() {
	s.round = uuid.New()
	s.rounds++
	s.winner = board.Empty
	s.log = s.base.With(zap.String("round", s.round.String()))

	s.board = board.New(board.Params{
		Clock:   s.clock,
		Config:  s.cfg,
		Palette: s.palette,
		Score:   &s.score,
	})

	s.log.Info("round started",
		zap.Int("number", s.rounds),
		zap.Int("rows", s.board.Rows()),
		zap.Int("cols", s.board.Cols()),
	)
}

// Click handles a pointer release at world point p
func (s *Session) Click(p vmath.Vec2) board.Outcome {
	if s.clock.IsPaused() {
		return board.OutcomeRejected
	}
	col, ok := s.board.ColumnAt(p)
	if !ok {
		return board.OutcomeRejected
	}
	return s.play(col)
}

// Hover updates the column preview under world point p
func (s *Session) Hover(p vmath.Vec2) {
	if s.clock.IsPaused() {
		s.board.ClearHover()
		return
	}
	s.board.SetHover(p)
}

// PlayColumn places for the current player, used by keyboard input
func (s *Session) PlayColumn(col int) board.Outcome {
	if s.clock.IsPaused() {
		return board.OutcomeRejected
	}
	return s.play(col)
}

func (s *Session) play(col int) board.Outcome {
	player := s.board.Turn()
	out := s.board.Play(col)

	switch out {
	case board.OutcomePlaced:
		s.sound.Play(audio.SoundDrop)
		s.log.Debug("token placed",
			zap.Stringer("player", player),
			zap.Int("col", col),
			zap.Int("moves", s.board.Moves()),
		)

	case board.OutcomePlacedAndWon:
		s.winner = player
		s.sound.Play(audio.SoundWin)
		s.log.Info("round won",
			zap.Stringer("player", player),
			zap.Int("col", col),
			zap.Any("cells", s.board.WinningCells()),
			zap.Ints("score", s.score[:]),
		)

	case board.OutcomePlacedAndTied:
		s.sound.Play(audio.SoundTie)
		s.log.Info("round tied", zap.Ints("score", s.score[:]))

	case board.OutcomeInvalidFullColumn:
		s.sound.Play(audio.SoundInvalid)
		s.log.Debug("column full", zap.Int("col", col))

	case board.OutcomeRejected:
		s.log.Debug("placement rejected",
			zap.Int("col", col),
			zap.Stringer("state", s.board.State()),
		)
	}
	return out
}

// Reset clears the board without waiting and zeroes the score
func (s *Session) Reset() {
	if s.clock.IsPaused() {
		return
	}
	cleared := s.board.ScheduleReset(false)
	s.score.Reset()
	s.sound.Play(audio.SoundReset)
	s.log.Info("manual reset", zap.Bool("board_cleared", cleared))
}

// TogglePause freezes or resumes game time, returns the new paused state
func (s *Session) TogglePause() bool {
	paused := s.clock.Toggle()
	if paused {
		s.board.ClearHover()
	}
	s.log.Debug("pause toggled",
		zap.Bool("paused", paused),
		zap.Duration("paused_total", s.clock.GetTotalPauseDuration()),
	)
	return paused
}

// Frame replaces an expired board with a fresh round
func (s *Session) Frame(now time.Time) {
	if !s.board.Expired() {
		return
	}
	s.log.Info("round ended",
		zap.Stringer("winner", s.winner),
		zap.Ints("score", s.score[:]),
		zap.Time("at", now),
		zap.Time("wall", s.clock.RealTime()),
	)
	s.newRound()
}

// Render draws the board and the score indicators at the current game time
func (s *Session) Render(r anim.Renderer) {
	now := s.clock.Now()
	s.board.Render(now, r)
	for _, ind := range s.indicators {
		ind.Render(now, r, false)
	}
}

// Snapshot returns the state shown by the HUD
func (s *Session) Snapshot() Status {
	return Status{
		Turn:   s.board.Turn(),
		Winner: s.winner,
		Score:  s.score,
		State:  s.board.State(),
		Round:  s.round,
		Moves:  s.board.Moves(),
		Paused: s.clock.IsPaused(),
	}
}

// Now returns game time, frozen while paused
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

func (s *Session) Layout() Layout { return s.layout }
func (s *Session) Board() *board.Board { return s.board }
func (s *Session) Rounds() int { return s.rounds }
func (s *Session) Paused() bool { return s.clock.IsPaused() }
