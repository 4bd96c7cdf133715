package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/connect-four/config"
	"github.com/lixenwraith/connect-four/engine"
	"github.com/lixenwraith/connect-four/game"
	"github.com/lixenwraith/connect-four/render"
	"github.com/lixenwraith/connect-four/ui"
	"go.uber.org/zap"
)

// dimAlpha darkens the board under the pause banner and help panel
const dimAlpha = 0.5

// app binds terminal input and output to a game session
type app struct {
	screen  tcell.Screen
	canvas  *render.Canvas
	view    render.View
	session *game.Session
	hud     *ui.HUD
	log     *zap.Logger

	// left button held on the previous mouse event, clicks fire on release
	pressed bool

	// last pointer cell, replayed each frame so the preview follows board changes
	pointerX, pointerY int
	hasPointer         bool
}

func newApp(screen tcell.Screen, cfg *config.Config, palette config.Palette, sound game.SoundPlayer, logger *zap.Logger, clock *engine.PausableClock) *app {
	cols, rows := screen.Size()
	a := &app{
		screen: screen,
		canvas: render.NewCanvas(cols, rows, palette.Background),
		log:    logger,
	}
	a.session = game.New(game.Params{
		Clock:   clock,
		Config:  cfg,
		Palette: palette,
		Sound:   sound,
		Logger:  logger,
	})
	a.hud = ui.NewHUD(palette, a.session.Layout())
	a.resize(cols, rows)
	return a
}

func (a *app) resize(cols, rows int) {
	a.canvas.Resize(cols, rows)
	a.view = render.NewView(a.canvas)
	a.hud.Resize(a.view, cols, rows)
}

// handle processes one terminal event, false quits
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.resize(cols, rows)
		a.log.Debug("resize", zap.Int("cols", cols), zap.Int("rows", rows))
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if a.hud.ShowingHelp() {
			a.hud.ToggleHelp()
			return true
		}
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	switch {
	case r == 'q' || r == 'Q':
		return false
	case r == '?' || r == 'h':
		a.hud.ToggleHelp()
	case a.hud.ShowingHelp():
		// board input is blocked under the help panel
	case r == 'r' || r == 'R':
		a.session.Reset()
	case r == 'p' || r == 'P' || r == ' ':
		a.session.TogglePause()
	case r >= '1' && r <= '9':
		a.session.PlayColumn(int(r - '1'))
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	a.pointerX, a.pointerY, a.hasPointer = x, y, true
	down := ev.Buttons()&tcell.Button1 != 0
	released := a.pressed && !down
	a.pressed = down

	if a.hud.ShowingHelp() {
		if released {
			a.hud.ToggleHelp()
		}
		return
	}

	world := a.view.CellToWorld(x, y)
	a.session.Hover(world)
	if !released {
		return
	}

	switch {
	case a.hud.HitHelp(x, y):
		a.hud.ToggleHelp()
	case a.hud.HitReset(x, y):
		a.session.Reset()
	default:
		a.session.Click(world)
	}
}

// frame advances the session and redraws the whole screen
func (a *app) frame() {
	a.session.Frame(a.session.Now())
	if a.hasPointer && !a.hud.ShowingHelp() {
		a.session.Hover(a.view.CellToWorld(a.pointerX, a.pointerY))
	}

	a.canvas.Clear()
	a.session.Render(render.Translated{Target: a.canvas, View: a.view})
	if a.session.Paused() || a.hud.ShowingHelp() {
		a.canvas.Dim(dimAlpha)
	}
	a.canvas.Flush(a.screen)

	a.hud.Draw(a.screen, a.session.Snapshot())
	a.screen.Show()
}
