package anim

import (
	"time"

	"github.com/lixenwraith/connect-four/easing"
	"github.com/lixenwraith/connect-four/engine"
	"github.com/lixenwraith/connect-four/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind selects the primitive's geometry
type Kind uint8

const (
	KindLine Kind = iota
	KindRing
)

// Phase is the lifecycle state of a primitive
type Phase uint8

const (
	PhaseAppearing    Phase = iota // intro window running
	PhaseSettled                   // terminal geometry
	PhaseDisappearing              // removal window running
	PhaseGone                      // removal finished, owner should drop it
)

func (p Phase) String() string {
	switch p {
	case PhaseAppearing:
		return "appearing"
	case PhaseSettled:
		return "settled"
	case PhaseDisappearing:
		return "disappearing"
	case PhaseGone:
		return "gone"
	default:
		return "unknown"
	}
}

const (
	// MinRadius is the smallest ring radius accepted, smaller values are clamped
	MinRadius = 1.0

	// Progress below progressFloor is lifted by progressBias so the first
	// frame never renders a zero-length shape
	progressFloor = 0.01
	progressBias  = 0.008
)

// Options configures a primitive at construction
type Options struct {
	Duration   time.Duration // intro window, non-positive means start settled
	Delay      time.Duration // start offset from construction
	Color      colorful.Color
	Background colorful.Color // ring inner disc color
	Width      float64        // line width or ring stroke, 0 makes a filled disc
	Easing     easing.Func    // defaults to EaseOutQuart

	// DropDistance is the ring's entry offset above its resting center
	DropDistance float64
}

// Timed is a single line or ring driven by eased progress over a time window
type Timed struct {
	clock engine.TimeProvider
	kind  Kind

	color      colorful.Color
	background colorful.Color
	width      float64
	ease       easing.Func

	phase    Phase
	start    time.Time
	duration time.Duration
	progress float64 // last sampled progress, after bias and inversion
	eased    float64

	// Line geometry, drawn is the current vector from a
	a, b   vmath.Vec2
	dir    vmath.Vec2
	length float64
	drawn  vmath.Vec2

	// Ring geometry, offset is the current vertical displacement from center
	center vmath.Vec2
	radius float64
	outer  float64
	inner  float64
	drop   float64
	offset float64
}

// NewLine creates a segment growing from p1 toward p2
func NewLine(clock engine.TimeProvider, p1, p2 vmath.Vec2, opts Options) *Timed {
	t := newTimed(clock, KindLine, opts)
	t.a = p1
	t.b = p2
	t.dir = vmath.V2Sub(p2, p1)
	t.length = vmath.V2Dist(p1, p2)
	t.arm(opts)
	return t
}

// NewRing creates a ring that drops onto center while its stroke fills in
func NewRing(clock engine.TimeProvider, center vmath.Vec2, radius float64, opts Options) *Timed {
	t := newTimed(clock, KindRing, opts)
	if radius < MinRadius {
		radius = MinRadius
	}
	if t.width > radius {
		t.width = radius
	}
	t.center = center
	t.radius = radius
	t.outer = radius
	t.inner = radius
	t.drop = opts.DropDistance
	t.offset = -opts.DropDistance
	t.arm(opts)
	return t
}

func newTimed(clock engine.TimeProvider, kind Kind, opts Options) *Timed {
	ease := opts.Easing
	if ease == nil {
		ease = easing.EaseOutQuart
	}
	width := opts.Width
	if width < 0 {
		width = 0
	}
	return &Timed{
		clock:      clock,
		kind:       kind,
		color:      opts.Color,
		background: opts.Background,
		width:      width,
		ease:       ease,
	}
}

// arm starts the intro window, or settles immediately for non-positive durations
func (t *Timed) arm(opts Options) {
	d := opts.Duration
	delay := opts.Delay
	if delay < 0 {
		delay = 0
	}
	t.start = t.clock.Now().Add(delay)
	t.duration = d
	t.phase = PhaseAppearing
	if d <= 0 {
		t.duration = 0
		t.snap(false)
	}
}

// BeginRemove reverses the primitive over d starting now, overriding any intro
// The current display jumps to terminal geometry and collapses from there
func (t *Timed) BeginRemove(d time.Duration) {
	if t.phase == PhaseGone {
		return
	}
	t.settleGeometry()
	t.phase = PhaseDisappearing
	t.start = t.clock.Now()
	t.duration = d
	if d <= 0 {
		t.duration = 0
		t.snap(true)
	}
}

// Advance samples the clock-derived progress and updates geometry
// Settled and Gone primitives are left untouched
func (t *Timed) Advance(now time.Time, skip bool) {
	if t.phase != PhaseAppearing && t.phase != PhaseDisappearing {
		return
	}
	removing := t.phase == PhaseDisappearing

	p := t.sample(now)
	if removing {
		p = 1 - p
	}
	t.progress = p

	if now.Before(t.End()) && !skip {
		t.eased = t.ease(p)
		t.apply(t.eased, removing)
		return
	}
	t.snap(removing)
}

// sample returns normalized elapsed time, clamped and biased off zero
func (t *Timed) sample(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	p := easing.Clamp01(float64(now.Sub(t.start)) / float64(t.duration))
	if p < progressFloor {
		p += progressBias
	}
	return p
}

func (t *Timed) apply(e float64, removing bool) {
	switch t.kind {
	case KindLine:
		t.drawn = vmath.V2ScaleToLength(t.dir, t.length*e)
	case KindRing:
		if removing {
			t.outer = t.radius * e
			t.inner = max(t.outer-t.width*e, 0)
			return
		}
		t.offset = -t.drop * (1 - e)
		t.outer = t.radius
		t.inner = t.radius - t.width*e
	}
}

// snap jumps to terminal geometry and ends the running window
func (t *Timed) snap(removing bool) {
	if removing {
		t.drawn = vmath.Vec2{}
		t.offset = 0
		t.outer = 0
		t.inner = 0
		t.progress = 0
		t.eased = 0
		t.phase = PhaseGone
		return
	}
	t.settleGeometry()
	t.progress = 1
	t.eased = 1
	t.phase = PhaseSettled
}

func (t *Timed) settleGeometry() {
	switch t.kind {
	case KindLine:
		t.drawn = t.dir
	case KindRing:
		t.offset = 0
		t.outer = t.radius
		t.inner = t.radius - t.width
	}
}

// Draw renders the current geometry with the primitive's own color
func (t *Timed) Draw(r Renderer) {
	t.DrawTinted(r, t.color)
}

// DrawTinted renders the current geometry with an override color
func (t *Timed) DrawTinted(r Renderer, c colorful.Color) {
	switch t.kind {
	case KindLine:
		if vmath.V2MagSq(t.drawn) == 0 {
			return
		}
		r.DrawLine(t.a, vmath.V2Add(t.a, t.drawn), t.width, c)
	case KindRing:
		if t.outer <= 0 {
			return
		}
		at := t.Center()
		r.DrawDisc(at, t.outer, c)
		if t.width > 0 && t.inner > 0 {
			r.DrawDisc(at, t.inner, t.background)
		}
	}
}

// Render advances then draws, the per-frame entry point
func (t *Timed) Render(now time.Time, r Renderer, skip bool) {
	t.Advance(now, skip)
	t.Draw(r)
}

// Done reports whether a removal has completed
func (t *Timed) Done() bool {
	return t.phase == PhaseGone
}

// Finished reports the intro is over (terminal display or removing)
func (t *Timed) Finished() bool {
	return t.phase != PhaseAppearing
}

// Removing reports a removal window is running
func (t *Timed) Removing() bool {
	return t.phase == PhaseDisappearing
}

func (t *Timed) Kind() Kind { return t.kind }
func (t *Timed) Phase() Phase { return t.phase }
func (t *Timed) Progress() float64 { return t.progress }
func (t *Timed) Eased() float64 { return t.eased }
func (t *Timed) Start() time.Time { return t.start }
func (t *Timed) Duration() time.Duration { return t.duration }
func (t *Timed) End() time.Time { return t.start.Add(t.duration) }
func (t *Timed) Color() colorful.Color { return t.color }
func (t *Timed) Width() float64 { return t.width }
func (t *Timed) Radius() float64 { return t.outer }
func (t *Timed) FullRadius() float64 { return t.radius }
func (t *Timed) InnerRadius() float64 { return t.inner }
func (t *Timed) Endpoints() (a, b vmath.Vec2) { return t.a, t.b }

// Center is the ring's drawn center including the drop offset
func (t *Timed) Center() vmath.Vec2 {
	return vmath.V2(t.center.X, t.center.Y+t.offset)
}

// DrawnEnd is the line's current far endpoint
func (t *Timed) DrawnEnd() vmath.Vec2 {
	return vmath.V2Add(t.a, t.drawn)
}
