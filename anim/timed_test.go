package anim

import (
	"testing"
	"time"

	"github.com/lixenwraith/connect-four/easing"
	"github.com/lixenwraith/connect-four/engine"
	"github.com/lixenwraith/connect-four/vmath"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	testColor = colorful.Color{R: 1, G: 0.4, B: 0}
	testBg    = colorful.Color{R: 0.1, G: 0.1, B: 0.1}
)

func lineOpts(d time.Duration) Options {
	return Options{Duration: d, Width: 1, Color: testColor, Easing: easing.Linear}
}

func ringOpts(d time.Duration, width, drop float64) Options {
	return Options{Duration: d, Width: width, Color: testColor, Background: testBg, Easing: easing.Linear, DropDistance: drop}
}

func TestLineFirstSampleIsBiased(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	line := NewLine(clock, vmath.V2(0, 0), vmath.V2(10, 0), lineOpts(100*time.Millisecond))

	rec := &Recorder{}
	line.Render(clock.Now(), rec, false)

	assert.InDelta(t, progressBias, line.Progress(), 1e-12)
	assert.Equal(t, PhaseAppearing, line.Phase())
	require.Len(t, rec.Calls, 1)
	assert.InDelta(t, 0.08, rec.Calls[0].B.X, 1e-9)
	assert.Greater(t, vmath.V2Dist(rec.Calls[0].A, rec.Calls[0].B), 0.0, "no zero-length first frame")
}

func TestLineGrowsThenSettles(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	line := NewLine(clock, vmath.V2(0, 0), vmath.V2(10, 0), lineOpts(100*time.Millisecond))

	clock.Advance(50 * time.Millisecond)
	line.Advance(clock.Now(), false)
	assert.InDelta(t, 5.0, line.DrawnEnd().X, 1e-9)

	clock.Advance(50 * time.Millisecond)
	line.Advance(clock.Now(), false)
	assert.Equal(t, PhaseSettled, line.Phase())
	assert.True(t, line.Finished())
	assert.Equal(t, vmath.V2(10, 0), line.DrawnEnd())
}

func TestTerminalGeometryIsStable(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ring := NewRing(clock, vmath.V2(10, 20), 3, ringOpts(100*time.Millisecond, 1, 48))

	clock.Advance(100 * time.Millisecond)
	first := &Recorder{}
	ring.Render(clock.Now(), first, false)

	for _, later := range []time.Duration{0, time.Millisecond, time.Second, time.Hour} {
		clock.Advance(later)
		rec := &Recorder{}
		ring.Render(clock.Now(), rec, false)
		assert.Equal(t, first.Calls, rec.Calls)
	}
	assert.Equal(t, PhaseSettled, ring.Phase())
}

func TestRingDropsIntoPlace(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ring := NewRing(clock, vmath.V2(10, 20), 3, ringOpts(100*time.Millisecond, 1, 48))

	rec := &Recorder{}
	ring.Render(clock.Now(), rec, false)

	require.Len(t, rec.Calls, 2)
	outer, inner := rec.Calls[0], rec.Calls[1]
	assert.InDelta(t, 20-48*(1-progressBias), outer.A.Y, 1e-9)
	assert.InDelta(t, 3.0, outer.Radius, 1e-9)
	assert.Equal(t, testColor, outer.Color)
	assert.InDelta(t, 3-progressBias, inner.Radius, 1e-9)
	assert.Equal(t, testBg, inner.Color)

	clock.Advance(50 * time.Millisecond)
	ring.Advance(clock.Now(), false)
	assert.InDelta(t, 20-24.0, ring.Center().Y, 1e-9)
	assert.InDelta(t, 2.5, ring.InnerRadius(), 1e-9)

	clock.Advance(50 * time.Millisecond)
	ring.Advance(clock.Now(), false)
	assert.Equal(t, vmath.V2(10, 20), ring.Center())
	assert.InDelta(t, 2.0, ring.InnerRadius(), 1e-9)
}

func TestFilledRingSkipsInnerDisc(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ring := NewRing(clock, vmath.V2(0, 0), 3, ringOpts(100*time.Millisecond, 0, 0))

	rec := &Recorder{}
	ring.Render(clock.Now().Add(time.Second), rec, false)

	require.Len(t, rec.Calls, 1)
	assert.InDelta(t, 3.0, rec.Calls[0].Radius, 1e-9)
}

func TestBeginRemoveFlipsDirection(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	line := NewLine(clock, vmath.V2(0, 0), vmath.V2(10, 0), lineOpts(100*time.Millisecond))

	clock.Advance(30 * time.Millisecond)
	line.Advance(clock.Now(), false)
	assert.InDelta(t, 0.3, line.Progress(), 1e-9)

	line.BeginRemove(200 * time.Millisecond)
	assert.True(t, line.Removing())
	assert.True(t, line.Finished())

	line.Advance(clock.Now(), false)
	assert.InDelta(t, 1-progressBias, line.Progress(), 1e-12, "removal continues from full, not from zero")
	assert.InDelta(t, 10*(1-progressBias), line.DrawnEnd().X, 1e-9)

	clock.Advance(100 * time.Millisecond)
	line.Advance(clock.Now(), false)
	assert.InDelta(t, 0.5, line.Progress(), 1e-9)
	assert.InDelta(t, 5.0, line.DrawnEnd().X, 1e-9)

	clock.Advance(100 * time.Millisecond)
	rec := &Recorder{}
	line.Render(clock.Now(), rec, false)
	assert.True(t, line.Done())
	assert.Empty(t, rec.Calls, "removed line draws nothing")
}

func TestBeginRemoveMidDropSettlesPosition(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ring := NewRing(clock, vmath.V2(10, 20), 3, ringOpts(100*time.Millisecond, 0, 48))

	clock.Advance(10 * time.Millisecond)
	ring.Advance(clock.Now(), false)
	require.NotEqual(t, 20.0, ring.Center().Y)

	ring.BeginRemove(100 * time.Millisecond)
	assert.Equal(t, vmath.V2(10, 20), ring.Center())
}

func TestRingCollapsesOnRemoval(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	ring := NewRing(clock, vmath.V2(10, 20), 4, ringOpts(100*time.Millisecond, 1, 0))
	ring.Advance(clock.Now(), true)
	require.Equal(t, PhaseSettled, ring.Phase())

	ring.BeginRemove(100 * time.Millisecond)
	clock.Advance(50 * time.Millisecond)
	ring.Advance(clock.Now(), false)
	assert.InDelta(t, 2.0, ring.Radius(), 1e-9)
	assert.InDelta(t, 1.5, ring.InnerRadius(), 1e-9)

	clock.Advance(50 * time.Millisecond)
	rec := &Recorder{}
	ring.Render(clock.Now(), rec, false)
	assert.Equal(t, PhaseGone, ring.Phase())
	assert.Zero(t, ring.Radius())
	assert.Empty(t, rec.Calls)

	ring.BeginRemove(100 * time.Millisecond)
	assert.Equal(t, PhaseGone, ring.Phase(), "gone primitives are not re-armed")
}

func TestSkipSnapsToTerminal(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	line := NewLine(clock, vmath.V2(0, 0), vmath.V2(0, 8), lineOpts(time.Second))

	line.Render(clock.Now(), &Recorder{}, true)
	assert.Equal(t, PhaseSettled, line.Phase())
	assert.Equal(t, vmath.V2(0, 8), line.DrawnEnd())

	line.BeginRemove(time.Second)
	line.Advance(clock.Now(), true)
	assert.True(t, line.Done())
}

func TestNonPositiveDurationIsFinished(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)

	for _, d := range []time.Duration{0, -time.Second} {
		line := NewLine(clock, vmath.V2(0, 0), vmath.V2(4, 0), lineOpts(d))
		assert.Equal(t, PhaseSettled, line.Phase())

		rec := &Recorder{}
		line.Render(clock.Now(), rec, false)
		require.Len(t, rec.Calls, 1)
		assert.Equal(t, vmath.V2(4, 0), rec.Calls[0].B)

		line.BeginRemove(d)
		assert.True(t, line.Done())
	}
}

func TestRadiusClamped(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)

	for _, r := range []float64{0, -5} {
		ring := NewRing(clock, vmath.V2(0, 0), r, ringOpts(time.Second, 3, 0))
		assert.Equal(t, MinRadius, ring.FullRadius())
		assert.LessOrEqual(t, ring.Width(), ring.FullRadius(), "stroke never exceeds radius")
	}
}

func TestDefaultEasingIsEaseOutQuart(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	line := NewLine(clock, vmath.V2(0, 0), vmath.V2(10, 0), Options{Duration: 100 * time.Millisecond})

	clock.Advance(50 * time.Millisecond)
	line.Advance(clock.Now(), false)
	assert.InDelta(t, 9.375, line.DrawnEnd().X, 1e-9)
}

func TestDelayHoldsAtBiasedStart(t *testing.T) {
	clock := engine.NewMockTimeProvider(testStart)
	opts := lineOpts(100 * time.Millisecond)
	opts.Delay = 50 * time.Millisecond
	line := NewLine(clock, vmath.V2(0, 0), vmath.V2(10, 0), opts)

	clock.Advance(25 * time.Millisecond)
	line.Advance(clock.Now(), false)
	assert.InDelta(t, progressBias, line.Progress(), 1e-12)
	assert.Equal(t, testStart.Add(150*time.Millisecond), line.End())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "appearing", PhaseAppearing.String())
	assert.Equal(t, "settled", PhaseSettled.String())
	assert.Equal(t, "disappearing", PhaseDisappearing.String())
	assert.Equal(t, "gone", PhaseGone.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
