package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/connect-four/easing"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.Board.Rows)
	assert.Equal(t, 7, cfg.Board.Cols)
	assert.Equal(t, 45, cfg.Timing.FPS)
	assert.Equal(t, 56.0, cfg.Board.Width())
	assert.Equal(t, 48.0, cfg.Board.Height())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Board, cfg.Board)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Board.Rows)
	assert.Equal(t, 5, cfg.Board.Cols)
	assert.Equal(t, 6.0, cfg.Board.Gap)
	assert.Equal(t, 30, cfg.Timing.FPS)
	assert.Equal(t, 750*time.Millisecond, cfg.Timing.TokenDrop)
	assert.Equal(t, easing.NameLinear, cfg.Timing.Easing)
	assert.False(t, cfg.Audio.Enabled)

	// Untouched keys keep defaults
	assert.Equal(t, Default().Timing.Remove, cfg.Timing.Remove)
	assert.Equal(t, Default().Colors.Board, cfg.Colors.Board)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, colorful.Color{R: 0, G: 1, B: 0}, p.PlayerOne)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadBadColor(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_color.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"rows below win length", func(c *Config) { c.Board.Rows = 3 }},
		{"cols below win length", func(c *Config) { c.Board.Cols = 2 }},
		{"zero gap", func(c *Config) { c.Board.Gap = 0 }},
		{"zero fps", func(c *Config) { c.Timing.FPS = 0 }},
		{"unknown easing", func(c *Config) { c.Timing.Easing = "bounce" }},
		{"bad hex", func(c *Config) { c.Colors.Grid = "#12" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := Default()
	cfg.Board.TokenRadius = 10
	cfg.Board.TokenStroke = 20
	cfg.Board.LineWidth = -1
	cfg.Timing.BlinkCount = -2
	cfg.Timing.TokenDrop = 0
	cfg.Timing.OutlineStagger = -time.Second
	cfg.Audio.MasterVolume = 3
	cfg.Audio.SampleRate = 0

	require.NoError(t, cfg.Validate())

	assert.Equal(t, 4.0, cfg.Board.TokenRadius, "radius limited to half the gap")
	assert.Equal(t, 4.0, cfg.Board.TokenStroke, "stroke limited to radius")
	assert.Equal(t, 1.0, cfg.Board.LineWidth)
	assert.Equal(t, 0, cfg.Timing.BlinkCount)
	assert.Equal(t, Default().Timing.TokenDrop, cfg.Timing.TokenDrop)
	assert.Equal(t, time.Duration(0), cfg.Timing.OutlineStagger)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFPS, "60")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvLogDir, "/tmp/c4")
	t.Setenv(EnvEasing, easing.NameEaseInOutQuart)
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "25")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, 60, cfg.Timing.FPS)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "/tmp/c4", cfg.Log.Dir)
	assert.Equal(t, easing.NameEaseInOutQuart, cfg.Timing.Easing)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvFPS, "fast")
	t.Setenv(EnvDebug, "maybe")
	t.Setenv(EnvMasterVolume, "loud")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, Default().Timing.FPS, cfg.Timing.FPS)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, Default().Audio.MasterVolume, cfg.Audio.MasterVolume)
}

func TestEasingFunc(t *testing.T) {
	tm := TimingConfig{Easing: easing.NameLinear}
	assert.Equal(t, 0.5, tm.EasingFunc()(0.5))

	tm.Easing = "nope"
	assert.Equal(t, easing.EaseOutQuart(0.5), tm.EasingFunc()(0.5))
}

func TestMustPalettePanicsOnBadColor(t *testing.T) {
	cfg := Default()
	cfg.Colors.Text = "zzz"
	assert.Panics(t, func() { cfg.MustPalette() })
}
