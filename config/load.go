package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/connect-four/easing"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file
const (
	EnvFPS          = "CONNECT_FOUR_FPS"
	EnvDebug        = "CONNECT_FOUR_DEBUG"
	EnvLogDir       = "CONNECT_FOUR_LOG_DIR"
	EnvEasing       = "CONNECT_FOUR_EASING"
	EnvAudioEnabled = "CONNECT_FOUR_AUDIO_ENABLED"
	EnvMasterVolume = "CONNECT_FOUR_MASTER_VOLUME" // 0-100
)

// Load builds a config from defaults, an optional YAML file, and the environment
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables
// Unparseable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvFPS); v != "" {
		if fps, err := strconv.Atoi(v); err == nil {
			c.Timing.FPS = fps
		}
	}

	if v := os.Getenv(EnvDebug); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = debug
		}
	}

	if v := os.Getenv(EnvLogDir); v != "" {
		c.Log.Dir = v
	}

	if v := os.Getenv(EnvEasing); v != "" {
		c.Timing.Easing = v
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = enabled
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if vol, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = float64(vol) / 100.0
		}
	}
}

// Validate rejects unusable settings and clamps recoverable ones in place
func (c *Config) Validate() error {
	def := Default()
	b := &c.Board

	if b.Rows < WinLength || b.Cols < WinLength {
		return fmt.Errorf("%w: board %dx%d smaller than %d", ErrInvalidConfig, b.Rows, b.Cols, WinLength)
	}
	if b.Gap <= 0 {
		return fmt.Errorf("%w: gap must be positive, got %v", ErrInvalidConfig, b.Gap)
	}
	b.TokenRadius = clamp(b.TokenRadius, 1, b.Gap/2)
	b.TokenStroke = clamp(b.TokenStroke, 0, b.TokenRadius)
	b.IndicatorRadius = max(b.IndicatorRadius, 1)
	if b.LineWidth <= 0 {
		b.LineWidth = def.Board.LineWidth
	}

	t := &c.Timing
	if t.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, t.FPS)
	}
	if _, ok := easing.ByName(t.Easing); !ok {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, t.Easing)
	}
	if t.BlinkCount < 0 {
		t.BlinkCount = 0
	}
	positive(&t.TokenDrop, def.Timing.TokenDrop)
	positive(&t.Remove, def.Timing.Remove)
	positive(&t.BlinkDuration, def.Timing.BlinkDuration)
	positive(&t.Outline, def.Timing.Outline)
	positive(&t.Grid, def.Timing.Grid)
	positive(&t.Indicator, def.Timing.Indicator)
	positive(&t.TeardownDelay, def.Timing.TeardownDelay)
	if t.OutlineStagger < 0 {
		t.OutlineStagger = 0
	}

	if _, err := c.Palette(); err != nil {
		return err
	}

	a := &c.Audio
	a.MasterVolume = clamp(a.MasterVolume, 0, 1)
	if a.SampleRate <= 0 {
		a.SampleRate = def.Audio.SampleRate
	}

	if c.Log.Dir == "" {
		c.Log.Dir = def.Log.Dir
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func positive(d *time.Duration, fallback time.Duration) {
	if *d <= 0 {
		*d = fallback
	}
}
