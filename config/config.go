// Package config holds the immutable game configuration passed to constructors.
package config

import (
	"errors"
	"time"

	"github.com/lixenwraith/connect-four/easing"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// WinLength is the run length that wins a round
const WinLength = 4

// Config is the full game configuration
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Colors ColorConfig  `yaml:"colors"`
	Timing TimingConfig `yaml:"timing"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// BoardConfig is board geometry in canvas pixels
// A terminal cell is one pixel wide and two pixels tall
type BoardConfig struct {
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	Gap             float64 `yaml:"gap"`          // cell pitch
	TokenRadius     float64 `yaml:"token_radius"` // clamped to [1, gap/2]
	TokenStroke     float64 `yaml:"token_stroke"` // 0 draws filled tokens
	LineWidth       float64 `yaml:"line_width"`   // outline and grid lines
	IndicatorRadius float64 `yaml:"indicator_radius"`
	FullColumnClick bool    `yaml:"full_column_click"` // whole column lane picks, not only the drop zone
}

// ColorConfig holds hex colors, resolved by Palette
type ColorConfig struct {
	Background string `yaml:"background"`
	Board      string `yaml:"board"`
	Grid       string `yaml:"grid"`
	PlayerOne  string `yaml:"player_one"`
	PlayerTwo  string `yaml:"player_two"`
	Highlight  string `yaml:"highlight"`
	Text       string `yaml:"text"`
	Button     string `yaml:"button"`
}

// TimingConfig holds frame rate and animation windows
type TimingConfig struct {
	FPS             int           `yaml:"fps"`
	TokenDrop       time.Duration `yaml:"token_drop"`
	Remove          time.Duration `yaml:"remove"`
	BlinkCount      int           `yaml:"blink_count"`
	BlinkDuration   time.Duration `yaml:"blink_duration"`
	Outline         time.Duration `yaml:"outline"`
	OutlineStagger  time.Duration `yaml:"outline_stagger"`
	Grid            time.Duration `yaml:"grid"`
	Indicator       time.Duration `yaml:"indicator"`
	TeardownDelay   time.Duration `yaml:"teardown_delay"`
	AnimateTeardown bool          `yaml:"animate_teardown"`
	Easing          string        `yaml:"easing"`
}

// AudioConfig toggles and scales sound effects
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
	SampleRate   int     `yaml:"sample_rate"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Default returns the terminal-scaled configuration
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Rows:            6,
			Cols:            7,
			Gap:             8,
			TokenRadius:     3,
			TokenStroke:     0,
			LineWidth:       1,
			IndicatorRadius: 3,
			FullColumnClick: true,
		},
		Colors: ColorConfig{
			Background: "#1A1A1A",
			Board:      "#3333AA",
			Grid:       "#DDDDDD",
			PlayerOne:  "#FF6600",
			PlayerTwo:  "#FF1F00",
			Highlight:  "#FFF4C2",
			Text:       "#DDDDDD",
			Button:     "#333333",
		},
		Timing: TimingConfig{
			FPS:             45,
			TokenDrop:       500 * time.Millisecond,
			Remove:          500 * time.Millisecond,
			BlinkCount:      3,
			BlinkDuration:   250 * time.Millisecond,
			Outline:         500 * time.Millisecond,
			OutlineStagger:  100 * time.Millisecond,
			Grid:            800 * time.Millisecond,
			Indicator:       500 * time.Millisecond,
			TeardownDelay:   500 * time.Millisecond,
			AnimateTeardown: false,
			Easing:          easing.NameEaseOutQuart,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Log: LogConfig{
			Debug: false,
			Dir:   "logs",
		},
	}
}

// EasingFunc resolves the configured token easing, falling back to EaseOutQuart
func (t TimingConfig) EasingFunc() easing.Func {
	if fn, ok := easing.ByName(t.Easing); ok {
		return fn
	}
	return easing.EaseOutQuart
}

// Width returns the board width in pixels
func (b BoardConfig) Width() float64 {
	return float64(b.Cols) * b.Gap
}

// Height returns the board height in pixels
func (b BoardConfig) Height() float64 {
	return float64(b.Rows) * b.Gap
}
