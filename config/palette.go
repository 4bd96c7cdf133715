package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is ColorConfig resolved to colors
type Palette struct {
	Background colorful.Color
	Board      colorful.Color
	Grid       colorful.Color
	PlayerOne  colorful.Color
	PlayerTwo  colorful.Color
	Highlight  colorful.Color
	Text       colorful.Color
	Button     colorful.Color
}

// Palette parses every configured hex color
func (c *Config) Palette() (Palette, error) {
	var p Palette
	entries := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"board", c.Colors.Board, &p.Board},
		{"grid", c.Colors.Grid, &p.Grid},
		{"player_one", c.Colors.PlayerOne, &p.PlayerOne},
		{"player_two", c.Colors.PlayerTwo, &p.PlayerTwo},
		{"highlight", c.Colors.Highlight, &p.Highlight},
		{"text", c.Colors.Text, &p.Text},
		{"button", c.Colors.Button, &p.Button},
	}
	for _, e := range entries {
		col, err := colorful.Hex(e.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: color %s %q: %v", ErrInvalidConfig, e.name, e.hex, err)
		}
		*e.dst = col
	}
	return p, nil
}

// MustPalette is Palette for configs that already passed Validate
func (c *Config) MustPalette() Palette {
	p, err := c.Palette()
	if err != nil {
		panic(err)
	}
	return p
}
