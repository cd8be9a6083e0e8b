// Package palette loads the color table for the splash ring.
package palette

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed colors.yaml
var defaultTable []byte

// ErrEmptyPalette is returned when a table defines no colors.
var ErrEmptyPalette = errors.New("palette: no colors defined")

type rawPalette struct {
	Colors []string `yaml:"colors"`
}

// Palette is an ordered, read-only list of colors.
type Palette struct {
	colors []color.Color
}

// Default returns the embedded color table.
func Default() (*Palette, error) {
	return Parse(defaultTable)
}

// Parse decodes a YAML color table. Entries are "#RRGGBB", "#AARRGGBB" or a
// CSS color name.
func Parse(data []byte) (*Palette, error) {
	var raw rawPalette
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("palette: decode: %w", err)
	}
	if len(raw.Colors) == 0 {
		return nil, ErrEmptyPalette
	}

	p := &Palette{colors: make([]color.Color, 0, len(raw.Colors))}
	for i, s := range raw.Colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette: entry %d: %w", i, err)
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.colors)
}

// Colors returns a copy of the table.
func (p *Palette) Colors() []color.Color {
	if p == nil {
		return nil
	}
	out := make([]color.Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// ParseColor parses a single color entry.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("unknown color name %q", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 6:
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	case 8:
		// colorful.Hex has no alpha form.
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.NRGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	default:
		return nil, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", s)
	}
}
