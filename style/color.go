// Package style describes how widgets are decorated: colors, borders, shadows,
// gradients and corner radii, plus the global style presets applications start from.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R float32 `toml:"r"`
	G float32 `toml:"g"`
	B float32 `toml:"b"`
	A float32 `toml:"a"`
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// RGBA builds a color from components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRGBA32 unpacks a 0xRRGGBBAA value.
func FromRGBA32(v uint32) Color {
	return Color{
		R: float32(v>>24&0xff) / 255,
		G: float32(v>>16&0xff) / 255,
		B: float32(v>>8&0xff) / 255,
		A: float32(v&0xff) / 255,
	}
}

// RGBA32 packs c as 0xRRGGBBAA.
func (c Color) RGBA32() uint32 {
	to8 := func(v float32) uint32 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint32(v*255 + 0.5)
	}
	return to8(c.R)<<24 | to8(c.G)<<16 | to8(c.B)<<8 | to8(c.A)
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("style: color %q must start with '#'", s)
	}
	alpha := float32(1)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("style: bad alpha in %q: %w", s, err)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("style: parse %q: %w", s, err)
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}, nil
}

// MustHex is ParseHex for literals known to be valid.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%08x", c.RGBA32())
}

// Lerp interpolates linearly from c to o by t.
func (c Color) Lerp(o Color, t float32) Color {
	a := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	b := colorful.Color{R: float64(o.R), G: float64(o.G), B: float64(o.B)}
	m := a.BlendRgb(b, float64(t))
	return Color{
		R: float32(m.R),
		G: float32(m.G),
		B: float32(m.B),
		A: c.A + (o.A-c.A)*t,
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float32) Color {
	c.A *= a
	return c
}
