// Package text is the measurement boundary between layout and fonts: a Measurer
// returns the pixel size of a string in a given font, and a Registry owns the font
// faces and a generation counter that invalidates cached measurements.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/facet/geom"
)

// DefaultFamily is used when a FontSpec names no family or an unknown one.
const DefaultFamily = "sans"

// DefaultSize is used when a FontSpec has no size.
const DefaultSize = 16

// FontSpec identifies a font face at a size.
type FontSpec struct {
	Family string
	Size   float32
	Bold   bool
	Italic bool
}

// Normalize fills in defaults for empty fields.
func (f FontSpec) Normalize() FontSpec {
	if f.Family == "" {
		f.Family = DefaultFamily
	}
	if f.Size <= 0 {
		f.Size = DefaultSize
	}
	return f
}

// Measurer returns the natural size of s rendered in f. Results must be deterministic
// for identical input within one registry generation.
type Measurer interface {
	Measure(s string, f FontSpec) geom.Size
}

// LineHeight is the line advance used for a font size.
func LineHeight(size float32) float32 {
	return size * 1.2
}

// EstimateMeasurer measures without font data: every terminal cell is 0.6em wide, so
// CJK and emoji count double. It is used for headless layout and tests.
type EstimateMeasurer struct{}

// Measure implements Measurer.
func (EstimateMeasurer) Measure(s string, f FontSpec) geom.Size {
	f = f.Normalize()
	if s == "" {
		return geom.Size{W: 0, H: LineHeight(f.Size)}
	}
	lines := strings.Split(s, "\n")
	var widest int
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	w := float32(widest) * f.Size * 0.6
	if f.Bold {
		w *= 1.05
	}
	return geom.Size{W: w, H: LineHeight(f.Size) * float32(len(lines))}
}
