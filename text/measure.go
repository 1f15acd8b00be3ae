package text

import (
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/agiangrant/facet/geom"
)

// FaceMeasurer measures strings with real glyph advances from a Registry. When the
// registry cannot resolve a face it measures with basicfont.Face7x13 scaled to size.
type FaceMeasurer struct {
	Registry *Registry
}

// NewFaceMeasurer returns a measurer over r.
func NewFaceMeasurer(r *Registry) *FaceMeasurer {
	return &FaceMeasurer{Registry: r}
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(s string, f FontSpec) geom.Size {
	f = f.Normalize()
	face, ok := m.Registry.Face(f)
	scale := float32(1)
	if !ok {
		face = basicfont.Face7x13
		scale = f.Size / 13
	}

	lines := strings.Split(s, "\n")
	var widest fixed.Int26_6
	for _, line := range lines {
		widest = max(widest, font.MeasureString(face, line))
	}
	lineH := fixedToFloat(face.Metrics().Height) * scale
	if ok {
		lineH = max(lineH, LineHeight(f.Size))
	}
	return geom.Size{
		W: fixedToFloat(widest) * scale,
		H: lineH * float32(len(lines)),
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

type cacheKey struct {
	s    string
	spec FontSpec
}

// CachedMeasurer memoizes another Measurer. The cache is cleared whenever the
// registry generation moves, so no measurement survives a font rebuild.
type CachedMeasurer struct {
	Inner    Measurer
	Registry *Registry

	mu    sync.Mutex
	gen   uint64
	cache map[cacheKey]geom.Size
}

// NewCachedMeasurer wraps inner. r may be nil when the inner measurer has no fonts.
func NewCachedMeasurer(inner Measurer, r *Registry) *CachedMeasurer {
	return &CachedMeasurer{Inner: inner, Registry: r, cache: make(map[cacheKey]geom.Size)}
}

// Measure implements Measurer.
func (c *CachedMeasurer) Measure(s string, f FontSpec) geom.Size {
	var gen uint64
	if c.Registry != nil {
		gen = c.Registry.Generation()
	}
	key := cacheKey{s, f}

	c.mu.Lock()
	if c.cache == nil {
		c.cache = make(map[cacheKey]geom.Size)
	}
	if gen != c.gen {
		clear(c.cache)
		c.gen = gen
	}
	if size, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return size
	}
	c.mu.Unlock()

	size := c.Inner.Measure(s, f)

	c.mu.Lock()
	if c.gen == gen {
		c.cache[key] = size
	}
	c.mu.Unlock()
	return size
}

// Len returns the number of cached entries.
func (c *CachedMeasurer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}
