// Package draw holds the flat per-frame output of render flattening: typed instances
// grouped by primitive kind so a submitter can issue one draw call per kind.
package draw

import (
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/text"
)

// Kind tags an SDF instance for the shader.
type Kind uint32

const (
	KindRect Kind = iota
	KindCircle
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	}
	return "unknown"
}

// NoClip is the clip rectangle of instances outside any scrollable viewport.
var NoClip = geom.Rect{X: -1 << 20, Y: -1 << 20, W: 1 << 21, H: 1 << 21}

// Rect is a rounded rectangle. Stroke 0 fills; Stroke > 0 draws an inner band.
// Color == ColorEnd for a solid fill, otherwise a vertical gradient top to bottom.
type Rect struct {
	Bounds   geom.Rect
	Color    style.Color
	ColorEnd style.Color
	Radii    geom.Radii
	Stroke   float32
	Softness float32
	Clip     geom.Rect
}

// Circle is a filled or stroked circle.
type Circle struct {
	Center   geom.Vec2
	Radius   float32
	Color    style.Color
	Stroke   float32
	Softness float32
	Clip     geom.Rect
}

// Line is a segment from A to B with square caps extending Thickness/2 past each end.
type Line struct {
	A, B      geom.Vec2
	Thickness float32
	Color     style.Color
	Softness  float32
	Clip      geom.Rect
}

// Text is one styled run placed with its top-left corner at Pos.
type Text struct {
	Pos       geom.Vec2
	Size      geom.Size
	Text      string
	Font      text.FontSpec
	Color     style.Color
	Underline bool
	Clip      geom.Rect
}

// Image is a bitmap stretched to Bounds.
type Image struct {
	Bounds geom.Rect
	Source string
	Radii  geom.Radii
	Clip   geom.Rect
}

// Layer groups instances by kind. Within a kind, slice order is paint order.
type Layer struct {
	Rects   []Rect
	Circles []Circle
	Lines   []Line
	Texts   []Text
	Images  []Image
}

// Len is the total number of instances in the layer.
func (l *Layer) Len() int {
	return len(l.Rects) + len(l.Circles) + len(l.Lines) + len(l.Texts) + len(l.Images)
}

// Reset empties the layer, keeping capacity for the next frame.
func (l *Layer) Reset() {
	l.Rects = l.Rects[:0]
	l.Circles = l.Circles[:0]
	l.Lines = l.Lines[:0]
	l.Texts = l.Texts[:0]
	l.Images = l.Images[:0]
}

// List is one frame of draw output. Base is painted first, Overlay on top of it
// (open dropdown popups, the handle of an active drag).
type List struct {
	Base    Layer
	Overlay Layer
}

// Layers returns the layers in paint order.
func (l *List) Layers() []*Layer {
	return []*Layer{&l.Base, &l.Overlay}
}

// Len is the number of instances across both layers.
func (l *List) Len() int {
	return l.Base.Len() + l.Overlay.Len()
}

// Reset empties both layers.
func (l *List) Reset() {
	l.Base.Reset()
	l.Overlay.Reset()
}
