package gpu

import (
	"encoding/binary"
	"math"

	"github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
)

// ============================================================================
// Instance Layout
// ============================================================================
//
// One SDF instance, little endian, matching struct Instance in primitives.wgsl:
//
//	offset  0  pos_a      vec2<f32>  rect/circle center, line start
//	offset  8  pos_b      vec2<f32>  rect size, line end
//	offset 16  color      vec4<f32>
//	offset 32  color_end  vec4<f32>  equal to color for a solid fill
//	offset 48  radii      vec4<f32>  TR, BR, TL, BL; circle radius or half line thickness in x
//	offset 64  kind       u32
//	offset 68  stroke     f32
//	offset 72  softness   f32
//	offset 76  pad        u32
//	offset 80  clip       vec4<f32>  x, y, w, h

// InstanceSize is the byte size of one encoded SDF instance.
const InstanceSize = 96

// TextRecordSize is the byte size of one encoded text run:
//
//	pos(2f) size(2f) color(4f) clip(4f) font_size(f32) flags(u32)
//	text_off(u32) text_len(u32) family_off(u32) family_len(u32) pad(2×u32)
//
// Offsets index the frame's Strings blob.
const TextRecordSize = 80

// ImageRecordSize is the byte size of one encoded image:
//
//	bounds(4f) radii(4f) clip(4f) source_off(u32) source_len(u32) pad(2×u32)
const ImageRecordSize = 64

// Text record flags.
const (
	TextBold uint32 = 1 << iota
	TextItalic
	TextUnderline
)

// Span is a run of records of one layer.
type Span struct {
	Layer int
	First int
	Count int
}

// Frame is an encoded draw list. Its slices are owned by the Encoder and reused by
// the next Encode.
type Frame struct {
	Instances  []byte
	Calls      []Call
	Texts      []byte
	TextSpans  []Span
	Images     []byte
	ImageSpans []Span
	Strings    []byte
}

// Encoder packs draw lists, reusing its buffers between frames.
type Encoder struct {
	f Frame
}

// Encode packs l. Instances are grouped layer by layer and, within a layer, kind by
// kind in the order rects, circles, lines; every non-empty group yields one Call.
func (e *Encoder) Encode(l *draw.List) *Frame {
	f := &e.f
	f.Instances = f.Instances[:0]
	f.Calls = f.Calls[:0]
	f.Texts = f.Texts[:0]
	f.TextSpans = f.TextSpans[:0]
	f.Images = f.Images[:0]
	f.ImageSpans = f.ImageSpans[:0]
	f.Strings = f.Strings[:0]

	for li, layer := range l.Layers() {
		e.group(li, draw.KindRect, len(layer.Rects), func(b []byte) []byte {
			for i := range layer.Rects {
				b = AppendRect(b, &layer.Rects[i])
			}
			return b
		})
		e.group(li, draw.KindCircle, len(layer.Circles), func(b []byte) []byte {
			for i := range layer.Circles {
				b = AppendCircle(b, &layer.Circles[i])
			}
			return b
		})
		e.group(li, draw.KindLine, len(layer.Lines), func(b []byte) []byte {
			for i := range layer.Lines {
				b = AppendLine(b, &layer.Lines[i])
			}
			return b
		})

		if n := len(layer.Texts); n > 0 {
			f.TextSpans = append(f.TextSpans, Span{Layer: li, First: len(f.Texts) / TextRecordSize, Count: n})
			for i := range layer.Texts {
				f.Texts, f.Strings = appendText(f.Texts, f.Strings, &layer.Texts[i])
			}
		}
		if n := len(layer.Images); n > 0 {
			f.ImageSpans = append(f.ImageSpans, Span{Layer: li, First: len(f.Images) / ImageRecordSize, Count: n})
			for i := range layer.Images {
				f.Images, f.Strings = appendImage(f.Images, f.Strings, &layer.Images[i])
			}
		}
	}
	return f
}

func (e *Encoder) group(layer int, kind draw.Kind, n int, fill func([]byte) []byte) {
	if n == 0 {
		return
	}
	f := &e.f
	f.Calls = append(f.Calls, Call{Layer: layer, Kind: kind, First: len(f.Instances) / InstanceSize, Count: n})
	f.Instances = fill(f.Instances)
}

// AppendRect appends the instance record of r.
func AppendRect(b []byte, r *draw.Rect) []byte {
	return appendInstance(b, instance{
		posA:     r.Bounds.Center(),
		posB:     geom.V(r.Bounds.W, r.Bounds.H),
		color:    r.Color,
		colorEnd: r.ColorEnd,
		radii:    [4]float32{r.Radii.TopRight, r.Radii.BottomRight, r.Radii.TopLeft, r.Radii.BottomLeft},
		kind:     draw.KindRect,
		stroke:   r.Stroke,
		softness: r.Softness,
		clip:     r.Clip,
	})
}

// AppendCircle appends the instance record of c.
func AppendCircle(b []byte, c *draw.Circle) []byte {
	return appendInstance(b, instance{
		posA:     c.Center,
		color:    c.Color,
		colorEnd: c.Color,
		radii:    [4]float32{c.Radius},
		kind:     draw.KindCircle,
		stroke:   c.Stroke,
		softness: c.Softness,
		clip:     c.Clip,
	})
}

// AppendLine appends the instance record of ln.
func AppendLine(b []byte, ln *draw.Line) []byte {
	return appendInstance(b, instance{
		posA:     ln.A,
		posB:     ln.B,
		color:    ln.Color,
		colorEnd: ln.Color,
		radii:    [4]float32{ln.Thickness * 0.5},
		kind:     draw.KindLine,
		softness: ln.Softness,
		clip:     ln.Clip,
	})
}

type instance struct {
	posA, posB      geom.Vec2
	color, colorEnd style.Color
	radii           [4]float32
	kind            draw.Kind
	stroke          float32
	softness        float32
	clip            geom.Rect
}

func appendInstance(b []byte, in instance) []byte {
	b = appendF32(b, in.posA.X, in.posA.Y, in.posB.X, in.posB.Y)
	b = appendColor(b, in.color)
	b = appendColor(b, in.colorEnd)
	b = appendF32(b, in.radii[:]...)
	b = binary.LittleEndian.AppendUint32(b, uint32(in.kind))
	b = appendF32(b, in.stroke, in.softness)
	b = binary.LittleEndian.AppendUint32(b, 0)
	return appendRect(b, in.clip)
}

func appendText(b, strs []byte, t *draw.Text) ([]byte, []byte) {
	var flags uint32
	if t.Font.Bold {
		flags |= TextBold
	}
	if t.Font.Italic {
		flags |= TextItalic
	}
	if t.Underline {
		flags |= TextUnderline
	}
	textOff := len(strs)
	strs = append(strs, t.Text...)
	famOff := len(strs)
	strs = append(strs, t.Font.Family...)

	b = appendF32(b, t.Pos.X, t.Pos.Y, t.Size.W, t.Size.H)
	b = appendColor(b, t.Color)
	b = appendRect(b, t.Clip)
	b = appendF32(b, t.Font.Size)
	b = appendU32(b, flags, uint32(textOff), uint32(len(t.Text)), uint32(famOff), uint32(len(t.Font.Family)), 0, 0)
	return b, strs
}

func appendImage(b, strs []byte, img *draw.Image) ([]byte, []byte) {
	off := len(strs)
	strs = append(strs, img.Source...)
	b = appendRect(b, img.Bounds)
	b = appendF32(b, img.Radii.TopRight, img.Radii.BottomRight, img.Radii.TopLeft, img.Radii.BottomLeft)
	b = appendRect(b, img.Clip)
	b = appendU32(b, uint32(off), uint32(len(img.Source)), 0, 0)
	return b, strs
}

func appendRect(b []byte, r geom.Rect) []byte {
	return appendF32(b, r.X, r.Y, r.W, r.H)
}

func appendColor(b []byte, c style.Color) []byte {
	return appendF32(b, c.R, c.G, c.B, c.A)
}

func appendF32(b []byte, vs ...float32) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

func appendU32(b []byte, vs ...uint32) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

// Instance is a decoded SDF instance record.
type Instance struct {
	PosA, PosB geom.Vec2
	Color      style.Color
	ColorEnd   style.Color
	Radii      [4]float32
	Kind       draw.Kind
	Stroke     float32
	Softness   float32
	Clip       geom.Rect
}

// DecodeInstance reads the i-th record of an encoded instance buffer.
func DecodeInstance(buf []byte, i int) Instance {
	rec := buf[i*InstanceSize : (i+1)*InstanceSize]
	f := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(rec[off:]))
	}
	color := func(off int) style.Color {
		return style.Color{R: f(off), G: f(off + 4), B: f(off + 8), A: f(off + 12)}
	}
	return Instance{
		PosA:     geom.V(f(0), f(4)),
		PosB:     geom.V(f(8), f(12)),
		Color:    color(16),
		ColorEnd: color(32),
		Radii:    [4]float32{f(48), f(52), f(56), f(60)},
		Kind:     draw.Kind(binary.LittleEndian.Uint32(rec[64:])),
		Stroke:   f(68),
		Softness: f(72),
		Clip:     geom.R(f(80), f(84), f(88), f(92)),
	}
}
