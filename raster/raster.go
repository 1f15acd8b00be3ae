// Package raster is a software Submitter. It evaluates the same signed distance and
// coverage functions as the GPU shader once per pixel center, so its output is the
// reference the shader is checked against and what the CLI writes to PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	fdraw "github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/internal/trace"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/text"
)

var logger = trace.New("raster")

// Canvas rasterizes draw lists into an NRGBA image.
type Canvas struct {
	Img *image.NRGBA

	// Clear fills the canvas before every frame. A transparent Clear keeps the
	// previous frame.
	Clear style.Color

	// Fonts resolves text faces. nil draws text with basicfont.
	Fonts *text.Registry

	// Open loads image sources. Defaults to imaging.Open.
	Open func(source string) (image.Image, error)

	images map[imageKey]*image.NRGBA
	failed map[string]bool
}

type imageKey struct {
	source string
	w, h   int
}

// New returns a w×h canvas cleared to white.
func New(w, h int) *Canvas {
	return &Canvas{
		Img:   imaging.New(w, h, color.NRGBA{255, 255, 255, 255}),
		Clear: style.White,
		Open:  func(s string) (image.Image, error) { return imaging.Open(s) },
	}
}

// Submit paints l: the base layer then the overlay; within a layer rects, circles,
// lines, images and texts, each in slice order.
func (c *Canvas) Submit(l *fdraw.List) error {
	if c.Img == nil {
		return fmt.Errorf("raster: canvas has no image")
	}
	if c.Clear.A > 0 {
		draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(toNRGBA(c.Clear)), image.Point{}, draw.Src)
	}
	for _, layer := range l.Layers() {
		for i := range layer.Rects {
			c.rect(&layer.Rects[i])
		}
		for i := range layer.Circles {
			c.circle(&layer.Circles[i])
		}
		for i := range layer.Lines {
			c.line(&layer.Lines[i])
		}
		for i := range layer.Images {
			c.image(&layer.Images[i])
		}
		for i := range layer.Texts {
			c.text(&layer.Texts[i])
		}
	}
	return nil
}

// Save writes the canvas; the format follows the file extension.
func (c *Canvas) Save(path string) error {
	if err := imaging.Save(c.Img, path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// At returns the pixel at (x, y) as a style color.
func (c *Canvas) At(x, y int) style.Color {
	p := c.Img.NRGBAAt(x, y)
	return style.RGBA(float32(p.R)/255, float32(p.G)/255, float32(p.B)/255, float32(p.A)/255)
}

// ============================================================================
// Shapes
// ============================================================================

// region is the pixel rectangle worth visiting for a shape: its bounds grown by the
// anti-aliasing band, cut to the clip and the canvas.
func (c *Canvas) region(bounds, clip geom.Rect, softness float32) image.Rectangle {
	grow := geom.EdgeWidth(softness) + 1
	r := geom.R(bounds.X-grow, bounds.Y-grow, bounds.W+2*grow, bounds.H+2*grow).Intersect(clip)
	if r.Empty() {
		return image.Rectangle{}
	}
	pr := image.Rect(int(geom.Floor(r.X)), int(geom.Floor(r.Y)), int(geom.Ceil(r.Right())), int(geom.Ceil(r.Bottom())))
	return pr.Intersect(c.Img.Bounds())
}

// shade visits every pixel of area whose center lies inside clip.
func (c *Canvas) shade(area image.Rectangle, clip geom.Rect, fn func(p geom.Vec2) (style.Color, float32)) {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			p := geom.V(float32(x)+0.5, float32(y)+0.5)
			if !clip.Contains(p) {
				continue
			}
			col, cov := fn(p)
			if cov <= 0 {
				continue
			}
			c.blend(x, y, col, cov)
		}
	}
}

func (c *Canvas) rect(r *fdraw.Rect) {
	center, half := r.Bounds.Center(), r.Bounds.Half()
	gradient := r.Color != r.ColorEnd
	c.shade(c.region(r.Bounds, r.Clip, r.Softness), r.Clip, func(p geom.Vec2) (style.Color, float32) {
		local := p.Sub(center)
		d := geom.SDRoundedBox(local, half, r.Radii)
		col := r.Color
		if gradient {
			col = r.Color.Lerp(r.ColorEnd, geom.GradientT(local.Y, half.Y))
		}
		return col, geom.StrokeCoverage(d, r.Stroke, r.Softness)
	})
}

func (c *Canvas) circle(ci *fdraw.Circle) {
	bounds := geom.R(ci.Center.X-ci.Radius, ci.Center.Y-ci.Radius, 2*ci.Radius, 2*ci.Radius)
	c.shade(c.region(bounds, ci.Clip, ci.Softness), ci.Clip, func(p geom.Vec2) (style.Color, float32) {
		d := geom.SDCircle(p.Sub(ci.Center), ci.Radius)
		return ci.Color, geom.StrokeCoverage(d, ci.Stroke, ci.Softness)
	})
}

func (c *Canvas) line(ln *fdraw.Line) {
	ext := ln.Thickness
	bounds := geom.R(min(ln.A.X, ln.B.X)-ext, min(ln.A.Y, ln.B.Y)-ext, geom.Abs(ln.B.X-ln.A.X)+2*ext, geom.Abs(ln.B.Y-ln.A.Y)+2*ext)
	c.shade(c.region(bounds, ln.Clip, ln.Softness), ln.Clip, func(p geom.Vec2) (style.Color, float32) {
		return ln.Color, geom.FillCoverage(geom.SDSegment(p, ln.A, ln.B, ln.Thickness), ln.Softness)
	})
}

// blend composites col at coverage cov over the pixel with straight alpha.
func (c *Canvas) blend(x, y int, col style.Color, cov float32) {
	sa := geom.Clamp(col.A*cov, 0, 1)
	if sa <= 0 {
		return
	}
	i := c.Img.PixOffset(x, y)
	px := c.Img.Pix[i : i+4 : i+4]
	da := float32(px[3]) / 255
	oa := sa + da*(1-sa)
	mix := func(s float32, d uint8) uint8 {
		v := (s*sa + float32(d)/255*da*(1-sa)) / oa
		return uint8(geom.Clamp(v, 0, 1)*255 + 0.5)
	}
	px[0] = mix(col.R, px[0])
	px[1] = mix(col.G, px[1])
	px[2] = mix(col.B, px[2])
	px[3] = uint8(oa*255 + 0.5)
}

func toNRGBA(c style.Color) color.NRGBA {
	v := c.RGBA32()
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// ============================================================================
// Images
// ============================================================================

func (c *Canvas) image(img *fdraw.Image) {
	w, h := int(geom.Ceil(img.Bounds.W)), int(geom.Ceil(img.Bounds.H))
	if w <= 0 || h <= 0 {
		return
	}
	src := c.load(img.Source, w, h)
	if src == nil {
		// Missing images draw as a neutral placeholder box.
		c.rect(&fdraw.Rect{Bounds: img.Bounds, Color: placeholder, ColorEnd: placeholder, Radii: img.Radii, Clip: img.Clip})
		return
	}
	center, half := img.Bounds.Center(), img.Bounds.Half()
	ox, oy := int(geom.Floor(img.Bounds.X)), int(geom.Floor(img.Bounds.Y))
	c.shade(c.region(img.Bounds, img.Clip, 0), img.Clip, func(p geom.Vec2) (style.Color, float32) {
		sx, sy := int(p.X)-ox, int(p.Y)-oy
		if sx < 0 || sy < 0 || sx >= w || sy >= h {
			return style.Color{}, 0
		}
		s := src.NRGBAAt(sx, sy)
		col := style.RGBA(float32(s.R)/255, float32(s.G)/255, float32(s.B)/255, float32(s.A)/255)
		cov := float32(1)
		if !img.Radii.IsZero() {
			cov = geom.FillCoverage(geom.SDRoundedBox(p.Sub(center), half, img.Radii), 0)
		}
		return col, cov
	})
}

var placeholder = style.RGBA(0.85, 0.85, 0.87, 1)

// load returns source resized to w×h, caching per size. Failures are logged once.
func (c *Canvas) load(source string, w, h int) *image.NRGBA {
	key := imageKey{source, w, h}
	if img, ok := c.images[key]; ok {
		return img
	}
	if c.failed[source] {
		return nil
	}
	open := c.Open
	if open == nil {
		open = func(s string) (image.Image, error) { return imaging.Open(s) }
	}
	src, err := open(source)
	if err != nil {
		logger.Warnf("image %q: %v", source, err)
		if c.failed == nil {
			c.failed = make(map[string]bool)
		}
		c.failed[source] = true
		return nil
	}
	resized := imaging.Resize(src, w, h, imaging.Lanczos)
	if c.images == nil {
		c.images = make(map[imageKey]*image.NRGBA)
	}
	c.images[key] = resized
	return resized
}

// ============================================================================
// Text
// ============================================================================

func (c *Canvas) text(t *fdraw.Text) {
	if t.Text == "" || t.Color.A <= 0 {
		return
	}
	spec := t.Font.Normalize()
	var face font.Face
	if c.Fonts != nil {
		face, _ = c.Fonts.Face(spec)
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	clip := c.clipRect(t.Clip)
	if clip.Empty() {
		return
	}

	dst, ok := c.Img.SubImage(clip).(*image.NRGBA)
	if !ok {
		return
	}
	m := face.Metrics()
	boxH := t.Size.H
	if boxH <= 0 {
		boxH = max(fixedToFloat(m.Height), text.LineHeight(spec.Size))
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(toNRGBA(t.Color)),
		Face: face,
	}
	y := t.Pos.Y + (boxH-fixedToFloat(m.Ascent+m.Descent))/2 + fixedToFloat(m.Ascent)
	d.Dot = fixed.Point26_6{X: floatToFixed(t.Pos.X), Y: floatToFixed(y)}
	d.DrawString(t.Text)

	if t.Underline {
		uy := y + fixedToFloat(m.Descent)/2
		c.line(&fdraw.Line{A: geom.V(t.Pos.X, uy), B: geom.V(fixedToFloat(d.Dot.X), uy), Thickness: 1, Color: t.Color, Clip: t.Clip})
	}
}

func (c *Canvas) clipRect(r geom.Rect) image.Rectangle {
	pr := image.Rect(int(geom.Floor(r.X)), int(geom.Floor(r.Y)), int(geom.Ceil(r.Right())), int(geom.Ceil(r.Bottom())))
	return pr.Intersect(c.Img.Bounds())
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
