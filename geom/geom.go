// Package geom holds the 2D vector and rectangle types shared by layout, hit-testing
// and render flattening, plus the signed distance functions that define how every
// primitive is covered on screen.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a 2D point or vector in pixel units.
type Vec2 struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

// V is shorthand for Vec2{x, y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Abs returns v with both components made non-negative.
func (v Vec2) Abs() Vec2 { return Vec2{Abs(v.X), Abs(v.Y)} }

// Size is a width/height pair.
type Size struct {
	W float32
	H float32
}

// Insets is a box-model inset on each side.
type Insets struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// UniformInsets returns insets of p on every side.
func UniformInsets(p float32) Insets {
	return Insets{Top: p, Right: p, Bottom: p, Left: p}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float32 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float32 { return in.Top + in.Bottom }

// Rect is an axis-aligned rectangle: origin (X, Y) and size (W, H).
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W*0.5, r.Y + r.H*0.5} }

// Half returns the half extents of r.
func (r Rect) Half() Vec2 { return Vec2{r.W * 0.5, r.H * 0.5} }

// Size returns the size of r.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r. The left and top edges are inclusive and
// the right and bottom edges exclusive, so adjacent rectangles never both claim a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Inset shrinks r by in, clamping the size at zero.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: Max(r.W-in.Horizontal(), 0),
		H: Max(r.H-in.Vertical(), 0),
	}
}

// Intersect returns the overlap of r and o. The result is empty when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := Max(r.X, o.X)
	y0 := Max(r.Y, o.Y)
	x1 := Min(r.Right(), o.Right())
	y1 := Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns |v|.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Lerp interpolates between a and b by t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
