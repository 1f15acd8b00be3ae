package geom

import "math"

// Radii holds one corner radius per corner.
type Radii struct {
	TopLeft     float32 `toml:"top_left"`
	TopRight    float32 `toml:"top_right"`
	BottomLeft  float32 `toml:"bottom_left"`
	BottomRight float32 `toml:"bottom_right"`
}

// UniformRadii returns radii with r on every corner.
func UniformRadii(r float32) Radii {
	return Radii{TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r}
}

// IsZero reports whether every corner is square.
func (r Radii) IsZero() bool {
	return r.TopLeft == 0 && r.TopRight == 0 && r.BottomLeft == 0 && r.BottomRight == 0
}

// Clamp limits every radius to [0, limit].
func (r Radii) Clamp(limit float32) Radii {
	limit = Max(limit, 0)
	return Radii{
		TopLeft:     Clamp(r.TopLeft, 0, limit),
		TopRight:    Clamp(r.TopRight, 0, limit),
		BottomLeft:  Clamp(r.BottomLeft, 0, limit),
		BottomRight: Clamp(r.BottomRight, 0, limit),
	}
}

// ForPoint picks the radius of the quadrant that p (relative to the box center,
// y growing downward) falls in.
func (r Radii) ForPoint(p Vec2) float32 {
	if p.X < 0 {
		if p.Y < 0 {
			return r.TopLeft
		}
		return r.BottomLeft
	}
	if p.Y < 0 {
		return r.TopRight
	}
	return r.BottomRight
}

// SDRoundedBox is the signed distance from p (relative to the box center) to a box with
// half extents half whose corners are rounded per quadrant. Negative inside.
func SDRoundedBox(p, half Vec2, radii Radii) float32 {
	r := Min(radii.ForPoint(p), Min(half.X, half.Y))
	r = Max(r, 0)
	qx := Abs(p.X) - half.X + r
	qy := Abs(p.Y) - half.Y + r
	outside := Vec2{Max(qx, 0), Max(qy, 0)}.Len()
	inside := Min(Max(qx, qy), 0)
	return outside + inside - r
}

// SDCircle is the signed distance from p (relative to the center) to a circle.
func SDCircle(p Vec2, radius float32) float32 {
	return p.Len() - radius
}

// SDSegment is the signed distance from p to a line segment a→b of the given thickness.
// The segment is a rotated box of length |b-a| + thickness, so each end extends by half
// the thickness past its endpoint.
func SDSegment(p, a, b Vec2, thickness float32) float32 {
	d := b.Sub(a)
	length := d.Len()
	center := a.Add(b).Scale(0.5)
	rel := p.Sub(center)
	var local Vec2
	if length > 0 {
		dir := d.Scale(1 / length)
		local = Vec2{X: rel.Dot(dir), Y: dir.X*rel.Y - dir.Y*rel.X}
	} else {
		local = rel
	}
	half := Vec2{X: (length + thickness) * 0.5, Y: thickness * 0.5}
	return SDRoundedBox(local, half, Radii{})
}

// Smoothstep is the Hermite step between e0 and e1.
func Smoothstep(e0, e1, x float32) float32 {
	if e1 == e0 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

// EdgeWidth is the half width of the anti-aliased transition band for a softness value.
func EdgeWidth(softness float32) float32 {
	return 0.5 + Max(softness, 0)
}

// FillCoverage converts a signed distance into fill coverage in [0, 1].
func FillCoverage(d, softness float32) float32 {
	aa := EdgeWidth(softness)
	return 1 - Smoothstep(-aa, aa, d)
}

// StrokeCoverage is the coverage of a hollow band of the given width lying strictly
// inside the shape boundary. A non-positive stroke means a plain fill.
func StrokeCoverage(d, stroke, softness float32) float32 {
	if stroke <= 0 {
		return FillCoverage(d, softness)
	}
	return Max(FillCoverage(d, softness)-FillCoverage(d+stroke, softness), 0)
}

// GradientT maps a y offset from the shape center into the vertical gradient parameter.
func GradientT(localY, halfHeight float32) float32 {
	if halfHeight <= 0 {
		return 0
	}
	return Clamp(localY/halfHeight*0.5+0.5, 0, 1)
}

// Floor and Ceil operate on float32 for row arithmetic.
func Floor(v float32) float32 { return float32(math.Floor(float64(v))) }

// Ceil rounds v up.
func Ceil(v float32) float32 { return float32(math.Ceil(float64(v))) }
