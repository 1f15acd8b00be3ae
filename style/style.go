package style

import "github.com/agiangrant/facet/geom"

// CornerRadius holds four independent corner radii.
type CornerRadius = geom.Radii

// Uniform returns a CornerRadius with r on every corner.
func Uniform(r float32) CornerRadius {
	return geom.UniformRadii(r)
}

// Border is an inner stroke drawn along the widget edge.
type Border struct {
	Width float32 `toml:"width"`
	Color Color   `toml:"color"`
	// Radius overrides the widget's corner radii for the border when set.
	Radius *CornerRadius `toml:"radius,omitempty"`
}

// Shadow is a blurred copy of the widget box drawn underneath it.
type Shadow struct {
	Offset geom.Vec2 `toml:"offset"`
	Blur   float32   `toml:"blur"`
	Color  Color     `toml:"color"`
}

// Gradient is a vertical two-stop gradient, Start at the top edge and End at the bottom.
type Gradient struct {
	Start Color `toml:"start"`
	End   Color `toml:"end"`
}

// Style is the resolved decoration of a widget. Nil pointers mean "not set".
type Style struct {
	Background *Color
	Gradient   *Gradient
	Border     *Border
	Shadow     *Shadow
	Radius     CornerRadius

	TextColor  *Color
	FontSize   float32
	FontFamily string
	Bold       bool
	Italic     bool
}

// Fill returns the start and end fill colors. A solid background yields start == end.
// ok is false when the style paints no background.
func (s Style) Fill() (start, end Color, ok bool) {
	if s.Gradient != nil {
		return s.Gradient.Start, s.Gradient.End, true
	}
	if s.Background != nil {
		return *s.Background, *s.Background, true
	}
	return Color{}, Color{}, false
}

// Merge returns s with every field that o sets copied over it.
func (s Style) Merge(o Style) Style {
	if o.Background != nil {
		s.Background = o.Background
		s.Gradient = nil
	}
	if o.Gradient != nil {
		s.Gradient = o.Gradient
	}
	if o.Border != nil {
		s.Border = o.Border
	}
	if o.Shadow != nil {
		s.Shadow = o.Shadow
	}
	if !o.Radius.IsZero() {
		s.Radius = o.Radius
	}
	if o.TextColor != nil {
		s.TextColor = o.TextColor
	}
	if o.FontSize > 0 {
		s.FontSize = o.FontSize
	}
	if o.FontFamily != "" {
		s.FontFamily = o.FontFamily
	}
	s.Bold = s.Bold || o.Bold
	s.Italic = s.Italic || o.Italic
	return s
}

func vec(x, y float32) geom.Vec2 { return geom.V(x, y) }

// Ptr returns a pointer to v, for filling optional style fields.
func Ptr[T any](v T) *T {
	return &v
}
