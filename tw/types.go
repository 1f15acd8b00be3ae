package tw

import (
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
)

// State is the interaction state a class variant applies to.
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
	StateActive
)

// Breakpoint is a responsive width threshold, mobile first.
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM              // ≥640px
	BreakpointMD              // ≥768px
	BreakpointLG              // ≥1024px
	BreakpointXL              // ≥1280px
	Breakpoint2XL             // ≥1536px
)

// Properties is a partial style: nil fields were not set by any class.
type Properties struct {
	// Colors
	TextColor       *style.Color
	BackgroundColor *style.Color
	BorderColor     *style.Color

	// Typography
	FontFamily *string
	FontSize   *float32
	Bold       *bool
	Italic     *bool

	// Spacing
	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32

	// Sizing
	Width  *float32
	Height *float32

	// Flexbox
	Direction      *string // "row", "column", "grid", "none"
	JustifyContent *string // "start", "end", "center", "between", "around"
	AlignItems     *string // "start", "end", "center", "stretch"
	Flex           *float32
	Gap            *float32

	// Grid
	GridColumns    *int
	GridColumnSpan *int
	GridRowSpan    *int
	GridColumn     *int // zero-based start column
	GridRow        *int // zero-based start row

	// Borders
	BorderWidth  *float32
	BorderRadius *float32

	// Effects
	Shadow     *style.Shadow
	NoShadow   bool
	Scrollable *bool
}

// ComputedStyles holds the properties of a class string split by state.
type ComputedStyles struct {
	Base   Properties
	Hover  Properties
	Focus  Properties
	Active Properties

	// Responsive variants, applied on top of Base at and above their width.
	SM  Properties
	MD  Properties
	LG  Properties
	XL  Properties
	XXL Properties
}

// ParsedClass is a class with its variant prefixes stripped.
type ParsedClass struct {
	Breakpoint     Breakpoint
	State          State
	BaseClass      string
	ArbitraryValue *ArbitraryValue
}

// ArbitraryValue is a bracketed value such as w-[33%] or bg-[#1da1f2].
type ArbitraryValue struct {
	Property string
	Value    string
}

// Merge copies every field p sets onto s. Later classes win.
func (s *Properties) Merge(p Properties) {
	if p.TextColor != nil {
		s.TextColor = p.TextColor
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = p.BackgroundColor
	}
	if p.BorderColor != nil {
		s.BorderColor = p.BorderColor
	}
	if p.FontFamily != nil {
		s.FontFamily = p.FontFamily
	}
	if p.FontSize != nil {
		s.FontSize = p.FontSize
	}
	if p.Bold != nil {
		s.Bold = p.Bold
	}
	if p.Italic != nil {
		s.Italic = p.Italic
	}
	if p.PaddingTop != nil {
		s.PaddingTop = p.PaddingTop
	}
	if p.PaddingRight != nil {
		s.PaddingRight = p.PaddingRight
	}
	if p.PaddingBottom != nil {
		s.PaddingBottom = p.PaddingBottom
	}
	if p.PaddingLeft != nil {
		s.PaddingLeft = p.PaddingLeft
	}
	if p.Width != nil {
		s.Width = p.Width
	}
	if p.Height != nil {
		s.Height = p.Height
	}
	if p.Direction != nil {
		s.Direction = p.Direction
	}
	if p.JustifyContent != nil {
		s.JustifyContent = p.JustifyContent
	}
	if p.AlignItems != nil {
		s.AlignItems = p.AlignItems
	}
	if p.Flex != nil {
		s.Flex = p.Flex
	}
	if p.Gap != nil {
		s.Gap = p.Gap
	}
	if p.GridColumns != nil {
		s.GridColumns = p.GridColumns
	}
	if p.GridColumnSpan != nil {
		s.GridColumnSpan = p.GridColumnSpan
	}
	if p.GridRowSpan != nil {
		s.GridRowSpan = p.GridRowSpan
	}
	if p.GridColumn != nil {
		s.GridColumn = p.GridColumn
	}
	if p.GridRow != nil {
		s.GridRow = p.GridRow
	}
	if p.BorderWidth != nil {
		s.BorderWidth = p.BorderWidth
	}
	if p.BorderRadius != nil {
		s.BorderRadius = p.BorderRadius
	}
	if p.Shadow != nil {
		s.Shadow, s.NoShadow = p.Shadow, false
	}
	if p.NoShadow {
		s.Shadow, s.NoShadow = nil, true
	}
	if p.Scrollable != nil {
		s.Scrollable = p.Scrollable
	}
}

// Padding returns the set padding sides over fallback.
func (s Properties) Padding(fallback geom.Insets) geom.Insets {
	if s.PaddingTop != nil {
		fallback.Top = *s.PaddingTop
	}
	if s.PaddingRight != nil {
		fallback.Right = *s.PaddingRight
	}
	if s.PaddingBottom != nil {
		fallback.Bottom = *s.PaddingBottom
	}
	if s.PaddingLeft != nil {
		fallback.Left = *s.PaddingLeft
	}
	return fallback
}

// Style converts the decoration fields to a style.Style. Layout fields are ignored.
func (s Properties) Style() style.Style {
	var out style.Style
	out.Background = s.BackgroundColor
	out.TextColor = s.TextColor
	if s.FontSize != nil {
		out.FontSize = *s.FontSize
	}
	if s.FontFamily != nil {
		out.FontFamily = *s.FontFamily
	}
	if s.Bold != nil {
		out.Bold = *s.Bold
	}
	if s.Italic != nil {
		out.Italic = *s.Italic
	}
	if s.BorderRadius != nil {
		out.Radius = style.Uniform(*s.BorderRadius)
	}
	if s.BorderWidth != nil || s.BorderColor != nil {
		b := &style.Border{Width: 1, Color: style.MustHex("#e5e7eb")}
		if s.BorderWidth != nil {
			b.Width = *s.BorderWidth
		}
		if s.BorderColor != nil {
			b.Color = *s.BorderColor
		}
		out.Border = b
	}
	out.Shadow = s.Shadow
	return out
}
