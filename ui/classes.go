package ui

import (
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/tw"
)

// classBase is a node's own configuration before any class was applied, so classes
// can be re-resolved for a new window width without compounding.
type classBase struct {
	style  style.Style
	hover  *style.Style
	active *style.Style
	focus  *style.Style
	flex   float32
	width  float32
	height float32
	grid   GridPlacement
	layout Layout
}

// ApplyClasses resolves every node's Classes against the current theme and the
// default breakpoints for a window of the given width. Calling it again for the same
// width changes nothing; calling it for a new width re-resolves responsive variants
// from each node's original configuration.
func ApplyClasses(root *Node, width float32) {
	ApplyClassesWith(root, width, tw.CurrentTheme(), tw.DefaultBreakpoints())
}

// ApplyClassesWith is ApplyClasses with an explicit theme and breakpoints.
func ApplyClassesWith(root *Node, width float32, theme *tw.Theme, bps tw.BreakpointConfig) {
	Walk(root, func(n *Node) bool {
		if n.Classes != "" || n.classes != nil {
			applyClasses(n, width, theme, bps)
		}
		return true
	})
}

func applyClasses(n *Node, width float32, theme *tw.Theme, bps tw.BreakpointConfig) {
	if n.classes == nil {
		base := &classBase{
			style: n.Style, hover: n.Hover, active: n.Active, focus: n.Focus,
			flex: n.Flex, width: n.Width, height: n.Height, grid: n.Grid,
		}
		if c := n.Container(); c != nil {
			base.layout = c.Layout
		}
		n.classes = base
	}
	b := n.classes
	cs := tw.ParseClassesWith(n.Classes, theme)
	props := cs.ResolveForWidth(width, bps)

	n.Style = b.style.Merge(props.Style())
	if props.NoShadow {
		n.Style.Shadow = nil
	}
	n.Hover = overlay(b.hover, cs.StateOverlay(tw.StateHover))
	n.Active = overlay(b.active, cs.StateOverlay(tw.StateActive))
	n.Focus = overlay(b.focus, cs.StateOverlay(tw.StateFocus))

	n.Flex, n.Width, n.Height, n.Grid = b.flex, b.width, b.height, b.grid
	if props.Flex != nil {
		n.Flex = *props.Flex
	}
	if props.Width != nil {
		n.Width = *props.Width
	}
	if props.Height != nil {
		n.Height = *props.Height
	}
	if props.GridColumn != nil {
		n.Grid.Col = props.GridColumn
	}
	if props.GridRow != nil {
		n.Grid.Row = props.GridRow
	}
	if props.GridColumnSpan != nil {
		n.Grid.ColSpan = *props.GridColumnSpan
	}
	if props.GridRowSpan != nil {
		n.Grid.RowSpan = *props.GridRowSpan
	}

	if c := n.Container(); c != nil {
		c.Layout = applyLayout(b.layout, props)
	}
}

func overlay(base *style.Style, p tw.Properties) *style.Style {
	if p == (tw.Properties{}) {
		return base
	}
	var st style.Style
	if base != nil {
		st = *base
	}
	st = st.Merge(p.Style())
	if p.NoShadow {
		st.Shadow = nil
	}
	return &st
}

func applyLayout(l Layout, p tw.Properties) Layout {
	l.Padding = p.Padding(l.Padding)
	if p.Gap != nil {
		l.Spacing = *p.Gap
	}
	if p.GridColumns != nil {
		l.Columns = *p.GridColumns
	}
	if p.Scrollable != nil {
		l.Scrollable = *p.Scrollable
	}
	if p.Direction != nil {
		switch *p.Direction {
		case "row":
			l.Direction = DirRow
		case "column":
			l.Direction = DirColumn
		case "grid":
			l.Direction = DirGrid
		case "none":
			l.Direction = DirNone
		}
	}
	if p.JustifyContent != nil {
		switch *p.JustifyContent {
		case "start":
			l.Justify = JustifyStart
		case "end":
			l.Justify = JustifyEnd
		case "center":
			l.Justify = JustifyCenter
		case "between":
			l.Justify = JustifySpaceBetween
		case "around":
			l.Justify = JustifySpaceAround
		}
	}
	if p.AlignItems != nil {
		switch *p.AlignItems {
		case "start":
			l.Align = AlignStart
		case "end":
			l.Align = AlignEnd
		case "center":
			l.Align = AlignCenter
		case "stretch":
			l.Align = AlignStretch
		}
	}
	return l
}
