package ui

import (
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/internal/trace"
	"github.com/agiangrant/facet/text"
)

var logger = trace.New("ui")

// ============================================================================
// Layout
// ============================================================================
//
// ComputeLayout is a single top-down pass. Every container sizes its children
// from their intrinsic sizes (intrinsic.go) and the space it was given, writes
// their Bounds, and recurses. Bounds are absolute and never include a scroll
// offset; scrolling only moves things at render and hit-test time.

// ComputeLayout assigns Bounds to root and every live descendant, with root filling
// the rectangle (x, y, w, h). It panics with a *LayoutError when the tree or the
// rectangle holds an invalid configuration; call Validate and ValidateArea first to
// get the error as a value.
//
// Calling ComputeLayout twice with the same inputs produces identical bounds.
func ComputeLayout(root *Node, x, y, w, h float32, m text.Measurer) {
	if root == nil {
		return
	}
	if err := ValidateArea(root, x, y, w, h); err != nil {
		panic(err)
	}
	if err := Validate(root); err != nil {
		panic(err)
	}
	if m == nil {
		m = text.EstimateMeasurer{}
	}
	l := &layouter{m: m}
	l.place(root, geom.R(x, y, w, h))
}

type layouter struct {
	m text.Measurer
}

func (l *layouter) place(n *Node, r geom.Rect) {
	n.Bounds = r
	switch c := n.Content.(type) {
	case *Container:
		l.layoutContainer(n, c)
	case *DataGrid:
		c.resolveColumns(r.W, fontOf(n), l.m)
	case *Tabs:
		if page := c.activePage(); page != nil {
			hh := min(c.headerHeight(), r.H)
			l.place(page, geom.R(r.X, r.Y+hh, r.W, r.H-hh))
		}
	}
}

func (l *layouter) layoutContainer(n *Node, c *Container) {
	box := n.Bounds
	if c.Layout.Scrollable {
		natural := l.containerSize(c)
		switch c.Layout.Direction {
		case DirRow:
			box.W = max(box.W, natural.W)
		case DirNone:
			box.W = max(box.W, natural.W)
			box.H = max(box.H, natural.H)
		default:
			box.H = max(box.H, natural.H)
		}
	}
	c.ContentSize = box.Size()

	content := box.Inset(c.Layout.Padding)
	switch c.Layout.Direction {
	case DirRow, DirColumn:
		l.layoutFlex(c.Children, content, c.Layout)
	case DirGrid:
		l.layoutGrid(n, c, content)
	case DirNone:
		for _, child := range c.Children {
			l.place(child, content)
		}
	}
}

// axis helpers let one flex routine serve rows and columns.
func mainOf(s geom.Size, row bool) float32 {
	if row {
		return s.W
	}
	return s.H
}

func crossOf(s geom.Size, row bool) float32 {
	if row {
		return s.H
	}
	return s.W
}

func (l *layouter) layoutFlex(children []*Node, content geom.Rect, lay Layout) {
	count := len(children)
	if count == 0 {
		return
	}
	row := lay.Direction == DirRow
	avail := mainOf(content.Size(), row)
	crossAvail := crossOf(content.Size(), row)
	gaps := lay.Spacing * float32(count-1)

	mains := acquireFloats(count)
	defer releaseFloats(mains)
	naturals := make([]geom.Size, count)

	var fixed, shares float32
	for i, child := range children {
		naturals[i] = l.intrinsic(child)
		if child.Flex > 0 {
			shares += child.Flex
			continue
		}
		mains[i] = mainOf(naturals[i], row)
		fixed += mains[i]
	}

	leftover := max(avail-fixed-gaps, 0)
	var start, extra float32
	if shares > 0 {
		for i, child := range children {
			if child.Flex > 0 {
				mains[i] = leftover * child.Flex / shares
			}
		}
	} else if leftover > 0 {
		switch lay.Justify {
		case JustifyEnd:
			start = leftover
		case JustifyCenter:
			start = leftover / 2
		case JustifySpaceBetween:
			if count > 1 {
				extra = leftover / float32(count-1)
			}
		case JustifySpaceAround:
			extra = leftover / float32(count)
			start = extra / 2
		}
	}

	cursor := start
	for i, child := range children {
		cross, offset := crossPlacement(child, naturals[i], crossAvail, lay.Align, row)
		var r geom.Rect
		if row {
			r = geom.R(content.X+cursor, content.Y+offset, mains[i], cross)
		} else {
			r = geom.R(content.X+offset, content.Y+cursor, cross, mains[i])
		}
		l.place(child, r)
		cursor += mains[i] + lay.Spacing + extra
	}
}

// crossPlacement returns a child's cross-axis size and its offset from the content
// edge. An explicit cross size always wins over stretching.
func crossPlacement(child *Node, natural geom.Size, avail float32, align Align, row bool) (size, offset float32) {
	explicit := child.Width
	if row {
		explicit = child.Height
	}
	switch {
	case explicit > 0:
		size = explicit
	case align == AlignStretch:
		return avail, 0
	default:
		size = crossOf(natural, row)
	}
	switch align {
	case AlignCenter:
		offset = (avail - size) / 2
	case AlignEnd:
		offset = avail - size
	}
	return size, offset
}
