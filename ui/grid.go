package ui

import (
	"github.com/agiangrant/facet/geom"
)

// gridCell is the resolved placement of one grid child.
type gridCell struct {
	col, row         int
	colSpan, rowSpan int
}

// occupancy tracks claimed cells of a grid with a fixed column count and as many
// rows as placement needs.
type occupancy struct {
	cols  int
	cells []bool
}

func (o *occupancy) taken(c, r int) bool {
	i := r*o.cols + c
	return i < len(o.cells) && o.cells[i]
}

func (o *occupancy) fits(c, r, cs, rs int) bool {
	if c+cs > o.cols {
		return false
	}
	for y := r; y < r+rs; y++ {
		for x := c; x < c+cs; x++ {
			if o.taken(x, y) {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) claim(c, r, cs, rs int) {
	if need := (r + rs) * o.cols; need > len(o.cells) {
		o.cells = append(o.cells, make([]bool, need-len(o.cells))...)
	}
	for y := r; y < r+rs; y++ {
		for x := c; x < c+cs; x++ {
			o.cells[y*o.cols+x] = true
		}
	}
}

func gridColumns(lay Layout) int {
	switch {
	case lay.Columns > 0:
		return lay.Columns
	case len(lay.TemplateColumns) > 0:
		return len(lay.TemplateColumns)
	}
	return 1
}

// placeGrid resolves every child to a cell and returns the number of rows used.
//
// Explicitly placed children claim their cells first, in tree order. A child whose
// cells are already claimed, or whose column lies outside the grid, is placed
// automatically instead. Automatic placement walks a cursor row by row and skips
// any position where the child's span would overlap a claimed cell or the grid edge.
func placeGrid(children []*Node, cols int, warn bool) ([]gridCell, int) {
	cells := make([]gridCell, len(children))
	occ := &occupancy{cols: cols, cells: acquireCells(cols * ((len(children) + cols - 1) / cols))}
	defer func() { releaseCells(occ.cells) }()

	auto := make([]bool, len(children))
	rows := 0
	for i, child := range children {
		cs, rs := child.Grid.spans()
		cs = min(cs, cols)
		if !child.Grid.Explicit() {
			auto[i] = true
			continue
		}
		c, r := *child.Grid.Col, *child.Grid.Row
		if c >= cols {
			if warn {
				logger.Warnf("grid child %s: column %d outside %d columns, placing automatically", nodeLabel(child), c, cols)
			}
			auto[i] = true
			continue
		}
		cs = min(cs, cols-c)
		if !occ.fits(c, r, cs, rs) {
			if warn {
				logger.Warnf("grid child %s: cell (%d,%d) already claimed, placing automatically", nodeLabel(child), c, r)
			}
			auto[i] = true
			continue
		}
		occ.claim(c, r, cs, rs)
		cells[i] = gridCell{c, r, cs, rs}
		rows = max(rows, r+rs)
	}

	c, r := 0, 0
	for i, child := range children {
		if !auto[i] {
			continue
		}
		cs, rs := child.Grid.spans()
		cs = min(cs, cols)
		for !occ.fits(c, r, cs, rs) {
			c++
			if c+cs > cols {
				c, r = 0, r+1
			}
		}
		occ.claim(c, r, cs, rs)
		cells[i] = gridCell{c, r, cs, rs}
		rows = max(rows, r+rs)
		c += cs
		if c >= cols {
			c, r = 0, r+1
		}
	}
	return cells, rows
}

// resolveTracks sizes tracks to fill avail: Px tracks take their value and the rest is
// shared among Fr and Auto tracks by weight.
func resolveTracks(tracks []Track, avail, spacing float32, out []float32) {
	var fixed, weights float32
	for _, t := range tracks {
		if t.Kind == TrackPx {
			fixed += t.Value
		} else {
			weights += t.weight()
		}
	}
	free := max(avail-fixed-spacing*float32(len(tracks)-1), 0)
	for i, t := range tracks {
		switch {
		case t.Kind == TrackPx:
			out[i] = t.Value
		case weights > 0:
			out[i] = free * t.weight() / weights
		default:
			out[i] = 0
		}
	}
}

func equalTracks(n int) []Track {
	tracks := make([]Track, n)
	for i := range tracks {
		tracks[i] = Fr(1)
	}
	return tracks
}

// trackSpan returns the offset of track i and the extent of span tracks starting at i,
// including the spacing between them.
func trackSpan(sizes []float32, spacing float32, i, span int) (offset, extent float32) {
	for k := range i {
		offset += sizes[k] + spacing
	}
	for k := i; k < i+span && k < len(sizes); k++ {
		extent += sizes[k]
	}
	extent += spacing * float32(span-1)
	return offset, extent
}

func (l *layouter) layoutGrid(n *Node, c *Container, content geom.Rect) {
	lay := c.Layout
	cols := gridColumns(lay)
	cells, rows := placeGrid(c.Children, cols, true)
	if rows == 0 {
		return
	}

	colTracks := lay.TemplateColumns
	if len(colTracks) != cols {
		colTracks = equalTracks(cols)
	}
	colSizes := acquireFloats(cols)
	defer releaseFloats(colSizes)
	resolveTracks(colTracks, content.W, lay.Spacing, colSizes)

	rowSizes := acquireFloats(rows)
	defer releaseFloats(rowSizes)
	l.rowSizes(n, c, cells, rows, content.H, rowSizes)

	for i, child := range c.Children {
		cell := cells[i]
		x, w := trackSpan(colSizes, lay.Spacing, cell.col, cell.colSpan)
		y, h := trackSpan(rowSizes, lay.Spacing, cell.row, cell.rowSpan)
		area := geom.R(content.X+x, content.Y+y, w, h)
		l.place(child, alignInCell(child, l.intrinsic(child), area, lay.Align))
	}
}

// rowSizes fills out with one height per row. Template rows fill the content height.
// Without a template, a grid with an explicit height splits it equally; otherwise each
// row is as tall as its tallest single-row child.
func (l *layouter) rowSizes(n *Node, c *Container, cells []gridCell, rows int, avail float32, out []float32) {
	lay := c.Layout
	if len(lay.TemplateRows) > 0 {
		tracks := lay.TemplateRows
		if len(tracks) < rows {
			tracks = append(tracks[:len(tracks):len(tracks)], make([]Track, rows-len(tracks))...)
			for i := len(lay.TemplateRows); i < rows; i++ {
				tracks[i] = Auto()
			}
		}
		resolveTracks(tracks[:rows], avail, lay.Spacing, out)
		return
	}
	if n.Height > 0 {
		resolveTracks(equalTracks(rows), avail, lay.Spacing, out)
		return
	}
	for i, child := range c.Children {
		if cells[i].rowSpan == 1 {
			out[cells[i].row] = max(out[cells[i].row], l.intrinsic(child).H)
		}
	}
}

func alignInCell(child *Node, natural geom.Size, area geom.Rect, align Align) geom.Rect {
	w, h := area.W, area.H
	if child.Width > 0 {
		w = child.Width
	} else if align != AlignStretch {
		w = min(natural.W, area.W)
	}
	if child.Height > 0 {
		h = child.Height
	} else if align != AlignStretch {
		h = min(natural.H, area.H)
	}
	var dx, dy float32
	switch align {
	case AlignCenter:
		dx, dy = (area.W-w)/2, (area.H-h)/2
	case AlignEnd:
		dx, dy = area.W-w, area.H-h
	}
	return geom.R(area.X+dx, area.Y+dy, w, h)
}
