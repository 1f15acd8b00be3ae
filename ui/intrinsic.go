package ui

import (
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/richtext"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/text"
)

// Intrinsic sizes used when a widget has no text to size itself by.
const (
	textInputWidth     = 200
	controlHeight      = 32
	defaultCheckbox    = 20
	checkboxLabelGap   = 8
	sliderWidth        = 200
	defaultTrackHeight = 4
	defaultThumbRadius = 8
	imageSize          = 100
	dropdownMinWidth   = 160
	chevronWidth       = 24
	tabMinWidth        = 80
	buttonPadX         = 16
	buttonPadY         = 8
	inputPadX          = 8
)

// Intrinsic returns the natural size of n: what it asks for before flex stretching.
func Intrinsic(n *Node, m text.Measurer) geom.Size {
	if m == nil {
		m = text.EstimateMeasurer{}
	}
	return (&layouter{m: m}).intrinsic(n)
}

func (l *layouter) intrinsic(n *Node) geom.Size {
	size := l.natural(n)
	if n.Width > 0 {
		size.W = n.Width
	}
	if n.Height > 0 {
		size.H = n.Height
	}
	return size
}

func fontOf(n *Node) text.FontSpec {
	return text.FontSpec{
		Family: n.Style.FontFamily,
		Size:   n.Style.FontSize,
		Bold:   n.Style.Bold,
		Italic: n.Style.Italic,
	}.Normalize()
}

func richBase(n *Node, color style.Color) richtext.Style {
	f := fontOf(n)
	return richtext.Style{Color: color, Size: f.Size, Family: f.Family, Bold: f.Bold, Italic: f.Italic}
}

func (l *layouter) measureRich(n *Node, s string) geom.Size {
	return richtext.Parse(s, richBase(n, style.Black)).Measure(l.m)
}

func (l *layouter) natural(n *Node) geom.Size {
	switch c := n.Content.(type) {
	case *Container:
		return l.containerSize(c)
	case *Label:
		return l.measureRich(n, c.Text)
	case *Button:
		sz := l.measureRich(n, c.Text)
		return geom.Size{W: sz.W + 2*buttonPadX, H: sz.H + 2*buttonPadY}
	case *TextInput:
		return geom.Size{W: textInputWidth, H: fieldHeight(n) + errorBand(c)}
	case *Checkbox:
		box := c.Size
		if box == 0 {
			box = defaultCheckbox
		}
		return l.withLabel(n, box, box, c.Label)
	case *Slider:
		return geom.Size{W: sliderWidth, H: max(2*thumbRadius(c), trackHeight(c))}
	case *Dropdown:
		var widest float32
		for _, opt := range c.Options {
			widest = max(widest, l.m.Measure(opt, fontOf(n)).W)
		}
		widest = max(widest, l.m.Measure(c.Placeholder, fontOf(n)).W)
		return geom.Size{
			W: max(dropdownMinWidth, widest+2*inputPadX+chevronWidth),
			H: max(controlHeight, text.LineHeight(fontOf(n).Size)+2*buttonPadY),
		}
	case *Image:
		return geom.Size{W: imageSize, H: imageSize}
	case *DataGrid:
		rows := min(c.rowCount(c.view()), naturalGridRows)
		return geom.Size{W: c.naturalWidth(), H: c.headerHeight() + float32(rows)*c.rowHeight()}
	case *TreeView:
		var w float32
		visible := c.Visible()
		for _, v := range visible[:min(len(visible), autoSampleRows)] {
			label := l.m.Measure(v.Item.Icon+v.Item.Label, fontOf(n)).W
			w = max(w, float32(v.Depth)*c.indent()+expanderWidth+label+2*cellPadding)
		}
		return geom.Size{W: w, H: float32(len(visible)) * c.rowHeight()}
	case *Tabs:
		var page geom.Size
		if p := c.activePage(); p != nil {
			page = l.intrinsic(p)
		}
		return geom.Size{W: max(page.W, float32(c.count())*tabMinWidth), H: c.headerHeight() + page.H}
	case *Divider:
		t := dividerThickness(c)
		if c.Vertical {
			return geom.Size{W: t}
		}
		return geom.Size{H: t}
	case *Spacer:
		return geom.Size{W: c.Size, H: c.Size}
	case *Icon:
		sz := iconSize(c)
		return geom.Size{W: sz, H: sz}
	case *ProgressBar:
		return geom.Size{W: progressWidth, H: progressHeight}
	case *RadioButton:
		return l.withLabel(n, radioSize(c), radioSize(c), c.Label)
	case *ToggleSwitch:
		w := switchWidth(c)
		return l.withLabel(n, w, w/2, c.Label)
	case *ListView:
		var w float32
		for _, item := range c.Items[:min(len(c.Items), autoSampleRows)] {
			w = max(w, l.m.Measure(item, fontOf(n)).W)
		}
		rows := min(len(c.Items), naturalGridRows)
		return geom.Size{W: max(listWidth, w+2*cellPadding), H: float32(rows) * c.itemHeight()}
	case *KpiCard:
		return l.kpiSize(n, c)
	}
	return geom.Size{}
}

// withLabel sizes a control of w by h followed by an optional label.
func (l *layouter) withLabel(n *Node, w, h float32, label string) geom.Size {
	if label == "" {
		return geom.Size{W: w, H: h}
	}
	sz := l.measureRich(n, label)
	return geom.Size{W: w + checkboxLabelGap + sz.W, H: max(h, sz.H)}
}

// fieldHeight is the height of a single-line input box.
func fieldHeight(n *Node) float32 {
	return max(controlHeight, text.LineHeight(fontOf(n).Size)+2*buttonPadY)
}

const (
	errorFontSize = 12
	errorGap      = 2
)

// errorBand is the space an input with rules keeps under its box for the error line.
func errorBand(c *TextInput) float32 {
	if len(c.Rules) == 0 {
		return 0
	}
	return errorGap + text.LineHeight(errorFontSize)
}

// kpiFonts returns the title, value and trend fonts of a card.
func kpiFonts(n *Node) (title, value, trend text.FontSpec) {
	base := fontOf(n)
	title, trend = base, base
	title.Size = base.Size * 0.875
	trend.Size = title.Size
	value = base
	value.Size = max(kpiValueSize, base.Size*1.5)
	value.Bold = true
	return title, value, trend
}

func kpiTrendText(c *KpiCard) string {
	if c.Trend == nil {
		return ""
	}
	return c.Trend.Direction.arrow() + c.Trend.Text
}

func (l *layouter) kpiSize(n *Node, c *KpiCard) geom.Size {
	tf, vf, rf := kpiFonts(n)
	title, value := l.m.Measure(c.Title, tf), l.m.Measure(c.Value, vf)
	w := max(title.W, value.W)
	h := text.LineHeight(tf.Size) + kpiGap + text.LineHeight(vf.Size)
	if s := kpiTrendText(c); s != "" {
		w = max(w, l.m.Measure(s, rf).W)
		h += kpiGap + text.LineHeight(rf.Size)
	}
	return geom.Size{W: w + 2*kpiPadding, H: h + 2*kpiPadding}
}

func thumbRadius(s *Slider) float32 {
	if s.ThumbRadius > 0 {
		return s.ThumbRadius
	}
	return defaultThumbRadius
}

func trackHeight(s *Slider) float32 {
	if s.TrackHeight > 0 {
		return s.TrackHeight
	}
	return defaultTrackHeight
}

func dividerThickness(d *Divider) float32 {
	if d.Thickness > 0 {
		return d.Thickness
	}
	return 1
}

// containerSize is the size a container needs to show every child at its intrinsic
// size, padding included.
func (l *layouter) containerSize(c *Container) geom.Size {
	lay := c.Layout
	var inner geom.Size
	count := len(c.Children)
	gaps := lay.Spacing * float32(max(count-1, 0))

	switch lay.Direction {
	case DirRow:
		for _, child := range c.Children {
			sz := l.intrinsic(child)
			inner.W += sz.W
			inner.H = max(inner.H, sz.H)
		}
		inner.W += gaps
	case DirColumn:
		for _, child := range c.Children {
			sz := l.intrinsic(child)
			inner.W = max(inner.W, sz.W)
			inner.H += sz.H
		}
		inner.H += gaps
	case DirGrid:
		inner = l.gridSize(c)
	case DirNone:
		for _, child := range c.Children {
			sz := l.intrinsic(child)
			inner.W = max(inner.W, sz.W)
			inner.H = max(inner.H, sz.H)
		}
	}
	return geom.Size{
		W: inner.W + lay.Padding.Horizontal(),
		H: inner.H + lay.Padding.Vertical(),
	}
}

// gridSize sizes every column to its widest single-column child and every row to its
// tallest single-row child. Px template tracks keep their value.
func (l *layouter) gridSize(c *Container) geom.Size {
	lay := c.Layout
	cols := gridColumns(lay)
	cells, rows := placeGrid(c.Children, cols, false)
	if rows == 0 {
		return geom.Size{}
	}
	colW := make([]float32, cols)
	rowH := make([]float32, rows)
	for i, child := range c.Children {
		sz := l.intrinsic(child)
		if cells[i].colSpan == 1 {
			colW[cells[i].col] = max(colW[cells[i].col], sz.W)
		}
		if cells[i].rowSpan == 1 {
			rowH[cells[i].row] = max(rowH[cells[i].row], sz.H)
		}
	}
	for i, t := range lay.TemplateColumns {
		if i < cols && t.Kind == TrackPx {
			colW[i] = t.Value
		}
	}
	for i, t := range lay.TemplateRows {
		if i < rows && t.Kind == TrackPx {
			rowH[i] = t.Value
		}
	}
	var out geom.Size
	for _, w := range colW {
		out.W += w
	}
	for _, h := range rowH {
		out.H += h
	}
	out.W += lay.Spacing * float32(cols-1)
	out.H += lay.Spacing * float32(rows-1)
	return out
}
