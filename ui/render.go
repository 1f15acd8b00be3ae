package ui

import (
	"github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/richtext"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/text"
)

// ============================================================================
// Render Flattening
// ============================================================================
//
// Rendering walks the laid-out tree once in paint order and appends typed
// instances to a draw.List. Scroll offsets and clips are applied here: a node
// inside a scrollable viewport is drawn at Bounds minus the accumulated scroll
// and carries the viewport intersection as its clip. Nodes entirely outside
// their clip are skipped. Open dropdown popups and the handle under an active
// drag go to the overlay layer.

// DefaultOverscan is the number of rows rendered beyond each edge of a virtualized
// viewport.
const DefaultOverscan = 2

// Renderer flattens trees into draw lists.
type Renderer struct {
	Measurer text.Measurer
	Theme    style.GlobalStyle
	// Overscan is the virtualization margin in rows; negative values mean none.
	Overscan int
}

// NewRenderer returns a renderer with DefaultOverscan.
func NewRenderer(m text.Measurer, theme style.GlobalStyle) *Renderer {
	if m == nil {
		m = text.EstimateMeasurer{}
	}
	return &Renderer{Measurer: m, Theme: theme, Overscan: DefaultOverscan}
}

// RenderUI flattens root with the Modern theme and DefaultOverscan.
func RenderUI(root *Node, s *InteractionState, m text.Measurer) *draw.List {
	return NewRenderer(m, style.Modern()).Render(root, s)
}

// Render returns a new draw list for root.
func (r *Renderer) Render(root *Node, s *InteractionState) *draw.List {
	l := &draw.List{}
	r.RenderInto(l, root, s)
	return l
}

// RenderInto resets l and fills it with root, reusing l's capacity.
func (r *Renderer) RenderInto(l *draw.List, root *Node, s *InteractionState) {
	l.Reset()
	if root == nil {
		return
	}
	if s == nil {
		s = NewInteractionState()
	}
	if r.Measurer == nil {
		cp := *r
		cp.Measurer = text.EstimateMeasurer{}
		r = &cp
	}
	f := &frame{Renderer: r, s: s, base: &l.Base, over: &l.Overlay}
	f.node(root, geom.Vec2{}, draw.NoClip)
	for _, o := range openDropdowns(root, s) {
		f.popup(o)
	}
	f.dragOverlay(root)
}

// VisibleRange returns the half-open range of rows to render for a viewport of height
// viewport scrolled by scroll, including overscan rows on both sides.
func VisibleRange(scroll, viewport, rowHeight float32, rows, overscan int) (start, end int) {
	if rows <= 0 || rowHeight <= 0 {
		return 0, 0
	}
	overscan = max(overscan, 0)
	start = int(geom.Floor(scroll/rowHeight)) - overscan
	end = int(geom.Ceil((scroll+viewport)/rowHeight)) + overscan
	start = geom.Clamp(start, 0, rows)
	end = geom.Clamp(end, start, rows)
	return start, end
}

type frame struct {
	*Renderer
	s    *InteractionState
	base *draw.Layer
	over *draw.Layer
}

func (f *frame) node(n *Node, off geom.Vec2, clip geom.Rect) {
	screen := n.Bounds.Translate(off)
	if clip != draw.NoClip && !screen.Intersects(clip) {
		return
	}
	st := f.style(n)

	switch c := n.Content.(type) {
	case *Container:
		f.box(f.base, screen, st, clip)
		childOff, childClip := childSpace(n, f.s, off, screen, clip)
		for _, child := range c.Children {
			f.node(child, childOff, childClip)
		}
		if c.Layout.Scrollable {
			f.scrollbar(n, screen, clip)
		}
	case *Label:
		f.box(f.base, screen, st, clip)
		size := f.measure(n, c.Text)
		f.rich(f.base, n, c.Text, geom.V(screen.X, screen.Y+(screen.H-size.H)/2), f.textColor(st), clip)
	case *Button:
		f.button(n, c, screen, st, clip)
	case *TextInput:
		f.textInput(n, c, screen, st, clip)
	case *Checkbox:
		f.checkbox(n, c, screen, st, clip)
	case *Slider:
		f.slider(c, screen, st, clip)
	case *Dropdown:
		f.dropdown(n, c, screen, st, clip)
	case *Image:
		f.box(f.base, screen, st, clip)
		f.base.Images = append(f.base.Images, draw.Image{Bounds: screen, Source: c.Source, Radii: st.Radius, Clip: clip})
	case *DataGrid:
		f.dataGrid(n, c, screen, st, clip)
	case *TreeView:
		f.treeView(n, c, screen, st, clip)
	case *Tabs:
		f.tabs(n, c, screen, st, off, clip)
	case *Divider:
		t := dividerThickness(c)
		color := f.Theme.BorderColor
		if c.Color != nil {
			color = *c.Color
		}
		line := draw.Line{Thickness: t, Color: color, Clip: clip}
		if c.Vertical {
			cx := screen.X + screen.W/2
			line.A, line.B = geom.V(cx, screen.Y+t/2), geom.V(cx, screen.Bottom()-t/2)
		} else {
			cy := screen.Y + screen.H/2
			line.A, line.B = geom.V(screen.X+t/2, cy), geom.V(screen.Right()-t/2, cy)
		}
		f.base.Lines = append(f.base.Lines, line)
	case *Spacer:
	case *Icon:
		f.box(f.base, screen, st, clip)
		sz := iconSize(c)
		icon := geom.R(screen.X+(screen.W-sz)/2, screen.Y+(screen.H-sz)/2, sz, sz)
		f.base.Images = append(f.base.Images, draw.Image{Bounds: icon, Source: c.Name, Clip: clip})
	case *ProgressBar:
		f.progress(c, screen, st, clip)
	case *RadioButton:
		f.radio(n, c, screen, st, clip)
	case *ToggleSwitch:
		f.toggleSwitch(n, c, screen, st, clip)
	case *ListView:
		f.listView(n, c, screen, st, clip)
	case *KpiCard:
		f.kpiCard(n, c, screen, st, clip)
	default:
		f.box(f.base, screen, st, clip)
	}
}

// style resolves n's style for the current interaction state. Overlays apply in the
// order hover, active, focus.
func (f *frame) style(n *Node) style.Style {
	st := n.Style
	if n.Hover != nil && f.s.IsHovered(n.ID) {
		st = st.Merge(*n.Hover)
	}
	if n.Active != nil && f.s.IsActive(n.ID) {
		st = st.Merge(*n.Active)
	}
	if n.Focus != nil && f.s.IsFocused(n.ID) {
		st = st.Merge(*n.Focus)
	}
	return st
}

func (f *frame) textColor(st style.Style) style.Color {
	if st.TextColor != nil {
		return *st.TextColor
	}
	return f.Theme.TextColor
}

// box emits a style's shadow, fill and border in that order.
func (f *frame) box(l *draw.Layer, r geom.Rect, st style.Style, clip geom.Rect) {
	if r.Empty() {
		return
	}
	if sh := st.Shadow; sh != nil {
		l.Rects = append(l.Rects, draw.Rect{
			Bounds:   r.Translate(sh.Offset),
			Color:    sh.Color,
			ColorEnd: sh.Color,
			Radii:    st.Radius,
			Softness: sh.Blur,
			Clip:     clip,
		})
	}
	if start, end, ok := st.Fill(); ok {
		l.Rects = append(l.Rects, draw.Rect{Bounds: r, Color: start, ColorEnd: end, Radii: st.Radius, Clip: clip})
	}
	if b := st.Border; b != nil && b.Width > 0 {
		radii := st.Radius
		if b.Radius != nil {
			radii = *b.Radius
		}
		l.Rects = append(l.Rects, draw.Rect{Bounds: r, Color: b.Color, ColorEnd: b.Color, Radii: radii, Stroke: b.Width, Clip: clip})
	}
}

func (f *frame) solid(l *draw.Layer, r geom.Rect, c style.Color, radii geom.Radii, clip geom.Rect) {
	l.Rects = append(l.Rects, draw.Rect{Bounds: r, Color: c, ColorEnd: c, Radii: radii, Clip: clip})
}

func (f *frame) line(l *draw.Layer, a, b geom.Vec2, thickness float32, c style.Color, clip geom.Rect) {
	l.Lines = append(l.Lines, draw.Line{A: a, B: b, Thickness: thickness, Color: c, Clip: clip})
}

func (f *frame) measure(n *Node, s string) geom.Size {
	return richtext.Parse(s, richBase(n, style.Black)).Measure(f.Measurer)
}

// rich emits s as one text instance per styled run, starting at pos.
func (f *frame) rich(l *draw.Layer, n *Node, s string, pos geom.Vec2, color style.Color, clip geom.Rect) geom.Size {
	t := richtext.Parse(s, richBase(n, color))
	total := t.Measure(f.Measurer)
	x := pos.X
	for _, run := range t.Runs {
		font := run.Style.Font().Normalize()
		size := f.Measurer.Measure(run.Text, font)
		l.Texts = append(l.Texts, draw.Text{
			Pos:       geom.V(x, pos.Y+total.H-size.H),
			Size:      size,
			Text:      run.Text,
			Font:      font,
			Color:     run.Style.Color,
			Underline: run.Style.Underline,
			Clip:      clip,
		})
		x += size.W
	}
	return total
}

func (f *frame) plain(l *draw.Layer, s string, font text.FontSpec, pos geom.Vec2, color style.Color, clip geom.Rect) geom.Size {
	size := f.Measurer.Measure(s, font)
	l.Texts = append(l.Texts, draw.Text{Pos: pos, Size: size, Text: s, Font: font, Color: color, Clip: clip})
	return size
}

// focusRing outlines a focused widget that has no focus style of its own.
func (f *frame) focusRing(n *Node, r geom.Rect, radii geom.Radii, clip geom.Rect) {
	if n.Focus != nil || !f.s.IsFocused(n.ID) {
		return
	}
	f.base.Rects = append(f.base.Rects, draw.Rect{
		Bounds: r, Color: f.Theme.Accent, ColorEnd: f.Theme.Accent, Radii: radii, Stroke: 2, Clip: clip,
	})
}

func (f *frame) controlStyle(st style.Style) style.Style {
	def := style.Style{
		Background: &f.Theme.SurfaceAlt,
		Border:     &style.Border{Width: f.Theme.BorderWidthThin, Color: f.Theme.BorderColor},
		Radius:     style.Uniform(f.Theme.CornerRadiusSmall),
	}
	return def.Merge(st)
}

func (f *frame) button(n *Node, c *Button, screen geom.Rect, st style.Style, clip geom.Rect) {
	bg := f.Theme.Accent
	switch {
	case c.Disabled:
		bg = bg.WithAlpha(0.4)
	case f.s.IsActive(n.ID):
		bg = bg.Lerp(style.Black, 0.15)
	case f.s.IsHovered(n.ID):
		bg = bg.Lerp(style.White, 0.1)
	}
	def := style.Style{Background: &bg, Radius: style.Uniform(f.Theme.CornerRadiusSmall), Shadow: f.Theme.ShadowSmall}
	st = def.Merge(st)
	f.box(f.base, screen, st, clip)

	size := f.measure(n, c.Text)
	pos := geom.V(screen.X+(screen.W-size.W)/2, screen.Y+(screen.H-size.H)/2)
	color := f.textColor(st)
	if c.Disabled {
		color = color.WithAlpha(color.A * 0.5)
	}
	f.rich(f.base, n, c.Text, pos, color, clip)
	f.focusRing(n, screen, st.Radius, clip)
}

func (f *frame) textInput(n *Node, c *TextInput, full geom.Rect, st style.Style, clip geom.Rect) {
	screen := full
	if band := errorBand(c); band > 0 {
		screen.H = max(full.H-band, 0)
	}
	st = f.controlStyle(st)
	switch {
	case c.Error != "":
		st.Border = &style.Border{Width: f.Theme.BorderWidthNormal, Color: trendDownColor}
	case f.s.IsFocused(n.ID) && n.Focus == nil:
		st.Border = &style.Border{Width: f.Theme.BorderWidthNormal, Color: f.Theme.Accent}
	}
	f.box(f.base, screen, st, clip)
	if c.Error != "" {
		font := fontOf(n)
		font.Size = errorFontSize
		f.plain(f.base, c.Error, font, geom.V(full.X+inputPadX, screen.Bottom()+errorGap), trendDownColor, clip.Intersect(full))
	}

	inner := screen.Intersect(clip)
	font := fontOf(n)
	s, color := c.Value, f.textColor(st)
	if s == "" {
		s, color = c.Placeholder, color.WithAlpha(color.A*0.5)
	}
	lineH := text.LineHeight(font.Size)
	pos := geom.V(screen.X+inputPadX, screen.Y+(screen.H-lineH)/2)
	var w float32
	if s != "" {
		w = f.plain(f.base, s, font, pos, color, inner).W
	}
	if f.s.IsFocused(n.ID) {
		if c.Value == "" {
			w = 0
		}
		x := pos.X + w + 1
		f.line(f.base, geom.V(x, pos.Y+2), geom.V(x, pos.Y+lineH-2), 1.5, f.textColor(st), inner)
	}
}

func (f *frame) checkbox(n *Node, c *Checkbox, screen geom.Rect, st style.Style, clip geom.Rect) {
	size := c.Size
	if size == 0 {
		size = defaultCheckbox
	}
	box := geom.R(screen.X, screen.Y+(screen.H-size)/2, size, size)
	bs := f.controlStyle(st)
	if c.Checked {
		bs.Background, bs.Gradient = &f.Theme.Accent, nil
		bs.Border = &style.Border{Width: f.Theme.BorderWidthThin, Color: f.Theme.Accent}
	}
	f.box(f.base, box, bs, clip)
	if c.Checked {
		mark := f.textColor(st)
		p := func(x, y float32) geom.Vec2 { return geom.V(box.X+x*size, box.Y+y*size) }
		t := max(size/10, 1.5)
		f.line(f.base, p(0.25, 0.52), p(0.43, 0.7), t, mark, clip)
		f.line(f.base, p(0.43, 0.7), p(0.76, 0.32), t, mark, clip)
	}
	if c.Label != "" {
		ls := f.measure(n, c.Label)
		f.rich(f.base, n, c.Label, geom.V(box.Right()+checkboxLabelGap, screen.Y+(screen.H-ls.H)/2), f.textColor(st), clip)
	}
	f.focusRing(n, box, bs.Radius, clip)
}

func (f *frame) slider(c *Slider, screen geom.Rect, st style.Style, clip geom.Rect) {
	r, th := thumbRadius(c), trackHeight(c)
	cy := screen.Y + screen.H/2
	span := max(screen.W-2*r, 0)
	frac := c.Fraction()
	radii := style.Uniform(th / 2)

	track := f.Theme.SurfaceAlt
	if st.Background != nil {
		track = *st.Background
	}
	f.solid(f.base, geom.R(screen.X+r, cy-th/2, span, th), track, radii, clip)
	if frac > 0 {
		f.solid(f.base, geom.R(screen.X+r, cy-th/2, span*frac, th), f.Theme.Accent, radii, clip)
	}
	f.base.Circles = append(f.base.Circles, draw.Circle{
		Center: geom.V(screen.X+r+span*frac, cy),
		Radius: r,
		Color:  f.textColor(st),
		Clip:   clip,
	})
}

func (f *frame) chevron(l *draw.Layer, center geom.Vec2, down bool, c style.Color, clip geom.Rect) {
	const s = 4
	if down {
		f.line(l, center.Add(geom.V(-s, -s/2)), center.Add(geom.V(0, s/2)), 1.5, c, clip)
		f.line(l, center.Add(geom.V(0, s/2)), center.Add(geom.V(s, -s/2)), 1.5, c, clip)
		return
	}
	f.line(l, center.Add(geom.V(-s/2, -s)), center.Add(geom.V(s/2, 0)), 1.5, c, clip)
	f.line(l, center.Add(geom.V(s/2, 0)), center.Add(geom.V(-s/2, s)), 1.5, c, clip)
}

func (f *frame) dropdown(n *Node, c *Dropdown, screen geom.Rect, st style.Style, clip geom.Rect) {
	st = f.controlStyle(st)
	f.box(f.base, screen, st, clip)

	font := fontOf(n)
	s, color := c.Placeholder, f.textColor(st).WithAlpha(0.5)
	if c.Selected >= 0 && c.Selected < len(c.Options) {
		s, color = c.Options[c.Selected], f.textColor(st)
	}
	lineH := text.LineHeight(font.Size)
	if s != "" {
		inner := geom.R(screen.X, screen.Y, max(screen.W-chevronWidth, 0), screen.H).Intersect(clip)
		f.plain(f.base, s, font, geom.V(screen.X+inputPadX, screen.Y+(screen.H-lineH)/2), color, inner)
	}
	f.chevron(f.base, geom.V(screen.Right()-chevronWidth/2, screen.Y+screen.H/2), true, f.textColor(st), clip)
	f.focusRing(n, screen, st.Radius, clip)
}

// popup draws an open dropdown's option list on the overlay layer, unclipped.
func (f *frame) popup(o openDropdown) {
	popup := o.popup()
	if popup.Empty() {
		return
	}
	radii := style.Uniform(f.Theme.CornerRadiusSmall)
	f.box(f.over, popup, style.Style{
		Background: &f.Theme.Surface,
		Border:     &style.Border{Width: f.Theme.BorderWidthThin, Color: f.Theme.BorderColor},
		Shadow:     f.Theme.ShadowMedium,
		Radius:     radii,
	}, draw.NoClip)

	hover := o.optionAt(f.s.Pointer)
	optH := o.optionHeight()
	font := fontOf(o.n)
	lineH := text.LineHeight(font.Size)
	for i, opt := range o.dd.Options {
		row := geom.R(popup.X, popup.Y+float32(i)*optH, popup.W, optH)
		switch {
		case i == hover:
			f.solid(f.over, row, f.Theme.SurfaceAlt, geom.Radii{}, popup)
		case i == o.dd.Selected:
			f.solid(f.over, row, f.Theme.Accent.WithAlpha(0.3), geom.Radii{}, popup)
		}
		f.plain(f.over, opt, font, geom.V(row.X+inputPadX, row.Y+(optH-lineH)/2), f.Theme.TextColor, popup)
	}
}

// dragOverlay highlights the handle being dragged above everything else: a halo
// around a slider thumb or an accent scrollbar thumb.
func (f *frame) dragOverlay(root *Node) {
	d := f.s.Drag
	if d == nil {
		return
	}
	n := FindByID(root, d.ID)
	screen, clip, ok := ScreenRect(root, f.s, d.ID)
	if n == nil || !ok {
		return
	}
	switch d.kind {
	case dragSlider:
		sl, ok := n.Content.(*Slider)
		if !ok {
			return
		}
		r := thumbRadius(sl)
		span := max(screen.W-2*r, 0)
		f.over.Circles = append(f.over.Circles, draw.Circle{
			Center:   geom.V(screen.X+r+span*sl.Fraction(), screen.Y+screen.H/2),
			Radius:   r * 1.75,
			Color:    f.Theme.Accent.WithAlpha(0.3),
			Softness: r / 2,
			Clip:     clip,
		})
	case dragScrollbar:
		if _, thumb, ok := scrollbar(n, screen, f.s.Scroll(n.ID)); ok {
			f.solid(f.over, thumb, f.Theme.Accent, style.Uniform(scrollbarWidth/2), clip)
		}
	}
}

func (f *frame) scrollbar(n *Node, screen, clip geom.Rect) {
	if _, thumb, ok := scrollbar(n, screen, f.s.Scroll(n.ID)); ok {
		f.solid(f.base, thumb, f.Theme.TextColor.WithAlpha(0.35), style.Uniform(scrollbarWidth/2), clip)
	}
}

func (f *frame) dataGrid(n *Node, g *DataGrid, screen geom.Rect, st style.Style, clip geom.Rect) {
	def := style.Style{Background: &f.Theme.Surface}
	st = def.Merge(st)
	f.box(f.base, screen, st, clip)

	src := g.view()
	font := fontOf(n)
	color := f.textColor(st)
	hh := min(g.headerHeight(), screen.H)
	widths := g.ColumnWidths

	if hh > 0 {
		header := geom.R(screen.X, screen.Y, screen.W, hh)
		f.solid(f.base, header, f.Theme.SurfaceAlt, geom.Radii{}, clip)
		hf := font
		hf.Bold = true
		lineH := text.LineHeight(hf.Size)
		x := screen.X
		for i, col := range g.Columns {
			if i >= len(widths) {
				break
			}
			cell := geom.R(x, header.Y, widths[i], hh).Intersect(clip)
			size := f.plain(f.base, col.Title, hf, geom.V(x+cellPadding, header.Y+(hh-lineH)/2), color, cell)
			if g.SortColumn == i && col.Sortable {
				f.chevron(f.base, geom.V(x+cellPadding+size.W+10, header.Y+hh/2), !g.SortDesc, color, cell)
			}
			x += widths[i]
		}
	}

	body := viewportRect(n, screen)
	bodyClip := clip.Intersect(body)
	rowH := g.rowHeight()
	scroll := f.s.Scroll(n.ID).Y
	rows := g.rowCount(src)
	start, end := VisibleRange(scroll, body.H, rowH, rows, f.Overscan)
	lineH := text.LineHeight(font.Size)

	cells := make([]Cell, len(g.Columns))
rowLoop:
	for i := start; i < end; i++ {
		for col := range cells {
			c, ok := src.Cell(i, col)
			if !ok {
				logger.Debugf("datagrid %s: row %d unavailable", n.ID, i)
				continue rowLoop
			}
			cells[col] = c
		}
		y := body.Y + float32(i)*rowH - scroll
		row := geom.R(body.X, y, body.W, rowH)
		switch {
		case g.Selected[i]:
			f.solid(f.base, row, f.Theme.Accent.WithAlpha(0.35), geom.Radii{}, bodyClip)
		case g.Striped && i%2 == 1:
			f.solid(f.base, row, f.Theme.SurfaceAlt, geom.Radii{}, bodyClip)
		}
		x := body.X
		for col, c := range cells {
			if col >= len(widths) {
				break
			}
			cellClip := geom.R(x, body.Y, widths[col], body.H).Intersect(bodyClip)
			if s := c.String(); s != "" {
				f.plain(f.base, s, font, geom.V(x+cellPadding, y+(rowH-lineH)/2), color, cellClip)
			}
			x += widths[col]
		}
		if g.GridLines {
			f.line(f.base, geom.V(body.X, y+rowH), geom.V(body.Right(), y+rowH), 1, f.Theme.BorderColor, bodyClip)
		}
	}
	if g.GridLines {
		x := screen.X
		for _, w := range widths[:max(len(widths)-1, 0)] {
			x += w
			f.line(f.base, geom.V(x, screen.Y), geom.V(x, screen.Bottom()), 1, f.Theme.BorderColor, clip.Intersect(screen))
		}
	}
	f.scrollbar(n, screen, clip)
	f.focusRing(n, screen, st.Radius, clip)
}

func (f *frame) treeView(n *Node, t *TreeView, screen geom.Rect, st style.Style, clip geom.Rect) {
	f.box(f.base, screen, st, clip)

	inner := clip.Intersect(screen)
	visible := t.Visible()
	rowH := t.rowHeight()
	scroll := f.s.Scroll(n.ID).Y
	start, end := VisibleRange(scroll, screen.H, rowH, len(visible), f.Overscan)
	color := f.textColor(st)

	for i := start; i < end; i++ {
		v := visible[i]
		y := screen.Y + float32(i)*rowH - scroll
		row := geom.R(screen.X, y, screen.W, rowH)
		if v.Item.ID != "" && v.Item.ID == t.Selected {
			f.solid(f.base, row, f.Theme.Accent.WithAlpha(0.35), geom.Radii{}, inner)
		}
		x := screen.X + float32(v.Depth)*t.indent()
		if !v.Item.Leaf() {
			f.chevron(f.base, geom.V(x+expanderWidth/2, y+rowH/2), v.Item.Expanded, color, inner)
		}
		label := v.Item.Label
		if v.Item.Icon != "" {
			label = v.Item.Icon + " " + label
		}
		size := f.measure(n, label)
		f.rich(f.base, n, label, geom.V(x+expanderWidth, y+(rowH-size.H)/2), color, inner)
	}
	f.scrollbar(n, screen, clip)
	f.focusRing(n, screen, st.Radius, clip)
}

func (f *frame) tabs(n *Node, t *Tabs, screen geom.Rect, st style.Style, off geom.Vec2, clip geom.Rect) {
	f.box(f.base, screen, st, clip)

	count := t.count()
	hh := min(t.headerHeight(), screen.H)
	if count > 0 && hh > 0 {
		strip := geom.R(screen.X, screen.Y, screen.W, hh)
		f.solid(f.base, strip, f.Theme.SurfaceAlt, geom.Radii{}, clip)
		w := screen.W / float32(count)
		color := f.textColor(st)
		for i := range count {
			tab := geom.R(screen.X+float32(i)*w, screen.Y, w, hh)
			if i == t.Active {
				f.solid(f.base, tab, f.Theme.Surface, geom.Radii{}, clip)
				f.line(f.base, geom.V(tab.X, tab.Bottom()-1), geom.V(tab.Right(), tab.Bottom()-1), 2, f.Theme.Accent, clip)
			}
			label := t.label(i)
			size := f.measure(n, label)
			f.rich(f.base, n, label, geom.V(tab.X+(w-size.W)/2, tab.Y+(hh-size.H)/2), color, clip.Intersect(tab))
		}
	}
	if page := t.activePage(); page != nil {
		f.node(page, off, clip)
	}
	f.focusRing(n, screen, st.Radius, clip)
}

func (f *frame) progress(c *ProgressBar, screen geom.Rect, st style.Style, clip geom.Rect) {
	radii := st.Radius
	if radii.IsZero() {
		radii = style.Uniform(screen.H / 2)
	}
	track := f.Theme.SurfaceAlt
	if st.Background != nil {
		track = *st.Background
	}
	f.solid(f.base, screen, track, radii, clip)
	if frac := c.Fraction(); frac > 0 {
		fill := f.Theme.Accent
		if st.TextColor != nil {
			fill = *st.TextColor
		}
		f.solid(f.base, geom.R(screen.X, screen.Y, screen.W*frac, screen.H), fill, radii, clip)
	}
}

func (f *frame) radio(n *Node, c *RadioButton, screen geom.Rect, st style.Style, clip geom.Rect) {
	size := radioSize(c)
	r := size / 2
	center := geom.V(screen.X+r, screen.Y+screen.H/2)
	ring := f.Theme.BorderColor
	if c.Selected {
		ring = f.Theme.Accent
	}
	f.base.Circles = append(f.base.Circles,
		draw.Circle{Center: center, Radius: r, Color: f.Theme.SurfaceAlt, Clip: clip},
		draw.Circle{Center: center, Radius: r, Color: ring, Stroke: max(f.Theme.BorderWidthNormal, 1), Clip: clip},
	)
	if c.Selected {
		f.base.Circles = append(f.base.Circles, draw.Circle{Center: center, Radius: r * radioDotScale, Color: f.Theme.Accent, Clip: clip})
	}
	if c.Label != "" {
		ls := f.measure(n, c.Label)
		f.rich(f.base, n, c.Label, geom.V(screen.X+size+checkboxLabelGap, screen.Y+(screen.H-ls.H)/2), f.textColor(st), clip)
	}
	if n.Focus == nil && f.s.IsFocused(n.ID) {
		f.base.Circles = append(f.base.Circles, draw.Circle{Center: center, Radius: r + 2, Color: f.Theme.Accent, Stroke: 2, Clip: clip})
	}
}

func (f *frame) toggleSwitch(n *Node, c *ToggleSwitch, screen geom.Rect, st style.Style, clip geom.Rect) {
	w := switchWidth(c)
	h := w / 2
	track := geom.R(screen.X, screen.Y+(screen.H-h)/2, w, h)
	radii := style.Uniform(h / 2)
	color := f.Theme.SurfaceAlt
	if c.On {
		color = f.Theme.Accent
		if st.Background != nil {
			color = *st.Background
		}
	}
	f.solid(f.base, track, color, radii, clip)
	if !c.On {
		f.base.Rects = append(f.base.Rects, draw.Rect{
			Bounds: track, Color: f.Theme.BorderColor, ColorEnd: f.Theme.BorderColor, Radii: radii, Stroke: f.Theme.BorderWidthThin, Clip: clip,
		})
	}
	r := h/2 - switchThumbInset
	cx := track.X + h/2
	if c.On {
		cx = track.Right() - h/2
	}
	f.base.Circles = append(f.base.Circles, draw.Circle{Center: geom.V(cx, track.Y+h/2), Radius: max(r, 0), Color: f.textColor(st), Clip: clip})
	if c.Label != "" {
		ls := f.measure(n, c.Label)
		f.rich(f.base, n, c.Label, geom.V(track.Right()+switchLabelGap, screen.Y+(screen.H-ls.H)/2), f.textColor(st), clip)
	}
	f.focusRing(n, track, radii, clip)
}

func (f *frame) listView(n *Node, c *ListView, screen geom.Rect, st style.Style, clip geom.Rect) {
	def := style.Style{Background: &f.Theme.Surface}
	st = def.Merge(st)
	f.box(f.base, screen, st, clip)

	inner := clip.Intersect(screen)
	rowH := c.itemHeight()
	scroll := f.s.Scroll(n.ID).Y
	start, end := VisibleRange(scroll, screen.H, rowH, len(c.Items), f.Overscan)
	font := fontOf(n)
	lineH := text.LineHeight(font.Size)
	color := f.textColor(st)
	hover := -1
	if f.s.IsHovered(n.ID) && inner.Contains(f.s.Pointer) {
		hover = int(geom.Floor((f.s.Pointer.Y - screen.Y + scroll) / rowH))
	}
	for i := start; i < end; i++ {
		y := screen.Y + float32(i)*rowH - scroll
		row := geom.R(screen.X, y, screen.W, rowH)
		switch i {
		case c.Selected:
			f.solid(f.base, row, f.Theme.Accent.WithAlpha(0.35), geom.Radii{}, inner)
		case hover:
			f.solid(f.base, row, f.Theme.SurfaceAlt, geom.Radii{}, inner)
		}
		if item := c.Items[i]; item != "" {
			f.plain(f.base, item, font, geom.V(row.X+cellPadding, y+(rowH-lineH)/2), color, inner)
		}
	}
	f.scrollbar(n, screen, clip)
	f.focusRing(n, screen, st.Radius, clip)
}

func (f *frame) kpiCard(n *Node, c *KpiCard, screen geom.Rect, st style.Style, clip geom.Rect) {
	def := style.Style{
		Background: &f.Theme.Surface,
		Border:     &style.Border{Width: f.Theme.BorderWidthThin, Color: f.Theme.BorderColor},
		Radius:     style.Uniform(f.Theme.CornerRadiusMedium),
	}
	st = def.Merge(st)
	f.box(f.base, screen, st, clip)

	inner := clip.Intersect(screen)
	tf, vf, rf := kpiFonts(n)
	color := f.textColor(st)
	pos := geom.V(screen.X+kpiPadding, screen.Y+kpiPadding)
	if c.Title != "" {
		f.plain(f.base, c.Title, tf, pos, color.WithAlpha(color.A*0.7), inner)
	}
	pos.Y += text.LineHeight(tf.Size) + kpiGap
	if c.Value != "" {
		f.plain(f.base, c.Value, vf, pos, color, inner)
	}
	pos.Y += text.LineHeight(vf.Size) + kpiGap
	if s := kpiTrendText(c); s != "" {
		f.plain(f.base, s, rf, pos, c.Trend.Direction.color(), inner)
	}
}
