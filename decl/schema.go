package decl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/ui"
)

// nodeSpec is the on-disk shape of a node. Fields that only some kinds use are
// ignored by the others.
type nodeSpec struct {
	Type    string `toml:"type"`
	ID      string `toml:"id"`
	Classes string `toml:"classes"`

	Flex   float32 `toml:"flex"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Col    *int    `toml:"col"`
	Row    *int    `toml:"row"`
	// Spans default to 1.
	ColSpan int `toml:"col_span"`
	RowSpan int `toml:"row_span"`

	Style  *styleSpec `toml:"style"`
	Hover  *styleSpec `toml:"hover"`
	Active *styleSpec `toml:"active"`
	Focus  *styleSpec `toml:"focus"`

	// Containers
	Spacing         float32    `toml:"spacing"`
	Padding         any        `toml:"padding"`
	Align           string     `toml:"align"`
	Justify         string     `toml:"justify"`
	Columns         int        `toml:"columns"`
	TemplateColumns []string   `toml:"template_columns"`
	TemplateRows    []string   `toml:"template_rows"`
	Scrollable      bool       `toml:"scrollable"`
	Children        []nodeSpec `toml:"children"`

	// Widgets
	Text        string     `toml:"text"`
	Action      string     `toml:"action"`
	Disabled    bool       `toml:"disabled"`
	Value       any        `toml:"value"`
	Placeholder string     `toml:"placeholder"`
	Checked     bool       `toml:"checked"`
	Size        float32    `toml:"size"`
	Min         float32    `toml:"min"`
	Max         *float32   `toml:"max"`
	Options     []string   `toml:"options"`
	Selected    *int       `toml:"selected"`
	Source      string     `toml:"source"`
	Thickness   float32    `toml:"thickness"`
	Vertical    bool       `toml:"vertical"`
	Color       string     `toml:"color"`
	Icon        string     `toml:"icon"`
	Group       string     `toml:"group"`
	Rules       []ruleSpec `toml:"rules"`

	// KpiCard
	Title     string `toml:"title"`
	Trend     string `toml:"trend"`
	TrendText string `toml:"trend_text"`

	// DataGrid
	Cols         []columnSpec `toml:"cols"`
	Rows         [][]any      `toml:"rows"`
	RowHeight    float32      `toml:"row_height"`
	HeaderHeight float32      `toml:"header_height"`
	NoHeader     bool         `toml:"no_header"`
	Striped      bool         `toml:"striped"`
	GridLines    bool         `toml:"grid_lines"`
	Selection    string       `toml:"selection"`

	// TreeView
	Items  []itemSpec `toml:"items"`
	Indent float32    `toml:"indent"`

	// Tabs
	Labels    []string   `toml:"labels"`
	Pages     []nodeSpec `toml:"pages"`
	ActiveTab int        `toml:"active_tab"`
}

type styleSpec struct {
	Background string   `toml:"background"`
	Gradient   []string `toml:"gradient"`
	Border     *struct {
		Width float32 `toml:"width"`
		Color string  `toml:"color"`
	} `toml:"border"`
	Shadow *struct {
		Offset []float32 `toml:"offset"`
		Blur   float32   `toml:"blur"`
		Color  string    `toml:"color"`
	} `toml:"shadow"`
	Radius    any     `toml:"radius"`
	TextColor string  `toml:"text_color"`
	FontSize  float32 `toml:"font_size"`
	Font      string  `toml:"font"`
	Bold      bool    `toml:"bold"`
	Italic    bool    `toml:"italic"`
}

type ruleSpec struct {
	Rule  string `toml:"rule"`
	Value any    `toml:"value"`
}

type columnSpec struct {
	Title    string  `toml:"title"`
	Width    string  `toml:"width"`
	MinWidth float32 `toml:"min_width"`
	Sortable bool    `toml:"sortable"`
}

type itemSpec struct {
	ID       string     `toml:"id"`
	Label    string     `toml:"label"`
	Icon     string     `toml:"icon"`
	Expanded bool       `toml:"expanded"`
	Lazy     bool       `toml:"lazy"`
	Children []itemSpec `toml:"children"`
}

// build converts s and its subtree. path names s for error messages.
func build(s *nodeSpec, path string) (*ui.Node, error) {
	fail := func(format string, args ...any) error {
		return &ParseError{Path: path, Err: fmt.Errorf(format, args...)}
	}

	n := &ui.Node{
		ID:      s.ID,
		Classes: s.Classes,
		Flex:    s.Flex,
		Width:   s.Width,
		Height:  s.Height,
		Grid:    ui.GridPlacement{Col: s.Col, Row: s.Row, ColSpan: max(s.ColSpan, 1), RowSpan: max(s.RowSpan, 1)},
	}

	var err error
	if n.Style, err = s.Style.resolve(); err != nil {
		return nil, fail("style: %w", err)
	}
	for _, st := range []struct {
		spec *styleSpec
		dst  **style.Style
		name string
	}{{s.Hover, &n.Hover, "hover"}, {s.Active, &n.Active, "active"}, {s.Focus, &n.Focus, "focus"}} {
		if st.spec == nil {
			continue
		}
		resolved, err := st.spec.resolve()
		if err != nil {
			return nil, fail("%s: %w", st.name, err)
		}
		*st.dst = &resolved
	}

	kind := strings.ToLower(s.Type)
	switch kind {
	case "", "column", "row", "grid", "stack":
		c, err := s.container(kind, path)
		if err != nil {
			return nil, err
		}
		n.Content = c
	case "label":
		n.Content = &ui.Label{Text: s.Text}
	case "button":
		n.Content = &ui.Button{Text: s.Text, Action: s.Action, Disabled: s.Disabled}
	case "text_input", "input":
		v, _ := s.Value.(string)
		in := &ui.TextInput{Value: v, Placeholder: s.Placeholder}
		for i, rs := range s.Rules {
			r, err := rs.rule()
			if err != nil {
				return nil, fail("rules[%d]: %w", i, err)
			}
			in.Rules = append(in.Rules, r)
		}
		n.Content = in
	case "checkbox":
		n.Content = &ui.Checkbox{Checked: s.Checked, Label: s.Text, Size: s.Size}
	case "slider":
		sl := &ui.Slider{Min: s.Min, Max: 1}
		if s.Max != nil {
			sl.Max = *s.Max
		}
		if s.Value != nil {
			v, ok := number(s.Value)
			if !ok {
				return nil, fail("slider value %v is not a number", s.Value)
			}
			sl.Value = v
		}
		n.Content = sl
	case "dropdown", "select":
		d := &ui.Dropdown{Options: s.Options, Selected: -1, Placeholder: s.Placeholder}
		if s.Selected != nil {
			if *s.Selected < -1 || *s.Selected >= len(s.Options) {
				return nil, fail("selected %d out of range for %d options", *s.Selected, len(s.Options))
			}
			d.Selected = *s.Selected
		}
		n.Content = d
	case "image":
		n.Content = &ui.Image{Source: s.Source}
	case "divider":
		d := &ui.Divider{Thickness: s.Thickness, Vertical: s.Vertical}
		if s.Color != "" {
			c, err := style.ParseHex(s.Color)
			if err != nil {
				return nil, fail("divider color: %w", err)
			}
			d.Color = &c
		}
		n.Content = d
	case "spacer":
		n.Content = &ui.Spacer{Size: s.Size}
	case "icon":
		n.Content = &ui.Icon{Name: s.Icon, Size: s.Size}
	case "progress", "progress_bar":
		p := &ui.ProgressBar{Min: s.Min, Max: 1}
		if s.Max != nil {
			p.Max = *s.Max
		}
		if s.Value != nil {
			v, ok := number(s.Value)
			if !ok {
				return nil, fail("progress value %v is not a number", s.Value)
			}
			p.Value = v
		}
		n.Content = p
	case "radio":
		v, _ := s.Value.(string)
		if s.Group == "" {
			return nil, fail("radio needs a group")
		}
		n.Content = &ui.RadioButton{Group: s.Group, Value: v, Label: s.Text, Selected: s.Checked, Size: s.Size}
	case "toggle", "switch":
		n.Content = &ui.ToggleSwitch{On: s.Checked, Label: s.Text, Width: s.Size}
	case "list":
		l := ui.NewListView(s.Options)
		l.ItemHeight = s.RowHeight
		if s.Selected != nil {
			if *s.Selected < -1 || *s.Selected >= len(s.Options) {
				return nil, fail("selected %d out of range for %d items", *s.Selected, len(s.Options))
			}
			l.Selected = *s.Selected
		}
		n.Content = l
	case "kpi":
		v, _ := s.Value.(string)
		if f, ok := number(s.Value); ok {
			v = strconv.FormatFloat(float64(f), 'g', -1, 32)
		}
		k := &ui.KpiCard{Title: s.Title, Value: v}
		if s.Trend != "" || s.TrendText != "" {
			d, err := trend(s.Trend)
			if err != nil {
				return nil, fail("%w", err)
			}
			k.Trend = &ui.KpiTrend{Direction: d, Text: s.TrendText}
		}
		n.Content = k
	case "datagrid", "table":
		g, err := s.dataGrid()
		if err != nil {
			return nil, fail("%w", err)
		}
		n.Content = g
	case "tree":
		n.Content = &ui.TreeView{Roots: items(s.Items), RowHeight: s.RowHeight, Indent: s.Indent}
	case "tabs":
		t := &ui.Tabs{Labels: s.Labels, Active: s.ActiveTab, HeaderHeight: s.HeaderHeight}
		for i := range s.Pages {
			p, err := build(&s.Pages[i], fmt.Sprintf("%s > pages[%d]", path, i))
			if err != nil {
				return nil, err
			}
			t.Pages = append(t.Pages, p)
		}
		n.Content = t
	default:
		return nil, fail("unknown node type %q", s.Type)
	}
	return n, nil
}

func (s *nodeSpec) container(kind, path string) (*ui.Container, error) {
	c := &ui.Container{Layout: ui.Layout{
		Spacing:    s.Spacing,
		Columns:    s.Columns,
		Scrollable: s.Scrollable,
	}}
	switch kind {
	case "row":
		c.Layout.Direction = ui.DirRow
	case "grid":
		c.Layout.Direction = ui.DirGrid
	case "stack":
		c.Layout.Direction = ui.DirNone
	}

	var err error
	fail := func(err error) error { return &ParseError{Path: path, Err: err} }
	if c.Layout.Padding, err = insets(s.Padding); err != nil {
		return nil, fail(err)
	}
	if c.Layout.Align, err = align(s.Align); err != nil {
		return nil, fail(err)
	}
	if c.Layout.Justify, err = justify(s.Justify); err != nil {
		return nil, fail(err)
	}
	if c.Layout.TemplateColumns, err = tracks(s.TemplateColumns); err != nil {
		return nil, fail(err)
	}
	if c.Layout.TemplateRows, err = tracks(s.TemplateRows); err != nil {
		return nil, fail(err)
	}

	for i := range s.Children {
		child, err := build(&s.Children[i], fmt.Sprintf("%s > children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, child)
	}
	return c, nil
}

func (s *nodeSpec) dataGrid() (*ui.DataGrid, error) {
	cols := make([]ui.GridColumn, len(s.Cols))
	for i, cs := range s.Cols {
		w, err := columnWidth(cs.Width)
		if err != nil {
			return nil, fmt.Errorf("cols[%d]: %w", i, err)
		}
		cols[i] = ui.GridColumn{Title: cs.Title, Width: w, MinWidth: cs.MinWidth, Sortable: cs.Sortable}
	}

	rows := make([][]ui.Cell, len(s.Rows))
	for r, raw := range s.Rows {
		rows[r] = make([]ui.Cell, len(raw))
		for c, v := range raw {
			cell, err := cellOf(v)
			if err != nil {
				return nil, fmt.Errorf("rows[%d][%d]: %w", r, c, err)
			}
			rows[r][c] = cell
		}
	}

	g := ui.NewDataGrid(cols, ui.NewTableSource(rows))
	g.RowHeight = s.RowHeight
	g.HeaderHeight = s.HeaderHeight
	g.NoHeader = s.NoHeader
	g.Striped = s.Striped
	g.GridLines = s.GridLines
	switch s.Selection {
	case "", "none":
	case "single":
		g.Selection = ui.SelectSingle
	case "multiple", "multi":
		g.Selection = ui.SelectMultiple
	default:
		return nil, fmt.Errorf("unknown selection mode %q", s.Selection)
	}
	return g, nil
}

func (r ruleSpec) rule() (ui.ValidationRule, error) {
	length := func() (int, error) {
		n, ok := r.Value.(int64)
		if !ok || n < 0 {
			return 0, fmt.Errorf("%s needs a non-negative integer value, got %v", r.Rule, r.Value)
		}
		return int(n), nil
	}
	bound := func() (float64, error) {
		switch x := r.Value.(type) {
		case int64:
			return float64(x), nil
		case float64:
			return x, nil
		}
		return 0, fmt.Errorf("%s needs a number value, got %v", r.Rule, r.Value)
	}
	switch r.Rule {
	case "required":
		return ui.Required(), nil
	case "min_length":
		n, err := length()
		return ui.MinLength(n), err
	case "max_length":
		n, err := length()
		return ui.MaxLength(n), err
	case "min":
		v, err := bound()
		return ui.Min(v), err
	case "max":
		v, err := bound()
		return ui.Max(v), err
	case "pattern":
		expr, ok := r.Value.(string)
		if !ok {
			return ui.ValidationRule{}, fmt.Errorf("pattern needs a string value, got %v", r.Value)
		}
		if _, err := regexp.Compile(expr); err != nil {
			return ui.ValidationRule{}, fmt.Errorf("pattern: %w", err)
		}
		return ui.Pattern(expr), nil
	case "email":
		return ui.Email(), nil
	}
	return ui.ValidationRule{}, fmt.Errorf("unknown rule %q", r.Rule)
}

func trend(s string) (ui.Trend, error) {
	switch s {
	case "", "neutral":
		return ui.TrendNeutral, nil
	case "up":
		return ui.TrendUp, nil
	case "down":
		return ui.TrendDown, nil
	}
	return 0, fmt.Errorf("unknown trend %q", s)
}

func items(specs []itemSpec) []*ui.TreeItem {
	if len(specs) == 0 {
		return nil
	}
	out := make([]*ui.TreeItem, len(specs))
	for i, s := range specs {
		out[i] = &ui.TreeItem{
			ID:       s.ID,
			Label:    s.Label,
			Icon:     s.Icon,
			Expanded: s.Expanded,
			Lazy:     s.Lazy,
			Children: items(s.Children),
		}
	}
	return out
}

func (s *styleSpec) resolve() (style.Style, error) {
	var out style.Style
	if s == nil {
		return out, nil
	}
	var err error
	if s.Background != "" {
		if out.Background, err = parseColor(s.Background); err != nil {
			return out, fmt.Errorf("background: %w", err)
		}
	}
	switch len(s.Gradient) {
	case 0:
	case 2:
		start, err := style.ParseHex(s.Gradient[0])
		if err != nil {
			return out, fmt.Errorf("gradient: %w", err)
		}
		end, err := style.ParseHex(s.Gradient[1])
		if err != nil {
			return out, fmt.Errorf("gradient: %w", err)
		}
		out.Gradient = &style.Gradient{Start: start, End: end}
	default:
		return out, fmt.Errorf("gradient needs 2 colors, got %d", len(s.Gradient))
	}
	if b := s.Border; b != nil {
		c := style.MustHex("#e5e7eb")
		if b.Color != "" {
			if c, err = style.ParseHex(b.Color); err != nil {
				return out, fmt.Errorf("border: %w", err)
			}
		}
		out.Border = &style.Border{Width: max(b.Width, 0), Color: c}
	}
	if sh := s.Shadow; sh != nil {
		shadow := &style.Shadow{Blur: sh.Blur, Color: style.RGBA(0, 0, 0, 0.1)}
		if len(sh.Offset) == 2 {
			shadow.Offset = geom.V(sh.Offset[0], sh.Offset[1])
		}
		if sh.Color != "" {
			if shadow.Color, err = style.ParseHex(sh.Color); err != nil {
				return out, fmt.Errorf("shadow: %w", err)
			}
		}
		out.Shadow = shadow
	}
	if s.Radius != nil {
		if out.Radius, err = radii(s.Radius); err != nil {
			return out, err
		}
	}
	if s.TextColor != "" {
		if out.TextColor, err = parseColor(s.TextColor); err != nil {
			return out, fmt.Errorf("text_color: %w", err)
		}
	}
	out.FontSize = s.FontSize
	out.FontFamily = s.Font
	out.Bold = s.Bold
	out.Italic = s.Italic
	return out, nil
}

// ============================================================================
// Value Parsing
// ============================================================================

func number(v any) (float32, bool) {
	switch x := v.(type) {
	case int64:
		return float32(x), true
	case float64:
		return float32(x), true
	}
	return 0, false
}

// floats accepts a number or an array of numbers.
func floats(v any) ([]float32, error) {
	if f, ok := number(v); ok {
		return []float32{f}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a number or array, got %T", v)
	}
	out := make([]float32, len(list))
	for i, e := range list {
		f, ok := number(e)
		if !ok {
			return nil, fmt.Errorf("element %d: expected a number, got %T", i, e)
		}
		out[i] = f
	}
	return out, nil
}

// insets follows CSS shorthand: 1 value for all sides, 2 for vertical/horizontal,
// 4 for top, right, bottom, left.
func insets(v any) (geom.Insets, error) {
	if v == nil {
		return geom.Insets{}, nil
	}
	f, err := floats(v)
	if err != nil {
		return geom.Insets{}, fmt.Errorf("padding: %w", err)
	}
	switch len(f) {
	case 1:
		return geom.UniformInsets(f[0]), nil
	case 2:
		return geom.Insets{Top: f[0], Right: f[1], Bottom: f[0], Left: f[1]}, nil
	case 4:
		return geom.Insets{Top: f[0], Right: f[1], Bottom: f[2], Left: f[3]}, nil
	}
	return geom.Insets{}, fmt.Errorf("padding: expected 1, 2 or 4 values, got %d", len(f))
}

// radii takes 1 value for every corner or 4 in the order top-left, top-right,
// bottom-right, bottom-left.
func radii(v any) (geom.Radii, error) {
	f, err := floats(v)
	if err != nil {
		return geom.Radii{}, fmt.Errorf("radius: %w", err)
	}
	switch len(f) {
	case 1:
		return geom.UniformRadii(f[0]), nil
	case 4:
		return geom.Radii{TopLeft: f[0], TopRight: f[1], BottomRight: f[2], BottomLeft: f[3]}, nil
	}
	return geom.Radii{}, fmt.Errorf("radius: expected 1 or 4 values, got %d", len(f))
}

func align(s string) (ui.Align, error) {
	switch s {
	case "", "stretch":
		return ui.AlignStretch, nil
	case "start":
		return ui.AlignStart, nil
	case "center":
		return ui.AlignCenter, nil
	case "end":
		return ui.AlignEnd, nil
	}
	return 0, fmt.Errorf("unknown align %q", s)
}

func justify(s string) (ui.Justify, error) {
	switch s {
	case "", "start":
		return ui.JustifyStart, nil
	case "end":
		return ui.JustifyEnd, nil
	case "center":
		return ui.JustifyCenter, nil
	case "between", "space-between":
		return ui.JustifySpaceBetween, nil
	case "around", "space-around":
		return ui.JustifySpaceAround, nil
	}
	return 0, fmt.Errorf("unknown justify %q", s)
}

// tracks parses "120px", "120", "2fr" and "auto".
func tracks(list []string) ([]ui.Track, error) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]ui.Track, len(list))
	for i, s := range list {
		switch {
		case s == "auto":
			out[i] = ui.Auto()
		case strings.HasSuffix(s, "fr"):
			v, err := strconv.ParseFloat(strings.TrimSuffix(s, "fr"), 32)
			if err != nil {
				return nil, fmt.Errorf("track %q: %w", s, err)
			}
			out[i] = ui.Fr(float32(v))
		default:
			v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 32)
			if err != nil {
				return nil, fmt.Errorf("track %q: %w", s, err)
			}
			out[i] = ui.Px(float32(v))
		}
	}
	return out, nil
}

// columnWidth parses "120px", "120", "2fr", "flex" and "auto". Empty is a flex share of 1.
func columnWidth(s string) (ui.ColumnWidth, error) {
	switch s {
	case "", "flex":
		return ui.FlexWidth(1), nil
	case "auto":
		return ui.AutoWidth(), nil
	}
	t, err := tracks([]string{s})
	if err != nil {
		return ui.ColumnWidth{}, err
	}
	if t[0].Kind == ui.TrackFr {
		return ui.FlexWidth(t[0].Value), nil
	}
	return ui.FixedWidth(t[0].Value), nil
}

func cellOf(v any) (ui.Cell, error) {
	switch x := v.(type) {
	case string:
		return ui.TextCell(x), nil
	case int64:
		return ui.NumberCell(float64(x)), nil
	case float64:
		return ui.NumberCell(x), nil
	case bool:
		return ui.BoolCell(x), nil
	}
	return ui.Cell{}, fmt.Errorf("unsupported cell value %T", v)
}

func parseColor(s string) (*style.Color, error) {
	c, err := style.ParseHex(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func colorPtr(hex string) *style.Color {
	c := style.MustHex(hex)
	return &c
}

func border(w float32, hex string) *style.Border {
	return &style.Border{Width: w, Color: style.MustHex(hex)}
}

func radius(r float32) geom.Radii { return geom.UniformRadii(r) }

func uniform(p float32) geom.Insets { return geom.UniformInsets(p) }
