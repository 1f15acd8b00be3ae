package ui

import (
	"slices"
	"testing"

	"github.com/agiangrant/facet/geom"
)

func click(root *Node, s *InteractionState, p geom.Vec2) []string {
	out := HandleInteractions(root, s, Event{Kind: EventPointerDown, Pos: p})
	return append(out, HandleInteractions(root, s, Event{Kind: EventPointerUp, Pos: p})...)
}

func TestHitTestBasics(t *testing.T) {
	save := NewButton("save", "Save")
	save.Content.(*Button).Action = "doc:save:"
	plain := NewButton("plain", "Plain")
	root := Row(10, save, NewLabel("static"), plain)
	ComputeLayout(root, 0, 0, 400, 40, measurer)
	s := NewInteractionState()

	tests := []struct {
		name string
		p    geom.Vec2
		want string
		ok   bool
	}{
		{"button action", save.Bounds.Center(), "doc:save:", true},
		{"button id", plain.Bounds.Center(), "plain", true},
		{"label without id", root.Children()[1].Bounds.Center(), "", false},
		{"outside everything", geom.V(1000, 1000), "", false},
		{"below the row", geom.V(5, 45), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HitTest(root, s, tt.p)
			if got != tt.want || ok != tt.ok {
				t.Errorf("HitTest(%v) = %q, %v, want %q, %v", tt.p, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHitTestReversePaintOrder(t *testing.T) {
	under, over := NewButton("under", "U"), NewButton("over", "O")
	root := &Node{Content: &Container{Children: []*Node{under, over}, Layout: Layout{Direction: DirNone}}}
	ComputeLayout(root, 0, 0, 100, 100, measurer)

	if got, _ := HitTest(root, NewInteractionState(), geom.V(50, 50)); got != "over" {
		t.Errorf("HitTest = %q, want the later sibling", got)
	}
}

func scrollList(n int) (*Node, []*Node) {
	var items []*Node
	for i := range n {
		b := NewButton(string(rune('a'+i)), "item")
		b.Height = 50
		items = append(items, b)
	}
	list := Column(0, items...)
	list.ID = "list"
	list.Container().Layout.Scrollable = true
	list.Height = 100
	root := Column(0, list, flex(1))
	return root, items
}

func TestHitTestHonorsScroll(t *testing.T) {
	root, items := scrollList(5)
	ComputeLayout(root, 0, 0, 200, 300, measurer)
	s := NewInteractionState()

	if got, _ := HitTest(root, s, geom.V(10, 60)); got != items[1].ID {
		t.Errorf("unscrolled hit = %q, want %q", got, items[1].ID)
	}

	s.SetScroll("list", geom.V(0, 100))
	if got, _ := HitTest(root, s, geom.V(10, 60)); got != items[3].ID {
		t.Errorf("scrolled hit = %q, want %q", got, items[3].ID)
	}
	// items[4] sits at y 200..250 in layout space and is scrolled to 100..150,
	// outside the 100 px viewport.
	if got, ok := HitTest(root, s, geom.V(10, 120)); ok {
		t.Errorf("hit %q outside the scroll viewport", got)
	}
}

func TestHitTestCompositeWidgets(t *testing.T) {
	rows := make([][]Cell, 50)
	for i := range rows {
		rows[i] = []Cell{NumberCell(float64(i)), TextCell("x")}
	}
	grid := &Node{ID: "g", Height: 232, Content: &DataGrid{
		Columns:      []GridColumn{{Title: "n", Width: FixedWidth(80)}, {Title: "x", Width: FlexWidth(1)}},
		Source:       NewTableSource(rows),
		RowHeight:    25,
		HeaderHeight: 32,
	}}
	tree := &Node{ID: "tree", Height: 100, Content: &TreeView{RowHeight: 20, Indent: 10, Roots: []*TreeItem{
		{ID: "root", Label: "Root", Expanded: true, Children: []*TreeItem{{ID: "leaf", Label: "Leaf"}}},
	}}}
	tabs := &Node{ID: "tabs", Height: 100, Content: &Tabs{Labels: []string{"A", "B"}, HeaderHeight: 30}}
	root := Column(0, grid, tree, tabs)
	ComputeLayout(root, 0, 0, 200, 600, measurer)
	s := NewInteractionState()

	tests := []struct {
		name   string
		scroll geom.Vec2
		p      geom.Vec2
		want   string
	}{
		{"grid header", geom.Vec2{}, geom.V(100, 10), "g:header:1"},
		{"grid row", geom.Vec2{}, geom.V(10, 32+25*3+1), "g:row:3"},
		{"grid row scrolled", geom.V(0, 50), geom.V(10, 32+25*3+1), "g:row:5"},
		{"tree expander", geom.Vec2{}, geom.V(8, 232+10), "tree:toggle:root"},
		{"tree label", geom.Vec2{}, geom.V(100, 232+10), "tree:select:root"},
		{"tree child", geom.Vec2{}, geom.V(100, 232+30), "tree:select:leaf"},
		{"tree empty area", geom.Vec2{}, geom.V(100, 232+90), "tree"},
		{"second tab", geom.Vec2{}, geom.V(150, 332+5), "tabs:tab:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetScroll("g", tt.scroll)
			if got, _ := HitTest(root, s, tt.p); got != tt.want {
				t.Errorf("HitTest(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestClickRequiresPressAndReleaseOnSameAction(t *testing.T) {
	a, b := NewButton("a", "A"), NewButton("b", "B")
	root := Row(10, a, b)
	ComputeLayout(root, 0, 0, 300, 40, measurer)
	s := NewInteractionState()

	if got := click(root, s, a.Bounds.Center()); !slices.Equal(got, []string{"a"}) {
		t.Errorf("click = %v, want [a]", got)
	}
	HandleInteractions(root, s, Event{Kind: EventPointerDown, Pos: a.Bounds.Center()})
	if !s.IsActive("a") {
		t.Error("pressed button is not active")
	}
	got := HandleInteractions(root, s, Event{Kind: EventPointerUp, Pos: b.Bounds.Center()})
	if len(got) != 0 {
		t.Errorf("release elsewhere = %v, want no actions", got)
	}
	if s.Active != "" {
		t.Errorf("Active = %q after release", s.Active)
	}
}

func TestHoverTracksNodeID(t *testing.T) {
	a := NewButton("a", "A")
	a.Content.(*Button).Action = "go"
	root := Row(0, a)
	ComputeLayout(root, 0, 0, 100, 40, measurer)
	s := NewInteractionState()

	HandleInteractions(root, s, Event{Kind: EventPointerMove, Pos: a.Bounds.Center()})
	if !s.IsHovered("a") {
		t.Errorf("Hovered = %q, want a", s.Hovered)
	}
	if w, _ := s.Lookup("a"); !w.Hover {
		t.Error("widget state not marked hovered")
	}
	HandleInteractions(root, s, Event{Kind: EventPointerMove, Pos: geom.V(500, 500)})
	if s.Hovered != "" {
		t.Errorf("Hovered = %q after leaving", s.Hovered)
	}
	if w, _ := s.Lookup("a"); w.Hover {
		t.Error("widget state still hovered")
	}
}

func TestFocusCycling(t *testing.T) {
	disabled := NewButton("off", "Off")
	disabled.Content.(*Button).Disabled = true
	root := Column(0,
		NewButton("one", "1"),
		NewLabel("not focusable"),
		disabled,
		&Node{ID: "input", Content: &TextInput{}},
		&Node{ID: "check", Content: &Checkbox{}},
	)
	want := []string{"one", "input", "check"}
	if got := FocusableIDs(root); !slices.Equal(got, want) {
		t.Fatalf("FocusableIDs = %v, want %v", got, want)
	}

	s := NewInteractionState()
	tab := Event{Kind: EventKey, Key: KeyTab}
	back := Event{Kind: EventKey, Key: KeyTab, Shift: true}
	steps := []struct {
		ev   Event
		want string
	}{
		{tab, "one"}, {tab, "input"}, {tab, "check"}, {tab, "one"}, {back, "check"}, {back, "input"},
	}
	for i, step := range steps {
		HandleInteractions(root, s, step.ev)
		if s.Focused != step.want {
			t.Fatalf("step %d: Focused = %q, want %q", i, s.Focused, step.want)
		}
	}
}

func TestEnterActivatesFocusedButton(t *testing.T) {
	b := NewButton("b", "B")
	b.Content.(*Button).Action = "b:submit:"
	root := Column(0, b)
	s := NewInteractionState()
	s.SetFocus("b")

	got := HandleInteractions(root, s, Event{Kind: EventKey, Key: KeyEnter})
	if !slices.Equal(got, []string{"b:submit:"}) {
		t.Errorf("Enter = %v, want [b:submit:]", got)
	}
}

func TestSliderDrag(t *testing.T) {
	sl := &Node{ID: "vol", Width: 200, Content: &Slider{Min: 0, Max: 10, ThumbRadius: 8}}
	root := Row(0, sl)
	ComputeLayout(root, 0, 0, 400, 40, measurer)
	s := NewInteractionState()

	got := HandleInteractions(root, s, Event{Kind: EventPointerDown, Pos: geom.V(100, 10)})
	if !slices.Equal(got, []string{"vol:drag:0.5000"}) {
		t.Fatalf("press = %v, want [vol:drag:0.5000]", got)
	}
	if s.Drag == nil || s.Drag.ID != "vol" {
		t.Fatalf("Drag = %+v, want slider drag", s.Drag)
	}
	got = HandleInteractions(root, s, Event{Kind: EventPointerMove, Pos: geom.V(500, 300)})
	if !slices.Equal(got, []string{"vol:drag:1.0000"}) {
		t.Errorf("move past the end = %v, want [vol:drag:1.0000]", got)
	}
	if !ApplyAction(root, got[0]) || sl.Content.(*Slider).Value != 10 {
		t.Errorf("slider value = %v, want 10", sl.Content.(*Slider).Value)
	}
	halo := RenderUI(root, s, measurer).Overlay.Circles
	if len(halo) != 1 || halo[0].Center.X != 192 {
		t.Errorf("drag overlay = %+v, want one halo at x 192", halo)
	}
	if got := HandleInteractions(root, s, Event{Kind: EventPointerUp, Pos: geom.V(500, 300)}); len(got) != 0 {
		t.Errorf("release = %v, want nothing", got)
	}
	if s.Drag != nil {
		t.Error("drag not cleared on release")
	}
	if n := RenderUI(root, s, measurer).Overlay.Len(); n != 0 {
		t.Errorf("overlay after release has %d instances", n)
	}
}

func TestWheelScrollIsClamped(t *testing.T) {
	root, _ := scrollList(5)
	ComputeLayout(root, 0, 0, 200, 300, measurer)
	s := NewInteractionState()
	at := geom.V(10, 50)

	tests := []struct {
		delta geom.Vec2
		want  float32
	}{
		{geom.V(0, 40), 40},
		{geom.V(0, 1000), 150},
		{geom.V(0, -30), 120},
		{geom.V(0, -5000), 0},
	}
	for _, tt := range tests {
		HandleInteractions(root, s, Event{Kind: EventWheel, Pos: at, Delta: tt.delta})
		if got := s.Scroll("list").Y; got != tt.want {
			t.Errorf("after delta %v: scroll = %v, want %v", tt.delta, got, tt.want)
		}
	}
}

func TestScrollbarDrag(t *testing.T) {
	root, _ := scrollList(5)
	ComputeLayout(root, 0, 0, 200, 300, measurer)
	s := NewInteractionState()

	grab := geom.V(200-scrollbarMargin-scrollbarWidth/2, 10)
	HandleInteractions(root, s, Event{Kind: EventPointerDown, Pos: grab})
	if s.Drag == nil || s.Drag.ID != "list" {
		t.Fatalf("Drag = %+v, want scrollbar drag of list", s.Drag)
	}
	HandleInteractions(root, s, Event{Kind: EventPointerMove, Pos: grab.Add(geom.V(0, 1000))})
	if got := s.Scroll("list").Y; got != 150 {
		t.Errorf("scroll = %v, want 150", got)
	}
	if rects := RenderUI(root, s, measurer).Overlay.Rects; len(rects) != 1 || rects[0].Bounds.Bottom() != 100 {
		t.Errorf("drag overlay = %+v, want the thumb at the bottom of the viewport", rects)
	}
	HandleInteractions(root, s, Event{Kind: EventPointerUp, Pos: grab})
	if s.Drag != nil {
		t.Error("drag not cleared")
	}
}

func TestDropdownFlow(t *testing.T) {
	dd := &Node{ID: "color", Width: 160, Height: 30, Content: &Dropdown{Options: []string{"red", "green", "blue"}, Selected: -1}}
	root := Column(0, dd, flex(1))
	ComputeLayout(root, 0, 0, 300, 300, measurer)
	s := NewInteractionState()

	if got := click(root, s, geom.V(10, 10)); !slices.Equal(got, []string{"color"}) {
		t.Fatalf("trigger click = %v", got)
	}
	if !s.IsOpen("color") {
		t.Fatal("popup not open after trigger click")
	}
	option := geom.V(10, 30+32*1+5)
	if got, _ := HitTest(root, s, option); got != "color:option:1" {
		t.Fatalf("HitTest(option) = %q", got)
	}
	got := click(root, s, option)
	if !slices.Equal(got, []string{"color:option:1"}) {
		t.Fatalf("option click = %v", got)
	}
	if s.IsOpen("color") {
		t.Error("popup still open after choosing")
	}
	if !ApplyAction(root, got[0]) || dd.Content.(*Dropdown).Selected != 1 {
		t.Errorf("Selected = %d, want 1", dd.Content.(*Dropdown).Selected)
	}

	click(root, s, geom.V(10, 10))
	click(root, s, geom.V(250, 250))
	if s.IsOpen("color") {
		t.Error("popup not closed by an outside click")
	}
}

func TestApplyAction(t *testing.T) {
	rows := [][]Cell{{NumberCell(3)}, {NumberCell(1)}, {NumberCell(2)}}
	grid := &DataGrid{Columns: []GridColumn{{Title: "n", Sortable: true}}, Source: NewTableSource(rows), Selection: SelectMultiple, SortColumn: -1}
	tree := &TreeView{Roots: []*TreeItem{{ID: "r", Children: []*TreeItem{{ID: "c"}}}}}
	tabs := &Tabs{Labels: []string{"a", "b"}}
	check := &Checkbox{}
	root := Column(0,
		&Node{ID: "g", Content: grid},
		&Node{ID: "t", Content: tree},
		&Node{ID: "tabs", Content: tabs},
		&Node{ID: "cb", Content: check},
	)

	steps := []struct {
		action  string
		changed bool
	}{
		{"cb", true},
		{"t:toggle:r", true},
		{"t:toggle:c", false},
		{"t:select:c", true},
		{"tabs:tab:1", true},
		{"tabs:tab:1", false},
		{"g:row:2", true},
		{"g:header:0", true},
		{"unknown", false},
	}
	for _, step := range steps {
		if got := ApplyAction(root, step.action); got != step.changed {
			t.Errorf("ApplyAction(%q) = %v, want %v", step.action, got, step.changed)
		}
	}

	if !check.Checked {
		t.Error("checkbox not toggled")
	}
	if !tree.Roots[0].Expanded || tree.Selected != "c" {
		t.Errorf("tree = expanded %v selected %q", tree.Roots[0].Expanded, tree.Selected)
	}
	if tabs.Active != 1 {
		t.Errorf("tabs.Active = %d, want 1", tabs.Active)
	}
	first, _ := grid.Row(0, 0)
	if grid.SortColumn != 0 || first.Number != 1 {
		t.Errorf("sort column %d first value %v, want 0 and 1", grid.SortColumn, first.Number)
	}

	if !ApplyActionExtend(root, "g:row:0") || !ApplyActionExtend(root, "g:row:1") || len(grid.Selected) != 2 {
		t.Errorf("extended selection = %v, want two rows", grid.Selected)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"save", Action{ID: "save"}},
		{"grid:row:42", Action{ID: "grid", Verb: "row", Param: "42"}},
		{"tree:select:a:b", Action{ID: "tree", Verb: "select", Param: "a:b"}},
		{"x:verb", Action{ID: "x", Verb: "verb"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseAction(tt.in); got != tt.want {
				t.Errorf("ParseAction(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
