package ui

import (
	"testing"

	"github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
)

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                   string
		scroll, viewport, rowH float32
		rows, overscan         int
		wantStart, wantEnd     int
	}{
		{"top", 0, 600, 25, 100000, 2, 0, 26},
		{"aligned", 1000, 600, 25, 100000, 2, 38, 66},
		{"misaligned", 1010, 600, 25, 100000, 2, 38, 67},
		{"bottom clamps", 2499400, 600, 25, 100000, 2, 99974, 100000},
		{"few rows", 0, 600, 25, 3, 2, 0, 3},
		{"no rows", 0, 600, 25, 0, 2, 0, 0},
		{"no overscan", 50, 100, 25, 100, 0, 2, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleRange(tt.scroll, tt.viewport, tt.rowH, tt.rows, tt.overscan)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func bigTable(n int) *TableSource {
	rows := make([][]Cell, n)
	for i := range rows {
		rows[i] = []Cell{NumberCell(float64(i))}
	}
	return NewTableSource(rows)
}

func TestDataGridVirtualization(t *testing.T) {
	grid := &Node{ID: "g", Content: &DataGrid{
		Columns:      []GridColumn{{Title: "id"}},
		Source:       bigTable(100000),
		RowHeight:    25,
		HeaderHeight: 32,
	}}
	ComputeLayout(grid, 0, 0, 400, 632, measurer)
	s := NewInteractionState()
	limit := 600/25 + 2*DefaultOverscan + 1

	for _, scroll := range []float32{0, 1000, 1010, 123456.5, 2499400} {
		s.SetScroll("g", geom.V(0, scroll))
		list := RenderUI(grid, s, measurer)
		rows := len(list.Base.Texts) - 1
		if rows > limit {
			t.Errorf("scroll %v: %d row instances, want at most %d", scroll, rows, limit)
		}
		if rows == 0 {
			t.Errorf("scroll %v: no rows rendered", scroll)
		}
	}
}

func TestRenderGroupsAndOrder(t *testing.T) {
	red := style.MustHex("#ff0000")
	card := Column(4, NewLabel("Hello"), NewButton("ok", "OK"))
	card.Style = style.Style{Background: &red, Radius: style.Uniform(8)}
	ComputeLayout(card, 0, 0, 200, 100, measurer)

	list := RenderUI(card, NewInteractionState(), measurer)
	if len(list.Base.Texts) != 2 {
		t.Fatalf("texts = %d, want 2", len(list.Base.Texts))
	}
	if list.Base.Texts[0].Text != "Hello" || list.Base.Texts[1].Text != "OK" {
		t.Errorf("text order = %q, %q", list.Base.Texts[0].Text, list.Base.Texts[1].Text)
	}
	if len(list.Base.Rects) == 0 || list.Base.Rects[0].Color != red || list.Base.Rects[0].Bounds != card.Bounds {
		t.Errorf("first rect = %+v, want the card background", list.Base.Rects[0])
	}
	if list.Overlay.Len() != 0 {
		t.Errorf("overlay has %d instances", list.Overlay.Len())
	}
}

func TestRenderBoxLayers(t *testing.T) {
	bg := style.MustHex("#112233")
	n := &Node{Content: &Spacer{}}
	n.Style = style.Style{
		Background: &bg,
		Border:     &style.Border{Width: 2, Color: style.White},
		Shadow:     &style.Shadow{Offset: geom.V(0, 4), Blur: 6, Color: style.Black},
	}
	root := &Node{Content: &Container{Children: []*Node{n}, Layout: Layout{Direction: DirNone}}}
	ComputeLayout(root, 0, 0, 50, 50, measurer)

	f := &frame{Renderer: NewRenderer(measurer, style.Modern()), s: NewInteractionState(), base: &draw.Layer{}, over: &draw.Layer{}}
	f.box(f.base, n.Bounds, n.Style, draw.NoClip)
	rects := f.base.Rects
	if len(rects) != 3 {
		t.Fatalf("rects = %d, want shadow, fill and border", len(rects))
	}
	if rects[0].Softness != 6 || rects[0].Bounds.Y != 4 {
		t.Errorf("shadow = %+v", rects[0])
	}
	if rects[1].Color != bg || rects[1].Stroke != 0 {
		t.Errorf("fill = %+v", rects[1])
	}
	if rects[2].Stroke != 2 {
		t.Errorf("border = %+v", rects[2])
	}
}

func TestRenderGradient(t *testing.T) {
	top, bottom := style.MustHex("#000000"), style.MustHex("#ffffff")
	n := &Node{Style: style.Style{Gradient: &style.Gradient{Start: top, End: bottom}}, Content: &Container{}}
	ComputeLayout(n, 0, 0, 10, 10, measurer)
	list := RenderUI(n, nil, measurer)
	if r := list.Base.Rects[0]; r.Color != top || r.ColorEnd != bottom {
		t.Errorf("gradient rect = %+v", r)
	}
}

func TestRenderScrollOffsetAndClip(t *testing.T) {
	root, items := scrollList(5)
	ComputeLayout(root, 0, 0, 200, 300, measurer)
	s := NewInteractionState()
	s.SetScroll("list", geom.V(0, 100))

	list := RenderUI(root, s, measurer)
	viewport := geom.R(0, 0, 200, 100)
	var labels int
	for _, txt := range list.Base.Texts {
		labels++
		if txt.Clip != viewport {
			t.Errorf("text clip = %+v, want %+v", txt.Clip, viewport)
		}
	}
	// Items 1..3 intersect the viewport after scrolling by 100: item 1 is culled
	// because it ends exactly at the top edge.
	if labels != 2 {
		t.Errorf("rendered %d item labels, want 2", labels)
	}
	if items[2].Bounds.Y != 100 {
		t.Errorf("layout bounds moved by scrolling: %+v", items[2].Bounds)
	}
	var thumb bool
	for _, r := range list.Base.Rects {
		if r.Bounds.X == 200-scrollbarMargin-scrollbarWidth {
			thumb = true
		}
	}
	if !thumb {
		t.Error("no scrollbar thumb rendered")
	}
}

func TestRenderHoverOverlay(t *testing.T) {
	base, hover := style.MustHex("#333333"), style.MustHex("#ff00ff")
	n := &Node{ID: "card", Style: style.Style{Background: &base}, Hover: &style.Style{Background: &hover}, Content: &Container{}}
	ComputeLayout(n, 0, 0, 100, 100, measurer)
	s := NewInteractionState()

	if got := RenderUI(n, s, measurer).Base.Rects[0].Color; got != base {
		t.Errorf("idle color = %v, want %v", got, base)
	}
	HandleInteractions(n, s, Event{Kind: EventPointerMove, Pos: geom.V(50, 50)})
	if got := RenderUI(n, s, measurer).Base.Rects[0].Color; got != hover {
		t.Errorf("hover color = %v, want %v", got, hover)
	}
}

func TestRenderOpenDropdownOnOverlay(t *testing.T) {
	dd := &Node{ID: "dd", Width: 120, Height: 30, Content: &Dropdown{Options: []string{"a", "b"}}}
	root := Column(0, dd)
	ComputeLayout(root, 0, 0, 300, 300, measurer)
	s := NewInteractionState()

	if n := RenderUI(root, s, measurer).Overlay.Len(); n != 0 {
		t.Fatalf("closed dropdown drew %d overlay instances", n)
	}
	s.SetOpen("dd", true)
	list := RenderUI(root, s, measurer)
	if len(list.Overlay.Texts) != 2 {
		t.Errorf("overlay texts = %d, want one per option", len(list.Overlay.Texts))
	}
	if list.Overlay.Texts[0].Pos.Y < dd.Bounds.Bottom() {
		t.Errorf("popup starts at %v, above the trigger bottom %v", list.Overlay.Texts[0].Pos.Y, dd.Bounds.Bottom())
	}
}

func TestRenderRichText(t *testing.T) {
	n := NewLabel(`plain <b>bold</b> <color="#ff0000">red</color>`)
	ComputeLayout(n, 0, 0, 400, 40, measurer)
	texts := RenderUI(n, nil, measurer).Base.Texts
	if len(texts) != 4 {
		t.Fatalf("runs = %d, want 4", len(texts))
	}
	if !texts[1].Font.Bold || texts[1].Text != "bold" {
		t.Errorf("second run = %+v", texts[1])
	}
	if texts[3].Color != style.MustHex("#ff0000") {
		t.Errorf("fourth run color = %v", texts[3].Color)
	}
	for i := 1; i < len(texts); i++ {
		if texts[i].Pos.X < texts[i-1].Pos.X+texts[i-1].Size.W-0.01 {
			t.Errorf("run %d overlaps run %d", i, i-1)
		}
	}
}

func TestRenderTreeVisibleRows(t *testing.T) {
	tree := &TreeView{RowHeight: 20, Roots: []*TreeItem{
		{ID: "root", Label: "root", Expanded: true, Children: []*TreeItem{
			{ID: "a", Label: "a"},
			{ID: "b", Label: "b", Children: []*TreeItem{{ID: "b1", Label: "b1"}}},
		}},
	}}
	if got := len(tree.Visible()); got != 3 {
		t.Fatalf("Visible() = %d items, want 3", got)
	}
	n := &Node{ID: "tree", Content: tree}
	ComputeLayout(n, 0, 0, 200, 200, measurer)
	if got := len(RenderUI(n, nil, measurer).Base.Texts); got != 3 {
		t.Errorf("rendered %d labels, want 3", got)
	}
}
