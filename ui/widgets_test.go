package ui

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/text"
)

func TestRadioGroup(t *testing.T) {
	small := &Node{ID: "small", Content: &RadioButton{Group: "size", Value: "s", Label: "Small", Selected: true}}
	large := &Node{ID: "large", Content: &RadioButton{Group: "size", Value: "l", Label: "Large"}}
	red := &Node{ID: "red", Content: &RadioButton{Group: "color", Value: "red", Selected: true}}
	root := Column(8, small, large, red)
	ComputeLayout(root, 0, 0, 300, 200, measurer)
	s := NewInteractionState()

	got := click(root, s, large.Bounds.Center())
	if len(got) != 1 || got[0] != "large" {
		t.Fatalf("click actions = %v, want [large]", got)
	}
	if !ApplyAction(root, got[0]) {
		t.Fatal("ApplyAction(large) = false")
	}
	if small.Content.(*RadioButton).Selected || !large.Content.(*RadioButton).Selected {
		t.Error("selection did not move within the group")
	}
	if !red.Content.(*RadioButton).Selected {
		t.Error("another group was cleared")
	}
	if v, ok := RadioValue(root, "size"); !ok || v != "l" {
		t.Errorf("RadioValue = %q, %v, want l", v, ok)
	}
	if ApplyAction(root, "large") {
		t.Error("reselecting the selected radio reported a change")
	}
	if _, ok := RadioValue(root, "shape"); ok {
		t.Error("RadioValue found an empty group")
	}
}

func TestToggleSwitch(t *testing.T) {
	sw := &Node{ID: "dark", Content: &ToggleSwitch{Label: "Dark"}}
	root := Column(0, sw)
	ComputeLayout(root, 0, 0, 200, 100, measurer)
	s := NewInteractionState()

	thumbX := func() float32 {
		list := RenderUI(root, s, measurer)
		if len(list.Base.Circles) != 1 {
			t.Fatalf("circles = %d, want 1 thumb", len(list.Base.Circles))
		}
		return list.Base.Circles[0].Center.X
	}
	if x := thumbX(); x != 11 {
		t.Errorf("off thumb x = %v, want 11", x)
	}

	for _, a := range click(root, s, geom.V(10, sw.Bounds.Center().Y)) {
		ApplyAction(root, a)
	}
	if !sw.Content.(*ToggleSwitch).On {
		t.Fatal("click did not turn the switch on")
	}
	if x := thumbX(); x != 33 {
		t.Errorf("on thumb x = %v, want 33", x)
	}

	s.SetFocus("dark")
	got := HandleInteractions(root, s, Event{Kind: EventKey, Key: KeySpace})
	if len(got) != 1 || got[0] != "dark" {
		t.Errorf("space = %v, want [dark]", got)
	}
}

func TestListViewVirtualization(t *testing.T) {
	items := make([]string, 10000)
	for i := range items {
		items[i] = "item " + strconv.Itoa(i)
	}
	list := &Node{ID: "l", Content: NewListView(items)}
	ComputeLayout(list, 0, 0, 200, 300, measurer)
	s := NewInteractionState()
	limit := 300/defaultRowHeight + 2 + 2*DefaultOverscan

	for _, scroll := range []float32{0, 2800, 2810.5, 279700} {
		s.SetScroll("l", geom.V(0, scroll))
		texts := RenderUI(list, s, measurer).Base.Texts
		if len(texts) == 0 || len(texts) > limit {
			t.Errorf("scroll %v: %d rows rendered, want 1..%d", scroll, len(texts), limit)
		}
	}

	s.SetScroll("l", geom.V(0, 2800))
	if first := RenderUI(list, s, measurer).Base.Texts[0].Text; first != "item 98" {
		t.Errorf("first rendered row = %q, want item 98", first)
	}

	s.SetScroll("l", geom.V(0, 280))
	hit, _ := HitTest(list, s, geom.V(10, 5))
	if hit != "l:row:10" {
		t.Fatalf("HitTest = %q, want l:row:10", hit)
	}
	if !ApplyAction(list, hit) || list.Content.(*ListView).Selected != 10 {
		t.Errorf("selected = %d, want 10", list.Content.(*ListView).Selected)
	}
	if ApplyAction(list, hit) {
		t.Error("selecting the selected row reported a change")
	}

	HandleInteractions(list, s, Event{Kind: EventWheel, Pos: geom.V(10, 10), Delta: geom.V(0, 1e9)})
	if got, want := s.Scroll("l").Y, float32(10000*defaultRowHeight-300); got != want {
		t.Errorf("scroll after wheel = %v, want %v", got, want)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float32
		want            float32
	}{
		{"half", 0.5, 0, 1, 0.5},
		{"below", -1, 0, 1, 0},
		{"above", 2, 0, 1, 1},
		{"offset range", 15, 10, 30, 0.25},
		{"empty range", 5, 3, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ProgressBar{Value: tt.value, Min: tt.min, Max: tt.max}
			if got := p.Fraction(); got != tt.want {
				t.Errorf("Fraction() = %v, want %v", got, tt.want)
			}
		})
	}

	bar := &Node{Content: &ProgressBar{Value: 0.25, Max: 1}}
	ComputeLayout(bar, 0, 0, 200, 8, measurer)
	rects := RenderUI(bar, nil, measurer).Base.Rects
	if len(rects) != 2 || rects[1].Bounds.W != 50 {
		t.Errorf("rects = %+v, want track and a 50px fill", rects)
	}
}

func TestKpiCard(t *testing.T) {
	card := &Node{Content: &KpiCard{Title: "Revenue", Value: "$1.2M", Trend: &KpiTrend{Direction: TrendDown, Text: "-3%"}}}
	size := Intrinsic(card, measurer)
	wantH := float32(16*0.875*1.2+kpiGap+24*1.2+kpiGap+16*0.875*1.2) + 2*kpiPadding
	if math.Abs(float64(size.H-wantH)) > 0.01 {
		t.Errorf("height = %v, want %v", size.H, wantH)
	}
	value := measurer.Measure("$1.2M", text.FontSpec{Size: 24, Bold: true})
	if size.W < value.W+2*kpiPadding {
		t.Errorf("width %v narrower than the value", size.W)
	}

	ComputeLayout(card, 0, 0, size.W, size.H, measurer)
	texts := RenderUI(card, nil, measurer).Base.Texts
	if len(texts) != 3 {
		t.Fatalf("texts = %d, want title, value and trend", len(texts))
	}
	if texts[2].Text != "▼ -3%" || texts[2].Color != trendDownColor {
		t.Errorf("trend = %q %+v", texts[2].Text, texts[2].Color)
	}
	if !texts[1].Font.Bold || texts[1].Pos.Y <= texts[0].Pos.Y {
		t.Errorf("value text = %+v", texts[1])
	}
}

func TestIcon(t *testing.T) {
	icon := &Node{Content: &Icon{Name: "save.png", Size: 16}}
	if got := Intrinsic(&Node{Content: &Icon{}}, measurer); got != (geom.Size{W: 24, H: 24}) {
		t.Errorf("default size = %v", got)
	}
	ComputeLayout(icon, 0, 0, 40, 40, measurer)
	images := RenderUI(icon, nil, measurer).Base.Images
	if len(images) != 1 || images[0].Source != "save.png" || images[0].Bounds != geom.R(12, 12, 16, 16) {
		t.Errorf("images = %+v", images)
	}
}

func TestWidgetKinds(t *testing.T) {
	tests := []struct {
		content Content
		want    string
	}{
		{&Icon{}, "icon"},
		{&ProgressBar{}, "progress"},
		{&RadioButton{}, "radio"},
		{&ToggleSwitch{}, "toggle"},
		{NewListView(nil), "list"},
		{&KpiCard{}, "kpi"},
	}
	for _, tt := range tests {
		if got := (&Node{Content: tt.content}).Kind(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
}

func TestInvalidWidgetConfig(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name    string
		content Content
	}{
		{"icon size", &Icon{Size: -1}},
		{"progress range", &ProgressBar{Max: nan}},
		{"radio size", &RadioButton{Size: inf}},
		{"switch width", &ToggleSwitch{Width: -2}},
		{"list item height", &ListView{ItemHeight: nan}},
		{"min length", &TextInput{Rules: []ValidationRule{MinLength(-1)}}},
		{"pattern", &TextInput{Rules: []ValidationRule{Pattern("(")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(&Node{Content: tt.content}); !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("Validate = %v, want ErrInvalidLayout", err)
			}
		})
	}
}
