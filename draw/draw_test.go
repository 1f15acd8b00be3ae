package draw

import (
	"testing"

	"github.com/agiangrant/facet/geom"
)

func TestListLenAndReset(t *testing.T) {
	var l List
	l.Base.Rects = append(l.Base.Rects, Rect{Bounds: geom.R(0, 0, 10, 10), Clip: NoClip})
	l.Base.Texts = append(l.Base.Texts, Text{Text: "a"})
	l.Overlay.Circles = append(l.Overlay.Circles, Circle{Radius: 3})

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	if layers := l.Layers(); layers[0] != &l.Base || layers[1] != &l.Overlay {
		t.Error("Layers must return base before overlay")
	}

	l.Reset()
	if l.Len() != 0 || cap(l.Base.Rects) == 0 {
		t.Errorf("Reset should empty the list and keep capacity, len=%d cap=%d", l.Len(), cap(l.Base.Rects))
	}
}

func TestNoClipCoversWindow(t *testing.T) {
	if !NoClip.Contains(geom.V(0, 0)) || !NoClip.Contains(geom.V(8000, 8000)) {
		t.Error("NoClip should contain any on-screen point")
	}
}
