package ui

import (
	"github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/geom"
)

// EventKind identifies an input event.
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventPointerDown
	EventPointerUp
	EventWheel
	EventKey
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer-move"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventWheel:
		return "wheel"
	case EventKey:
		return "key"
	}
	return "unknown"
}

// Key is a key the toolkit reacts to. Text entry is left to the application.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyEnter
	KeySpace
	KeyEscape
)

// Event is one input event in window coordinates.
type Event struct {
	Kind EventKind
	Pos  geom.Vec2
	// Delta is the wheel movement; positive Y scrolls content up.
	Delta geom.Vec2
	Key   Key
	Shift bool
}

// HandleInteractions applies ev to s and returns the actions it produced, in order.
// Clicks produce the action of the widget under the pointer when it was both pressed
// and released over the same action. Slider drags produce "{id}:drag:{fraction}" on
// press and on every move.
func HandleInteractions(root *Node, s *InteractionState, ev Event) []string {
	if root == nil || s == nil {
		return nil
	}
	switch ev.Kind {
	case EventPointerMove:
		return pointerMove(root, s, ev.Pos)
	case EventPointerDown:
		return pointerDown(root, s, ev.Pos)
	case EventPointerUp:
		return pointerUp(root, s, ev.Pos)
	case EventWheel:
		s.Pointer = ev.Pos
		wheel(root, s, ev.Pos, ev.Delta)
		return nil
	case EventKey:
		return key(root, s, ev)
	}
	return nil
}

func pointerMove(root *Node, s *InteractionState, p geom.Vec2) []string {
	s.Pointer = p
	if d := s.Drag; d != nil {
		return dragTo(root, s, d, p)
	}
	_, n := hitTest(root, s, p)
	if n == nil {
		s.setHovered("")
		return nil
	}
	s.setHovered(n.ID)
	return nil
}

func pointerDown(root *Node, s *InteractionState, p geom.Vec2) []string {
	s.Pointer, s.Pressed = p, true

	if id, ok := scrollbarAt(root, s, p); ok {
		s.Drag = &DragState{ID: id, kind: dragScrollbar, Start: p, Origin: s.Scroll(id)}
		return nil
	}

	hit, n := hitTest(root, s, p)
	if n == nil {
		s.pressed = ""
		s.closeAll()
		s.SetFocus("")
		return nil
	}
	for _, id := range s.OpenIDs() {
		if id != n.ID {
			s.SetOpen(id, false)
		}
	}
	s.pressed = hit
	s.setActive(n.ID)

	if focusable(n) {
		s.SetFocus(n.ID)
	} else {
		s.SetFocus("")
	}
	if _, ok := n.Content.(*Slider); ok {
		d := &DragState{ID: n.ID, kind: dragSlider, Start: p}
		s.Drag = d
		return dragTo(root, s, d, p)
	}
	return nil
}

func pointerUp(root *Node, s *InteractionState, p geom.Vec2) []string {
	s.Pointer, s.Pressed = p, false
	pressed := s.pressed
	s.pressed = ""
	defer s.setActive("")

	if s.Drag != nil {
		s.Drag = nil
		return nil
	}
	hit, n := hitTest(root, s, p)
	if n == nil || hit != pressed {
		return nil
	}
	if _, ok := n.Content.(*Dropdown); ok {
		switch ParseAction(hit).Verb {
		case VerbOption:
			s.SetOpen(n.ID, false)
		case "":
			s.SetOpen(n.ID, !s.IsOpen(n.ID))
		}
	}
	return []string{hit}
}

func dragTo(root *Node, s *InteractionState, d *DragState, p geom.Vec2) []string {
	n := FindByID(root, d.ID)
	screen, _, ok := ScreenRect(root, s, d.ID)
	if n == nil || !ok {
		s.Drag = nil
		return nil
	}
	switch d.kind {
	case dragSlider:
		sl, ok := n.Content.(*Slider)
		if !ok {
			return nil
		}
		r := thumbRadius(sl)
		span := screen.W - 2*r
		var f float32
		if span > 0 {
			f = geom.Clamp((p.X-screen.X-r)/span, 0, 1)
		}
		return []string{Action{ID: d.ID, Verb: VerbDrag, Param: formatFraction(f)}.String()}
	case dragScrollbar:
		_, thumb, ok := scrollbar(n, screen, d.Origin)
		if !ok {
			return nil
		}
		vp := viewportRect(n, screen)
		travel := vp.H - thumb.H
		if travel <= 0 {
			return nil
		}
		limit := MaxScroll(n)
		y := d.Origin.Y + (p.Y-d.Start.Y)*limit.Y/travel
		s.SetScroll(d.ID, clampScroll(n, geom.V(d.Origin.X, y)))
	}
	return nil
}

// scrollbarAt returns the id of the scrollable whose scrollbar track is under p.
func scrollbarAt(root *Node, s *InteractionState, p geom.Vec2) (string, bool) {
	var id string
	visit(root, s, geom.Vec2{}, draw.NoClip, func(n *Node, screen, clip geom.Rect) bool {
		if !clip.Contains(p) {
			return true
		}
		if track, _, ok := scrollbar(n, screen, s.Scroll(n.ID)); ok && track.Contains(p) {
			id = n.ID
		}
		return true
	})
	return id, id != ""
}

// wheel scrolls the innermost scrollable under p that can still move in the
// direction of delta. The offset is clamped to [0, content - viewport].
func wheel(root *Node, s *InteractionState, p geom.Vec2, delta geom.Vec2) {
	var target *Node
	visit(root, s, geom.Vec2{}, draw.NoClip, func(n *Node, screen, clip geom.Rect) bool {
		if !clip.Contains(p) || !screen.Contains(p) {
			return true
		}
		if n.ID == "" {
			return true
		}
		cur := s.Scroll(n.ID)
		next := clampScroll(n, cur.Add(delta))
		if next != cur {
			target = n
		}
		return true
	})
	if target == nil {
		return
	}
	s.SetScroll(target.ID, clampScroll(target, s.Scroll(target.ID).Add(delta)))
}

func key(root *Node, s *InteractionState, ev Event) []string {
	switch ev.Key {
	case KeyTab:
		cycleFocus(root, s, ev.Shift)
	case KeyEscape:
		s.closeAll()
	case KeyEnter, KeySpace:
		if s.Focused == "" {
			return nil
		}
		n := FindByID(root, s.Focused)
		if n == nil {
			return nil
		}
		switch c := n.Content.(type) {
		case *Button:
			if c.Disabled {
				return nil
			}
			if c.Action != "" {
				return []string{c.Action}
			}
			return []string{n.ID}
		case *Checkbox, *RadioButton, *ToggleSwitch:
			return []string{n.ID}
		case *Dropdown:
			s.SetOpen(n.ID, !s.IsOpen(n.ID))
			return []string{n.ID}
		case *TextInput:
			if ev.Key == KeyEnter {
				return []string{n.ID}
			}
		}
	}
	return nil
}

func cycleFocus(root *Node, s *InteractionState, back bool) {
	ids := FocusableIDs(root)
	if len(ids) == 0 {
		s.SetFocus("")
		return
	}
	cur := -1
	for i, id := range ids {
		if id == s.Focused {
			cur = i
			break
		}
	}
	var next int
	switch {
	case cur < 0 && back:
		next = len(ids) - 1
	case cur < 0:
		next = 0
	case back:
		next = (cur - 1 + len(ids)) % len(ids)
	default:
		next = (cur + 1) % len(ids)
	}
	s.SetFocus(ids[next])
}

func focusable(n *Node) bool {
	if n.ID == "" {
		return false
	}
	switch c := n.Content.(type) {
	case *Button:
		return !c.Disabled
	case *TextInput, *Checkbox, *Slider, *Dropdown, *DataGrid, *TreeView, *Tabs,
		*RadioButton, *ToggleSwitch, *ListView:
		return true
	}
	return false
}

// FocusableIDs returns the ids of focusable widgets in tree order. Inactive tab pages
// are skipped.
func FocusableIDs(root *Node) []string {
	var ids []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if focusable(n) {
			ids = append(ids, n.ID)
		}
		for _, c := range n.liveChildren() {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return ids
}
