package ui

import "github.com/agiangrant/facet/geom"

// WidgetState is the per-widget interaction record kept across frames.
type WidgetState struct {
	Hover  bool
	Focus  bool
	Active bool
	Scroll geom.Vec2
}

type dragKind int

const (
	dragSlider dragKind = iota + 1
	dragScrollbar
)

// DragState describes a pointer drag in progress.
type DragState struct {
	ID    string
	kind  dragKind
	Start geom.Vec2
	// Origin is the scroll offset when a scrollbar drag started.
	Origin geom.Vec2
}

// InteractionState is everything about the UI that is not the tree itself: pointer,
// hover, focus, press and scroll state keyed by node ID. The application owns it and
// passes it to every frame.
type InteractionState struct {
	Pointer geom.Vec2
	Pressed bool

	Hovered string
	Focused string
	Active  string

	Drag *DragState

	widgets map[string]*WidgetState
	open    map[string]bool
	// pressed is the full action string hit at pointer down; a click is a release
	// over the same action.
	pressed string
}

// NewInteractionState returns an empty state.
func NewInteractionState() *InteractionState {
	return &InteractionState{
		widgets: make(map[string]*WidgetState),
		open:    make(map[string]bool),
	}
}

// Widget returns the state for id, creating it on first use.
func (s *InteractionState) Widget(id string) *WidgetState {
	if s.widgets == nil {
		s.widgets = make(map[string]*WidgetState)
	}
	w, ok := s.widgets[id]
	if !ok {
		w = &WidgetState{}
		s.widgets[id] = w
	}
	return w
}

// Lookup returns a copy of the state for id without creating it.
func (s *InteractionState) Lookup(id string) (WidgetState, bool) {
	if s == nil {
		return WidgetState{}, false
	}
	w, ok := s.widgets[id]
	if !ok {
		return WidgetState{}, false
	}
	return *w, true
}

// Scroll returns the scroll offset of id.
func (s *InteractionState) Scroll(id string) geom.Vec2 {
	w, _ := s.Lookup(id)
	return w.Scroll
}

// SetScroll stores a scroll offset for id. Offsets are clamped to the content when
// the next wheel event reaches the widget, not here.
func (s *InteractionState) SetScroll(id string, v geom.Vec2) {
	s.Widget(id).Scroll = v
}

// IsOpen reports whether the dropdown id has its popup open.
func (s *InteractionState) IsOpen(id string) bool {
	return s != nil && s.open[id]
}

// SetOpen opens or closes the popup of dropdown id.
func (s *InteractionState) SetOpen(id string, open bool) {
	if s.open == nil {
		s.open = make(map[string]bool)
	}
	if open {
		s.open[id] = true
	} else {
		delete(s.open, id)
	}
}

// OpenIDs returns the ids of every open dropdown.
func (s *InteractionState) OpenIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.open))
	for id := range s.open {
		ids = append(ids, id)
	}
	return ids
}

func (s *InteractionState) closeAll() {
	clear(s.open)
}

// IsHovered reports whether id is under the pointer.
func (s *InteractionState) IsHovered(id string) bool {
	return s != nil && id != "" && s.Hovered == id
}

// IsFocused reports whether id holds keyboard focus.
func (s *InteractionState) IsFocused(id string) bool {
	return s != nil && id != "" && s.Focused == id
}

// IsActive reports whether id is being pressed.
func (s *InteractionState) IsActive(id string) bool {
	return s != nil && id != "" && s.Active == id
}

func (s *InteractionState) setHovered(id string) {
	if s.Hovered == id {
		return
	}
	if s.Hovered != "" {
		s.Widget(s.Hovered).Hover = false
	}
	s.Hovered = id
	if id != "" {
		s.Widget(id).Hover = true
	}
}

// SetFocus moves keyboard focus to id, or clears it when id is empty.
func (s *InteractionState) SetFocus(id string) {
	if s.Focused == id {
		return
	}
	if s.Focused != "" {
		s.Widget(s.Focused).Focus = false
	}
	s.Focused = id
	if id != "" {
		s.Widget(id).Focus = true
	}
}

func (s *InteractionState) setActive(id string) {
	if s.Active == id {
		return
	}
	if s.Active != "" {
		s.Widget(s.Active).Active = false
	}
	s.Active = id
	if id != "" {
		s.Widget(id).Active = true
	}
}
