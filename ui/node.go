// Package ui is the widget tree and the three passes that run over it every frame:
// ComputeLayout assigns bounds, HitTest and HandleInteractions turn input into
// InteractionState updates and action strings, and RenderUI flattens the tree into a
// draw.List.
//
// A Node carries the fields every widget shares; its Content is one of a closed set of
// variants (*Container, *Label, *Button, ...). Each pass is a single type switch over
// Content, so adding a widget kind means adding a variant and a case in each pass.
package ui

import (
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
)

// Node is one widget in the tree.
type Node struct {
	// ID correlates the node with InteractionState and action strings. Nodes without
	// an ID are never hit and never focused.
	ID string

	// Bounds is written by ComputeLayout only: absolute window coordinates in layout
	// space, before any scroll offset.
	Bounds geom.Rect

	// Flex is the share of leftover main-axis space; 0 means fixed size.
	Flex float32
	Grid GridPlacement

	// Width and Height force a size on that axis when > 0.
	Width  float32
	Height float32

	Style  style.Style
	Hover  *style.Style
	Active *style.Style
	Focus  *style.Style

	// Classes are utility classes resolved by ApplyClasses.
	Classes string
	classes *classBase

	Content Content
}

// Content is the variant payload of a Node.
type Content interface {
	isContent()
}

// GridPlacement positions a node inside a grid container. Col and Row are zero-based;
// a node is explicitly placed only when both are set.
type GridPlacement struct {
	Col     *int
	Row     *int
	ColSpan int
	RowSpan int
}

// Explicit reports whether both coordinates are set.
func (g GridPlacement) Explicit() bool {
	return g.Col != nil && g.Row != nil
}

func (g GridPlacement) spans() (int, int) {
	return max(g.ColSpan, 1), max(g.RowSpan, 1)
}

// At returns an explicit placement.
func At(col, row int) GridPlacement {
	return GridPlacement{Col: &col, Row: &row, ColSpan: 1, RowSpan: 1}
}

// Span returns g with the given spans.
func (g GridPlacement) Span(cols, rows int) GridPlacement {
	g.ColSpan, g.RowSpan = cols, rows
	return g
}

// Direction selects how a container arranges its children.
type Direction int

const (
	DirColumn Direction = iota
	DirRow
	DirGrid
	// DirNone gives every child the container's content box.
	DirNone
)

func (d Direction) String() string {
	switch d {
	case DirColumn:
		return "column"
	case DirRow:
		return "row"
	case DirGrid:
		return "grid"
	case DirNone:
		return "none"
	}
	return "unknown"
}

// Align positions children on the cross axis.
type Align int

const (
	AlignStretch Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// Justify distributes free main-axis space when no child is flexible.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
)

// TrackKind is the sizing rule of a grid track.
type TrackKind int

const (
	TrackFr TrackKind = iota
	TrackPx
	TrackAuto
)

// Track is one grid column or row.
type Track struct {
	Kind  TrackKind
	Value float32
}

// Px is a fixed track.
func Px(v float32) Track { return Track{Kind: TrackPx, Value: v} }

// Fr is a fractional track sharing the space left after Px tracks.
func Fr(v float32) Track { return Track{Kind: TrackFr, Value: v} }

// Auto is a fractional track of weight 1.
func Auto() Track { return Track{Kind: TrackAuto} }

func (t Track) weight() float32 {
	switch t.Kind {
	case TrackFr:
		return t.Value
	case TrackAuto:
		return 1
	}
	return 0
}

// Layout describes how a container arranges its children.
type Layout struct {
	Direction Direction
	// Columns is the grid column count. 0 uses len(TemplateColumns), or 1.
	Columns         int
	Spacing         float32
	Padding         geom.Insets
	Align           Align
	Justify         Justify
	TemplateColumns []Track
	TemplateRows    []Track
	// Scrollable containers lay content out at its natural size and clip it to
	// their bounds; the scroll offset lives in InteractionState under the node ID.
	Scrollable bool
}

// Container owns children. Insertion order is paint order.
type Container struct {
	Children []*Node
	Layout   Layout

	// ContentSize is the laid-out extent including padding. It exceeds Bounds
	// when a scrollable container overflows.
	ContentSize geom.Size
}

// Label is static text with inline markup.
type Label struct {
	Text string
}

// Button is clickable text. A click emits Action, or the node ID when Action is empty.
type Button struct {
	Text     string
	Action   string
	Disabled bool
}

// TextInput shows Value, or Placeholder when Value is empty. Inputs with Rules reserve
// a line under the field for Error, which ValidateInputs fills in.
type TextInput struct {
	Value       string
	Placeholder string
	Rules       []ValidationRule
	Error       string
}

// Checkbox is a square toggle with an optional label to its right.
type Checkbox struct {
	Checked bool
	Label   string
	Size    float32
}

// Slider selects Value in [Min, Max] by dragging its thumb.
type Slider struct {
	Value       float32
	Min, Max    float32
	TrackHeight float32
	ThumbRadius float32
}

// Fraction is Value mapped to [0, 1].
func (s *Slider) Fraction() float32 {
	return fraction(s.Value, s.Min, s.Max)
}

// Dropdown is a trigger showing the selected option; its popup is open while
// InteractionState.IsOpen(id) holds.
type Dropdown struct {
	Options []string
	// Selected is the chosen option index, or -1 to show Placeholder.
	Selected     int
	Placeholder  string
	OptionHeight float32
}

// Image draws a bitmap loaded by the submitter from Source.
type Image struct {
	Source string
}

// Divider is a horizontal rule, or vertical when Vertical is set.
type Divider struct {
	Thickness float32
	Vertical  bool
	Color     *style.Color
}

// Spacer takes Size on both axes and paints nothing.
type Spacer struct {
	Size float32
}

func (*Container) isContent() {}
func (*Label) isContent()     {}
func (*Button) isContent()    {}
func (*TextInput) isContent() {}
func (*Checkbox) isContent()  {}
func (*Slider) isContent()    {}
func (*Dropdown) isContent()  {}
func (*Image) isContent()     {}
func (*DataGrid) isContent()  {}
func (*TreeView) isContent()  {}
func (*Tabs) isContent()      {}
func (*Divider) isContent()   {}
func (*Spacer) isContent()    {}

// Row returns a row container.
func Row(spacing float32, children ...*Node) *Node {
	return &Node{Content: &Container{Children: children, Layout: Layout{Direction: DirRow, Spacing: spacing}}}
}

// Column returns a column container.
func Column(spacing float32, children ...*Node) *Node {
	return &Node{Content: &Container{Children: children, Layout: Layout{Direction: DirColumn, Spacing: spacing}}}
}

// GridOf returns a grid container with the given column count.
func GridOf(columns int, spacing float32, children ...*Node) *Node {
	return &Node{Content: &Container{Children: children, Layout: Layout{Direction: DirGrid, Columns: columns, Spacing: spacing}}}
}

// NewLabel returns a label node.
func NewLabel(text string) *Node {
	return &Node{Content: &Label{Text: text}}
}

// NewButton returns a button node with the given id.
func NewButton(id, text string) *Node {
	return &Node{ID: id, Content: &Button{Text: text}}
}

// Container returns the node's container payload, or nil.
func (n *Node) Container() *Container {
	c, _ := n.Content.(*Container)
	return c
}

// Kind names the node's variant.
func (n *Node) Kind() string {
	switch n.Content.(type) {
	case *Container:
		return "container"
	case *Label:
		return "label"
	case *Button:
		return "button"
	case *TextInput:
		return "text_input"
	case *Checkbox:
		return "checkbox"
	case *Slider:
		return "slider"
	case *Dropdown:
		return "dropdown"
	case *Image:
		return "image"
	case *DataGrid:
		return "datagrid"
	case *TreeView:
		return "tree"
	case *Tabs:
		return "tabs"
	case *Divider:
		return "divider"
	case *Spacer:
		return "spacer"
	case *Icon:
		return "icon"
	case *ProgressBar:
		return "progress"
	case *RadioButton:
		return "radio"
	case *ToggleSwitch:
		return "toggle"
	case *ListView:
		return "list"
	case *KpiCard:
		return "kpi"
	case nil:
		return "empty"
	}
	return "unknown"
}

// Children returns every child node, including inactive tab pages.
func (n *Node) Children() []*Node {
	switch c := n.Content.(type) {
	case *Container:
		return c.Children
	case *Tabs:
		return c.Pages
	}
	return nil
}

// liveChildren returns the children that take part in layout, hit-testing and render.
func (n *Node) liveChildren() []*Node {
	switch c := n.Content.(type) {
	case *Container:
		return c.Children
	case *Tabs:
		if p := c.activePage(); p != nil {
			return []*Node{p}
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first in paint order, including inactive
// tab pages. Returning false from fn skips the node's subtree.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// FindByID returns the first node with the given id.
func FindByID(root *Node, id string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}
