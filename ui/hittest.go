package ui

import (
	"slices"

	"github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/geom"
)

// ============================================================================
// Screen Geometry
// ============================================================================
//
// Bounds are in layout space. A node's screen rectangle is its Bounds shifted
// by the scroll offsets of every scrollable ancestor, and it is only visible
// inside the intersection of those ancestors' bounds (its clip).

// visit walks the live tree in paint order with screen rectangles. Returning false
// from fn skips the node's subtree.
func visit(n *Node, s *InteractionState, off geom.Vec2, clip geom.Rect, fn func(n *Node, screen, clip geom.Rect) bool) {
	screen := n.Bounds.Translate(off)
	if !fn(n, screen, clip) {
		return
	}
	childOff, childClip := childSpace(n, s, off, screen, clip)
	for _, c := range n.liveChildren() {
		visit(c, s, childOff, childClip, fn)
	}
}

// childSpace returns the offset and clip that apply to n's children.
func childSpace(n *Node, s *InteractionState, off geom.Vec2, screen, clip geom.Rect) (geom.Vec2, geom.Rect) {
	if c, ok := n.Content.(*Container); ok && c.Layout.Scrollable {
		return off.Sub(s.Scroll(n.ID)), clip.Intersect(screen)
	}
	return off, clip
}

// ScreenRect returns the on-screen rectangle of the node with the given id and the
// clip it is drawn under.
func ScreenRect(root *Node, s *InteractionState, id string) (screen, clip geom.Rect, ok bool) {
	if root == nil {
		return
	}
	visit(root, s, geom.Vec2{}, draw.NoClip, func(n *Node, sr, cr geom.Rect) bool {
		if ok {
			return false
		}
		if n.ID == id {
			screen, clip, ok = sr, cr, true
			return false
		}
		return true
	})
	return screen, clip, ok
}

// scrollExtent returns the viewport and content sizes of a node that scrolls.
func scrollExtent(n *Node) (viewport, content geom.Size, ok bool) {
	switch c := n.Content.(type) {
	case *Container:
		if !c.Layout.Scrollable {
			return
		}
		return n.Bounds.Size(), c.ContentSize, true
	case *DataGrid:
		src := c.view()
		viewport = geom.Size{W: n.Bounds.W, H: max(n.Bounds.H-c.headerHeight(), 0)}
		return viewport, geom.Size{W: n.Bounds.W, H: float32(c.rowCount(src)) * c.rowHeight()}, true
	case *TreeView:
		return n.Bounds.Size(), geom.Size{W: n.Bounds.W, H: float32(len(c.Visible())) * c.rowHeight()}, true
	case *ListView:
		return n.Bounds.Size(), geom.Size{W: n.Bounds.W, H: float32(len(c.Items)) * c.itemHeight()}, true
	}
	return
}

// MaxScroll is the largest scroll offset n accepts on each axis.
func MaxScroll(n *Node) geom.Vec2 {
	viewport, content, ok := scrollExtent(n)
	if !ok {
		return geom.Vec2{}
	}
	return geom.V(max(content.W-viewport.W, 0), max(content.H-viewport.H, 0))
}

func clampScroll(n *Node, v geom.Vec2) geom.Vec2 {
	limit := MaxScroll(n)
	return geom.V(geom.Clamp(v.X, 0, limit.X), geom.Clamp(v.Y, 0, limit.Y))
}

// viewportRect is the scrolling part of n on screen.
func viewportRect(n *Node, screen geom.Rect) geom.Rect {
	if g, ok := n.Content.(*DataGrid); ok {
		hh := min(g.headerHeight(), screen.H)
		return geom.R(screen.X, screen.Y+hh, screen.W, screen.H-hh)
	}
	return screen
}

const (
	scrollbarWidth    = 6
	scrollbarMargin   = 2
	scrollbarMinThumb = 20
)

// scrollbar returns the track and thumb of n's vertical scrollbar. ok is false when
// the content fits.
func scrollbar(n *Node, screen geom.Rect, scroll geom.Vec2) (track, thumb geom.Rect, ok bool) {
	viewport, content, ok := scrollExtent(n)
	limit := content.H - viewport.H
	if !ok || limit <= 0 || n.ID == "" {
		return track, thumb, false
	}
	vp := viewportRect(n, screen)
	track = geom.R(vp.Right()-scrollbarWidth-scrollbarMargin, vp.Y, scrollbarWidth, vp.H)
	h := min(max(vp.H*viewport.H/content.H, scrollbarMinThumb), vp.H)
	y := vp.Y + geom.Clamp(scroll.Y/limit, 0, 1)*(vp.H-h)
	thumb = geom.R(track.X, y, scrollbarWidth, h)
	return track, thumb, true
}

// ============================================================================
// Hit Testing
// ============================================================================

// HitTest returns the action string of the topmost interactive widget at screen
// point p. Open dropdown popups are tested before the tree; the tree is tested in
// reverse paint order, honoring scroll offsets and scroll clipping. Nodes without
// an ID are transparent.
func HitTest(root *Node, s *InteractionState, p geom.Vec2) (string, bool) {
	hit, n := hitTest(root, s, p)
	return hit, n != nil
}

// hitTest returns the action string at p and the node that produced it.
func hitTest(root *Node, s *InteractionState, p geom.Vec2) (string, *Node) {
	if root == nil {
		return "", nil
	}
	if hit, n := hitOverlay(root, s, p); n != nil {
		return hit, n
	}
	return hitNode(root, s, p, geom.Vec2{}, draw.NoClip)
}

// openDropdown is a dropdown whose popup is showing.
type openDropdown struct {
	n      *Node
	dd     *Dropdown
	screen geom.Rect
}

func openDropdowns(root *Node, s *InteractionState) []openDropdown {
	if s == nil || len(s.open) == 0 {
		return nil
	}
	var out []openDropdown
	visit(root, s, geom.Vec2{}, draw.NoClip, func(n *Node, screen, _ geom.Rect) bool {
		if dd, ok := n.Content.(*Dropdown); ok && s.IsOpen(n.ID) {
			out = append(out, openDropdown{n, dd, screen})
		}
		return true
	})
	return out
}

func (o openDropdown) optionHeight() float32 {
	if o.dd.OptionHeight > 0 {
		return o.dd.OptionHeight
	}
	return max(o.screen.H, controlHeight)
}

func (o openDropdown) popup() geom.Rect {
	return geom.R(o.screen.X, o.screen.Bottom(), o.screen.W, o.optionHeight()*float32(len(o.dd.Options)))
}

// optionAt returns the option index under p, or -1.
func (o openDropdown) optionAt(p geom.Vec2) int {
	popup := o.popup()
	if !popup.Contains(p) {
		return -1
	}
	return min(int((p.Y-popup.Y)/o.optionHeight()), len(o.dd.Options)-1)
}

func hitOverlay(root *Node, s *InteractionState, p geom.Vec2) (string, *Node) {
	open := openDropdowns(root, s)
	for _, o := range slices.Backward(open) {
		if i := o.optionAt(p); i >= 0 {
			return action(o.n.ID, VerbOption, i), o.n
		}
	}
	return "", nil
}

func hitNode(n *Node, s *InteractionState, p geom.Vec2, off geom.Vec2, clip geom.Rect) (string, *Node) {
	screen := n.Bounds.Translate(off)
	childOff, childClip := childSpace(n, s, off, screen, clip)
	live := n.liveChildren()
	for i := len(live) - 1; i >= 0; i-- {
		if hit, node := hitNode(live[i], s, p, childOff, childClip); node != nil {
			return hit, node
		}
	}
	if n.ID == "" || !clip.Contains(p) || !screen.Contains(p) {
		return "", nil
	}
	if hit, ok := hitWidget(n, s, screen, p); ok {
		return hit, n
	}
	return "", nil
}

func hitWidget(n *Node, s *InteractionState, screen geom.Rect, p geom.Vec2) (string, bool) {
	switch c := n.Content.(type) {
	case *Button:
		if c.Disabled {
			return "", false
		}
		if c.Action != "" {
			return c.Action, true
		}
	case *DataGrid:
		hh := c.headerHeight()
		if p.Y < screen.Y+hh {
			x := screen.X
			for i, w := range c.ColumnWidths {
				if p.X >= x && p.X < x+w {
					return action(n.ID, VerbHeader, i), true
				}
				x += w
			}
			return n.ID, true
		}
		src := c.view()
		row := int(geom.Floor((p.Y - screen.Y - hh + s.Scroll(n.ID).Y) / c.rowHeight()))
		if row >= 0 && row < c.rowCount(src) {
			return action(n.ID, VerbRow, row), true
		}
	case *TreeView:
		visible := c.Visible()
		i := int(geom.Floor((p.Y - screen.Y + s.Scroll(n.ID).Y) / c.rowHeight()))
		if i < 0 || i >= len(visible) {
			break
		}
		v := visible[i]
		ex := screen.X + float32(v.Depth)*c.indent()
		if !v.Item.Leaf() && p.X >= ex && p.X < ex+expanderWidth {
			return Action{ID: n.ID, Verb: VerbToggle, Param: v.Item.ID}.String(), true
		}
		return Action{ID: n.ID, Verb: VerbSelect, Param: v.Item.ID}.String(), true
	case *ListView:
		row := int(geom.Floor((p.Y - screen.Y + s.Scroll(n.ID).Y) / c.itemHeight()))
		if row >= 0 && row < len(c.Items) {
			return action(n.ID, VerbRow, row), true
		}
	case *Tabs:
		if count := c.count(); count > 0 && p.Y < screen.Y+c.headerHeight() {
			i := int((p.X - screen.X) / (screen.W / float32(count)))
			return action(n.ID, VerbTab, geom.Clamp(i, 0, count-1)), true
		}
	}
	return n.ID, true
}
