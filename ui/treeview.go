package ui

// TreeItem is one node of a TreeView. An item with no children is a leaf unless
// Lazy is set, in which case it shows an expander so the application can load
// children on the toggle action.
type TreeItem struct {
	ID       string
	Label    string
	Icon     string
	Expanded bool
	Lazy     bool
	Children []*TreeItem
}

// Leaf reports whether the item has nothing to expand.
func (t *TreeItem) Leaf() bool {
	return len(t.Children) == 0 && !t.Lazy
}

// TreeView is a virtualized hierarchical list.
//
// The flattened row list is cached between frames. Toggle keeps it current; code
// that changes Roots in place, flips Expanded or edits Children directly must call
// Invalidate.
type TreeView struct {
	Roots     []*TreeItem
	RowHeight float32
	Indent    float32
	Selected  string

	visible   []VisibleItem
	cached    bool
	cacheHead *TreeItem
	cacheLen  int
}

// VisibleItem is a row of the flattened tree.
type VisibleItem struct {
	Item  *TreeItem
	Depth int
}

const (
	defaultIndent = 16
	expanderWidth = 16
)

func (t *TreeView) rowHeight() float32 {
	if t.RowHeight > 0 {
		return t.RowHeight
	}
	return defaultRowHeight
}

func (t *TreeView) indent() float32 {
	if t.Indent > 0 {
		return t.Indent
	}
	return defaultIndent
}

// Visible returns the flattened tree in pre-order, descending only into expanded
// items. The slice is shared with the view and must not be modified.
func (t *TreeView) Visible() []VisibleItem {
	if t.fresh() {
		return t.visible
	}
	out := make([]VisibleItem, 0, len(t.visible))
	var walk func(items []*TreeItem, depth int)
	walk = func(items []*TreeItem, depth int) {
		for _, it := range items {
			out = append(out, VisibleItem{Item: it, Depth: depth})
			if it.Expanded {
				walk(it.Children, depth+1)
			}
		}
	}
	walk(t.Roots, 0)

	t.visible, t.cached, t.cacheLen = out, true, len(t.Roots)
	t.cacheHead = nil
	if len(t.Roots) > 0 {
		t.cacheHead = t.Roots[0]
	}
	return out
}

// fresh reports whether the cached rows still describe Roots. Replacing or
// resizing Roots is detected; edits below the roots need Invalidate.
func (t *TreeView) fresh() bool {
	if !t.cached || len(t.Roots) != t.cacheLen {
		return false
	}
	return len(t.Roots) == 0 || t.Roots[0] == t.cacheHead
}

// Invalidate drops the cached rows so the next Visible flattens the tree again.
func (t *TreeView) Invalidate() {
	t.cached = false
}

// Find returns the item with the given id, searching collapsed branches too.
func (t *TreeView) Find(id string) *TreeItem {
	var find func(items []*TreeItem) *TreeItem
	find = func(items []*TreeItem) *TreeItem {
		for _, it := range items {
			if it.ID == id {
				return it
			}
			if found := find(it.Children); found != nil {
				return found
			}
		}
		return nil
	}
	return find(t.Roots)
}

// Toggle flips the expansion of the item with the given id. It reports false for
// unknown ids and leaves.
func (t *TreeView) Toggle(id string) bool {
	it := t.Find(id)
	if it == nil || it.Leaf() {
		return false
	}
	it.Expanded = !it.Expanded
	t.Invalidate()
	return true
}
