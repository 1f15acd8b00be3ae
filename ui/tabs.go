package ui

// Tabs shows one page at a time under a strip of equally wide tab headers. Only the
// active page is laid out, hit-tested and rendered.
type Tabs struct {
	Labels       []string
	Pages        []*Node
	Active       int
	HeaderHeight float32
}

const defaultTabHeaderHeight = 36

func (t *Tabs) headerHeight() float32 {
	if t.HeaderHeight > 0 {
		return t.HeaderHeight
	}
	return defaultTabHeaderHeight
}

func (t *Tabs) activePage() *Node {
	if t.Active < 0 || t.Active >= len(t.Pages) {
		return nil
	}
	return t.Pages[t.Active]
}

func (t *Tabs) count() int {
	return max(len(t.Labels), len(t.Pages))
}

// Select makes page i active and reports whether anything changed.
func (t *Tabs) Select(i int) bool {
	if i < 0 || i >= t.count() || i == t.Active {
		return false
	}
	t.Active = i
	return true
}

func (t *Tabs) label(i int) string {
	if i < len(t.Labels) {
		return t.Labels[i]
	}
	return ""
}
