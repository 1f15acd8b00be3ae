package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agiangrant/facet/geom"
)

// LayoutError reports an invalid layout configuration. ComputeLayout panics with a
// *LayoutError; Validate returns the same error without laying anything out.
type LayoutError struct {
	// Path is the chain of node labels from the root to the offending node.
	Path   []string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("ui: invalid layout at %s: %s", strings.Join(e.Path, " > "), e.Reason)
}

// ErrInvalidLayout matches every *LayoutError with errors.Is.
var ErrInvalidLayout = errors.New("ui: invalid layout")

// Is reports whether target is ErrInvalidLayout.
func (e *LayoutError) Is(target error) bool {
	return target == ErrInvalidLayout
}

// Validate checks the whole tree for configuration errors ComputeLayout would panic on.
func Validate(root *Node) error {
	return validate(root, nil)
}

// ValidateArea checks the rectangle a tree is laid out into: the origin must be
// finite and the size finite and >= 0.
func ValidateArea(root *Node, x, y, w, h float32) error {
	var reason string
	switch {
	case !geom.Finite(x) || !geom.Finite(y):
		reason = fmt.Sprintf("origin (%v, %v) must be finite", x, y)
	case invalid(w):
		reason = fmt.Sprintf("available width %v must be a finite value >= 0", w)
	case invalid(h):
		reason = fmt.Sprintf("available height %v must be a finite value >= 0", h)
	default:
		return nil
	}
	label := "root"
	if root != nil {
		label = nodeLabel(root)
	}
	return &LayoutError{Path: []string{label}, Reason: reason}
}

func validate(n *Node, path []string) error {
	if n == nil {
		return nil
	}
	path = append(path, nodeLabel(n))
	if reason := checkNode(n); reason != "" {
		return &LayoutError{Path: append([]string(nil), path...), Reason: reason}
	}
	for _, c := range n.Children() {
		if err := validate(c, path); err != nil {
			return err
		}
	}
	return nil
}

func nodeLabel(n *Node) string {
	if n.ID != "" {
		return n.Kind() + "#" + n.ID
	}
	return n.Kind()
}

func invalid(v float32) bool {
	return v < 0 || !geom.Finite(v)
}

// checkNode returns a non-empty reason when n's own configuration is invalid.
func checkNode(n *Node) string {
	switch {
	case invalid(n.Flex):
		return fmt.Sprintf("flex %v must be a finite value >= 0", n.Flex)
	case invalid(n.Width):
		return fmt.Sprintf("width %v must be a finite value >= 0", n.Width)
	case invalid(n.Height):
		return fmt.Sprintf("height %v must be a finite value >= 0", n.Height)
	case n.Grid.ColSpan < 0 || n.Grid.RowSpan < 0:
		return "grid span must be >= 0"
	case n.Grid.Col != nil && *n.Grid.Col < 0, n.Grid.Row != nil && *n.Grid.Row < 0:
		return "grid position must be >= 0"
	}

	switch c := n.Content.(type) {
	case *Container:
		l := c.Layout
		if invalid(l.Spacing) {
			return fmt.Sprintf("spacing %v must be a finite value >= 0", l.Spacing)
		}
		p := l.Padding
		if invalid(p.Top) || invalid(p.Right) || invalid(p.Bottom) || invalid(p.Left) {
			return "padding must be finite values >= 0"
		}
		if l.Columns < 0 {
			return fmt.Sprintf("grid columns %d must be >= 0", l.Columns)
		}
		if l.Direction == DirGrid && l.Columns > 0 && len(l.TemplateColumns) > 0 && l.Columns != len(l.TemplateColumns) {
			return fmt.Sprintf("grid columns %d disagree with %d template columns", l.Columns, len(l.TemplateColumns))
		}
		if reason := checkTracks(l.TemplateColumns); reason != "" {
			return reason
		}
		if reason := checkTracks(l.TemplateRows); reason != "" {
			return reason
		}
	case *DataGrid:
		if invalid(c.RowHeight) || invalid(c.HeaderHeight) {
			return "datagrid row and header heights must be finite values >= 0"
		}
		for _, col := range c.Columns {
			if invalid(col.Width.Value) || invalid(col.MinWidth) {
				return fmt.Sprintf("datagrid column %q width must be a finite value >= 0", col.Title)
			}
		}
	case *TreeView:
		if invalid(c.RowHeight) || invalid(c.Indent) {
			return "tree row height and indent must be finite values >= 0"
		}
	case *Slider:
		if !geom.Finite(c.Min) || !geom.Finite(c.Max) || !geom.Finite(c.Value) {
			return "slider range must be finite"
		}
		if invalid(c.TrackHeight) || invalid(c.ThumbRadius) {
			return "slider track height and thumb radius must be finite values >= 0"
		}
	case *Checkbox:
		if invalid(c.Size) {
			return "checkbox size must be a finite value >= 0"
		}
	case *Spacer:
		if invalid(c.Size) {
			return "spacer size must be a finite value >= 0"
		}
	case *Divider:
		if invalid(c.Thickness) {
			return "divider thickness must be a finite value >= 0"
		}
	case *Icon:
		if invalid(c.Size) {
			return "icon size must be a finite value >= 0"
		}
	case *ProgressBar:
		if !geom.Finite(c.Min) || !geom.Finite(c.Max) || !geom.Finite(c.Value) {
			return "progress range must be finite"
		}
	case *RadioButton:
		if invalid(c.Size) {
			return "radio size must be a finite value >= 0"
		}
	case *ToggleSwitch:
		if invalid(c.Width) {
			return "toggle width must be a finite value >= 0"
		}
	case *ListView:
		if invalid(c.ItemHeight) {
			return "list item height must be a finite value >= 0"
		}
	case *TextInput:
		for _, r := range c.Rules {
			if r.Kind == RulePattern {
				if _, err := compiled(r.Pattern); err != nil {
					return fmt.Sprintf("input pattern %q: %v", r.Pattern, err)
				}
			}
			if (r.Kind == RuleMinLength || r.Kind == RuleMaxLength) && r.Length < 0 {
				return fmt.Sprintf("input %s %d must be >= 0", r.Kind, r.Length)
			}
		}
	}
	return ""
}

func checkTracks(tracks []Track) string {
	for _, t := range tracks {
		if invalid(t.Value) {
			return fmt.Sprintf("grid track value %v must be a finite value >= 0", t.Value)
		}
	}
	return ""
}
