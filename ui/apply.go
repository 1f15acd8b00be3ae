package ui

// ApplyAction performs the built-in response to an action produced by
// HandleInteractions: toggling checkboxes, switches and tree items, selecting radio
// buttons, rows, list items, tree items, tabs and dropdown options, sorting grid
// columns and moving sliders. It reports
// whether the tree changed. Actions that name no built-in behavior, such as button
// clicks, are left to the application and report false.
func ApplyAction(root *Node, s string) bool {
	return applyAction(root, s, false)
}

// ApplyActionExtend is ApplyAction with the selection modifier held: grid row clicks
// add to or remove from a multiple selection instead of replacing it.
func ApplyActionExtend(root *Node, s string) bool {
	return applyAction(root, s, true)
}

func applyAction(root *Node, s string, extend bool) bool {
	a := ParseAction(s)
	n := FindByID(root, a.ID)
	if n == nil {
		return false
	}
	switch c := n.Content.(type) {
	case *Checkbox:
		if a.Verb == "" {
			c.Checked = !c.Checked
			return true
		}
	case *ToggleSwitch:
		if a.Verb == "" {
			c.On = !c.On
			return true
		}
	case *RadioButton:
		if a.Verb == "" {
			return selectRadio(root, n, c)
		}
	case *ListView:
		if i, ok := a.Index(); ok && a.Verb == VerbRow {
			return c.Select(i)
		}
	case *Slider:
		if f, ok := a.Value(); ok && a.Verb == VerbDrag {
			v := c.Min + f*(c.Max-c.Min)
			if v == c.Value {
				return false
			}
			c.Value = v
			return true
		}
	case *Dropdown:
		if i, ok := a.Index(); ok && a.Verb == VerbOption && i >= 0 && i < len(c.Options) && i != c.Selected {
			c.Selected = i
			return true
		}
	case *DataGrid:
		i, ok := a.Index()
		if !ok {
			return false
		}
		switch a.Verb {
		case VerbRow:
			return c.Select(i, extend)
		case VerbHeader:
			return c.ToggleSort(i)
		}
	case *TreeView:
		switch a.Verb {
		case VerbToggle:
			return c.Toggle(a.Param)
		case VerbSelect:
			if c.Selected == a.Param {
				return false
			}
			c.Selected = a.Param
			return true
		}
	case *Tabs:
		if i, ok := a.Index(); ok && a.Verb == VerbTab {
			return c.Select(i)
		}
	}
	return false
}
