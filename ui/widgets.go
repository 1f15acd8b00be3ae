package ui

import (
	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
)

// Icon draws a named bitmap at a square size. Name is resolved by the submitter the
// same way as an Image source.
type Icon struct {
	Name string
	Size float32
}

// ProgressBar fills a track to Value in [Min, Max]. It is display-only.
type ProgressBar struct {
	Value    float32
	Min, Max float32
}

// Fraction is Value mapped to [0, 1].
func (p *ProgressBar) Fraction() float32 {
	return fraction(p.Value, p.Min, p.Max)
}

// RadioButton is one choice of a group. Clicking it selects it and clears every other
// radio button of the same Group in the tree.
type RadioButton struct {
	Group    string
	Value    string
	Label    string
	Selected bool
	Size     float32
}

// ToggleSwitch is an on/off pill with a sliding thumb.
type ToggleSwitch struct {
	On    bool
	Label string
	// Width of the track; the height is half of it.
	Width float32
}

// ListView is a virtualized single-selection list of text rows. Rows are fixed
// height, so only the rows in the viewport plus overscan are flattened.
type ListView struct {
	Items []string
	// Selected is the selected row, or -1.
	Selected   int
	ItemHeight float32
}

// NewListView returns a list with nothing selected.
func NewListView(items []string) *ListView {
	return &ListView{Items: items, Selected: -1}
}

// Select makes row i the selection and reports whether it changed.
func (l *ListView) Select(i int) bool {
	if i < 0 || i >= len(l.Items) || i == l.Selected {
		return false
	}
	l.Selected = i
	return true
}

func (l *ListView) itemHeight() float32 {
	if l.ItemHeight > 0 {
		return l.ItemHeight
	}
	return defaultRowHeight
}

// Trend is the direction a KPI moved.
type Trend int

const (
	TrendNeutral Trend = iota
	TrendUp
	TrendDown
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	}
	return "neutral"
}

// KpiTrend annotates a KPI value, e.g. {TrendUp, "+12%"}.
type KpiTrend struct {
	Direction Trend
	Text      string
}

// KpiCard shows one key metric: a title, a large value and an optional trend line.
type KpiCard struct {
	Title string
	Value string
	Trend *KpiTrend
}

func (*Icon) isContent()         {}
func (*ProgressBar) isContent()  {}
func (*RadioButton) isContent()  {}
func (*ToggleSwitch) isContent() {}
func (*ListView) isContent()     {}
func (*KpiCard) isContent()      {}

const (
	defaultIconSize    = 24
	progressWidth      = 200
	progressHeight     = 8
	defaultRadio       = 20
	defaultSwitchWidth = 44
	kpiPadding         = 16
	kpiGap             = 4
	kpiValueSize       = 24
	listWidth          = 200
	switchLabelGap     = checkboxLabelGap
	radioDotScale      = 0.45
	switchThumbInset   = 3
)

var (
	trendUpColor      = style.RGBA(0.2, 0.8, 0.2, 1)
	trendDownColor    = style.RGBA(0.8, 0.2, 0.2, 1)
	trendNeutralColor = style.RGBA(0.6, 0.6, 0.6, 1)
)

func (t Trend) color() style.Color {
	switch t {
	case TrendUp:
		return trendUpColor
	case TrendDown:
		return trendDownColor
	}
	return trendNeutralColor
}

func (t Trend) arrow() string {
	switch t {
	case TrendUp:
		return "▲ "
	case TrendDown:
		return "▼ "
	}
	return ""
}

func fraction(v, lo, hi float32) float32 {
	if hi <= lo {
		return 0
	}
	return geom.Clamp((v-lo)/(hi-lo), 0, 1)
}

func iconSize(i *Icon) float32 {
	if i.Size > 0 {
		return i.Size
	}
	return defaultIconSize
}

func radioSize(r *RadioButton) float32 {
	if r.Size > 0 {
		return r.Size
	}
	return defaultRadio
}

func switchWidth(t *ToggleSwitch) float32 {
	if t.Width > 0 {
		return t.Width
	}
	return defaultSwitchWidth
}

// selectRadio selects n's radio button and clears the rest of its group.
func selectRadio(root, n *Node, r *RadioButton) bool {
	if r.Selected {
		return false
	}
	Walk(root, func(o *Node) bool {
		if other, ok := o.Content.(*RadioButton); ok && other.Group == r.Group {
			other.Selected = o == n
		}
		return true
	})
	return true
}

// RadioValue returns the Value of the selected radio button in group, if any.
func RadioValue(root *Node, group string) (string, bool) {
	var value string
	var found bool
	Walk(root, func(n *Node) bool {
		if found {
			return false
		}
		if r, ok := n.Content.(*RadioButton); ok && r.Group == group && r.Selected {
			value, found = r.Value, true
		}
		return true
	})
	return value, found
}
