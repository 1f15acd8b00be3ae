package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/facet"
	"github.com/agiangrant/facet/decl"
	"github.com/agiangrant/facet/gpu"
	"github.com/agiangrant/facet/text"
	"github.com/agiangrant/facet/ui"
)

// Layout implements the 'facet layout' command: it lays a document out at the
// configured window size and prints every node with its bounds.
func Layout(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	common := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("layout takes exactly one document, got %d", fs.NArg())
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	root, err := decl.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	reg := text.DefaultRegistry()
	m := text.NewCachedMeasurer(text.NewFaceMeasurer(reg), reg)
	p, err := facet.NewPipeline(cfg, root, m, &gpu.Recorder{})
	if err != nil {
		return err
	}
	p.Layout()
	return DumpTree(w, root)
}

// treeStyles renders one line of a tree dump.
type treeStyles struct {
	guide  lipgloss.Style
	kind   lipgloss.Style
	id     lipgloss.Style
	bounds lipgloss.Style
}

func newTreeStyles(w io.Writer) treeStyles {
	r := lipgloss.NewRenderer(w)
	return treeStyles{
		guide:  r.NewStyle().Foreground(lipgloss.Color("240")),
		kind:   r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		id:     r.NewStyle().Foreground(lipgloss.Color("214")),
		bounds: r.NewStyle().Faint(true),
	}
}

// DumpTree writes root and its live descendants as an indented tree:
//
//	container  0,0 800×600
//	├── label  16,16 120×20
//	└── button #save  16,44 80×32
func DumpTree(w io.Writer, root *ui.Node) error {
	st := newTreeStyles(w)
	var b strings.Builder
	var walk func(n *ui.Node, prefix string, last, top bool)
	walk = func(n *ui.Node, prefix string, last, top bool) {
		branch, next := "", ""
		if !top {
			branch, next = "├── ", "│   "
			if last {
				branch, next = "└── ", "    "
			}
		}
		b.WriteString(st.guide.Render(prefix + branch))
		b.WriteString(st.kind.Render(n.Kind()))
		if n.ID != "" {
			b.WriteString(" " + st.id.Render("#"+n.ID))
		}
		r := n.Bounds
		b.WriteString("  " + st.bounds.Render(fmt.Sprintf("%g,%g %g×%g", r.X, r.Y, r.W, r.H)))
		b.WriteByte('\n')

		children := liveChildren(n)
		for i, c := range children {
			walk(c, prefix+next, i == len(children)-1, false)
		}
	}
	walk(root, "", true, true)
	_, err := io.WriteString(w, b.String())
	return err
}

// liveChildren skips inactive tab pages, which are never laid out.
func liveChildren(n *ui.Node) []*ui.Node {
	if t, ok := n.Content.(*ui.Tabs); ok {
		if t.Active >= 0 && t.Active < len(t.Pages) {
			return []*ui.Node{t.Pages[t.Active]}
		}
		return nil
	}
	return n.Children()
}
