package facet

import (
	"fmt"

	"github.com/agiangrant/facet/draw"
	"github.com/agiangrant/facet/gpu"
	"github.com/agiangrant/facet/raster"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/text"
	"github.com/agiangrant/facet/tw"
	"github.com/agiangrant/facet/ui"
)

// Pipeline runs one widget tree frame by frame. Each Frame resolves utility classes
// for the current width, lays the tree out, feeds the events through hit-testing,
// applies built-in actions, flattens the tree and hands the draw list to the
// Submitter.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	Root      *ui.Node
	State     *ui.InteractionState
	Renderer  *ui.Renderer
	Submitter gpu.Submitter

	// OnAction, when set, receives every action in the order events produced them,
	// after the built-in response has been applied.
	OnAction func(action string, changed bool)

	measurer    text.Measurer
	breakpoints tw.BreakpointConfig
	list        draw.List
	width       float32
	height      float32
	frame       uint64
}

// NewPipeline validates root and builds a pipeline for it. m may be nil, in which
// case text is measured by estimate.
func NewPipeline(cfg Config, root *ui.Node, m text.Measurer, sub gpu.Submitter) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: nil submitter", ErrInvalidConfig)
	}
	theme, err := cfg.GlobalStyle()
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = text.EstimateMeasurer{}
	}
	r := ui.NewRenderer(m, theme)
	r.Overscan = cfg.Overscan

	p := &Pipeline{
		State:       ui.NewInteractionState(),
		Renderer:    r,
		Submitter:   sub,
		measurer:    m,
		breakpoints: cfg.Breakpoints,
		width:       cfg.Width,
		height:      cfg.Height,
	}
	if err := p.SetRoot(root); err != nil {
		return nil, err
	}
	return p, nil
}

// SetRoot swaps in a new tree, keeping interaction state so scroll offsets and focus
// survive a reload of the same document.
func (p *Pipeline) SetRoot(root *ui.Node) error {
	if root == nil {
		return fmt.Errorf("failed to set root: nil tree")
	}
	if err := ui.Validate(root); err != nil {
		return fmt.Errorf("failed to set root: %w", err)
	}
	p.Root = root
	return nil
}

// Resize changes the window size used by the next Frame.
func (p *Pipeline) Resize(width, height float32) {
	p.width, p.height = max(width, 0), max(height, 0)
}

// Size returns the current window size.
func (p *Pipeline) Size() (width, height float32) {
	return p.width, p.height
}

// FrameCount returns the number of frames submitted so far.
func (p *Pipeline) FrameCount() uint64 {
	return p.frame
}

// List returns the draw list of the last frame. It is overwritten by the next Frame.
func (p *Pipeline) List() *draw.List {
	return &p.list
}

// Layout resolves classes and computes bounds without rendering.
func (p *Pipeline) Layout() {
	ui.ApplyClassesWith(p.Root, p.width, tw.CurrentTheme(), p.breakpoints)
	ui.ComputeLayout(p.Root, 0, 0, p.width, p.height, p.measurer)
}

// Frame processes events in order, renders and submits one frame. It returns the
// actions the events produced.
func (p *Pipeline) Frame(events ...ui.Event) ([]string, error) {
	p.Layout()

	var actions []string
	for _, ev := range events {
		produced := ui.HandleInteractions(p.Root, p.State, ev)
		changed := false
		for _, a := range produced {
			var c bool
			if ev.Shift {
				c = ui.ApplyActionExtend(p.Root, a)
			} else {
				c = ui.ApplyAction(p.Root, a)
			}
			if p.OnAction != nil {
				p.OnAction(a, c)
			}
			changed = changed || c
		}
		if changed {
			// Later events in the batch must hit-test against the updated tree.
			p.Layout()
		}
		actions = append(actions, produced...)
	}

	p.Renderer.RenderInto(&p.list, p.Root, p.State)
	if err := p.Submitter.Submit(&p.list); err != nil {
		return actions, fmt.Errorf("failed to submit frame %d: %w", p.frame, err)
	}
	p.frame++
	logger.Debugf("frame %d: %d events, %d actions, %d instances", p.frame, len(events), len(actions), p.list.Len())
	return actions, nil
}

// OpenSubmitter returns the submitter cfg selects. The native backend falls back to a
// raster canvas of the configured size when the library cannot be loaded.
func OpenSubmitter(cfg Config) gpu.Submitter {
	if cfg.Renderer.Backend == BackendRaster {
		return newCanvas(cfg)
	}
	s, err := gpu.OpenNative(cfg.Renderer.Library)
	if err != nil {
		logger.Warnf("native renderer unavailable, using raster: %v", err)
		return newCanvas(cfg)
	}
	return s
}

func newCanvas(cfg Config) *raster.Canvas {
	c := raster.New(int(cfg.Width), int(cfg.Height))
	if theme, err := cfg.GlobalStyle(); err == nil {
		c.Clear = theme.Surface
	} else {
		c.Clear = style.White
	}
	c.Fonts = text.DefaultRegistry()
	return c
}
