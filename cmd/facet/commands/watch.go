package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agiangrant/facet"
	"github.com/agiangrant/facet/decl"
)

// Watch implements the 'facet watch' command: it renders a document to a PNG and
// renders it again whenever the file changes. A document that fails to load renders
// as an error panel until it is fixed.
func Watch(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	common := addCommonFlags(fs)
	out := fs.String("out", "", "Output PNG (default: <name>.png)")
	interval := fs.Duration("interval", 500*time.Millisecond, "Poll interval")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("watch takes exactly one document, got %d", fs.NArg())
	}
	doc := fs.Arg(0)
	if *out == "" {
		*out = OutputName(doc)
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(w, "Watching %s → %s\n", doc, *out)
	fmt.Fprintln(w, "Press Ctrl+C to stop")
	return NewWatcher(cfg, doc, *out, w).Run(ctx, *interval)
}

// Watcher re-renders one document when its modification time changes. Interaction
// state survives reloads.
type Watcher struct {
	cfg     facet.Config
	doc     string
	out     string
	log     io.Writer
	lastMod time.Time
	p       *facet.Pipeline
	save    func() error
}

// NewWatcher returns a watcher that writes progress lines to log.
func NewWatcher(cfg facet.Config, doc, out string, log io.Writer) *Watcher {
	return &Watcher{cfg: cfg, doc: doc, out: out, log: log}
}

// Run polls until ctx is done. The first poll always renders.
func (wt *Watcher) Run(ctx context.Context, interval time.Duration) error {
	if _, err := wt.Poll(); err != nil {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := wt.Poll(); err != nil {
				return err
			}
		}
	}
}

// Poll renders when the document changed since the last render and reports whether
// it did. Document errors are shown in the output, not returned; the error is for
// failures to render or save.
func (wt *Watcher) Poll() (bool, error) {
	info, err := os.Stat(wt.doc)
	if err == nil {
		if wt.p != nil && info.ModTime().Equal(wt.lastMod) {
			return false, nil
		}
		wt.lastMod = info.ModTime()
	} else if wt.p != nil && wt.lastMod.IsZero() {
		// Still missing; the placeholder is already on screen.
		return false, nil
	} else {
		wt.lastMod = time.Time{}
	}

	root, loadErr := decl.LoadOrPlaceholder(wt.doc)
	if wt.p == nil {
		canvas, m, err := newRasterPipeline(wt.cfg)
		if err != nil {
			return false, err
		}
		p, err := facet.NewPipeline(wt.cfg, root, m, canvas)
		if err != nil {
			return false, err
		}
		wt.p = p
		wt.save = func() error { return canvas.Save(wt.out) }
	} else if err := wt.p.SetRoot(root); err != nil {
		return false, err
	}

	if _, err := wt.p.Frame(); err != nil {
		return false, err
	}
	if err := wt.save(); err != nil {
		return false, err
	}
	if loadErr != nil {
		fmt.Fprintf(wt.log, "✗ %v\n", loadErr)
	} else {
		fmt.Fprintf(wt.log, "✓ %s rendered\n", wt.doc)
	}
	return true, nil
}
