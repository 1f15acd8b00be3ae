package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/facet"
	"github.com/agiangrant/facet/decl"
	"github.com/agiangrant/facet/raster"
	"github.com/agiangrant/facet/text"
	"github.com/agiangrant/facet/ui"
)

// Render implements the 'facet render' command. Documents are rasterized in parallel,
// each to <out>/<name>.png.
func Render(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	common := addCommonFlags(fs)
	outDir := fs.String("out", ".", "Output directory")
	jobs := fs.Int("j", runtime.GOMAXPROCS(0), "Maximum documents rendered at once")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("render needs at least one document")
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*jobs, 1))
	for _, doc := range fs.Args() {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			out := filepath.Join(*outDir, OutputName(doc))
			if err := RenderFile(cfg, doc, out); err != nil {
				return err
			}
			mu.Lock()
			fmt.Fprintf(w, "✓ %s → %s\n", doc, out)
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// OutputName maps a document path to its PNG file name.
func OutputName(doc string) string {
	base := filepath.Base(doc)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// RenderFile lays out and rasterizes one document at the configured size and saves it
// to out. Each call owns its fonts, canvas and pipeline, so calls may run in parallel.
func RenderFile(cfg facet.Config, doc, out string) error {
	root, err := decl.Load(doc)
	if err != nil {
		return err
	}
	return renderTree(cfg, root, out)
}

func newRasterPipeline(cfg facet.Config) (*raster.Canvas, text.Measurer, error) {
	theme, err := cfg.GlobalStyle()
	if err != nil {
		return nil, nil, err
	}
	reg := text.DefaultRegistry()
	c := raster.New(int(cfg.Width), int(cfg.Height))
	c.Clear = theme.Surface
	c.Fonts = reg
	return c, text.NewCachedMeasurer(text.NewFaceMeasurer(reg), reg), nil
}

func renderTree(cfg facet.Config, root *ui.Node, out string) error {
	canvas, m, err := newRasterPipeline(cfg)
	if err != nil {
		return err
	}
	p, err := facet.NewPipeline(cfg, root, m, canvas)
	if err != nil {
		return err
	}
	if _, err := p.Frame(); err != nil {
		return err
	}
	return canvas.Save(out)
}
