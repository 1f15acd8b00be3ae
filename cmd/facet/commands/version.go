package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/agiangrant/facet/gpu"
)

// Release is the CLI version.
const Release = "0.1.0"

// Version implements the 'facet version' command. It also reports whether the native
// renderer library can be loaded.
func Version(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	lib := fs.String("library", "", "Renderer library path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Fprintf(w, "facet version %s\n", Release)
	s, err := gpu.OpenNative(*lib)
	if err != nil {
		fmt.Fprintf(w, "renderer: unavailable (%v)\n", err)
		return nil
	}
	v := s.Version()
	if v == "" {
		v = "unknown version"
	}
	fmt.Fprintf(w, "renderer: %s\n", v)
	return nil
}
