package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agiangrant/facet/decl"
)

// Validate implements the 'facet validate' command. It reports every document and
// fails when any of them does not parse or validate.
func Validate(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("validate needs at least one document")
	}

	var errs []error
	for _, doc := range fs.Args() {
		if _, err := decl.Load(doc); err != nil {
			fmt.Fprintf(w, "✗ %v\n", err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "✓ %s\n", doc)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d documents invalid: %w", len(errs), fs.NArg(), errors.Join(errs...))
	}
	return nil
}
