// Package decl builds widget trees from TOML documents.
//
// A document is one node table. Containers nest their children as arrays of tables:
//
//	type = "column"
//	id = "root"
//	classes = "p-4 gap-2"
//
//	[[children]]
//	type = "label"
//	text = "<b>Hello</b>"
//
//	[[children]]
//	type = "button"
//	id = "ok"
//	text = "OK"
//	[children.style]
//	background = "#3b82f6"
//	radius = 6
//
// Parse failures carry the node path; LoadOrPlaceholder turns any failure into a tree
// that shows the error, so a host can keep running while a file is being edited.
package decl

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/facet/internal/trace"
	"github.com/agiangrant/facet/ui"
)

var logger = trace.New("decl")

// ParseError reports where in a document a node could not be built.
type ParseError struct {
	// Path locates the node, e.g. "root > children[2] > pages[0]". Empty for
	// syntax errors, which carry a line and column in Err instead.
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "decl: " + e.Err.Error()
	}
	return fmt.Sprintf("decl: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse builds a tree from a TOML document and validates its layout configuration.
func Parse(data []byte) (*ui.Node, error) {
	var doc nodeSpec
	if err := toml.Unmarshal(data, &doc); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return nil, &ParseError{Err: fmt.Errorf("line %d, column %d: %w", row, col, err)}
		}
		return nil, &ParseError{Err: err}
	}

	root, err := build(&doc, "root")
	if err != nil {
		return nil, err
	}
	if err := ui.Validate(root); err != nil {
		var le *ui.LayoutError
		if errors.As(err, &le) {
			return nil, &ParseError{Path: strings.Join(le.Path, " > "), Err: err}
		}
		return nil, &ParseError{Err: err}
	}
	return root, nil
}

// Load reads and parses the file at path.
func Load(path string) (*ui.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("decl: read %s: %w", path, err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// LoadOrPlaceholder loads path. On failure it logs the error and returns a tree that
// displays it together with the error itself.
func LoadOrPlaceholder(path string) (*ui.Node, error) {
	root, err := Load(path)
	if err != nil {
		logger.Warnf("%v", err)
		return Placeholder(path, err), err
	}
	return root, nil
}

// Placeholder is the tree shown in place of a document that failed to load.
func Placeholder(path string, err error) *ui.Node {
	title := ui.NewLabel("Failed to load " + path)
	title.Style.Bold = true
	detail := ui.NewLabel(err.Error())
	detail.Style.FontFamily = "mono"
	detail.Style.FontSize = 12

	box := ui.Column(8, title, detail)
	box.ID = "decl-error"
	box.Container().Layout.Padding = uniform(16)
	box.Style.Background = colorPtr("#fef2f2")
	box.Style.TextColor = colorPtr("#991b1b")
	box.Style.Border = border(1, "#fca5a5")
	box.Style.Radius = radius(6)

	root := ui.Column(0, box)
	root.Container().Layout.Padding = uniform(24)
	return root
}
