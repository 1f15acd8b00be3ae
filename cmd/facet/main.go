package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/facet/cmd/facet/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "layout":
		err = commands.Layout(args, os.Stdout)
	case "render":
		err = commands.Render(args, os.Stdout)
	case "validate":
		err = commands.Validate(args, os.Stdout)
	case "watch":
		err = commands.Watch(args, os.Stdout)
	case "version", "-v", "--version":
		err = commands.Version(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`facet - widget toolkit CLI

Usage: facet <command> [options] <file.toml>...

Commands:
  layout     Print the laid-out widget tree of a UI document
  render     Rasterize UI documents to PNG
  validate   Check UI documents for parse and layout errors
  watch      Re-render a UI document whenever it changes
  version    Print version information
  help       Show this help message

Every command accepts -config <facet.toml>; without it ./facet.toml is used when
present.

Examples:
  facet layout -width 1280 ui/main.toml
  facet render -out shots ui/*.toml
  facet watch -out preview.png ui/main.toml`)
}
