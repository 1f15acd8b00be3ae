package commands

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/agiangrant/facet"
)

// DefaultConfigFile is read when no -config flag is given and the file exists.
const DefaultConfigFile = "facet.toml"

// commonFlags are shared by every command that builds a pipeline.
type commonFlags struct {
	config *string
	width  *float64
	height *float64
	debug  *bool
}

func addCommonFlags(flags *flag.FlagSet) commonFlags {
	return commonFlags{
		config: flags.String("config", "", "Path to facet.toml (default: ./facet.toml when present)"),
		width:  flags.Float64("width", 0, "Window width (default: from config)"),
		height: flags.Float64("height", 0, "Window height (default: from config)"),
		debug:  flags.Bool("debug", false, "Enable debug tracing"),
	}
}

// load resolves the config file, applies flag overrides and installs the process-wide
// settings.
func (c commonFlags) load() (facet.Config, error) {
	cfg, err := LoadConfig(*c.config)
	if err != nil {
		return facet.Config{}, err
	}
	if *c.width > 0 {
		cfg.Width = float32(*c.width)
	}
	if *c.height > 0 {
		cfg.Height = float32(*c.height)
	}
	if *c.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return facet.Config{}, err
	}
	if err := cfg.Apply(); err != nil {
		return facet.Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads path, or DefaultConfigFile when path is empty. A missing default
// file yields facet.DefaultConfig.
func LoadConfig(path string) (facet.Config, error) {
	if path != "" {
		return facet.LoadConfig(path)
	}
	if _, err := os.Stat(DefaultConfigFile); errors.Is(err, fs.ErrNotExist) {
		return facet.DefaultConfig(), nil
	}
	cfg, err := facet.LoadConfig(DefaultConfigFile)
	if err != nil {
		return facet.Config{}, fmt.Errorf("%s: %w", DefaultConfigFile, err)
	}
	return cfg, nil
}
