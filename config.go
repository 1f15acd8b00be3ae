// Package facet ties the toolkit together: a Config read from TOML and a Pipeline
// that turns a widget tree plus input events into submitted frames.
package facet

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/facet/internal/trace"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/tw"
	"github.com/agiangrant/facet/ui"
)

var logger = trace.New("facet")

// Renderer backends.
const (
	BackendNative = "native"
	BackendRaster = "raster"
)

// ErrInvalidConfig is wrapped by every validation failure of a Config.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a Pipeline.
//
//	width = 1024
//	height = 768
//	theme = "minimal"
//	tw_theme = "brand.toml"
//
//	[breakpoints]
//	md = 800
//
//	[renderer]
//	backend = "raster"
type Config struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`

	// Overscan is the number of extra virtualized rows rendered on each side.
	Overscan int  `toml:"overscan"`
	Debug    bool `toml:"debug"`

	// Theme is a preset name ("modern", "classic", "minimal") or the path of a
	// GlobalStyle TOML file.
	Theme string `toml:"theme"`
	// TWTheme is an optional utility-class theme override file.
	TWTheme     string              `toml:"tw_theme"`
	Breakpoints tw.BreakpointConfig `toml:"breakpoints"`

	Renderer RendererConfig `toml:"renderer"`
}

// RendererConfig selects where frames go.
type RendererConfig struct {
	// Backend is "native" or "raster". Native falls back to raster when the
	// library cannot be loaded.
	Backend string `toml:"backend"`
	// Library is the renderer library path. Empty searches the usual locations.
	Library string `toml:"library"`
}

// DefaultConfig returns an 800×600 modern-themed configuration on the native backend.
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		Overscan:    ui.DefaultOverscan,
		Theme:       "modern",
		Breakpoints: tw.DefaultBreakpoints(),
		Renderer:    RendererConfig{Backend: BackendNative},
	}
}

// LoadConfig reads path over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a TOML document over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return Config{}, fmt.Errorf("failed to parse config: line %d, column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, breakpoint order and the backend name.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	b := c.Breakpoints
	if !(b.SM <= b.MD && b.MD <= b.LG && b.LG <= b.XL && b.XL <= b.XXL) {
		return fmt.Errorf("%w: breakpoints must be ascending (sm=%g md=%g lg=%g xl=%g 2xl=%g)", ErrInvalidConfig, b.SM, b.MD, b.LG, b.XL, b.XXL)
	}
	switch c.Renderer.Backend {
	case "", BackendNative, BackendRaster:
	default:
		return fmt.Errorf("%w: unknown renderer backend %q", ErrInvalidConfig, c.Renderer.Backend)
	}
	return nil
}

// GlobalStyle resolves Theme: a preset name first, otherwise a GlobalStyle file.
func (c Config) GlobalStyle() (style.GlobalStyle, error) {
	if g, ok := style.Preset(c.Theme); ok {
		return g, nil
	}
	g, err := style.LoadGlobalStyle(c.Theme)
	if err != nil {
		return style.GlobalStyle{}, fmt.Errorf("failed to load theme %q: %w", c.Theme, err)
	}
	return g, nil
}

// Apply sets process-wide state from the config: debug tracing and the utility-class
// theme.
func (c Config) Apply() error {
	trace.Enable(c.Debug)
	if c.TWTheme == "" {
		return nil
	}
	t, err := tw.LoadTheme(c.TWTheme)
	if err != nil {
		return fmt.Errorf("failed to load utility theme: %w", err)
	}
	tw.SetTheme(t)
	logger.Debugf("utility theme loaded from %s", c.TWTheme)
	return nil
}
