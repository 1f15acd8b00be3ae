package facet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/tw"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
width = 1024
height = 768
debug = false
theme = "minimal"

[breakpoints]
md = 800

[renderer]
backend = "raster"
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("size = %gx%g, want 1024x768", cfg.Width, cfg.Height)
	}
	if cfg.Renderer.Backend != BackendRaster {
		t.Errorf("backend = %q", cfg.Renderer.Backend)
	}
	want := tw.DefaultBreakpoints()
	want.MD = 800
	if cfg.Breakpoints != want {
		t.Errorf("breakpoints = %+v, want %+v", cfg.Breakpoints, want)
	}
	if cfg.Overscan != DefaultConfig().Overscan {
		t.Errorf("overscan = %d, want the default", cfg.Overscan)
	}
	g, err := cfg.GlobalStyle()
	if err != nil {
		t.Fatalf("GlobalStyle: %v", err)
	}
	if want := style.Minimal(); g.CornerRadiusMedium != want.CornerRadiusMedium || g.FontSizeNormal != want.FontSizeNormal {
		t.Errorf("GlobalStyle did not resolve the minimal preset")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
		msg     string
	}{
		{"syntax", "width = = 3", false, "line 1"},
		{"zero width", "width = 0", true, "must be positive"},
		{"breakpoints out of order", "[breakpoints]\nsm = 900", true, "ascending"},
		{"unknown backend", "[renderer]\nbackend = \"vulkan\"", true, "vulkan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			if err == nil {
				t.Fatal("ParseConfig succeeded")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", !tt.invalid, tt.invalid, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "theme.toml")
	if err := style.SaveGlobalStyle(themePath, style.Classic()); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "facet.toml")
	doc := "theme = '" + themePath + "'\n"
	if err := os.WriteFile(cfgPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	g, err := cfg.GlobalStyle()
	if err != nil {
		t.Fatalf("GlobalStyle: %v", err)
	}
	if g.CornerRadiusMedium != style.Classic().CornerRadiusMedium {
		t.Errorf("theme file not used: radius %g", g.CornerRadiusMedium)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadConfig of a missing file succeeded")
	}

	cfg.Theme = filepath.Join(dir, "nope.toml")
	if _, err := cfg.GlobalStyle(); err == nil {
		t.Error("GlobalStyle of a missing theme file succeeded")
	}
}

func TestConfigApplyTheme(t *testing.T) {
	prev := *tw.CurrentTheme()
	t.Cleanup(func() { tw.SetTheme(prev) })

	path := filepath.Join(t.TempDir(), "tw.toml")
	if err := os.WriteFile(path, []byte("[colors]\nbrand-500 = \"#1da1f2\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.TWTheme = path
	if err := cfg.Apply(); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := tw.CurrentTheme().Colors["brand-500"]; !ok {
		t.Error("utility theme override not installed")
	}

	cfg.TWTheme = filepath.Join(t.TempDir(), "missing.toml")
	if err := cfg.Apply(); err == nil {
		t.Error("Apply with a missing theme file succeeded")
	}
}
