package tw

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/facet/style"
)

// Theme is the lookup table utility classes resolve against.
type Theme struct {
	Colors       map[string]style.Color
	Spacing      map[string]float32
	FontSizes    map[string]float32
	Radii        map[string]float32
	FontFamilies map[string]string
	Shadows      map[string]*style.Shadow
}

// themeFile is the on-disk shape of a theme override.
//
//	[colors]
//	brand-500 = "#1da1f2"
//	[spacing]
//	18 = "4.5rem"
//	[fonts]
//	display = "fonts/Inter.ttf"
type themeFile struct {
	Colors    map[string]string `toml:"colors"`
	Spacing   map[string]string `toml:"spacing"`
	FontSizes map[string]string `toml:"font_sizes"`
	Radii     map[string]string `toml:"radii"`
	Fonts     map[string]string `toml:"fonts"`
}

var current atomic.Pointer[Theme]

func init() {
	t := DefaultTheme()
	current.Store(&t)
}

// SetTheme replaces the theme used by ParseClasses.
func SetTheme(t Theme) {
	current.Store(&t)
}

// CurrentTheme returns the registered theme.
func CurrentTheme() *Theme {
	return current.Load()
}

// LoadTheme reads a TOML override file and merges it over DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("tw: read theme: %w", err)
	}
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("tw: parse theme %s: %w", path, err)
	}

	t := DefaultTheme()
	for name, hex := range f.Colors {
		c, err := style.ParseHex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("tw: color %q: %w", name, err)
		}
		t.Colors[name] = c
	}
	merge := func(dst map[string]float32, src map[string]string, what string) error {
		for key, v := range src {
			px := parseDimension(v)
			if px == nil {
				return fmt.Errorf("tw: %s %q: cannot parse %q", what, key, v)
			}
			dst[key] = *px
		}
		return nil
	}
	if err := merge(t.Spacing, f.Spacing, "spacing"); err != nil {
		return Theme{}, err
	}
	if err := merge(t.FontSizes, f.FontSizes, "font size"); err != nil {
		return Theme{}, err
	}
	if err := merge(t.Radii, f.Radii, "radius"); err != nil {
		return Theme{}, err
	}
	for name, v := range f.Fonts {
		t.FontFamilies[name] = v
	}
	return t, nil
}

// DefaultTheme returns the built-in Tailwind-compatible scales.
func DefaultTheme() Theme {
	t := Theme{
		Colors:       defaultColors(),
		Spacing:      map[string]float32{"0": 0, "px": 1},
		FontSizes:    map[string]float32{"xs": 12, "sm": 14, "base": 16, "lg": 18, "xl": 20, "2xl": 24, "3xl": 30, "4xl": 36, "5xl": 48},
		Radii:        map[string]float32{"none": 0, "sm": 2, "": 4, "md": 6, "lg": 8, "xl": 12, "2xl": 16, "3xl": 24, "full": 9999},
		FontFamilies: map[string]string{"sans": "sans", "serif": "serif", "mono": "mono"},
		Shadows: map[string]*style.Shadow{
			"none": nil,
			"sm":   {Offset: vecY(1), Blur: 2, Color: style.RGBA(0, 0, 0, 0.05)},
			"":     {Offset: vecY(1), Blur: 3, Color: style.RGBA(0, 0, 0, 0.1)},
			"md":   {Offset: vecY(4), Blur: 6, Color: style.RGBA(0, 0, 0, 0.1)},
			"lg":   {Offset: vecY(10), Blur: 15, Color: style.RGBA(0, 0, 0, 0.1)},
			"xl":   {Offset: vecY(20), Blur: 25, Color: style.RGBA(0, 0, 0, 0.1)},
		},
	}
	// Spacing is the 4px scale: "1" = 4px, "2.5" = 10px, up to "96".
	for _, step := range []float32{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96} {
		t.Spacing[strconv.FormatFloat(float64(step), 'f', -1, 32)] = step * 4
	}
	return t
}

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

func defaultColors() map[string]style.Color {
	palettes := map[string]string{
		"slate":   "f8fafc f1f5f9 e2e8f0 cbd5e1 94a3b8 64748b 475569 334155 1e293b 0f172a 020617",
		"gray":    "f9fafb f3f4f6 e5e7eb d1d5db 9ca3af 6b7280 4b5563 374151 1f2937 111827 030712",
		"zinc":    "fafafa f4f4f5 e4e4e7 d4d4d8 a1a1aa 71717a 52525b 3f3f46 27272a 18181b 09090b",
		"red":     "fef2f2 fee2e2 fecaca fca5a5 f87171 ef4444 dc2626 b91c1c 991b1b 7f1d1d 450a0a",
		"orange":  "fff7ed ffedd5 fed7aa fdba74 fb923c f97316 ea580c c2410c 9a3412 7c2d12 431407",
		"amber":   "fffbeb fef3c7 fde68a fcd34d fbbf24 f59e0b d97706 b45309 92400e 78350f 451a03",
		"green":   "f0fdf4 dcfce7 bbf7d0 86efac 4ade80 22c55e 16a34a 15803d 166534 14532d 052e16",
		"emerald": "ecfdf5 d1fae5 a7f3d0 6ee7b7 34d399 10b981 059669 047857 065f46 064e3b 022c22",
		"teal":    "f0fdfa ccfbf1 99f6e4 5eead4 2dd4bf 14b8a6 0d9488 0f766e 115e59 134e4a 042f2e",
		"sky":     "f0f9ff e0f2fe bae6fd 7dd3fc 38bdf8 0ea5e9 0284c7 0369a1 075985 0c4a6e 082f49",
		"blue":    "eff6ff dbeafe bfdbfe 93c5fd 60a5fa 3b82f6 2563eb 1d4ed8 1e40af 1e3a8a 172554",
		"indigo":  "eef2ff e0e7ff c7d2fe a5b4fc 818cf8 6366f1 4f46e5 4338ca 3730a3 312e81 1e1b4b",
		"violet":  "f5f3ff ede9fe ddd6fe c4b5fd a78bfa 8b5cf6 7c3aed 6d28d9 5b21b6 4c1d95 2e1065",
		"purple":  "faf5ff f3e8ff e9d5ff d8b4fe c084fc a855f7 9333ea 7e22ce 6b21a8 581c87 3b0764",
		"pink":    "fdf2f8 fce7f3 fbcfe8 f9a8d4 f472b6 ec4899 db2777 be185d 9d174d 831843 500724",
		"rose":    "fff1f2 ffe4e6 fecdd3 fda4af fb7185 f43f5e e11d48 be123c 9f1239 881337 4c0519",
	}
	colors := make(map[string]style.Color, len(palettes)*len(shades)+3)
	for name, list := range palettes {
		for i, hex := range strings.Fields(list) {
			colors[name+"-"+shades[i]] = style.MustHex("#" + hex)
		}
	}
	colors["white"] = style.White
	colors["black"] = style.Black
	colors["transparent"] = style.Transparent
	return colors
}
