package style

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// GlobalStyle holds the defaults widgets fall back to when they set nothing themselves.
type GlobalStyle struct {
	CornerRadiusSmall  float32 `toml:"corner_radius_small"`
	CornerRadiusMedium float32 `toml:"corner_radius_medium"`
	CornerRadiusLarge  float32 `toml:"corner_radius_large"`

	BorderWidthThin   float32 `toml:"border_width_thin"`
	BorderWidthNormal float32 `toml:"border_width_normal"`
	BorderWidthThick  float32 `toml:"border_width_thick"`

	SpacingSmall  float32 `toml:"spacing_small"`
	SpacingMedium float32 `toml:"spacing_medium"`
	SpacingLarge  float32 `toml:"spacing_large"`

	ShadowSmall  *Shadow `toml:"shadow_small,omitempty"`
	ShadowMedium *Shadow `toml:"shadow_medium,omitempty"`
	ShadowLarge  *Shadow `toml:"shadow_large,omitempty"`

	FontSizeSmall   float32 `toml:"font_size_small"`
	FontSizeNormal  float32 `toml:"font_size_normal"`
	FontSizeLarge   float32 `toml:"font_size_large"`
	FontSizeHeading float32 `toml:"font_size_heading"`

	TextColor   Color `toml:"text_color"`
	Surface     Color `toml:"surface"`
	SurfaceAlt  Color `toml:"surface_alt"`
	Accent      Color `toml:"accent"`
	BorderColor Color `toml:"border_color"`
}

// Modern is the default preset: rounded corners and soft shadows.
func Modern() GlobalStyle {
	return GlobalStyle{
		CornerRadiusSmall:  4,
		CornerRadiusMedium: 8,
		CornerRadiusLarge:  12,
		BorderWidthThin:    1,
		BorderWidthNormal:  2,
		BorderWidthThick:   3,
		SpacingSmall:       8,
		SpacingMedium:      16,
		SpacingLarge:       24,
		ShadowSmall:        &Shadow{Offset: vec(0, 2), Blur: 4, Color: RGBA(0, 0, 0, 0.1)},
		ShadowMedium:       &Shadow{Offset: vec(0, 4), Blur: 8, Color: RGBA(0, 0, 0, 0.15)},
		ShadowLarge:        &Shadow{Offset: vec(0, 8), Blur: 16, Color: RGBA(0, 0, 0, 0.2)},
		FontSizeSmall:      12,
		FontSizeNormal:     16,
		FontSizeLarge:      20,
		FontSizeHeading:    28,
		TextColor:          RGBA(0.9, 0.9, 0.9, 1),
		Surface:            RGBA(0.12, 0.12, 0.12, 1),
		SurfaceAlt:         RGBA(0.15, 0.15, 0.15, 1),
		Accent:             RGBA(0.3, 0.4, 0.6, 1),
		BorderColor:        RGBA(0.3, 0.3, 0.3, 1),
	}
}

// Classic has square corners and no shadows.
func Classic() GlobalStyle {
	g := Modern()
	g.CornerRadiusSmall, g.CornerRadiusMedium, g.CornerRadiusLarge = 0, 0, 0
	g.ShadowSmall, g.ShadowMedium, g.ShadowLarge = nil, nil, nil
	return g
}

// Minimal has subtle corners, thin borders and tighter spacing.
func Minimal() GlobalStyle {
	g := Modern()
	g.CornerRadiusSmall, g.CornerRadiusMedium, g.CornerRadiusLarge = 2, 4, 6
	g.BorderWidthNormal, g.BorderWidthThick = 1, 2
	g.SpacingSmall, g.SpacingMedium, g.SpacingLarge = 6, 12, 18
	g.ShadowSmall = &Shadow{Offset: vec(0, 1), Blur: 2, Color: RGBA(0, 0, 0, 0.05)}
	g.ShadowMedium, g.ShadowLarge = nil, nil
	g.FontSizeNormal, g.FontSizeLarge, g.FontSizeHeading = 14, 18, 24
	return g
}

// Preset returns a named preset: "modern", "classic" or "minimal".
func Preset(name string) (GlobalStyle, bool) {
	switch name {
	case "", "modern":
		return Modern(), true
	case "classic":
		return Classic(), true
	case "minimal":
		return Minimal(), true
	}
	return GlobalStyle{}, false
}

// LoadGlobalStyle reads a GlobalStyle from a TOML file. Fields missing from the file
// keep their Modern values.
func LoadGlobalStyle(path string) (GlobalStyle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GlobalStyle{}, fmt.Errorf("style: read %s: %w", path, err)
	}
	g := Modern()
	if err := toml.Unmarshal(data, &g); err != nil {
		return GlobalStyle{}, fmt.Errorf("style: parse %s: %w", path, err)
	}
	return g, nil
}

// SaveGlobalStyle writes g to path as TOML.
func SaveGlobalStyle(path string, g GlobalStyle) error {
	data, err := toml.Marshal(g)
	if err != nil {
		return fmt.Errorf("style: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("style: write %s: %w", path, err)
	}
	return nil
}
