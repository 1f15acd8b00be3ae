package style

import (
	"path/filepath"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr bool
	}{
		{name: "six digits", input: "#ff0000", want: 0xff0000ff},
		{name: "three digits", input: "#0f0", want: 0x00ff00ff},
		{name: "with alpha", input: "#0000ff80", want: 0x0000ff80},
		{name: "surrounding space", input: "  #ffffff ", want: 0xffffffff},
		{name: "missing hash", input: "ff0000", wantErr: true},
		{name: "bad digits", input: "#zzzzzz", wantErr: true},
		{name: "bad alpha", input: "#000000zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.input, err)
			}
			if got := c.RGBA32(); got != tt.want {
				t.Errorf("ParseHex(%q) = %#08x, want %#08x", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorLerp(t *testing.T) {
	mid := Black.Lerp(RGBA(1, 1, 1, 0), 0.5)
	if mid.R < 0.499 || mid.R > 0.501 || mid.A < 0.499 || mid.A > 0.501 {
		t.Errorf("Lerp midpoint = %+v", mid)
	}
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %+v, want black", got)
	}
}

func TestMergeOverridesSetFields(t *testing.T) {
	red, blue := MustHex("#ff0000"), MustHex("#0000ff")
	base := Style{Background: &red, Radius: Uniform(4), FontSize: 14}
	hover := Style{Background: &blue}

	got := base.Merge(hover)
	if *got.Background != blue {
		t.Errorf("background = %+v, want blue", *got.Background)
	}
	if got.Radius != Uniform(4) || got.FontSize != 14 {
		t.Errorf("unset overlay fields should keep base values, got %+v", got)
	}

	grad := base
	grad.Gradient = &Gradient{Start: red, End: blue}
	if s, e, ok := grad.Fill(); !ok || s != red || e != blue {
		t.Errorf("Fill with gradient = %v %v %v", s, e, ok)
	}
	if s, e, ok := base.Fill(); !ok || s != e {
		t.Errorf("solid fill should have start == end, got %v %v %v", s, e, ok)
	}
}

func TestPresets(t *testing.T) {
	if g, ok := Preset("classic"); !ok || g.CornerRadiusMedium != 0 || g.ShadowSmall != nil {
		t.Errorf("classic preset = %+v", g)
	}
	if g, _ := Preset(""); g.CornerRadiusMedium != 8 {
		t.Errorf("default preset should be modern, got radius %v", g.CornerRadiusMedium)
	}
	if _, ok := Preset("baroque"); ok {
		t.Error("unknown preset should not resolve")
	}
}

func TestGlobalStyleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	want := Minimal()
	if err := SaveGlobalStyle(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadGlobalStyle(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.CornerRadiusLarge != want.CornerRadiusLarge || got.SpacingMedium != want.SpacingMedium {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
	if got.ShadowSmall == nil || got.ShadowSmall.Blur != 2 {
		t.Errorf("shadow_small = %+v, want blur 2", got.ShadowSmall)
	}
}
