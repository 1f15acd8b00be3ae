package tw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agiangrant/facet/style"
)

func TestParseClassesWithVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ComputedStyles)
	}{
		{
			name:  "basic classes without variants",
			input: "bg-blue-500 text-white p-4",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BackgroundColor == nil {
					t.Error("expected Base.BackgroundColor to be set")
				}
				if s.Base.TextColor == nil || *s.Base.TextColor != style.White {
					t.Errorf("expected Base.TextColor white, got %v", s.Base.TextColor)
				}
				if s.Base.PaddingTop == nil || *s.Base.PaddingTop != 16.0 {
					t.Errorf("expected Base.PaddingTop=16.0, got %v", s.Base.PaddingTop)
				}
			},
		},
		{
			name:  "hover variant",
			input: "bg-blue-500 hover:bg-blue-600",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BackgroundColor == nil || s.Hover.BackgroundColor == nil {
					t.Fatal("expected base and hover backgrounds")
				}
				if *s.Base.BackgroundColor == *s.Hover.BackgroundColor {
					t.Error("hover color should be different from base")
				}
			},
		},
		{
			name:  "focus and active variants",
			input: "border-gray-300 focus:border-blue-500 active:bg-blue-700",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BorderColor == nil {
					t.Error("expected Base.BorderColor to be set")
				}
				if s.Focus.BorderColor == nil {
					t.Error("expected Focus.BorderColor to be set")
				}
				if s.Active.BackgroundColor == nil {
					t.Error("expected Active.BackgroundColor to be set")
				}
			},
		},
		{
			name:  "responsive variant",
			input: "flex-col md:flex-row",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Direction == nil || *s.Base.Direction != "column" {
					t.Errorf("expected Base.Direction=column, got %v", s.Base.Direction)
				}
				if s.MD.Direction == nil || *s.MD.Direction != "row" {
					t.Errorf("expected MD.Direction=row, got %v", s.MD.Direction)
				}
			},
		},
		{
			name:  "layout utilities",
			input: "flex justify-center items-center gap-4 flex-2",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Direction == nil || *s.Base.Direction != "row" {
					t.Errorf("expected Direction=row, got %v", s.Base.Direction)
				}
				if s.Base.JustifyContent == nil || *s.Base.JustifyContent != "center" {
					t.Errorf("expected JustifyContent=center, got %v", s.Base.JustifyContent)
				}
				if s.Base.AlignItems == nil || *s.Base.AlignItems != "center" {
					t.Errorf("expected AlignItems=center, got %v", s.Base.AlignItems)
				}
				if s.Base.Gap == nil || *s.Base.Gap != 16.0 {
					t.Errorf("expected Gap=16.0, got %v", s.Base.Gap)
				}
				if s.Base.Flex == nil || *s.Base.Flex != 2 {
					t.Errorf("expected Flex=2, got %v", s.Base.Flex)
				}
			},
		},
		{
			name:  "grid utilities",
			input: "grid-cols-3 col-span-2 row-span-1 col-start-2 row-start-3",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Direction == nil || *s.Base.Direction != "grid" {
					t.Errorf("grid-cols should imply grid direction, got %v", s.Base.Direction)
				}
				if s.Base.GridColumns == nil || *s.Base.GridColumns != 3 {
					t.Errorf("expected GridColumns=3, got %v", s.Base.GridColumns)
				}
				if s.Base.GridColumnSpan == nil || *s.Base.GridColumnSpan != 2 {
					t.Errorf("expected GridColumnSpan=2, got %v", s.Base.GridColumnSpan)
				}
				if s.Base.GridColumn == nil || *s.Base.GridColumn != 1 {
					t.Errorf("col-start-2 should be zero-based column 1, got %v", s.Base.GridColumn)
				}
				if s.Base.GridRow == nil || *s.Base.GridRow != 2 {
					t.Errorf("row-start-3 should be zero-based row 2, got %v", s.Base.GridRow)
				}
			},
		},
		{
			name:  "decoration utilities",
			input: "rounded-lg border-2 shadow-md font-bold text-xl",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BorderRadius == nil || *s.Base.BorderRadius != 8 {
					t.Errorf("expected BorderRadius=8, got %v", s.Base.BorderRadius)
				}
				if s.Base.BorderWidth == nil || *s.Base.BorderWidth != 2 {
					t.Errorf("expected BorderWidth=2, got %v", s.Base.BorderWidth)
				}
				if s.Base.Shadow == nil || s.Base.Shadow.Blur != 6 {
					t.Errorf("expected md shadow, got %+v", s.Base.Shadow)
				}
				if s.Base.Bold == nil || !*s.Base.Bold {
					t.Error("expected Bold")
				}
				if s.Base.FontSize == nil || *s.Base.FontSize != 20 {
					t.Errorf("expected FontSize=20, got %v", s.Base.FontSize)
				}
			},
		},
		{
			name:  "last class wins",
			input: "shadow-lg shadow-none p-2 px-6",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Shadow != nil || !s.Base.NoShadow {
					t.Error("shadow-none should clear the shadow")
				}
				if *s.Base.PaddingLeft != 24 || *s.Base.PaddingTop != 8 {
					t.Errorf("padding left/top = %v/%v, want 24/8", *s.Base.PaddingLeft, *s.Base.PaddingTop)
				}
			},
		},
		{
			name:  "unknown classes are ignored",
			input: "cursor-pointer z-50 bg-not-a-color",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BackgroundColor != nil {
					t.Error("unknown color should not set a background")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClasses(tt.input))
		})
	}
}

func TestArbitraryValues(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ComputedStyles)
	}{
		{
			name:  "arbitrary width percentage",
			input: "w-[33%]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Width == nil || *s.Base.Width != 33.0 {
					t.Errorf("w-[33%%] should be 33, got %v", s.Base.Width)
				}
			},
		},
		{
			name:  "arbitrary rem value",
			input: "p-[2.5rem]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.PaddingTop == nil || *s.Base.PaddingTop != 40 {
					t.Errorf("p-[2.5rem] should be 40px, got %v", s.Base.PaddingTop)
				}
			},
		},
		{
			name:  "arbitrary shorthand hex color",
			input: "text-[#fff]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.TextColor == nil || s.Base.TextColor.RGBA32() != 0xFFFFFFFF {
					t.Errorf("text-[#fff] should expand to white, got %v", s.Base.TextColor)
				}
			},
		},
		{
			name:  "arbitrary font size",
			input: "text-[22px]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.FontSize == nil || *s.Base.FontSize != 22 {
					t.Errorf("text-[22px] should set font size 22, got %v", s.Base.FontSize)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClasses(tt.input))
		})
	}
}

func TestResolveForWidth(t *testing.T) {
	cs := ParseClasses("p-2 md:p-4 xl:p-8")
	cfg := DefaultBreakpoints()
	tests := []struct {
		width float32
		want  float32
	}{
		{320, 8},
		{768, 16},
		{1100, 16},
		{1600, 32},
	}
	for _, tt := range tests {
		got := cs.ResolveForWidth(tt.width, cfg)
		if got.PaddingTop == nil || *got.PaddingTop != tt.want {
			t.Errorf("width %v: padding = %v, want %v", tt.width, got.PaddingTop, tt.want)
		}
	}
}

func TestPropertiesStyle(t *testing.T) {
	s := ParseClasses("bg-red-500 rounded-md border-blue-500").Base.Style()
	if s.Background == nil || s.Background.Hex() != "#ef4444ff" {
		t.Errorf("background = %v", s.Background)
	}
	if s.Radius != style.Uniform(6) {
		t.Errorf("radius = %+v, want 6", s.Radius)
	}
	if s.Border == nil || s.Border.Width != 1 {
		t.Errorf("border color alone should default to width 1, got %+v", s.Border)
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	data := []byte(`
[colors]
brand-500 = "#1da1f2"

[spacing]
18 = "4.5rem"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	s := ParseClassesWith("bg-brand-500 p-18 text-blue-500", &theme)
	if s.Base.BackgroundColor == nil {
		t.Error("custom color should resolve")
	}
	if s.Base.PaddingTop == nil || *s.Base.PaddingTop != 72 {
		t.Errorf("custom spacing = %v, want 72", s.Base.PaddingTop)
	}
	if s.Base.TextColor == nil {
		t.Error("default palette should survive the override")
	}
}

func TestLoadThemeRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("[colors]\nbad = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTheme(path); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func BenchmarkParseClasses(b *testing.B) {
	input := "bg-blue-500 hover:bg-blue-600 text-white font-bold px-4 py-2 rounded md:p-6 grid-cols-3"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseClasses(input)
	}
}
