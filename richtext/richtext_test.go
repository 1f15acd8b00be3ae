package richtext

import (
	"testing"

	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/text"
)

var base = Style{Color: style.White, Size: 14}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPlain bool
		validate  func(*testing.T, Text)
	}{
		{
			name:      "no markup",
			input:     "hello world",
			wantPlain: true,
			validate: func(t *testing.T, r Text) {
				if len(r.Runs) != 1 || r.Runs[0].Style != base {
					t.Errorf("runs = %+v", r.Runs)
				}
			},
		},
		{
			name:  "bold run",
			input: "Hello <b>world</b>!",
			validate: func(t *testing.T, r Text) {
				if len(r.Runs) != 3 {
					t.Fatalf("got %d runs, want 3", len(r.Runs))
				}
				if r.Runs[0].Style.Bold || !r.Runs[1].Style.Bold || r.Runs[2].Style.Bold {
					t.Errorf("bold flags wrong: %+v", r.Runs)
				}
				if r.String() != "Hello world!" {
					t.Errorf("String() = %q", r.String())
				}
			},
		},
		{
			name:  "nested color and size with aliases",
			input: `<c="#ff0000">red <s=20>big</s></c>`,
			validate: func(t *testing.T, r Text) {
				if len(r.Runs) != 2 {
					t.Fatalf("got %d runs, want 2", len(r.Runs))
				}
				if r.Runs[0].Style.Color.RGBA32() != 0xff0000ff {
					t.Errorf("color = %v", r.Runs[0].Style.Color)
				}
				if r.Runs[1].Style.Size != 20 || r.Runs[1].Style.Color != r.Runs[0].Style.Color {
					t.Errorf("nested style = %+v", r.Runs[1].Style)
				}
			},
		},
		{
			name:  "span attributes",
			input: `<span color="#00ff00" size=12 font='mono' italic underline>x</span>`,
			validate: func(t *testing.T, r Text) {
				st := r.Runs[0].Style
				if st.Color.RGBA32() != 0x00ff00ff || st.Size != 12 || st.Family != "mono" || !st.Italic || !st.Underline || st.Bold {
					t.Errorf("span style = %+v", st)
				}
			},
		},
		{
			name:  "unclosed tag is tolerated",
			input: "<u>under",
			validate: func(t *testing.T, r Text) {
				if len(r.Runs) != 1 || !r.Runs[0].Style.Underline {
					t.Errorf("runs = %+v", r.Runs)
				}
			},
		},
		{
			name:  "invalid utf-8 is kept byte for byte",
			input: "<b>a\xffb</b>\xc3",
			validate: func(t *testing.T, r Text) {
				if len(r.Runs) != 2 || r.Runs[0].Text != "a\xffb" || r.Runs[1].Text != "\xc3" {
					t.Errorf("runs = %+v", r.Runs)
				}
			},
		},
		{name: "unknown tag falls back", input: "<blink>hi</blink>", wantPlain: true},
		{name: "mismatched close falls back", input: "<b>hi</i>", wantPlain: true},
		{name: "comparison operators fall back", input: "a < b > c", wantPlain: true},
		{name: "unterminated value falls back", input: `<color="#fff>x`, wantPlain: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, base)
			if got.Plain != tt.wantPlain {
				t.Fatalf("Plain = %v, want %v (%+v)", got.Plain, tt.wantPlain, got.Runs)
			}
			if tt.wantPlain && got.String() != tt.input {
				t.Errorf("fallback text = %q, want literal %q", got.String(), tt.input)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestMeasureSumsRuns(t *testing.T) {
	m := text.EstimateMeasurer{}
	r := Parse("ab<s=20>cd</s>", base)
	got := r.Measure(m)
	want := geom.Size{
		W: m.Measure("ab", text.FontSpec{Size: 14}).W + m.Measure("cd", text.FontSpec{Size: 20}).W,
		H: text.LineHeight(20),
	}
	if geom.Abs(got.W-want.W) > 1e-3 || geom.Abs(got.H-want.H) > 1e-3 {
		t.Errorf("Measure = %+v, want %+v", got, want)
	}
}
