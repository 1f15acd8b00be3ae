package ui

import "testing"

func TestValidationRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  ValidationRule
		value string
		want  string
	}{
		{"required empty", Required(), "", "This field is required"},
		{"required set", Required(), "x", ""},
		{"min length skips empty", MinLength(3), "", ""},
		{"min length short", MinLength(3), "ab", "Must be at least 3 characters"},
		{"min length counts runes", MinLength(3), "héé", ""},
		{"max length long", MaxLength(2), "abc", "Must be no more than 2 characters"},
		{"min below", Min(18), "17", "Must be at least 18"},
		{"min not a number", Min(18), "abc", "Invalid number"},
		{"max above", Max(120), "121", "Must be no more than 120"},
		{"max trims spaces", Max(120), " 42 ", ""},
		{"max fractional bound", Max(0.5), "0.75", "Must be no more than 0.5"},
		{"pattern match", Pattern(`^\d{3}$`), "123", ""},
		{"pattern mismatch", Pattern(`^\d{3}$`), "12a", "Invalid format"},
		{"pattern broken", Pattern("("), "x", "Invalid pattern configuration"},
		{"email ok", Email(), "a.b@example.com", ""},
		{"email missing at", Email(), "nope", "Invalid email address"},
		{"email short tld", Email(), "x@y.c", "Invalid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Check(tt.value); got != tt.want {
				t.Errorf("Check(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateInputs(t *testing.T) {
	name := &TextInput{Rules: []ValidationRule{Required(), MinLength(3)}}
	age := &TextInput{Value: "12", Rules: []ValidationRule{Min(18), Max(120)}}
	free := &TextInput{}
	root := Column(8,
		&Node{ID: "name", Content: name},
		&Node{ID: "age", Content: age},
		&Node{ID: "free", Content: free},
	)

	failures := ValidateInputs(root)
	if len(failures) != 2 {
		t.Fatalf("failures = %v, want name and age", failures)
	}
	if name.Error != "This field is required" || age.Error != "Must be at least 18" {
		t.Errorf("errors = %q, %q", name.Error, age.Error)
	}

	ComputeLayout(root, 0, 0, 300, 400, measurer)
	var found bool
	for _, txt := range RenderUI(root, nil, measurer).Base.Texts {
		if txt.Text == age.Error {
			found = txt.Color == trendDownColor && txt.Font.Size == errorFontSize
		}
	}
	if !found {
		t.Error("age error line not rendered")
	}
	if h := Intrinsic(root.Children()[2], measurer).H; h >= Intrinsic(root.Children()[1], measurer).H {
		t.Errorf("input without rules reserves an error line: %v", h)
	}

	name.Value, age.Value = "Bob", "30"
	if failures := ValidateInputs(root); len(failures) != 0 {
		t.Errorf("failures = %v, want none", failures)
	}
	if name.Error != "" || age.Error != "" {
		t.Error("errors not cleared")
	}
}
