package ui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// RuleKind selects what a ValidationRule checks.
type RuleKind int

const (
	RuleRequired RuleKind = iota
	RuleMinLength
	RuleMaxLength
	RuleMin
	RuleMax
	RulePattern
	RuleEmail
)

func (k RuleKind) String() string {
	switch k {
	case RuleRequired:
		return "required"
	case RuleMinLength:
		return "min_length"
	case RuleMaxLength:
		return "max_length"
	case RuleMin:
		return "min"
	case RuleMax:
		return "max"
	case RulePattern:
		return "pattern"
	case RuleEmail:
		return "email"
	}
	return "unknown"
}

// ValidationRule is one check on a TextInput value. Only Required rejects an empty
// value; every other rule passes it.
type ValidationRule struct {
	Kind RuleKind
	// Length is the rune count for MinLength and MaxLength.
	Length int
	// Bound is the limit for Min and Max.
	Bound float64
	// Pattern is the regular expression for RulePattern.
	Pattern string
}

// Rule constructors.
func Required() ValidationRule           { return ValidationRule{Kind: RuleRequired} }
func MinLength(n int) ValidationRule     { return ValidationRule{Kind: RuleMinLength, Length: n} }
func MaxLength(n int) ValidationRule     { return ValidationRule{Kind: RuleMaxLength, Length: n} }
func Min(v float64) ValidationRule       { return ValidationRule{Kind: RuleMin, Bound: v} }
func Max(v float64) ValidationRule       { return ValidationRule{Kind: RuleMax, Bound: v} }
func Pattern(expr string) ValidationRule { return ValidationRule{Kind: RulePattern, Pattern: expr} }
func Email() ValidationRule              { return ValidationRule{Kind: RuleEmail} }

const emailPattern = `^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`

// patterns caches compiled expressions by source.
var patterns sync.Map

func compiled(expr string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	patterns.Store(expr, re)
	return re, nil
}

// Check returns a user-facing message when value fails the rule, or "".
func (r ValidationRule) Check(value string) string {
	if value == "" {
		if r.Kind == RuleRequired {
			return "This field is required"
		}
		return ""
	}
	switch r.Kind {
	case RuleMinLength:
		if utf8.RuneCountInString(value) < r.Length {
			return fmt.Sprintf("Must be at least %d characters", r.Length)
		}
	case RuleMaxLength:
		if utf8.RuneCountInString(value) > r.Length {
			return fmt.Sprintf("Must be no more than %d characters", r.Length)
		}
	case RuleMin, RuleMax:
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		switch {
		case err != nil:
			return "Invalid number"
		case r.Kind == RuleMin && v < r.Bound:
			return "Must be at least " + strconv.FormatFloat(r.Bound, 'g', -1, 64)
		case r.Kind == RuleMax && v > r.Bound:
			return "Must be no more than " + strconv.FormatFloat(r.Bound, 'g', -1, 64)
		}
	case RulePattern:
		re, err := compiled(r.Pattern)
		if err != nil {
			logger.Warnf("validation pattern %q: %v", r.Pattern, err)
			return "Invalid pattern configuration"
		}
		if !re.MatchString(value) {
			return "Invalid format"
		}
	case RuleEmail:
		re, _ := compiled(emailPattern)
		if !re.MatchString(value) {
			return "Invalid email address"
		}
	}
	return ""
}

// Validate runs every rule against Value and returns the failures in rule order.
func (t *TextInput) Validate() []string {
	var out []string
	for _, r := range t.Rules {
		if msg := r.Check(t.Value); msg != "" {
			out = append(out, msg)
		}
	}
	return out
}

// ValidateInputs validates every text input with rules under root, sets each input's
// Error to its first failure (or clears it) and returns the failures by node ID. An
// empty map means the form is valid.
func ValidateInputs(root *Node) map[string][]string {
	failures := make(map[string][]string)
	Walk(root, func(n *Node) bool {
		in, ok := n.Content.(*TextInput)
		if !ok || len(in.Rules) == 0 {
			return true
		}
		msgs := in.Validate()
		in.Error = ""
		if len(msgs) > 0 {
			in.Error = msgs[0]
			failures[n.ID] = msgs
		}
		return true
	})
	return failures
}
