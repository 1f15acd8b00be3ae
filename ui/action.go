package ui

import (
	"strconv"
	"strings"
)

// Verbs of structured action strings.
const (
	VerbRow    = "row"
	VerbHeader = "header"
	VerbToggle = "toggle"
	VerbSelect = "select"
	VerbTab    = "tab"
	VerbOption = "option"
	VerbDrag   = "drag"
)

// Action is a parsed action string. Plain widgets produce an Action with only ID
// set; composite widgets produce "{id}:{verb}:{param}".
type Action struct {
	ID    string
	Verb  string
	Param string
}

// ParseAction splits s at its first two colons. Anything after the second colon is
// the parameter, colons included.
func ParseAction(s string) Action {
	id, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Action{ID: s}
	}
	verb, param, _ := strings.Cut(rest, ":")
	return Action{ID: id, Verb: verb, Param: param}
}

func (a Action) String() string {
	if a.Verb == "" {
		return a.ID
	}
	return a.ID + ":" + a.Verb + ":" + a.Param
}

// Index parses Param as a row, column, tab or option index.
func (a Action) Index() (int, bool) {
	i, err := strconv.Atoi(a.Param)
	return i, err == nil
}

// Value parses Param as a float, as carried by drag actions.
func (a Action) Value() (float32, bool) {
	f, err := strconv.ParseFloat(a.Param, 32)
	return float32(f), err == nil
}

func action(id, verb string, param int) string {
	return Action{ID: id, Verb: verb, Param: strconv.Itoa(param)}.String()
}

func formatFraction(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 4, 32)
}
