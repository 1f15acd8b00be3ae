// Package tw parses Tailwind-style utility class strings into partial styles and
// layout hints. Unknown classes are ignored, as Tailwind does.
package tw

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/style"
)

// ParseClasses parses a class string against the current theme.
// Example: "flex-row gap-4 p-4 bg-blue-500 hover:bg-blue-600 md:p-8 w-[33%]"
func ParseClasses(classStr string) ComputedStyles {
	return ParseClassesWith(classStr, CurrentTheme())
}

// ParseClassesWith parses a class string against theme.
func ParseClassesWith(classStr string, theme *Theme) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)

		var partial Properties
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = resolveUtility(parsed.BaseClass, theme)
			if !ok {
				continue
			}
		}

		getTargetProperties(&computed, parsed).Merge(partial)
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility.
// "md:hover:bg-blue-500" → ParsedClass{Breakpoint: MD, State: Hover, BaseClass: "bg-blue-500"}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")
	pc := ParsedClass{BaseClass: parts[len(parts)-1]}

	for _, variant := range parts[:len(parts)-1] {
		switch variant {
		case "hover":
			pc.State = StateHover
		case "focus":
			pc.State = StateFocus
		case "active":
			pc.State = StateActive
		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}
	return pc
}

// extractArbitraryValue parses "w-[33%]" into {Property: "w", Value: "33%"}.
func extractArbitraryValue(class string) *ArbitraryValue {
	i := strings.Index(class, "[")
	if i == -1 {
		return nil
	}
	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:i], "-"),
		Value:    strings.TrimSuffix(class[i+1:], "]"),
	}
}

func parseArbitraryValue(arb *ArbitraryValue) Properties {
	var p Properties
	switch arb.Property {
	case "w":
		p.Width = parseDimension(arb.Value)
	case "h":
		p.Height = parseDimension(arb.Value)
	case "p", "px", "py", "pt", "pr", "pb", "pl":
		if v := parseDimension(arb.Value); v != nil {
			setPadding(&p, arb.Property, *v)
		}
	case "gap":
		p.Gap = parseDimension(arb.Value)
	case "bg":
		p.BackgroundColor = parseColor(arb.Value)
	case "border":
		if c := parseColor(arb.Value); c != nil {
			p.BorderColor = c
		} else {
			p.BorderWidth = parseDimension(arb.Value)
		}
	case "text":
		if c := parseColor(arb.Value); c != nil {
			p.TextColor = c
		} else {
			p.FontSize = parseDimension(arb.Value)
		}
	case "rounded":
		p.BorderRadius = parseDimension(arb.Value)
	case "flex":
		p.Flex = parseFloat(arb.Value)
	}
	return p
}

// resolveUtility maps one utility class to its properties.
func resolveUtility(class string, t *Theme) (Properties, bool) {
	var p Properties

	switch class {
	case "flex", "flex-row":
		p.Direction = ptr("row")
		return p, true
	case "flex-col":
		p.Direction = ptr("column")
		return p, true
	case "grid":
		p.Direction = ptr("grid")
		return p, true
	case "font-bold":
		p.Bold = ptr(true)
		return p, true
	case "font-normal":
		p.Bold = ptr(false)
		return p, true
	case "italic":
		p.Italic = ptr(true)
		return p, true
	case "not-italic":
		p.Italic = ptr(false)
		return p, true
	case "border":
		p.BorderWidth = ptr(float32(1))
		return p, true
	case "shadow-none":
		p.NoShadow = true
		return p, true
	case "overflow-auto", "overflow-scroll", "overflow-y-auto", "overflow-y-scroll":
		p.Scrollable = ptr(true)
		return p, true
	case "overflow-hidden", "overflow-visible":
		p.Scrollable = ptr(false)
		return p, true
	}

	prefix, value, found := splitUtility(class)
	if !found {
		if class == "rounded" {
			p.BorderRadius = ptr(t.Radii[""])
			return p, true
		}
		if class == "shadow" {
			p.Shadow = t.Shadows[""]
			return p, p.Shadow != nil
		}
		return p, false
	}

	switch prefix {
	case "bg":
		if c, ok := t.Colors[value]; ok {
			p.BackgroundColor = &c
			return p, true
		}
	case "text":
		if c, ok := t.Colors[value]; ok {
			p.TextColor = &c
			return p, true
		}
		if size, ok := t.FontSizes[value]; ok {
			p.FontSize = &size
			return p, true
		}
	case "border":
		if c, ok := t.Colors[value]; ok {
			p.BorderColor = &c
			return p, true
		}
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			p.BorderWidth = ptr(float32(n))
			return p, true
		}
	case "rounded":
		if r, ok := t.Radii[value]; ok {
			p.BorderRadius = &r
			return p, true
		}
	case "shadow":
		if s, ok := t.Shadows[value]; ok && s != nil {
			p.Shadow = s
			return p, true
		}
	case "font":
		if fam, ok := t.FontFamilies[value]; ok {
			p.FontFamily = &fam
			return p, true
		}
	case "p", "px", "py", "pt", "pr", "pb", "pl":
		if v, ok := t.Spacing[value]; ok {
			setPadding(&p, prefix, v)
			return p, true
		}
	case "gap":
		if v, ok := t.Spacing[value]; ok {
			p.Gap = &v
			return p, true
		}
	case "w":
		if v, ok := t.Spacing[value]; ok {
			p.Width = &v
			return p, true
		}
	case "h":
		if v, ok := t.Spacing[value]; ok {
			p.Height = &v
			return p, true
		}
	case "flex":
		if v := parseFloat(value); v != nil && *v >= 0 {
			p.Flex = v
			return p, true
		}
	case "justify":
		switch value {
		case "start", "end", "center", "between", "around":
			p.JustifyContent = &value
			return p, true
		}
	case "items":
		switch value {
		case "start", "end", "center", "stretch":
			p.AlignItems = &value
			return p, true
		}
	case "grid-cols":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			p.Direction = ptr("grid")
			p.GridColumns = &n
			return p, true
		}
	case "col-span":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			p.GridColumnSpan = &n
			return p, true
		}
	case "row-span":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			p.GridRowSpan = &n
			return p, true
		}
	case "col-start":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			p.GridColumn = ptr(n - 1)
			return p, true
		}
	case "row-start":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			p.GridRow = ptr(n - 1)
			return p, true
		}
	}
	return p, false
}

// splitUtility splits "bg-blue-500" into "bg" and "blue-500". Grid prefixes that
// contain a dash themselves are matched first.
func splitUtility(class string) (prefix, value string, ok bool) {
	for _, pre := range []string{"grid-cols", "col-span", "row-span", "col-start", "row-start"} {
		if v, found := strings.CutPrefix(class, pre+"-"); found {
			return pre, v, true
		}
	}
	i := strings.Index(class, "-")
	if i <= 0 {
		return "", "", false
	}
	return class[:i], class[i+1:], true
}

func setPadding(p *Properties, prefix string, v float32) {
	switch prefix {
	case "p":
		p.PaddingTop, p.PaddingRight, p.PaddingBottom, p.PaddingLeft = &v, &v, &v, &v
	case "px":
		p.PaddingLeft, p.PaddingRight = &v, &v
	case "py":
		p.PaddingTop, p.PaddingBottom = &v, &v
	case "pt":
		p.PaddingTop = &v
	case "pr":
		p.PaddingRight = &v
	case "pb":
		p.PaddingBottom = &v
	case "pl":
		p.PaddingLeft = &v
	}
}

// parseDimension parses px, %, rem and em values. rem and em are 16px.
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	numStr := value
	var multiplier float32 = 1
	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "%"):
		numStr = strings.TrimSuffix(value, "%")
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16
	case strings.HasSuffix(value, "em"):
		numStr = strings.TrimSuffix(value, "em")
		multiplier = 16
	}

	var num float32
	if _, err := fmt.Sscanf(numStr, "%f", &num); err != nil {
		return nil
	}
	result := num * multiplier
	return &result
}

// parseColor parses a #hex color; anything else yields nil.
func parseColor(value string) *style.Color {
	c, err := style.ParseHex(value)
	if err != nil {
		return nil
	}
	return &c
}

func parseFloat(value string) *float32 {
	var result float32
	if _, err := fmt.Sscanf(value, "%f", &result); err == nil {
		return &result
	}
	return nil
}

// getTargetProperties returns the bucket a parsed class applies to. Responsive variants
// ignore state.
func getTargetProperties(computed *ComputedStyles, parsed ParsedClass) *Properties {
	switch parsed.Breakpoint {
	case BreakpointSM:
		return &computed.SM
	case BreakpointMD:
		return &computed.MD
	case BreakpointLG:
		return &computed.LG
	case BreakpointXL:
		return &computed.XL
	case Breakpoint2XL:
		return &computed.XXL
	}

	switch parsed.State {
	case StateHover:
		return &computed.Hover
	case StateFocus:
		return &computed.Focus
	case StateActive:
		return &computed.Active
	default:
		return &computed.Base
	}
}

func ptr[T any](v T) *T {
	return &v
}

func vecY(y float32) geom.Vec2 {
	return geom.V(0, y)
}
