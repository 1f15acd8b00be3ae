package tw

// BreakpointConfig holds the pixel thresholds for responsive breakpoints.
// Styles apply at the breakpoint width and above.
type BreakpointConfig struct {
	SM  float32 `toml:"sm"`
	MD  float32 `toml:"md"`
	LG  float32 `toml:"lg"`
	XL  float32 `toml:"xl"`
	XXL float32 `toml:"2xl"`
}

// DefaultBreakpoints returns the standard Tailwind breakpoint values.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{SM: 640, MD: 768, LG: 1024, XL: 1280, XXL: 1536}
}

// ActiveBreakpoint returns the highest breakpoint width satisfies.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	switch {
	case width >= c.XXL:
		return Breakpoint2XL
	case width >= c.XL:
		return BreakpointXL
	case width >= c.LG:
		return BreakpointLG
	case width >= c.MD:
		return BreakpointMD
	case width >= c.SM:
		return BreakpointSM
	}
	return BreakpointBase
}

// ResolveForWidth merges base → sm → md → lg → xl → 2xl up to the active breakpoint.
func (cs *ComputedStyles) ResolveForWidth(width float32, config BreakpointConfig) Properties {
	result := cs.Base
	active := config.ActiveBreakpoint(width)
	for bp, props := range []*Properties{&cs.SM, &cs.MD, &cs.LG, &cs.XL, &cs.XXL} {
		if Breakpoint(bp+1) > active {
			break
		}
		result.Merge(*props)
	}
	return result
}

// StateOverlay returns the properties that apply only while the widget is in state.
func (cs *ComputedStyles) StateOverlay(state State) Properties {
	switch state {
	case StateHover:
		return cs.Hover
	case StateFocus:
		return cs.Focus
	case StateActive:
		return cs.Active
	}
	return Properties{}
}
