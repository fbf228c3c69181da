package core

// Parameter is one labeled value shown on the HUD panel.
type Parameter struct {
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the displayed state of the active sea state.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}
