package core

// Parameter describes a single tunable a simulation was configured with.
type Parameter struct {
	Key         string
	Label       string
	Value       string
	Description string
}

// ParameterSnapshot captures the effective tunables of a sim for reporting.
type ParameterSnapshot struct {
	Params []Parameter
}

// ParameterReporter is implemented by sims that can describe their tunables.
type ParameterReporter interface {
	Parameters() ParameterSnapshot
}
