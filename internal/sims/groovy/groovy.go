package groovy

import (
	"strconv"
	"strings"

	"groovy-ca/internal/core"
	"groovy-ca/pkg/ca"
)

// Field selects which derived array the sim displays per step.
type Field string

const (
	FieldState      Field = "state"
	FieldDerivative Field = "derivative"
	FieldGroovy     Field = "groovy"
	FieldGroovy2    Field = "groovy2"
)

// Config holds parameters for the commutator visualization.
type Config struct {
	Width  int
	Height int
	Rule   int
	Field  Field
	Random bool
	Fill   float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110, Field: FieldGroovy, Fill: 0.5}
}

// FromMap populates a Config from a string map. Out-of-range values keep
// the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["field"]; ok {
		switch Field(strings.ToLower(v)) {
		case FieldState, FieldDerivative, FieldGroovy, FieldGroovy2:
			c.Field = Field(strings.ToLower(v))
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Fill = parsed
		}
	}
	return c
}

// Groovy scrolls one derived field of a standard rule per step: the
// derivative D, the commutator G, its second-order form G², or the plain
// state for reference.
type Groovy struct {
	w, h   int
	rule   ca.StandardRule
	field  Field
	random bool
	fill   float64
	state  []uint8
	cur    []uint8
}

// New creates the visualization from a validated configuration.
func New(cfg Config) (*Groovy, error) {
	rule, err := ca.NewStandardRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	return &Groovy{
		w:      cfg.Width,
		h:      cfg.Height,
		rule:   rule,
		field:  cfg.Field,
		random: cfg.Random,
		fill:   cfg.Fill,
		state:  make([]uint8, cfg.Width),
		cur:    make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (g *Groovy) Name() string { return "groovy" }

// Size returns the display grid dimensions.
func (g *Groovy) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the display buffer.
func (g *Groovy) Cells() []uint8 { return g.cur }

// Reset clears the display and reseeds the underlying state.
func (g *Groovy) Reset(seed int64) {
	for i := range g.cur {
		g.cur[i] = 0
	}
	for i := range g.state {
		g.state[i] = 0
	}
	if g.random {
		core.NewRNG(seed).FillBinaryDensity(g.state, g.fill)
	} else {
		g.state[g.w/2] = 1
	}
}

// Step computes the selected field for the current state, scrolls it into
// the display, then advances the state.
func (g *Groovy) Step() {
	var row []uint8
	switch g.field {
	case FieldDerivative:
		row = ca.Derivative(g.rule, g.state)
	case FieldGroovy:
		row = ca.Groovy(g.rule, g.state)
	case FieldGroovy2:
		row = ca.Groovy2(g.rule, g.state)
	default:
		row = g.state
	}
	copy(g.cur[g.w:], g.cur[:g.w*(g.h-1)])
	copy(g.cur[:g.w], row)
	g.state = g.rule.Step(g.state)
}

// Parameters describes the effective tunables.
func (g *Groovy) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "rule", Label: "Rule", Value: strconv.Itoa(g.rule.Number()), Description: "Wolfram rule number"},
		{Key: "field", Label: "Field", Value: string(g.field), Description: "displayed array: state, derivative, groovy or groovy2"},
	}}
}

func init() {
	core.Register("groovy", func(cfg map[string]string) core.Sim {
		sim, err := New(FromMap(cfg))
		if err != nil {
			sim, _ = New(DefaultConfig())
		}
		return sim
	})
}
