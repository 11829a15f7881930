package elementary

import (
	"fmt"
	"strconv"

	"groovy-ca/internal/core"
	"groovy-ca/pkg/ca"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   int
	Random bool
	Fill   float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110, Fill: 0.5}
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

// Elementary runs a 1D Wolfram rule and projects its history vertically:
// the current state occupies the top row and older rows scroll down.
type Elementary struct {
	w, h   int
	rule   ca.StandardRule
	random bool
	fill   float64
	state  []uint8
	cur    []uint8
}

// New creates the automaton from a validated configuration.
func New(cfg Config) (*Elementary, error) {
	rule, err := ca.NewStandardRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	return &Elementary{
		w:      cfg.Width,
		h:      cfg.Height,
		rule:   rule,
		random: cfg.Random,
		fill:   cfg.Fill,
		state:  make([]uint8, cfg.Width),
		cur:    make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the display grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the display buffer.
func (e *Elementary) Cells() []uint8 { return e.cur }

// State exposes the current 1D configuration (the top row).
func (e *Elementary) State() []uint8 { return e.state }

// Rule returns the decoded rule.
func (e *Elementary) Rule() ca.StandardRule { return e.rule }

// Reset clears the display and reseeds the state: a single centered live
// cell by default, or a random fill when configured.
func (e *Elementary) Reset(seed int64) {
	for i := range e.cur {
		e.cur[i] = 0
	}
	for i := range e.state {
		e.state[i] = 0
	}
	if e.random {
		core.NewRNG(seed).FillBinaryDensity(e.state, e.fill)
	} else {
		e.state[e.w/2] = 1
	}
	copy(e.cur[:e.w], e.state)
}

// Step advances the state and scrolls the history downwards.
func (e *Elementary) Step() {
	e.state = e.rule.Step(e.state)
	copy(e.cur[e.w:], e.cur[:e.w*(e.h-1)])
	copy(e.cur[:e.w], e.state)
}

// Parameters describes the effective tunables.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "rule", Label: "Rule", Value: strconv.Itoa(e.rule.Number()), Description: "Wolfram rule number"},
		{Key: "random", Label: "Random init", Value: strconv.FormatBool(e.random), Description: "random fill instead of single seed"},
		{Key: "fill", Label: "Fill density", Value: fmt.Sprintf("%.2f", e.fill), Description: "live fraction for random init"},
	}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		sim, err := New(FromMap(cfg))
		if err != nil {
			sim, _ = New(DefaultConfig())
		}
		return sim
	})
}
