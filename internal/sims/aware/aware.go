package aware

import (
	"strconv"

	"groovy-ca/internal/core"
	"groovy-ca/pkg/ca"
)

// Config holds parameters for the aware automaton. The rule is normally a
// base Wolfram rule plus a memory behavior; a raw 16-bit rule number can be
// supplied instead to bypass the lift.
type Config struct {
	Width    int
	Height   int
	BaseRule int
	Behavior ca.MemoryBehavior
	RawRule  int
	Random   bool
	Fill     float64
}

// DefaultConfig returns the default configuration: rule 110 lifted with the
// Stabilize behavior.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, BaseRule: 110, Behavior: ca.Stabilize, RawRule: -1, Fill: 0.5}
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
			c.BaseRule = parsed
		}
	}
	if v, ok := cfg["behavior"]; ok {
		if parsed, err := ca.ParseMemoryBehavior(v); err == nil {
			c.Behavior = parsed
		}
	}
	if v, ok := cfg["raw"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 65535 {
			c.RawRule = parsed
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

// Aware runs a history-dependent 1D automaton: each cell's transition also
// reads whether it changed on the previous step. The derivative history is
// threaded explicitly between steps, never stored in the cells themselves.
type Aware struct {
	w, h   int
	rule   ca.AwareRule
	random bool
	fill   float64
	state  []uint8
	prev   []uint8
	cur    []uint8
}

// New creates the automaton from a validated configuration.
func New(cfg Config) (*Aware, error) {
	var rule ca.AwareRule
	if cfg.RawRule >= 0 {
		r, err := ca.NewAwareRule(cfg.RawRule)
		if err != nil {
			return nil, err
		}
		rule = r
	} else {
		base, err := ca.NewStandardRule(cfg.BaseRule)
		if err != nil {
			return nil, err
		}
		rule = ca.LiftToAware(base, cfg.Behavior)
	}
	return &Aware{
		w:      cfg.Width,
		h:      cfg.Height,
		rule:   rule,
		random: cfg.Random,
		fill:   cfg.Fill,
		state:  make([]uint8, cfg.Width),
		prev:   make([]uint8, cfg.Width),
		cur:    make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (a *Aware) Name() string { return "aware" }

// Size returns the display grid dimensions.
func (a *Aware) Size() core.Size { return core.Size{W: a.w, H: a.h} }

// Cells exposes the display buffer.
func (a *Aware) Cells() []uint8 { return a.cur }

// State exposes the current 1D configuration.
func (a *Aware) State() []uint8 { return a.state }

// Rule returns the decoded aware rule.
func (a *Aware) Rule() ca.AwareRule { return a.rule }

// Reset reseeds the state and clears the change history, so the first step
// runs with "no history" (all changed bits zero).
func (a *Aware) Reset(seed int64) {
	for i := range a.cur {
		a.cur[i] = 0
	}
	for i := range a.state {
		a.state[i] = 0
		a.prev[i] = 0
	}
	if a.random {
		core.NewRNG(seed).FillBinaryDensity(a.state, a.fill)
	} else {
		a.state[a.w/2] = 1
	}
	copy(a.cur[:a.w], a.state)
}

// Step advances the automaton and carries the fresh derivative forward as
// the next step's history.
func (a *Aware) Step() {
	next := a.rule.Step(a.state, a.prev)
	for i := range next {
		a.prev[i] = a.state[i] ^ next[i]
	}
	a.state = next
	copy(a.cur[a.w:], a.cur[:a.w*(a.h-1)])
	copy(a.cur[:a.w], a.state)
}

// Parameters describes the effective tunables.
func (a *Aware) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "raw", Label: "Aware rule", Value: strconv.Itoa(a.rule.Number()), Description: "16-bit aware rule number"},
		{Key: "random", Label: "Random init", Value: strconv.FormatBool(a.random), Description: "random fill instead of single seed"},
	}}
}

func init() {
	core.Register("aware", func(cfg map[string]string) core.Sim {
		sim, err := New(FromMap(cfg))
		if err != nil {
			sim, _ = New(DefaultConfig())
		}
		return sim
	})
}
