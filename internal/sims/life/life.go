package life

import (
	"fmt"
	"strconv"

	"groovy-ca/internal/core"
	"groovy-ca/pkg/ca"
)

// Config holds parameters for the Life-like simulation. Birth and Survive
// are digit strings, e.g. "3" and "23" for Conway's rule.
type Config struct {
	Width   int
	Height  int
	Birth   string
	Survive string
	Fill    float64
}

// DefaultConfig returns B3/S23 on a 256x256 torus.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Birth: "3", Survive: "23", Fill: 0.3}
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
	if v, ok := cfg["birth"]; ok {
		c.Birth = v
	}
	if v, ok := cfg["survive"]; ok {
		c.Survive = v
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Fill = parsed
		}
	}
	return c
}

// ParseDigits converts a digit string into neighbor counts, dropping
// anything outside 0..8. Filtering is a convenience of this UI boundary;
// the core rejects out-of-range counts outright.
func ParseDigits(s string) []int {
	var out []int
	for _, r := range s {
		if r >= '0' && r <= '8' {
			out = append(out, int(r-'0'))
		}
	}
	return out
}

// Life runs a Life-like rule with toroidal wrapping.
type Life struct {
	w, h int
	rule ca.LifeRule
	fill float64
	grid ca.Grid
}

// New creates the simulation from a validated configuration.
func New(cfg Config) (*Life, error) {
	rule, err := ca.NewLifeRule(ParseDigits(cfg.Birth), ParseDigits(cfg.Survive))
	if err != nil {
		return nil, err
	}
	grid, err := ca.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Life{w: cfg.Width, h: cfg.Height, rule: rule, fill: cfg.Fill, grid: grid}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Grid exposes the current grid.
func (l *Life) Grid() ca.Grid { return l.grid }

// Rule returns the Life-like rule in effect.
func (l *Life) Rule() ca.LifeRule { return l.rule }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	core.NewRNG(seed).FillBinaryDensity(l.grid.Cells(), l.fill)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid = l.rule.Step(l.grid)
}

// Parameters describes the effective tunables.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "rule", Label: "Rule", Value: l.rule.String(), Description: "birth/survival neighbor counts"},
		{Key: "fill", Label: "Fill density", Value: fmt.Sprintf("%.2f", l.fill), Description: "live fraction at reset"},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		sim, err := New(FromMap(cfg))
		if err != nil {
			sim, _ = New(DefaultConfig())
		}
		return sim
	})
}
