package ca

import "fmt"

// Run captures a bounded 1D simulation: every state visited plus the derived
// operator fields per step and their mean densities. States has length
// steps+1; the per-step histories have length steps. Aware runs leave
// Groovies2 nil and its mean at zero.
type Run struct {
	States      [][]uint8
	Derivatives [][]uint8
	Groovies    [][]uint8
	Groovies2   [][]uint8

	MeanDerivativeDensity float64
	MeanGroovyDensity     float64
	MeanGroovy2Density    float64
}

// RunStandard simulates a standard rule for the given number of steps,
// collecting D, G and G² alongside the state sequence. The mean densities
// are arithmetic means of the per-step densities.
func RunStandard(rule StandardRule, initial []uint8, steps int) (*Run, error) {
	state, err := NewState(initial)
	if err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	run := &Run{
		States:      make([][]uint8, 0, steps+1),
		Derivatives: make([][]uint8, 0, steps),
		Groovies:    make([][]uint8, 0, steps),
		Groovies2:   make([][]uint8, 0, steps),
	}
	run.States = append(run.States, state)

	var dSum, gSum, g2Sum float64
	for t := 0; t < steps; t++ {
		d := Derivative(rule, state)
		g := Groovy(rule, state)
		g2 := Groovy2(rule, state)

		run.Derivatives = append(run.Derivatives, d)
		run.Groovies = append(run.Groovies, g)
		run.Groovies2 = append(run.Groovies2, g2)
		dSum += Density(d)
		gSum += Density(g)
		g2Sum += Density(g2)

		state = xorCells(state, d)
		run.States = append(run.States, state)
	}

	run.MeanDerivativeDensity = dSum / float64(steps)
	run.MeanGroovyDensity = gSum / float64(steps)
	run.MeanGroovy2Density = g2Sum / float64(steps)
	return run, nil
}

// RunAware simulates an aware rule, threading the derivative history
// explicitly: the history starts all-zero (no history) and after each step
// the freshly computed derivative becomes the next step's history. The
// per-step Groovy field uses the shared-history approximation documented on
// GroovyAware.
func RunAware(rule AwareRule, initial []uint8, steps int) (*Run, error) {
	state, err := NewState(initial)
	if err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	run := &Run{
		States:      make([][]uint8, 0, steps+1),
		Derivatives: make([][]uint8, 0, steps),
		Groovies:    make([][]uint8, 0, steps),
	}
	run.States = append(run.States, state)

	prev := make([]uint8, len(state))
	var dSum, gSum float64
	for t := 0; t < steps; t++ {
		d := DerivativeAware(rule, state, prev)
		g := GroovyAware(rule, state, prev)

		run.Derivatives = append(run.Derivatives, d)
		run.Groovies = append(run.Groovies, g)
		dSum += Density(d)
		gSum += Density(g)

		state = xorCells(state, d)
		run.States = append(run.States, state)
		prev = d
	}

	run.MeanDerivativeDensity = dSum / float64(steps)
	run.MeanGroovyDensity = gSum / float64(steps)
	return run, nil
}

// LifeRun captures a bounded 2D simulation with its derived fields. Grids
// has length steps+1; Derivatives and Groovies have length steps. There is
// no 2D second-order commutator.
type LifeRun struct {
	Grids       []Grid
	Derivatives []Grid
	Groovies    []Grid

	MeanDerivativeDensity float64
	MeanGroovyDensity     float64
}

// RunLife simulates a Life-like rule on a toroidal grid.
func RunLife(rule LifeRule, initial Grid, steps int) (*LifeRun, error) {
	if err := initial.validate(); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	grid := initial.Clone()
	run := &LifeRun{
		Grids:       make([]Grid, 0, steps+1),
		Derivatives: make([]Grid, 0, steps),
		Groovies:    make([]Grid, 0, steps),
	}
	run.Grids = append(run.Grids, grid)

	var dSum, gSum float64
	for t := 0; t < steps; t++ {
		d := Derivative2D(rule, grid)
		g := Groovy2D(rule, grid)

		run.Derivatives = append(run.Derivatives, d)
		run.Groovies = append(run.Groovies, g)
		dSum += d.Density()
		gSum += g.Density()

		grid = xorGrids(grid, d)
		run.Grids = append(run.Grids, grid)
	}

	run.MeanDerivativeDensity = dSum / float64(steps)
	run.MeanGroovyDensity = gSum / float64(steps)
	return run, nil
}
