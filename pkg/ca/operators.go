package ca

// xorCells returns the per-cell XOR of two equal-length buffers.
func xorCells(a, b []uint8) []uint8 {
	out := make([]uint8, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Derivative marks the cells whose value differs between s and its
// successor: D(s) = s XOR step(s).
func Derivative(r StandardRule, s []uint8) []uint8 {
	return xorCells(s, r.Step(s))
}

// Evolution reconstructs the next state from the current one and its own
// change field: E(s) = s XOR D(s). Numerically identical to Step; the
// indirection exists so the commutator below is a genuine two-path
// composition.
func Evolution(r StandardRule, s []uint8) []uint8 {
	return xorCells(s, Derivative(r, s))
}

// Groovy measures where derivative and evolution fail to commute:
// G(s) = D(E(s)) XOR E(D(s)). An all-zero result means the two operators
// commute at s.
func Groovy(r StandardRule, s []uint8) []uint8 {
	de := Derivative(r, Evolution(r, s))
	ed := Evolution(r, Derivative(r, s))
	return xorCells(de, ed)
}

// Groovy2 applies the commutator to its own output under the same rule:
// G²(s) = G(G(s)).
func Groovy2(r StandardRule, s []uint8) []uint8 {
	return Groovy(r, Groovy(r, s))
}

// DerivativeAware is the change field of the aware step taken against the
// supplied history: D(s) = s XOR step(s, prev).
func DerivativeAware(r AwareRule, s, prev []uint8) []uint8 {
	return xorCells(s, r.Step(s, prev))
}

// EvolutionAware reconstructs the aware successor via its change field.
func EvolutionAware(r AwareRule, s, prev []uint8) []uint8 {
	return xorCells(s, DerivativeAware(r, s, prev))
}

// GroovyAware computes the commutator for an aware rule. Both composition
// paths consult the same prev history rather than deriving an independent
// history per path, so this is an approximation of the standard commutator,
// not an exact generalization. An exact two-path formulation remains open.
func GroovyAware(r AwareRule, s, prev []uint8) []uint8 {
	de := DerivativeAware(r, EvolutionAware(r, s, prev), prev)
	ed := EvolutionAware(r, DerivativeAware(r, s, prev), prev)
	return xorCells(de, ed)
}

func xorGrids(a, b Grid) Grid {
	return Grid{W: a.W, H: a.H, cells: xorCells(a.cells, b.cells)}
}

// Derivative2D marks the grid cells that change on the next generation.
func Derivative2D(r LifeRule, g Grid) Grid {
	return xorGrids(g, r.Step(g))
}

// Evolution2D is the 2D analogue of Evolution; identical to Step.
func Evolution2D(r LifeRule, g Grid) Grid {
	return xorGrids(g, Derivative2D(r, g))
}

// Groovy2D is the 2D analogue of the commutator.
func Groovy2D(r LifeRule, g Grid) Grid {
	de := Derivative2D(r, Evolution2D(r, g))
	ed := Evolution2D(r, Derivative2D(r, g))
	return xorGrids(de, ed)
}
