package ca

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func randomState(t *testing.T, n int, seed uint64) []uint8 {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 0))
	s := make([]uint8, n)
	for i := range s {
		s[i] = uint8(rng.IntN(2))
	}
	return s
}

func TestSingleSeedRule110Step(t *testing.T) {
	rule, err := NewStandardRule(110)
	if err != nil {
		t.Fatal(err)
	}

	state := []uint8{0, 0, 0, 1, 0, 0, 0}
	next := rule.Step(state)
	if want := []uint8{0, 0, 1, 1, 0, 0, 0}; !slices.Equal(next, want) {
		t.Fatalf("rule 110 step gave %v, want %v", next, want)
	}

	d := Derivative(rule, state)
	if want := []uint8{0, 0, 1, 0, 0, 0, 0}; !slices.Equal(d, want) {
		t.Fatalf("rule 110 derivative gave %v, want %v", d, want)
	}
}

func TestEvolutionEqualsStep(t *testing.T) {
	for n := 0; n < 256; n++ {
		rule, err := NewStandardRule(n)
		if err != nil {
			t.Fatal(err)
		}
		s := randomState(t, 64, uint64(n)+1)
		if !slices.Equal(Evolution(rule, s), rule.Step(s)) {
			t.Fatalf("rule %d: E(s) != step(s)", n)
		}
	}
}

func TestTranslationInvariance(t *testing.T) {
	rule, err := NewStandardRule(30)
	if err != nil {
		t.Fatal(err)
	}

	width := 31
	base := randomState(t, width, 7)

	rotate := func(s []uint8, k int) []uint8 {
		out := make([]uint8, len(s))
		for i := range s {
			out[(i+k)%len(s)] = s[i]
		}
		return out
	}

	for _, k := range []int{1, 5, 17} {
		s, shifted := base, rotate(base, k)
		for step := 0; step < 8; step++ {
			if !slices.Equal(rotate(Derivative(rule, s), k), Derivative(rule, shifted)) {
				t.Fatalf("shift %d step %d: derivative not translation invariant", k, step)
			}
			s = rule.Step(s)
			shifted = rule.Step(shifted)
			if !slices.Equal(rotate(s, k), shifted) {
				t.Fatalf("shift %d step %d: state not translation invariant", k, step)
			}
		}
	}
}

func TestGroovy2IsLiteralComposition(t *testing.T) {
	for _, n := range []int{30, 54, 110, 150} {
		rule, err := NewStandardRule(n)
		if err != nil {
			t.Fatal(err)
		}
		s := randomState(t, 48, uint64(n))
		direct := Groovy2(rule, s)
		composed := Groovy(rule, Groovy(rule, s))
		if !slices.Equal(direct, composed) {
			t.Fatalf("rule %d: G2(s) != G(G(s))", n)
		}
	}
}

func TestIdentityRuleCommutes(t *testing.T) {
	// Rule 204 maps every cell to itself, so D and E must commute.
	rule, err := NewStandardRule(204)
	if err != nil {
		t.Fatal(err)
	}
	s := randomState(t, 40, 9)
	for _, v := range Groovy(rule, s) {
		if v != 0 {
			t.Fatalf("identity rule has nonzero commutator: %v", Groovy(rule, s))
		}
	}
}

func TestAwareIgnoreLiftMatchesStandard(t *testing.T) {
	base, err := NewStandardRule(110)
	if err != nil {
		t.Fatal(err)
	}
	aware := LiftToAware(base, Ignore)

	state := randomState(t, 33, 3)
	prev := make([]uint8, len(state))
	awareState := slices.Clone(state)

	for step := 0; step < 12; step++ {
		next := aware.Step(awareState, prev)
		for i := range next {
			prev[i] = awareState[i] ^ next[i]
		}
		awareState = next
		state = base.Step(state)
		if !slices.Equal(awareState, state) {
			t.Fatalf("step %d: aware ignore lift diverged from standard rule", step)
		}
	}
}

func TestAwareStepNilHistory(t *testing.T) {
	rule, err := NewAwareRule(0xB6E5)
	if err != nil {
		t.Fatal(err)
	}
	s := randomState(t, 20, 5)
	zero := make([]uint8, len(s))
	if !slices.Equal(rule.Step(s, nil), rule.Step(s, zero)) {
		t.Fatal("nil history must behave as all-zero history")
	}
}

func TestEvolution2DEqualsStep(t *testing.T) {
	rule := ConwayRule()
	grid, err := NewGrid(12, 9)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(11, 0))
	cells := grid.Cells()
	for i := range cells {
		cells[i] = uint8(rng.IntN(2))
	}

	if !slices.Equal(Evolution2D(rule, grid).Cells(), rule.Step(grid).Cells()) {
		t.Fatal("E2D(g) != step2D(g)")
	}
}
