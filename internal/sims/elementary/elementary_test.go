package elementary

import (
	"slices"
	"testing"
)

func TestSingleSeedScroll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 7
	cfg.Height = 3
	sim, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)

	if want := []uint8{0, 0, 0, 1, 0, 0, 0}; !slices.Equal(sim.State(), want) {
		t.Fatalf("initial state %v, want %v", sim.State(), want)
	}

	sim.Step()
	cells := sim.Cells()
	if want := []uint8{0, 0, 1, 1, 0, 0, 0}; !slices.Equal(cells[:7], want) {
		t.Fatalf("top row after step %v, want %v", cells[:7], want)
	}
	if want := []uint8{0, 0, 0, 1, 0, 0, 0}; !slices.Equal(cells[7:14], want) {
		t.Fatalf("history row %v, want %v", cells[7:14], want)
	}
}

func TestRandomResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 8
	cfg.Random = true

	a, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	a.Reset(7)
	b.Reset(7)
	if !slices.Equal(a.State(), b.State()) {
		t.Fatal("same seed produced different states")
	}
}

func TestInvalidRuleRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = 300
	if _, err := New(cfg); err == nil {
		t.Fatal("rule 300 accepted")
	}
}
