package groovy

import (
	"slices"
	"testing"

	"groovy-ca/pkg/ca"
)

func TestDerivativeFieldRow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 7
	cfg.Height = 3
	cfg.Field = FieldDerivative
	sim, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)
	sim.Step()

	rule, err := ca.NewStandardRule(cfg.Rule)
	if err != nil {
		t.Fatal(err)
	}
	want := ca.Derivative(rule, []uint8{0, 0, 0, 1, 0, 0, 0})
	if got := sim.Cells()[:7]; !slices.Equal(got, want) {
		t.Fatalf("derivative row %v, want %v", got, want)
	}
}

func TestFieldSelectionFromMap(t *testing.T) {
	c := FromMap(map[string]string{"field": "GROOVY2", "rule": "30"})
	if c.Field != FieldGroovy2 {
		t.Fatalf("field %q, want %q", c.Field, FieldGroovy2)
	}
	if c.Rule != 30 {
		t.Fatalf("rule %d, want 30", c.Rule)
	}

	c = FromMap(map[string]string{"field": "bogus"})
	if c.Field != FieldGroovy {
		t.Fatalf("invalid field must keep default, got %q", c.Field)
	}
}
