package ca

import (
	"slices"
	"testing"
)

func TestRule110Table(t *testing.T) {
	rule, err := NewStandardRule(110)
	if err != nil {
		t.Fatal(err)
	}

	expected := map[[3]uint8]uint8{
		{0, 0, 0}: 0,
		{0, 0, 1}: 1,
		{0, 1, 0}: 1,
		{0, 1, 1}: 1,
		{1, 0, 0}: 0,
		{1, 0, 1}: 1,
		{1, 1, 0}: 1,
		{1, 1, 1}: 0,
	}
	for pattern, want := range expected {
		got := rule.Output(pattern[0], pattern[1], pattern[2])
		if got != want {
			t.Fatalf("rule 110 neighborhood %v: got %d, want %d", pattern, got, want)
		}
	}
}

func TestStandardRuleRangeRejected(t *testing.T) {
	for _, n := range []int{-1, 256, 1000} {
		if _, err := NewStandardRule(n); err == nil {
			t.Fatalf("NewStandardRule(%d) accepted an out-of-range rule", n)
		}
	}
	if _, err := NewStandardRule(0); err != nil {
		t.Fatalf("NewStandardRule(0) rejected: %v", err)
	}
	if _, err := NewStandardRule(255); err != nil {
		t.Fatalf("NewStandardRule(255) rejected: %v", err)
	}
}

func TestAwareRuleRangeRejected(t *testing.T) {
	for _, n := range []int{-1, 65536} {
		if _, err := NewAwareRule(n); err == nil {
			t.Fatalf("NewAwareRule(%d) accepted an out-of-range rule", n)
		}
	}
	if _, err := NewAwareRule(65535); err != nil {
		t.Fatalf("NewAwareRule(65535) rejected: %v", err)
	}
}

func TestLiftIgnorePreservesOutputs(t *testing.T) {
	for _, n := range []int{0, 30, 54, 90, 110, 150, 255} {
		base, err := NewStandardRule(n)
		if err != nil {
			t.Fatal(err)
		}
		aware := LiftToAware(base, Ignore)
		for l := uint8(0); l <= 1; l++ {
			for c := uint8(0); c <= 1; c++ {
				for r := uint8(0); r <= 1; r++ {
					want := base.Output(l, c, r)
					if got := aware.Output(l, c, r, 0); got != want {
						t.Fatalf("rule %d lift (%d%d%d,0): got %d, want %d", n, l, c, r, got, want)
					}
					if got := aware.Output(l, c, r, 1); got != want {
						t.Fatalf("rule %d lift (%d%d%d,1): got %d, want %d", n, l, c, r, got, want)
					}
				}
			}
		}
	}
}

func TestLiftBehaviors(t *testing.T) {
	base, err := NewStandardRule(110)
	if err != nil {
		t.Fatal(err)
	}

	stabilize := LiftToAware(base, Stabilize)
	invert := LiftToAware(base, Invert)
	excite := LiftToAware(base, Excite)

	for l := uint8(0); l <= 1; l++ {
		for c := uint8(0); c <= 1; c++ {
			for r := uint8(0); r <= 1; r++ {
				out := base.Output(l, c, r)

				for _, lifted := range []AwareRule{stabilize, invert, excite} {
					if got := lifted.Output(l, c, r, 0); got != out {
						t.Fatalf("lift changed=0 (%d%d%d): got %d, want base %d", l, c, r, got, out)
					}
				}
				if got := stabilize.Output(l, c, r, 1); got != c {
					t.Fatalf("stabilize (%d%d%d,1): got %d, want center %d", l, c, r, got, c)
				}
				if got := invert.Output(l, c, r, 1); got != 1-out {
					t.Fatalf("invert (%d%d%d,1): got %d, want %d", l, c, r, got, 1-out)
				}
				if got := excite.Output(l, c, r, 1); got != 1 {
					t.Fatalf("excite (%d%d%d,1): got %d, want 1", l, c, r, got)
				}
			}
		}
	}
}

func TestLifeRuleValidation(t *testing.T) {
	if _, err := NewLifeRule([]int{9}, []int{2}); err == nil {
		t.Fatal("birth count 9 accepted")
	}
	if _, err := NewLifeRule([]int{3}, []int{-1}); err == nil {
		t.Fatal("survival count -1 accepted")
	}

	rule, err := NewLifeRule([]int{3, 3}, []int{3, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := rule.Birth(); !slices.Equal(got, []int{3}) {
		t.Fatalf("birth set %v, want [3]", got)
	}
	if got := rule.Survive(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("survival set %v, want [2 3]", got)
	}
	if got := rule.String(); got != "B3/S23" {
		t.Fatalf("rule string %q, want B3/S23", got)
	}
}

func TestParseMemoryBehavior(t *testing.T) {
	for _, b := range []MemoryBehavior{Ignore, Stabilize, Invert, Excite} {
		parsed, err := ParseMemoryBehavior(b.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != b {
			t.Fatalf("round trip of %v gave %v", b, parsed)
		}
	}
	if _, err := ParseMemoryBehavior("groove"); err == nil {
		t.Fatal("unknown behavior accepted")
	}
}
