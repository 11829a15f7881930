package ca

import (
	"fmt"
	"strings"
)

// MemoryBehavior selects how a standard rule responds to the "changed last
// step" bit when lifted into an aware rule.
type MemoryBehavior int

const (
	// Ignore keeps the base rule output regardless of history.
	Ignore MemoryBehavior = iota
	// Stabilize freezes a cell at its current value after it changed.
	Stabilize
	// Invert flips the base rule output after a change.
	Invert
	// Excite forces a cell active after a change.
	Excite
)

// String returns the lowercase behavior name.
func (b MemoryBehavior) String() string {
	switch b {
	case Stabilize:
		return "stabilize"
	case Invert:
		return "invert"
	case Excite:
		return "excite"
	default:
		return "ignore"
	}
}

// ParseMemoryBehavior converts a behavior name into its enum value.
func ParseMemoryBehavior(s string) (MemoryBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return Ignore, nil
	case "stabilize":
		return Stabilize, nil
	case "invert":
		return Invert, nil
	case "excite":
		return Excite, nil
	}
	return Ignore, fmt.Errorf("unknown memory behavior %q", s)
}

// StandardRule is a Wolfram elementary rule decoded into its 8-entry
// neighborhood table. The output for neighborhood (left, center, right) is
// bit 4*left+2*center+right of the rule number, LSB first, so the classical
// numbering (rule 110, rule 30, ...) is preserved.
type StandardRule struct {
	n     uint8
	table [8]uint8
}

// NewStandardRule decodes rule number n. Numbers outside [0,255] are
// rejected rather than clamped.
func NewStandardRule(n int) (StandardRule, error) {
	if n < 0 || n > 255 {
		return StandardRule{}, fmt.Errorf("standard rule %d outside [0,255]", n)
	}
	r := StandardRule{n: uint8(n)}
	for idx := range r.table {
		r.table[idx] = uint8(n>>idx) & 1
	}
	return r, nil
}

// Number returns the rule number.
func (r StandardRule) Number() int { return int(r.n) }

// Output returns the successor value for neighborhood (left, center, right).
func (r StandardRule) Output(left, center, right uint8) uint8 {
	return r.table[left<<2|center<<1|right]
}

// AwareRule extends the elementary scheme with a fourth key bit recording
// whether the cell changed on the previous step. The output for
// (left, center, right, changed) is bit 8*left+4*center+2*right+changed of
// the rule number, LSB first.
type AwareRule struct {
	n     uint16
	table [16]uint8
}

// NewAwareRule decodes rule number n. Numbers outside [0,65535] are
// rejected.
func NewAwareRule(n int) (AwareRule, error) {
	if n < 0 || n > 65535 {
		return AwareRule{}, fmt.Errorf("aware rule %d outside [0,65535]", n)
	}
	r := AwareRule{n: uint16(n)}
	for idx := range r.table {
		r.table[idx] = uint8(n>>idx) & 1
	}
	return r, nil
}

// Number returns the rule number.
func (r AwareRule) Number() int { return int(r.n) }

// Output returns the successor value for (left, center, right, changed).
func (r AwareRule) Output(left, center, right, changed uint8) uint8 {
	return r.table[left<<3|center<<2|right<<1|changed]
}

// LiftToAware derives a 16-entry aware rule from a standard rule. The
// changed=0 entries copy the base output; the changed=1 entries follow the
// behavior: Ignore keeps the base output r, Stabilize emits the center bit,
// Invert emits 1-r and Excite emits 1. Every output bit is determined.
func LiftToAware(base StandardRule, behavior MemoryBehavior) AwareRule {
	var n int
	for idx := 0; idx < 8; idx++ {
		out := base.table[idx]
		center := uint8(idx>>1) & 1

		var onChange uint8
		switch behavior {
		case Stabilize:
			onChange = center
		case Invert:
			onChange = 1 - out
		case Excite:
			onChange = 1
		default:
			onChange = out
		}

		if out == 1 {
			n |= 1 << (2 * idx)
		}
		if onChange == 1 {
			n |= 1 << (2*idx + 1)
		}
	}
	lifted, err := NewAwareRule(n)
	if err != nil {
		// n is assembled from 16 bits, so this cannot happen.
		panic(err)
	}
	return lifted
}

// LifeRule is a Life-like 2D rule given by birth and survival neighbor
// counts over the Moore neighborhood. Conway's Game of Life is B3/S23.
type LifeRule struct {
	birth   [9]bool
	survive [9]bool
}

// NewLifeRule builds a rule from birth and survival count sets. Counts
// outside [0,8] are rejected; duplicates collapse.
func NewLifeRule(birth, survive []int) (LifeRule, error) {
	var r LifeRule
	for _, n := range birth {
		if n < 0 || n > 8 {
			return LifeRule{}, fmt.Errorf("birth count %d outside [0,8]", n)
		}
		r.birth[n] = true
	}
	for _, n := range survive {
		if n < 0 || n > 8 {
			return LifeRule{}, fmt.Errorf("survival count %d outside [0,8]", n)
		}
		r.survive[n] = true
	}
	return r, nil
}

// ConwayRule returns B3/S23.
func ConwayRule() LifeRule {
	r, err := NewLifeRule([]int{3}, []int{2, 3})
	if err != nil {
		panic(err)
	}
	return r
}

// Born reports whether a dead cell with the given live-neighbor count
// becomes alive.
func (r LifeRule) Born(neighbors int) bool {
	return neighbors >= 0 && neighbors <= 8 && r.birth[neighbors]
}

// Survives reports whether a live cell with the given live-neighbor count
// stays alive.
func (r LifeRule) Survives(neighbors int) bool {
	return neighbors >= 0 && neighbors <= 8 && r.survive[neighbors]
}

// Birth returns the birth counts in ascending order.
func (r LifeRule) Birth() []int { return setToSlice(r.birth) }

// Survive returns the survival counts in ascending order.
func (r LifeRule) Survive() []int { return setToSlice(r.survive) }

func setToSlice(set [9]bool) []int {
	out := make([]int, 0, 9)
	for n, ok := range set {
		if ok {
			out = append(out, n)
		}
	}
	return out
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r LifeRule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for _, n := range r.Birth() {
		fmt.Fprintf(&sb, "%d", n)
	}
	sb.WriteString("/S")
	for _, n := range r.Survive() {
		fmt.Fprintf(&sb, "%d", n)
	}
	return sb.String()
}
