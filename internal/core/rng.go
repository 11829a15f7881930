package core

import "math/rand/v2"

// RNG wraps math/rand/v2 for deterministic seeding of initial
// configurations. Randomness lives here, outside the deterministic operator
// core, so runs stay reproducible from (seed, rule, steps).
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills the buffer with 0/1 values.
func (r *RNG) FillBinary(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.IntN(2))
	}
}

// FillBinaryDensity fills the buffer with 1s at approximately the given
// density in [0,1].
func (r *RNG) FillBinaryDensity(buf []uint8, density float64) {
	for i := range buf {
		if r.r.Float64() < density {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
