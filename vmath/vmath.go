package vmath

import (
	"math/bits"
)

// Integer-only helpers; simulation results must be reproducible bit-for-bit,
// so nothing in this package touches floating point

// Abs returns absolute value
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// MulDiv computes (a * b) / c with 128-bit intermediate, truncating toward zero
// Returns 0 when c is 0
func MulDiv(a, b, c int) int {
	if c == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	ua, ub, uc := uint64(Abs(a)), uint64(Abs(b)), uint64(Abs(c))

	hi, lo := bits.Mul64(ua, ub)
	if hi >= uc {
		// Quotient overflows 64 bits; saturate
		if neg {
			return -int(^uint(0) >> 1)
		}
		return int(^uint(0) >> 1)
	}
	q, _ := bits.Div64(hi, lo, uc)
	r := int(q)
	if neg {
		return -r
	}
	return r
}

// ISqrt returns floor(sqrt(n)) using Newton iteration, 0 for n <= 0
func ISqrt(n int) int {
	if n <= 0 {
		return 0
	}
	// Initial guess 2^ceil(bitlen/2) is never below the root, so the sequence decreases monotonically
	x := 1 << ((bits.Len(uint(n)) + 1) >> 1)
	for {
		y := (x + n/x) >> 1
		if y >= x {
			return x
		}
		x = y
	}
}

// --- Randomness ---

// FastRand is a seeded xorshift64 generator, state is a single word so it can be saved and replayed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Bool returns a uniformly distributed boolean
func (r *FastRand) Bool() bool {
	return r.Next()&1 == 1
}

// State exposes the generator word for persistence
func (r *FastRand) State() uint64 {
	return r.state
}
