// SPDX-License-Identifier: MIT

package payload

import "math/rand"

// Integer is the set of integer kinds Int can generate.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// nudgeSpan bounds the delta of an additive mutation.
const nudgeSpan = 16

// Int generates uniformly distributed integers of type T.
type Int[T Integer] struct {
	rng  *rand.Rand
	bits int
}

// NewInt returns an integer generator drawing from r. Panics on nil r.
func NewInt[T Integer](r *rand.Rand) *Int[T] {
	if r == nil {
		panic("payload: NewInt(nil rand)")
	}

	return &Int[T]{rng: r, bits: bitWidth[T]()}
}

// NewInput returns a value uniform over the whole range of T.
// The budget is ignored: an integer has constant cost.
func (g *Int[T]) NewInput(float64) T {
	return T(g.rng.Uint64())
}

// Mutate rewrites *v with one of three strategies: a fresh uniform value,
// a small wrapping nudge, or a single bit flip. It reports whether *v changed.
func (g *Int[T]) Mutate(v *T, _ float64) bool {
	if v == nil {
		return false
	}
	old := *v

	switch g.rng.Intn(3) {
	case 0:
		*v = T(g.rng.Uint64())
	case 1:
		delta := T(1 + g.rng.Intn(nudgeSpan))
		if g.rng.Intn(2) == 0 {
			*v += delta
		} else {
			*v -= delta
		}
	default:
		*v ^= T(1) << uint(g.rng.Intn(g.bits))
	}

	return *v != old
}

// bitWidth counts the bits of T by shifting all-ones until it vanishes.
func bitWidth[T Integer]() int {
	n := 0
	for x := ^T(0); x != 0; x <<= 1 {
		n++
	}

	return n
}
