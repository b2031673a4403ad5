// SPDX-License-Identifier: MIT

package payload

import (
	"math"
	"math/rand"
)

// DefaultMaxLen caps Bytes payloads when NewBytes is given a non-positive limit.
const DefaultMaxLen = 64

// Bytes generates byte strings whose length is bounded by both the complexity
// budget (one unit per byte) and a fixed maximum length.
type Bytes struct {
	rng    *rand.Rand
	maxLen int
}

// NewBytes returns a byte-string generator drawing from r. Panics on nil r.
func NewBytes(r *rand.Rand, maxLen int) *Bytes {
	if r == nil {
		panic("payload: NewBytes(nil rand)")
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	return &Bytes{rng: r, maxLen: maxLen}
}

// NewInput returns random bytes of length uniform in [0, limit], where limit is
// min(maxLen, ⌊maxComplexity⌋). A non-positive budget yields an empty slice.
func (g *Bytes) NewInput(maxComplexity float64) []byte {
	limit := g.limit(maxComplexity)
	out := make([]byte, g.rng.Intn(limit+1))
	g.rng.Read(out)

	return out
}

// Mutate inserts, deletes or overwrites one byte of *v.
// Inserting requires spare budget and room under maxLen; deleting requires a
// non-empty value. It reports whether *v changed.
//
// *v is replaced by a fresh slice; the old backing array is never written,
// so values shared with a cloned graph stay intact.
func (g *Bytes) Mutate(v *[]byte, spareComplexity float64) bool {
	if v == nil {
		return false
	}
	old := *v
	canGrow := len(old) < g.maxLen && spareComplexity >= 1

	var b []byte
	switch g.rng.Intn(3) {
	case 0:
		if !canGrow {
			return false
		}
		at := g.rng.Intn(len(old) + 1)
		b = make([]byte, 0, len(old)+1)
		b = append(b, old[:at]...)
		b = append(b, byte(g.rng.Intn(256)))
		b = append(b, old[at:]...)
	case 1:
		if len(old) == 0 {
			return false
		}
		at := g.rng.Intn(len(old))
		b = make([]byte, 0, len(old)-1)
		b = append(b, old[:at]...)
		b = append(b, old[at+1:]...)
	default:
		if len(old) == 0 {
			return false
		}
		b = Clone(old)
		// A non-zero mask always changes the byte.
		b[g.rng.Intn(len(b))] ^= byte(1 + g.rng.Intn(255))
	}
	*v = b

	return true
}

// Clone returns an independent copy of b, for use with core.Graph.CloneFunc.
// A nil b stays nil.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}

	return append(make([]byte, 0, len(b)), b...)
}

func (g *Bytes) limit(budget float64) int {
	if !(budget > 0) {
		return 0
	}
	if budget >= float64(g.maxLen) || math.IsInf(budget, 1) {
		return g.maxLen
	}

	return int(budget)
}
