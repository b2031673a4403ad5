// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// weighted.go: operator weights and the cumulative sampling table.
//
// Design:
//   • Weights are validated once, then frozen into cumulative sums.
//   • pick() costs one Intn draw plus a binary search over NumOperators entries.
//   • Zero-weight operators can never be picked.

package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// MaxWeight bounds a single operator weight so the total fits in an int32.
const MaxWeight = math.MaxInt32 / NumOperators

// Weights holds a relative selection weight per Operator, indexed by Operator.
type Weights [NumOperators]int

// DefaultWeights returns the reference table: AddNode=5, RemoveNode=5,
// MutateNodeData=25, AddEdge=5, RemoveEdge=5, MoveEdge=10, AddFriend=10, MoveNode=5.
func DefaultWeights() Weights { return defaultWeights }

// Set assigns w to op and returns the updated copy.
func (ws Weights) Set(op Operator, w int) Weights {
	if op.Valid() {
		ws[op] = w
	}

	return ws
}

// Total returns the sum of all weights.
func (ws Weights) Total() int {
	total := 0
	for _, w := range ws {
		total += w
	}

	return total
}

// Validate checks that every weight lies in [0, MaxWeight] and that the
// total is positive.
func (ws Weights) Validate() error {
	for i, w := range ws {
		if w < 0 {
			return fmt.Errorf("%s=%d < 0: %w", Operator(i), w, ErrInvalidWeights)
		}
		if w > MaxWeight {
			return fmt.Errorf("%s=%d > max=%d: %w", Operator(i), w, MaxWeight, ErrInvalidWeights)
		}
	}
	if ws.Total() <= 0 {
		return fmt.Errorf("all weights are zero: %w", ErrInvalidWeights)
	}

	return nil
}

// weightedTable samples operators with probability proportional to weight.
type weightedTable struct {
	cum   [NumOperators]int // cum[i] = Σ weights[0..i]
	total int
}

// newWeightedTable freezes ws into cumulative sums.
// Complexity: O(NumOperators).
func newWeightedTable(ws Weights) (weightedTable, error) {
	if err := ws.Validate(); err != nil {
		return weightedTable{}, err
	}
	var t weightedTable
	for i, w := range ws {
		t.total += w
		t.cum[i] = t.total
	}

	return t, nil
}

// pick draws one operator.
// The smallest i with cum[i] > x is chosen for x uniform in [0,total).
func (t *weightedTable) pick(rng *rand.Rand) Operator {
	x := rng.Intn(t.total)
	i := sort.SearchInts(t.cum[:], x+1)

	return Operator(i)
}
