// SPDX-License-Identifier: MIT

package generator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedTable_Distribution(t *testing.T) {
	table, err := newWeightedTable(DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, [NumOperators]int{5, 10, 35, 40, 45, 55, 65, 70}, table.cum)

	const draws = 140000
	rng := rand.New(rand.NewSource(1))
	var hits [NumOperators]int
	for i := 0; i < draws; i++ {
		hits[table.pick(rng)]++
	}
	for op, w := range DefaultWeights() {
		want := float64(draws) * float64(w) / 70
		assert.InDelta(t, want, float64(hits[op]), 4*math.Sqrt(want)+1,
			"%s drawn %d times", Operator(op), hits[op])
	}
}

func TestWeightedTable_ZeroWeightNeverPicked(t *testing.T) {
	var ws Weights
	ws[OpMoveEdge] = 3
	ws[OpMoveNode] = 1
	table, err := newWeightedTable(ws)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		op := table.pick(rng)
		require.Contains(t, []Operator{OpMoveEdge, OpMoveNode}, op)
	}
}

func TestWeightedTable_Rejects(t *testing.T) {
	_, err := newWeightedTable(Weights{})
	assert.ErrorIs(t, err, ErrInvalidWeights)

	ws := DefaultWeights()
	ws[OpAddEdge] = -5
	_, err = newWeightedTable(ws)
	assert.ErrorIs(t, err, ErrInvalidWeights)
	assert.Contains(t, err.Error(), "add_edge=-5")
}

func TestWeightedTable_RejectsOverflowingWeights(t *testing.T) {
	ws := DefaultWeights()
	ws[OpMoveEdge] = math.MaxInt
	ws[OpAddFriend] = math.MaxInt
	_, err := newWeightedTable(ws)
	assert.ErrorIs(t, err, ErrInvalidWeights)
	assert.Contains(t, err.Error(), "move_edge=")

	var full Weights
	for i := range full {
		full[i] = MaxWeight
	}
	tbl, err := newWeightedTable(full)
	require.NoError(t, err)
	assert.Positive(t, tbl.total)
	assert.LessOrEqual(t, tbl.total, math.MaxInt32)

	full[OpMoveNode] = MaxWeight + 1
	assert.ErrorIs(t, full.Validate(), ErrInvalidWeights)
}
