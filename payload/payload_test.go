// SPDX-License-Identifier: MIT

package payload_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphfuzz/payload"
)

func TestNewInt_PanicsOnNilRand(t *testing.T) {
	assert.Panics(t, func() { payload.NewInt[int8](nil) })
	assert.Panics(t, func() { payload.NewBytes(nil, 4) })
}

func TestInt_NewInputCoversSignedRange(t *testing.T) {
	g := payload.NewInt[int8](rand.New(rand.NewSource(7)))
	var sawNeg, sawPos bool
	for i := 0; i < 1000; i++ {
		v := g.NewInput(0)
		if v < 0 {
			sawNeg = true
		}
		if v > 0 {
			sawPos = true
		}
	}
	assert.True(t, sawNeg, "expected negative int8 values")
	assert.True(t, sawPos, "expected positive int8 values")
}

func TestInt_MutateReportsChange(t *testing.T) {
	kinds := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"int8", func(t *testing.T) { checkIntMutate[int8](t) }},
		{"uint16", func(t *testing.T) { checkIntMutate[uint16](t) }},
		{"int64", func(t *testing.T) { checkIntMutate[int64](t) }},
		{"uint", func(t *testing.T) { checkIntMutate[uint](t) }},
	}
	for _, k := range kinds {
		t.Run(k.name, k.run)
	}
}

func checkIntMutate[T payload.Integer](t *testing.T) {
	t.Helper()
	g := payload.NewInt[T](rand.New(rand.NewSource(11)))
	changed := 0
	for i := 0; i < 500; i++ {
		v := g.NewInput(0)
		before := v
		ok := g.Mutate(&v, 0)
		assert.Equal(t, ok, v != before, "Mutate result must reflect a change")
		if ok {
			changed++
		}
	}
	assert.Greater(t, changed, 400)
	assert.False(t, g.Mutate(nil, 0))
}

func TestBytes_NewInputRespectsBudget(t *testing.T) {
	g := payload.NewBytes(rand.New(rand.NewSource(3)), 10)
	cases := []struct {
		budget float64
		max    int
	}{
		{-1, 0},
		{0, 0},
		{math.NaN(), 0},
		{3.9, 3},
		{100, 10},
		{math.Inf(1), 10},
	}
	for _, tc := range cases {
		for i := 0; i < 200; i++ {
			b := g.NewInput(tc.budget)
			require.LessOrEqual(t, len(b), tc.max, "budget %v", tc.budget)
		}
	}
}

func TestBytes_DefaultMaxLen(t *testing.T) {
	g := payload.NewBytes(rand.New(rand.NewSource(3)), 0)
	for i := 0; i < 200; i++ {
		assert.LessOrEqual(t, len(g.NewInput(1e9)), payload.DefaultMaxLen)
	}
}

func TestBytes_Mutate(t *testing.T) {
	g := payload.NewBytes(rand.New(rand.NewSource(5)), 4)

	t.Run("empty without budget cannot change", func(t *testing.T) {
		var v []byte
		for i := 0; i < 100; i++ {
			assert.False(t, g.Mutate(&v, 0))
		}
		assert.Empty(t, v)
	})

	t.Run("stays within maxLen", func(t *testing.T) {
		var v []byte
		grew := false
		for i := 0; i < 500; i++ {
			g.Mutate(&v, 10)
			require.LessOrEqual(t, len(v), 4)
			if len(v) > 0 {
				grew = true
			}
		}
		assert.True(t, grew)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.False(t, g.Mutate(nil, 10))
	})
}

func TestBytes_MutateNeverWritesSharedStorage(t *testing.T) {
	g := payload.NewBytes(rand.New(rand.NewSource(9)), 16)
	shared := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < 300; i++ {
		v := shared[:len(shared):len(shared)]
		g.Mutate(&v, 1)
		require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, shared, "round %d", i)
	}

	v := shared[:4]
	for i := 0; i < 300; i++ {
		g.Mutate(&v, 1)
	}
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, shared, "spare capacity is not reused")
}

func TestClone(t *testing.T) {
	assert.Nil(t, payload.Clone(nil))
	src := []byte{1, 2}
	c := payload.Clone(src)
	c[0] = 7
	assert.Equal(t, []byte{1, 2}, src)
	assert.Equal(t, []byte{}, payload.Clone([]byte{}))
}
