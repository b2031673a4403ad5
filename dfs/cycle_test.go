package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphfuzz/dfs"
)

func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles := dfs.DetectCycles[int](nil)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestDetectCycles_Tree(t *testing.T) {
	has, cycles := dfs.DetectCycles(buildTree(t))
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	has, cycles := dfs.DetectCycles(build(t, 2, [2]int{1, 1}))
	assert.True(t, has)
	assert.Equal(t, [][]int{{1, 1}}, cycles)
}

func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	has, cycles := dfs.DetectCycles(build(t, 2, [2]int{1, 0}, [2]int{0, 1}))
	assert.True(t, has)
	assert.Equal(t, [][]int{{0, 1, 0}}, cycles)
}

func TestDetectCycles_CanonicalRotationAndDedup(t *testing.T) {
	// 2→0→1→2 with a parallel closing edge.
	g := build(t, 3, [2]int{2, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 2})
	has, cycles := dfs.DetectCycles(g)
	assert.True(t, has)
	assert.Equal(t, [][]int{{0, 1, 2, 0}}, cycles)
}

func TestDetectCycles_DirectionMatters(t *testing.T) {
	// 0→1→2→0 and 0→2→1→0 are distinct directed cycles.
	g := build(t, 3,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{0, 2}, [2]int{2, 1}, [2]int{1, 0})
	has, cycles := dfs.DetectCycles(g)
	assert.True(t, has)
	assert.Contains(t, cycles, []int{0, 1, 2, 0})
	for _, c := range cycles {
		assert.Equal(t, c[0], c[len(c)-1], "cycles are closed")
	}
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, dfs.MinimalRotation([]int{2, 3, 1}))
	assert.Equal(t, []int{0, 0, 1}, dfs.MinimalRotation([]int{0, 1, 0}))
	assert.Equal(t, []string{"a", "b"}, dfs.MinimalRotation([]string{"b", "a"}))
	assert.Empty(t, dfs.MinimalRotation([]int{}))
	assert.Equal(t, "3,1,2", dfs.JoinSig([]int{3, 1, 2}))
}
