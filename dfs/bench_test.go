package dfs_test

import (
	"testing"

	"github.com/katalvlaran/graphfuzz/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a 10,000-node chain.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkDetectCycles_Chain10000 measures cycle detection on an acyclic chain.
func BenchmarkDetectCycles_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DetectCycles(g)
	}
}
