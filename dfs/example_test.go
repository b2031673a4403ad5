package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphfuzz/core"
	"github.com/katalvlaran/graphfuzz/dfs"
)

// ExampleDFS walks a small graph with a back edge 2→0.
func ExampleDFS() {
	g := core.New[string]()
	for _, s := range []string{"a", "b", "c"} {
		g.AddNode(s)
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	res, _ := dfs.DFS(g, 0)
	fmt.Println("post-order:", res.Order)

	has, cycles := dfs.DetectCycles(g)
	fmt.Println("cycles:", has, cycles)

	_, err := dfs.TopologicalSort(g)
	fmt.Println("dag:", err == nil)
	// Output:
	// post-order: [2 1 0]
	// cycles: true [[0 1 2 0]]
	// dag: false
}
