package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphfuzz/core"
)

// ExampleGraph demonstrates the four edit primitives.
func ExampleGraph() {
	// 1) Build a small chain a→b→c plus a back edge c→a.
	g := core.New[string]()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("c")
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	fmt.Println("nodes:", g.Len(), "edges:", g.EdgeCount())

	// 2) Remove node "a": edges into it vanish, later targets shift down.
	g.RemoveNode(0)
	for i := 0; i < g.Len(); i++ {
		n, _ := g.Node(i)
		fmt.Println(i, n.Data, n.Edges())
	}

	// 3) RemoveEdge cascades: b→c goes, and so does c.
	g.RemoveEdge(0, 1)
	fmt.Println("after RemoveEdge:", g.Len())

	// Output:
	// nodes: 3 edges: 3
	// 0 b [1]
	// 1 c []
	// after RemoveEdge: 1
}
