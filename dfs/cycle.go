// Package dfs implements cycle detection for core.Graph.
// DetectCycles reports every cycle closed by a DFS back edge, using three-color
// marking. Edges are directed, so each cycle is canonicalized by its minimal
// rotation only (the reversed walk is a different cycle). Self-loops are
// cycles of length one; parallel edges never produce duplicates.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"sort"

	"github.com/katalvlaran/graphfuzz/core"
)

// cycleFinder holds the shared traversal state of DetectCycles.
type cycleFinder[T any] struct {
	graph  *core.Graph[T]
	state  []int // White/Gray/Black per node
	onPath []int // position of a Gray node in path, -1 otherwise
	path   []int // current DFS stack
	seen   map[string]struct{}
	cycles [][]int
}

// DetectCycles inspects g for back-edge cycles.
// Each cycle is returned closed, [v0, v1, ..., v0], starting at its smallest
// node; the list is sorted by signature for deterministic output.
// A nil graph is treated as cycle-free.
func DetectCycles[T any](g *core.Graph[T]) (bool, [][]int) {
	if g == nil {
		return false, nil
	}

	n := g.Len()
	cf := &cycleFinder[T]{
		graph:  g,
		state:  make([]int, n),
		onPath: filled(n, -1),
		path:   make([]int, 0, n),
		seen:   make(map[string]struct{}),
	}
	for v := 0; v < n; v++ {
		if cf.state[v] == White {
			cf.visit(v)
		}
	}

	if len(cf.cycles) == 0 {
		return false, nil
	}
	sort.Slice(cf.cycles, func(i, j int) bool {
		return JoinSig(cf.cycles[i]) < JoinSig(cf.cycles[j])
	})

	return true, cf.cycles
}

func (cf *cycleFinder[T]) visit(id int) {
	cf.state[id] = Gray
	cf.onPath[id] = len(cf.path)
	cf.path = append(cf.path, id)

	node, _ := cf.graph.Node(id)
	for _, nbr := range node.Edges() {
		switch cf.state[nbr] {
		case White:
			cf.visit(nbr)
		case Gray:
			cf.record(cf.path[cf.onPath[nbr]:])
		}
	}

	cf.path = cf.path[:len(cf.path)-1]
	cf.onPath[id] = -1
	cf.state[id] = Black
}

// record canonicalizes the open cycle seq and stores it if unseen.
func (cf *cycleFinder[T]) record(seq []int) {
	rot := MinimalRotation(seq)
	closed := append(rot, rot[0])
	sig := JoinSig(closed)
	if _, ok := cf.seen[sig]; ok {
		return
	}
	cf.seen[sig] = struct{}{}
	cf.cycles = append(cf.cycles, closed)
}
