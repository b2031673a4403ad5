// File: methods_clone.go
// Role: Cloning, clearing and structural equality.
// Determinism:
//   - Clone preserves node order and per-node edge order exactly.

package core

// Clone returns a deep copy of the graph structure.
// Payloads are copied by value; payloads that hold references (slices, maps,
// pointers) share them with the source. Use CloneFunc for those.
//
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	return g.CloneFunc(nil)
}

// CloneFunc is Clone with each payload passed through copyData.
// A nil copyData copies payloads by value.
//
// Complexity: O(V + E) plus the cost of copyData.
func (g *Graph[T]) CloneFunc(copyData func(T) T) *Graph[T] {
	out := &Graph[T]{nodes: make([]Node[T], len(g.nodes))}
	for i := range g.nodes {
		out.nodes[i].Data = g.nodes[i].Data
		if copyData != nil {
			out.nodes[i].Data = copyData(g.nodes[i].Data)
		}
		if len(g.nodes[i].edges) > 0 {
			out.nodes[i].edges = append([]int(nil), g.nodes[i].edges...)
		}
	}

	return out
}

// Clear resets the graph to zero nodes.
// Complexity: O(1).
func (g *Graph[T]) Clear() {
	g.nodes = nil
}

// EqualFunc reports whether a and b are structurally equal: same node count,
// eq-equal payloads position by position, and identical edge lists (same
// targets in the same order). A nil edge list equals an empty one.
//
// Complexity: O(V + E).
func EqualFunc[T any](a, b *Graph[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		na, nb := &a.nodes[i], &b.nodes[i]
		if !eq(na.Data, nb.Data) || len(na.edges) != len(nb.edges) {
			return false
		}
		for s := range na.edges {
			if na.edges[s] != nb.edges[s] {
				return false
			}
		}
	}

	return true
}

// Equal is EqualFunc with == on comparable payloads.
func Equal[T comparable](a, b *Graph[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}
