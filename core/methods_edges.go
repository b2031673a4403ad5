// File: methods_edges.go
// Role: Edge lifecycle.
//
// Two removal flavours exist on purpose:
//   - RemoveEdge(from, to) cascades: it disowns the target node entirely.
//   - RemoveEdgeAt(from, slot) is a plain deletion of one edge slot.

package core

// AddEdge appends the edge from→to to from's edge list.
//
// Behavior highlights:
//   - Self-loops (from == to) and parallel edges are permitted.
//
// Returns:
//   - bool: false if either index is out of range (no mutation).
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[T]) AddEdge(from, to int) bool {
	if !g.inRange(from) || !g.inRange(to) {
		return false
	}
	g.nodes[from].edges = append(g.nodes[from].edges, to)

	return true
}

// RemoveEdge removes the first from→to edge and then removes node `to`.
//
// Implementation:
//   - Stage 1: Reject out-of-range indices.
//   - Stage 2: Locate the first slot in from's edge list whose target is to.
//   - Stage 3: Delete that slot, then RemoveNode(to), which repairs the rest.
//
// Behavior highlights:
//   - Models "disowning a subtree root": the destination node disappears too.
//   - Other edges into `to` are removed by RemoveNode's repair.
//   - For a self-loop (from == to) the source node itself is removed.
//
// Returns:
//   - bool: false if an index is out of range or no from→to edge exists.
//
// Complexity:
//   - Time O(V+E) dominated by RemoveNode.
func (g *Graph[T]) RemoveEdge(from, to int) bool {
	if !g.inRange(from) || !g.inRange(to) {
		return false
	}
	slot := -1
	for s, t := range g.nodes[from].edges {
		if t == to {
			slot = s
			break
		}
	}
	if slot < 0 {
		return false
	}
	g.deleteSlot(from, slot)

	return g.RemoveNode(to)
}

// RemoveEdgeAt deletes the edge stored in slot of from's edge list.
// The target node is left untouched.
//
// Returns:
//   - bool: false if from or slot is out of range.
//
// Complexity: O(deg(from)).
func (g *Graph[T]) RemoveEdgeAt(from, slot int) bool {
	if !g.inRange(from) || slot < 0 || slot >= len(g.nodes[from].edges) {
		return false
	}
	g.deleteSlot(from, slot)

	return true
}

// SetEdgeAt retargets the edge stored in slot of from's edge list to `to`.
// Setting a slot to its current target is accepted and reported as success.
//
// Returns:
//   - bool: false if from, slot or to is out of range.
//
// Complexity: O(1).
func (g *Graph[T]) SetEdgeAt(from, slot, to int) bool {
	if !g.inRange(from) || !g.inRange(to) || slot < 0 || slot >= len(g.nodes[from].edges) {
		return false
	}
	g.nodes[from].edges[slot] = to

	return true
}

// deleteSlot removes edges[slot] from node `from` preserving order.
// Caller guarantees both indices are valid.
func (g *Graph[T]) deleteSlot(from, slot int) {
	edges := g.nodes[from].edges
	copy(edges[slot:], edges[slot+1:])
	g.nodes[from].edges = edges[:len(edges)-1]
}
