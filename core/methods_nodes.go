// File: methods_nodes.go
// Role: Node lifecycle (append, remove with edge repair, positional swap).
//
// Determinism:
//   - Surviving nodes keep their relative order on removal.
//   - Edge repair preserves the relative order of surviving edges.

package core

// AddNode appends a node carrying data with no outgoing edges.
//
// Behavior highlights:
//   - Always succeeds; the new node's index is Len()-1 after the call.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[T]) AddNode(data T) {
	g.nodes = append(g.nodes, Node[T]{Data: data})
}

// RemoveNode deletes the node at index i and repairs every edge list.
//
// Implementation:
//   - Stage 1: Reject out-of-range i (no mutation).
//   - Stage 2: Delete nodes[i], shifting later nodes down by one position.
//   - Stage 3: For each surviving node, drop every edge targeting i and
//     decrement every target greater than i.
//
// Behavior highlights:
//   - All edges into i are removed (not only the first per node).
//   - Targets past i are renumbered so they keep naming the same logical node.
//
// Returns:
//   - bool: false if i is out of range, true otherwise.
//
// Complexity:
//   - Time O(V+E), Space O(1) extra (edge lists are compacted in place).
func (g *Graph[T]) RemoveNode(i int) bool {
	if !g.inRange(i) {
		return false
	}

	// Shift tail down; clear the vacated slot so payload memory is released.
	copy(g.nodes[i:], g.nodes[i+1:])
	var zero Node[T]
	g.nodes[len(g.nodes)-1] = zero
	g.nodes = g.nodes[:len(g.nodes)-1]

	for k := range g.nodes {
		edges := g.nodes[k].edges
		kept := edges[:0]
		for _, t := range edges {
			switch {
			case t == i:
				continue // edge into the removed node
			case t > i:
				kept = append(kept, t-1)
			default:
				kept = append(kept, t)
			}
		}
		g.nodes[k].edges = kept
	}

	return true
}

// Swap exchanges the positions of nodes i and j.
//
// Edge targets are NOT renumbered: edges keep pointing at positions, so the
// payloads and edge lists reached through those positions change. Every
// target stays in range, which is all structural validity requires.
//
// Returns:
//   - bool: false if either index is out of range or i == j (nothing changed).
//
// Complexity: O(1).
func (g *Graph[T]) Swap(i, j int) bool {
	if !g.inRange(i) || !g.inRange(j) || i == j {
		return false
	}
	g.nodes[i], g.nodes[j] = g.nodes[j], g.nodes[i]

	return true
}
