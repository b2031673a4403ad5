// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// constants.go: the mutation operator set and its default weight table.

package generator

import (
	"fmt"
	"strings"
)

// Operator is one of the eight structural mutation kinds.
type Operator uint8

// The operator set, in table order.
const (
	// OpAddNode appends a node with a freshly generated payload.
	OpAddNode Operator = iota
	// OpRemoveNode removes a uniformly chosen node (edges repaired).
	OpRemoveNode
	// OpMutateNodeData delegates payload mutation of a uniformly chosen node.
	OpMutateNodeData
	// OpAddEdge adds an edge between two uniformly chosen nodes.
	OpAddEdge
	// OpRemoveEdge deletes one edge slot; the target node stays.
	OpRemoveEdge
	// OpMoveEdge retargets one edge slot to a uniformly chosen node.
	OpMoveEdge
	// OpAddFriend appends a new node and links an existing node to it.
	OpAddFriend
	// OpMoveNode swaps the positions of two uniformly chosen nodes.
	OpMoveNode
)

// NumOperators is the size of the operator set.
const NumOperators = 8

// operatorNames are the canonical names used in profiles, logs and metrics.
var operatorNames = [NumOperators]string{
	"add_node",
	"remove_node",
	"mutate_node_data",
	"add_edge",
	"remove_edge",
	"move_edge",
	"add_friend",
	"move_node",
}

// defaultWeights sum to 70.
var defaultWeights = Weights{5, 5, 25, 5, 5, 10, 10, 5}

// String returns the canonical snake_case name.
func (op Operator) String() string {
	if int(op) < NumOperators {
		return operatorNames[op]
	}

	return fmt.Sprintf("operator(%d)", uint8(op))
}

// Valid reports whether op belongs to the operator set.
func (op Operator) Valid() bool { return int(op) < NumOperators }

// Operators returns the full operator set in table order.
func Operators() []Operator {
	out := make([]Operator, NumOperators)
	for i := range out {
		out[i] = Operator(i)
	}

	return out
}

// ParseOperator resolves a name case-insensitively, ignoring '_' and '-',
// so "add_node", "AddNode" and "add-node" all name OpAddNode.
func ParseOperator(name string) (Operator, error) {
	key := normalizeName(name)
	for i, n := range operatorNames {
		if normalizeName(n) == key {
			return Operator(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownOperator)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.NewReplacer("_", "", "-", "").Replace(s)
}
