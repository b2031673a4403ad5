// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// api.go: the Constructor type and the BuildGraph orchestrator.
//
// Design contract:
//   • One orchestrator: BuildGraph(data, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   • Each constructor appends its nodes after g.Len() and only links its own
//     nodes, so composed shapes stay disjoint components.
//   • Node payloads come from data(i), where i is the node's final position.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphfuzz/core"
)

// Constructor appends one shape to g. Implementations validate parameters
// first and leave g untouched on error.
type Constructor[T any] func(g *core.Graph[T], data func(int) T, cfg builderConfig) error

// BuildGraph creates an empty graph and applies every constructor in order.
//
// Errors:
//   - ErrConstructFailed if data or any constructor is nil.
//   - Any constructor error, wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor plus O(len(bopts)).
func BuildGraph[T any](data func(int) T, bopts []BuilderOption, cons ...Constructor[T]) (*core.Graph[T], error) {
	if data == nil {
		return nil, fmt.Errorf("BuildGraph: nil payload function: %w", ErrConstructFailed)
	}
	g := core.New[T]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, data, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Zero is a payload function that leaves every node at T's zero value.
func Zero[T any](int) T {
	var z T

	return z
}

// addNodes appends n nodes and returns the position of the first one.
func addNodes[T any](g *core.Graph[T], data func(int) T, n int) int {
	base := g.Len()
	for i := 0; i < n; i++ {
		g.AddNode(data(base + i))
	}

	return base
}
