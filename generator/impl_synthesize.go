// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// impl_synthesize.go: bounded random synthesis.
//
// Implementation:
//   Stage 1: Sample target uniformly from [0, maxComplexity).
//   Stage 2 (grow): while current < target, AddNode on an empty graph,
//            otherwise a fair coin between AddNode and AddEdge. Both add
//            exactly 1, so current is tracked without rescanning g.
//   Stage 3 (shrink): while current > target, a fair coin between RemoveNode
//            and plain RemoveEdge when some edge exists, otherwise RemoveNode.
//
// Termination:
//   Every iteration of both loops is applicable to the current shape, so each
//   changes complexity by at least 1 in the loop's direction. Growth stops at
//   ⌈target⌉ and shrinking stops at or below target, hence the result never
//   exceeds target < maxComplexity.
//
// Steps call the operator handlers directly, so synthesis is not counted in
// the mutation operator metrics.

package generator

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/graphfuzz/core"
)

// NewInput synthesizes a fresh graph with complexity at most the sampled target.
// maxComplexity ≤ 0, NaN or ±Inf yields the empty graph.
//
// The payload generator receives the remaining growth budget (target - current)
// for every node it is asked to create.
//
// Complexity: O(target) for growth plus one O(V+E) removal at most.
func (gg *GraphGenerator[T]) NewInput(maxComplexity float64) *core.Graph[T] {
	g := core.New[T]()
	if !(maxComplexity > 0) || math.IsInf(maxComplexity, 0) {
		return g
	}

	target := gg.rng.Float64() * maxComplexity
	current := 0.0

	// AddNode and AddEdge (on a non-empty graph) each add exactly 1.
	for current < target {
		if g.Len() > 0 && gg.rng.Intn(2) == 1 {
			gg.addEdge(g)
		} else {
			gg.addNode(g, target-current)
		}
		current++
	}

	// Growth stops at ⌈target⌉, so at most one removal runs here.
	for current > target {
		if g.EdgeCount() > 0 && gg.rng.Intn(2) == 1 {
			gg.removeEdge(g)
		} else {
			gg.removeNode(g)
		}
		current = Complexity(g)
	}

	gg.metrics.observeComplexity(current)
	gg.logger.Debug("synthesized graph",
		slog.Float64("max", maxComplexity),
		slog.Float64("target", target),
		slog.Float64("complexity", current))

	return g
}
