// Package generator implements the graph-typed input generator a
// coverage-guided fuzzing engine drives: it synthesizes fresh random graphs of
// bounded complexity, mutates existing graphs without breaking structural
// validity, measures complexity, hashes graphs, and converts them to and from
// corpus bytes.
//
// The package only manipulates structure. Node payloads come from a pluggable
// PayloadGenerator[T]; the engine passes it a complexity budget whenever it
// asks for a fresh or mutated payload.
//
// Key components:
//
//   - GraphGenerator[T]: the engine. Satisfies InputGenerator[*core.Graph[T]].
//   - Operator:          the eight structural mutation kinds.
//   - Weights:           static relative selection weights, default 5,5,25,5,5,10,10,5.
//   - weightedTable:     cumulative-weight table built once in New; one draw per pick.
//   - Metrics:           optional Prometheus collectors for operator outcomes.
//
// Complexity metric:
//
//	complexity(g) = Σ_nodes (1 + outDegree) = Len() + EdgeCount()
//
// Synthesis (NewInput):
//
//  1. Draw a target uniformly from [0, max).
//  2. Grow while below target: AddNode on an empty graph, else a fair coin
//     between AddNode and AddEdge. Every step adds exactly 1.
//  3. Shrink while above target: RemoveEdge only when an edge exists, else
//     RemoveNode. Every step removes at least 1. Undershoot is accepted.
//
// Mutation (Mutate):
//
//	Up to NumOperators weighted draws; the first operator reporting a change
//	wins. All draws being inapplicable returns false.
//
// Determinism:
//
//	With WithSeed (or the default seed) the same call sequence on the same
//	inputs yields the same graphs. The engine is not goroutine-safe; use one
//	engine per worker.
package generator
