// Package graphfuzz generates and mutates small directed graphs as inputs
// for structure-aware fuzzing.
//
// 🚀 What is graphfuzz?
//
//	A graph whose nodes carry typed payloads and whose edges are plain node
//	positions, plus an engine that knows how to grow, shrink and perturb it:
//		• Core primitives: AddNode, RemoveNode, AddEdge, RemoveEdge (+ slot edits, Swap)
//		• Synthesis: NewInput(max) builds a graph strictly below a complexity bound
//		• Mutation: eight weighted operators, each with its own precondition
//		• Hooks: structural hashing (xxhash), JSON and msgpack corpus encoding
//		• Payloads: pluggable per-node generators (integers, byte strings)
//
// Everything is organized under these subpackages:
//
//	core/      : Graph[T], Node[T] and the edit primitives
//	generator/ : complexity, synthesis, weighted mutation, metrics
//	payload/   : node payload generators
//	codec/     : wire formats and structural hashing
//	builder/   : canonical shapes (path, cycle, star, wheel, grid, ...)
//	bfs/, dfs/ : traversal, reachability, cycle and topological analysis
//	config/    : TOML / YAML run profiles
//	cmd/graphfuzz: the CLI (new, mutate, inspect, corpus, profile, version)
//
// Quick ASCII example (complexity = nodes + edges = 4 + 3 = 7):
//
//	    0 ──▶ 1
//	    │     │
//	    ▼     ▼
//	    2     3
//
//	go install github.com/katalvlaran/graphfuzz/cmd/graphfuzz@latest
package graphfuzz
