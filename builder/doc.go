// Package builder assembles canonical graph shapes (path, cycle, star, wheel,
// complete, grid, random sparse) on core.Graph[T].
//
// Every shape is a Constructor. BuildGraph composes any number of them into
// one graph, each appended as a new component after the existing nodes.
//
// Guarantees:
//
//   - Determinism: same constructors, order, payload function and seed give
//     identical graphs, edge slot order included.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with
//     the constructor name.
//   - Every produced graph passes core.Graph.Validate.
package builder
