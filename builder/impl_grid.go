// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// impl_grid.go: Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is node base + r*cols + c (row-major).
//   • Each cell links right (r,c+1) then down (r+1,c) when those exist.
//
// Complexity: O(R·C) nodes + O(2·R·C) edges.

package builder

import "github.com/katalvlaran/graphfuzz/core"

// Grid returns a Constructor that appends a rows×cols lattice.
func Grid[T any](rows, cols int) Constructor[T] {
	return func(g *core.Graph[T], data func(int) T, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, ErrTooFewVertices, "rows=%d cols=%d < min=%d", rows, cols, MinGridDim)
		}
		base := addNodes(g, data, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					g.AddEdge(id, id+1)
				}
				if r+1 < rows {
					g.AddEdge(id, id+cols)
				}
			}
		}

		return nil
	}
}
