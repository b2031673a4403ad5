// Package builder defines the constructor names and size minima shared by
// all shapes.
package builder

// Constructor names used to prefix errors.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Minimum node counts.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: a single self-loop is the smallest ring.
	MinCycleNodes = 1
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a ring of at least 3 nodes plus one hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a lone node.
	MinCompleteNodes = 1
	// MinGridDim is the smallest rows/cols value; a 1×1 grid has no edges.
	MinGridDim = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
