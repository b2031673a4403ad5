// SPDX-License-Identifier: MIT

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphfuzz/core"
	"github.com/katalvlaran/graphfuzz/generator"
)

// counterPayload hands out 1,2,3,... and mutates by incrementing.
type counterPayload struct {
	next    int
	budgets []float64
}

func (c *counterPayload) NewInput(budget float64) int {
	c.next++
	c.budgets = append(c.budgets, budget)

	return c.next
}

func (c *counterPayload) Mutate(v *int, _ float64) bool {
	*v++

	return true
}

// stuckPayload never manages to mutate.
type stuckPayload struct{}

func (stuckPayload) NewInput(float64) int { return 0 }
func (stuckPayload) Mutate(*int, float64) bool { return false }

// newGen builds a seeded generator over counterPayload.
func newGen(t testing.TB, seed int64, opts ...generator.Option) (*generator.GraphGenerator[int], *counterPayload) {
	t.Helper()
	p := &counterPayload{}
	gg, err := generator.New[int](p, append([]generator.Option{generator.WithSeed(seed)}, opts...)...)
	require.NoError(t, err)

	return gg, p
}

// onlyWeights enables exactly the listed operators with weight 1.
func onlyWeights(ops ...generator.Operator) generator.Weights {
	var ws generator.Weights
	for _, op := range ops {
		ws = ws.Set(op, 1)
	}

	return ws
}

// fixture is the 8-node graph
// payloads [63,3,-56,100,-100,-78,46,120], edges 0→{1,2} 1→{3,4} 2→{5,6} 3→{7}.
func fixture(t testing.TB) *core.Graph[int] {
	t.Helper()
	g := core.New[int]()
	for _, v := range []int{63, 3, -56, 100, -100, -78, 46, 120} {
		g.AddNode(v)
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}, {3, 7}} {
		require.True(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// payloads lists node data in position order.
func payloads(g *core.Graph[int]) []int {
	out := make([]int, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		n, _ := g.Node(i)
		out = append(out, n.Data)
	}

	return out
}
