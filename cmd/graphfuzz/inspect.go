package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphfuzz/bfs"
	"github.com/katalvlaran/graphfuzz/codec"
	"github.com/katalvlaran/graphfuzz/core"
	"github.com/katalvlaran/graphfuzz/dfs"
	"github.com/katalvlaran/graphfuzz/generator"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Summarize a stored graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		g, err := a.readGraph(args[0])
		if err != nil {
			return err
		}

		return describe(cmd.OutOrStdout(), g)
	},
}

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	badColor  = color.New(color.FgRed, color.Bold)
	headColor = color.New(color.FgCyan)
)

// describe prints the node table followed by structural facts about g.
func describe[T any](w io.Writer, g *core.Graph[T]) error {
	headColor.Fprintf(w, "%-6s %-8s %s\n", "node", "data", "edges")
	for i := 0; i < g.Len(); i++ {
		n, _ := g.Node(i)
		fmt.Fprintf(w, "%-6d %-8v %v\n", i, n.Data, n.Edges())
	}

	st := g.Stats()
	sum, err := codec.Sum64(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "complexity  %.0f (nodes %d, edges %d, self-loops %d, max out-degree %d)\n",
		generator.Complexity(g), st.NodeCount, st.EdgeCount, st.SelfLoops, st.MaxOutDegree)
	fmt.Fprintf(w, "hash        %016x\n", sum)

	fmt.Fprint(w, "validity    ")
	if err := g.Validate(); err != nil {
		badColor.Fprintln(w, err)
	} else {
		okColor.Fprintln(w, "ok")
	}

	if g.Len() == 0 {
		return nil
	}
	reach, err := dfs.Reachable(g, 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "reachable   %d/%d from node 0 %v\n", len(reach), g.Len(), reach)

	levels, err := bfs.BFS(g, 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "hop levels  %v\n", levels.Levels())

	_, cycles := dfs.DetectCycles(g)
	order, err := dfs.TopologicalSort(g)
	switch {
	case err == nil:
		okColor.Fprint(w, "acyclic")
		fmt.Fprintf(w, "     topological order %v\n", order)
	case errors.Is(err, dfs.ErrCycleDetected):
		badColor.Fprintf(w, "cyclic")
		fmt.Fprintf(w, "      %d back-edge cycles %v\n", len(cycles), cycles)
	default:
		return err
	}

	return nil
}
