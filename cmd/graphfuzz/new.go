package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphfuzz/generator"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Synthesize one random graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		maxC := a.profile.MaxComplexity
		if cmd.Flags().Changed("max-complexity") {
			maxC, _ = cmd.Flags().GetFloat64("max-complexity")
		}
		out, _ := cmd.Flags().GetString("output")

		gg, err := a.engine(a.profile.Seed)
		if err != nil {
			return err
		}
		g := gg.NewInput(maxC)
		data, err := gg.ToData(g)
		if err != nil {
			return err
		}
		a.logger.Info("synthesized",
			slog.Int("nodes", g.Len()),
			slog.Int("edges", g.EdgeCount()),
			slog.Float64("complexity", generator.Complexity(g)))

		return writeData(out, data)
	},
}

func init() {
	newCmd.Flags().Float64("max-complexity", 0, "upper bound for the sampled complexity (default from profile)")
	newCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
}
