package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var mutateCmd = &cobra.Command{
	Use:   "mutate",
	Short: "Apply weighted mutation steps to a stored graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		in, _ := flags.GetString("input")
		out, _ := flags.GetString("output")
		rounds, _ := flags.GetInt("rounds")
		spare := a.profile.SpareComplexity
		if flags.Changed("spare") {
			spare, _ = flags.GetFloat64("spare")
		}

		g, err := a.readGraph(in)
		if err != nil {
			return err
		}
		gg, err := a.engine(a.profile.Seed)
		if err != nil {
			return err
		}

		applied := 0
		for i := 0; i < rounds; i++ {
			if gg.Mutate(g, spare) {
				applied++
			}
		}
		a.logger.Info("mutated",
			slog.Int("rounds", rounds),
			slog.Int("applied", applied),
			slog.Float64("complexity", gg.Complexity(g)))

		data, err := gg.ToData(g)
		if err != nil {
			return err
		}

		return writeData(out, data)
	},
}

func init() {
	mutateCmd.Flags().StringP("input", "i", "-", "input graph file (\"-\" for stdin)")
	mutateCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	mutateCmd.Flags().Int("rounds", 1, "number of mutation steps")
	mutateCmd.Flags().Float64("spare", 0, "spare complexity handed to the payload generator (default from profile)")
}
