// Command graphfuzz synthesizes, mutates and inspects graph-shaped fuzz
// inputs with int8 node payloads.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "graphfuzz",
	Short:         "Graph-shaped fuzz input generator",
	Long:          `graphfuzz builds, mutates and inspects directed graph inputs for coverage-guided fuzzing`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(mutateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "profile file (.toml, .yaml or .yml)")
	flags.Int64("seed", 1, "random seed (overrides the profile)")
	flags.String("format", "json", "corpus wire format: json|msgpack (overrides the profile)")
	flags.String("log-level", "info", "log level: debug|info|warn|error (overrides the profile)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphfuzz:", err)
		os.Exit(1)
	}
}
