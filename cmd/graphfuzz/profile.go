package main

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the effective profile (defaults, file and flags merged)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		syntax, _ := cmd.Flags().GetString("syntax")

		return a.profile.Write(cmd.OutOrStdout(), syntax)
	},
}

func init() {
	profileCmd.Flags().String("syntax", "toml", "output syntax: toml|yaml")
}
