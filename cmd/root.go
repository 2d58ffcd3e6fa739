// Package cmd holds the command line entry points.
package cmd

import (
	"digitalmindset/config"
	"digitalmindset/utils"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "digitalmindset",
	Short: "Token-gated digital product generator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		utils.InitializeLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokensCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
