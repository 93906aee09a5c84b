package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paperflow",
	Short: "Order workflow for a paper supply business",
	Long: `Paperflow processes free-text customer orders for a paper supply
business. A coordinator parses the request into order lines, then delegates
to three tool-calling Claude agents: inventory checks stock and restocks,
quoting computes a price with bulk-discount lookup, and sales records the
transaction and estimates delivery.

Start with 'paperflow seed' to initialize the local database, then run
'paperflow process' with a customer request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
