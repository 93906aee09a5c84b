package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/munderdifflin/paperflow/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the paperflow version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("paperflow %s\n", version.Get())
	},
}
