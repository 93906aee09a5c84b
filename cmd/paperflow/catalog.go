package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/munderdifflin/paperflow/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the sellable items",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		for _, entry := range cat {
			bold.Printf("%-28s", entry.ItemName)
			fmt.Printf(" %-8s $%.2f/unit\n", entry.Category, entry.UnitPrice)
		}
		return nil
	},
}
