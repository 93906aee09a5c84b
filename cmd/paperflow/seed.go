package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/munderdifflin/paperflow/internal/config"
	"github.com/munderdifflin/paperflow/internal/store"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the local database",
	Long: `Seed creates the paperflow database, loads the catalog as inventory
with baseline stock levels, and records a small set of historical quotes
used for bulk-discount lookups.

Use --force to wipe and reseed an existing database.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Wipe existing data and reseed")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating store: %w", err)
	}

	if seedForce {
		err = db.Reseed(cat, time.Now())
	} else {
		err = db.Seed(cat, time.Now())
	}
	if err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	color.Green("Seeded %d catalog items into %s", len(cat), db.Path())
	return nil
}
