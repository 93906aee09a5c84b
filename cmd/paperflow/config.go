package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/munderdifflin/paperflow/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Config displays the effective configuration after merging defaults,
the user config (~/.config/paperflow/config.yaml), the project config
(.paperflow.yaml), and environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		apiKeyDisplay := "(not set)"
		if cfg.Anthropic.APIKey != "" {
			apiKeyDisplay = "****"
		}
		modelDisplay := cfg.Anthropic.Model
		if modelDisplay == "" {
			modelDisplay = "(default)"
		}

		fmt.Printf("anthropic.api_key: %s\n", apiKeyDisplay)
		fmt.Printf("anthropic.model: %s\n", modelDisplay)
		fmt.Printf("aws.use_bedrock: %t\n", cfg.AWS.UseBedrock)
		fmt.Printf("aws.region: %s\n", cfg.AWS.Region)
		fmt.Printf("aws.profile: %s\n", cfg.AWS.Profile)
		fmt.Printf("store.path: %s\n", cfg.Store.Path)
		fmt.Printf("catalog.path: %s\n", cfg.Catalog.Path)
		fmt.Printf("orchestrator.max_iterations: %d\n", cfg.Orchestrator.MaxIterations)
		fmt.Printf("orchestrator.log_path: %s\n", cfg.Orchestrator.LogPath)
		fmt.Printf("\nconfig file: %s\n", config.GetUserConfigPath())
		return nil
	},
}
