// Package config handles configuration loading for paperflow.
// It supports XDG config paths, project-level overrides, and environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/munderdifflin/paperflow/internal/store"
)

// Config holds all configuration for paperflow.
type Config struct {
	Anthropic    AnthropicConfig    `mapstructure:"anthropic"`
	AWS          AWSConfig          `mapstructure:"aws"`
	Store        StoreConfig        `mapstructure:"store"`
	Catalog      CatalogConfig      `mapstructure:"catalog"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// AWSConfig holds AWS Bedrock settings.
type AWSConfig struct {
	UseBedrock bool   `mapstructure:"use_bedrock"`
	Region     string `mapstructure:"region"`
	Profile    string `mapstructure:"profile"`
}

// StoreConfig holds database settings.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig holds catalog override settings. An empty Path selects the
// built-in catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// OrchestratorConfig holds workflow settings.
type OrchestratorConfig struct {
	// MaxIterations caps API calls per collaborator instruction.
	MaxIterations int `mapstructure:"max_iterations"`
	// LogPath is the debug log location; empty disables debug logging.
	LogPath string `mapstructure:"log_path"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ANTHROPIC_API_KEY)
// 2. Project config (.paperflow.yaml in the current directory)
// 3. User config (~/.config/paperflow/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("anthropic.model", "PAPERFLOW_MODEL")
	v.BindEnv("store.path", "PAPERFLOW_STORE_PATH")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "")

	v.SetDefault("aws.use_bedrock", false)
	v.SetDefault("aws.region", "")
	v.SetDefault("aws.profile", "")

	v.SetDefault("store.path", store.DefaultPath())
	v.SetDefault("catalog.path", "")

	v.SetDefault("orchestrator.max_iterations", 20)
	v.SetDefault("orchestrator.log_path", "")
}

// getUserConfigDir returns the XDG config directory for paperflow.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "paperflow")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "paperflow")
	}
	return filepath.Join(home, ".config", "paperflow")
}

// findProjectConfig returns .paperflow.yaml in the current directory if it
// exists.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path := filepath.Join(cwd, ".paperflow.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
