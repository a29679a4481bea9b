package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/emmett/fonemas/internal/engine"
)

// Config represents the application configuration
type Config struct {
	// Corpus is the path to the test sentence corpus
	Corpus string `yaml:"corpus"`

	// Golden is the path to the golden dataset file
	Golden string `yaml:"golden"`

	// Engine settings
	Engine struct {
		Command    string   `yaml:"command"`
		Args       []string `yaml:"args"`
		Mono       bool     `yaml:"mono"`
		Exceptions int      `yaml:"exceptions"`
		Epenthesis bool     `yaml:"epenthesis"`
		Aspiration bool     `yaml:"aspiration"`
		Rehash     bool     `yaml:"rehash"`
		Stress     string   `yaml:"stress"`
	} `yaml:"engine"`

	// Run settings
	Run struct {
		Jobs    int  `yaml:"jobs"`
		Verbose bool `yaml:"verbose"`
	} `yaml:"run"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Corpus = "sharvard.txt"
	cfg.Golden = filepath.Join("tests", "golden_data.json")

	cfg.Engine.Command = "fonemas"
	cfg.Engine.Exceptions = 1
	cfg.Engine.Stress = `"`

	cfg.Run.Jobs = 1

	return cfg
}

// Options returns the engine options described by the configuration.
func (c *Config) Options() engine.Options {
	return engine.Options{
		Mono:       c.Engine.Mono,
		Exceptions: c.Engine.Exceptions,
		Epenthesis: c.Engine.Epenthesis,
		Aspiration: c.Engine.Aspiration,
		Rehash:     c.Engine.Rehash,
		Stress:     c.Engine.Stress,
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadWithFallback attempts to load configuration from multiple locations
// Priority: explicit path > ~/.fonemasrc > /etc/fonemas/config.yaml
func LoadWithFallback(explicitPath string) (*Config, error) {
	// If explicit path is provided, use it
	if explicitPath != "" {
		return Load(explicitPath)
	}

	// Try user config (~/.fonemasrc)
	homeDir, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(homeDir, ".fonemasrc")
		if _, err := os.Stat(userConfigPath); err == nil {
			cfg, err := Load(userConfigPath)
			if err == nil {
				return cfg, nil
			}
		}
	}

	// Try system config (/etc/fonemas/config.yaml)
	systemConfigPath := "/etc/fonemas/config.yaml"
	if _, err := os.Stat(systemConfigPath); err == nil {
		cfg, err := Load(systemConfigPath)
		if err == nil {
			return cfg, nil
		}
	}

	// No config file found, return defaults
	return DefaultConfig(), nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
