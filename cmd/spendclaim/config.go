// config.go - Configuration for the spend-claim demo driver.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the demo driver settings.
type Config struct {
	// File paths
	KeyDir       string `json:"key_dir"`
	RegistryPath string `json:"registry_path"`

	// Sample note
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`

	// Logging
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		KeyDir:       "keys",
		RegistryPath: "nullifiers.json",
		Denom:        "upenumbra",
		Amount:       1000,
		LogLevel:     "info",
	}
}

// LoadConfig loads configuration from file, or writes and returns the
// defaults when the file does not exist.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		var cfg Config
		if err := json.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		return &cfg, nil
	}

	cfg := DefaultConfig()
	if err := SaveConfig(cfg, configPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration to file.
func SaveConfig(cfg *Config, configPath string) error {
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
