package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Player1    string            `toml:"player1" env:"CARDWAR_PLAYER1"`
	Player2    string            `toml:"player2" env:"CARDWAR_PLAYER2"`
	Seed       int64             `toml:"seed" env:"CARDWAR_SEED"`
	Color      string            `toml:"color" env:"CARDWAR_COLOR"`
	SuitColors map[string]string `toml:"suit_colors"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Player1: "Player 1",
		Player2: "Player 2",
		Color:   ColorAuto,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file. CARDWAR_CONFIG
// takes precedence over the XDG location.
func GetConfigFilePath() string {
	if p := os.Getenv("CARDWAR_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(GetXDGConfigHome(), "cardwar", "config.toml")
}

// LoadConfig loads the config file at path on top of the defaults and then
// applies environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}

// InitConfig writes the default config to path unless a file already
// exists there. It reports whether a file was written.
func InitConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := Write(file, Default()); err != nil {
		return false, err
	}

	return true, nil
}

// Write encodes config as TOML
func Write(w io.Writer, config *Config) error {
	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}
