package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the workspace settings.
type Config struct {
	Theme    string `yaml:"theme"`     // catppuccin flavor: latte, frappe, macchiato, mocha
	Spacing  int    `yaml:"spacing"`   // gap between panes, in cells
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

func DefaultConfig() Config {
	return Config{
		Theme:    "mocha",
		Spacing:  1,
		LogLevel: "info",
	}
}

// Load reads the config from the default location. A missing file yields
// the defaults without error.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.Spacing < 0 {
		cfg.Spacing = 0
	}

	return cfg, nil
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "panegrid", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "panegrid", "config.yaml")
	}

	return filepath.Join(home, ".config", "panegrid", "config.yaml")
}

// DataDir returns the directory for logs and the instance lock, honoring
// XDG_DATA_HOME.
func DataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "panegrid")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "share", "panegrid")
	}

	return filepath.Join(home, ".local", "share", "panegrid")
}
