// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration: reading and writing the
// configuration file and locating the tags data file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DataEnvVar overrides the location of the tags file.
const DataEnvVar = "OPENTAG_DATA"

// Config represents the top-level application configuration
type Config struct {
	// DataPath is a custom location for the tags file (optional)
	DataPath string `yaml:"data_path,omitempty"`

	// DefaultApp opens targets when neither the command line nor the tag names an app
	DefaultApp string `yaml:"default_app,omitempty"`

	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level,omitempty"`
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "opentag", "config.yaml"), nil
}

// DefaultDataPath returns $XDG_DATA_HOME/opentag/tags.json, falling back to
// ~/.local/share when XDG_DATA_HOME is unset.
func DefaultDataPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "opentag", "tags.json"), nil
}

// TagsPath returns the tags file to use: $OPENTAG_DATA first, then the
// configured data_path, then the default location.
func (c Config) TagsPath() (string, error) {
	if p := os.Getenv(DataEnvVar); p != "" {
		return p, nil
	}
	if c.DataPath != "" {
		return ResolvePath(c.DataPath)
	}
	return DefaultDataPath()
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// ResolvePath expands a leading "~/" to the user's home directory.
func ResolvePath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/")), nil
}
