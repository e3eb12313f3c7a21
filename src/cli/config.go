// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// envConfigFile names the environment variable consulted when no --config
// flag is given.
const envConfigFile = "ODOORS_CONFIG_FILE"

// Config holds the connection settings for the remote server.
//
// It can be loaded from a JSON or YAML file via the --config flag or the
// ODOORS_CONFIG_FILE environment variable; command-line flags override any
// value read from the file. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Host is the base URL of the remote server.
	Host string `json:"host" yaml:"host"`
	// Database is the tenant database name.
	Database string `json:"database" yaml:"database"`
	// Login is the user login for authenticated commands.
	Login string `json:"login" yaml:"login"`
	// Password is the user password for authenticated commands.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// It uses case-insensitive extension matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads connection settings from a JSON or YAML file or applies
// defaults.
//
// Configuration priority:
//  1. Default values are set
//  2. ODOORS_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Values from the file, when one is found, replace the defaults
//
// A missing file is only an error when it was named explicitly; an unset
// environment variable simply yields the defaults.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{Timeout: 10}

	explicit := configPath != ""
	if configPath == "" {
		configPath = os.Getenv(envConfigFile)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	if config.Timeout <= 0 {
		config.Timeout = 10
	}

	return config, nil
}
