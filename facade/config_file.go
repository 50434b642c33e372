// File: facade/config_file.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Config file loading for the facade. Supports YAML and JSON, selected by
// file extension; values overlay DefaultConfig.

package facade

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a pool configuration file and overlays it on
// DefaultConfig. Recognized extensions: .yaml, .yml, .json.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	if cfg.Name == "" {
		return nil, fmt.Errorf("config: pool name must not be empty")
	}
	return cfg, nil
}
