// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides layered configuration with a well-defined
// precedence order, so enterprise deployments can customize behavior through
// configuration files while command-line flags keep the final say.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags (applied by the caller)
//  2. Environment variables (COPILOT_SEATS_* prefix)
//  3. YAML configuration file
//  4. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/barrosoj/copilot-licenses-enterprise/internal/errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix is the prefix for environment overrides, e.g.
// COPILOT_SEATS_GITHUB_API_ENDPOINT or COPILOT_SEATS_DEFAULTS_PER_PAGE.
const envPrefix = "COPILOT_SEATS"

// Load loads configuration from defaults, an optional YAML file, and the
// environment. If configPath is provided it must exist; otherwise standard
// locations are searched:
//   - .copilot-seats.yaml (current directory)
//   - .copilot-seats.yml (current directory)
//   - ~/.config/copilot-seats/config.yaml
//
// Missing files in the standard locations are not an error; the defaults
// simply apply.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".copilot-seats.yaml",
			".copilot-seats.yml",
			filepath.Join(os.Getenv("HOME"), ".config", "copilot-seats", "config.yaml"),
		}
		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file into cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values that can never work. Per-page
// values above the API's cap of 100 are deliberately not rejected here; the
// API is left to refuse them.
func (c *Config) Validate() error {
	if c.Defaults.PerPage <= 0 {
		return fmt.Errorf("per_page must be positive, got: %d", c.Defaults.PerPage)
	}
	if c.Defaults.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be positive, got: %d", c.Defaults.MaxPages)
	}
	if c.Defaults.Format != "json" && c.Defaults.Format != "csv" {
		return fmt.Errorf("%w: %q (expected json or csv)", apperrors.ErrInvalidFormat, c.Defaults.Format)
	}
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	return nil
}
