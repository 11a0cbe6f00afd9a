// Package config loads the optional fscmp.yaml project configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// RuleConfig is one substitution rule as declared in fscmp.yaml.
type RuleConfig struct {
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// ProjectConfig holds defaults that CLI flags layer on top of: config rules
// apply before CLI rules, exclusion lists are concatenated, and recursive is
// the OR of config and flag.
type ProjectConfig struct {
	Rules     []RuleConfig `yaml:"rules"`
	Exclude   []string     `yaml:"exclude"`
	Recursive bool         `yaml:"recursive"`
}

const ConfigFileName = "fscmp.yaml"

// Load reads fscmp.yaml from dir. Returns ErrConfigNotFound if the file does
// not exist; a missing config is not an error for callers that treat it as
// optional.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
