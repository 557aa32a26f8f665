package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tombee/datalink/pkg/errors"
)

// DefaultChain is the chain identifier applied when none is configured.
const DefaultChain = "ethereum-mainnet"

// Config holds the connection's declarative configuration.
// Chain is informational only and is not validated against a known set.
// Credentials (endpoint, token) come from the secrets store, not from here.
type Config struct {
	Chain string `yaml:"chain" json:"chain"`
}

// ValidateConfig checks that all required configuration fields are present
// and returns the config unchanged. Only chain is required; nothing else is
// validated.
func ValidateConfig(cfg Config) (Config, error) {
	if cfg.Chain == "" {
		return cfg, &errors.ConfigError{
			Key:    "chain",
			Reason: "missing required configuration fields: chain",
		}
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config file into a Config.
// A missing path yields the zero Config without error, so callers can fall
// back to defaults.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, &errors.ConfigError{
			Key:    path,
			Reason: "invalid YAML",
			Cause:  err,
		}
	}

	return cfg, nil
}
