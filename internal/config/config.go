// Package config loads ghprovision settings from the environment. Nothing is
// persisted to disk; every run starts from the ambient environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/lcgerke/ghprovision/internal/errors"
)

// Config holds the runtime settings for ghprovision. Repository inputs (name,
// description, visibility) are always collected interactively and are not
// configurable here.
type Config struct {
	// VaultMount is the KV v2 mount searched for a GitHub PAT.
	VaultMount string `env:"GHPROVISION_VAULT_MOUNT" envDefault:"secret"`

	// VaultSecretPath is the path under VaultMount holding the PAT.
	VaultSecretPath string `env:"GHPROVISION_VAULT_PATH" envDefault:"ghprovision/github"`

	// NoColor disables colored output, same as the --no-color flag.
	NoColor bool `env:"GHPROVISION_NO_COLOR" envDefault:"false"`

	// Quiet suppresses informational output, same as the --quiet flag.
	Quiet bool `env:"GHPROVISION_QUIET" envDefault:"false"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrorTypeConfig, "failed to parse environment", err)
	}

	return cfg, nil
}
