package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // hcl manifest file or directory

	LogFormat string
	LogLevel  string
	// Strict makes Run return an error when any extension fails a phase.
	// The default preserves the batch contract: failures are reported,
	// never fatal.
	Strict bool
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
