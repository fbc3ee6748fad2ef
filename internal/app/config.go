package app

import (
	"errors"
	"fmt"
)

// Output format names accepted by the converter.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatHCL  = "hcl"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // a .yaml/.yml file, or a directory of them
	GetPath   string // optional dotted lookup path into the document

	Format    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	switch cfg.Format {
	case "":
		cfg.Format = FormatYAML
	case FormatYAML, FormatJSON, FormatHCL:
	default:
		return nil, fmt.Errorf("unknown output format %q (expected yaml, json, or hcl)", cfg.Format)
	}

	return &cfg, nil
}
