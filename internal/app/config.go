package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty string fields and false flags leave the loaded configuration alone.
type Config struct {
	// Input is the declarations file. Empty or "-" reads standard input.
	Input       string
	ConfigPaths []string // hcl files or directories

	OutputDir             string
	CompareTemplate       string
	InstantiationTemplate string
	Manifest              string
	RefreshChanged        bool
	DryRun                bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel))
	}
	for _, p := range cfg.ConfigPaths {
		if p == "" {
			errs = append(errs, errors.New("config path cannot be empty"))
			break
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// stdin reports whether the declarations come from standard input.
func (c *Config) stdin() bool {
	return c.Input == "" || c.Input == "-"
}
