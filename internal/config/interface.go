package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and applies every
	// setting they contain on top of base.
	Load(ctx context.Context, base *Model, paths ...string) (*Model, error)
}

// NopLoader returns base unchanged. It is used when no configuration file
// is given.
type NopLoader struct{}

// Load implements Loader.
func (NopLoader) Load(_ context.Context, base *Model, _ ...string) (*Model, error) {
	return base, nil
}
