package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/choicegen/internal/config"
	"github.com/specialistvlad/choicegen/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. The listing goes to
// outW and logs go to logW so the two never mix.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if loader == nil || len(appConfig.ConfigPaths) == 0 {
		loader = config.NopLoader{}
	}
	model, err := loader.Load(ctx, config.Defaults(), appConfig.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "paths", appConfig.ConfigPaths)

	applyOverrides(&model.Generator, appConfig)
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("Configuration validated.", "output_dir", model.Generator.OutputDir)

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    appConfig,
		model:  model,
	}, nil
}

// applyOverrides puts command line settings on top of the loaded model.
func applyOverrides(g *config.Generator, c *Config) {
	overrides := []struct {
		dst *string
		src string
	}{
		{&g.OutputDir, c.OutputDir},
		{&g.CompareTemplate, c.CompareTemplate},
		{&g.InstantiationTemplate, c.InstantiationTemplate},
		{&g.Manifest, c.Manifest},
	}
	for _, o := range overrides {
		if o.src != "" {
			*o.dst = o.src
		}
	}
	if c.RefreshChanged {
		g.RefreshChanged = true
	}
}

// Model returns the effective configuration. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
