package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/choicegen/internal/ctxlog"
	"github.com/specialistvlad/choicegen/internal/engine"
)

// Run executes the generator. stdin is read when the configuration names no
// input file.
func (a *App) Run(ctx context.Context, stdin io.Reader) (*engine.Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	in := stdin
	if !a.cfg.stdin() {
		f, err := os.Open(a.cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	eng, err := engine.New(a.model, engine.WithDryRun(a.cfg.DryRun))
	if err != nil {
		return nil, err
	}

	summary, err := eng.Run(ctx, in, a.outW)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Generation finished.",
		"requests", len(summary.Requests),
		"artifacts", len(summary.Artifacts),
		"dry_run", a.cfg.DryRun,
	)
	return summary, nil
}
