package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/choicegen/internal/combo"
	"github.com/specialistvlad/choicegen/internal/config"
	"github.com/specialistvlad/choicegen/internal/ctxlog"
	"github.com/specialistvlad/choicegen/internal/directive"
	"github.com/specialistvlad/choicegen/internal/emitter"
	"github.com/specialistvlad/choicegen/internal/registry"
	"github.com/specialistvlad/choicegen/internal/rules"
	"github.com/specialistvlad/choicegen/internal/tmpl"
)

const (
	// GeneratedListPrefix names the re-emitted choice list macros.
	GeneratedListPrefix = "GENERATED_CHOICES_"
	// GeneratedRunPrefix names the per-request comparison macros.
	GeneratedRunPrefix = "GENERATED_RUN_"
)

// Engine holds the parsed templates and the filter of a run.
type Engine struct {
	cfg           *config.Model
	compare       *tmpl.Template
	instantiation *tmpl.Template
	filter        *rules.Filter
	dryRun        bool
}

// Option customizes an Engine.
type Option func(*Engine)

// WithTemplates uses already parsed templates instead of reading the files
// named in the configuration.
func WithTemplates(compare, instantiation *tmpl.Template) Option {
	return func(e *Engine) {
		e.compare = compare
		e.instantiation = instantiation
	}
}

// WithDryRun renders everything but leaves the output directory alone.
func WithDryRun(dryRun bool) Option {
	return func(e *Engine) {
		e.dryRun = dryRun
	}
}

// New creates an Engine. Templates are parsed up front so a broken template
// fails the run before any output is produced.
func New(cfg *config.Model, opts ...Option) (*Engine, error) {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}

	var err error
	if e.compare == nil {
		if e.compare, err = tmpl.ParseFile(cfg.Generator.CompareTemplate); err != nil {
			return nil, fmt.Errorf("failed to load comparison template: %w", err)
		}
	}
	if e.instantiation == nil {
		if e.instantiation, err = tmpl.ParseFile(cfg.Generator.InstantiationTemplate); err != nil {
			return nil, fmt.Errorf("failed to load instantiation template: %w", err)
		}
	}

	e.filter, err = rules.NewFilter(cfg.Rules.Roles, cfg.Rules.Labels, cfg.Rules.Disabled...)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Run executes the whole pipeline, reading declarations from in and writing
// the macro listing to out.
func (e *Engine) Run(ctx context.Context, in io.Reader, out io.Writer) (summary *Summary, err error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Engine run started.", "dry_run", e.dryRun)

	decls, err := directive.Parse(ctx, in)
	if err != nil {
		return nil, err
	}
	reg := registry.FromDeclarations(ctx, decls)

	w := bufio.NewWriter(out)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("failed to write listing: %w", flushErr)
		}
	}()

	err = reg.Validate(ctx, func(l *registry.ChoiceList) error {
		_, err := fmt.Fprintf(w, "#define %s%s %s\n", GeneratedListPrefix, l.Name, quoteJoin(l.Options))
		return err
	})
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return nil, err
	}

	em, err := emitter.New(ctx, e.emitterOptions())
	if err != nil {
		return nil, err
	}

	summary = &Summary{}
	for _, req := range reg.Requests() {
		stats, err := e.runRequest(ctx, w, em, reg, req)
		if err != nil {
			em.Close()
			return nil, err
		}
		summary.Requests = append(summary.Requests, stats)
		logger.Info("Request generated.",
			"request", stats.Request,
			"enumerated", stats.Enumerated,
			"kept", stats.Kept,
			"created", stats.Created,
			"unchanged", stats.Unchanged,
			"refreshed", stats.Refreshed,
		)
	}

	if err := em.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish dependency lists: %w", err)
	}
	summary.Artifacts = em.Records()

	logger.Debug("Engine run finished.", "requests", len(summary.Requests), "artifacts", len(summary.Artifacts))
	return summary, nil
}

func (e *Engine) runRequest(ctx context.Context, w io.Writer, em *emitter.Emitter, reg *registry.Registry, req *registry.Request) (RequestStats, error) {
	stats := RequestStats{Request: req.Name, Rejected: make(map[string]int)}

	for _, t := range []*tmpl.Template{e.compare, e.instantiation} {
		if t.Arity() > len(req.Slots) {
			return stats, fmt.Errorf("template %s needs %d values but request %s has %d slots",
				t.Name(), t.Arity(), req.Name, len(req.Slots))
		}
	}

	if _, err := fmt.Fprintf(w, "#define %s%s \\\n", GeneratedRunPrefix, req.Name); err != nil {
		return stats, err
	}

	err := combo.Each(req, reg, func(t combo.Tuple) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Enumerated++

		keep, rule := e.filter.Check(t)
		if !keep {
			stats.Rejected[rule]++
			return nil
		}
		stats.Kept++

		args := Args(t)
		line, err := e.compare.Render(args)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}

		artifact := emitter.NewArtifact(e.cfg.Generator.OutputDir, req.Name, t.Strings())
		status, err := em.Emit(ctx, artifact, func() (string, error) {
			return e.instantiation.Render(args)
		})
		if err != nil {
			return err
		}
		stats.count(status)
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("request %s: %w", req.Name, err)
	}

	_, err = fmt.Fprintln(w)
	return stats, err
}

func (e *Engine) emitterOptions() emitter.Options {
	g := e.cfg.Generator
	return emitter.Options{
		Dir:            g.OutputDir,
		SourceExt:      g.SourceExtension,
		ObjectExt:      g.ObjectExtension,
		DependencyExt:  g.DependencyExtension,
		Target:         g.DependencyTarget,
		ObjectList:     g.ObjectList,
		IncludeList:    g.IncludeList,
		RefreshChanged: g.RefreshChanged,
		DryRun:         e.dryRun,
		Manifest:       g.Manifest,
	}
}

// Args converts a tuple into template arguments, one per slot.
func Args(t combo.Tuple) []tmpl.Arg {
	args := make([]tmpl.Arg, len(t.Values))
	for i, v := range t.Values {
		if v.Variadic {
			args[i] = tmpl.Sequence(v.Items...)
			continue
		}
		args[i] = tmpl.Scalar(v.Label)
	}
	return args
}

func quoteJoin(options []string) string {
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = `"` + o + `"`
	}
	return strings.Join(quoted, ", ")
}
