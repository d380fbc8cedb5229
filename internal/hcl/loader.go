package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/choicegen/internal/config"
	"github.com/specialistvlad/choicegen/internal/ctxlog"
	"github.com/specialistvlad/choicegen/internal/fsutil"
	"github.com/specialistvlad/choicegen/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL configuration loader that sees the process
// environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// NewLoaderWithEnv creates a loader whose `env` object holds exactly the
// given KEY=VALUE pairs.
func NewLoaderWithEnv(environ ...string) *Loader {
	return &Loader{environ: func() []string { return environ }}
}

// Load parses every .hcl file found under paths, in path order and sorted
// within a directory, and applies them on top of a copy of base. Later
// files override earlier ones.
func (l *Loader) Load(ctx context.Context, base *config.Model, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := *base
	model.Rules.Disabled = append([]string(nil), base.Rules.Disabled...)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing config path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.environ())

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		applyGenerator(&model.Generator, root.Generator)
		applyRules(&model.Rules, root.Rules)
		logger.Debug("Applied configuration file.", "file", file)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &model, nil
}
