// Package emitter writes the generated instantiation sources and the
// make-style dependency lists that tell the build system about them.
package emitter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/choicegen/internal/ctxlog"
	"github.com/specialistvlad/choicegen/internal/fsutil"
)

// Status describes what happened to an artifact's source file.
type Status string

const (
	StatusCreated   Status = "created"
	StatusUnchanged Status = "unchanged"
	StatusRefreshed Status = "refreshed"
	StatusPlanned   Status = "planned"
)

// Options configures an Emitter.
type Options struct {
	Dir string

	SourceExt     string
	ObjectExt     string
	DependencyExt string

	// Target is the make target that depends on every object.
	Target string

	// ObjectList and IncludeList are file names inside Dir.
	ObjectList  string
	IncludeList string

	// RefreshChanged rewrites an existing source when its content differs.
	// Otherwise an existing source is never touched.
	RefreshChanged bool

	// DryRun renders artifacts without touching the file system.
	DryRun bool

	// Manifest, when set, is the path of a YAML run manifest written on
	// Close.
	Manifest string
}

// Artifact identifies one generated source.
type Artifact struct {
	Request string
	Values  []string
	// Base is the path without extension.
	Base string
}

// NewArtifact derives the artifact path from the request name and the
// flat slot values: <dir>/run-<request>-<v1>-...-<vn>.
func NewArtifact(dir, request string, values []string) Artifact {
	name := strings.Join(append([]string{"run", request}, values...), "-")
	return Artifact{
		Request: request,
		Values:  append([]string(nil), values...),
		Base:    filepath.Join(dir, name),
	}
}

// Record is the outcome of one Emit call.
type Record struct {
	Request string   `yaml:"request"`
	Path    string   `yaml:"path"`
	Values  []string `yaml:"values"`
	Status  Status   `yaml:"status"`
}

// Emitter writes sources and appends dependency records in call order.
type Emitter struct {
	opts     Options
	objects  *bufio.Writer
	includes *bufio.Writer
	files    []*os.File
	records  []Record
}

// New prepares the output directory and truncates both dependency lists.
func New(ctx context.Context, opts Options) (*Emitter, error) {
	logger := ctxlog.FromContext(ctx)
	e := &Emitter{opts: opts}

	if opts.DryRun {
		logger.Debug("Dry run, output directory is left untouched.", "dir", opts.Dir)
		return e, nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", opts.Dir, err)
	}

	objects, err := os.Create(filepath.Join(opts.Dir, opts.ObjectList))
	if err != nil {
		return nil, fmt.Errorf("failed to create object list: %w", err)
	}
	includes, err := os.Create(filepath.Join(opts.Dir, opts.IncludeList))
	if err != nil {
		objects.Close()
		return nil, fmt.Errorf("failed to create include list: %w", err)
	}

	e.files = []*os.File{objects, includes}
	e.objects = bufio.NewWriter(objects)
	e.includes = bufio.NewWriter(includes)

	if _, err := fmt.Fprintf(e.objects, "%s: \\\n", opts.Target); err != nil {
		e.closeFiles()
		return nil, err
	}

	logger.Debug("Dependency lists truncated.", "object_list", objects.Name(), "include_list", includes.Name())
	return e, nil
}

// SourcePath returns the path of the artifact's source file.
func (e *Emitter) SourcePath(a Artifact) string {
	return a.Base + e.opts.SourceExt
}

// Emit makes sure the artifact's source exists and appends its dependency
// records. render is only called when the content is needed.
func (e *Emitter) Emit(ctx context.Context, a Artifact, render func() (string, error)) (Status, error) {
	logger := ctxlog.FromContext(ctx)
	path := e.SourcePath(a)

	status, err := e.writeSource(path, render)
	if err != nil {
		return "", fmt.Errorf("artifact %s: %w", path, err)
	}
	logger.Debug("Artifact emitted.", "path", path, "status", status)

	if !e.opts.DryRun {
		if _, err := fmt.Fprintf(e.objects, "\t%s%s \\\n", a.Base, e.opts.ObjectExt); err != nil {
			return "", err
		}
		if _, err := fmt.Fprintf(e.includes, "-include %s%s\n", a.Base, e.opts.DependencyExt); err != nil {
			return "", err
		}
	}

	e.records = append(e.records, Record{Request: a.Request, Path: path, Values: a.Values, Status: status})
	return status, nil
}

func (e *Emitter) writeSource(path string, render func() (string, error)) (Status, error) {
	if e.opts.DryRun {
		if _, err := render(); err != nil {
			return "", err
		}
		return StatusPlanned, nil
	}

	exists, err := fsutil.Exists(path)
	if err != nil {
		return "", err
	}
	if exists && !e.opts.RefreshChanged {
		return StatusUnchanged, nil
	}

	content, err := render()
	if err != nil {
		return "", err
	}

	if exists {
		same, err := fsutil.SameContent(path, []byte(content))
		if err != nil {
			return "", err
		}
		if same {
			return StatusUnchanged, nil
		}
	}

	if err := fsutil.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	if exists {
		return StatusRefreshed, nil
	}
	return StatusCreated, nil
}

// Records returns the outcome of every Emit call so far.
func (e *Emitter) Records() []Record {
	return e.records
}

// Close terminates the object list, flushes both lists and writes the
// manifest when one is configured.
func (e *Emitter) Close() error {
	if e.opts.DryRun {
		return nil
	}

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	_, err := e.objects.WriteString("\n")
	keep(err)
	keep(e.objects.Flush())
	keep(e.includes.Flush())
	keep(e.closeFiles())

	if firstErr == nil && e.opts.Manifest != "" {
		keep(WriteManifest(e.opts.Manifest, Manifest{OutputDir: e.opts.Dir, Artifacts: e.records}))
	}
	return firstErr
}

func (e *Emitter) closeFiles() error {
	var firstErr error
	for _, f := range e.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	e.files = nil
	return firstErr
}
