package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/choicegen/internal/app"
	"github.com/specialistvlad/choicegen/internal/engine"
	"github.com/specialistvlad/choicegen/internal/hcl"
)

// Scenario describes one generator setup. Files holds extra files relative
// to the harness root, for example HCL configuration.
type Scenario struct {
	Input         string
	Compare       string
	Instantiation string
	Files         map[string]string
	// Config lists config paths relative to the harness root.
	Config []string

	RefreshChanged bool
	DryRun         bool
}

// Harness owns a temporary directory holding a scenario's files. Run may
// be called repeatedly against the same output directory.
type Harness struct {
	t        *testing.T
	scenario Scenario
	Root     string
	// OutputDir is where the generator writes its artifacts.
	OutputDir string
}

// HarnessResult holds the outcomes of one generator run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Summary   *engine.Summary
	Err       error
}

// NewHarness writes the scenario's files into a fresh temporary directory.
func NewHarness(t *testing.T, s Scenario) *Harness {
	t.Helper()

	root := t.TempDir()
	h := &Harness{t: t, scenario: s, Root: root, OutputDir: filepath.Join(root, "generated")}

	files := map[string]string{
		"choices.h":         s.Input,
		"compare.tpp":       s.Compare,
		"instantiation.tpp": s.Instantiation,
	}
	for name, content := range s.Files {
		files[name] = content
	}
	for name, content := range files {
		h.WriteFile(name, content)
	}
	return h
}

// WriteFile creates or replaces a file relative to the harness root.
func (h *Harness) WriteFile(name, content string) {
	h.t.Helper()
	path := filepath.Join(h.Root, name)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o644))
}

// Run executes the full application against the scenario.
func (h *Harness) Run() *HarnessResult {
	h.t.Helper()

	var configPaths []string
	for _, p := range h.scenario.Config {
		configPaths = append(configPaths, filepath.Join(h.Root, p))
	}

	appConfig := &app.Config{
		Input:                 filepath.Join(h.Root, "choices.h"),
		ConfigPaths:           configPaths,
		OutputDir:             h.OutputDir,
		CompareTemplate:       filepath.Join(h.Root, "compare.tpp"),
		InstantiationTemplate: filepath.Join(h.Root, "instantiation.tpp"),
		RefreshChanged:        h.scenario.RefreshChanged,
		DryRun:                h.scenario.DryRun,
	}

	testApp, out, logs, err := app.SetupAppTest(h.t, appConfig, hcl.NewLoaderWithEnv("ROOT="+h.Root))
	if err != nil {
		return &HarnessResult{Stdout: out.String(), LogOutput: logs.String(), Err: err}
	}

	summary, err := testApp.Run(context.Background(), strings.NewReader(""))
	return &HarnessResult{
		Stdout:    out.String(),
		LogOutput: logs.String(),
		Summary:   summary,
		Err:       err,
	}
}

// Generated returns the sorted names of the files in the output directory.
func (h *Harness) Generated() []string {
	h.t.Helper()
	entries, err := os.ReadDir(h.OutputDir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(h.t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// ReadGenerated returns the content of a file in the output directory.
func (h *Harness) ReadGenerated(name string) string {
	h.t.Helper()
	b, err := os.ReadFile(filepath.Join(h.OutputDir, name))
	require.NoError(h.t, err)
	return string(b)
}
