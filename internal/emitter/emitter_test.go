package emitter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/choicegen/internal/ctxlog"
)

func testOptions(dir string) Options {
	return Options{
		Dir:           dir,
		SourceExt:     ".cpp",
		ObjectExt:     ".o",
		DependencyExt: ".d",
		Target:        "$(TARGET)",
		ObjectList:    "list.d",
		IncludeList:   "generated.d",
	}
}

func constant(s string) func() (string, error) {
	return func() (string, error) { return s, nil }
}

func TestNewArtifact(t *testing.T) {
	a := NewArtifact("build/generated", "EDITOR", []string{"Editor", "Center_4", "Matrix"})
	require.Equal(t, filepath.Join("build/generated", "run-EDITOR-Editor-Center_4-Matrix"), a.Base)

	empty := NewArtifact("out", "Solo", nil)
	require.Equal(t, filepath.Join("out", "run-Solo"), empty.Base)
}

func TestEmit_WritesSourcesAndLists(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()

	e, err := New(ctx, testOptions(dir))
	require.NoError(t, err)

	a := NewArtifact(dir, "Test", []string{"A"})
	b := NewArtifact(dir, "Test", []string{"B"})

	status, err := e.Emit(ctx, a, constant("content A"))
	require.NoError(t, err)
	require.Equal(t, StatusCreated, status)
	status, err = e.Emit(ctx, b, constant("content B"))
	require.NoError(t, err)
	require.Equal(t, StatusCreated, status)
	require.NoError(t, e.Close())

	got, err := os.ReadFile(filepath.Join(dir, "run-Test-A.cpp"))
	require.NoError(t, err)
	require.Equal(t, "content A", string(got))

	objects, err := os.ReadFile(filepath.Join(dir, "list.d"))
	require.NoError(t, err)
	require.Equal(t, "$(TARGET): \\\n\t"+a.Base+".o \\\n\t"+b.Base+".o \\\n\n", string(objects))

	includes, err := os.ReadFile(filepath.Join(dir, "generated.d"))
	require.NoError(t, err)
	require.Equal(t, "-include "+a.Base+".d\n-include "+b.Base+".d\n", string(includes))
}

func TestEmit_ExistingSourceIsNotTouched(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	a := NewArtifact(dir, "Test", []string{"A"})
	path := a.Base + ".cpp"

	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, past, past))

	e, err := New(ctx, testOptions(dir))
	require.NoError(t, err)

	rendered := false
	status, err := e.Emit(ctx, a, func() (string, error) {
		rendered = true
		return "new", nil
	})
	require.NoError(t, err)
	require.NoError(t, e.Close())
	require.Equal(t, StatusUnchanged, status)
	require.False(t, rendered, "existing sources must not be rendered")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.ModTime().Equal(past))

	// The dependency records are still written.
	objects, err := os.ReadFile(filepath.Join(dir, "list.d"))
	require.NoError(t, err)
	require.Contains(t, string(objects), a.Base+".o")
}

func TestEmit_RefreshChanged(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	opts := testOptions(dir)
	opts.RefreshChanged = true

	same := NewArtifact(dir, "R", []string{"same"})
	changed := NewArtifact(dir, "R", []string{"changed"})
	require.NoError(t, os.WriteFile(same.Base+".cpp", []byte("body"), 0o644))
	require.NoError(t, os.WriteFile(changed.Base+".cpp", []byte("stale"), 0o644))

	e, err := New(ctx, opts)
	require.NoError(t, err)

	status, err := e.Emit(ctx, same, constant("body"))
	require.NoError(t, err)
	require.Equal(t, StatusUnchanged, status)

	status, err = e.Emit(ctx, changed, constant("fresh"))
	require.NoError(t, err)
	require.Equal(t, StatusRefreshed, status)
	require.NoError(t, e.Close())

	got, err := os.ReadFile(changed.Base + ".cpp")
	require.NoError(t, err)
	require.Equal(t, "fresh", string(got))
}

func TestEmit_RenderErrorIsReturned(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	e, err := New(ctx, testOptions(dir))
	require.NoError(t, err)
	defer e.Close()

	boom := errors.New("boom")
	_, err = e.Emit(ctx, NewArtifact(dir, "R", []string{"x"}), func() (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(filepath.Join(dir, "run-R-x.cpp"))
	require.True(t, os.IsNotExist(statErr))
}

func TestEmit_DryRunTouchesNothing(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := filepath.Join(t.TempDir(), "generated")
	opts := testOptions(dir)
	opts.DryRun = true

	e, err := New(ctx, opts)
	require.NoError(t, err)

	status, err := e.Emit(ctx, NewArtifact(dir, "R", []string{"x"}), constant("x"))
	require.NoError(t, err)
	require.Equal(t, StatusPlanned, status)
	require.NoError(t, e.Close())

	_, statErr := os.Stat(dir)
	require.True(t, os.IsNotExist(statErr))
	require.Len(t, e.Records(), 1)
}

func TestClose_WritesManifest(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	opts := testOptions(dir)
	opts.Manifest = filepath.Join(dir, "manifest.yaml")

	e, err := New(ctx, opts)
	require.NoError(t, err)
	_, err = e.Emit(ctx, NewArtifact(dir, "Test", []string{"A", "x+y"}), constant("a"))
	require.NoError(t, err)
	require.NoError(t, e.Close())

	m, err := ReadManifest(opts.Manifest)
	require.NoError(t, err)
	require.Equal(t, dir, m.OutputDir)
	require.Len(t, m.Artifacts, 1)
	require.Equal(t, Record{
		Request: "Test",
		Path:    filepath.Join(dir, "run-Test-A-x+y.cpp"),
		Values:  []string{"A", "x+y"},
		Status:  StatusCreated,
	}, m.Artifacts[0])
}
