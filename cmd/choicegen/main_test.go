package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/choicegen/internal/cli"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "choices.hcl", `
generator {
  output_dir             = "`+filepath.ToSlash(filepath.Join(dir, "generated"))+`"
  compare_template       = "`+filepath.ToSlash(writeFile(t, dir, "compare.tpp", "\tRUN({0}) \\\n"))+`"
  instantiation_template = "`+filepath.ToSlash(writeFile(t, dir, "inst.tpp", "run<{0}>\n"))+`"
}
`)

	out, errW := &bytes.Buffer{}, &bytes.Buffer{}
	in := strings.NewReader("#define CHOICES_Mode A, B\n#define LIST_CHOICES_Test Mode\n")

	err := run(context.Background(), in, out, errW, []string{"-c", cfgPath})
	require.NoError(t, err)
	require.Contains(t, out.String(), "#define GENERATED_RUN_Test \\\n\tRUN(A) \\\n\tRUN(B) \\\n")
	require.NotContains(t, out.String(), "level=", "logs must not end up in the listing")
	require.Contains(t, errW.String(), "Generation finished.")

	_, err = os.Stat(filepath.Join(dir, "generated", "run-Test-B.cpp"))
	require.NoError(t, err)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), nil, out, &bytes.Buffer{}, []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_ConfigurationErrorIsNotAnExitError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := run(context.Background(), strings.NewReader("#define LIST_CHOICES_R Missing\n"), &bytes.Buffer{}, &bytes.Buffer{}, []string{
		"-o", filepath.Join(dir, "generated"),
		"--compare-template", writeFile(t, dir, "c.tpp", "{0}\n"),
		"--instantiation-template", writeFile(t, dir, "i.tpp", "{0}"),
	})
	require.ErrorContains(t, err, "no definition for CHOICES_Missing found, needed because of LIST_CHOICES_R")

	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr), "configuration errors exit with the generic code")
}
