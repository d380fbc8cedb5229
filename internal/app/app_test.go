package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/choicegen/internal/hcl"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig_Validation(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		msg  string
	}{
		{name: "valid", cfg: Config{LogFormat: "text", LogLevel: "info"}},
		{name: "bad format", cfg: Config{LogFormat: "xml", LogLevel: "info"}, msg: "invalid log-format"},
		{name: "bad level", cfg: Config{LogFormat: "json", LogLevel: "trace"}, msg: "invalid log-level"},
		{name: "empty config path", cfg: Config{LogFormat: "json", LogLevel: "info", ConfigPaths: []string{""}}, msg: "config path cannot be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.msg == "" {
				require.NoError(t, err)
				require.Equal(t, tc.cfg.LogLevel, cfg.LogLevel)
				return
			}
			require.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestNewApp_OverridesWinOverConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, filepath.Join(dir, "choices.hcl"), `
generator {
  output_dir       = "from-file"
  compare_template = "file-compare.tpp"
  manifest         = "file.yaml"
}
`)

	a, _, _, err := SetupAppTest(t, &Config{
		ConfigPaths:    []string{cfgPath},
		OutputDir:      "from-flag",
		RefreshChanged: true,
	}, hcl.NewLoaderWithEnv())
	require.NoError(t, err)

	g := a.Model().Generator
	require.Equal(t, "from-flag", g.OutputDir)
	require.Equal(t, "file-compare.tpp", g.CompareTemplate)
	require.Equal(t, "file.yaml", g.Manifest)
	require.True(t, g.RefreshChanged)
}

func TestNewApp_InvalidConfigFile(t *testing.T) {
	cfgPath := writeFile(t, filepath.Join(t.TempDir(), "bad.hcl"), `generator {`)

	_, _, _, err := SetupAppTest(t, &Config{ConfigPaths: []string{cfgPath}}, hcl.NewLoaderWithEnv())
	require.ErrorContains(t, err, "failed to load configuration")
}

func TestRun_GeneratesFromInputFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "generated")

	a, out, logs, err := SetupAppTest(t, &Config{
		Input:                 writeFile(t, filepath.Join(dir, "choices.h"), "#define CHOICES_Mode A, B\n#define LIST_CHOICES_Test Mode\n"),
		OutputDir:             outDir,
		CompareTemplate:       writeFile(t, filepath.Join(dir, "compare.tpp"), "\tRUN({0}) \\\n"),
		InstantiationTemplate: writeFile(t, filepath.Join(dir, "inst.tpp"), "template void run<{0}>();\n"),
		Manifest:              filepath.Join(dir, "manifest.yaml"),
	}, nil)
	require.NoError(t, err)

	summary, err := a.Run(context.Background(), strings.NewReader("ignored"))
	require.NoError(t, err)
	require.Equal(t, 2, summary.Kept())

	require.Contains(t, out.String(), `#define GENERATED_CHOICES_Mode "A", "B"`)
	require.Contains(t, out.String(), "\tRUN(B) \\\n")
	require.Contains(t, logs.String(), "Generation finished.")

	content, err := os.ReadFile(filepath.Join(outDir, "run-Test-A.cpp"))
	require.NoError(t, err)
	require.Equal(t, "template void run<A>();\n", string(content))

	_, err = os.Stat(filepath.Join(dir, "manifest.yaml"))
	require.NoError(t, err)
}

func TestRun_ReadsStdinAndHonoursDryRun(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "generated")

	a, out, _, err := SetupAppTest(t, &Config{
		Input:                 "-",
		OutputDir:             outDir,
		CompareTemplate:       writeFile(t, filepath.Join(dir, "compare.tpp"), "{0}\n"),
		InstantiationTemplate: writeFile(t, filepath.Join(dir, "inst.tpp"), "{0}"),
		DryRun:                true,
	}, nil)
	require.NoError(t, err)

	_, err = a.Run(context.Background(), strings.NewReader("#define CHOICES_M X\n#define LIST_CHOICES_R M\n"))
	require.NoError(t, err)
	require.Contains(t, out.String(), "#define GENERATED_RUN_R \\\nX\n")

	_, err = os.Stat(outDir)
	require.True(t, os.IsNotExist(err))
}

func TestRun_MissingInputFile(t *testing.T) {
	a, _, _, err := SetupAppTest(t, &Config{Input: filepath.Join(t.TempDir(), "none.h")}, nil)
	require.NoError(t, err)

	_, err = a.Run(context.Background(), nil)
	require.ErrorContains(t, err, "failed to open input")
}
