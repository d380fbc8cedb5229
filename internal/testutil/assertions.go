package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertRunLines checks that the GENERATED_RUN_ macro of request lists
// exactly the given comparison lines, in order.
func AssertRunLines(t *testing.T, result *HarnessResult, request string, lines ...string) {
	t.Helper()

	header := fmt.Sprintf("#define GENERATED_RUN_%s \\\n", request)
	_, body, found := strings.Cut(result.Stdout, header)
	require.True(t, found, "no macro for request %s in listing:\n%s", request, result.Stdout)

	if strings.HasPrefix(body, "\n") {
		body = ""
	} else {
		body, _, _ = strings.Cut(body, "\n\n")
	}
	var got []string
	if body != "" {
		got = strings.Split(body, "\n")
	}
	require.Equal(t, lines, got, "comparison lines of request %s", request)
}

// AssertSources checks that the output directory holds exactly the given
// source files, ignoring the dependency lists.
func AssertSources(t *testing.T, h *Harness, ext string, names ...string) {
	t.Helper()

	var got []string
	for _, name := range h.Generated() {
		if filepath.Ext(name) == ext {
			got = append(got, name)
		}
	}
	require.ElementsMatch(t, names, got)
}

// ModTimes snapshots the modification time of every generated file.
func ModTimes(t *testing.T, h *Harness) map[string]int64 {
	t.Helper()

	out := make(map[string]int64)
	for _, name := range h.Generated() {
		info, err := os.Stat(filepath.Join(h.OutputDir, name))
		require.NoError(t, err)
		out[name] = info.ModTime().UnixNano()
	}
	return out
}
