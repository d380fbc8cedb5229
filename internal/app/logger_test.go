package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_FormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "request", "Test")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "shown", record["msg"])
	require.Equal(t, "Test", record["request"])
}

func TestNewLogger_TextIsDefault(t *testing.T) {
	var buf bytes.Buffer
	newLogger("debug", "text", &buf).Debug("hello")
	require.Contains(t, buf.String(), "msg=hello")
}
