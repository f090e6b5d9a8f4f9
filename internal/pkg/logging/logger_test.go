package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-engine/internal/config"
)

func newTestLogger(t *testing.T, format, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	l := New(&config.Config{LogFormat: format, LogLevel: level}, "run-xyz")
	buf := &bytes.Buffer{}
	l.out = buf
	return l, buf
}

func TestLogger_TagsEveryLineWithRunID(t *testing.T) {
	l, buf := newTestLogger(t, "json", "debug")
	l.Info("run starting", map[string]interface{}{"mode": "concurrent"})

	var decoded line
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded))
	assert.Equal(t, "run-xyz", decoded.RunID)
	assert.Equal(t, "INFO", decoded.Level)
	assert.Equal(t, "concurrent", decoded.Fields["mode"])
}

func TestLogger_DropsEntriesBelowConfiguredLevel(t *testing.T) {
	l, buf := newTestLogger(t, "text", "warn")
	l.Info("should not appear")
	l.Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
	assert.Contains(t, out, "run=run-xyz")
}

func TestLogger_ErrorFoldsErrIntoFields(t *testing.T) {
	l, buf := newTestLogger(t, "json", "debug")
	l.Error("failed to publish", assert.AnError, map[string]interface{}{"topic": "run-completed"})

	var decoded line
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded))
	assert.Equal(t, assert.AnError.Error(), decoded.Fields["error"])
	assert.Equal(t, "run-completed", decoded.Fields["topic"])
}

func TestRenderText_OmitsRunTagWhenEmpty(t *testing.T) {
	out := renderText(line{Timestamp: "t", Level: "INFO", Message: "hello"})
	assert.False(t, strings.Contains(out, "run="))
	assert.Contains(t, out, "hello")
}
