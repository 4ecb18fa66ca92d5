package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daviddossett/targeted-selection/internal/ports"
)

func decodeLines(t *testing.T, out string) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:     &buf,
		Level:      "debug",
		Format:     FormatJSON,
		Layer:      "application",
		Component:  "session",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "style override set", "instance_id", "button1")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	require.Equal(t, "application", entries[0]["layer"])
	require.Equal(t, "session", entries[0]["component"])
	require.Equal(t, "abc123", entries[0]["correlation_id"])
	require.Equal(t, "button1", entries[0]["instance_id"])
	require.Equal(t, "style override set", entries[0]["msg"])
}

func TestLoggerWithAddsFieldsAndOverridesLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: FormatJSON})
	require.NoError(t, err)

	child := logger.With("component", "loader", "layer", "infrastructure.config")
	child.Warn(context.Background(), "decode failed", "path", "doc.yaml")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	require.Equal(t, "loader", entries[0]["component"])
	require.Equal(t, "doc.yaml", entries[0]["path"])
	require.Equal(t, "infrastructure.config", entries[0]["layer"])

	buf.Reset()
	logger.Info(context.Background(), "parent unaffected")
	entries = decodeLines(t, buf.String())
	require.Equal(t, "infrastructure", entries[0]["layer"])
	require.NotContains(t, entries[0], "component")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn", Format: FormatJSON})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	require.Zero(t, buf.Len())

	logger.Error(context.Background(), "shown")
	require.Len(t, decodeLines(t, buf.String()), 1)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, " logfmt ": FormatLogfmt} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestMergeFieldsLaterKeysWin(t *testing.T) {
	t.Parallel()

	merged := mergeFields(
		[]interface{}{"component", "session", "instance_id", "a"},
		[]interface{}{"instance_id", "b", 42, "ignored", "revision", 3},
		map[string]interface{}{"layer": "application", "correlation_id": ""},
	)
	require.Equal(t, []interface{}{"component", "session", "instance_id", "b", "revision", 3, "layer", "application"}, merged)
}

func TestNoOpLogger(t *testing.T) {
	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")
	require.Same(t, noOp, noOp.With("key", "value"))
}

func TestBufferedLoggerStoresAndFlushes(t *testing.T) {
	buffer := NewEventBuffer(10)
	bufLogger := NewBufferedLogger(buffer)

	ctx := ports.WithCorrelationID(context.Background(), "buffered")
	bufLogger.Info(ctx, "reading settings", "component", "bootstrap")
	bufLogger.With("component", "settings").Error(ctx, "config file unreadable", "attempt", 1)
	require.Equal(t, 2, buffer.Len())

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output, Format: FormatJSON})
	require.NoError(t, err)

	buffer.Flush(delegate)
	require.Zero(t, buffer.Len())

	entries := decodeLines(t, output.String())
	require.Len(t, entries, 2)
	require.Equal(t, "reading settings", entries[0]["msg"])
	require.Equal(t, "bootstrap", entries[0]["component"])
	require.Equal(t, "config file unreadable", entries[1]["msg"])
	require.Equal(t, "settings", entries[1]["component"])
	require.Equal(t, "buffered", entries[1]["correlation_id"])
}

func TestEventBufferDropsOldest(t *testing.T) {
	buffer := NewEventBuffer(2)
	bufLogger := NewBufferedLogger(buffer)
	for _, msg := range []string{"one", "two", "three"} {
		bufLogger.Info(context.Background(), msg)
	}

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output, Format: FormatJSON})
	require.NoError(t, err)
	buffer.Flush(delegate)

	entries := decodeLines(t, output.String())
	require.Len(t, entries, 3)
	require.Equal(t, "two", entries[0]["msg"])
	require.Equal(t, "three", entries[1]["msg"])
	require.Equal(t, "startup log buffer overflowed", entries[2]["msg"])
	require.EqualValues(t, 1, entries[2]["dropped"])
}
