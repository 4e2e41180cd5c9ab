package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khmm12/firefly-exporter/internal/common/tracing"
)

func TestNew_AddsCycleIDAndProgram(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, slog.LevelInfo)
	ctx := tracing.WithCycleID(context.Background())

	logger.InfoContext(ctx, "Run collection", Error(errors.New("boom")))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	require.Equal(t, "Run collection", record["msg"])
	require.Equal(t, tracing.GetCycleID(ctx), record["cycle_id"])
	require.Equal(t, "boom", record["error"])
	require.Contains(t, record, "program")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, slog.LevelError)
	logger.Info("hidden")

	require.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseLevel("verbose")
	require.ErrorContains(t, err, "invalid log level")
}
