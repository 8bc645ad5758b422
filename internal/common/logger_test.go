package common

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures records emitted through the default logger.
type recordingHandler struct {
	records *[]slog.Record
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r)
	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h recordingHandler) WithGroup(string) slog.Handler { return h }

func captureRecords(t *testing.T) *[]slog.Record {
	t.Helper()
	var records []slog.Record
	prev := slog.Default()
	slog.SetDefault(slog.New(recordingHandler{records: &records}))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &records
}

func attrKeys(r slog.Record) map[string]string {
	keys := make(map[string]string)
	r.Attrs(func(a slog.Attr) bool {
		keys[a.Key] = a.Value.String()
		return true
	})
	return keys
}

func TestLogError(t *testing.T) {
	records := captureRecords(t)

	LogError(errors.New("no such table"), "Failed to parse OFX file", Fields{"file": "june.qfx"})

	require.Len(t, *records, 1)
	r := (*records)[0]
	assert.Equal(t, slog.LevelError, r.Level)
	assert.Equal(t, "Failed to parse OFX file", r.Message)

	keys := attrKeys(r)
	assert.Equal(t, "no such table", keys["error"])
	assert.Equal(t, "june.qfx", keys["file"])
}

func TestLogInfo(t *testing.T) {
	records := captureRecords(t)

	LogInfo("Processed file", Fields{"transactions": 12})

	require.Len(t, *records, 1)
	r := (*records)[0]
	assert.Equal(t, slog.LevelInfo, r.Level)
	assert.Equal(t, "Processed file", r.Message)
	assert.Equal(t, "12", attrKeys(r)["transactions"])
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, format := range []string{"console", "json", "unknown"} {
		require.NoError(t, SetupLogger(slog.LevelInfo, format), "format %s", format)
	}
}
