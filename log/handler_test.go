package log

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	level slog.Level
	msg   string
}

func newCapture() (*[]captured, Sink) {
	var records []captured
	return &records, func(level slog.Level, msg string) {
		records = append(records, captured{level: level, msg: msg})
	}
}

func TestHandler_ForwardsRecords(t *testing.T) {
	records, sink := newCapture()
	logger := slog.New(NewHandler(sink))

	logger.Info("mod loaded", "version", "1.0.0")

	require.Len(t, *records, 1)
	assert.Equal(t, slog.LevelInfo, (*records)[0].level)
	assert.Equal(t, "mod loaded version=1.0.0", (*records)[0].msg)
}

func TestHandler_LevelFilter(t *testing.T) {
	records, sink := newCapture()
	logger := slog.New(NewHandler(sink, WithLevel(slog.LevelWarn)))

	logger.Info("dropped")
	logger.Warn("kept")

	require.Len(t, *records, 1)
	assert.Equal(t, "kept", (*records)[0].msg)
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	records, sink := newCapture()
	logger := slog.New(NewHandler(sink)).With("mod", "demo").WithGroup("frame")

	logger.Info("rendered", "count", 3)

	require.Len(t, *records, 1)
	// Pre-set attrs come first, then record attrs under the group.
	assert.Equal(t, "rendered mod=demo frame.count=3", (*records)[0].msg)
}
