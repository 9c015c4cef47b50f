package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapConsole redirects Setup's console output for the duration of the test.
func swapConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig, origDefault := console, slog.Default()
	console = &buf
	t.Cleanup(func() {
		console = orig
		slog.SetDefault(origDefault)
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestSetup_ConsoleAndFile(t *testing.T) {
	out := swapConsole(t)
	var file bytes.Buffer

	logger := Setup(&file, "info")
	logger.Info("trajectory computed", "samples", 1000)

	assert.Contains(t, out.String(), "trajectory computed")
	assert.Contains(t, file.String(), "samples=1000")
	assert.Equal(t, logger, slog.Default())
}

func TestSetup_InfoFiltersDebug(t *testing.T) {
	out := swapConsole(t)

	logger := Setup(nil, "info")
	logger.Debug("should be filtered")
	logger.Info("should appear")

	assert.NotContains(t, out.String(), "should be filtered")
	assert.Contains(t, out.String(), "should appear")
}

func TestSetup_DebugLevel(t *testing.T) {
	out := swapConsole(t)

	logger := Setup(nil, "debug")
	logger.Debug("debug msg")

	assert.Contains(t, out.String(), "logging initialized")
	assert.Contains(t, out.String(), "debug msg")
}

func TestSetup_TimestampsAreRFC3339(t *testing.T) {
	out := swapConsole(t)

	Setup(nil, "info").Info("stamp")
	assert.Regexp(t, `time=\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z`, out.String())
}

func TestMultiHandler_FansOut(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h1 := slog.NewTextHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelInfo})
	h2 := slog.NewTextHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelInfo})

	slog.New(NewMultiHandler(h1, nil, h2)).Info("fanned out")

	assert.Contains(t, buf1.String(), "fanned out")
	assert.Contains(t, buf2.String(), "fanned out")
}

func TestMultiHandler_Enabled(t *testing.T) {
	infoHandler := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	debugHandler := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug})

	assert.False(t, NewMultiHandler(infoHandler).Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, NewMultiHandler(infoHandler, debugHandler).Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, NewMultiHandler().Enabled(context.Background(), slog.LevelError))
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	multi := NewMultiHandler(slog.NewTextHandler(&buf, nil))

	slog.New(multi.WithAttrs([]slog.Attr{slog.String("stage", "compute")})).Info("a")
	slog.New(multi.WithGroup("launch")).Info("b", "angle", 45)

	assert.Contains(t, buf.String(), "stage=compute")
	assert.Contains(t, buf.String(), "launch.angle=45")
	assert.Equal(t, multi, multi.WithGroup(""))
}

type errorHandler struct {
	slog.Handler
}

func (h *errorHandler) Handle(_ context.Context, _ slog.Record) error {
	return errors.New("handler error")
}

func (h *errorHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func TestMultiHandler_HandleError(t *testing.T) {
	var buf bytes.Buffer
	spy := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(NewMultiHandler(&errorHandler{}, spy))
	logger.Info("should reach spy")

	require.Contains(t, buf.String(), "should reach spy")
}

func TestMultiHandler_HandleReturnsFirstError(t *testing.T) {
	var buf bytes.Buffer
	spy := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	multi := NewMultiHandler(&errorHandler{}, spy)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "after failure", 0)
	err := multi.Handle(context.Background(), r)

	require.EqualError(t, err, "handler error")
	assert.Contains(t, buf.String(), "after failure")
}
