package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	l, buf := newBufLogger(slog.LevelDebug)
	l.Debug(ctx, "d")
	l.Info(ctx, "i")
	l.Warn(ctx, "w")
	l.Error(ctx, "e")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_With(t *testing.T) {
	ctx := context.Background()

	l, buf := newBufLogger(slog.LevelInfo)
	child := l.With("component", "session")
	child.Info(ctx, "restored", "user", "alice")

	out := buf.String()
	require.Contains(t, out, "component=session")
	require.Contains(t, out, "user=alice")
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	ctx := context.Background()

	l, buf := newBufLogger(slog.LevelInfo)
	l.Debug(ctx, "hidden")
	require.Empty(t, buf.String())
}
