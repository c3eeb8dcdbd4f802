package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	var all, errorsOnly bytes.Buffer
	m := NewMultiHandler(
		slog.NewTextHandler(&all, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errorsOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	logger := slog.New(m)
	logger.Info("routine event")
	logger.Error("something broke")

	assert.True(t, strings.Contains(all.String(), "routine event"))
	assert.True(t, strings.Contains(all.String(), "something broke"))
	assert.False(t, strings.Contains(errorsOnly.String(), "routine event"))
	assert.True(t, strings.Contains(errorsOnly.String(), "something broke"))
}

func TestMultiHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	m := NewMultiHandler(
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	require.False(t, m.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, m.Enabled(context.Background(), slog.LevelError))
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	m := NewMultiHandler(slog.NewTextHandler(&buf, nil))

	logger := slog.New(m).With("component", "test")
	logger.Info("tagged")

	assert.True(t, strings.Contains(buf.String(), "component=test"))
}
