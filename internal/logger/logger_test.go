// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandlerFormatsComponentAndMessage(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}, true)

	rec := slog.NewRecord(time.Unix(1700000000, 0).UTC(), slog.LevelWarn, "disk low", 0)
	rec.AddAttrs(slog.String("component", "source"), slog.String("source", "a.log"))

	require.NoError(t, h.Handle(context.Background(), rec))

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "component=source")
	assert.Contains(t, out, "source=a.log")
	assert.Contains(t, out, "disk low")
}

func TestConsoleHandlerEnabledRespectsLevel(t *testing.T) {
	h := NewConsoleHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}, true)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}

func TestCurrentLevelReflectsGlobalFlags(t *testing.T) {
	defer SetGlobalLoggingFlags(false, false, false)

	SetGlobalLoggingFlags(false, false, true)
	assert.Equal(t, slog.LevelError, currentLevel())

	SetGlobalLoggingFlags(false, true, false)
	assert.Equal(t, slog.LevelDebug, currentLevel())

	SetGlobalLoggingFlags(true, false, false)
	assert.Equal(t, slog.LevelInfo, currentLevel())

	SetGlobalLoggingFlags(false, false, false)
	assert.Equal(t, slog.LevelWarn, currentLevel())
}

func TestLoggerTagsComponent(t *testing.T) {
	defer SetGlobalLoggingFlags(false, false, false)
	SetGlobalLoggingFlags(true, false, false)

	l := New("query")
	require.NotNil(t, l.Slog())
	assert.True(t, strings.Contains(l.component, "query"))
}
