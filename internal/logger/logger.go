// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package logger provides terminal logging for the ptx CLI: a slog-based
// Logger with a human-readable console handler, plus global verbose/
// debug/quiet flags the root command wires from its persistent flags.
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/ptxhq/ptx/internal/env"
)

// Global flags for CLI logging control, set once by the root command's
// PersistentPreRun from the --verbose/--debug/--quiet flags.
var (
	globalVerbose bool
	globalDebug   bool
	globalQuiet   bool
)

// SetGlobalLoggingFlags sets the global logging verbosity flags.
func SetGlobalLoggingFlags(verbose, debug, quiet bool) {
	globalVerbose = verbose
	globalDebug = debug
	globalQuiet = quiet
}

func currentLevel() slog.Level {
	switch {
	case globalQuiet:
		return slog.LevelError
	case globalDebug:
		return slog.LevelDebug
	case globalVerbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Logger wraps slog.Logger with a fixed component tag, used to attribute
// log lines to the pipeline stage that produced them (source, format,
// query, transform, exec).
type Logger struct {
	logger    *slog.Logger
	component string
}

// New creates a component-tagged logger writing human-readable output
// to stderr, honoring NO_COLOR and the global verbose/debug/quiet flags.
func New(component string) *Logger {
	noColor := env.Get(env.NoColor) != ""
	handler := NewConsoleHandler(os.Stderr, &slog.HandlerOptions{Level: currentLevel()}, noColor)
	return &Logger{logger: slog.New(handler), component: component}
}

func (l *Logger) attrs(args []any) []any {
	all := make([]any, 0, len(args)+2)
	all = append(all, "component", l.component)
	all = append(all, args...)
	return all
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.logger.Debug(msg, l.attrs(args)...)
}

// Info logs an info-level message.
func (l *Logger) Info(msg string, args ...any) {
	if !l.logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	l.logger.Info(msg, l.attrs(args)...)
}

// Warn logs a warning-level message.
func (l *Logger) Warn(msg string, args ...any) {
	if !l.logger.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	l.logger.Warn(msg, l.attrs(args)...)
}

// Error logs an error-level message. Errors are always shown, regardless
// of the global verbosity flags.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, l.attrs(args)...)
}

// Slog returns the underlying *slog.Logger, for handing to components
// (such as internal/transform.NewChain) that accept a plain *slog.Logger
// rather than this package's Logger wrapper.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

var global *Logger

// Global returns a process-wide Logger tagged "ptx", created lazily so it
// picks up SetGlobalLoggingFlags values set by the root command before
// any subcommand logs anything.
func Global() *Logger {
	if global == nil {
		global = New("ptx")
	}
	return global
}
