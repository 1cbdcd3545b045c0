// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-realms client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// It also satisfies resty's logger interface, so transport warnings end up in
// the same structured stream as the client's own events.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "realms",
// "rest").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
//
// Output is written to os.Stderr in JSON format so that stdout stays free for
// command output.
func NewLogger(role string) *Logger {
	return newLogger(os.Stderr, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Wrap adapts an existing zerolog.Logger supplied by a library user.
func Wrap(zl zerolog.Logger) *Logger {
	return &Logger{zl}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithLevel returns a copy of l filtered to the named level ("debug", "info",
// ...). An empty name leaves the level unchanged.
func (l *Logger) WithLevel(name string) (*Logger, error) {
	if strings.TrimSpace(name) == "" {
		return l, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return &Logger{l.Level(lvl)}, nil
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Errorf implements resty.Logger.
func (l *Logger) Errorf(format string, v ...any) {
	l.Error().Msgf(strings.TrimSpace(format), v...)
}

// Warnf implements resty.Logger.
func (l *Logger) Warnf(format string, v ...any) {
	l.Warn().Msgf(strings.TrimSpace(format), v...)
}

// Debugf implements resty.Logger.
func (l *Logger) Debugf(format string, v ...any) {
	l.Debug().Msgf(strings.TrimSpace(format), v...)
}
