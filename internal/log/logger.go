/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package log sets up the process-wide slog logger. Records go to a console
// handler (or JSON) and optionally to a size-rotated JSON file; records
// logged with a session context carry the session id.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"penstudio/internal/version"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "PSTUDIO_LOG_LEVEL"
	EnvFormat = "PSTUDIO_LOG_FORMAT"
	EnvFile   = "PSTUDIO_LOG_FILE"
	EnvSource = "PSTUDIO_LOG_SOURCE"
)

// Rotation limits for the log file.
const (
	fileMaxSizeMB  = 5
	fileMaxBackups = 3
	fileMaxAgeDays = 14
)

// Options controls logger initialization. Level is debug, info, warn or
// error; Format is console or json. A non-empty File adds a rotated JSON log.
type Options struct {
	Level     string
	Format    string
	AddSource bool
	File      string
	// Writer replaces stderr for console output; nil means os.Stderr.
	Writer io.Writer
}

var (
	mu      sync.RWMutex
	current *slog.Logger
	file    *lj.Logger
)

// L returns the application logger, initializing it from the environment on
// first use.
func L() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Init replaces the application logger and slog's default. A log file opened
// by a previous Init is closed.
func Init(opts Options) {
	lvl := parseLevel(opts.Level)
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	var sinks []slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		sinks = append(sinks, slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}))
	} else {
		sinks = append(sinks, newConsoleHandler(out, lvl, opts.AddSource))
	}

	var rotated *lj.Logger
	if path := strings.TrimSpace(opts.File); path != "" {
		rotated = &lj.Logger{
			Filename:   path,
			MaxSize:    fileMaxSizeMB,
			MaxBackups: fileMaxBackups,
			MaxAge:     fileMaxAgeDays,
			Compress:   true,
		}
		sinks = append(sinks, slog.NewJSONHandler(rotated, &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}))
	}

	var h slog.Handler = sinks[0]
	if len(sinks) > 1 {
		h = fanout(sinks)
	}
	logger := slog.New(sessionHandler{next: h}).With(
		slog.String("app", "penstudio"),
		slog.String("ver", version.Version),
	)

	mu.Lock()
	prev := file
	current, file = logger, rotated
	mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	slog.SetDefault(logger)
}

// Close flushes and closes the rotated log file, if any. Logging continues
// on the console.
func Close() error {
	mu.Lock()
	f := file
	file = nil
	mu.Unlock()
	if f == nil {
		return nil
	}
	return f.Close()
}

// FromEnv reads Options from the PSTUDIO_LOG_* variables.
func FromEnv() Options {
	opts := Options{Level: "info", Format: "console", File: os.Getenv(EnvFile)}
	if v := os.Getenv(EnvLevel); v != "" {
		opts.Level = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		opts.Format = v
	}
	opts.AddSource = strings.EqualFold(os.Getenv(EnvSource), "true")
	return opts
}

// WithComponent returns a logger tagged with the subsystem name.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation tags l with an operation name.
func WithOperation(l *slog.Logger, op string) *slog.Logger { return l.With(slog.String("op", op)) }

type sessionKey struct{}

// WithSession returns a context whose log records carry the given session id.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionFrom returns the session id stored by WithSession.
func SessionFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// sessionHandler adds the session attribute from the record's context.
type sessionHandler struct{ next slog.Handler }

func (h sessionHandler) Enabled(ctx context.Context, l slog.Level) bool { return h.next.Enabled(ctx, l) }

func (h sessionHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := SessionFrom(ctx); ok {
		r = r.Clone()
		r.AddAttrs(slog.String("session", id))
	}
	return h.next.Handle(ctx, r)
}

func (h sessionHandler) WithAttrs(as []slog.Attr) slog.Handler {
	return sessionHandler{next: h.next.WithAttrs(as)}
}

func (h sessionHandler) WithGroup(name string) slog.Handler {
	return sessionHandler{next: h.next.WithGroup(name)}
}

// fanout sends each record to every sink that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f fanout) WithAttrs(as []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(as)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
