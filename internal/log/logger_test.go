/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Init(Options{Writer: io.Discard})
		_ = Close()
	})
}

func readJSONLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()
	var out []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(line, &m); err != nil {
			t.Fatalf("unmarshal %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestRotatedFileCarriesComponentAndSession(t *testing.T) {
	resetLogger(t)
	path := filepath.Join(t.TempDir(), "logs", "penstudio.log")
	var console bytes.Buffer
	Init(Options{Level: "debug", File: path, Writer: &console})

	ctx := WithSession(context.Background(), "sess-42")
	hist := WithComponent("history")
	hist.DebugContext(ctx, "stroke appended", slog.Int("strokes", 1))
	WithOperation(WithComponent("session"), "confirm").InfoContext(ctx, "drawing cleared")
	WithComponent("gallery").Info("saved", slog.String("name", "Drawing 1"))
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	lines := readJSONLines(t, path)
	if len(lines) != 3 {
		t.Fatalf("got %d file records, want 3", len(lines))
	}
	first := lines[0]
	if first["component"] != "history" || first["session"] != "sess-42" || first["strokes"] != float64(1) {
		t.Fatalf("history record = %v", first)
	}
	if first["app"] != "penstudio" || first["level"] != "DEBUG" {
		t.Fatalf("static attrs missing: %v", first)
	}
	if lines[1]["op"] != "confirm" || lines[1]["session"] != "sess-42" {
		t.Fatalf("confirm record = %v", lines[1])
	}
	if _, ok := lines[2]["session"]; ok {
		t.Fatalf("record without session context has a session: %v", lines[2])
	}
	if n := bytes.Count(console.Bytes(), []byte("\n")); n != 3 {
		t.Fatalf("console got %d lines, want 3:\n%s", n, console.String())
	}
}

func TestLevelFiltersBothSinks(t *testing.T) {
	resetLogger(t)
	path := filepath.Join(t.TempDir(), "penstudio.log")
	var console bytes.Buffer
	Init(Options{Level: "warn", File: path, Writer: &console})

	l := WithComponent("capture")
	l.Info("gesture began")
	l.Warn("begin while capturing")
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	lines := readJSONLines(t, path)
	if len(lines) != 1 || lines[0]["msg"] != "begin while capturing" {
		t.Fatalf("file records = %v", lines)
	}
	if bytes.Contains(console.Bytes(), []byte("gesture began")) {
		t.Fatalf("info leaked to console: %q", console.String())
	}
}

func TestJSONConsoleFormat(t *testing.T) {
	resetLogger(t)
	var buf bytes.Buffer
	Init(Options{Format: "JSON", Writer: &buf})

	ctx := WithSession(context.Background(), "s-1")
	WithComponent("ui").InfoContext(ctx, "tool selected", slog.String("tool", "brush"))

	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("unmarshal: %v (%q)", err, buf.String())
	}
	if m["session"] != "s-1" || m["component"] != "ui" || m["tool"] != "brush" {
		t.Fatalf("unexpected attrs: %v", m)
	}
}

func TestCloseWithoutFile(t *testing.T) {
	resetLogger(t)
	Init(Options{Writer: io.Discard})
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}

func TestSessionFrom(t *testing.T) {
	if _, ok := SessionFrom(context.Background()); ok {
		t.Fatalf("empty context has a session")
	}
	if _, ok := SessionFrom(WithSession(context.Background(), "")); ok {
		t.Fatalf("empty id counts as a session")
	}
	if id, ok := SessionFrom(WithSession(context.Background(), "abc")); !ok || id != "abc" {
		t.Fatalf("SessionFrom = %q, %v", id, ok)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "warn")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvSource, "TRUE")
	t.Setenv(EnvFile, "")

	opts := FromEnv()
	if opts.Level != "warn" || opts.Format != "json" || !opts.AddSource || opts.File != "" {
		t.Fatalf("FromEnv() = %+v", opts)
	}

	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvSource, "")
	if opts := FromEnv(); opts.Level != "info" || opts.Format != "console" || opts.AddSource {
		t.Fatalf("FromEnv() defaults = %+v", opts)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
