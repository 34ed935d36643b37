/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package studio ties the drawing core together into one session: tool
// settings and the options panel, stroke capture, history, the gallery and
// the two-step confirmation protocol for destructive actions.
//
// A Session is not safe for concurrent use. UI shells call it from their
// event goroutine only.
package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"penstudio/internal/drawing"
	"penstudio/internal/gallery"
	applog "penstudio/internal/log"
	"penstudio/internal/render"
	"penstudio/internal/tool"
	"penstudio/internal/vector"
)

var (
	ErrConfirmationPending = errors.New("another confirmation is pending")
	ErrUnknownToken        = errors.New("unknown or stale confirmation token")
	ErrUnknownDrawing      = errors.New("unknown drawing")
)

// Prompt shown when saving an empty canvas.
const (
	NothingToSaveTitle   = "Nothing to Save"
	NothingToSaveMessage = "Please draw something before saving."
)

// SavedTitle heads the notice shown after a successful save.
const SavedTitle = "Saved!"

// SavedMessage is the notice body for a drawing saved under name.
func SavedMessage(name string) string { return fmt.Sprintf("Drawing saved as %q", name) }

// Option configures a Session.
type Option func(*Session)

// WithGallery shares an existing gallery instead of creating a fresh one.
func WithGallery(g *gallery.Gallery) Option {
	return func(s *Session) { s.gallery = g }
}

// Session is the object every UI drives.
type Session struct {
	id       string
	ctx      context.Context
	settings *tool.Settings
	panel    *tool.Panel
	history  *drawing.History
	capture  *drawing.Capture
	gallery  *gallery.Gallery
	canvas   vector.Size

	pending   *Confirmation
	lastToken Token

	log *slog.Logger
}

// New starts a session with the given initial settings and a canvas sized
// once for the given viewport.
func New(initial tool.Settings, viewport vector.Size, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		settings: &initial,
		history:  drawing.NewHistory(),
		canvas:   render.CanvasFor(viewport),
		log:      applog.WithComponent("studio"),
	}
	for _, o := range opts {
		o(s)
	}
	if s.gallery == nil {
		s.gallery = gallery.New()
	}
	s.ctx = applog.WithSession(context.Background(), s.id)
	s.panel = tool.NewPanel(s.settings)
	s.capture = drawing.NewCapture(s.settings, s.history)
	s.log.InfoContext(s.ctx, "session started",
		slog.Float64("canvas_w", s.canvas.W),
		slog.Float64("canvas_h", s.canvas.H),
		slog.String("tool", string(initial.Tool)),
	)
	return s
}

func (s *Session) ID() string { return s.id }

// Context carries the session ID for log enrichment.
func (s *Session) Context() context.Context { return s.ctx }

func (s *Session) Panel() *tool.Panel { return s.panel }

func (s *Session) Settings() tool.Settings { return *s.settings }

func (s *Session) Canvas() vector.Size { return s.canvas }

func (s *Session) Strokes() []drawing.Stroke { return s.history.Strokes() }

func (s *Session) Capturing() bool { return s.capture.State() == drawing.Capturing }

// HandlePointer feeds one pointer sample to the capture state machine.
func (s *Session) HandlePointer(ev drawing.Event) {
	s.capture.Handle(ev)
}

// Undo removes the most recent stroke. It reports false on an empty canvas.
func (s *Session) Undo() bool {
	_, ok := s.history.UndoLast()
	if ok {
		s.log.DebugContext(s.ctx, "undo", slog.Int("strokes", s.history.Len()))
	}
	return ok
}

// Save snapshots the current strokes into the gallery. The in-progress path
// is not part of the snapshot.
func (s *Session) Save() (gallery.SavedDrawing, error) {
	d, err := s.gallery.Save(s.history.Strokes())
	if err != nil {
		if errors.Is(err, gallery.ErrNothingToSave) {
			s.log.DebugContext(s.ctx, "save skipped: empty canvas")
		}
		return gallery.SavedDrawing{}, err
	}
	return d, nil
}

func (s *Session) Drawings() []gallery.SavedDrawing { return s.gallery.Drawings() }

// Render builds the current frame, including the live preview.
func (s *Session) Render() render.Scene {
	var prev *drawing.Preview
	if p, ok := s.capture.Preview(); ok {
		prev = &p
	}
	return render.Render(s.history.Strokes(), prev, s.canvas)
}

// Describe writes a short session summary for crash reports.
func (s *Session) Describe(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Session: %s\n", s.id)
	_, _ = fmt.Fprintf(w, "Tool: %s (width %g, color %s)\n", s.settings.Tool, s.settings.Width, s.settings.Color)
	_, _ = fmt.Fprintf(w, "Strokes: %d\n", s.history.Len())
	if b, ok := s.Render().Bounds(); ok {
		_, _ = fmt.Fprintf(w, "Ink bounds: %g,%g %gx%g\n", b.X, b.Y, b.W, b.H)
	}
	_, _ = fmt.Fprintf(w, "Saved drawings: %d\n", s.gallery.Len())
}
