/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package studio

import (
	"fmt"
	"log/slog"

	applog "penstudio/internal/log"
)

// Kind names the destructive action awaiting confirmation.
type Kind uint8

const (
	KindClear Kind = iota + 1
	KindLoad
)

func (k Kind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindLoad:
		return "load"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token identifies one confirmation request. Tokens are never reused within
// a session.
type Token uint64

// Confirmation is a pending prompt. Title and Message are ready to show.
type Confirmation struct {
	Token     Token
	Kind      Kind
	Title     string
	Message   string
	DrawingID string
}

// RequestClear asks for confirmation before wiping the canvas.
func (s *Session) RequestClear() (Confirmation, error) {
	return s.request(Confirmation{
		Kind:    KindClear,
		Title:   "Clear Canvas",
		Message: "Are you sure you want to clear the entire canvas?",
	})
}

// RequestLoad asks for confirmation before replacing the canvas with a saved
// drawing.
func (s *Session) RequestLoad(id string) (Confirmation, error) {
	d, ok := s.gallery.Get(id)
	if !ok {
		return Confirmation{}, fmt.Errorf("%w: %s", ErrUnknownDrawing, id)
	}
	return s.request(Confirmation{
		Kind:      KindLoad,
		Title:     "Load Drawing",
		Message:   fmt.Sprintf("Load %q? Current drawing will be lost.", d.Name),
		DrawingID: d.ID,
	})
}

func (s *Session) request(c Confirmation) (Confirmation, error) {
	if s.pending != nil {
		return Confirmation{}, fmt.Errorf("%w: %s", ErrConfirmationPending, s.pending.Kind)
	}
	s.lastToken++
	c.Token = s.lastToken
	s.pending = &c
	s.log.DebugContext(s.ctx, "confirmation requested", slog.String("kind", c.Kind.String()), slog.Uint64("token", uint64(c.Token)))
	return c, nil
}

// Pending returns the outstanding confirmation, if any.
func (s *Session) Pending() (Confirmation, bool) {
	if s.pending == nil {
		return Confirmation{}, false
	}
	return *s.pending, true
}

// Confirm performs the pending action identified by t.
func (s *Session) Confirm(t Token) error {
	c, err := s.take(t)
	if err != nil {
		return err
	}
	l := applog.WithOperation(s.log, c.Kind.String())
	switch c.Kind {
	case KindClear:
		n := s.history.Len()
		s.history.Clear()
		s.capture.Reset()
		l.InfoContext(s.ctx, "canvas cleared", slog.Int("strokes_dropped", n))
	case KindLoad:
		d, ok := s.gallery.Get(c.DrawingID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownDrawing, c.DrawingID)
		}
		s.history.ReplaceAll(d.Paths)
		s.capture.Reset()
		l.InfoContext(s.ctx, "drawing loaded", slog.String("id", d.ID), slog.String("name", d.Name), slog.Int("strokes", len(d.Paths)))
	}
	return nil
}

// Cancel drops the pending confirmation without changing any state.
func (s *Session) Cancel(t Token) error {
	c, err := s.take(t)
	if err != nil {
		return err
	}
	s.log.DebugContext(s.ctx, "confirmation cancelled", slog.String("kind", c.Kind.String()))
	return nil
}

func (s *Session) take(t Token) (Confirmation, error) {
	if s.pending == nil || s.pending.Token != t {
		return Confirmation{}, fmt.Errorf("%w: %d", ErrUnknownToken, t)
	}
	c := *s.pending
	s.pending = nil
	return c, nil
}
