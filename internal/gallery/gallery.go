/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package gallery keeps in-memory snapshots of finished drawings.
//
// Snapshots are deep copies: changing the live history after a save, or a
// drawing after it has been loaded back, never touches the stored copy.
// Nothing is persisted; the gallery lives as long as the process.
package gallery

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"penstudio/internal/drawing"
	applog "penstudio/internal/log"
)

// ErrNothingToSave is returned by Save for an empty history.
var ErrNothingToSave = errors.New("nothing to save")

// TimestampLayout is the human-readable form of SavedDrawing.Timestamp.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// SavedDrawing is one gallery entry.
type SavedDrawing struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Paths     []drawing.Stroke `json:"paths"`
	Timestamp string           `json:"timestamp"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Option configures a Gallery.
type Option func(*Gallery)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gallery) { g.now = now }
}

// Gallery is the ordered list of saved drawings, oldest first.
type Gallery struct {
	drawings []SavedDrawing
	now      func() time.Time
	log      *slog.Logger
}

func New(opts ...Option) *Gallery {
	g := &Gallery{now: time.Now, log: applog.WithComponent("gallery")}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Save snapshots strokes as a new entry named "Drawing N".
func (g *Gallery) Save(strokes []drawing.Stroke) (SavedDrawing, error) {
	if len(strokes) == 0 {
		return SavedDrawing{}, ErrNothingToSave
	}
	id, err := uuid.NewV7()
	if err != nil {
		return SavedDrawing{}, fmt.Errorf("new drawing id: %w", err)
	}
	paths, err := cloneStrokes(strokes)
	if err != nil {
		return SavedDrawing{}, err
	}
	now := g.now()
	d := SavedDrawing{
		ID:        id.String(),
		Name:      fmt.Sprintf("Drawing %d", len(g.drawings)+1),
		Paths:     paths,
		Timestamp: now.Format(TimestampLayout),
		CreatedAt: now,
	}
	g.drawings = append(g.drawings, d)
	g.log.Info("drawing saved", slog.String("id", d.ID), slog.String("name", d.Name), slog.Int("strokes", len(paths)))
	return d.clone(), nil
}

// Drawings lists all entries in save order.
func (g *Gallery) Drawings() []SavedDrawing {
	out := make([]SavedDrawing, len(g.drawings))
	for i, d := range g.drawings {
		out[i] = d.clone()
	}
	return out
}

// Get looks an entry up by ID.
func (g *Gallery) Get(id string) (SavedDrawing, bool) {
	for _, d := range g.drawings {
		if d.ID == id {
			return d.clone(), true
		}
	}
	return SavedDrawing{}, false
}

func (g *Gallery) Len() int { return len(g.drawings) }

func (d SavedDrawing) clone() SavedDrawing {
	d.Paths = append([]drawing.Stroke(nil), d.Paths...)
	return d
}

func cloneStrokes(src []drawing.Stroke) ([]drawing.Stroke, error) {
	var dst []drawing.Stroke
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy strokes: %w", err)
	}
	return dst, nil
}
