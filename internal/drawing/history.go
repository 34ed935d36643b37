/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package drawing

import (
	"log/slog"

	applog "penstudio/internal/log"
)

// History is the ordered list of finished strokes. Insertion order is drawing
// order: later strokes render on top.
type History struct {
	strokes []Stroke
	log     *slog.Logger
}

func NewHistory() *History {
	return &History{log: applog.WithComponent("history")}
}

// Append adds a stroke at the tail.
func (h *History) Append(s Stroke) {
	h.strokes = append(h.strokes, s)
	h.log.Debug("stroke appended", slog.Int("len", len(h.strokes)), slog.String("tool", string(s.Tool)))
}

// UndoLast removes the most recent stroke. On an empty history it does nothing
// and reports false.
func (h *History) UndoLast() (Stroke, bool) {
	n := len(h.strokes)
	if n == 0 {
		return Stroke{}, false
	}
	last := h.strokes[n-1]
	h.strokes[n-1] = Stroke{}
	h.strokes = h.strokes[:n-1]
	h.log.Debug("stroke undone", slog.Int("len", n-1))
	return last, true
}

// Clear empties the history. There is no redo.
func (h *History) Clear() {
	h.strokes = nil
	h.log.Debug("history cleared")
}

// ReplaceAll discards the current strokes and takes a copy of the given ones.
func (h *History) ReplaceAll(strokes []Stroke) {
	h.strokes = append([]Stroke(nil), strokes...)
	h.log.Debug("history replaced", slog.Int("len", len(h.strokes)))
}

// Strokes returns a copy of the strokes in drawing order.
func (h *History) Strokes() []Stroke { return append([]Stroke(nil), h.strokes...) }

func (h *History) Len() int { return len(h.strokes) }

// Last returns the most recent stroke, if any.
func (h *History) Last() (Stroke, bool) {
	if len(h.strokes) == 0 {
		return Stroke{}, false
	}
	return h.strokes[len(h.strokes)-1], true
}
