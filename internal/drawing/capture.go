/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package drawing

import (
	"fmt"
	"log/slog"

	applog "penstudio/internal/log"
	"penstudio/internal/tool"
	"penstudio/internal/vector"
)

// Phase is the pointer-motion phase reported by the input surface.
type Phase uint8

const (
	PhaseBegin Phase = iota
	PhaseActive
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseActive:
		return "active"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Event is one pointer-motion sample in canvas-local coordinates.
type Event struct {
	Phase Phase
	X, Y  float64
}

// State of the capture state machine.
type State uint8

const (
	Idle State = iota
	Capturing
)

func (s State) String() string {
	if s == Capturing {
		return "capturing"
	}
	return "idle"
}

// Capture converts pointer events into strokes. It tracks a single
// in-progress path; overlapping gestures are not distinguished.
//
//	Idle      --begin(x,y)--> Capturing  path = "M x,y"
//	Capturing --move(x,y)---> Capturing  path += " L x,y"
//	Capturing --end---------> Idle       append Stroke if path non-empty; clear path
//
// move and end while Idle are ignored.
type Capture struct {
	settings *tool.Settings
	history  *History
	state    State
	path     vector.Path
	log      *slog.Logger
}

// NewCapture reads style settings through s at gesture end and appends to h.
func NewCapture(s *tool.Settings, h *History) *Capture {
	return &Capture{settings: s, history: h, log: applog.WithComponent("capture")}
}

func (c *Capture) State() State { return c.state }

// Handle dispatches an event by phase.
func (c *Capture) Handle(ev Event) {
	switch ev.Phase {
	case PhaseBegin:
		c.Begin(ev.X, ev.Y)
	case PhaseActive:
		c.Move(ev.X, ev.Y)
	case PhaseEnd:
		c.End()
	}
}

// Begin starts a new in-progress path at (x, y). A begin while already
// capturing discards the unfinished path and starts over.
func (c *Capture) Begin(x, y float64) {
	if c.state == Capturing {
		c.log.Debug("gesture restarted", slog.Int("dropped_points", len(c.path.Cmds)))
	}
	c.path.MoveTo(x, y)
	c.state = Capturing
}

// Move appends a vertex. Every sample becomes a vertex; nothing is filtered.
func (c *Capture) Move(x, y float64) {
	if c.state != Capturing {
		return
	}
	c.path.LineTo(x, y)
}

// End finishes the gesture. When a path was captured it is stamped with the
// style for the current settings, appended to the history, and returned.
func (c *Capture) End() (Stroke, bool) {
	if c.state != Capturing {
		return Stroke{}, false
	}
	defer c.Reset()
	if c.path.Empty() {
		return Stroke{}, false
	}
	s := *c.settings
	st := Stroke{
		Path:    c.path.String(),
		Style:   tool.Resolve(s),
		Tool:    s.Tool,
		PenType: s.PenType,
	}
	c.history.Append(st)
	c.log.Debug("stroke committed",
		slog.Int("points", len(c.path.Cmds)),
		slog.String("tool", string(st.Tool)),
		slog.Float64("width", st.Style.Width),
	)
	return st, true
}

// Reset drops any in-progress path and returns to Idle.
func (c *Capture) Reset() {
	c.path.Reset()
	c.state = Idle
}

// Path returns the in-progress path string, or "" when idle.
func (c *Capture) Path() string {
	if c.path.Empty() {
		return ""
	}
	return c.path.String()
}

// Preview returns the in-progress path styled with the current settings.
func (c *Capture) Preview() (Preview, bool) {
	if c.state != Capturing || c.path.Empty() {
		return Preview{}, false
	}
	return Preview{Path: c.path.String(), Style: tool.Resolve(*c.settings)}, true
}
