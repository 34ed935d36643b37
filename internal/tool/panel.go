/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tool

import (
	"errors"
	"fmt"
	"log/slog"

	applog "penstudio/internal/log"
	"penstudio/internal/vector"
)

// ErrUnknownOption is returned when a selection is outside the fixed option sets.
var ErrUnknownOption = errors.New("unknown option")

// Panel routes option selections into the shared Settings. Every selection is
// checked against the fixed option sets; a rejected selection leaves Settings untouched.
type Panel struct {
	s   *Settings
	log *slog.Logger
}

// NewPanel binds a panel to the settings it mutates.
func NewPanel(s *Settings) *Panel {
	return &Panel{s: s, log: applog.WithComponent("panel")}
}

// Settings returns the current settings by value.
func (p *Panel) Settings() Settings { return *p.s }

func (p *Panel) SelectTool(t Tool) error {
	t, err := ParseTool(string(t))
	if err != nil {
		return err
	}
	p.s.Tool = t
	p.log.Debug("tool selected", slog.String("tool", string(t)))
	return nil
}

func (p *Panel) SelectPenType(pt PenType) error {
	pt, err := ParsePenType(string(pt))
	if err != nil {
		return err
	}
	p.s.PenType = pt
	p.log.Debug("pen type selected", slog.String("pen_type", string(pt)))
	return nil
}

func (p *Panel) SelectOpacity(o float64) error {
	if !IsOpacityLevel(o) {
		return fmt.Errorf("%w: opacity %v", ErrUnknownOption, o)
	}
	p.s.Opacity = o
	p.log.Debug("opacity selected", slog.Float64("opacity", o))
	return nil
}

func (p *Panel) SelectColor(c vector.Color) error {
	if !IsPaletteColor(c) {
		return fmt.Errorf("%w: color %s", ErrUnknownOption, c.Hex())
	}
	p.s.Color = c
	p.log.Debug("color selected", slog.String("color", c.Hex()))
	return nil
}

func (p *Panel) SelectWidth(w float64) error {
	if !IsWidth(w) {
		return fmt.Errorf("%w: width %v", ErrUnknownOption, w)
	}
	p.s.Width = w
	p.log.Debug("width selected", slog.Float64("width", w))
	return nil
}

// ShowsPenTypes reports whether the pen type picker is visible (pen only).
func (p *Panel) ShowsPenTypes() bool { return p.s.Tool == Pen }

// ShowsOpacity reports whether the opacity picker is visible (highlighter and brush).
func (p *Panel) ShowsOpacity() bool { return p.s.Tool == Highlighter || p.s.Tool == Brush }
