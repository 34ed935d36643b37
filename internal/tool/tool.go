/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package tool holds the drawing settings shared by the options panel and the
// stroke capture, and the resolver that turns those settings into a stroke style.
package tool

import (
	"fmt"
	"strings"

	"penstudio/internal/vector"
)

// Tool is a named drawing mode.
type Tool string

const (
	Pen         Tool = "pen"
	Brush       Tool = "brush"
	Highlighter Tool = "highlighter"
	Eraser      Tool = "eraser"
)

// PenType is a sub-mode of the pen tool.
type PenType string

const (
	Normal      PenType = "normal"
	Calligraphy PenType = "calligraphy"
	Marker      PenType = "marker"
)

// Style derivation constants.
const (
	BrushWidthScale       = 1.5
	CalligraphyWidthScale = 0.8
	HighlighterOpacity    = 0.4
)

// ParseTool accepts a tool id case-insensitively.
func ParseTool(s string) (Tool, error) {
	t := Tool(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Pen, Brush, Highlighter, Eraser:
		return t, nil
	}
	return "", fmt.Errorf("%w: tool %q", ErrUnknownOption, s)
}

// ParsePenType accepts a pen type id case-insensitively.
func ParsePenType(s string) (PenType, error) {
	p := PenType(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Normal, Calligraphy, Marker:
		return p, nil
	}
	return "", fmt.Errorf("%w: pen type %q", ErrUnknownOption, s)
}

// Settings is the session-wide drawing state. It is passed by pointer to the
// panel (writer) and the capture (reader); it is never persisted.
type Settings struct {
	Tool    Tool
	Color   vector.Color
	Width   float64
	Opacity float64
	PenType PenType
}

// DefaultSettings matches a fresh session: black normal pen, width 3, fully opaque.
func DefaultSettings() Settings {
	return Settings{Tool: Pen, Color: vector.Black, Width: 3, Opacity: 1, PenType: Normal}
}

// StrokeStyle is the visual style stamped onto a finished stroke.
type StrokeStyle struct {
	Width   float64      `json:"strokeWidth"`
	Color   vector.Color `json:"stroke"`
	Opacity float64      `json:"strokeOpacity"`
}

// Resolve derives the stroke style for the given settings. It is a pure function.
//
//	pen          width         color  opacity
//	pen+callig.  width*0.8     color  opacity
//	brush        width*1.5     color  opacity
//	highlighter  width         color  0.4
//	eraser       width         white  1.0
func Resolve(s Settings) StrokeStyle {
	st := StrokeStyle{Width: s.Width, Color: s.Color, Opacity: s.Opacity}
	switch s.Tool {
	case Pen:
		if s.PenType == Calligraphy {
			st.Width = s.Width * CalligraphyWidthScale
		}
	case Brush:
		st.Width = s.Width * BrushWidthScale
	case Highlighter:
		// overrides the selected opacity level
		st.Opacity = HighlighterOpacity
	case Eraser:
		st.Color = vector.White
		st.Opacity = 1
	}
	return st
}
