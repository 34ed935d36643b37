/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tool

import "penstudio/internal/vector"

// ToolOption describes one entry of the tool picker.
type ToolOption struct {
	ID   Tool
	Name string
	Icon string
}

// PenTypeOption describes one entry of the pen type picker.
type PenTypeOption struct {
	ID   PenType
	Name string
}

var tools = []ToolOption{
	{ID: Pen, Name: "Pen", Icon: "✏️"},
	{ID: Brush, Name: "Brush", Icon: "🖌️"},
	{ID: Highlighter, Name: "Highlight", Icon: "🖍️"},
	{ID: Eraser, Name: "Eraser", Icon: "🧹"},
}

var penTypes = []PenTypeOption{
	{ID: Normal, Name: "Normal"},
	{ID: Calligraphy, Name: "Calligraphy"},
	{ID: Marker, Name: "Marker"},
}

var opacityLevels = []float64{0.3, 0.5, 0.7, 1.0}

var widths = []float64{1, 3, 5, 8, 12, 16}

var palette = []vector.Color{
	vector.MustParseColor("#000000"), vector.MustParseColor("#FF0000"),
	vector.MustParseColor("#00FF00"), vector.MustParseColor("#0000FF"),
	vector.MustParseColor("#FFFF00"), vector.MustParseColor("#FF00FF"),
	vector.MustParseColor("#00FFFF"), vector.MustParseColor("#FFA500"),
	vector.MustParseColor("#800080"), vector.MustParseColor("#FFC0CB"),
	vector.MustParseColor("#A52A2A"), vector.MustParseColor("#808080"),
}

// Option accessors return copies so callers cannot alter the fixed sets.

func Tools() []ToolOption { return append([]ToolOption(nil), tools...) }
func PenTypes() []PenTypeOption { return append([]PenTypeOption(nil), penTypes...) }
func OpacityLevels() []float64 { return append([]float64(nil), opacityLevels...) }
func Widths() []float64 { return append([]float64(nil), widths...) }
func Palette() []vector.Color { return append([]vector.Color(nil), palette...) }
func IsPaletteColor(c vector.Color) bool { return contains(palette, c) }
func IsWidth(w float64) bool { return contains(widths, w) }
func IsOpacityLevel(o float64) bool { return contains(opacityLevels, o) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
