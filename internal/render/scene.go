/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render turns the drawing history plus the in-progress path into a
// declarative Scene: a grid background and one unfilled polyline per stroke.
// A Scene is rebuilt from scratch every frame; nothing is cached.
package render

import (
	"fmt"
	"math"

	"penstudio/internal/drawing"
	"penstudio/internal/tool"
	"penstudio/internal/vector"
)

// Grid background pattern.
const (
	GridTile        = 20.0
	GridStrokeWidth = 0.5
)

var (
	GridFill   = vector.MustParseColor("#F8F8F8")
	GridStroke = vector.MustParseColor("#E0E0E0")
)

// Canvas sizing relative to the viewport.
const (
	ViewportMarginX   = 40.0
	CanvasHeightRatio = 0.4
)

// Layer is one stroke on the surface.
type Layer struct {
	Path    string
	Style   tool.StrokeStyle
	Cap     vector.LineCap
	Join    vector.LineJoin
	Preview bool
}

// Scene is the full description of the drawing surface for one frame.
// Layers are in paint order: finalized strokes first, the preview last.
type Scene struct {
	Size   vector.Size
	Layers []Layer
}

// CanvasFor derives the fixed canvas size from the viewport at startup.
func CanvasFor(viewport vector.Size) vector.Size {
	return vector.Size{
		W: math.Max(0, viewport.W-ViewportMarginX),
		H: math.Max(0, viewport.H*CanvasHeightRatio),
	}
}

// Render builds the scene for the given strokes and optional in-progress path.
// It has no side effects.
func Render(strokes []drawing.Stroke, preview *drawing.Preview, size vector.Size) Scene {
	sc := Scene{Size: size, Layers: make([]Layer, 0, len(strokes)+1)}
	for _, s := range strokes {
		sc.Layers = append(sc.Layers, Layer{Path: s.Path, Style: s.Style, Cap: vector.CapRound, Join: vector.JoinRound})
	}
	if preview != nil && preview.Path != "" {
		sc.Layers = append(sc.Layers, Layer{
			Path:    preview.Path,
			Style:   preview.Style,
			Cap:     vector.CapRound,
			Join:    vector.JoinRound,
			Preview: true,
		})
	}
	return sc
}

// Polyline is a decoded layer.
type Polyline struct {
	Points  []vector.Point
	Style   tool.StrokeStyle
	Cap     vector.LineCap
	Join    vector.LineJoin
	Preview bool
}

// Polylines decodes every layer's path. A malformed path aborts with an error
// naming the layer.
func (s Scene) Polylines() ([]Polyline, error) {
	out := make([]Polyline, 0, len(s.Layers))
	for i, l := range s.Layers {
		p, err := vector.ParsePath(l.Path)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		out = append(out, Polyline{Points: p.Points(), Style: l.Style, Cap: l.Cap, Join: l.Join, Preview: l.Preview})
	}
	return out, nil
}

// Bounds returns the box enclosing every vertex of every layer, and false
// when there is no ink. Malformed layers are skipped.
func (s Scene) Bounds() (vector.Rect, bool) {
	var b vector.Rect
	found := false
	for _, l := range s.Layers {
		p, err := vector.ParsePath(l.Path)
		if err != nil {
			continue
		}
		if !found {
			b, found = p.Bounds(), true
			continue
		}
		b = b.Union(p.Bounds())
	}
	return b, found
}

// Line is a straight segment of the grid.
type Line struct{ From, To vector.Point }

// GridLines returns the tile edges covering the canvas, vertical lines first.
func (s Scene) GridLines() []Line {
	var out []Line
	for x := 0.0; x <= s.Size.W; x += GridTile {
		out = append(out, Line{From: vector.Pt(x, 0), To: vector.Pt(x, s.Size.H)})
	}
	for y := 0.0; y <= s.Size.H; y += GridTile {
		out = append(out, Line{From: vector.Pt(0, y), To: vector.Pt(s.Size.W, y)})
	}
	return out
}
