/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package studio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penstudio/internal/drawing"
	"penstudio/internal/tool"
	"penstudio/internal/vector"
)

var red = vector.MustParseColor("#FF0000")

func newSession(t *testing.T) *Session {
	t.Helper()
	return New(tool.DefaultSettings(), vector.Size{W: 390, H: 800})
}

func draw(s *Session, pts ...vector.Point) {
	for i, p := range pts {
		ph := drawing.PhaseActive
		if i == 0 {
			ph = drawing.PhaseBegin
		}
		s.HandlePointer(drawing.Event{Phase: ph, X: p.X, Y: p.Y})
	}
	s.HandlePointer(drawing.Event{Phase: drawing.PhaseEnd})
}

func TestSession_EndToEndPenStroke(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Panel().SelectColor(red))
	require.NoError(t, s.Panel().SelectWidth(3))

	draw(s, vector.Pt(10, 10), vector.Pt(20, 10), vector.Pt(20, 20))

	strokes := s.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, "M10,10 L20,10 L20,20", strokes[0].Path)
	assert.Equal(t, tool.StrokeStyle{Width: 3, Color: red, Opacity: 1}, strokes[0].Style)

	sc := s.Render()
	assert.Equal(t, vector.Size{W: 350, H: 320}, sc.Size)
	require.Len(t, sc.Layers, 1)
	assert.Contains(t, sc.SVG(), `d="M10,10 L20,10 L20,20"`)
}

func TestSession_RenderIncludesPreview(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Panel().SelectTool(tool.Highlighter))
	s.HandlePointer(drawing.Event{Phase: drawing.PhaseBegin, X: 1, Y: 1})
	s.HandlePointer(drawing.Event{Phase: drawing.PhaseActive, X: 2, Y: 2})

	assert.True(t, s.Capturing())
	sc := s.Render()
	require.Len(t, sc.Layers, 1)
	assert.True(t, sc.Layers[0].Preview)
	assert.Equal(t, tool.HighlighterOpacity, sc.Layers[0].Style.Opacity)
}

func TestSession_Undo(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.Undo())

	draw(s, vector.Pt(1, 1))
	draw(s, vector.Pt(2, 2))
	assert.True(t, s.Undo())
	require.Len(t, s.Strokes(), 1)
	assert.Equal(t, "M1,1", s.Strokes()[0].Path)
}

func TestSession_SaveEmpty(t *testing.T) {
	s := newSession(t)
	_, err := s.Save()
	require.Error(t, err)
	assert.Empty(t, s.Drawings())
}

func TestSavedMessage(t *testing.T) {
	assert.Equal(t, "Saved!", SavedTitle)
	assert.Equal(t, `Drawing saved as "Drawing 2"`, SavedMessage("Drawing 2"))
}

func TestSession_ClearNeedsConfirmation(t *testing.T) {
	s := newSession(t)
	draw(s, vector.Pt(1, 1))
	draw(s, vector.Pt(2, 2))

	c, err := s.RequestClear()
	require.NoError(t, err)
	assert.Equal(t, KindClear, c.Kind)
	assert.Equal(t, "Clear Canvas", c.Title)
	assert.Equal(t, "Are you sure you want to clear the entire canvas?", c.Message)
	assert.Len(t, s.Strokes(), 2)

	require.NoError(t, s.Cancel(c.Token))
	assert.Len(t, s.Strokes(), 2)
	_, ok := s.Pending()
	assert.False(t, ok)

	c, err = s.RequestClear()
	require.NoError(t, err)
	s.HandlePointer(drawing.Event{Phase: drawing.PhaseBegin, X: 5, Y: 5})
	require.NoError(t, s.Confirm(c.Token))
	assert.Empty(t, s.Strokes())
	assert.False(t, s.Capturing())
	assert.Empty(t, s.Render().Layers)
}

func TestSession_ClearKeepsSettings(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Panel().SelectTool(tool.Brush))
	require.NoError(t, s.Panel().SelectWidth(12))
	draw(s, vector.Pt(1, 1))

	c, _ := s.RequestClear()
	require.NoError(t, s.Confirm(c.Token))
	assert.Equal(t, tool.Brush, s.Settings().Tool)
	assert.Equal(t, 12.0, s.Settings().Width)
}

func TestSession_SaveAndLoad(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Panel().SelectTool(tool.Brush))
	require.NoError(t, s.Panel().SelectWidth(5))
	draw(s, vector.Pt(1, 1), vector.Pt(2, 2))
	draw(s, vector.Pt(3, 3))

	d, err := s.Save()
	require.NoError(t, err)
	assert.Equal(t, "Drawing 1", d.Name)
	assert.Equal(t, 7.5, d.Paths[0].Style.Width)
	saved := s.Strokes()

	s.Undo()
	draw(s, vector.Pt(9, 9))
	s.HandlePointer(drawing.Event{Phase: drawing.PhaseBegin, X: 4, Y: 4})

	c, err := s.RequestLoad(d.ID)
	require.NoError(t, err)
	assert.Equal(t, KindLoad, c.Kind)
	assert.Equal(t, "Load Drawing", c.Title)
	assert.Equal(t, `Load "Drawing 1"? Current drawing will be lost.`, c.Message)

	require.NoError(t, s.Confirm(c.Token))
	assert.Equal(t, saved, s.Strokes())
	assert.False(t, s.Capturing())

	// editing after load leaves the gallery copy alone
	s.Undo()
	assert.Len(t, s.Drawings()[0].Paths, 2)
}

func TestSession_LoadUnknown(t *testing.T) {
	s := newSession(t)
	_, err := s.RequestLoad("nope")
	assert.True(t, errors.Is(err, ErrUnknownDrawing))
	_, ok := s.Pending()
	assert.False(t, ok)
}

func TestSession_SinglePendingConfirmation(t *testing.T) {
	s := newSession(t)
	draw(s, vector.Pt(1, 1))
	d, err := s.Save()
	require.NoError(t, err)

	c, err := s.RequestClear()
	require.NoError(t, err)
	_, err = s.RequestLoad(d.ID)
	assert.True(t, errors.Is(err, ErrConfirmationPending))

	p, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, c, p)

	assert.True(t, errors.Is(s.Confirm(c.Token+1), ErrUnknownToken))
	require.NoError(t, s.Confirm(c.Token))
	assert.True(t, errors.Is(s.Confirm(c.Token), ErrUnknownToken))
	assert.True(t, errors.Is(s.Cancel(c.Token), ErrUnknownToken))

	c2, err := s.RequestLoad(d.ID)
	require.NoError(t, err)
	assert.NotEqual(t, c.Token, c2.Token)
}

func TestSession_Describe(t *testing.T) {
	s := newSession(t)
	draw(s, vector.Pt(1, 1))
	var buf bytes.Buffer
	s.Describe(&buf)
	assert.Contains(t, buf.String(), "Session: "+s.ID())
	assert.Contains(t, buf.String(), "Strokes: 1")
	assert.Contains(t, buf.String(), "Saved drawings: 0")
	assert.Contains(t, buf.String(), "Ink bounds: 1,1 0x0")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "clear", KindClear.String())
	assert.Equal(t, "load", KindLoad.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}
