/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penstudio/internal/tool"
	"penstudio/internal/vector"
)

var red = vector.MustParseColor("#FF0000")

func newCapture(s tool.Settings) (*Capture, *History, *tool.Settings) {
	h := NewHistory()
	ps := &s
	return NewCapture(ps, h), h, ps
}

func gesture(c *Capture, pts ...vector.Point) {
	for i, p := range pts {
		if i == 0 {
			c.Handle(Event{Phase: PhaseBegin, X: p.X, Y: p.Y})
			continue
		}
		c.Handle(Event{Phase: PhaseActive, X: p.X, Y: p.Y})
	}
	c.Handle(Event{Phase: PhaseEnd})
}

func TestCapture_PenStroke(t *testing.T) {
	c, h, _ := newCapture(tool.Settings{Tool: tool.Pen, Color: red, Width: 3, Opacity: 1, PenType: tool.Normal})

	gesture(c, vector.Pt(10, 10), vector.Pt(20, 10), vector.Pt(20, 20))

	require.Equal(t, 1, h.Len())
	s, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, "M10,10 L20,10 L20,20", s.Path)
	assert.Equal(t, tool.StrokeStyle{Width: 3, Color: red, Opacity: 1}, s.Style)
	assert.Equal(t, tool.Pen, s.Tool)
	assert.Equal(t, tool.Normal, s.PenType)
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, "", c.Path())
}

func TestCapture_HighlighterAndBrush(t *testing.T) {
	c, h, s := newCapture(tool.Settings{Tool: tool.Highlighter, Color: red, Width: 3, Opacity: 1})
	gesture(c, vector.Pt(0, 0), vector.Pt(5, 5))

	s.Tool = tool.Brush
	s.Width = 5
	gesture(c, vector.Pt(1, 1), vector.Pt(2, 2))

	strokes := h.Strokes()
	require.Len(t, strokes, 2)
	assert.Equal(t, 0.4, strokes[0].Style.Opacity)
	assert.Equal(t, 3.0, strokes[0].Style.Width)
	assert.Equal(t, 7.5, strokes[1].Style.Width)
	assert.Equal(t, tool.Brush, strokes[1].Tool)
}

func TestCapture_SinglePointGestureIsKept(t *testing.T) {
	c, h, _ := newCapture(tool.DefaultSettings())
	gesture(c, vector.Pt(4.5, 7))
	require.Equal(t, 1, h.Len())
	s, _ := h.Last()
	assert.Equal(t, "M4.5,7", s.Path)
}

func TestCapture_IdleEventsAreIgnored(t *testing.T) {
	c, h, _ := newCapture(tool.DefaultSettings())

	c.Handle(Event{Phase: PhaseActive, X: 1, Y: 1})
	_, ok := c.End()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, Idle, c.State())
	_, ok = c.Preview()
	assert.False(t, ok)
}

func TestCapture_StyleResolvedAtEnd(t *testing.T) {
	c, h, s := newCapture(tool.Settings{Tool: tool.Pen, Color: red, Width: 3, Opacity: 1, PenType: tool.Normal})
	c.Begin(0, 0)
	c.Move(1, 1)
	s.Width = 8
	s.Color = vector.Black
	c.End()

	got, _ := h.Last()
	assert.Equal(t, 8.0, got.Style.Width)
	assert.Equal(t, vector.Black, got.Style.Color)
}

func TestCapture_BeginWhileCapturingRestarts(t *testing.T) {
	c, h, _ := newCapture(tool.DefaultSettings())
	c.Begin(1, 1)
	c.Move(2, 2)
	c.Begin(9, 9)
	c.Move(10, 10)
	c.End()

	require.Equal(t, 1, h.Len())
	s, _ := h.Last()
	assert.Equal(t, "M9,9 L10,10", s.Path)
}

func TestCapture_Preview(t *testing.T) {
	c, h, _ := newCapture(tool.Settings{Tool: tool.Pen, Color: red, Width: 5, Opacity: 1, PenType: tool.Calligraphy})
	c.Begin(1, 2)
	c.Move(3, 4)

	p, ok := c.Preview()
	require.True(t, ok)
	assert.Equal(t, "M1,2 L3,4", p.Path)
	assert.Equal(t, 4.0, p.Style.Width)
	assert.Equal(t, Capturing, c.State())
	assert.Equal(t, 0, h.Len())

	c.Reset()
	_, ok = c.Preview()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestCapture_CountsCompletedGestures(t *testing.T) {
	c, h, _ := newCapture(tool.DefaultSettings())
	for i := 0; i < 7; i++ {
		f := float64(i)
		gesture(c, vector.Pt(f, f), vector.Pt(f+1, f))
	}
	c.Move(3, 3)
	c.End()
	assert.Equal(t, 7, h.Len())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "begin", PhaseBegin.String())
	assert.Equal(t, "active", PhaseActive.String())
	assert.Equal(t, "end", PhaseEnd.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}
