/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path commands for freehand polylines. Only move-to and line-to exist: strokes
// are raw pointer samples with no curve fitting.

type PathOp uint8

const (
	MoveTo PathOp = iota
	LineTo
)

type PathCmd struct {
	Op PathOp
	Pt Point
}

// Path is an ordered polyline. The first command is a MoveTo; the rest are LineTo.
type Path struct{ Cmds []PathCmd }

// ErrMalformedPath is returned by ParsePath for input that is not "M x,y( L x,y)*".
var ErrMalformedPath = errors.New("malformed path")

// MoveTo discards any existing commands and starts a new polyline at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Cmds = append(p.Cmds[:0], PathCmd{Op: MoveTo, Pt: Point{x, y}})
}

// LineTo appends a vertex. It is ignored on an empty path.
func (p *Path) LineTo(x, y float64) {
	if len(p.Cmds) == 0 {
		return
	}
	p.Cmds = append(p.Cmds, PathCmd{Op: LineTo, Pt: Point{x, y}})
}

func (p *Path) Reset() { p.Cmds = p.Cmds[:0] }

func (p Path) Empty() bool { return len(p.Cmds) == 0 }

// Points returns the vertices in command order.
func (p Path) Points() []Point {
	out := make([]Point, len(p.Cmds))
	for i, c := range p.Cmds {
		out[i] = c.Pt
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all vertices; zero Rect when empty.
func (p Path) Bounds() Rect {
	if len(p.Cmds) == 0 {
		return Rect{}
	}
	minX, minY := p.Cmds[0].Pt.X, p.Cmds[0].Pt.Y
	maxX, maxY := minX, minY
	for _, c := range p.Cmds[1:] {
		minX = min(minX, c.Pt.X)
		minY = min(minY, c.Pt.Y)
		maxX = max(maxX, c.Pt.X)
		maxY = max(maxY, c.Pt.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// String encodes the path as "M10,10 L20,10 L20,20". Coordinates use the
// shortest decimal form and are never clamped or rounded.
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p.Cmds) * 12)
	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		if c.Op == MoveTo {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(FormatCoord(c.Pt.X))
		b.WriteByte(',')
		b.WriteString(FormatCoord(c.Pt.Y))
	}
	return b.String()
}

// FormatCoord renders a coordinate the way path strings store it.
func FormatCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// ParsePath decodes a path command string produced by Path.String.
func ParsePath(s string) (Path, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Path{}, fmt.Errorf("%w: empty", ErrMalformedPath)
	}
	p := Path{Cmds: make([]PathCmd, 0, len(fields))}
	for i, f := range fields {
		op := LineTo
		want := byte('L')
		if i == 0 {
			op, want = MoveTo, 'M'
		}
		if f[0] != want {
			return Path{}, fmt.Errorf("%w: token %d %q, want %c", ErrMalformedPath, i, f, want)
		}
		xs, ys, ok := strings.Cut(f[1:], ",")
		if !ok {
			return Path{}, fmt.Errorf("%w: token %d %q has no comma", ErrMalformedPath, i, f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return Path{}, fmt.Errorf("%w: token %d: %v", ErrMalformedPath, i, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return Path{}, fmt.Errorf("%w: token %d: %v", ErrMalformedPath, i, err)
		}
		p.Cmds = append(p.Cmds, PathCmd{Op: op, Pt: Point{x, y}})
	}
	return p, nil
}
