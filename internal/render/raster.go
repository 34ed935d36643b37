/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"image"
	"image/draw"
	"math"

	xvector "golang.org/x/image/vector"

	"penstudio/internal/vector"
)

// Rasterize paints the scene into a w×h image at scale pixels per scene
// unit. The background and grid cover the scene's size; ink outside it is
// clipped and pixels beyond it stay transparent. Each stroke is filled as one
// coverage mask, so translucent strokes do not darken where they cross
// themselves. Round caps and joins are drawn as discs at the vertices.
//
// A malformed layer aborts with only the background painted.
func (s Scene) Rasterize(w, h int, scale float64) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if scale <= 0 {
		scale = 1
	}
	area := image.Rect(0, 0, int(math.Ceil(s.Size.W*scale)), int(math.Ceil(s.Size.H*scale))).Intersect(img.Bounds())
	if area.Empty() {
		return img, nil
	}
	draw.Draw(img, area, image.NewUniform(GridFill.NRGBA(1)), image.Point{}, draw.Src)

	z := xvector.NewRasterizer(area.Dx(), area.Dy())
	for _, gl := range s.GridLines() {
		addSegment(z, gl.From, gl.To, GridStrokeWidth/2, scale)
	}
	z.Draw(img, area, image.NewUniform(GridStroke.NRGBA(1)), image.Point{})

	pls, err := s.Polylines()
	if err != nil {
		return img, err
	}
	for _, pl := range pls {
		if len(pl.Points) < 2 || pl.Style.Width <= 0 {
			continue
		}
		z.Reset(area.Dx(), area.Dy())
		hw := pl.Style.Width / 2
		for i := 1; i < len(pl.Points); i++ {
			addSegment(z, pl.Points[i-1], pl.Points[i], hw, scale)
		}
		for i, pt := range pl.Points {
			end := i == 0 || i == len(pl.Points)-1
			if (end && pl.Cap == vector.CapRound) || (!end && pl.Join == vector.JoinRound) {
				addDisc(z, pt, hw, scale)
			}
		}
		ink := pl.Style.Color.NRGBA(pl.Style.Opacity)
		z.Draw(img, area, image.NewUniform(ink), image.Point{})
	}
	return img, nil
}

// addSegment adds the rectangle of half-width hw around a→b. Its winding
// matches addDisc so overlapping pieces of one stroke merge.
func addSegment(z *xvector.Rasterizer, a, b vector.Point, hw, scale float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	nx, ny := -dy/n*hw, dx/n*hw
	moveTo(z, a.X-nx, a.Y-ny, scale)
	lineTo(z, b.X-nx, b.Y-ny, scale)
	lineTo(z, b.X+nx, b.Y+ny, scale)
	lineTo(z, a.X+nx, a.Y+ny, scale)
	z.ClosePath()
}

func addDisc(z *xvector.Rasterizer, c vector.Point, r, scale float64) {
	if r <= 0 {
		return
	}
	steps := int(math.Ceil(math.Pi * r * scale))
	steps = max(12, min(steps, 64))
	moveTo(z, c.X+r, c.Y, scale)
	for i := 1; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		lineTo(z, c.X+r*math.Cos(a), c.Y+r*math.Sin(a), scale)
	}
	z.ClosePath()
}

func moveTo(z *xvector.Rasterizer, x, y, scale float64) {
	z.MoveTo(float32(x*scale), float32(y*scale))
}

func lineTo(z *xvector.Rasterizer, x, y, scale float64) {
	z.LineTo(float32(x*scale), float32(y*scale))
}
