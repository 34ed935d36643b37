//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"penstudio/internal/drawing"
	applog "penstudio/internal/log"
	"penstudio/internal/studio"
)

// DrawingCanvas is the touch/pointer surface. It forwards pointer phases to
// the session and redraws the session's scene on every refresh.
//
// Desktop drivers deliver MouseDown/MouseUp around drags; mobile drivers only
// deliver drags, so a drag that arrives while idle begins the gesture at the
// drag origin.
type DrawingCanvas struct {
	widget.BaseWidget
	session *studio.Session
	// OnStroke is called after a gesture ends.
	OnStroke func()
	log      *slog.Logger
}

func NewDrawingCanvas(s *studio.Session) *DrawingCanvas {
	dc := &DrawingCanvas{session: s, log: applog.WithComponent("canvas")}
	dc.ExtendBaseWidget(dc)
	return dc
}

func (c *DrawingCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &drawingCanvasRenderer{dc: c}
	r.raster = canvas.NewRaster(r.paint)
	return r
}

func (c *DrawingCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.pointer(drawing.PhaseBegin, e.Position)
}

func (c *DrawingCanvas) MouseUp(e *desktop.MouseEvent) {
	c.pointer(drawing.PhaseEnd, e.Position)
}

func (c *DrawingCanvas) Dragged(e *fyne.DragEvent) {
	if !c.session.Capturing() {
		c.pointer(drawing.PhaseBegin, fyne.NewPos(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY))
	}
	c.pointer(drawing.PhaseActive, e.Position)
}

func (c *DrawingCanvas) DragEnd() { c.pointer(drawing.PhaseEnd, fyne.Position{}) }

func (c *DrawingCanvas) pointer(ph drawing.Phase, pos fyne.Position) {
	wasCapturing := c.session.Capturing()
	c.session.HandlePointer(drawing.Event{Phase: ph, X: float64(pos.X), Y: float64(pos.Y)})
	c.Refresh()
	if ph == drawing.PhaseEnd && wasCapturing && c.OnStroke != nil {
		c.OnStroke()
	}
}

type drawingCanvasRenderer struct {
	dc     *DrawingCanvas
	raster *canvas.Raster
}

func (r *drawingCanvasRenderer) Destroy()                     {}
func (r *drawingCanvasRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.raster} }
func (r *drawingCanvasRenderer) Layout(size fyne.Size)        { r.raster.Resize(size) }
func (r *drawingCanvasRenderer) Refresh()                     { r.raster.Refresh() }

func (r *drawingCanvasRenderer) MinSize() fyne.Size {
	sz := r.dc.session.Canvas()
	return fyne.NewSize(float32(sz.W), float32(sz.H))
}

// paint rasterizes the current scene at the device pixel size w×h.
func (r *drawingCanvasRenderer) paint(w, h int) image.Image {
	scale := 1.0
	if lw := r.raster.Size().Width; lw > 0 {
		scale = float64(w) / float64(lw)
	}
	img, err := r.dc.session.Render().Rasterize(w, h, scale)
	if err != nil {
		r.dc.log.Error("scene decode failed", slog.Any("err", err))
	}
	return img
}
