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
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"penstudio/internal/gallery"
	applog "penstudio/internal/log"
	"penstudio/internal/studio"
	"penstudio/internal/tool"
	"penstudio/internal/vector"
)

// View is the studio screen: canvas, options panel, action row and gallery.
type View struct {
	session *studio.Session
	win     fyne.Window

	canvas         *DrawingCanvas
	toolButtons    map[tool.Tool]*widget.Button
	penTypes       *widget.RadioGroup
	opacity        *widget.RadioGroup
	widths         *widget.RadioGroup
	galleryBox     *fyne.Container
	gallerySection *fyne.Container
	status         *widget.Label

	// ask shows a confirmation prompt and reports the answer.
	ask func(c studio.Confirmation, done func(ok bool))
	// inform shows a one-button notice.
	inform func(title, message string)

	log *slog.Logger
}

func NewView(s *studio.Session, w fyne.Window) *View {
	v := &View{
		session:     s,
		win:         w,
		toolButtons: make(map[tool.Tool]*widget.Button),
		status:      widget.NewLabel(""),
		log:         applog.WithComponent("ui"),
	}
	v.ask = func(c studio.Confirmation, done func(bool)) {
		dialog.ShowConfirm(c.Title, c.Message, done, w)
	}
	v.inform = func(title, message string) {
		dialog.ShowInformation(title, message, w)
	}
	v.canvas = NewDrawingCanvas(s)
	v.canvas.OnStroke = v.updateStatus
	v.buildOptions()
	v.galleryBox = container.NewHBox()
	v.gallerySection = container.NewVBox(widget.NewLabel("Saved Drawings"), container.NewHScroll(v.galleryBox))
	v.refreshGallery()
	v.syncPanel()
	v.updateStatus()
	return v
}

// Content assembles the screen.
func (v *View) Content() fyne.CanvasObject {
	var toolRow []fyne.CanvasObject
	for _, o := range tool.Tools() {
		toolRow = append(toolRow, v.toolButtons[o.ID])
	}
	var swatches []fyne.CanvasObject
	for _, c := range tool.Palette() {
		swatches = append(swatches, newColorSwatch(c, v.selectColor))
	}
	actions := container.NewHBox(
		widget.NewButton("Undo", v.Undo),
		widget.NewButton("Clear", v.Clear),
		widget.NewButton("Save", v.Save),
	)
	options := container.NewVBox(
		container.NewHBox(toolRow...),
		v.penTypes,
		container.NewHScroll(container.NewHBox(swatches...)),
		v.widths,
		v.opacity,
	)
	return container.NewBorder(
		nil,
		container.NewVBox(actions, v.gallerySection, v.status),
		nil, nil,
		container.NewVBox(container.NewCenter(v.canvas), options),
	)
}

func (v *View) buildOptions() {
	for _, o := range tool.Tools() {
		id := o.ID
		v.toolButtons[id] = widget.NewButton(o.Icon+" "+o.Name, func() { v.selectTool(id) })
	}

	var penNames []string
	for _, o := range tool.PenTypes() {
		penNames = append(penNames, o.Name)
	}
	v.penTypes = widget.NewRadioGroup(penNames, func(name string) {
		for _, o := range tool.PenTypes() {
			if o.Name == name {
				v.apply(v.session.Panel().SelectPenType(o.ID))
			}
		}
	})
	v.penTypes.Horizontal = true
	v.penTypes.Required = true

	var widthLabels []string
	for _, w := range tool.Widths() {
		widthLabels = append(widthLabels, strconv.FormatFloat(w, 'f', -1, 64))
	}
	v.widths = widget.NewRadioGroup(widthLabels, func(label string) {
		if w, err := strconv.ParseFloat(label, 64); err == nil {
			v.apply(v.session.Panel().SelectWidth(w))
		}
	})
	v.widths.Horizontal = true
	v.widths.Required = true

	var opacityLabels []string
	for _, o := range tool.OpacityLevels() {
		opacityLabels = append(opacityLabels, opacityLabel(o))
	}
	v.opacity = widget.NewRadioGroup(opacityLabels, func(label string) {
		for _, o := range tool.OpacityLevels() {
			if opacityLabel(o) == label {
				v.apply(v.session.Panel().SelectOpacity(o))
			}
		}
	})
	v.opacity.Horizontal = true
	v.opacity.Required = true
}

func opacityLabel(o float64) string { return fmt.Sprintf("%d%%", int(o*100+0.5)) }

func (v *View) selectTool(t tool.Tool) {
	v.apply(v.session.Panel().SelectTool(t))
	v.syncPanel()
}

func (v *View) selectColor(c vector.Color) {
	v.apply(v.session.Panel().SelectColor(c))
}

func (v *View) apply(err error) {
	if err != nil {
		v.log.Warn("option rejected", slog.Any("err", err))
	}
}

// syncPanel mirrors the settings into the widgets and shows the pickers that
// apply to the current tool.
func (v *View) syncPanel() {
	p := v.session.Panel()
	s := p.Settings()
	for id, b := range v.toolButtons {
		if id == s.Tool {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}
	for _, o := range tool.PenTypes() {
		if o.ID == s.PenType && v.penTypes.Selected != o.Name {
			v.penTypes.SetSelected(o.Name)
		}
	}
	if w := strconv.FormatFloat(s.Width, 'f', -1, 64); v.widths.Selected != w {
		v.widths.SetSelected(w)
	}
	if o := opacityLabel(s.Opacity); v.opacity.Selected != o {
		v.opacity.SetSelected(o)
	}
	if p.ShowsPenTypes() {
		v.penTypes.Show()
	} else {
		v.penTypes.Hide()
	}
	if p.ShowsOpacity() {
		v.opacity.Show()
	} else {
		v.opacity.Hide()
	}
}

// Undo removes the last stroke.
func (v *View) Undo() {
	v.session.Undo()
	v.canvas.Refresh()
	v.updateStatus()
}

// Save stores the canvas in the gallery or explains why it cannot.
func (v *View) Save() {
	d, err := v.session.Save()
	switch {
	case errors.Is(err, gallery.ErrNothingToSave):
		v.inform(studio.NothingToSaveTitle, studio.NothingToSaveMessage)
		return
	case err != nil:
		v.log.Error("save failed", slog.Any("err", err))
		dialog.ShowError(err, v.win)
		return
	}
	v.refreshGallery()
	v.updateStatus()
	v.inform(studio.SavedTitle, studio.SavedMessage(d.Name))
}

// Clear asks before wiping the canvas.
func (v *View) Clear() {
	c, err := v.session.RequestClear()
	if err != nil {
		v.log.Warn("clear not requested", slog.Any("err", err))
		return
	}
	v.confirm(c)
}

// Load asks before replacing the canvas with a saved drawing.
func (v *View) Load(id string) {
	c, err := v.session.RequestLoad(id)
	if err != nil {
		v.log.Warn("load not requested", slog.Any("err", err))
		return
	}
	v.confirm(c)
}

func (v *View) confirm(c studio.Confirmation) {
	v.ask(c, func(ok bool) {
		var err error
		if ok {
			err = v.session.Confirm(c.Token)
		} else {
			err = v.session.Cancel(c.Token)
		}
		if err != nil {
			v.log.Error("confirmation failed", slog.String("kind", c.Kind.String()), slog.Any("err", err))
			return
		}
		v.canvas.Refresh()
		v.updateStatus()
	})
}

func (v *View) refreshGallery() {
	var items []fyne.CanvasObject
	for _, d := range v.session.Drawings() {
		id := d.ID
		items = append(items, widget.NewButton(d.Name+"\n"+d.Timestamp, func() { v.Load(id) }))
	}
	v.galleryBox.Objects = items
	v.galleryBox.Refresh()
	if len(items) == 0 {
		v.gallerySection.Hide()
	} else {
		v.gallerySection.Show()
	}
}

func (v *View) updateStatus() {
	v.status.SetText(fmt.Sprintf("Strokes: %d", len(v.session.Strokes())))
}

// colorSwatch is a tappable palette entry.
type colorSwatch struct {
	widget.BaseWidget
	Color    vector.Color
	OnTapped func(vector.Color)
}

func newColorSwatch(c vector.Color, tapped func(vector.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.NRGBA(1))
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}
