//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"penstudio/internal/crash"
	applog "penstudio/internal/log"
	"penstudio/internal/studio"
	"penstudio/internal/version"
)

// Run starts the Fyne UI for the given session and blocks until the window closes.
func Run(s *studio.Session) error {
	l := applog.WithComponent("ui")
	l.InfoContext(s.Context(), "starting UI")
	defer crash.Recover(s)

	fyneApp := app.NewWithID("penstudio")
	w := fyneApp.NewWindow("Pen Studio")
	// Restore window size from preferences (never smaller than the canvas)
	prefs := fyneApp.Preferences()
	cv := s.Canvas()
	minW := int(cv.W) + 40
	minH := int(cv.H) + 320
	winW := prefs.IntWithFallback("window.width", minW)
	winH := prefs.IntWithFallback("window.height", minH)
	w.Resize(fyne.NewSize(float32(max(winW, minW)), float32(max(winH, minH))))

	v := NewView(s, w)
	w.SetContent(v.Content())

	undoItem := fyne.NewMenuItem("Undo", v.Undo)
	undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	saveItem := fyne.NewMenuItem("Save Drawing", v.Save)
	saveItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	clearItem := fyne.NewMenuItem("Clear Canvas…", v.Clear)

	aboutItem := fyne.NewMenuItem("About Pen Studio", func() {
		l.Info("menu: about")
		exe, _ := os.Executable()
		info := fmt.Sprintf("Pen Studio\nVersion: %s\nOS: %s\nArch: %s\nGo: %s\nExecutable: %s",
			version.String(), runtime.GOOS, runtime.GOARCH, runtime.Version(), exe)
		dialog.ShowInformation("Installation Environment", info, w)
	})
	copyrightItem := fyne.NewMenuItem("Copyright…", func() {
		dialog.ShowInformation("Copyright", copyrightNotice(time.Now().Year()), w)
	})
	w.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Drawing", saveItem, clearItem),
		fyne.NewMenu("Edit", undoItem),
		fyne.NewMenu("About", aboutItem, copyrightItem),
	))

	// Persist window size on close
	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		l.InfoContext(s.Context(), "closing UI", slog.Int("strokes", len(s.Strokes())), slog.Int("saved", len(s.Drawings())))
		w.Close()
	})

	w.ShowAndRun()
	return nil
}
