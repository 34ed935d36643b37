/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"penstudio/internal/config"
	"penstudio/internal/crash"
	"penstudio/internal/drawing"
	applog "penstudio/internal/log"
	"penstudio/internal/studio"
	"penstudio/internal/tool"
	"penstudio/internal/ui"
	"penstudio/internal/vector"
	"penstudio/internal/version"
)

func usage() {
	fmt.Println("Pen Studio")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  penstudio version|-v|--version   Show version")
	fmt.Println("  penstudio ui                     Launch the drawing UI (build with -tags fyne)")
	fmt.Println("  penstudio demo                   Draw a sample gesture and print the canvas as SVG")
	fmt.Println("  penstudio config                 Print the effective configuration")
	fmt.Println("  penstudio config init            Write the default configuration file")
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(cfg.Logging.Options())
	defer func() { _ = applog.Close() }()
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config not fully loaded; using defaults", slog.Any("err", cfgErr))
	}

	settings, err := cfg.Defaults.Settings()
	if err != nil {
		l.Warn("invalid default tool settings; using built-in defaults", slog.Any("err", err))
		settings = tool.DefaultSettings()
	}
	s := studio.New(settings, cfg.Viewport())
	defer crash.Recover(s)

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Pen Studio")
			fmt.Println(version.String())
			return
		case "ui":
			if err := ui.Run(s); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "demo":
			if err := demo(os.Stdout, s); err != nil {
				l.Error("demo failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "config":
			if len(args) > 2 && args[2] == "init" {
				if err := config.Save(config.Defaults()); err != nil {
					fmt.Println("Error:", err)
					os.Exit(1)
				}
				p, _ := config.ConfigPath()
				fmt.Println("Wrote", p)
				return
			}
			if err := printConfig(os.Stdout, cfg); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

// demo draws three short strokes with different tools and writes the
// resulting scene as SVG.
func demo(w io.Writer, s *studio.Session) error {
	p := s.Panel()
	gestures := []struct {
		tool  tool.Tool
		color string
		width float64
		pts   []vector.Point
	}{
		{tool.Pen, "#FF0000", 3, []vector.Point{vector.Pt(10, 10), vector.Pt(20, 10), vector.Pt(20, 20)}},
		{tool.Highlighter, "#FFFF00", 12, []vector.Point{vector.Pt(30, 40), vector.Pt(120, 40)}},
		{tool.Brush, "#0000FF", 5, []vector.Point{vector.Pt(40, 80), vector.Pt(60, 100), vector.Pt(90, 90)}},
	}
	for _, g := range gestures {
		c, err := vector.ParseColor(g.color)
		if err != nil {
			return err
		}
		if err := errors.Join(p.SelectTool(g.tool), p.SelectColor(c), p.SelectWidth(g.width)); err != nil {
			return err
		}
		for i, pt := range g.pts {
			ph := drawing.PhaseActive
			if i == 0 {
				ph = drawing.PhaseBegin
			}
			s.HandlePointer(drawing.Event{Phase: ph, X: pt.X, Y: pt.Y})
		}
		s.HandlePointer(drawing.Event{Phase: drawing.PhaseEnd})
	}
	return s.Render().WriteSVG(w)
}

// printConfig writes the effective configuration and notes env overrides.
func printConfig(w io.Writer, cfg config.AppConfig) error {
	p, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# %s\n", p); err != nil {
		return err
	}
	for _, key := range []string{
		"canvas.viewport_width", "canvas.viewport_height",
		"defaults.tool", "defaults.color",
		"logging.level", "logging.format", "logging.source", "logging.file",
	} {
		if env, ok := config.EnvOverrideFor(key); ok {
			if _, err := fmt.Fprintf(w, "# %s overridden by %s\n", key, env); err != nil {
				return err
			}
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
