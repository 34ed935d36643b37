/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config loads the user configuration: a YAML file in the per-user
// config directory, checked against an embedded JSON Schema, merged over the
// defaults and finally overridden by environment variables.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	applog "penstudio/internal/log"
	"penstudio/internal/tool"
	"penstudio/internal/vector"
)

//go:embed config.schema.json
var schemaJSON []byte

// ErrInvalidConfig marks a config file that could not be used. Load still
// returns usable defaults alongside it.
var ErrInvalidConfig = errors.New("invalid config")

type CanvasConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
}

// DefaultsConfig holds the tool settings a new session starts with.
type DefaultsConfig struct {
	Tool        string  `yaml:"tool"`
	Color       string  `yaml:"color"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Opacity     float64 `yaml:"opacity"`
	PenType     string  `yaml:"pen_type"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Canvas        CanvasConfig   `yaml:"canvas"`
	Defaults      DefaultsConfig `yaml:"defaults"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{ViewportWidth: 390, ViewportHeight: 844},
		Defaults:      DefaultsConfig{Tool: "pen", Color: "#000000", StrokeWidth: 3, Opacity: 1, PenType: "normal"},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath     = "PSTUDIO_CONFIG"
	EnvViewportWidth  = "PSTUDIO_VIEWPORT_WIDTH"
	EnvViewportHeight = "PSTUDIO_VIEWPORT_HEIGHT"
	EnvDefaultTool    = "PSTUDIO_DEFAULT_TOOL"
	EnvDefaultColor   = "PSTUDIO_DEFAULT_COLOR"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "PSTUDIO_LOG_LEVEL"
	EnvLogFormat = "PSTUDIO_LOG_FORMAT"
	EnvLogSource = "PSTUDIO_LOG_SOURCE"
	EnvLogFile   = "PSTUDIO_LOG_FILE"
)

// ConfigPath returns the per-user config file path. PSTUDIO_CONFIG wins when set.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "PenStudio")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "PenStudio")
	default: // linux and others
		if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
			base = filepath.Join(x, "penstudio")
		} else if h := os.Getenv("HOME"); h != "" {
			base = filepath.Join(h, ".config", "penstudio")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides. A file that fails to parse or validate is skipped and
// reported with ErrInvalidConfig; the returned config is still usable.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	var fileErr error
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		fileCfg, perr := parse(data)
		if perr != nil {
			fileErr = fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, perr)
		} else {
			mergeInto(&cfg, &fileCfg)
		}
	case !errors.Is(err, os.ErrNotExist):
		fileErr = fmt.Errorf("read config: %w", err)
	}
	applyEnvOverrides(&cfg)
	return cfg, fileErr
}

// parse decodes YAML and validates it against the embedded schema.
func parse(data []byte) (AppConfig, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return AppConfig{}, err
	}
	if doc == nil {
		return AppConfig{}, nil
	}
	if err := validate(doc); err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func validate(doc map[string]any) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Canvas.ViewportWidth > 0 {
		dst.Canvas.ViewportWidth = src.Canvas.ViewportWidth
	}
	if src.Canvas.ViewportHeight > 0 {
		dst.Canvas.ViewportHeight = src.Canvas.ViewportHeight
	}
	if v := strings.TrimSpace(src.Defaults.Tool); v != "" {
		dst.Defaults.Tool = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Defaults.Color); v != "" {
		dst.Defaults.Color = v
	}
	if src.Defaults.StrokeWidth > 0 {
		dst.Defaults.StrokeWidth = src.Defaults.StrokeWidth
	}
	if src.Defaults.Opacity > 0 {
		dst.Defaults.Opacity = src.Defaults.Opacity
	}
	if v := strings.TrimSpace(src.Defaults.PenType); v != "" {
		dst.Defaults.PenType = strings.ToLower(v)
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvViewportWidth)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.Canvas.ViewportWidth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvViewportHeight)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.Canvas.ViewportHeight = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvDefaultTool)); v != "" {
		cfg.Defaults.Tool = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDefaultColor)); v != "" {
		cfg.Defaults.Color = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "canvas.viewport_width":
		env = EnvViewportWidth
	case "canvas.viewport_height":
		env = EnvViewportHeight
	case "defaults.tool":
		env = EnvDefaultTool
	case "defaults.color":
		env = EnvDefaultColor
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) == "" {
		return "", false
	}
	return env, true
}

// Viewport returns the configured viewport size.
func (c AppConfig) Viewport() vector.Size {
	return vector.Size{W: c.Canvas.ViewportWidth, H: c.Canvas.ViewportHeight}
}

// Settings converts the configured defaults into initial tool settings.
// Values outside the option sets are rejected.
func (d DefaultsConfig) Settings() (tool.Settings, error) {
	t, err := tool.ParseTool(d.Tool)
	if err != nil {
		return tool.Settings{}, fmt.Errorf("defaults.tool: %w", err)
	}
	pt, err := tool.ParsePenType(d.PenType)
	if err != nil {
		return tool.Settings{}, fmt.Errorf("defaults.pen_type: %w", err)
	}
	c, err := vector.ParseColor(d.Color)
	if err != nil {
		return tool.Settings{}, fmt.Errorf("defaults.color: %w", err)
	}
	if !tool.IsWidth(d.StrokeWidth) {
		return tool.Settings{}, fmt.Errorf("defaults.stroke_width: %w: %g", tool.ErrUnknownOption, d.StrokeWidth)
	}
	if !tool.IsOpacityLevel(d.Opacity) {
		return tool.Settings{}, fmt.Errorf("defaults.opacity: %w: %g", tool.ErrUnknownOption, d.Opacity)
	}
	return tool.Settings{Tool: t, Color: c, Width: d.StrokeWidth, Opacity: d.Opacity, PenType: pt}, nil
}

// Options maps the logging section onto logger options.
func (l LoggingConfig) Options() applog.Options {
	return applog.Options{Level: l.Level, Format: l.Format, AddSource: l.Source, File: l.File}
}
