/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package drawing implements stroke capture and the drawing history.
//
// A gesture is fed in as begin / active / end pointer events. Capture turns the
// samples into a path command string and, when the gesture ends, stamps it with
// the style resolved from the current tool settings and appends the finished
// Stroke to a History. History only ever grows at the tail or is truncated
// from it; strokes are never edited in place.
package drawing

import "penstudio/internal/tool"

// Stroke is one finished freehand line. It is a value type and is treated as
// immutable once created.
type Stroke struct {
	Path    string           `json:"path"`
	Style   tool.StrokeStyle `json:"style"`
	Tool    tool.Tool        `json:"tool"`
	PenType tool.PenType     `json:"penType"`
}

// Preview is the in-progress path together with the style it would get if the
// gesture ended now.
type Preview struct {
	Path  string
	Style tool.StrokeStyle
}
