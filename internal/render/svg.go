/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"bytes"
	"fmt"
	"io"
)

// WriteSVG writes the scene as a standalone SVG document.
func (s Scene) WriteSVG(w io.Writer) error {
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(w, format, args...)
	}

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n", s.Size.W, s.Size.H, s.Size.W, s.Size.H)
	wf("  <defs>\n")
	wf("    <pattern id=\"grid\" width=\"%g\" height=\"%g\" patternUnits=\"userSpaceOnUse\">\n", GridTile, GridTile)
	wf("      <rect width=\"%g\" height=\"%g\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%g\"/>\n", GridTile, GridTile, GridFill.Hex(), GridStroke.Hex(), GridStrokeWidth)
	wf("    </pattern>\n")
	wf("  </defs>\n")
	wf("  <rect width=\"100%%\" height=\"100%%\" fill=\"url(#grid)\"/>\n")
	for _, l := range s.Layers {
		wf("  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%g\" stroke-opacity=\"%g\" stroke-linecap=\"%s\" stroke-linejoin=\"%s\"/>\n",
			escAttr(l.Path), l.Style.Color.Hex(), l.Style.Width, l.Style.Opacity, l.Cap, l.Join)
	}
	wf("</svg>\n")

	if werr != nil {
		return fmt.Errorf("write svg: %w", werr)
	}
	return nil
}

// SVG returns the document produced by WriteSVG.
func (s Scene) SVG() string {
	var buf bytes.Buffer
	_ = s.WriteSVG(&buf)
	return buf.String()
}

func escAttr(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '"':
			out = append(out, "&quot;"...)
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '\n':
			out = append(out, ' ')
		case '\r':
			// skip
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
