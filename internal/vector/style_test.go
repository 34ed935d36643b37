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
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF0000")
	if err != nil || c != (Color{R: 255}) {
		t.Fatalf("ParseColor(#FF0000) = %v, %v", c, err)
	}
	c, err = ParseColor("#a52a2a")
	if err != nil || c.Hex() != "#A52A2A" {
		t.Fatalf("ParseColor lower-case = %v, %v", c, err)
	}
	c, err = ParseColor("#fff")
	if err != nil || c != White {
		t.Fatalf("short form = %v, %v", c, err)
	}
	for _, bad := range []string{"", "#12345", "#GGGGGG", "red"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrBadColor) {
			t.Fatalf("ParseColor(%q) err = %v, want ErrBadColor", bad, err)
		}
	}
}

func TestColor_NRGBA(t *testing.T) {
	got := Color{R: 10, G: 20, B: 30}.NRGBA(0.4)
	if got != (color.NRGBA{R: 10, G: 20, B: 30, A: 102}) {
		t.Fatalf("unexpected NRGBA: %+v", got)
	}
	if a := Black.NRGBA(2).A; a != 255 {
		t.Fatalf("opacity should clamp to 1, got alpha %d", a)
	}
}

func TestCapJoinKeywords(t *testing.T) {
	if CapRound.String() != "round" || JoinRound.String() != "round" {
		t.Fatalf("round keywords mismatch")
	}
	if CapButt.String() != "butt" || JoinMiter.String() != "miter" {
		t.Fatalf("default keywords mismatch")
	}
}
