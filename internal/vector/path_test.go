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
	"testing"
)

func TestPath_StringEncoding(t *testing.T) {
	var p Path
	p.MoveTo(10, 10)
	p.LineTo(20, 10)
	p.LineTo(20, 20)
	if got, want := p.String(), "M10,10 L20,10 L20,20"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	var f Path
	f.MoveTo(0.5, -3.25)
	f.LineTo(1e-3, 1200)
	if got, want := f.String(), "M0.5,-3.25 L0.001,1200"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestPath_MoveToRestarts(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.MoveTo(5, 5)
	if got := p.String(); got != "M5,5" {
		t.Fatalf("MoveTo did not restart path: %q", got)
	}
}

func TestPath_LineToOnEmptyIgnored(t *testing.T) {
	var p Path
	p.LineTo(3, 3)
	if !p.Empty() {
		t.Fatalf("LineTo on empty path should be ignored, got %q", p.String())
	}
}

func TestPath_Bounds(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, -5)
	p.LineTo(-2, 8)
	b := p.Bounds()
	if b.X != -2 || b.Y != -5 || b.W != 12 || b.H != 13 {
		t.Fatalf("unexpected bounds: %+v", b)
	}
	if (Path{}).Bounds() != (Rect{}) {
		t.Fatalf("empty path should have zero bounds")
	}
}

func TestParsePath_RoundTrip(t *testing.T) {
	in := "M10,10 L20,10 L20,20 L-4.5,0.25"
	p, err := ParsePath(in)
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if len(p.Cmds) != 4 || p.Cmds[0].Op != MoveTo || p.Cmds[3].Op != LineTo {
		t.Fatalf("unexpected commands: %+v", p.Cmds)
	}
	if p.Cmds[3].Pt != Pt(-4.5, 0.25) {
		t.Fatalf("unexpected last point: %+v", p.Cmds[3].Pt)
	}
	if p.String() != in {
		t.Fatalf("round trip mismatch: %q", p.String())
	}
}

func TestParsePath_Rejects(t *testing.T) {
	for _, s := range []string{"", "L1,1", "M1,1 M2,2", "M1;1", "M1,x", "M"} {
		if _, err := ParsePath(s); !errors.Is(err, ErrMalformedPath) {
			t.Fatalf("ParsePath(%q) err = %v, want ErrMalformedPath", s, err)
		}
	}
}
