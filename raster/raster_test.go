// seehuhn.de/go/enigma - generative paint-by-number tessellations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

func render(r *Rasteriser, rings []polygon.Ring, rule FillRule, w, h int) []float32 {
	buf := make([]float32, w*h)
	r.Fill(rings, rule, Accumulate(buf, w))
	return buf
}

func sum(buf []float32) float64 {
	var s float64
	for _, v := range buf {
		s += float64(v)
	}
	return s
}

func TestTriangleCoverage(t *testing.T) {
	// Triangle (0,0)-(1,0)-(0,1) covers exactly half of pixel (0,0).
	tri := polygon.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 2})
	buf := render(r, []polygon.Ring{tri}, NonZero, 2, 2)
	if math.Abs(float64(buf[0])-0.5) > 1e-6 {
		t.Errorf("coverage = %g, want 0.5", buf[0])
	}
	for i, v := range buf[1:] {
		if v != 0 {
			t.Errorf("pixel %d has coverage %g", i+1, v)
		}
	}
}

func TestOrientationIndependent(t *testing.T) {
	sq := polygon.FromRect(rect.Rect{LLx: 1.25, LLy: 0.5, URx: 6.75, URy: 7})
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 8}

	a := render(NewRasteriser(clip), []polygon.Ring{sq}, NonZero, 8, 8)
	b := render(NewRasteriser(clip), []polygon.Ring{sq.Reverse()}, NonZero, 8, 8)
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-6 {
			t.Fatalf("pixel %d: %g != %g", i, a[i], b[i])
		}
	}
	if got, want := sum(a), sq.Area(); math.Abs(got-want) > 1e-4 {
		t.Errorf("total coverage %g, want %g", got, want)
	}
}

func TestFillRules(t *testing.T) {
	outer := polygon.FromRect(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})
	inner := polygon.FromRect(rect.Rect{LLx: 3, LLy: 3, URx: 7, URy: 7})
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}

	tests := []struct {
		name  string
		rings []polygon.Ring
		rule  FillRule
		want  float64
	}{
		{"nonzero_same", []polygon.Ring{outer, inner}, NonZero, 100},
		{"nonzero_hole", []polygon.Ring{outer, inner.Reverse()}, NonZero, 84},
		{"evenodd_same", []polygon.Ring{outer, inner}, EvenOdd, 84},
		{"evenodd_hole", []polygon.Ring{outer, inner.Reverse()}, EvenOdd, 84},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := render(NewRasteriser(clip), tc.rings, tc.rule, 10, 10)
			if got := sum(buf); math.Abs(got-tc.want) > 1e-4 {
				t.Errorf("total coverage %g, want %g", got, tc.want)
			}
		})
	}
}

func TestClipAndCTM(t *testing.T) {
	sq := polygon.FromRect(rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1})
	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 4})
	r.CTM = matrix.Matrix{8, 0, 0, 8, -2, -2}

	buf := render(r, []polygon.Ring{sq}, NonZero, 4, 4)
	for i, v := range buf {
		if math.Abs(float64(v)-1) > 1e-6 {
			t.Errorf("pixel %d: coverage %g, want 1", i, v)
		}
	}
}

// TestPartition checks that a tiling of the clip rectangle by polygons
// with shared edges gives a total coverage of one in every pixel.
func TestPartition(t *testing.T) {
	c := vec.Vec2{X: 5.3, Y: 4.7}
	corners := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	mid := []vec.Vec2{{X: 3.2, Y: 0}, {X: 10, Y: 6.1}, {X: 7.7, Y: 10}, {X: 0, Y: 2.9}}

	var pieces []polygon.Ring
	for i := range 4 {
		a := corners[i]
		pieces = append(pieces,
			polygon.Ring{a, mid[i], c},
			polygon.Ring{mid[i], corners[(i+1)%4], c},
		)
	}

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	r := NewRasteriser(clip)
	buf := make([]float32, 100)
	for _, p := range pieces {
		r.Fill([]polygon.Ring{p}, NonZero, Accumulate(buf, 10))
	}
	for i, v := range buf {
		if math.Abs(float64(v)-1) > 1e-4 {
			t.Errorf("pixel (%d,%d): coverage %g", i%10, i/10, v)
		}
	}
}

func TestStroke(t *testing.T) {
	sq := polygon.FromRect(rect.Rect{LLx: 4, LLy: 4, URx: 16, URy: 16})
	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20})
	buf := render(r, nil, NonZero, 20, 20)
	r.Stroke([]polygon.Ring{sq}, 2, Accumulate(buf, 20))

	// centre of the square is not covered, the outline is
	if v := buf[10*20+10]; v != 0 {
		t.Errorf("centre coverage %g", v)
	}
	if v := buf[10*20+4]; v < 0.99 {
		t.Errorf("left edge coverage %g", v)
	}
	for i, v := range buf {
		if v > 1+1e-6 {
			t.Fatalf("pixel %d over-covered: %g", i, v)
		}
	}
	// four 12x2 strips overlapping at the inner corners, plus the outer
	// parts of the corner joins
	if s := sum(buf); s < 92 || s > 96 {
		t.Errorf("total stroke coverage %g", s)
	}
}

func TestPaint(t *testing.T) {
	sq := polygon.FromRect(rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 1})
	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 2})

	rgba := image.NewRGBA(image.Rect(0, 0, 4, 2))
	r.Fill([]polygon.Ring{sq}, NonZero, OverRGBA(rgba, color.RGBA{R: 255, A: 255}))
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("RGBA pixel = %v", got)
	}
	if got := rgba.RGBAAt(3, 1); got != (color.RGBA{}) {
		t.Errorf("RGBA pixel outside = %v", got)
	}

	gray := image.NewGray(image.Rect(0, 0, 4, 2))
	r.Fill([]polygon.Ring{sq}, NonZero, SetGray(gray, 200))
	if got := gray.GrayAt(0, 0).Y; got != 200 {
		t.Errorf("gray pixel = %d", got)
	}
	if got := gray.GrayAt(2, 0).Y; got != 0 {
		t.Errorf("gray pixel outside = %d", got)
	}
}

func TestMasked(t *testing.T) {
	mask := []float32{
		0, 0.5, 1, 2,
		1, 1, 0, 0,
	}
	var got [][]float32
	emit := Masked(mask, 4, func(y, xMin int, coverage []float32) {
		got = append(got, append([]float32(nil), coverage...))
	})

	emit(0, 0, []float32{1, 1, 0.5, 0.5})
	emit(1, 2, []float32{1, 1})
	emit(1, 3, []float32{1, 1}) // runs past the right edge
	emit(2, 0, []float32{1})    // below the mask

	want := [][]float32{
		{0, 0.5, 0.5, 0.5},
		{0, 0},
		{0, 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("row %d: got %v, want %v", i, got[i], want[i])
				break
			}
		}
	}
}
