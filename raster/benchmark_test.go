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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

// circle approximates a circle by a regular polygon with n vertices.
func circle(cx, cy, r float64, n int, reverse bool) polygon.Ring {
	ring := make(polygon.Ring, n)
	for i := range ring {
		phi := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = vec.Vec2{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)}
	}
	if reverse {
		ring = ring.Reverse()
	}
	return ring
}

// makeO returns an "O" shape: an outer ring and a reversed inner ring.
func makeO(size float64) []polygon.Ring {
	c := size / 2
	return []polygon.Ring{
		circle(c, c, 0.45*size, 64, false),
		circle(c, c, 0.30*size, 64, true),
	}
}

// TestAgainstVector compares the coverage of an "O" shape with the
// output of golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 64
	rings := makeO(size)

	ours := image.NewAlpha(image.Rect(0, 0, size, size))
	r := NewRasteriser(rect.Rect{URx: size, URy: size})
	r.Fill(rings, NonZero, func(y, xMin int, coverage []float32) {
		row := ours.Pix[y*ours.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
	})

	theirs := image.NewAlpha(image.Rect(0, 0, size, size))
	v := vector.NewRasterizer(size, size)
	addRings(v, rings)
	v.Draw(theirs, theirs.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	bad := 0
	for i := range ours.Pix {
		d := int(ours.Pix[i]) - int(theirs.Pix[i])
		if d < -2 || d > 2 {
			bad++
		}
	}
	if bad > len(ours.Pix)/100 {
		t.Errorf("%d of %d pixels differ from x/image/vector", bad, len(ours.Pix))
	}
}

func addRings(v *vector.Rasterizer, rings []polygon.Ring) {
	for _, ring := range rings {
		v.MoveTo(float32(ring[0].X), float32(ring[0].Y))
		for _, p := range ring[1:] {
			v.LineTo(float32(p.X), float32(p.Y))
		}
		v.ClosePath()
	}
}

// BenchmarkRasteriserO benchmarks our rasteriser drawing an "O" shape.
func BenchmarkRasteriserO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			rings := makeO(float64(size))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(rings, NonZero, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same shape.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			v := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			rings := makeO(float64(size))

			b.ReportAllocs()
			for b.Loop() {
				v.Reset(size, size)
				addRings(v, rings)
				v.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
