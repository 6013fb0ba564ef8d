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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

// Stroke computes the coverage of the outlines of the rings, drawn with
// the given line width in user space units.  Every edge is widened into a
// rectangle and every vertex gets an octagonal join; the union of these
// pieces is filled with the nonzero rule.
func (r *Rasteriser) Stroke(rings []polygon.Ring, width float64, emit func(y, xMin int, coverage []float32)) {
	if !(width > 0) {
		return
	}
	hw := width / 2

	r.strokeRings = r.strokeRings[:0]
	for _, ring := range rings {
		n := len(ring)
		if n < 2 {
			continue
		}
		for i, a := range ring {
			b := ring[(i+1)%n]
			if quad := segmentQuad(a, b, hw); quad != nil {
				r.strokeRings = append(r.strokeRings, quad)
			}
			r.strokeRings = append(r.strokeRings, joinOctagon(a, hw))
		}
	}
	r.Fill(r.strokeRings, NonZero, emit)
}

// segmentQuad returns the positively oriented rectangle of half-width hw
// around the segment a-b, or nil for a zero-length segment.
func segmentQuad(a, b vec.Vec2, hw float64) polygon.Ring {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return nil
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
	quad := polygon.Ring{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	if quad.Area() < 0 {
		quad = quad.Reverse()
	}
	return quad
}

// joinOctagon returns a positively oriented regular octagon with
// circumradius hw around p.
func joinOctagon(p vec.Vec2, hw float64) polygon.Ring {
	oct := make(polygon.Ring, 8)
	for i := range oct {
		phi := float64(i) * math.Pi / 4
		oct[i] = vec.Vec2{X: p.X + hw*math.Cos(phi), Y: p.Y + hw*math.Sin(phi)}
	}
	return oct
}

// zeroLengthThreshold is the length below which stroke segments are
// skipped.
const zeroLengthThreshold = 1e-10
