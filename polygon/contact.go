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

package polygon

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// SharedLength returns the total length along which edges of a run on top
// of edges of b, with a and b on opposite sides.  Two edges count as running
// on top of each other if both endpoints of one lie within tol of the
// supporting line of the other.  The orientation of the edges is ignored.
//
// Areas are taken with the nonzero winding rule.  Edges with no area of a
// or no area of b next to them, such as the zero-width edges left by
// [ClipHalfPlane], do not count.
func SharedLength(a, b []Ring, tol float64) float64 {
	var total float64
	for _, ra := range a {
		for i := range ra {
			p0, p1 := ra[i], ra[(i+1)%len(ra)]
			for _, rb := range b {
				for j := range rb {
					q0, q1 := rb[j], rb[(j+1)%len(rb)]
					l, mid, n := segmentOverlap(p0, p1, q0, q1, tol)
					if l > 0 && oppositeSides(a, b, mid, n.Mul(2*tol)) {
						total += l
					}
				}
			}
		}
	}
	return total
}

// oppositeSides reports whether a covers mid+off and b covers mid-off, or
// the other way round.
func oppositeSides(a, b []Ring, mid, off vec.Vec2) bool {
	p, q := mid.Add(off), mid.Sub(off)
	return covers(a, p) && covers(b, q) || covers(a, q) && covers(b, p)
}

func covers(rings []Ring, p vec.Vec2) bool {
	w := 0
	for _, r := range rings {
		w += r.Winding(p)
	}
	return w != 0
}

// Touching reports whether a and b share a boundary segment longer than tol.
func Touching(a, b []Ring, tol float64) bool {
	ba, ok1 := boundsOf(a)
	bb, ok2 := boundsOf(b)
	if !ok1 || !ok2 {
		return false
	}
	if ba.LLx > bb.URx+tol || bb.LLx > ba.URx+tol || ba.LLy > bb.URy+tol || bb.LLy > ba.URy+tol {
		return false
	}
	return SharedLength(a, b, tol) > tol
}

// segmentOverlap returns the length of the collinear overlap of the
// segments p0-p1 and q0-q1, or 0 if they are not collinear within tol.
// For a positive length, mid is the midpoint of the overlap on p0-p1 and n
// is a unit normal of p0-p1.
func segmentOverlap(p0, p1, q0, q1 vec.Vec2, tol float64) (length float64, mid, n vec.Vec2) {
	if min(p0.X, p1.X) > max(q0.X, q1.X)+tol || min(q0.X, q1.X) > max(p0.X, p1.X)+tol ||
		min(p0.Y, p1.Y) > max(q0.Y, q1.Y)+tol || min(q0.Y, q1.Y) > max(p0.Y, p1.Y)+tol {
		return 0, mid, n
	}

	d := p1.Sub(p0)
	l := d.Length()
	if l <= tol {
		return 0, mid, n
	}
	if math.Abs(cross(p0, p1, q0)) > tol*l || math.Abs(cross(p0, p1, q1)) > tol*l {
		return 0, mid, n
	}

	u := d.Mul(1 / l)
	s0 := q0.Sub(p0).Dot(u)
	s1 := q1.Sub(p0).Dot(u)
	lo := max(0, min(s0, s1))
	hi := min(l, max(s0, s1))
	if hi <= lo {
		return 0, mid, n
	}
	return hi - lo, p0.Add(u.Mul((lo + hi) / 2)), vec.Vec2{X: -u.Y, Y: u.X}
}

// Bounds returns the common bounding box of the rings.
func Bounds(rings []Ring) rect.Rect {
	b, _ := boundsOf(rings)
	return b
}

func boundsOf(rings []Ring) (rect.Rect, bool) {
	var b rect.Rect
	first := true
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		rb := r.Bounds()
		if first {
			b = rb
			first = false
			continue
		}
		b.LLx = min(b.LLx, rb.LLx)
		b.LLy = min(b.LLy, rb.LLy)
		b.URx = max(b.URx, rb.URx)
		b.URy = max(b.URy, rb.URy)
	}
	return b, !first
}

// TotalArea returns the sum of the signed areas of the rings.
func TotalArea(rings []Ring) float64 {
	var a float64
	for _, r := range rings {
		a += r.Area()
	}
	return a
}
