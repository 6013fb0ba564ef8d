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

// Package polygon implements the planar polygon operations used by the
// generator: signed area and orientation, point containment, clipping
// against half-planes and convex windows, and boundary contact tests.
//
// Coordinates follow the canvas convention: x grows to the right, y grows
// downwards.  A ring has "positive orientation" if its shoelace area is
// positive; on screen such a ring runs clockwise.
package polygon

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Ring is a closed polygon.  The last vertex connects back to the first;
// the first vertex is not repeated at the end.
type Ring []vec.Vec2

// FromRect returns the rectangle as a positively oriented ring.
func FromRect(r rect.Rect) Ring {
	return Ring{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
}

// Area returns the signed area of the ring.
func (r Ring) Area() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := r[n-1]
	for _, p := range r {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return sum / 2
}

// Centroid returns the area centroid of the ring.
// For rings with (near) zero area, the mean of the vertices is returned.
func (r Ring) Centroid() vec.Vec2 {
	n := len(r)
	if n == 0 {
		return vec.Vec2{}
	}
	var cx, cy, a float64
	prev := r[n-1]
	for _, p := range r {
		w := prev.X*p.Y - p.X*prev.Y
		cx += (prev.X + p.X) * w
		cy += (prev.Y + p.Y) * w
		a += w
		prev = p
	}
	if math.Abs(a) < zeroArea {
		var m vec.Vec2
		for _, p := range r {
			m = m.Add(p)
		}
		return m.Mul(1 / float64(n))
	}
	return vec.Vec2{X: cx / (3 * a), Y: cy / (3 * a)}
}

// Bounds returns the bounding box of the ring.
func (r Ring) Bounds() rect.Rect {
	if len(r) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: r[0].X, LLy: r[0].Y, URx: r[0].X, URy: r[0].Y}
	for _, p := range r[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// Reverse returns a copy of the ring with the opposite orientation.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Transform applies the affine map m to every vertex.
// If m reverses orientation, so does the result.
func (r Ring) Transform(m matrix.Matrix) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
	return out
}

// Winding returns the winding number of the ring around p.
// Points on the boundary may be counted either way.
func (r Ring) Winding(p vec.Vec2) int {
	n := len(r)
	if n < 3 {
		return 0
	}
	w := 0
	a := r[n-1]
	for _, b := range r {
		if a.Y <= p.Y {
			if b.Y > p.Y && cross(a, b, p) > 0 {
				w++
			}
		} else if b.Y <= p.Y && cross(a, b, p) < 0 {
			w--
		}
		a = b
	}
	return w
}

// Contains reports whether p lies inside the ring, using the nonzero rule.
func (r Ring) Contains(p vec.Vec2) bool {
	return r.Winding(p) != 0
}

// Clean removes repeated vertices (closer than eps) and vertices lying on
// the straight line between their neighbours.  Rings which degenerate to
// fewer than three vertices are returned as nil.
func (r Ring) Clean(eps float64) Ring {
	out := make(Ring, 0, len(r))
	for _, p := range r {
		if len(out) > 0 && near(out[len(out)-1], p, eps) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && near(out[0], out[len(out)-1], eps) {
		out = out[:len(out)-1]
	}

	changed := true
	for changed && len(out) >= 3 {
		changed = false
		for i := 0; i < len(out) && len(out) >= 3; i++ {
			prev := out[(i+len(out)-1)%len(out)]
			next := out[(i+1)%len(out)]
			if math.Abs(cross(prev, next, out[i])) <= eps*prev.Sub(next).Length() {
				out = append(out[:i], out[i+1:]...)
				changed = true
				i--
			}
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// ClipHalfPlane returns the part of the ring where n·p <= c.
// The ring may be non-convex; in this case the result can contain
// zero-width connecting edges, but its signed area is exact.
func ClipHalfPlane(r Ring, n vec.Vec2, c float64) Ring {
	if len(r) == 0 {
		return nil
	}
	out := make(Ring, 0, len(r)+2)
	a := r[len(r)-1]
	da := n.Dot(a) - c
	for _, b := range r {
		db := n.Dot(b) - c
		if da <= 0 {
			out = append(out, a)
			if db > 0 {
				out = append(out, lerp(a, b, da/(da-db)))
			}
		} else if db <= 0 {
			out = append(out, lerp(a, b, da/(da-db)))
		}
		a, da = b, db
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// ClipConvex returns the part of subject which lies inside the convex,
// positively oriented ring window.  The subject keeps its orientation.
func ClipConvex(subject, window Ring) Ring {
	out := subject
	n := len(window)
	for i := range n {
		if len(out) == 0 {
			return nil
		}
		a := window[i]
		b := window[(i+1)%n]
		d := b.Sub(a)
		if d.X == 0 && d.Y == 0 {
			continue
		}
		// inside is the half-plane to the left of a->b in shoelace terms
		normal := vec.Vec2{X: d.Y, Y: -d.X}
		out = ClipHalfPlane(out, normal, normal.Dot(a))
	}
	return out
}

// Path converts rings into a path with one closed subpath per ring.
func Path(rings ...Ring) *path.Data {
	p := &path.Data{}
	for _, r := range rings {
		if len(r) < 2 {
			continue
		}
		p = p.MoveTo(r[0])
		for _, q := range r[1:] {
			p = p.LineTo(q)
		}
		p = p.Close()
	}
	return p
}

// cross returns the z-component of (b-a)×(p-a).
// It is positive if p lies to the left of a->b in the shoelace sense.
func cross(a, b, p vec.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

func near(a, b vec.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// zeroArea is the area below which a ring is treated as degenerate when
// computing centroids.
const zeroArea = 1e-12
