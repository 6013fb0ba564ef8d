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

package contour

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

// crack is a unit-length directed pixel edge between an inside and an
// outside pixel.  The inside pixel is on the right, as seen on screen.
type crack struct {
	x, y int // start corner
	dir  int // index into steps
}

// steps are the unit moves right, down, left, up (y grows downwards).
var steps = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// trace follows all boundaries of the mask.  The rings are returned in
// scan order of their first crack, with collinear vertices removed.
//
// Where two inside pixels touch only at a corner, the trace turns towards
// the pixel it is currently following, so such pixels end up in separate
// rings.
func (m *mask) trace() []polygon.Ring {
	cw := m.w + 1 // corners per row

	var cracks []crack
	out := make([][2]int32, cw*(m.h+1)) // outgoing cracks per corner
	for i := range out {
		out[i] = [2]int32{-1, -1}
	}
	addCrack := func(x, y, dir int) {
		idx := int32(len(cracks))
		cracks = append(cracks, crack{x: x, y: y, dir: dir})
		slot := &out[y*cw+x]
		if slot[0] < 0 {
			slot[0] = idx
		} else {
			slot[1] = idx
		}
	}

	for y := range m.h {
		for x := range m.w {
			if !m.at(x, y) {
				continue
			}
			if !m.at(x, y-1) {
				addCrack(x, y, 0) // top edge, left to right
			}
			if !m.at(x+1, y) {
				addCrack(x+1, y, 1) // right edge, downwards
			}
			if !m.at(x, y+1) {
				addCrack(x+1, y+1, 2) // bottom edge, right to left
			}
			if !m.at(x-1, y) {
				addCrack(x, y+1, 3) // left edge, upwards
			}
		}
	}

	used := make([]bool, len(cracks))
	var rings []polygon.Ring
	for start := range cracks {
		if used[start] {
			continue
		}

		var ring polygon.Ring
		cur := start
		for !used[cur] {
			used[cur] = true
			c := cracks[cur]
			ring = append(ring, vec.Vec2{X: float64(c.x), Y: float64(c.y)})

			ex := c.x + steps[c.dir][0]
			ey := c.y + steps[c.dir][1]
			next := int32(-1)
		turns:
			for _, turn := range turnOrder {
				want := (c.dir + turn) % 4
				for _, k := range out[ey*cw+ex] {
					if k >= 0 && cracks[k].dir == want {
						next = k
						break turns
					}
				}
			}
			if next < 0 {
				break // cannot happen for a well-formed mask
			}
			cur = int(next)
		}

		if r := ring.Clean(0); r != nil {
			rings = append(rings, r)
		}
	}
	return rings
}

// turnOrder lists the preferred directions at a corner, relative to the
// incoming direction: right turn, straight on, left turn.
var turnOrder = [3]int{1, 0, 3}
