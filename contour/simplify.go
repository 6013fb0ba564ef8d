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
	"cmp"
	"container/heap"
	"math"

	"seehuhn.de/go/enigma/polygon"
)

// Simplify removes vertices which deviate from the straight line between
// their neighbours by at most tol.  Vertices are removed one at a time,
// smallest deviation first, until every remaining vertex deviates by more
// than tol or only three vertices are left.
//
// The result is a fixed point: simplifying it again with the same
// tolerance returns an identical ring.  Vertices keep their relative order,
// starting with the first surviving vertex of r.
func Simplify(r polygon.Ring, tol float64) polygon.Ring {
	r = r.Clean(0)
	n := len(r)
	if n <= 3 {
		return r
	}

	prev := make([]int, n)
	next := make([]int, n)
	version := make([]int, n)
	removed := make([]bool, n)
	for i := range n {
		prev[i] = (i + n - 1) % n
		next[i] = (i + 1) % n
	}

	dev := func(i int) float64 {
		a, b, p := r[prev[i]], r[next[i]], r[i]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			return p.Sub(a).Length()
		}
		return math.Abs(d.X*(p.Y-a.Y)-d.Y*(p.X-a.X)) / l
	}

	h := make(vertexHeap, 0, n)
	for i := range n {
		h = append(h, vertexDev{dev: dev(i), idx: i})
	}
	heap.Init(&h)

	alive := n
	for alive > 3 && h.Len() > 0 {
		v := heap.Pop(&h).(vertexDev)
		if removed[v.idx] || v.version != version[v.idx] {
			continue
		}
		if v.dev > tol {
			break
		}

		removed[v.idx] = true
		alive--
		p, q := prev[v.idx], next[v.idx]
		next[p] = q
		prev[q] = p
		for _, k := range [2]int{p, q} {
			version[k]++
			heap.Push(&h, vertexDev{dev: dev(k), idx: k, version: version[k]})
		}
	}

	out := make(polygon.Ring, 0, alive)
	for i, p := range r {
		if !removed[i] {
			out = append(out, p)
		}
	}
	if out.Area() == 0 {
		return nil
	}
	return out
}

type vertexDev struct {
	dev     float64
	idx     int
	version int
}

// vertexHeap orders vertices by deviation, then by index.
type vertexHeap []vertexDev

func (h vertexHeap) Len() int { return len(h) }
func (h vertexHeap) Less(i, j int) bool {
	if c := cmp.Compare(h[i].dev, h[j].dev); c != 0 {
		return c < 0
	}
	return h[i].idx < h[j].idx
}
func (h vertexHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *vertexHeap) Push(x any)   { *h = append(*h, x.(vertexDev)) }
func (h *vertexHeap) Pop() any {
	old := *h
	v := old[len(old)-1]
	*h = old[:len(old)-1]
	return v
}
