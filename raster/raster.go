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

// Package raster converts polygons into anti-aliased pixel coverage.
//
// Coverage is computed exactly: for every pixel, the signed area of the
// polygon inside the pixel square is accumulated from the polygon edges
// and then integrated along the scanline.  The package is used to draw
// preview images and synthetic key images.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

// FillRule determines which points are inside a set of rings.
type FillRule int

const (
	// NonZero fills points with a nonzero winding number.
	NonZero FillRule = iota

	// EvenOdd fills points with an odd winding number.
	EvenOdd
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

// Rasteriser computes pixel coverage for polygons.
// One instance can be reused for many fills; internal buffers grow as
// needed and are kept between calls.
type Rasteriser struct {
	// CTM maps user coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device rectangle which receives coverage.
	// It must have integer coordinates.
	Clip rect.Rect

	edges     []edge
	active    []int
	cover     []float32 // per pixel change of the accumulated winding
	area      []float32 // per pixel area contribution
	crossings []float64

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64

	strokeRings []polygon.Ring
}

// NewRasteriser returns a rasteriser for the given device clip rectangle,
// with the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Reset restores the identity transformation and sets a new clip
// rectangle.  Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
}

// Fill computes the coverage of the rings under the given fill rule.
// Coverage values in [0, 1] are delivered row by row: emit receives the
// row y, the x coordinate of the first value and the values themselves.
// Rows without coverage are skipped.  The coverage slice is only valid for
// the duration of the callback.
func (r *Rasteriser) Fill(rings []polygon.Ring, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	for _, ring := range rings {
		n := len(ring)
		if n < 3 {
			continue
		}
		prev := ring[n-1]
		for _, p := range ring {
			r.addEdge(prev, p)
			prev = p
		}
	}
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, rule, emit)
}

// addEdge transforms a user space segment to device space and records it.
// Horizontal segments do not contribute to coverage and are dropped.
func (r *Rasteriser) addEdge(p, q vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p.X + m[2]*p.Y + m[4]
	y0 := m[1]*p.X + m[3]*p.Y + m[5]
	x1 := m[0]*q.X + m[2]*q.Y + m[4]
	y1 := m[1]*q.X + m[3]*q.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// scan walks the scanlines of the bounding box with an active edge list.
func (r *Rasteriser) scan(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Coverage model:
//
// For the part of an edge inside one pixel, cover is the signed vertical
// extent (positive for downward edges) and area is cover times the
// fraction of the pixel to the right of the edge.  Integrating a scanline
// from the left, a pixel's coverage is the running sum of cover over all
// pixels to its left plus its own area value.

// accumulate adds the contribution of e within scanline y to the cover and
// area buffers.  Contributions left of xMin are folded into the first
// pixel.  It reports whether the edge intersects the scanline.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop, xBot := e.xAt(top), e.xAt(bot)
	left, right := min(xTop, xBot), max(xTop, xBot)
	pixLeft, pixRight := int(math.Floor(left)), int(math.Floor(right))

	if pixRight < xMin {
		c := sign * float32(bot-top)
		r.cover[0] += c
		r.area[0] += c
		return true
	}
	if pixLeft >= xMax {
		return true
	}

	// split the edge where it crosses vertical pixel boundaries
	r.crossings = append(r.crossings[:0], top, bot)
	if pixLeft != pixRight {
		for x := pixLeft + 1; x <= pixRight; x++ {
			yx := e.y0 + (float64(x)-e.x0)/e.dxdy
			if yx > top && yx < bot {
				r.crossings = append(r.crossings, yx)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		c := sign * float32(y1-y0)
		xm := e.xAt((y0 + y1) / 2)
		pix := int(math.Floor(xm))
		switch {
		case pix < xMin:
			r.cover[0] += c
			r.area[0] += c
		case pix < xMax:
			k := pix - xMin
			r.cover[k] += c
			r.area[k] += c * float32(1-(xm-float64(pix)))
		}
	}
	return true
}

// integrateNonZero turns the accumulated values into nonzero coverage,
// in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns the accumulated values into even-odd coverage,
// in place.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of row between the first and last non-zero
// values, together with its offset.  An all-zero row gives nil.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

// horizontalEdgeThreshold is the minimum vertical extent, in device
// pixels, for an edge to contribute coverage.
const horizontalEdgeThreshold = 1e-10
