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

// Package stylize decides the display type of every tessellation cell and
// computes the geometry which is shown for it.
//
// Cells outside the key silhouette become [Empty].  Cells straddling the
// silhouette boundary become [Rim] and are clipped to the silhouette.
// Cells completely inside the silhouette keep their full outline and
// become [Filled], or, with a small probability which grows with the
// complexity, [Ornament].
//
// Each cell consumes exactly two values from its random stream, whatever
// the outcome.  Ornament outlines are jittered using a separate stream
// derived from the first of these values.
package stylize

import (
	"context"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/contour"
	"seehuhn.de/go/enigma/polygon"
	"seehuhn.de/go/enigma/sampler"
	"seehuhn.de/go/enigma/tessellate"
)

// Stylizer holds the parameters shared by all cells of a run.
type Stylizer struct {
	// Shape is the key silhouette.  If Shape is nil, every cell counts as
	// lying inside the silhouette.
	Shape *contour.Shape

	// Complexity controls the number of tones and the ornament
	// probability.
	Complexity int

	// MinArea is the covered area below which a cell is Empty.
	// Zero selects the default of one square canvas unit.
	MinArea float64

	// Jitter is the largest fraction of the distance to the cell centroid
	// by which ornament vertices are moved.  Zero selects the default;
	// a negative value disables jitter.
	Jitter float64
}

// Geometry is the stylized form of one cell.
type Geometry struct {
	// Cell is the index of the cell's site in the input sequence.
	Cell int

	Style Style

	// Rings describes the displayed area, using the nonzero winding rule.
	// Rings is nil for empty geometries.
	Rings []polygon.Ring
}

// Area returns the displayed area.
func (g *Geometry) Area() float64 {
	return polygon.TotalArea(g.Rings)
}

// Empty reports whether the geometry has style [Empty].
func (g *Geometry) Empty() bool {
	_, ok := g.Style.(Empty)
	return ok
}

// Centroid returns the area centroid of the displayed area.
func (g *Geometry) Centroid() vec.Vec2 {
	var a float64
	var c vec.Vec2
	for _, r := range g.Rings {
		ra := r.Area()
		a += ra
		c = c.Add(r.Centroid().Mul(ra))
	}
	if math.Abs(a) > 1e-12 {
		return c.Mul(1 / a)
	}

	var m vec.Vec2
	n := 0
	for _, r := range g.Rings {
		for _, p := range r {
			m = m.Add(p)
			n++
		}
	}
	if n == 0 {
		return vec.Vec2{}
	}
	return m.Mul(1 / float64(n))
}

// Bounds returns the bounding box of the displayed area.
func (g *Geometry) Bounds() rect.Rect {
	return polygon.Bounds(g.Rings)
}

// Stylize classifies a single cell, drawing from s.
func (st *Stylizer) Stylize(s *sampler.Stream, c tessellate.Cell) Geometry {
	u := s.Uint32()
	tone := s.IntRange(0, Tones(st.Complexity)-1)

	cellArea := c.Polygon.Area()
	covered := cellArea
	var clipped []polygon.Ring
	if st.Shape != nil {
		covered = 0
		for _, r := range st.Shape.Rings {
			part := polygon.ClipConvex(r, c.Polygon).Clean(0)
			if part == nil {
				continue
			}
			covered += part.Area()
			clipped = append(clipped, part)
		}
	}

	minArea := st.MinArea
	if minArea == 0 {
		minArea = defaultMinArea
	}

	g := Geometry{Cell: c.Index}
	switch {
	case covered < minArea:
		g.Style = Empty{}
	case covered >= cellArea*(1-fullCover):
		if float64(u)/(1<<32) < OrnamentProbability(st.Complexity) {
			g.Style = Ornament{Tone: tone}
			g.Rings = []polygon.Ring{st.jitter(c.Polygon, u, c.Index)}
		} else {
			g.Style = Filled{Tone: tone}
			g.Rings = []polygon.Ring{slices.Clone(c.Polygon)}
		}
	default:
		g.Style = Rim{}
		g.Rings = clipped
	}
	return g
}

// jitter moves every vertex of the convex ring r towards the centroid of
// r.  The result is star-shaped with respect to the centroid and thus
// simple, and it keeps the orientation of r.
func (st *Stylizer) jitter(r polygon.Ring, u uint32, index int) polygon.Ring {
	amount := st.Jitter
	if amount == 0 {
		amount = defaultJitter
	}
	if amount < 0 {
		return slices.Clone(r)
	}
	amount = min(amount, 1)

	local := sampler.Derive(int64(u), index)
	c := r.Centroid()
	out := make(polygon.Ring, len(r))
	for i, p := range r {
		t := amount * local.Float64()
		out[i] = p.Add(c.Sub(p).Mul(t))
	}
	return out
}

// StylizeAll stylizes all cells and returns one geometry per cell, in
// the order of cells.
//
// If parallel is false, the cells are processed in order and all values
// are drawn from s.  Otherwise the cells are distributed over a bounded
// pool of goroutines, cell c draws from sampler.Derive(seed, c.Index), and
// s is not used.  Both modes are reproducible, but they give different
// results.
func (st *Stylizer) StylizeAll(ctx context.Context, cells []tessellate.Cell, s *sampler.Stream, seed int64, parallel bool) ([]Geometry, error) {
	out := make([]Geometry, len(cells))
	if !parallel {
		for i, c := range cells {
			out[i] = st.Stylize(s, c)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range cells {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = st.Stylize(sampler.Derive(seed, c.Index), c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// NonEmpty returns the geometries which are not [Empty], keeping their
// order.
func NonEmpty(geoms []Geometry) []Geometry {
	var out []Geometry
	for _, g := range geoms {
		if !g.Empty() {
			out = append(out, g)
		}
	}
	return out
}

const (
	defaultMinArea = 1
	defaultJitter  = 0.15

	// fullCover is the relative area deficit up to which a cell counts as
	// completely covered by the silhouette.
	fullCover = 1e-9
)
