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

package tessellate

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

// Cell is one tile of the tessellation.
type Cell struct {
	// Index is the position of the site in the input sequence.
	Index int

	// Site is the generating point of the cell.
	Site vec.Vec2

	// Polygon is the convex, positively oriented outline of the cell.
	Polygon polygon.Ring

	// Neighbors lists the input indices of the sites whose cells share an
	// edge with this cell, in increasing order.
	Neighbors []int
}

// Cells computes the Voronoi tessellation of the sites, clipped to domain.
//
// Sites outside the domain and sites coinciding with an earlier site are
// ignored.  The result contains one cell per remaining site, in input
// order.  Vertices shared by neighbouring cells have identical coordinates.
func Cells(domain rect.Rect, sites []vec.Vec2) ([]Cell, error) {
	valid := make([]int, 0, len(sites))
	seen := make(map[[2]int64]struct{}, len(sites))
	for i, p := range sites {
		if !(p.X >= domain.LLx && p.X <= domain.URx && p.Y >= domain.LLy && p.Y <= domain.URy) {
			continue
		}
		k := [2]int64{int64(math.Round(p.X / duplicateDistance)), int64(math.Round(p.Y / duplicateDistance))}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		valid = append(valid, i)
	}
	if len(valid) < 2 {
		return nil, fmt.Errorf("Cells: %d usable sites: %w", len(valid), ErrDegenerateInput)
	}

	frame := polygon.FromRect(domain)
	grid := newSiteGrid(domain, sites, valid)
	cells := make([]Cell, 0, len(valid))
	var pending []candidate
	for _, i := range valid {
		site := sites[i]
		poly := frame
		var used []int

		// Visit the other sites nearest-first, one ring of buckets at a
		// time.  A site outside rings 0..k is at least k*size away, so
		// pending sites closer than that can be clipped in order.
		pending = pending[:0]
		cx, cy := grid.bucket(site)
		for k := 0; ; k++ {
			grid.ring(cx, cy, k, func(j int) {
				if j != i {
					pending = append(pending, candidate{idx: j, dist: sites[j].Sub(site).Length()})
				}
			})
			slices.SortFunc(pending, compareCandidates)

			limit := float64(k) * grid.size
			all := k >= grid.maxRing()
			done := false
			m := 0
			for ; m < len(pending); m++ {
				c := pending[m]
				if !all && !(c.dist < limit) {
					break
				}
				if c.dist > 2*radius(poly, site) {
					done = true
					break
				}
				n, off := bisector(site, sites[c.idx])
				poly = polygon.ClipHalfPlane(poly, n, off)
				used = append(used, c.idx)
				if poly == nil {
					done = true
					break
				}
			}
			pending = pending[:copy(pending, pending[m:])]
			if done || all || limit > 2*radius(poly, site) {
				break
			}
		}
		if poly == nil {
			return nil, fmt.Errorf("Cells: site %d has an empty cell: %w", i, ErrDegenerateInput)
		}

		cells = append(cells, Cell{
			Index:     i,
			Site:      site,
			Polygon:   poly,
			Neighbors: used,
		})
	}

	weld(cells, weldDistance*max(domain.URx-domain.LLx, domain.URy-domain.LLy))

	for k := range cells {
		c := &cells[k]
		c.Polygon = c.Polygon.Clean(0)
		if c.Polygon == nil {
			return nil, fmt.Errorf("Cells: site %d collapsed: %w", c.Index, ErrDegenerateInput)
		}
		c.Neighbors = edgeNeighbors(c, sites)
	}
	return cells, nil
}

type candidate struct {
	idx  int
	dist float64
}

func compareCandidates(a, b candidate) int {
	if c := cmp.Compare(a.dist, b.dist); c != 0 {
		return c
	}
	return cmp.Compare(a.idx, b.idx)
}

// siteGrid is a uniform bucket grid over the domain, holding the indices
// of the usable sites.  The bucket size is the mean site spacing.
type siteGrid struct {
	domain  rect.Rect
	size    float64
	nx, ny  int
	buckets [][]int
}

func newSiteGrid(domain rect.Rect, sites []vec.Vec2, valid []int) *siteGrid {
	w := domain.URx - domain.LLx
	h := domain.URy - domain.LLy
	size := math.Sqrt(w * h / float64(len(valid)))
	if !(size > 0) || math.IsInf(size, 0) {
		size = max(w, h, 1)
	}
	g := &siteGrid{
		domain: domain,
		size:   size,
		nx:     max(1, int(math.Ceil(w/size))),
		ny:     max(1, int(math.Ceil(h/size))),
	}
	g.buckets = make([][]int, g.nx*g.ny)
	for _, i := range valid {
		bx, by := g.bucket(sites[i])
		b := by*g.nx + bx
		g.buckets[b] = append(g.buckets[b], i)
	}
	return g
}

func (g *siteGrid) bucket(p vec.Vec2) (int, int) {
	bx := int((p.X - g.domain.LLx) / g.size)
	by := int((p.Y - g.domain.LLy) / g.size)
	return min(max(bx, 0), g.nx-1), min(max(by, 0), g.ny-1)
}

// maxRing returns a ring number k such that rings 0..k around any bucket
// cover the whole grid.
func (g *siteGrid) maxRing() int {
	return max(g.nx, g.ny)
}

// ring calls yield for every site in the buckets at Chebyshev distance k
// from bucket (cx, cy).
func (g *siteGrid) ring(cx, cy, k int, yield func(int)) {
	visit := func(bx, by int) {
		if bx < 0 || bx >= g.nx || by < 0 || by >= g.ny {
			return
		}
		for _, j := range g.buckets[by*g.nx+bx] {
			yield(j)
		}
	}
	if k == 0 {
		visit(cx, cy)
		return
	}
	for by := cy - k; by <= cy+k; by++ {
		if by == cy-k || by == cy+k {
			for bx := cx - k; bx <= cx+k; bx++ {
				visit(bx, by)
			}
		} else {
			visit(cx-k, by)
			visit(cx+k, by)
		}
	}
}

// bisector returns the half-plane n·p <= c of points at least as close to
// a as to b.
func bisector(a, b vec.Vec2) (vec.Vec2, float64) {
	n := b.Sub(a)
	c := (b.Dot(b) - a.Dot(a)) / 2
	return n, c
}

// radius returns the largest distance from site to a vertex of r.
func radius(r polygon.Ring, site vec.Vec2) float64 {
	var d float64
	for _, p := range r {
		d = max(d, p.Sub(site).Length())
	}
	return d
}

// edgeNeighbors keeps those candidate sites whose bisector carries an edge
// of the final cell polygon.
func edgeNeighbors(c *Cell, sites []vec.Vec2) []int {
	var out []int
	r := c.Polygon
	for _, j := range c.Neighbors {
		n, k := bisector(c.Site, sites[j])
		l := n.Length()
		for e := range r {
			a, b := r[e], r[(e+1)%len(r)]
			if a.Sub(b).Length() <= onEdgeDistance {
				continue
			}
			if math.Abs(n.Dot(a)-k) <= onEdgeDistance*l && math.Abs(n.Dot(b)-k) <= onEdgeDistance*l {
				out = append(out, j)
				break
			}
		}
	}
	slices.Sort(out)
	return out
}

// weld snaps vertices closer than eps to a common representative, so that
// neighbouring cells share bit-identical coordinates.  The first vertex
// seen, in cell order, becomes the representative.
func weld(cells []Cell, eps float64) {
	type key [2]int64
	buckets := make(map[key][]vec.Vec2)
	keyOf := func(p vec.Vec2) key {
		return key{int64(math.Floor(p.X / eps)), int64(math.Floor(p.Y / eps))}
	}
	for ci := range cells {
		ring := slices.Clone(cells[ci].Polygon)
		for vi, p := range ring {
			k := keyOf(p)
			found := false
		search:
			for dy := int64(-1); dy <= 1; dy++ {
				for dx := int64(-1); dx <= 1; dx++ {
					for _, q := range buckets[key{k[0] + dx, k[1] + dy}] {
						if math.Abs(q.X-p.X) <= eps && math.Abs(q.Y-p.Y) <= eps {
							ring[vi] = q
							found = true
							break search
						}
					}
				}
			}
			if !found {
				buckets[k] = append(buckets[k], p)
			}
		}
		cells[ci].Polygon = ring
	}
}

const (
	// weldDistance is the relative distance (in units of the domain size)
	// below which cell vertices are merged.
	weldDistance = 1e-9

	// onEdgeDistance is the tolerance used to decide whether a cell edge
	// lies on the bisector of two sites.
	onEdgeDistance = 1e-6
)
