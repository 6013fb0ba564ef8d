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

// Package label groups stylized cells into numbered regions.
//
// Two geometries are adjacent if their boundaries run along each other
// for a positive length, with the two geometries on opposite sides.  A
// region is a connected component of the adjacency graph restricted to
// geometries with equal style keys.  Regions are numbered 1, 2, ... in
// the order of their smallest member index, and every geometry receives
// the number of its region.
package label

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/enigma/polygon"
	"seehuhn.de/go/enigma/stylize"
)

// ErrLabelingInconsistency indicates a violated labeling invariant.
// This can only be caused by a bug, or by empty geometries in the input.
var ErrLabelingInconsistency = errors.New("label: inconsistent labeling")

// Region is a maximal connected set of adjacent geometries with equal
// style keys.
type Region struct {
	// ID is the number of the region, starting at 1.
	ID int

	// Style is the style of the first member.  All members have the same
	// style key.
	Style stylize.Style

	// Members lists the positions of the member geometries in the input
	// slice, in increasing order.
	Members []int
}

// Labeling is the result of [Assign].
type Labeling struct {
	// Numbers[i] is the number of the i-th input geometry.
	Numbers []int

	// Regions lists the regions in order of their ID.
	Regions []Region

	// Adjacency[i] lists the positions of the geometries adjacent to the
	// i-th input geometry, in increasing order.
	Adjacency [][]int
}

// Tolerance returns the default contact tolerance for a canvas.
func Tolerance(canvas rect.Rect) float64 {
	return relativeTolerance * max(canvas.URx-canvas.LLx, canvas.URy-canvas.LLy)
}

// Adjacent reports whether the boundaries of a and b share a segment
// longer than tol.
func Adjacent(a, b *stylize.Geometry, tol float64) bool {
	return polygon.Touching(a.Rings, b.Rings, tol)
}

// Adjacency returns the adjacency lists of the geometries.
//
// Candidate pairs are found by sweeping the bounding boxes in order of
// their left edge; only pairs with overlapping boxes are tested with
// [Adjacent].
func Adjacency(geoms []stylize.Geometry, tol float64) [][]int {
	type item struct {
		idx int
		box rect.Rect
	}
	items := make([]item, 0, len(geoms))
	for i := range geoms {
		if len(geoms[i].Rings) == 0 {
			continue
		}
		items = append(items, item{idx: i, box: geoms[i].Bounds()})
	}
	slices.SortFunc(items, func(a, b item) int {
		if c := cmp.Compare(a.box.LLx, b.box.LLx); c != 0 {
			return c
		}
		return cmp.Compare(a.idx, b.idx)
	})

	adj := make([][]int, len(geoms))
	for k, a := range items {
		for _, b := range items[k+1:] {
			if b.box.LLx > a.box.URx+tol {
				break
			}
			if b.box.LLy > a.box.URy+tol || a.box.LLy > b.box.URy+tol {
				continue
			}
			if Adjacent(&geoms[a.idx], &geoms[b.idx], tol) {
				adj[a.idx] = append(adj[a.idx], b.idx)
				adj[b.idx] = append(adj[b.idx], a.idx)
			}
		}
	}
	for _, list := range adj {
		slices.Sort(list)
	}
	return adj
}

// Assign groups the geometries into regions and numbers them.
// The geometries must not be empty.
func Assign(geoms []stylize.Geometry, tol float64) (*Labeling, error) {
	for i := range geoms {
		if geoms[i].Empty() {
			return nil, fmt.Errorf("Assign: geometry %d (cell %d) is empty: %w",
				i, geoms[i].Cell, ErrLabelingInconsistency)
		}
	}

	adj := Adjacency(geoms, tol)
	numbers := make([]int, len(geoms))
	var regions []Region

	// Components are discovered in input order, so the first member of
	// each new component is its smallest index.
	var queue []int
	for start := range geoms {
		if numbers[start] != 0 {
			continue
		}
		id := len(regions) + 1
		key := stylize.Key(geoms[start].Style)
		members := []int{start}
		numbers[start] = id
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			for _, j := range adj[i] {
				if numbers[j] != 0 || stylize.Key(geoms[j].Style) != key {
					continue
				}
				numbers[j] = id
				members = append(members, j)
				queue = append(queue, j)
			}
		}
		slices.Sort(members)
		regions = append(regions, Region{
			ID:      id,
			Style:   geoms[start].Style,
			Members: members,
		})
	}

	l := &Labeling{
		Numbers:   numbers,
		Regions:   regions,
		Adjacency: adj,
	}
	if err := l.check(geoms); err != nil {
		return nil, err
	}
	return l, nil
}

// check verifies the labeling invariants on behalf of [Assign].
func (l *Labeling) check(geoms []stylize.Geometry) error {
	if len(l.Numbers) != len(geoms) {
		return fmt.Errorf("Assign: %d numbers for %d geometries: %w",
			len(l.Numbers), len(geoms), ErrLabelingInconsistency)
	}

	seen := make([]bool, len(geoms))
	for k, r := range l.Regions {
		if r.ID != k+1 || len(r.Members) == 0 {
			return fmt.Errorf("Assign: region %d: invalid ID or no members: %w", k, ErrLabelingInconsistency)
		}
		key := stylize.Key(r.Style)
		for _, i := range r.Members {
			if i < 0 || i >= len(geoms) || seen[i] {
				return fmt.Errorf("Assign: region %d: member %d repeated or out of range: %w",
					r.ID, i, ErrLabelingInconsistency)
			}
			seen[i] = true
			if l.Numbers[i] != r.ID {
				return fmt.Errorf("Assign: geometry %d: number %d in region %d: %w",
					i, l.Numbers[i], r.ID, ErrLabelingInconsistency)
			}
			if stylize.Key(geoms[i].Style) != key {
				return fmt.Errorf("Assign: region %d: mixed styles: %w", r.ID, ErrLabelingInconsistency)
			}
		}
		if k > 0 && l.Regions[k-1].Members[0] >= r.Members[0] {
			return fmt.Errorf("Assign: region %d: out of order: %w", r.ID, ErrLabelingInconsistency)
		}
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("Assign: geometry %d: not in any region: %w", i, ErrLabelingInconsistency)
		}
	}

	for i, list := range l.Adjacency {
		for _, j := range list {
			sameKey := stylize.Key(geoms[i].Style) == stylize.Key(geoms[j].Style)
			if sameKey != (l.Numbers[i] == l.Numbers[j]) {
				return fmt.Errorf("Assign: geometries %d and %d: adjacent with numbers %d and %d: %w",
					i, j, l.Numbers[i], l.Numbers[j], ErrLabelingInconsistency)
			}
		}
	}
	return nil
}

// relativeTolerance is the contact tolerance as a fraction of the canvas
// size.
const relativeTolerance = 1e-6
