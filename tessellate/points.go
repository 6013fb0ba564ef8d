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

// Package tessellate places the seed points of a painting and builds the
// Voronoi cells around them.
package tessellate

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/sampler"
)

// ErrDegenerateInput is returned when no valid tessellation can be formed.
var ErrDegenerateInput = errors.New("tessellate: degenerate input")

// MaxPoints is the largest number of seed points [SeedPoints] accepts.
const MaxPoints = 1 << 16

// MinSeparation returns the default minimum distance between n seed points
// in the given domain.
func MinSeparation(domain rect.Rect, n int) float64 {
	if n < 1 {
		return 0
	}
	area := (domain.URx - domain.LLx) * (domain.URy - domain.LLy)
	return separationFactor * math.Sqrt(area/float64(n))
}

// SeedPoints draws n points inside domain.
//
// Each point is drawn uniformly (x first, then y).  Candidates closer than
// minSep to an earlier point, or closer than minSep/2 to the domain border,
// are rejected and redrawn.  After maxAttempts rejections the candidate with
// the largest clearance is used instead, so the number of values drawn from
// s depends only on the geometry of the earlier points.
func SeedPoints(domain rect.Rect, n int, minSep float64, s *sampler.Stream) ([]vec.Vec2, error) {
	w := domain.URx - domain.LLx
	h := domain.URy - domain.LLy
	if n < 1 || n > MaxPoints || !(w > 0) || !(h > 0) {
		return nil, fmt.Errorf("SeedPoints: %d points in %gx%g domain: %w", n, w, h, ErrDegenerateInput)
	}
	minSep = max(minSep, 0)

	g := newPointGrid(domain, minSep)
	pts := make([]vec.Vec2, 0, n)
	for len(pts) < n {
		var best vec.Vec2
		bestClearance := -1.0
		for attempt := 0; ; attempt++ {
			p := vec.Vec2{
				X: domain.LLx + s.Float64()*w,
				Y: domain.LLy + s.Float64()*h,
			}
			border := min(p.X-domain.LLx, domain.URx-p.X, p.Y-domain.LLy, domain.URy-p.Y)
			clearance := min(g.nearest(p), 2*border)
			if clearance > bestClearance {
				best, bestClearance = p, clearance
			}
			if clearance >= minSep && clearance > duplicateDistance {
				break
			}
			if attempt >= maxAttempts && bestClearance > duplicateDistance {
				break
			}
			if attempt >= 100*maxAttempts {
				return nil, fmt.Errorf("SeedPoints: no room for point %d: %w", len(pts), ErrDegenerateInput)
			}
		}
		g.add(best)
		pts = append(pts, best)
	}
	return pts, nil
}

// pointGrid is a uniform bucket grid for nearest-neighbour queries among
// the accepted seed points.  Only points within one bucket distance are
// found; further points report the bucket size.
type pointGrid struct {
	domain  rect.Rect
	size    float64
	buckets map[[2]int][]vec.Vec2
	all     []vec.Vec2 // used when size is zero
}

func newPointGrid(domain rect.Rect, size float64) *pointGrid {
	return &pointGrid{
		domain:  domain,
		size:    size,
		buckets: make(map[[2]int][]vec.Vec2),
	}
}

func (g *pointGrid) key(p vec.Vec2) [2]int {
	return [2]int{
		int(math.Floor((p.X - g.domain.LLx) / g.size)),
		int(math.Floor((p.Y - g.domain.LLy) / g.size)),
	}
}

func (g *pointGrid) add(p vec.Vec2) {
	if g.size <= 0 {
		g.all = append(g.all, p)
		return
	}
	k := g.key(p)
	g.buckets[k] = append(g.buckets[k], p)
}

// nearest returns the distance from p to the closest stored point, capped
// at the bucket size.
func (g *pointGrid) nearest(p vec.Vec2) float64 {
	best := math.Inf(1)
	if g.size <= 0 {
		for _, q := range g.all {
			best = min(best, p.Sub(q).Length())
		}
		return best
	}
	best = g.size
	k := g.key(p)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for _, q := range g.buckets[[2]int{k[0] + dx, k[1] + dy}] {
				best = min(best, p.Sub(q).Length())
			}
		}
	}
	return best
}

const (
	// separationFactor scales the mean site spacing sqrt(area/n) to the
	// minimum distance enforced between seed points.
	separationFactor = 0.25

	// maxAttempts is the number of redraws before the best candidate is
	// accepted regardless of its clearance.
	maxAttempts = 30

	// duplicateDistance is the distance below which two sites are
	// considered to coincide.
	duplicateDistance = 1e-9
)
