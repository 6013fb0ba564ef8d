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

package stylize

import (
	"math"
	"strconv"
)

// Style is the display type of a stylized cell.
//
// The set of styles is closed.  A Style is one of [Empty], [Filled],
// [Rim] or [Ornament].
type Style interface {
	isStyle()
}

// Empty marks cells which do not overlap the key silhouette, or overlap it
// only by a negligible area.  Empty cells are not numbered.
type Empty struct{}

// Filled marks cells lying completely inside the silhouette.
// The cell is painted in the given tone.
type Filled struct {
	Tone int
}

// Rim marks cells which straddle the silhouette boundary.
// The geometry is the part of the cell inside the silhouette.
type Rim struct{}

// Ornament marks decorative cells inside the silhouette.
// The outline is jittered towards the centre of the cell.
type Ornament struct {
	Tone int
}

func (Empty) isStyle()    {}
func (Filled) isStyle()   {}
func (Rim) isStyle()      {}
func (Ornament) isStyle() {}

// Name returns the short type name of the style.
func Name(s Style) string {
	switch s.(type) {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Rim:
		return "rim"
	case Ornament:
		return "ornament"
	default:
		panic("unreachable")
	}
}

// Key returns the equivalence key of a style.  Adjacent cells with equal
// keys are merged into one region.
func Key(s Style) string {
	switch s := s.(type) {
	case Filled:
		return "filled/" + strconv.Itoa(s.Tone)
	case Ornament:
		return "ornament/" + strconv.Itoa(s.Tone)
	default:
		return Name(s)
	}
}

// Tones returns the number of tones used at the given complexity.
func Tones(complexity int) int {
	n := 2
	for c := complexity; c > 1; c >>= 1 {
		n++
	}
	return min(n, maxTones)
}

// OrnamentProbability returns the probability that a cell inside the
// silhouette becomes an ornament.
func OrnamentProbability(complexity int) float64 {
	c := float64(max(complexity, 0))
	p := 0.05 + 0.1*math.Log1p(c)/math.Log(1001)
	return min(max(p, 0), 0.35)
}

const maxTones = 8
