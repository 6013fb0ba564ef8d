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

package enigma

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/contour"
	"seehuhn.de/go/enigma/label"
	"seehuhn.de/go/enigma/stylize"
	"seehuhn.de/go/enigma/tessellate"
)

// Painting is the result of a pipeline run.
// All fields are read-only after construction.
type Painting struct {
	// Config is the configuration used, with the canvas filled in.
	Config Config

	// Sites holds the seed points, in the order they were drawn.
	Sites []vec.Vec2

	// Cells holds the Voronoi cells, one per site.
	Cells []tessellate.Cell

	// Shape is the silhouette of the key image, in canvas coordinates.
	Shape *contour.Shape

	// Stylized holds the stylized form of every cell, in cell order,
	// including empty cells.
	Stylized []stylize.Geometry

	// Geometries holds the non-empty elements of Stylized, in cell order.
	Geometries []stylize.Geometry

	// Labeling assigns numbers and regions to Geometries.
	Labeling *label.Labeling
}

// ID returns the identifier of the painting used in exported files.
func (p *Painting) ID() string {
	return fmt.Sprintf("key_%d", p.Config.Seed)
}

// Piece is a numbered part of a painting.
type Piece struct {
	// Index is the position of the piece in Painting.Geometries.
	Index int

	Geometry *stylize.Geometry
	Style    stylize.Style

	// Number is the label painted onto the piece.
	Number int

	// Region is the ID of the region containing the piece.  With the
	// current numbering scheme this is the same as Number.
	Region int
}

// Pieces returns the numbered pieces of the painting.
// The pieces are listed in cell order; this order is the same for every
// run with the same configuration.
func (p *Painting) Pieces() []Piece {
	pieces := make([]Piece, len(p.Geometries))
	for i := range p.Geometries {
		g := &p.Geometries[i]
		pieces[i] = Piece{
			Index:    i,
			Geometry: g,
			Style:    g.Style,
			Number:   p.Labeling.Numbers[i],
			Region:   p.Labeling.Numbers[i],
		}
	}
	return pieces
}

// Region returns the region with the given ID, or nil if there is no such
// region.
func (p *Painting) Region(id int) *label.Region {
	if id < 1 || id > len(p.Labeling.Regions) {
		return nil
	}
	return &p.Labeling.Regions[id-1]
}
