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

package export

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/enigma"
	"seehuhn.de/go/enigma/contour"
)

// SVGOptions controls the appearance of SVG output.
// A nil *SVGOptions selects colour, outline and numbers.
type SVGOptions struct {
	// Color fills the pieces in brass tones.  Otherwise only the piece
	// outlines are drawn, in black.
	Color bool

	// Outline draws the key silhouette on top of the pieces.
	Outline bool

	// Numbers writes the number of every piece at its centre.
	Numbers bool
}

// SVG writes p as an SVG drawing.
func SVG(w io.Writer, p *enigma.Painting, opt *SVGOptions) error {
	if opt == nil {
		opt = &SVGOptions{Color: true, Outline: true, Numbers: true}
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = 1

	b := p.Config.Canvas
	width, height := b.URx-b.LLx, b.URy-b.LLy
	canvas.Startview(width, height, b.LLx, b.LLy, width, height)
	canvas.Title(p.ID())

	silhouette := pathData(p.Shape.Rings)
	canvas.Def()
	canvas.ClipPath(`id="keyClip"`)
	canvas.Path(silhouette, `clip-rule="nonzero"`)
	canvas.ClipEnd()
	canvas.DefEnd()

	pieces := p.Pieces()
	canvas.Group(`id="pieces"`)
	for _, piece := range pieces {
		fill, stroke, strokeWidth := "none", "#000", "1"
		if opt.Color {
			fill = brass(piece.Region).String()
			stroke = "#9a7b00"
			strokeWidth = "0.5"
		}
		canvas.Path(pathData(piece.Geometry.Rings),
			`id="cell-`+strconv.Itoa(piece.Geometry.Cell)+`"`,
			`fill="`+fill+`"`,
			`stroke="`+stroke+`"`,
			`stroke-width="`+strokeWidth+`"`,
			`fill-rule="nonzero"`,
			`clip-path="url(#keyClip)"`)
	}
	canvas.Gend()

	if opt.Outline {
		canvas.Path(silhouette, `fill="none"`, `stroke="darkgoldenrod"`, `stroke-width="1.2"`)
	}

	if opt.Numbers {
		canvas.Group(`id="numbers"`, `font-size="6"`, `text-anchor="middle"`,
			`dominant-baseline="middle"`, `fill="#111"`)
		for _, piece := range pieces {
			c := piece.Geometry.Centroid()
			canvas.Text(c.X, c.Y, strconv.Itoa(piece.Number))
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

// SilhouetteSVG writes only the key silhouette as an SVG drawing.
func SilhouetteSVG(w io.Writer, shape *contour.Shape, b rect.Rect) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = 1

	width, height := b.URx-b.LLx, b.URy-b.LLy
	canvas.Startview(width, height, b.LLx, b.LLy, width, height)
	canvas.Path(pathData(shape.Rings), `fill="#111"`, `fill-rule="nonzero"`,
		`stroke="darkgoldenrod"`, `stroke-width="1.2"`)
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error.  Once an error has occurred,
// all further writes are skipped.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
