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
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/enigma"
	"seehuhn.de/go/enigma/polygon"
	"seehuhn.de/go/enigma/stylize"
)

// PDF writes p as a single page PDF file.  The pieces are filled in grey
// tones which depend on their style, and are labelled with their numbers.
func PDF(fname string, p *enigma.Painting) error {
	letters, err := newLettering()
	if err != nil {
		return err
	}

	b := p.Config.Canvas
	paper := &pdf.Rectangle{
		URx: b.URx - b.LLx,
		URy: b.URy - b.LLy,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the canvas has y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, -b.LLx, b.URy})

	if err := drawPDF(page, p, letters); err != nil {
		page.Close()
		return err
	}
	return page.Close()
}

// pdfCanvas is the part of the PDF page API used for drawing a painting.
type pdfCanvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill()
	Stroke()
	ClipNonZero()
	EndPath()
	PushGraphicsState()
	PopGraphicsState()
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
}

// drawPDF draws the pieces, the silhouette and the numbers of p.
// Piece edges are clipped to the silhouette, so that the edges of rim
// pieces which run through holes stay invisible.
func drawPDF(page pdfCanvas, p *enigma.Painting, letters *lettering) error {
	drawRings := func(rings []polygon.Ring) {
		for _, r := range rings {
			if len(r) < 3 {
				continue
			}
			page.MoveTo(r[0].X, r[0].Y)
			for _, q := range r[1:] {
				page.LineTo(q.X, q.Y)
			}
			page.ClosePath()
		}
	}

	pieces := p.Pieces()
	tones := stylize.Tones(p.Config.Complexity)
	for _, piece := range pieces {
		page.SetFillColor(color.DeviceGray(grey(piece.Style, tones)))
		drawRings(piece.Geometry.Rings)
		page.Fill()
	}

	page.PushGraphicsState()
	drawRings(p.Shape.Rings)
	page.ClipNonZero()
	page.EndPath()
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5)
	for _, piece := range pieces {
		drawRings(piece.Geometry.Rings)
		page.Stroke()
	}
	page.PopGraphicsState()

	page.SetStrokeColor(color.DeviceGray(0.35))
	page.SetLineWidth(1.2)
	drawRings(p.Shape.Rings)
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0.07))
	for _, piece := range pieces {
		glyphs, err := letters.outline(strconv.Itoa(piece.Number), numberSize, piece.Geometry.Centroid())
		if err != nil {
			return err
		}
		if len(glyphs) == 0 {
			continue
		}
		drawRings(glyphs)
		page.Fill()
	}
	return nil
}

// numberSize is the font size used for piece numbers, in canvas units.
const numberSize = 6
