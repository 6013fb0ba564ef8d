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
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/enigma"
	"seehuhn.de/go/enigma/raster"
	"seehuhn.de/go/enigma/stylize"
)

// PNGOptions controls the preview image.
// A nil *PNGOptions selects scale 1 with colour, outline and numbers.
type PNGOptions struct {
	// Scale is the number of pixels per canvas unit.  Zero means 1.
	Scale float64

	// Color fills the pieces in brass tones.  Otherwise grey tones which
	// depend on the piece style are used.
	Color bool

	// Outline draws the key silhouette on top of the pieces.
	Outline bool

	// Numbers draws the number of every piece at its centre.
	Numbers bool
}

// PNG writes a preview image of p in PNG format.
func PNG(w io.Writer, p *enigma.Painting, opt *PNGOptions) error {
	img, err := Render(p, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render draws a preview image of p.
func Render(p *enigma.Painting, opt *PNGOptions) (*image.RGBA, error) {
	if opt == nil {
		opt = &PNGOptions{Color: true, Outline: true, Numbers: true}
	}
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}

	b := p.Config.Canvas
	width := int(math.Ceil((b.URx - b.LLx) * scale))
	height := int(math.Ceil((b.URy - b.LLy) * scale))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	r := raster.NewRasteriser(clip)
	r.CTM = matrix.Matrix{scale, 0, 0, scale, -b.LLx * scale, -b.LLy * scale}

	pieces := p.Pieces()
	tones := stylize.Tones(p.Config.Complexity)
	for _, piece := range pieces {
		var fill color.Color
		if opt.Color {
			fill = brass(piece.Region)
		} else {
			v := uint8(math.Round(grey(piece.Style, tones) * 255))
			fill = color.Gray{Y: v}
		}
		r.Fill(piece.Geometry.Rings, raster.NonZero, raster.OverRGBA(img, fill))
	}

	var edge color.Color = color.Black
	edgeWidth := 1.0
	if opt.Color {
		edge, edgeWidth = brassStroke, 0.5
	}
	// Piece edges are only drawn inside the key, so that the edges of
	// rim pieces which run through holes stay invisible.
	mask := make([]float32, width*height)
	r.Fill(p.Shape.Rings, raster.NonZero, raster.Accumulate(mask, width))
	stroke := raster.Masked(mask, width, raster.OverRGBA(img, edge))
	for _, piece := range pieces {
		r.Stroke(piece.Geometry.Rings, edgeWidth, stroke)
	}

	if opt.Outline {
		r.Stroke(p.Shape.Rings, 1.2, raster.OverRGBA(img, darkGoldenrod))
	}

	if opt.Numbers {
		letters, err := newLettering()
		if err != nil {
			return nil, err
		}
		for _, piece := range pieces {
			glyphs, err := letters.outline(strconv.Itoa(piece.Number), numberSize, piece.Geometry.Centroid())
			if err != nil {
				return nil, err
			}
			r.Fill(glyphs, raster.NonZero, raster.OverRGBA(img, ink))
		}
	}

	return img, nil
}
