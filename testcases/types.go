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

// Package testcases provides synthetic key images for tests and demos.
//
// Each test case describes a small greyscale image as a background level
// plus a sequence of painting operations, together with the silhouette
// which contour extraction is expected to find.
package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
	"seehuhn.de/go/enigma/raster"
	"seehuhn.de/go/enigma/sampler"
)

// TestCase defines a single key image.
type TestCase struct {
	Name       string      // lowercase a-z and _ only
	Width      int         // image width in pixels
	Height     int         // image height in pixels
	Background uint8       // grey level of the background
	Ops        []Operation // painted in order
	Threshold  int         // luma threshold to use for extraction
	Want       Expect      // expected extraction result
}

// Expect describes the silhouette found by contour extraction with the
// default options.
type Expect struct {
	Absent bool // no silhouette at all
	Outers int  // number of outer boundaries
	Holes  int  // number of holes
}

// Operation is a painting operation applied to the image.
type Operation interface {
	isOperation()
}

// Fill paints the area enclosed by the rings in the given grey level.
type Fill struct {
	Rings []polygon.Ring
	Rule  raster.FillRule
	Gray  uint8
}

func (Fill) isOperation() {}

// Speckle sets isolated single pixels on a regular grid, each with
// probability Density, to the given grey level.  Grid points inside
// Avoid are skipped.
type Speckle struct {
	Seed    int64
	Spacing int
	Density float64
	Gray    uint8
	Avoid   rect.Rect
}

func (Speckle) isOperation() {}

// Image renders the test case.
func (tc TestCase) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	for i := range img.Pix {
		img.Pix[i] = tc.Background
	}

	r := raster.NewRasteriser(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case Fill:
			r.Fill(op.Rings, op.Rule, raster.SetGray(img, op.Gray))
		case Speckle:
			s := sampler.New(op.Seed)
			for y := op.Spacing / 2; y < tc.Height; y += op.Spacing {
				for x := op.Spacing / 2; x < tc.Width; x += op.Spacing {
					hit := s.Bool(op.Density)
					p := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
					if !hit || inside(op.Avoid, p) {
						continue
					}
					img.SetGray(x, y, color.Gray{Y: op.Gray})
				}
			}
		}
	}
	return img
}

// box returns the rectangle as a ring.
func box(x0, y0, x1, y1 float64) polygon.Ring {
	return polygon.FromRect(rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1})
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func inside(r rect.Rect, p vec.Vec2) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}
