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

package contour

import (
	"image"

	"golang.org/x/image/draw"
)

// mask is a binary image; true pixels are inside the silhouette.
type mask struct {
	w, h  int
	bits  []bool
	count int // number of inside pixels
}

// at returns the mask value at (x, y); pixels outside the image are
// outside the silhouette.
func (m *mask) at(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// newMask thresholds the luma of img.  Fully transparent pixels are
// always outside.
func newMask(img image.Image, threshold int, pol Polarity) *mask {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	luma := make([]float64, w*h)
	opaque := make([]bool, w*h)
	for y := range h {
		for x := range w {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			i := y*w + x
			opaque[i] = true
			// un-premultiply and scale 16 bit channels to 0..255
			scale := 255 / float64(a)
			luma[i] = lumaR*float64(r)*scale + lumaG*float64(g)*scale + lumaB*float64(bl)*scale
		}
	}

	t := float64(threshold)
	if pol == Auto {
		pol = choosePolarity(luma, opaque, w, h, t)
	}

	m := &mask{w: w, h: h, bits: make([]bool, w*h)}
	for i, l := range luma {
		if !opaque[i] {
			continue
		}
		var in bool
		if pol == Light {
			in = l >= t
		} else {
			in = l < t
		}
		if in {
			m.bits[i] = true
			m.count++
		}
	}
	return m
}

// choosePolarity inspects the image border.  If most opaque border pixels
// are dark, the background is dark and light pixels form the silhouette.
func choosePolarity(luma []float64, opaque []bool, w, h int, t float64) Polarity {
	dark, light := 0, 0
	visit := func(x, y int) {
		i := y*w + x
		if !opaque[i] {
			return
		}
		if luma[i] < t {
			dark++
		} else {
			light++
		}
	}
	for x := range w {
		visit(x, 0)
		if h > 1 {
			visit(x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		visit(0, y)
		if w > 1 {
			visit(w-1, y)
		}
	}
	if dark > light {
		return Light
	}
	return Dark
}

// resample scales img so that its longer side has size pixels.
func resample(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || max(w, h) == size {
		return img
	}
	var dw, dh int
	if w >= h {
		dw, dh = size, max(1, h*size/w)
	} else {
		dw, dh = max(1, w*size/h), size
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// ITU-R BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)
