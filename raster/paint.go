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

package raster

import (
	"image"
	"image/color"
)

// OverRGBA returns an emit function which composites the colour c over
// dst, using the coverage values as alpha.  Coverage outside dst's bounds
// is ignored.
func OverRGBA(dst *image.RGBA, c color.Color) func(y, xMin int, coverage []float32) {
	cr, cg, cb, ca := c.RGBA()
	b := dst.Bounds()
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X || cov <= 0 {
				continue
			}
			// alpha of the source after applying coverage, 0..0xffff
			a := uint32(float32(ca)*cov + 0.5)
			if a > 0xffff {
				a = 0xffff
			}
			k := float32(a) / float32(max(ca, 1))
			sr := uint32(float32(cr) * k)
			sg := uint32(float32(cg) * k)
			sb := uint32(float32(cb) * k)

			off := dst.PixOffset(x, y)
			p := dst.Pix[off : off+4 : off+4]
			inv := 0xffff - a
			p[0] = uint8((sr + uint32(p[0])*0x101*inv/0xffff) >> 8)
			p[1] = uint8((sg + uint32(p[1])*0x101*inv/0xffff) >> 8)
			p[2] = uint8((sb + uint32(p[2])*0x101*inv/0xffff) >> 8)
			p[3] = uint8((a + uint32(p[3])*0x101*inv/0xffff) >> 8)
		}
	}
}

// SetGray returns an emit function which blends the grey level v into
// dst, using the coverage values as weights.
func SetGray(dst *image.Gray, v uint8) func(y, xMin int, coverage []float32) {
	b := dst.Bounds()
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X || cov <= 0 {
				continue
			}
			off := dst.PixOffset(x, y)
			old := float32(dst.Pix[off])
			dst.Pix[off] = uint8(old + (float32(v)-old)*min(cov, 1) + 0.5)
		}
	}
}

// Accumulate returns an emit function which adds the coverage values to
// buf, a row-major array of the given width.
func Accumulate(buf []float32, width int) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		row := buf[y*width:]
		for i, cov := range coverage {
			row[xMin+i] += cov
		}
	}
}

// Masked returns an emit function which scales the coverage values by the
// mask, a row-major array of the given width, before passing them on to
// emit.  Mask values above 1 count as 1.  Coverage outside the mask is
// dropped.
func Masked(mask []float32, width int, emit func(y, xMin int, coverage []float32)) func(y, xMin int, coverage []float32) {
	var buf []float32
	return func(y, xMin int, coverage []float32) {
		if y < 0 || (y+1)*width > len(mask) {
			return
		}
		row := mask[y*width : (y+1)*width]
		buf = append(buf[:0], coverage...)
		for i := range buf {
			x := xMin + i
			if x < 0 || x >= width {
				buf[i] = 0
				continue
			}
			buf[i] *= min(row[x], 1)
		}
		emit(y, xMin, buf)
	}
}
