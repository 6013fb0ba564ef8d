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
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/enigma/stylize"
)

// hsl is a colour given by hue (degrees), saturation and lightness
// (percent).
type hsl struct {
	H, S, L float64
}

// brass returns the fill colour of region i in colour mode.
func brass(i int) hsl {
	return hsl{H: float64(45 + i%5), S: 80, L: float64(45 + (i%4)*2)}
}

func (c hsl) String() string {
	return fmt.Sprintf("hsl(%g,%g%%,%g%%)", c.H, c.S, c.L)
}

// RGBA implements the color.Color interface.
func (c hsl) RGBA() (r, g, b, a uint32) {
	s := c.S / 100
	l := c.L / 100
	f := func(n float64) float64 {
		k := math.Mod(n+c.H/30, 12)
		a := s * min(l, 1-l)
		return l - a*max(-1, min(k-3, 9-k, 1))
	}
	to16 := func(v float64) uint32 {
		return uint32(math.Round(min(max(v, 0), 1) * 0xffff))
	}
	return to16(f(0)), to16(f(8)), to16(f(4)), 0xffff
}

var (
	darkGoldenrod = color.RGBA{R: 0xb8, G: 0x86, B: 0x0b, A: 0xff}
	brassStroke   = color.RGBA{R: 0x9a, G: 0x7b, B: 0x00, A: 0xff}
	ink           = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

// grey returns the grey level, between 0 (black) and 1 (white), used for a
// style in monochrome output.  Darker tones get lower values.
func grey(s stylize.Style, tones int) float64 {
	tone := func(t int) float64 {
		if tones <= 1 {
			return 0
		}
		return float64(t) / float64(tones-1)
	}
	switch s := s.(type) {
	case stylize.Filled:
		return 0.9 - 0.5*tone(s.Tone)
	case stylize.Ornament:
		return 0.85 - 0.35*tone(s.Tone)
	case stylize.Rim:
		return 0.95
	default:
		return 1
	}
}
