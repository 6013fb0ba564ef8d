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
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

var (
	goRegular     *sfnt.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

// lettering converts text into glyph outlines, so that numbers can be
// drawn by any backend which can fill polygons.
type lettering struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

func newLettering() (*lettering, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, fmt.Errorf("lettering: %w", goRegularErr)
	}
	return &lettering{font: goRegular}, nil
}

// outline returns the outlines of s, set in the given size and centred on
// c.  The rings use the nonzero winding rule.
func (l *lettering) outline(s string, size float64, c vec.Vec2) ([]polygon.Ring, error) {
	ppem := fixed.Int26_6(size * 64)

	type glyph struct {
		idx     sfnt.GlyphIndex
		advance fixed.Int26_6
	}
	var glyphs []glyph
	var width fixed.Int26_6
	for _, r := range s {
		idx, err := l.font.GlyphIndex(&l.buf, r)
		if err != nil {
			return nil, err
		}
		adv, err := l.font.GlyphAdvance(&l.buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, glyph{idx, adv})
		width += adv
	}

	m, err := l.font.Metrics(&l.buf, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}

	origin := vec.Vec2{
		X: c.X - fromFixed(width)/2,
		Y: c.Y + fromFixed(m.CapHeight)/2,
	}
	var rings []polygon.Ring
	for _, g := range glyphs {
		segs, err := l.font.LoadGlyph(&l.buf, g.idx, ppem, nil)
		if err != nil {
			return nil, err
		}
		rings = appendSegments(rings, segs, origin)
		origin.X += fromFixed(g.advance)
	}
	return rings, nil
}

// appendSegments flattens the glyph segments into rings, offset by origin.
func appendSegments(rings []polygon.Ring, segs sfnt.Segments, origin vec.Vec2) []polygon.Ring {
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: origin.X + fromFixed(p.X), Y: origin.Y + fromFixed(p.Y)}
	}

	var cur polygon.Ring
	flush := func() {
		if r := cur.Clean(0); r != nil {
			rings = append(rings, r)
		}
		cur = nil
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			cur = polygon.Ring{pt(seg.Args[0])}
		case sfnt.SegmentOpLineTo:
			cur = append(cur, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p0 := cur[len(cur)-1]
			p1, p2 := pt(seg.Args[0]), pt(seg.Args[1])
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				cur = append(cur, vec.Vec2{
					X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
					Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
				})
			}
		case sfnt.SegmentOpCubeTo:
			p0 := cur[len(cur)-1]
			p1, p2, p3 := pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2])
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				cur = append(cur, vec.Vec2{
					X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
					Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
				})
			}
		}
	}
	flush()
	return rings
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// curveSteps is the number of line segments used for each glyph curve.
const curveSteps = 6
