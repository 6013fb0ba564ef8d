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
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

// pathData formats the rings as SVG path data, one closed subpath per ring,
// with coordinates rounded to one decimal.
func pathData(rings []polygon.Ring) string {
	return formatPath(polygon.Path(rings...))
}

func formatPath(p *path.Data) string {
	var b strings.Builder
	point := func(q vec.Vec2) {
		b.WriteString(strconv.FormatFloat(q.X, 'f', 1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(q.Y, 'f', 1, 64))
	}
	op := func(s string) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			op("M ")
			point(p.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			op("L ")
			point(p.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			op("Q ")
			point(p.Coords[coordIdx])
			b.WriteByte(' ')
			point(p.Coords[coordIdx+1])
			coordIdx += 2
		case path.CmdCubeTo:
			op("C ")
			point(p.Coords[coordIdx])
			b.WriteByte(' ')
			point(p.Coords[coordIdx+1])
			b.WriteByte(' ')
			point(p.Coords[coordIdx+2])
			coordIdx += 3
		case path.CmdClose:
			op("Z")
		}
	}
	return b.String()
}
