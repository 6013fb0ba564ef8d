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

package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/enigma/polygon"
	"seehuhn.de/go/enigma/raster"
)

var basic = []TestCase{
	{
		Name:       "centred_square",
		Width:      100,
		Height:     100,
		Background: 0,
		Ops:        []Operation{Fill{Rings: []polygon.Ring{box(20, 20, 80, 80)}, Gray: 255}},
		Threshold:  130,
		Want:       Expect{Outers: 1},
	},
	{
		Name:       "dark_square",
		Width:      100,
		Height:     100,
		Background: 255,
		Ops:        []Operation{Fill{Rings: []polygon.Ring{box(30, 30, 70, 70)}, Gray: 0}},
		Threshold:  130,
		Want:       Expect{Outers: 1},
	},
	{
		Name:       "triangle",
		Width:      100,
		Height:     100,
		Background: 255,
		Ops: []Operation{Fill{
			Rings: []polygon.Ring{{pt(20, 80), pt(80, 80), pt(50, 20)}},
			Gray:  0,
		}},
		Threshold: 130,
		Want:      Expect{Outers: 1},
	},
	{
		Name:       "offset_rectangle",
		Width:      120,
		Height:     80,
		Background: 10,
		Ops:        []Operation{Fill{Rings: []polygon.Ring{box(10, 30, 50, 70)}, Gray: 240}},
		Threshold:  100,
		Want:       Expect{Outers: 1},
	},
}

var holes = []TestCase{
	{
		Name:       "annulus",
		Width:      100,
		Height:     100,
		Background: 0,
		Ops: []Operation{Fill{
			Rings: []polygon.Ring{box(10, 10, 90, 90), box(35, 35, 65, 65)},
			Rule:  raster.EvenOdd,
			Gray:  255,
		}},
		Threshold: 130,
		Want:      Expect{Outers: 1, Holes: 1},
	},
	{
		Name:       "two_holes",
		Width:      100,
		Height:     100,
		Background: 255,
		Ops: []Operation{
			Fill{Rings: []polygon.Ring{box(10, 10, 90, 90)}, Gray: 0},
			Fill{Rings: []polygon.Ring{box(25, 30, 45, 70), box(55, 30, 75, 70)}, Gray: 255},
		},
		Threshold: 130,
		Want:      Expect{Outers: 1, Holes: 2},
	},
}

var multi = []TestCase{
	{
		Name:       "two_blobs",
		Width:      100,
		Height:     60,
		Background: 0,
		Ops: []Operation{Fill{
			Rings: []polygon.Ring{box(10, 10, 40, 50), box(60, 10, 90, 50)},
			Gray:  255,
		}},
		Threshold: 130,
		Want:      Expect{Outers: 2},
	},
	{
		Name:       "diagonal_touch",
		Width:      100,
		Height:     100,
		Background: 0,
		Ops: []Operation{Fill{
			Rings: []polygon.Ring{box(20, 20, 50, 50), box(50, 50, 80, 80)},
			Gray:  255,
		}},
		Threshold: 130,
		Want:      Expect{Outers: 2},
	},
}

var border = []TestCase{
	{
		Name:       "touching_border",
		Width:      100,
		Height:     100,
		Background: 0,
		Ops:        []Operation{Fill{Rings: []polygon.Ring{box(0, 20, 60, 80)}, Gray: 255}},
		Threshold:  130,
		Want:       Expect{Outers: 1},
	},
	{
		Name:       "speckled",
		Width:      100,
		Height:     100,
		Background: 0,
		Ops: []Operation{
			Fill{Rings: []polygon.Ring{box(30, 30, 70, 70)}, Gray: 255},
			Speckle{
				Seed:    1,
				Spacing: 10,
				Density: 0.5,
				Gray:    255,
				Avoid:   rect.Rect{LLx: 25, LLy: 25, URx: 75, URy: 75},
			},
		},
		Threshold: 130,
		Want:      Expect{Outers: 1},
	},
}

var absent = []TestCase{
	{
		Name:       "all_black",
		Width:      50,
		Height:     50,
		Background: 0,
		Threshold:  130,
		Want:       Expect{Absent: true},
	},
	{
		Name:       "all_white",
		Width:      50,
		Height:     50,
		Background: 255,
		Threshold:  130,
		Want:       Expect{Absent: true},
	},
}
