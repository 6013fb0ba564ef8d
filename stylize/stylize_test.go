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

package stylize

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/contour"
	"seehuhn.de/go/enigma/polygon"
	"seehuhn.de/go/enigma/sampler"
	"seehuhn.de/go/enigma/tessellate"
)

func TestTones(t *testing.T) {
	cases := []struct {
		complexity, want int
	}{
		{0, 2}, {1, 2}, {2, 3}, {3, 3}, {4, 4}, {10, 5}, {100, 8}, {1000, 8},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Tones(c.complexity), "complexity %d", c.complexity)
	}
}

func TestOrnamentProbability(t *testing.T) {
	assert.InDelta(t, 0.05, OrnamentProbability(0), 1e-12)
	assert.InDelta(t, 0.15, OrnamentProbability(1000), 1e-12)
	prev := 0.0
	for c := range 5000 {
		p := OrnamentProbability(c)
		assert.GreaterOrEqual(t, p, prev)
		assert.LessOrEqual(t, p, 0.35)
		prev = p
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "empty", Key(Empty{}))
	assert.Equal(t, "rim", Key(Rim{}))
	assert.Equal(t, "filled/2", Key(Filled{Tone: 2}))
	assert.Equal(t, "ornament/0", Key(Ornament{}))
	assert.NotEqual(t, Key(Filled{Tone: 1}), Key(Ornament{Tone: 1}))
	assert.Equal(t, "ornament", Name(Ornament{Tone: 3}))
	assert.Equal(t, "filled", Name(Filled{Tone: 3}))
}

func square(x0, y0, x1, y1 float64) polygon.Ring {
	return polygon.FromRect(rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1})
}

func TestStylizeClassification(t *testing.T) {
	cell := tessellate.Cell{Index: 3, Polygon: square(0, 0, 10, 10)}

	cases := []struct {
		name  string
		shape *contour.Shape
		want  string
		area  float64
	}{
		{"no_shape", nil, "inside", 100},
		{"containing", &contour.Shape{Rings: []polygon.Ring{square(-5, -5, 15, 15)}}, "inside", 100},
		{"outside", &contour.Shape{Rings: []polygon.Ring{square(20, 20, 30, 30)}}, "empty", 0},
		{"sliver", &contour.Shape{Rings: []polygon.Ring{square(9.99, 0, 20, 10)}}, "empty", 0},
		{"half", &contour.Shape{Rings: []polygon.Ring{square(5, -5, 15, 15)}}, "rim", 50},
		{"hole", &contour.Shape{Rings: []polygon.Ring{
			square(-5, -5, 15, 15),
			square(4, 4, 6, 6).Reverse(),
		}}, "rim", 96},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st := &Stylizer{Shape: c.shape, Complexity: 10}
			g := st.Stylize(sampler.New(1), cell)
			assert.Equal(t, 3, g.Cell)

			switch c.want {
			case "inside":
				assert.Contains(t, []string{"filled", "ornament"}, Name(g.Style))
			default:
				assert.Equal(t, c.want, Name(g.Style))
			}
			if c.want == "empty" {
				assert.True(t, g.Empty())
				assert.Nil(t, g.Rings)
				return
			}
			assert.False(t, g.Empty())
			if _, ok := g.Style.(Ornament); !ok {
				assert.InDelta(t, c.area, g.Area(), 1e-9)
			}
		})
	}
}

// Every cell consumes exactly two values, whatever its style.
func TestFixedDraws(t *testing.T) {
	cell := tessellate.Cell{Polygon: square(0, 0, 10, 10)}
	shapes := []*contour.Shape{
		nil,
		{Rings: []polygon.Ring{square(20, 20, 30, 30)}},
		{Rings: []polygon.Ring{square(5, -5, 15, 15)}},
	}
	for _, shape := range shapes {
		st := &Stylizer{Shape: shape, Complexity: 50}
		for seed := range int64(20) {
			s := sampler.New(seed)
			st.Stylize(s, cell)

			ref := sampler.New(seed)
			ref.Uint32()
			ref.Uint32()
			assert.Equal(t, ref.Uint32(), s.Uint32())
		}
	}
}

func TestTone(t *testing.T) {
	cell := tessellate.Cell{Polygon: square(0, 0, 10, 10)}
	st := &Stylizer{Complexity: 10}
	seen := map[int]bool{}
	for seed := range int64(200) {
		g := st.Stylize(sampler.New(seed), cell)
		switch s := g.Style.(type) {
		case Filled:
			seen[s.Tone] = true
		case Ornament:
			seen[s.Tone] = true
		default:
			t.Fatalf("unexpected style %T", g.Style)
		}
	}
	for tone := range Tones(10) {
		assert.True(t, seen[tone], "tone %d never used", tone)
	}
	assert.Len(t, seen, Tones(10))
}

func TestOrnamentJitter(t *testing.T) {
	cells := testCells(t, 1, 200)
	st := &Stylizer{Complexity: 1000}

	s := sampler.New(5)
	count := 0
	for _, c := range cells {
		g := st.Stylize(s, c)
		if _, ok := g.Style.(Ornament); !ok {
			continue
		}
		count++

		require.Len(t, g.Rings, 1)
		ring := g.Rings[0]
		require.Len(t, ring, len(c.Polygon))
		cellArea := c.Polygon.Area()
		assert.Less(t, g.Area(), cellArea)
		assert.GreaterOrEqual(t, g.Area(), 0.85*0.85*cellArea*(1-1e-9))
		centre := c.Polygon.Centroid()
		for i, p := range ring {
			before := c.Polygon[i].Sub(centre).Length()
			after := p.Sub(centre).Length()
			assert.LessOrEqual(t, after, before+1e-9)
			assert.GreaterOrEqual(t, after, 0.85*before-1e-9)
		}
	}
	assert.Greater(t, count, 0, "no ornaments generated")

	// without jitter, ornaments keep the cell outline
	st.Jitter = -1
	s = sampler.New(5)
	for _, c := range cells {
		g := st.Stylize(s, c)
		if _, ok := g.Style.(Ornament); ok {
			assert.Equal(t, c.Polygon, g.Rings[0])
		}
	}
}

func TestCentroid(t *testing.T) {
	g := Geometry{Rings: []polygon.Ring{square(0, 0, 4, 4), square(4, 0, 8, 4)}}
	assert.InDelta(t, 4, g.Centroid().X, 1e-12)
	assert.InDelta(t, 2, g.Centroid().Y, 1e-12)

	var empty Geometry
	assert.Equal(t, vec.Vec2{}, empty.Centroid())
}

func testCells(t *testing.T, seed int64, n int) []tessellate.Cell {
	t.Helper()
	domain := rect.Rect{URx: 800, URy: 800}
	s := sampler.New(seed)
	sites, err := tessellate.SeedPoints(domain, n, tessellate.MinSeparation(domain, n), s)
	require.NoError(t, err)
	cells, err := tessellate.Cells(domain, sites)
	require.NoError(t, err)
	return cells
}

func TestStylizeAll(t *testing.T) {
	cells := testCells(t, 7, 60)
	shape := &contour.Shape{Rings: []polygon.Ring{square(160, 160, 640, 640)}}
	st := &Stylizer{Shape: shape, Complexity: 60}
	ctx := context.Background()

	seq1, err := st.StylizeAll(ctx, cells, sampler.New(7), 7, false)
	require.NoError(t, err)
	seq2, err := st.StylizeAll(ctx, cells, sampler.New(7), 7, false)
	require.NoError(t, err)
	if d := cmp.Diff(seq1, seq2); d != "" {
		t.Errorf("sequential runs differ (-first +second):\n%s", d)
	}

	par1, err := st.StylizeAll(ctx, cells, nil, 7, true)
	require.NoError(t, err)
	par2, err := st.StylizeAll(ctx, cells, nil, 7, true)
	require.NoError(t, err)
	if d := cmp.Diff(par1, par2); d != "" {
		t.Errorf("parallel runs differ (-first +second):\n%s", d)
	}

	require.Len(t, par1, len(cells))
	for i, c := range cells {
		want := st.Stylize(sampler.Derive(7, c.Index), c)
		if d := cmp.Diff(want, par1[i]); d != "" {
			t.Errorf("cell %d (-want +got):\n%s", i, d)
		}
	}

	var total float64
	for _, g := range seq1 {
		if _, ok := g.Style.(Ornament); !ok {
			total += g.Area()
		}
	}
	assert.LessOrEqual(t, total, 480.0*480.0*(1+1e-9))

	nonEmpty := NonEmpty(seq1)
	assert.NotEmpty(t, nonEmpty)
	for _, g := range nonEmpty {
		assert.False(t, g.Empty())
	}
}

func TestStylizeAllCancelled(t *testing.T) {
	cells := testCells(t, 3, 20)
	st := &Stylizer{Complexity: 20}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := st.StylizeAll(ctx, cells, nil, 3, true)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}
