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

// Package export writes paintings to files: SVG drawings, PDF and PNG
// previews, and a JSON document describing the pieces, regions and clue
// sheet.
//
// All writers list the pieces in the order of [enigma.Painting.Pieces].
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/enigma"
	"seehuhn.de/go/enigma/polygon"
	"seehuhn.de/go/enigma/stylize"
)

// Document is the JSON description of a painting.
type Document struct {
	PaintingID      string      `json:"painting_id"`
	Dimensions      [2]float64  `json:"dimensions"`
	Shapes          []Shape     `json:"shapes"`
	Regions         []Region    `json:"regions"`
	Numbers         []int       `json:"numbers"`
	SilhouettePaths []string    `json:"silhouette_paths"`
	Params          Params      `json:"params"`
	Clues           []Clue      `json:"clues"`
	Deductions      []Deduction `json:"deductions"`
}

// Shape describes one numbered piece.
type Shape struct {
	// ID is the index of the cell the piece was cut from.
	ID     int        `json:"id"`
	Path   string     `json:"path"`
	Center [2]float64 `json:"center"`
	Number int        `json:"number"`

	// KeyRegion is set if the centre of the piece lies inside the key
	// silhouette.
	KeyRegion bool   `json:"key_region"`
	RegionID  int    `json:"regionId"`
	Type      string `json:"type"`
}

// Region lists the cell IDs of the pieces in one region.
type Region struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Members []int  `json:"members"`
}

// Params records the parameters of the painting.
type Params struct {
	Seed       int64  `json:"seed"`
	Complexity int    `json:"complexity"`
	Threshold  int    `json:"threshold"`
	Polarity   string `json:"polarity"`
}

// Clue is an entry of the clue sheet.  There is one clue per piece.
type Clue struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Number   int    `json:"number"`
	RegionID int    `json:"regionId"`
}

// Deduction is a sentence of the clue sheet, with slots which are filled
// by clues.
type Deduction struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Slots []Slot `json:"slots"`
}

// Slot is a place in a deduction which expects a particular clue.
type Slot struct {
	ID     string `json:"id"`
	ClueID string `json:"clueId"`
	Label  string `json:"label"`
}

// NewDocument builds the JSON description of p.
func NewDocument(p *enigma.Painting) *Document {
	canvas := p.Config.Canvas
	doc := &Document{
		PaintingID: p.ID(),
		Dimensions: [2]float64{canvas.URx - canvas.LLx, canvas.URy - canvas.LLy},
		Shapes:     []Shape{},
		Regions:    []Region{},
		Numbers:    []int{},
		Params: Params{
			Seed:       p.Config.Seed,
			Complexity: p.Config.Complexity,
			Threshold:  p.Config.Threshold,
			Polarity:   p.Config.Polarity.String(),
		},
	}

	for _, r := range p.Shape.Rings {
		doc.SilhouettePaths = append(doc.SilhouettePaths, pathData([]polygon.Ring{r}))
	}

	for _, piece := range p.Pieces() {
		g := piece.Geometry
		c := g.Centroid()
		doc.Shapes = append(doc.Shapes, Shape{
			ID:        g.Cell,
			Path:      pathData(g.Rings),
			Center:    [2]float64{c.X, c.Y},
			Number:    piece.Number,
			KeyRegion: p.Shape.Contains(c),
			RegionID:  piece.Region,
			Type:      stylize.Name(piece.Style),
		})
		doc.Numbers = append(doc.Numbers, piece.Number)
	}

	for _, r := range p.Labeling.Regions {
		members := make([]int, len(r.Members))
		for i, m := range r.Members {
			members[i] = p.Geometries[m].Cell
		}
		doc.Regions = append(doc.Regions, Region{
			ID:      r.ID,
			Type:    stylize.Name(r.Style),
			Members: members,
		})
	}

	doc.Clues, doc.Deductions = clueSheet(doc.Shapes)
	return doc
}

// clueSheet derives the clues and deduction sentences from the pieces.
func clueSheet(shapes []Shape) ([]Clue, []Deduction) {
	clues := make([]Clue, 0, len(shapes))
	var inside, outside []Slot
	for _, s := range shapes {
		clue := Clue{
			ID:       fmt.Sprintf("cell-%d", s.ID),
			Title:    fmt.Sprintf("Cell %d", s.Number),
			Number:   s.Number,
			RegionID: s.RegionID,
		}
		if s.KeyRegion {
			clue.Summary = "Located within the key silhouette."
			if len(inside) < maxSlots {
				inside = append(inside, Slot{
					ID:     fmt.Sprintf("%s-key-%d", clue.ID, len(inside)),
					ClueID: clue.ID,
					Label:  fmt.Sprintf("Confirm %s belongs to region %d", clue.Title, s.RegionID),
				})
			}
		} else {
			clue.Summary = "Outside the key silhouette."
			if len(outside) < maxSlots {
				outside = append(outside, Slot{
					ID:     fmt.Sprintf("%s-background-%d", clue.ID, len(outside)),
					ClueID: clue.ID,
					Label:  fmt.Sprintf("Confirm %s remains outside the key silhouette", clue.Title),
				})
			}
		}
		clues = append(clues, clue)
	}

	deductions := []Deduction{}
	if len(inside) > 0 {
		deductions = append(deductions, Deduction{
			ID:    "deduction-key-region",
			Text:  "Key region cells align with the key silhouette.",
			Slots: inside,
		})
	}
	if len(outside) > 0 {
		deductions = append(deductions, Deduction{
			ID:    "deduction-background",
			Text:  "Background cells remain outside the silhouette.",
			Slots: outside,
		})
	}
	return clues, deductions
}

// WriteJSON writes the JSON description of p to w.
func WriteJSON(w io.Writer, p *enigma.Painting) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(p))
}

// maxSlots is the largest number of slots in a deduction sentence.
const maxSlots = 3
