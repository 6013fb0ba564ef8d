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

// Command export writes all synthetic key images to testdata/keys as PNG
// files, together with an index describing the expected silhouettes.
package main

import (
	"encoding/json"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/enigma/testcases"
)

const outDir = "testdata/keys"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Keys []jsonKey `json:"keys"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			file := name + ".png"
			if err := writePNG(tc, filepath.Join(outDir, file)); err != nil {
				panic(err)
			}
			out.Keys = append(out.Keys, jsonKey{
				Name:      name,
				File:      file,
				Width:     tc.Width,
				Height:    tc.Height,
				Threshold: tc.Threshold,
				Absent:    tc.Want.Absent,
				Outers:    tc.Want.Outers,
				Holes:     tc.Want.Holes,
			})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonKey struct {
	Name      string `json:"name"`
	File      string `json:"file"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Threshold int    `json:"threshold"`
	Absent    bool   `json:"absent,omitempty"`
	Outers    int    `json:"outers"`
	Holes     int    `json:"holes"`
}

func writePNG(tc testcases.TestCase, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, tc.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
