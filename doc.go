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

// Package enigma generates paint-by-number puzzles from a key image.
//
// A painting is built in a fixed sequence of stages.  Seed points are drawn
// from a deterministic random stream, the canvas is divided into the
// Voronoi cells of these points, and the silhouette of the key image is
// extracted by thresholding.  Every cell is then classified against the
// silhouette: cells outside are dropped, cells on the boundary are clipped,
// and cells inside are filled or decorated.  Finally, adjacent cells of the
// same style are merged into regions, and the regions are numbered.
//
// For a fixed configuration and key image, the result is identical on
// every run.  Architectures where the compiler fuses multiply-add
// operations may round differently, so results are only guaranteed to
// match between runs on the same architecture.
//
// The packages below this one implement the individual stages and can be
// used on their own.  Package export writes paintings as SVG, PDF, PNG and
// JSON files.
package enigma

//go:generate go run ./testcases/export
