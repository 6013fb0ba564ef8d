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

package enigma

import (
	"errors"

	"seehuhn.de/go/enigma/contour"
	"seehuhn.de/go/enigma/label"
	"seehuhn.de/go/enigma/tessellate"
)

// Errors returned by [Generate] and [GenerateImage].  Use [errors.Is] to
// test for them.  None of these conditions is retried.
var (
	// ErrInvalidConfig indicates an invalid Config.
	ErrInvalidConfig = errors.New("enigma: invalid configuration")

	// ErrImageLoad indicates that the key image could not be read or
	// decoded.
	ErrImageLoad = contour.ErrImageLoad

	// ErrContourAbsent indicates that thresholding the key image gave no
	// usable silhouette.
	ErrContourAbsent = errors.New("enigma: key silhouette is absent")

	// ErrDegenerateInput indicates that no tessellation could be formed.
	ErrDegenerateInput = tessellate.ErrDegenerateInput

	// ErrLabelingInconsistency indicates an internal error during region
	// assignment.
	ErrLabelingInconsistency = label.ErrLabelingInconsistency
)
