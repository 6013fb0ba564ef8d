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
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/enigma/contour"
	"seehuhn.de/go/enigma/tessellate"
)

// DefaultCanvas is the canvas used when Config.Canvas is the zero
// rectangle.
var DefaultCanvas = rect.Rect{URx: 800, URy: 800}

// Upper limits for the configuration values.
const (
	MaxComplexity = tessellate.MaxPoints
	MaxResolution = contour.MaxResolution
)

// Config holds the parameters of a painting.
type Config struct {
	// Seed selects the random stream.  Every value is valid.
	Seed int64

	// Complexity is the number of cells.  It must be positive and at most
	// MaxComplexity; at least two cells are needed to form a tessellation.
	Complexity int

	// Threshold is the luma level, 0 to 255, separating the silhouette
	// from the background of the key image.
	Threshold int

	// Polarity selects which side of the threshold is the silhouette.
	Polarity contour.Polarity

	// Resolution, if positive, resamples the key image so that its longer
	// side has this many pixels before thresholding.  At most
	// MaxResolution.
	Resolution int

	// Canvas is the drawing area.  The key image is stretched to cover it.
	// The zero rectangle selects DefaultCanvas.
	Canvas rect.Rect

	// Parallel stylizes cells concurrently, using one derived random
	// stream per cell.  The result is reproducible, but differs from the
	// sequential result.
	Parallel bool
}

// Validate checks the configuration.
// All errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Complexity <= 0 || c.Complexity > MaxComplexity {
		return fmt.Errorf("complexity %d: %w", c.Complexity, ErrInvalidConfig)
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold %d: %w", c.Threshold, ErrInvalidConfig)
	}
	if c.Resolution < 0 || c.Resolution > MaxResolution {
		return fmt.Errorf("resolution %d: %w", c.Resolution, ErrInvalidConfig)
	}
	if c.Polarity < contour.Auto || c.Polarity > contour.Light {
		return fmt.Errorf("polarity %s: %w", c.Polarity, ErrInvalidConfig)
	}
	if c.Canvas != (rect.Rect{}) {
		if !(c.Canvas.URx > c.Canvas.LLx) || !(c.Canvas.URy > c.Canvas.LLy) {
			return fmt.Errorf("empty canvas %v: %w", c.Canvas, ErrInvalidConfig)
		}
	}
	return nil
}

// PointCount returns the number of seed points, and thus of cells.
func (c *Config) PointCount() int {
	return max(1, c.Complexity)
}

// canvas returns the effective drawing area.
func (c *Config) canvas() rect.Rect {
	if c.Canvas == (rect.Rect{}) {
		return DefaultCanvas
	}
	return c.Canvas
}
