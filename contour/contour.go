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

// Package contour extracts the silhouette of a key image as a set of
// polygons.
//
// The image is converted to luma, thresholded into a binary mask, and the
// boundary between inside and outside pixels is followed along the pixel
// edges.  Outer boundaries are returned with positive orientation, holes
// with negative orientation.
package contour

import (
	"errors"
	"fmt"
	"image"
	"os"

	// registered image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/enigma/polygon"
)

var (
	// ErrImageLoad is returned when the key image cannot be read or decoded.
	ErrImageLoad = errors.New("contour: cannot load image")

	// ErrInvalidThreshold is returned for thresholds outside 0..255.
	ErrInvalidThreshold = errors.New("contour: threshold out of range")

	// ErrInvalidResolution is returned for resampling sizes above
	// MaxResolution.
	ErrInvalidResolution = errors.New("contour: resolution out of range")
)

// MaxResolution is the largest supported value of Options.Resolution.
const MaxResolution = 1 << 14

// Polarity selects which side of the threshold counts as inside.
type Polarity int

const (
	// Auto chooses the polarity which puts the majority of the image
	// border outside the silhouette.
	Auto Polarity = iota

	// Dark marks pixels with luma below the threshold as inside.
	Dark

	// Light marks pixels with luma at or above the threshold as inside.
	Light
)

func (p Polarity) String() string {
	switch p {
	case Auto:
		return "auto"
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// ParsePolarity converts the result of [Polarity.String] back into a
// Polarity.
func ParsePolarity(s string) (Polarity, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return 0, fmt.Errorf("contour: unknown polarity %q", s)
}

// Options controls the contour extraction.
// A nil *Options is equivalent to the zero value.
type Options struct {
	Polarity Polarity

	// Tolerance is the simplification tolerance in image pixels.
	// Zero selects the default; a negative value only removes exactly
	// collinear vertices.
	Tolerance float64

	// MinArea is the area, in square image pixels, below which rings are
	// discarded.  Zero selects the default; a negative value keeps all
	// rings.
	MinArea float64

	// Resolution, if positive, resamples the image so that its longer side
	// has this many pixels before thresholding.  At most MaxResolution.
	Resolution int

	// Canvas is the rectangle the image is mapped onto.  The zero value
	// keeps image pixel coordinates.
	Canvas rect.Rect
}

// Shape is an extracted silhouette.
type Shape struct {
	// Rings holds the boundary polygons.  Outer boundaries have positive
	// orientation, holes negative orientation.
	Rings []polygon.Ring
}

// Outers returns the outer boundaries of the shape.
func (s *Shape) Outers() []polygon.Ring {
	var out []polygon.Ring
	for _, r := range s.Rings {
		if r.Area() > 0 {
			out = append(out, r)
		}
	}
	return out
}

// Holes returns the hole boundaries of the shape.
func (s *Shape) Holes() []polygon.Ring {
	var out []polygon.Ring
	for _, r := range s.Rings {
		if r.Area() < 0 {
			out = append(out, r)
		}
	}
	return out
}

// Contains reports whether p lies inside the silhouette.
func (s *Shape) Contains(p vec.Vec2) bool {
	w := 0
	for _, r := range s.Rings {
		w += r.Winding(p)
	}
	return w != 0
}

// Area returns the area covered by the silhouette.
func (s *Shape) Area() float64 {
	return polygon.TotalArea(s.Rings)
}

// Bounds returns the bounding box of the silhouette.
func (s *Shape) Bounds() rect.Rect {
	return polygon.Bounds(s.Rings)
}

// ExtractFile reads the image at path and extracts its silhouette.
// See [Extract] for the meaning of the arguments and results.
func ExtractFile(path string, threshold int, opt *Options) (*Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageLoad, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageLoad, path, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%w: %s: empty %s image", ErrImageLoad, path, format)
	}
	return Extract(img, threshold, opt)
}

// Extract thresholds img and traces the boundary of the inside region.
//
// The result is nil (with a nil error) if no pixel or every pixel is
// inside, or if all boundary rings are smaller than the minimum area.
// Callers must check for this case explicitly.
func Extract(img image.Image, threshold int, opt *Options) (*Shape, error) {
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("Extract: threshold %d: %w", threshold, ErrInvalidThreshold)
	}
	if opt == nil {
		opt = &Options{}
	}
	if opt.Resolution > MaxResolution {
		return nil, fmt.Errorf("Extract: resolution %d: %w", opt.Resolution, ErrInvalidResolution)
	}

	if opt.Resolution > 0 {
		img = resample(img, opt.Resolution)
	}

	m := newMask(img, threshold, opt.Polarity)
	if m.count == 0 || m.count == m.w*m.h {
		return nil, nil
	}

	tol := opt.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}
	minArea := opt.MinArea
	if minArea == 0 {
		minArea = defaultMinArea
	}

	var toCanvas matrix.Matrix
	mapped := !(opt.Canvas.URx == opt.Canvas.LLx || opt.Canvas.URy == opt.Canvas.LLy)
	if mapped {
		c := opt.Canvas
		toCanvas = matrix.Matrix{
			(c.URx - c.LLx) / float64(m.w), 0,
			0, (c.URy - c.LLy) / float64(m.h),
			c.LLx, c.LLy,
		}
	}

	shape := &Shape{}
	for _, r := range m.trace() {
		r = Simplify(r, max(tol, 0))
		if r == nil || abs(r.Area()) < minArea {
			continue
		}
		if mapped {
			r = r.Transform(toCanvas)
		}
		shape.Rings = append(shape.Rings, r)
	}
	if len(shape.Rings) == 0 {
		return nil, nil
	}
	return shape, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Default extraction parameters.
const (
	// defaultTolerance is the default simplification tolerance in pixels.
	// It is large enough to straighten one-pixel staircases.
	defaultTolerance = 0.75

	// defaultMinArea removes isolated single pixels.
	defaultMinArea = 2
)
