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
	"context"
	"fmt"
	"image"

	"go.uber.org/zap"

	"seehuhn.de/go/enigma/contour"
	"seehuhn.de/go/enigma/label"
	"seehuhn.de/go/enigma/sampler"
	"seehuhn.de/go/enigma/stylize"
	"seehuhn.de/go/enigma/tessellate"
)

// Option modifies the behaviour of [Generate] and [GenerateImage].
type Option func(*settings)

type settings struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to report the progress of the pipeline.
// By default, nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Generate builds a painting for the key image stored at keyPath.
//
// The context is checked between the pipeline stages.  On error, no
// partial painting is returned.
func Generate(ctx context.Context, cfg Config, keyPath string, opts ...Option) (*Painting, error) {
	extract := func(opt *contour.Options) (*contour.Shape, error) {
		return contour.ExtractFile(keyPath, cfg.Threshold, opt)
	}
	p, err := run(ctx, cfg, extract, opts)
	if err != nil {
		return nil, fmt.Errorf("Generate %q: %w", keyPath, err)
	}
	return p, nil
}

// GenerateImage builds a painting for a key image which is already held in
// memory.  See [Generate].
func GenerateImage(ctx context.Context, cfg Config, img image.Image, opts ...Option) (*Painting, error) {
	extract := func(opt *contour.Options) (*contour.Shape, error) {
		return contour.Extract(img, cfg.Threshold, opt)
	}
	p, err := run(ctx, cfg, extract, opts)
	if err != nil {
		return nil, fmt.Errorf("GenerateImage: %w", err)
	}
	return p, nil
}

func run(ctx context.Context, cfg Config, extract func(*contour.Options) (*contour.Shape, error), opts []Option) (*Painting, error) {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	log := s.logger.With(zap.Int64("seed", cfg.Seed), zap.Int("complexity", cfg.Complexity))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Canvas = cfg.canvas()

	stream := sampler.New(cfg.Seed)
	n := cfg.PointCount()
	sites, err := tessellate.SeedPoints(cfg.Canvas, n, tessellate.MinSeparation(cfg.Canvas, n), stream)
	if err != nil {
		return nil, err
	}
	log.Debug("seed points placed", zap.Int("points", len(sites)))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cells, err := tessellate.Cells(cfg.Canvas, sites)
	if err != nil {
		return nil, err
	}
	log.Debug("tessellation built", zap.Int("cells", len(cells)))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shape, err := extract(&contour.Options{
		Polarity:   cfg.Polarity,
		Resolution: cfg.Resolution,
		Canvas:     cfg.Canvas,
	})
	if err != nil {
		return nil, err
	}
	if shape == nil {
		return nil, fmt.Errorf("threshold %d: %w", cfg.Threshold, ErrContourAbsent)
	}
	log.Debug("key contour extracted",
		zap.Int("outers", len(shape.Outers())),
		zap.Int("holes", len(shape.Holes())),
		zap.Float64("area", shape.Area()))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := &stylize.Stylizer{Shape: shape, Complexity: cfg.Complexity}
	stylized, err := st.StylizeAll(ctx, cells, stream, cfg.Seed, cfg.Parallel)
	if err != nil {
		return nil, err
	}
	geoms := stylize.NonEmpty(stylized)
	log.Debug("cells stylized",
		zap.Int("cells", len(stylized)),
		zap.Int("kept", len(geoms)),
		zap.Bool("parallel", cfg.Parallel))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	labeling, err := label.Assign(geoms, label.Tolerance(cfg.Canvas))
	if err != nil {
		return nil, err
	}
	log.Info("painting generated",
		zap.Int("pieces", len(geoms)),
		zap.Int("regions", len(labeling.Regions)))

	return &Painting{
		Config:     cfg,
		Sites:      sites,
		Cells:      cells,
		Shape:      shape,
		Stylized:   stylized,
		Geometries: geoms,
		Labeling:   labeling,
	}, nil
}
