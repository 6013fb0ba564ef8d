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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/enigma"
	"seehuhn.de/go/enigma/contour"
	"seehuhn.de/go/enigma/export"
	"seehuhn.de/go/enigma/internal/config"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a painting and write it to files",
	Long: `Builds a painting from the key image and writes one file per output
format into the output directory.  The files are named after the
painting, for example key_7.svg and key_7.json for seed 7.

Example:
  enigma generate --key key.png --seed 7 --complexity 60 --format svg,png`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var contourCmd = &cobra.Command{
	Use:   "contour",
	Short: "Extract the key silhouette and write it as SVG",
	Args:  cobra.NoArgs,
	RunE:  runContour,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pc, err := cfg.Painting()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := enigma.Generate(ctx, pc, cfg.KeyImage, enigma.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, format := range cfg.Output.Formats {
		fname := cfg.Path(format)
		if err := writePainting(fname, format, p, cfg); err != nil {
			return fmt.Errorf("failed to write %s: %w", fname, err)
		}
		logger.Info("wrote painting", zap.String("file", fname))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pieces in %d regions\n",
		p.ID(), len(p.Geometries), len(p.Labeling.Regions))
	return nil
}

// writePainting writes p to the file fname in the given format.
func writePainting(fname, format string, p *enigma.Painting, cfg *config.Config) error {
	if format == "pdf" {
		return export.PDF(fname, p)
	}

	return createFile(fname, func(w io.Writer) error {
		switch format {
		case "svg":
			return export.SVG(w, p, &export.SVGOptions{
				Color:   cfg.Output.Color,
				Outline: cfg.Output.Outline,
				Numbers: cfg.Output.Numbers,
			})
		case "json":
			return export.WriteJSON(w, p)
		case "png":
			return export.PNG(w, p, &export.PNGOptions{
				Scale:   cfg.Output.Scale,
				Color:   cfg.Output.Color,
				Outline: cfg.Output.Outline,
				Numbers: cfg.Output.Numbers,
			})
		}
		return fmt.Errorf("unknown output format %q", format)
	})
}

func runContour(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pc, err := cfg.Painting()
	if err != nil {
		return err
	}

	shape, err := contour.ExtractFile(cfg.KeyImage, pc.Threshold, &contour.Options{
		Polarity:   pc.Polarity,
		Resolution: pc.Resolution,
		Canvas:     pc.Canvas,
	})
	if err != nil {
		return err
	}
	if shape == nil {
		return fmt.Errorf("%s: %w", cfg.KeyImage, enigma.ErrContourAbsent)
	}
	logger.Debug("key contour extracted",
		zap.Int("outers", len(shape.Outers())),
		zap.Int("holes", len(shape.Holes())))

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		return export.SilhouetteSVG(cmd.OutOrStdout(), shape, pc.Canvas)
	}
	return createFile(out, func(w io.Writer) error {
		return export.SilhouetteSVG(w, shape, pc.Canvas)
	})
}

// createFile creates fname and passes it to write.  The file is closed
// afterwards, and removed if write fails.
func createFile(fname string, write func(io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fname)
	}
	return err
}
