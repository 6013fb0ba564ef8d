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

// Command enigma turns a key image into a numbered paint-by-number
// tessellation.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/enigma/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "Generate paint-by-number tessellations from a key image",
	Long: `enigma covers the canvas with Voronoi cells, cuts the cells along the
silhouette of a key image, and numbers the resulting pieces so that
adjacent pieces of the same style share a number.

Settings are read from the configuration file (default enigma.yaml),
then from ENIGMA_* environment variables, then from command line flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of enigma",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version := "(devel)"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			version = info.Main.Version
		}
		fmt.Fprintln(cmd.OutOrStdout(), "enigma", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "enigma.yaml", "Configuration file")

	addPaintingFlags(generateCmd)
	generateCmd.Flags().StringP("out", "o", "", "Output directory")
	generateCmd.Flags().StringSlice("format", nil, "Output formats (svg, json, pdf, png)")
	generateCmd.Flags().Float64("scale", 0, "PNG pixels per canvas unit")
	generateCmd.Flags().Bool("mono", false, "Draw the pieces without colour")
	generateCmd.Flags().Bool("no-outline", false, "Omit the key silhouette")
	generateCmd.Flags().Bool("no-numbers", false, "Omit the piece numbers")

	addPaintingFlags(contourCmd)
	contourCmd.Flags().StringP("output", "o", "", "Output file (default: standard output)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(contourCmd)
	rootCmd.AddCommand(versionCmd)
}

// addPaintingFlags adds the flags which override the painting parameters
// of the configuration file.
func addPaintingFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Key image (or set ENIGMA_KEY_IMG)")
	cmd.Flags().Int64P("seed", "s", 0, "Random seed")
	cmd.Flags().Int("complexity", 0, "Number of cells")
	cmd.Flags().Int("threshold", 0, "Luma threshold, 0 to 255")
	cmd.Flags().String("polarity", "", "Silhouette polarity (auto, dark, light)")
	cmd.Flags().Int("resolution", 0, "Resample the key image to this size first")
	cmd.Flags().Bool("parallel", false, "Stylize cells concurrently")
}

// loadConfig reads the configuration file and applies the flags which were
// given on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("key") {
		cfg.KeyImage, _ = flags.GetString("key")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("complexity") {
		cfg.Complexity, _ = flags.GetInt("complexity")
	}
	if flags.Changed("threshold") {
		cfg.Threshold, _ = flags.GetInt("threshold")
	}
	if flags.Changed("polarity") {
		cfg.Polarity, _ = flags.GetString("polarity")
	}
	if flags.Changed("resolution") {
		cfg.Resolution, _ = flags.GetInt("resolution")
	}
	if flags.Changed("parallel") {
		cfg.Parallel, _ = flags.GetBool("parallel")
	}

	if flags.Lookup("out") != nil {
		if flags.Changed("out") {
			cfg.Output.Dir, _ = flags.GetString("out")
		}
		if flags.Changed("format") {
			cfg.Output.Formats, _ = flags.GetStringSlice("format")
		}
		if flags.Changed("scale") {
			cfg.Output.Scale, _ = flags.GetFloat64("scale")
		}
		if mono, _ := flags.GetBool("mono"); mono {
			cfg.Output.Color = false
		}
		if off, _ := flags.GetBool("no-outline"); off {
			cfg.Output.Outline = false
		}
		if off, _ := flags.GetBool("no-numbers"); off {
			cfg.Output.Numbers = false
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
