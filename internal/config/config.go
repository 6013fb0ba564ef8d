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

// Package config holds the run configuration of the enigma command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/enigma"
	"seehuhn.de/go/enigma/contour"
)

// Config is the run configuration, as stored in a YAML file.
type Config struct {
	// KeyImage is the path of the key image.
	KeyImage string `yaml:"key_image"`

	Seed       int64  `yaml:"seed"`
	Complexity int    `yaml:"complexity"`
	Threshold  int    `yaml:"threshold"`
	Polarity   string `yaml:"polarity"` // auto, dark, light
	Resolution int    `yaml:"resolution"`
	Parallel   bool   `yaml:"parallel"`

	Canvas CanvasConfig `yaml:"canvas"`
	Output OutputConfig `yaml:"output"`
}

// CanvasConfig is the size of the drawing area.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// OutputConfig selects the files written for a painting.
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"` // svg, json, pdf, png

	// Scale is the number of PNG pixels per canvas unit.
	Scale float64 `yaml:"scale"`

	Color   bool `yaml:"color"`
	Outline bool `yaml:"outline"`
	Numbers bool `yaml:"numbers"`
}

// Formats lists the output formats which can be written.
var Formats = []string{"svg", "json", "pdf", "png"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Seed:       1,
		Complexity: 40,
		Threshold:  128,
		Polarity:   "auto",
		Canvas: CanvasConfig{
			Width:  enigma.DefaultCanvas.URx,
			Height: enigma.DefaultCanvas.URy,
		},
		Output: OutputConfig{
			Dir:     ".",
			Formats: []string{"svg", "json"},
			Scale:   1,
			Color:   true,
			Outline: true,
			Numbers: true,
		},
	}
}

// Load reads the configuration from a YAML file.  If the file does not
// exist, the defaults are used.  Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if path := os.Getenv("ENIGMA_KEY_IMG"); path != "" {
		c.KeyImage = path
	}
	if dir := os.Getenv("ENIGMA_OUT"); dir != "" {
		c.Output.Dir = dir
	}

	if s := os.Getenv("ENIGMA_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("ENIGMA_SEED: %w", err)
		}
		c.Seed = seed
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"ENIGMA_COMPLEXITY", &c.Complexity},
		{"ENIGMA_THRESHOLD", &c.Threshold},
	}
	for _, v := range ints {
		s := os.Getenv(v.name)
		if s == "" {
			continue
		}
		x, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
		*v.dst = x
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.KeyImage == "" {
		return fmt.Errorf("no key image given")
	}
	pc, err := c.Painting()
	if err != nil {
		return err
	}
	if err := pc.Validate(); err != nil {
		return err
	}
	if c.Output.Scale < 0 {
		return fmt.Errorf("invalid output scale %g", c.Output.Scale)
	}
	for _, f := range c.Output.Formats {
		if !validFormat(f) {
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	return nil
}

// Painting returns the parameters of the painting.
func (c *Config) Painting() (enigma.Config, error) {
	pol, err := contour.ParsePolarity(c.Polarity)
	if err != nil {
		return enigma.Config{}, err
	}
	return enigma.Config{
		Seed:       c.Seed,
		Complexity: c.Complexity,
		Threshold:  c.Threshold,
		Polarity:   pol,
		Resolution: c.Resolution,
		Canvas:     rect.Rect{URx: c.Canvas.Width, URy: c.Canvas.Height},
		Parallel:   c.Parallel,
	}, nil
}

// Path returns the name of the output file with the given extension.
// The file name is derived from the painting ID.
func (c *Config) Path(ext string) string {
	return filepath.Join(c.Output.Dir, "key_"+strconv.FormatInt(c.Seed, 10)+"."+ext)
}

func validFormat(f string) bool {
	for _, g := range Formats {
		if f == g {
			return true
		}
	}
	return false
}
