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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/enigma"
	"seehuhn.de/go/enigma/contour"
)

// clearEnv makes sure no overrides from the test environment leak in.
func clearEnv(t *testing.T) {
	for _, name := range []string{"ENIGMA_KEY_IMG", "ENIGMA_SEED",
		"ENIGMA_COMPLEXITY", "ENIGMA_THRESHOLD", "ENIGMA_OUT"} {
		t.Setenv(name, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Complexity != 40 {
		t.Errorf("expected Complexity=40, got %d", cfg.Complexity)
	}
	if cfg.Polarity != "auto" {
		t.Errorf("expected Polarity=auto, got %s", cfg.Polarity)
	}

	pc, err := cfg.Painting()
	require.NoError(t, err)
	assert.Equal(t, enigma.DefaultCanvas, pc.Canvas)
	assert.NoError(t, pc.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "sub", "enigma.yaml")

	cfg := DefaultConfig()
	cfg.KeyImage = "key.png"
	cfg.Seed = -3
	cfg.Polarity = "light"
	cfg.Output.Formats = []string{"pdf"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartial(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "enigma.yaml")
	data := "complexity: 12\noutput:\n  formats: [png]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Complexity)
	assert.Equal(t, []string{"png"}, cfg.Output.Formats)
	assert.Equal(t, 128, cfg.Threshold, "unset fields keep their defaults")
	assert.True(t, cfg.Output.Numbers)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "enigma.yaml")
	require.NoError(t, os.WriteFile(path, []byte("complexity: [1, 2"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		t.Setenv("ENIGMA_KEY_IMG", "/tmp/key.png")
		t.Setenv("ENIGMA_SEED", "-42")
		t.Setenv("ENIGMA_COMPLEXITY", "17")
		t.Setenv("ENIGMA_THRESHOLD", "99")
		t.Setenv("ENIGMA_OUT", "/tmp/out")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "/tmp/key.png", cfg.KeyImage)
		assert.Equal(t, int64(-42), cfg.Seed)
		assert.Equal(t, 17, cfg.Complexity)
		assert.Equal(t, 99, cfg.Threshold)
		assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("malformed numbers", func(t *testing.T) {
		for _, name := range []string{"ENIGMA_SEED", "ENIGMA_COMPLEXITY", "ENIGMA_THRESHOLD"} {
			t.Run(name, func(t *testing.T) {
				clearEnv(t)
				t.Setenv(name, "many")
				cfg := DefaultConfig()
				assert.Error(t, cfg.applyEnvOverrides())
			})
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENIGMA_SEED", "5")

		path := filepath.Join(t.TempDir(), "enigma.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, int64(5), cfg.Seed)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.KeyImage = "key.png"
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		modify  func(*Config)
		invalid bool // wraps enigma.ErrInvalidConfig
	}{
		{"no key", func(c *Config) { c.KeyImage = "" }, false},
		{"polarity", func(c *Config) { c.Polarity = "sideways" }, false},
		{"complexity", func(c *Config) { c.Complexity = 0 }, true},
		{"huge complexity", func(c *Config) { c.Complexity = enigma.MaxComplexity + 1 }, true},
		{"huge resolution", func(c *Config) { c.Resolution = enigma.MaxResolution + 1 }, true},
		{"threshold", func(c *Config) { c.Threshold = 300 }, true},
		{"canvas", func(c *Config) { c.Canvas.Width = 0 }, true},
		{"scale", func(c *Config) { c.Output.Scale = -1 }, false},
		{"format", func(c *Config) { c.Output.Formats = []string{"svg", "gif"} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, enigma.ErrInvalidConfig))
		})
	}
}

func TestPainting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Polarity = "dark"
	cfg.Resolution = 300
	cfg.Parallel = true
	cfg.Canvas = CanvasConfig{Width: 400, Height: 300}

	pc, err := cfg.Painting()
	require.NoError(t, err)
	want := enigma.Config{
		Seed:       7,
		Complexity: 40,
		Threshold:  128,
		Polarity:   contour.Dark,
		Resolution: 300,
		Canvas:     rect.Rect{URx: 400, URy: 300},
		Parallel:   true,
	}
	assert.Equal(t, want, pc)
}

func TestPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Output.Dir = "out"
	assert.Equal(t, filepath.Join("out", "key_7.svg"), cfg.Path("svg"))
}
