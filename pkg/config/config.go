package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v2"
)

// Config holds render settings. Values from a config file are overlaid on the
// defaults; command-line flags override both.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig contains sampling and parallelism settings
type RenderConfig struct {
	Scene           string `yaml:"scene"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	Workers         int    `yaml:"workers"`
	Seed            int64  `yaml:"seed"`
}

// OutputConfig contains output file settings
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // ppm or png
}

// Default returns the baseline configuration. SamplesPerPixel and MaxDepth
// of 0 mean "use the scene's recommended values".
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Scene:           "weekend",
			Width:           400,
			Height:          225,
			SamplesPerPixel: 0,
			MaxDepth:        0,
			Workers:         runtime.NumCPU(),
			Seed:            42,
		},
		Output: OutputConfig{
			Path:   "render.ppm",
			Format: "ppm",
		},
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings that would make a render meaningless
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.SamplesPerPixel < 0 {
		return fmt.Errorf("samples per pixel cannot be negative, got %d", c.Render.SamplesPerPixel)
	}
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("max depth cannot be negative, got %d", c.Render.MaxDepth)
	}
	if c.Output.Format != "ppm" && c.Output.Format != "png" {
		return fmt.Errorf("unknown output format %q (want ppm or png)", c.Output.Format)
	}
	return nil
}
