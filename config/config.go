// Package config loads the editor configuration and the per-user
// preferences that survive between sessions.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/utkedit/level"
)

//go:embed editor.yaml
var defaultYAML []byte

type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// Assets are the tile atlas image paths. An empty or unreadable path falls
// back to a generated atlas.
type Assets struct {
	Floor   string `yaml:"floor"`
	Walls   string `yaml:"walls"`
	Shadows string `yaml:"shadows"`
}

// Size is a level size in tiles.
type Size struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

type Config struct {
	Window Window `yaml:"window"`
	// RenderMultiplier is the starting tile zoom, 1 or 2.
	RenderMultiplier uint32 `yaml:"render_multiplier"`
	// SupportsScaling enables the +/- zoom keys.
	SupportsScaling bool   `yaml:"supports_scaling"`
	TextSize        uint32 `yaml:"text_size"`
	Assets          Assets `yaml:"assets"`
	LevelsDir       string `yaml:"levels_dir"`
	DefaultLevel    Size   `yaml:"default_level"`
}

var ErrInvalid = errors.New("config: invalid value")

// Default returns the built-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal defaults: %w", err)
	}
	return &cfg, nil
}

// Parse applies a YAML document over the defaults. Keys the document does
// not mention keep their default value.
func Parse(data []byte) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at path. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.RenderMultiplier != 1 && c.RenderMultiplier != 2:
		return fmt.Errorf("%w: render_multiplier %d", ErrInvalid, c.RenderMultiplier)
	case c.TextSize == 0:
		return fmt.Errorf("%w: text_size 0", ErrInvalid)
	case c.DefaultLevel.Width < level.MinWidth || c.DefaultLevel.Height < level.MinHeight:
		return fmt.Errorf("%w: default_level %dx%d", ErrInvalid, c.DefaultLevel.Width, c.DefaultLevel.Height)
	}
	return nil
}
