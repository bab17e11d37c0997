// Package config holds the editor's file-based configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the editor front end.
type Config struct {
	// JPEGQuality is the quality for JPEG output, 1-100 (default: 95).
	JPEGQuality int `yaml:"jpeg_quality"`

	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`
}

func (c *Config) defaults() {
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = 95
	}
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.defaults()
	return c
}

// Load reads a YAML config file. An empty path returns the defaults;
// unset fields are filled in with their default values.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	c.defaults()
	return c, nil
}
