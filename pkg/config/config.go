// Package config loads run configuration from YAML files and provides
// default values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one rearrangement run. Ordering and Seed are
// alternative ways to supply the permutation; an explicit Ordering
// wins over a Seed.
type Config struct {
	Tile struct {
		// Width and Height of one tile in pixels. Each must divide
		// the matching image dimension exactly.
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"tile"`

	// Ordering maps output tile position i to the source tile index
	// whose content goes there, in row-major tile order.
	Ordering []int `yaml:"ordering"`

	// Seed derives the ordering deterministically when Ordering is
	// empty.
	Seed uint32 `yaml:"seed"`

	// S3 configures the object store used when images are read from
	// and written to bucket keys instead of local paths.
	S3 struct {
		Endpoint  string `yaml:"endpoint"`
		Region    string `yaml:"region"`
		AccessKey string `yaml:"accessKey"`
		SecretKey string `yaml:"secretKey"`
		Bucket    string `yaml:"bucket"`
		Prefix    string `yaml:"prefix"`
	} `yaml:"s3"`
}

// Default returns a configuration with default values.
func Default() *Config {
	cfg := &Config{}

	cfg.Tile.Width = 256
	cfg.Tile.Height = 256

	cfg.S3.Endpoint = "http://localhost:9000"
	cfg.S3.Region = "us-east-1"
	cfg.S3.Bucket = "tiles-bucket"

	return cfg
}

// Load reads configuration from a YAML file, overlaying the defaults.
// A missing file (or an empty path) yields the default configuration.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}
