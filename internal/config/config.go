// Package config loads the YAML run configuration for the idsampler CLI.
// Flags override file values; the file only spares retyping long paths and
// range lists between runs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/idsampler/idset"
	"github.com/katalvlaran/idsampler/sampling"
)

// RangeSpec is one inclusive [min,max] interval in the config file.
type RangeSpec struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// Config mirrors the YAML run file. Zero values mean "not set" and leave the
// corresponding flag default in force.
type Config struct {
	// Pool is the path of the full ID pool file (CSV or XLSX). Required
	// unless given via --pool.
	Pool string `yaml:"pool"`

	// Selections is the optional current-selections file path.
	Selections string `yaml:"selections"`

	// Excluded is the optional excluded-IDs file path.
	Excluded string `yaml:"excluded"`

	// SampleSize is the number of new IDs to draw.
	SampleSize int `yaml:"sample_size"`

	// Seed drives the sampler; 0 means a fresh random seed per run.
	Seed int64 `yaml:"seed"`

	// Ranges optionally restricts the eligible pool.
	Ranges []RangeSpec `yaml:"ranges"`

	// Strict escalates validation findings to a hard failure.
	Strict bool `yaml:"strict"`

	// Out is the output path for the final dataset; empty means
	// summary-only runs.
	Out string `yaml:"out"`

	// Format selects the export encoding: "csv" (default) or "xlsx".
	Format string `yaml:"format"`
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// validate rejects values the pipeline would refuse anyway, so mistakes
// surface with the file name attached instead of mid-run.
func (c *Config) validate() error {
	switch c.Format {
	case "", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown format %q (want csv or xlsx)", c.Format)
	}
	for _, r := range c.Ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%w: [%d, %d]", sampling.ErrInvalidRange, r.Min, r.Max)
		}
	}

	return nil
}

// SamplingRanges converts the configured ranges into pipeline ranges.
func (c *Config) SamplingRanges() []sampling.Range {
	if len(c.Ranges) == 0 {
		return nil
	}
	out := make([]sampling.Range, len(c.Ranges))
	for i, r := range c.Ranges {
		out[i] = sampling.Range{Min: idset.ID(r.Min), Max: idset.ID(r.Max)}
	}

	return out
}
