// Package config loads msws CLI settings from an HCL file and the
// environment. The generator library itself never reads configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/msws"
)

// Environment variable names that override file settings
const (
	// EnvSeed is the integer fed to msws.Seed
	EnvSeed = "MSWS_SEED"

	// EnvRawSeed is a literal increment used as-is (hex with 0x, or decimal)
	EnvRawSeed = "MSWS_RAW_SEED"

	// EnvCount is the number of outputs gen prints
	EnvCount = "MSWS_COUNT"

	// EnvLogLevel is one of debug, info, warn, error
	EnvLogLevel = "MSWS_LOG_LEVEL"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = "msws.hcl"

// Config is the complete CLI configuration
type Config struct {
	Generator GeneratorSettings
	Stats     StatsSettings
	Log       LogSettings
}

// GeneratorSettings selects the stream and how it is printed
type GeneratorSettings struct {
	Seed    uint64 `hcl:"seed,optional"`
	RawSeed string `hcl:"raw_seed,optional"`
	Count   int    `hcl:"count,optional"`
	Format  string `hcl:"format,optional"`
}

// StatsSettings sizes the parallel smoke test
type StatsSettings struct {
	Streams int `hcl:"streams,optional"`
	Samples int `hcl:"samples,optional"`
	Workers int `hcl:"workers,optional"`
}

// LogSettings controls CLI logging
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// fileConfig mirrors Config with optional blocks.
type fileConfig struct {
	Generator *GeneratorSettings `hcl:"generator,block"`
	Stats     *StatsSettings     `hcl:"stats,block"`
	Log       *LogSettings       `hcl:"log,block"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Generator: GeneratorSettings{
			Seed:   0,
			Count:  10,
			Format: "hex",
		},
		Stats: StatsSettings{
			Streams: 4,
			Samples: 100_000,
			Workers: 0,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads filename, falling back to defaults when it does not exist.
// Settings missing from the file keep their default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if g := fc.Generator; g != nil {
		cfg.Generator.Seed = g.Seed
		cfg.Generator.RawSeed = g.RawSeed
		if g.Count != 0 {
			cfg.Generator.Count = g.Count
		}
		if g.Format != "" {
			cfg.Generator.Format = g.Format
		}
	}
	if s := fc.Stats; s != nil {
		if s.Streams != 0 {
			cfg.Stats.Streams = s.Streams
		}
		if s.Samples != 0 {
			cfg.Stats.Samples = s.Samples
		}
		cfg.Stats.Workers = s.Workers
	}
	if l := fc.Log; l != nil {
		if l.Level != "" {
			cfg.Log.Level = l.Level
		}
		if l.Format != "" {
			cfg.Log.Format = l.Format
		}
	}

	return cfg, nil
}

// ApplyEnv overrides settings from environment variables read via getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Generator.Seed = seed
	}

	if v := getenv(EnvRawSeed); v != "" {
		c.Generator.RawSeed = v
	}

	if v := getenv(EnvCount); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvCount, err)
		}
		c.Generator.Count = count
	}

	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}

	return nil
}

// ParseRawSeed parses a literal seed in hex (0x prefix), octal or decimal.
func ParseRawSeed(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid raw seed %q: %w", s, err)
	}
	return v, nil
}

// InitialSeed returns the increment the configured stream starts from:
// the raw seed when set, otherwise msws.Seed of the integer seed.
func (c *Config) InitialSeed() (uint64, error) {
	if c.Generator.RawSeed == "" {
		return msws.Seed(c.Generator.Seed), nil
	}
	return ParseRawSeed(c.Generator.RawSeed)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	seed, err := c.InitialSeed()
	if err != nil {
		return err
	}
	if _, err := msws.New(seed); err != nil {
		return err
	}

	if c.Generator.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}

	validFormats := map[string]bool{
		"hex": true,
		"dec": true,
		"bin": true,
	}
	if !validFormats[c.Generator.Format] {
		return fmt.Errorf("invalid output format: %s", c.Generator.Format)
	}

	if c.Stats.Streams <= 0 {
		return fmt.Errorf("stats streams must be positive")
	}
	if c.Stats.Samples <= 0 {
		return fmt.Errorf("stats samples must be positive")
	}
	if c.Stats.Workers < 0 {
		return fmt.Errorf("stats workers cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}
