// Package config loads fftbench settings from YAML, .env files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/ctfft"
	"github.com/cwbudde/ctfft/internal/fft"
	"github.com/cwbudde/ctfft/internal/logging"
	m "github.com/cwbudde/ctfft/internal/math"
)

// Benchmark defaults.
const (
	DefaultIterations = 20
	DefaultWarmup     = 3
	DefaultSeed       = 1
)

// Environment variables that override file settings.
const (
	EnvStrategy  = "FFTBENCH_STRATEGY"
	EnvLogLevel  = "FFTBENCH_LOG_LEVEL"
	EnvTolerance = "FFTBENCH_TOLERANCE"
	EnvWisdom    = "FFTBENCH_WISDOM"
)

// Config holds the fftbench settings.
type Config struct {
	Strategy  string      `yaml:"strategy"`
	GrainSize int         `yaml:"grain_size"`
	Tolerance float64     `yaml:"tolerance"`
	LogLevel  string      `yaml:"log_level"`
	Bench     BenchConfig `yaml:"bench"`
}

// BenchConfig configures the bench subcommand.
type BenchConfig struct {
	// Sizes are exponents: 10 means 1024-point transforms.
	Sizes      []int    `yaml:"sizes"`
	Strategies []string `yaml:"strategies"`
	Iterations int      `yaml:"iterations"`
	Warmup     int      `yaml:"warmup"`
	Seed       uint64   `yaml:"seed"`
	WisdomFile string   `yaml:"wisdom_file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Strategy:  ctfft.StrategyRecursive.String(),
		GrainSize: fft.DefaultGrainSize,
		Tolerance: m.Tolerance,
		LogLevel:  "info",
		Bench: BenchConfig{
			Sizes:      []int{10, 14, 18},
			Strategies: []string{"recursive", "scratch", "iterative", "parallel", "table"},
			Iterations: DefaultIterations,
			Warmup:     DefaultWarmup,
			Seed:       DefaultSeed,
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables that are already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from FFTBENCH_* variables looked up with
// lookup (os.LookupEnv when nil).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvStrategy); ok {
		c.Strategy = v
	}

	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}

	if v, ok := lookup(EnvWisdom); ok {
		c.Bench.WisdomFile = v
	}

	if v, ok := lookup(EnvTolerance); ok {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTolerance, err)
		}

		c.Tolerance = tol
	}

	return nil
}

// Validate checks every field and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ctfft.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("strategy: %w", err))
	}

	for _, s := range c.Bench.Strategies {
		if _, err := ctfft.ParseStrategy(s); err != nil {
			errs = append(errs, fmt.Errorf("bench.strategies: %w", err))
		}
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	if c.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("tolerance must be positive, got %g", c.Tolerance))
	}

	if c.GrainSize < 2 {
		errs = append(errs, fmt.Errorf("grain_size must be at least 2, got %d", c.GrainSize))
	}

	for _, e := range c.Bench.Sizes {
		if e < 0 || e > m.MaxExponent {
			errs = append(errs, fmt.Errorf("bench.sizes: exponent %d outside 0..%d", e, m.MaxExponent))
		}
	}

	if c.Bench.Iterations < 1 {
		errs = append(errs, fmt.Errorf("bench.iterations must be at least 1, got %d", c.Bench.Iterations))
	}

	if c.Bench.Warmup < 0 {
		errs = append(errs, fmt.Errorf("bench.warmup must not be negative, got %d", c.Bench.Warmup))
	}

	return errors.Join(errs...)
}

// ParsedStrategy returns the configured strategy.
func (c *Config) ParsedStrategy() (ctfft.Strategy, error) {
	return ctfft.ParseStrategy(c.Strategy)
}

// ParsedStrategies returns the strategies to benchmark.
func (b BenchConfig) ParsedStrategies() ([]ctfft.Strategy, error) {
	out := make([]ctfft.Strategy, 0, len(b.Strategies))

	for _, name := range b.Strategies {
		s, err := ctfft.ParseStrategy(name)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

// Lengths converts the size exponents to transform lengths.
func (b BenchConfig) Lengths() ([]int, error) {
	out := make([]int, 0, len(b.Sizes))

	for _, exp := range b.Sizes {
		if exp < 0 || exp > m.MaxExponent {
			return nil, fmt.Errorf("size exponent %d outside 0..%d", exp, m.MaxExponent)
		}

		out = append(out, 1<<exp)
	}

	return out, nil
}

// LoadEnv loads .env files and then applies FFTBENCH_* overrides from the
// process environment to cfg.
func LoadEnv(cfg *Config, files ...string) error {
	if err := LoadDotEnv(files...); err != nil {
		return err
	}

	return cfg.ApplyEnv(nil)
}
