package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ctfft"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	s, err := cfg.ParsedStrategy()
	require.NoError(t, err)
	assert.Equal(t, ctfft.StrategyRecursive, s)

	strategies, err := cfg.Bench.ParsedStrategies()
	require.NoError(t, err)
	assert.ElementsMatch(t, ctfft.Strategies(), strategies)

	lengths, err := cfg.Bench.Lengths()
	require.NoError(t, err)
	assert.Equal(t, []int{1 << 10, 1 << 14, 1 << 18}, lengths)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fftbench.yaml")
	yaml := `
strategy: iterative
tolerance: 1e-10
bench:
  sizes: [4, 8]
  iterations: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "iterative", cfg.Strategy)
	assert.Equal(t, 1e-10, cfg.Tolerance)
	assert.Equal(t, []int{4, 8}, cfg.Bench.Sizes)
	assert.Equal(t, 5, cfg.Bench.Iterations)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultWarmup, cfg.Bench.Warmup)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench: [unclosed"), 0o644))

	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Strategy = "table"
	cfg.Bench.WisdomFile = "wisdom.txt"

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, Save(path, cfg))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvStrategy:  "parallel",
		EnvLogLevel:  "debug",
		EnvTolerance: "1e-6",
		EnvWisdom:    "/tmp/w.txt",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, "parallel", cfg.Strategy)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, "/tmp/w.txt", cfg.Bench.WisdomFile)

	env[EnvTolerance] = "tight"
	assert.Error(t, DefaultConfig().ApplyEnv(lookup))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FFTBENCH_TEST_DOTENV=from-file\n"), 0o644))

	t.Setenv("FFTBENCH_TEST_DOTENV", "")
	os.Unsetenv("FFTBENCH_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, "from-file", os.Getenv("FFTBENCH_TEST_DOTENV"))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"strategy", func(c *Config) { c.Strategy = "radix4" }},
		{"bench strategy", func(c *Config) { c.Bench.Strategies = []string{"nope"} }},
		{"log level", func(c *Config) { c.LogLevel = "trace" }},
		{"tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"grain", func(c *Config) { c.GrainSize = 1 }},
		{"size", func(c *Config) { c.Bench.Sizes = []int{31} }},
		{"iterations", func(c *Config) { c.Bench.Iterations = 0 }},
		{"warmup", func(c *Config) { c.Bench.Warmup = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestBenchConfigParsing(t *testing.T) {
	t.Parallel()

	bc := BenchConfig{Sizes: []int{0, 3}, Strategies: []string{"table", "Scratch"}}

	lengths, err := bc.Lengths()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8}, lengths)

	strategies, err := bc.ParsedStrategies()
	require.NoError(t, err)
	assert.Equal(t, []ctfft.Strategy{ctfft.StrategyTable, ctfft.StrategyScratch}, strategies)

	_, err = BenchConfig{Sizes: []int{31}}.Lengths()
	require.Error(t, err)

	_, err = BenchConfig{Strategies: []string{"radix4"}}.ParsedStrategies()
	require.ErrorIs(t, err, ctfft.ErrUnknownStrategy)
}
