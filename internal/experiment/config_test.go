package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.2, cfg.TestFraction)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, []string{"Camina", "Conduce"}, cfg.Classes)
	assert.Equal(t, []float64{17, 29, 59, 75}, cfg.Bins.AgeBreakpoints)
	assert.Equal(t, []float64{9999, 19999, 29999, 39999, 49999, 60000}, cfg.Bins.IncomeBreakpoints)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `test_fraction: 0.3
seed: 7
classes: [Walks, Drives]
bins:
  age_breakpoints: [0, 30, 60, 120]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.TestFraction)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, []string{"Walks", "Drives"}, cfg.Classes)
	assert.Equal(t, []float64{0, 30, 60, 120}, cfg.Bins.AgeBreakpoints)
	assert.Len(t, cfg.Bins.IncomeBreakpoints, 6)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [\n"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fraction zero", func(c *Config) { c.TestFraction = 0 }},
		{"fraction one", func(c *Config) { c.TestFraction = 1 }},
		{"three classes", func(c *Config) { c.Classes = []string{"a", "b", "c"} }},
		{"duplicate class", func(c *Config) { c.Classes = []string{"a", "a"} }},
		{"short age bins", func(c *Config) { c.Bins.AgeBreakpoints = []float64{1, 2} }},
		{"unsorted income bins", func(c *Config) { c.Bins.IncomeBreakpoints = []float64{6, 5, 4, 3, 2, 1} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
