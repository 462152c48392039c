package experiment

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Data         string     `yaml:"data"`
	TestFraction float64    `yaml:"test_fraction"`
	Seed         int64      `yaml:"seed"`
	Classes      []string   `yaml:"classes"`
	Bins         BinsConfig `yaml:"bins"`
	Output       string     `yaml:"output"`
	LogLevel     string     `yaml:"log_level"`
}

type BinsConfig struct {
	AgeBreakpoints    []float64 `yaml:"age_breakpoints"`
	IncomeBreakpoints []float64 `yaml:"income_breakpoints"`
	AgeNames          []string  `yaml:"age_names"`
	IncomeNames       []string  `yaml:"income_names"`
}

func DefaultConfig() Config {
	bins := preprocessing.DefaultBinConfig()
	return Config{
		Data:         "data/datos_evaluacion.csv",
		TestFraction: 0.2,
		Seed:         42,
		Classes:      []string{"Camina", "Conduce"},
		Bins: BinsConfig{
			AgeBreakpoints:    floats(bins.AgeBreakpoints),
			IncomeBreakpoints: floats(bins.IncomeBreakpoints),
			AgeNames:          bins.AgeNames,
			IncomeNames:       bins.IncomeNames,
		},
		Output:   "results",
		LogLevel: "info",
	}
}

func floats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}

func decimals(values []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		return fmt.Errorf("%w: test_fraction must be in (0,1), got %v", ErrInvalidConfig, c.TestFraction)
	}
	if len(c.Classes) != 2 {
		return fmt.Errorf("%w: exactly two classes required, got %d", ErrInvalidConfig, len(c.Classes))
	}
	if c.Classes[0] == c.Classes[1] {
		return fmt.Errorf("%w: duplicate class %q", ErrInvalidConfig, c.Classes[0])
	}
	if _, err := preprocessing.NewDiscretizer(c.BinConfig()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) BinConfig() preprocessing.BinConfig {
	return preprocessing.BinConfig{
		AgeBreakpoints:    decimals(c.Bins.AgeBreakpoints),
		IncomeBreakpoints: decimals(c.Bins.IncomeBreakpoints),
		AgeNames:          c.Bins.AgeNames,
		IncomeNames:       c.Bins.IncomeNames,
	}
}
