package preprocessing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
)

var (
	ErrInvalidBreakpoints = errors.New("invalid breakpoints")
	ErrOutOfDomain        = errors.New("value outside configured bins")
)

const (
	AgeEdges    = 4
	IncomeEdges = 6
)

type Feature int

const (
	FeatureAge Feature = iota
	FeatureIncome
)

func (f Feature) String() string {
	switch f {
	case FeatureAge:
		return "age"
	case FeatureIncome:
		return "income"
	default:
		return fmt.Sprintf("feature(%d)", int(f))
	}
}

// BinConfig holds the breakpoints of both features. Bins are (e[k], e[k+1]],
// except the first which also includes its lower edge.
type BinConfig struct {
	AgeBreakpoints    []decimal.Decimal
	IncomeBreakpoints []decimal.Decimal
	AgeNames          []string
	IncomeNames       []string
}

func DefaultBinConfig() BinConfig {
	return BinConfig{
		AgeBreakpoints:    ints(17, 29, 59, 75),
		IncomeBreakpoints: ints(9999, 19999, 29999, 39999, 49999, 60000),
		AgeNames:          []string{"Young (18-29)", "Adult (30-59)", "Senior (60-75)"},
		IncomeNames: []string{
			"Very low (10k-19,999)",
			"Low (20k-29,999)",
			"Medium (30k-39,999)",
			"High (40k-49,999)",
			"Very high (50k-60k)",
		},
	}
}

func ints(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

type Discretizer struct {
	age    []decimal.Decimal
	income []decimal.Decimal
	names  map[Feature][]string
}

func NewDiscretizer(cfg BinConfig) (*Discretizer, error) {
	if err := checkEdges(FeatureAge, cfg.AgeBreakpoints, AgeEdges); err != nil {
		return nil, err
	}
	if err := checkEdges(FeatureIncome, cfg.IncomeBreakpoints, IncomeEdges); err != nil {
		return nil, err
	}
	if n := len(cfg.AgeNames); n != 0 && n != AgeEdges-1 {
		return nil, fmt.Errorf("%w: %d age names for %d bins", ErrInvalidBreakpoints, n, AgeEdges-1)
	}
	if n := len(cfg.IncomeNames); n != 0 && n != IncomeEdges-1 {
		return nil, fmt.Errorf("%w: %d income names for %d bins", ErrInvalidBreakpoints, n, IncomeEdges-1)
	}

	return &Discretizer{
		age:    append([]decimal.Decimal(nil), cfg.AgeBreakpoints...),
		income: append([]decimal.Decimal(nil), cfg.IncomeBreakpoints...),
		names: map[Feature][]string{
			FeatureAge:    append([]string(nil), cfg.AgeNames...),
			FeatureIncome: append([]string(nil), cfg.IncomeNames...),
		},
	}, nil
}

func checkEdges(feature Feature, edges []decimal.Decimal, want int) error {
	if len(edges) != want {
		return fmt.Errorf("%w: %s needs %d edges, got %d", ErrInvalidBreakpoints, feature, want, len(edges))
	}
	for k := 1; k < len(edges); k++ {
		if !edges[k].GreaterThan(edges[k-1]) {
			return fmt.Errorf("%w: %s edges not strictly increasing at %s", ErrInvalidBreakpoints, feature, edges[k])
		}
	}
	return nil
}

func (d *Discretizer) edges(feature Feature) []decimal.Decimal {
	if feature == FeatureAge {
		return d.age
	}
	return d.income
}

// Bin returns the 0-based bin index of value for the given feature.
func (d *Discretizer) Bin(feature Feature, value decimal.Decimal) (int, error) {
	edges := d.edges(feature)
	last := len(edges) - 1

	if value.LessThan(edges[0]) || value.GreaterThan(edges[last]) {
		return 0, fmt.Errorf("%w: %s %s not in [%s, %s]", ErrOutOfDomain, feature, value, edges[0], edges[last])
	}

	idx := sort.Search(len(edges), func(k int) bool {
		return value.LessThanOrEqual(edges[k])
	})
	if idx == 0 {
		return 0, nil
	}
	return idx - 1, nil
}

func (d *Discretizer) DiscretizeValue(age, income decimal.Decimal) (int, int, error) {
	ageBin, err := d.Bin(FeatureAge, age)
	if err != nil {
		return 0, 0, err
	}
	incomeBin, err := d.Bin(FeatureIncome, income)
	if err != nil {
		return 0, 0, err
	}
	return ageBin, incomeBin, nil
}

func (d *Discretizer) Discretize(obs data.Observation) (data.DiscretizedObservation, error) {
	ageBin, incomeBin, err := d.DiscretizeValue(obs.Age, obs.Income)
	if err != nil {
		return data.DiscretizedObservation{}, err
	}
	return data.DiscretizedObservation{AgeBin: ageBin, IncomeBin: incomeBin, Class: obs.Class}, nil
}

func (d *Discretizer) DiscretizeDataset(observations []data.Observation) ([]data.DiscretizedObservation, error) {
	result := make([]data.DiscretizedObservation, len(observations))
	for i, obs := range observations {
		row, err := d.Discretize(obs)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		result[i] = row
	}
	return result, nil
}

func (d *Discretizer) AgeBins() int {
	return len(d.age) - 1
}

func (d *Discretizer) IncomeBins() int {
	return len(d.income) - 1
}

// Combinations is the number of (age bin, income bin) pairs.
func (d *Discretizer) Combinations() int {
	return d.AgeBins() * d.IncomeBins()
}

func (d *Discretizer) Config() BinConfig {
	return BinConfig{
		AgeBreakpoints:    append([]decimal.Decimal(nil), d.age...),
		IncomeBreakpoints: append([]decimal.Decimal(nil), d.income...),
		AgeNames:          append([]string(nil), d.names[FeatureAge]...),
		IncomeNames:       append([]string(nil), d.names[FeatureIncome]...),
	}
}

type BinDescription struct {
	Feature Feature
	Index   int
	Lower   decimal.Decimal
	Upper   decimal.Decimal
	Name    string
}

func (d *Discretizer) Describe() []BinDescription {
	var out []BinDescription
	for _, feature := range []Feature{FeatureAge, FeatureIncome} {
		edges := d.edges(feature)
		names := d.names[feature]
		for k := 0; k < len(edges)-1; k++ {
			desc := BinDescription{
				Feature: feature,
				Index:   k,
				Lower:   edges[k],
				Upper:   edges[k+1],
			}
			if k < len(names) {
				desc.Name = names[k]
			}
			out = append(out, desc)
		}
	}
	return out
}

type BinStats struct {
	Total        int
	AgeCounts    []int
	IncomeCounts []int
	Crosstab     [][]int
}

func (d *Discretizer) Distribution(rows []data.DiscretizedObservation) BinStats {
	stats := BinStats{
		Total:        len(rows),
		AgeCounts:    make([]int, d.AgeBins()),
		IncomeCounts: make([]int, d.IncomeBins()),
		Crosstab:     make([][]int, d.AgeBins()),
	}
	for i := range stats.Crosstab {
		stats.Crosstab[i] = make([]int, d.IncomeBins())
	}

	for _, row := range rows {
		if row.AgeBin < 0 || row.AgeBin >= d.AgeBins() || row.IncomeBin < 0 || row.IncomeBin >= d.IncomeBins() {
			continue
		}
		stats.AgeCounts[row.AgeBin]++
		stats.IncomeCounts[row.IncomeBin]++
		stats.Crosstab[row.AgeBin][row.IncomeBin]++
	}
	return stats
}
