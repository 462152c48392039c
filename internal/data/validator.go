package data

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type DataValidator struct{}

func NewDataValidator() *DataValidator {
	return &DataValidator{}
}

func (dv *DataValidator) ValidateDataset(observations []Observation) error {
	if len(observations) == 0 {
		return ErrEmptyDataset
	}

	for i, obs := range observations {
		if obs.Class == "" {
			return fmt.Errorf("missing class at sample %d", i)
		}
		if obs.Age.IsNegative() {
			return fmt.Errorf("negative age at sample %d: %s", i, obs.Age)
		}
		if obs.Income.IsNegative() {
			return fmt.Errorf("negative income at sample %d: %s", i, obs.Income)
		}
	}

	return nil
}

// ValidateLabels checks that every label belongs to the allowed set and that
// at least two distinct classes are present.
func (dv *DataValidator) ValidateLabels(observations []Observation, allowed []string) error {
	if len(observations) == 0 {
		return ErrEmptyDataset
	}

	if len(allowed) > 0 {
		for i, obs := range observations {
			if !lo.Contains(allowed, obs.Class) {
				return fmt.Errorf("unknown class %q at sample %d, expected one of %v", obs.Class, i, allowed)
			}
		}
	}

	classes := lo.Uniq(Labels(observations))
	if len(classes) < 2 {
		return fmt.Errorf("dataset must have at least 2 classes, found %d", len(classes))
	}

	return nil
}

type FeatureStats struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Mean decimal.Decimal
}

type DatasetStats struct {
	Samples           int
	Classes           int
	ClassDistribution map[string]int
	Age               FeatureStats
	Income            FeatureStats
}

func (dv *DataValidator) GetDatasetStats(observations []Observation) DatasetStats {
	if len(observations) == 0 {
		return DatasetStats{ClassDistribution: map[string]int{}}
	}

	distribution := lo.CountValuesBy(observations, func(obs Observation) string {
		return obs.Class
	})

	ages := lo.Map(observations, func(obs Observation, _ int) decimal.Decimal { return obs.Age })
	incomes := lo.Map(observations, func(obs Observation, _ int) decimal.Decimal { return obs.Income })

	return DatasetStats{
		Samples:           len(observations),
		Classes:           len(distribution),
		ClassDistribution: distribution,
		Age:               featureStats(ages),
		Income:            featureStats(incomes),
	}
}

func featureStats(values []decimal.Decimal) FeatureStats {
	return FeatureStats{
		Min:  decimal.Min(values[0], values[1:]...),
		Max:  decimal.Max(values[0], values[1:]...),
		Mean: decimal.Avg(values[0], values[1:]...),
	}
}
