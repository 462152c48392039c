package data

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrEmptyDataset = errors.New("dataset is empty")

// Observation is one raw row of the dataset.
type Observation struct {
	Age    decimal.Decimal
	Income decimal.Decimal
	Class  string
}

// DiscretizedObservation carries the bin indices produced for an Observation.
type DiscretizedObservation struct {
	AgeBin    int
	IncomeBin int
	Class     string
}

func NewObservation(age, income int64, class string) Observation {
	return Observation{
		Age:    decimal.NewFromInt(age),
		Income: decimal.NewFromInt(income),
		Class:  class,
	}
}

func Labels(observations []Observation) []string {
	labels := make([]string, len(observations))
	for i, obs := range observations {
		labels[i] = obs.Class
	}
	return labels
}
