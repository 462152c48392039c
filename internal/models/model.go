package models

import (
	"github.com/samber/lo"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
)

// BinPair identifies one (age bin, income bin) combination.
type BinPair struct {
	Age    int
	Income int
}

type ClassProbability struct {
	Class       string
	Probability float64
}

// Classifier predicts a class for a discretized observation.
type Classifier interface {
	Predict(ageBin, incomeBin int) (string, float64)
	Classes() []string
}

// ExtractClasses returns the distinct labels in order of first appearance.
func ExtractClasses(rows []data.DiscretizedObservation) []string {
	return lo.Uniq(lo.Map(rows, func(row data.DiscretizedObservation, _ int) string {
		return row.Class
	}))
}

// orderClasses puts the labels of order first, keeping only those present in
// observed, then appends the remaining observed labels.
func orderClasses(observed, order []string) []string {
	if len(order) == 0 {
		return observed
	}
	classes := lo.Filter(lo.Uniq(order), func(class string, _ int) bool {
		return lo.Contains(observed, class)
	})
	return append(classes, lo.Without(observed, classes...)...)
}
