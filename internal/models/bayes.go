package models

import (
	"github.com/samber/lo"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
)

// ProbabilityModel holds class priors and Laplace-smoothed joint likelihoods
// P(age bin, income bin | class) over the full bin cross-product. It is built
// by Fit and never modified afterwards; the zero value is an unfit model.
type ProbabilityModel struct {
	classes    []string
	priors     map[string]float64
	joint      map[string]map[BinPair]float64
	counts     map[string]int
	freq       map[string]map[BinPair]int
	ageBins    int
	incomeBins int
	total      int
	fitted     bool
}

// FitPriors computes P(c) = count(c) / |training| for every observed label.
// An empty training set yields an empty map.
func FitPriors(training []data.DiscretizedObservation) map[string]float64 {
	priors := make(map[string]float64)
	if len(training) == 0 {
		return priors
	}

	total := float64(len(training))
	for class, count := range classCounts(training) {
		priors[class] = float64(count) / total
	}
	return priors
}

// FitJoint computes (freq(i,j,c) + 1) / (n_c + K) for every class and every
// pair in the ageBins x incomeBins cross-product, K being its size.
func FitJoint(training []data.DiscretizedObservation, ageBins, incomeBins int) map[string]map[BinPair]float64 {
	return smooth(frequencies(training), classCounts(training), ageBins, incomeBins)
}

func Fit(training []data.DiscretizedObservation, ageBins, incomeBins int) *ProbabilityModel {
	return FitOrdered(training, ageBins, incomeBins, nil)
}

// FitOrdered is Fit with an explicit class iteration order. Labels in order
// that never occur in training are dropped; observed labels missing from order
// follow in order of first appearance.
func FitOrdered(training []data.DiscretizedObservation, ageBins, incomeBins int, order []string) *ProbabilityModel {
	counts := classCounts(training)
	freq := frequencies(training)

	return &ProbabilityModel{
		classes:    orderClasses(ExtractClasses(training), order),
		priors:     FitPriors(training),
		joint:      smooth(freq, counts, ageBins, incomeBins),
		counts:     counts,
		freq:       freq,
		ageBins:    ageBins,
		incomeBins: incomeBins,
		total:      len(training),
		fitted:     len(training) > 0,
	}
}

func classCounts(training []data.DiscretizedObservation) map[string]int {
	return lo.CountValuesBy(training, func(row data.DiscretizedObservation) string {
		return row.Class
	})
}

func frequencies(training []data.DiscretizedObservation) map[string]map[BinPair]int {
	freq := make(map[string]map[BinPair]int)
	for _, row := range training {
		if freq[row.Class] == nil {
			freq[row.Class] = make(map[BinPair]int)
		}
		freq[row.Class][BinPair{Age: row.AgeBin, Income: row.IncomeBin}]++
	}
	return freq
}

func smooth(freq map[string]map[BinPair]int, counts map[string]int, ageBins, incomeBins int) map[string]map[BinPair]float64 {
	k := ageBins * incomeBins
	joint := make(map[string]map[BinPair]float64, len(counts))

	for class, n := range counts {
		table := make(map[BinPair]float64, k)
		denominator := float64(n + k)
		for i := 0; i < ageBins; i++ {
			for j := 0; j < incomeBins; j++ {
				pair := BinPair{Age: i, Income: j}
				table[pair] = float64(freq[class][pair]+1) / denominator
			}
		}
		joint[class] = table
	}
	return joint
}

func (m *ProbabilityModel) Fitted() bool {
	return m != nil && m.fitted
}

// JointProbability returns P((i,j)|c), or 0 for an unfit model, an unknown
// class or a pair outside the table.
func (m *ProbabilityModel) JointProbability(i, j int, class string) float64 {
	if !m.Fitted() {
		return 0
	}
	return m.joint[class][BinPair{Age: i, Income: j}]
}

// FrequencyRatio is the unsmoothed freq(i,j,c)/n_c, kept for diagnostics.
func (m *ProbabilityModel) FrequencyRatio(i, j int, class string) float64 {
	if !m.Fitted() || m.counts[class] == 0 {
		return 0
	}
	return float64(m.freq[class][BinPair{Age: i, Income: j}]) / float64(m.counts[class])
}

func (m *ProbabilityModel) Frequency(i, j int, class string) int {
	if !m.Fitted() {
		return 0
	}
	return m.freq[class][BinPair{Age: i, Income: j}]
}

func (m *ProbabilityModel) Prior(class string) float64 {
	if !m.Fitted() {
		return 0
	}
	return m.priors[class]
}

func (m *ProbabilityModel) Classes() []string {
	if !m.Fitted() {
		return nil
	}
	return append([]string(nil), m.classes...)
}

func (m *ProbabilityModel) Priors() map[string]float64 {
	if !m.Fitted() {
		return map[string]float64{}
	}
	return lo.Assign(m.priors)
}

func (m *ProbabilityModel) Counts() map[string]int {
	if !m.Fitted() {
		return map[string]int{}
	}
	return lo.Assign(m.counts)
}

func (m *ProbabilityModel) Joint() map[string]map[BinPair]float64 {
	out := make(map[string]map[BinPair]float64)
	if !m.Fitted() {
		return out
	}
	for class, table := range m.joint {
		out[class] = lo.Assign(table)
	}
	return out
}

func (m *ProbabilityModel) AgeBins() int {
	if m == nil {
		return 0
	}
	return m.ageBins
}

func (m *ProbabilityModel) IncomeBins() int {
	if m == nil {
		return 0
	}
	return m.incomeBins
}

// Combinations is K, the size of the smoothed table of each class.
func (m *ProbabilityModel) Combinations() int {
	return m.AgeBins() * m.IncomeBins()
}

func (m *ProbabilityModel) TrainingSize() int {
	if m == nil {
		return 0
	}
	return m.total
}

// ModelSnapshot is the serializable form of a ProbabilityModel. Probabilities
// are derived again from the counts when the model is restored.
type ModelSnapshot struct {
	Classes     []string
	Counts      map[string]int
	Frequencies map[string]map[BinPair]int
	AgeBins     int
	IncomeBins  int
}

func (m *ProbabilityModel) Snapshot() ModelSnapshot {
	snap := ModelSnapshot{
		Classes:     m.Classes(),
		Counts:      m.Counts(),
		Frequencies: make(map[string]map[BinPair]int),
		AgeBins:     m.AgeBins(),
		IncomeBins:  m.IncomeBins(),
	}
	if m.Fitted() {
		for class, table := range m.freq {
			snap.Frequencies[class] = lo.Assign(table)
		}
	}
	return snap
}

func FromSnapshot(snap ModelSnapshot) *ProbabilityModel {
	total := 0
	for _, n := range snap.Counts {
		total += n
	}

	priors := make(map[string]float64, len(snap.Counts))
	for class, n := range snap.Counts {
		priors[class] = float64(n) / float64(total)
	}

	freq := make(map[string]map[BinPair]int, len(snap.Frequencies))
	for class, table := range snap.Frequencies {
		freq[class] = lo.Assign(table)
	}

	return &ProbabilityModel{
		classes:    append([]string(nil), snap.Classes...),
		priors:     priors,
		joint:      smooth(freq, snap.Counts, snap.AgeBins, snap.IncomeBins),
		counts:     lo.Assign(snap.Counts),
		freq:       freq,
		ageBins:    snap.AgeBins,
		incomeBins: snap.IncomeBins,
		total:      total,
		fitted:     total > 0,
	}
}
