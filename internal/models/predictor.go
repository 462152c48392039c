package models

import (
	"github.com/shopspring/decimal"

	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
)

// Predictor applies Bayes' rule over a fitted ProbabilityModel.
type Predictor struct {
	model *ProbabilityModel
}

func NewPredictor(model *ProbabilityModel) *Predictor {
	if model == nil {
		model = &ProbabilityModel{}
	}
	return &Predictor{model: model}
}

func (p *Predictor) Model() *ProbabilityModel {
	return p.model
}

func (p *Predictor) Classes() []string {
	return p.model.Classes()
}

// Evidence is P(x) = sum over classes of P(x|c) * P(c). It is 0 when the
// model knows no classes, which callers must read as "cannot predict".
func (p *Predictor) Evidence(i, j int) float64 {
	px := 0.0
	for _, class := range p.model.Classes() {
		px += p.model.JointProbability(i, j, class) * p.model.Prior(class)
	}
	return px
}

// Posterior is P(c|x), defined as 0 when P(x) is 0.
func (p *Predictor) Posterior(i, j int, class string) float64 {
	return p.posterior(i, j, class, p.Evidence(i, j))
}

func (p *Predictor) posterior(i, j int, class string, px float64) float64 {
	if px <= 0 {
		return 0
	}
	return p.model.JointProbability(i, j, class) * p.model.Prior(class) / px
}

func (p *Predictor) Posteriors(i, j int) []ClassProbability {
	px := p.Evidence(i, j)
	classes := p.model.Classes()

	out := make([]ClassProbability, len(classes))
	for k, class := range classes {
		out[k] = ClassProbability{Class: class, Probability: p.posterior(i, j, class, px)}
	}
	return out
}

// Predict returns the maximum a posteriori class and its posterior. Ties go
// to the earliest class in the model's order. An unfit model yields ("", 0).
func (p *Predictor) Predict(i, j int) (string, float64) {
	posteriors := p.Posteriors(i, j)
	if len(posteriors) == 0 {
		return "", 0
	}

	best := posteriors[0]
	for _, candidate := range posteriors[1:] {
		if candidate.Probability > best.Probability {
			best = candidate
		}
	}
	return best.Class, best.Probability
}

// Prediction is the outcome for one raw (age, income) pair, with the bins it
// fell into.
type Prediction struct {
	AgeBin      int
	IncomeBin   int
	Class       string
	Probability float64
}

// PredictValue bins raw values with d before predicting.
func (p *Predictor) PredictValue(d *preprocessing.Discretizer, age, income decimal.Decimal) (Prediction, error) {
	ageBin, incomeBin, err := d.DiscretizeValue(age, income)
	if err != nil {
		return Prediction{}, err
	}
	class, prob := p.Predict(ageBin, incomeBin)
	return Prediction{AgeBin: ageBin, IncomeBin: incomeBin, Class: class, Probability: prob}, nil
}

type EvidenceTerm struct {
	Class      string
	Likelihood float64
	Frequency  float64
	Prior      float64
	Product    float64
	Posterior  float64
}

// EvidenceBreakdown lists each class's contribution to P(x).
type EvidenceBreakdown struct {
	AgeBin    int
	IncomeBin int
	Terms     []EvidenceTerm
	Evidence  float64
}

func (p *Predictor) Breakdown(i, j int) EvidenceBreakdown {
	px := p.Evidence(i, j)
	breakdown := EvidenceBreakdown{AgeBin: i, IncomeBin: j, Evidence: px}

	for _, class := range p.model.Classes() {
		likelihood := p.model.JointProbability(i, j, class)
		prior := p.model.Prior(class)
		breakdown.Terms = append(breakdown.Terms, EvidenceTerm{
			Class:      class,
			Likelihood: likelihood,
			Frequency:  p.model.FrequencyRatio(i, j, class),
			Prior:      prior,
			Product:    likelihood * prior,
			Posterior:  p.posterior(i, j, class, px),
		})
	}
	return breakdown
}
