package evaluation

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
	"github.com/victortelles/ClasificadorBayesiano/internal/models"
	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
)

var ErrUnknownClass = errors.New("unknown class")

// ConfusionMatrix counts outcomes indexed by [actual][predicted]. Row and
// column k both stand for Labels[k].
type ConfusionMatrix struct {
	Labels []string
	Counts [][]int
}

func NewConfusionMatrix(labels []string) *ConfusionMatrix {
	counts := make([][]int, len(labels))
	for i := range counts {
		counts[i] = make([]int, len(labels))
	}
	return &ConfusionMatrix{
		Labels: append([]string(nil), labels...),
		Counts: counts,
	}
}

func (cm *ConfusionMatrix) add(actual, predicted int) {
	cm.Counts[actual][predicted]++
}

func (cm *ConfusionMatrix) Total() int {
	total := 0
	for _, row := range cm.Counts {
		for _, count := range row {
			total += count
		}
	}
	return total
}

func (cm *ConfusionMatrix) Correct() int {
	correct := 0
	for i := range cm.Counts {
		correct += cm.Counts[i][i]
	}
	return correct
}

func (cm *ConfusionMatrix) RowTotal(row int) int {
	total := 0
	for _, count := range cm.Counts[row] {
		total += count
	}
	return total
}

func (cm *ConfusionMatrix) ColTotal(col int) int {
	total := 0
	for _, row := range cm.Counts {
		total += row[col]
	}
	return total
}

// Outcome holds the one-vs-rest counts of a single class.
type Outcome struct {
	TP int
	FN int
	TN int
	FP int
}

func (cm *ConfusionMatrix) Outcome(positive int) Outcome {
	var o Outcome
	for i, row := range cm.Counts {
		for j, count := range row {
			switch {
			case i == positive && j == positive:
				o.TP += count
			case i == positive:
				o.FN += count
			case j == positive:
				o.FP += count
			default:
				o.TN += count
			}
		}
	}
	return o
}

// Accuracy is the diagonal over the total, 0 for an empty matrix.
func Accuracy(cm *ConfusionMatrix) float64 {
	return safeDivide(float64(cm.Correct()), float64(cm.Total()))
}

// Evaluate discretizes and predicts every test row and accumulates the
// outcome. A predicted label the encoder does not know (an unfit model
// predicts "") is counted in the last column.
func Evaluate(classifier models.Classifier, d *preprocessing.Discretizer, enc *preprocessing.LabelEncoder, test []data.Observation) (*ConfusionMatrix, error) {
	rows, err := d.DiscretizeDataset(test)
	if err != nil {
		return nil, err
	}
	return EvaluateDiscretized(classifier, enc, rows)
}

func EvaluateDiscretized(classifier models.Classifier, enc *preprocessing.LabelEncoder, test []data.DiscretizedObservation) (*ConfusionMatrix, error) {
	if enc.Len() == 0 {
		return nil, fmt.Errorf("%w: label encoder has no classes", ErrUnknownClass)
	}

	actual, err := enc.Transform(lo.Map(test, func(row data.DiscretizedObservation, _ int) string {
		return row.Class
	}))
	if err != nil {
		return nil, fmt.Errorf("%w in test set: %w", ErrUnknownClass, err)
	}

	cm := NewConfusionMatrix(enc.Classes())
	last := enc.Len() - 1

	for i, row := range test {
		label, _ := classifier.Predict(row.AgeBin, row.IncomeBin)
		predicted, ok := enc.Index(label)
		if !ok {
			predicted = last
		}

		cm.add(actual[i], predicted)
	}

	return cm, nil
}
