package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
	"github.com/victortelles/ClasificadorBayesiano/internal/models"
	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
)

// stubClassifier predicts from a fixed function of the age bin.
type stubClassifier struct {
	classes []string
	predict func(ageBin, incomeBin int) string
}

func (s stubClassifier) Predict(ageBin, incomeBin int) (string, float64) {
	return s.predict(ageBin, incomeBin), 1
}

func (s stubClassifier) Classes() []string {
	return s.classes
}

// balanced has two Walks rows in age bin 0 and two Drives rows in age bin 2.
func balanced() []data.DiscretizedObservation {
	return []data.DiscretizedObservation{
		{AgeBin: 0, IncomeBin: 1, Class: "Walks"},
		{AgeBin: 0, IncomeBin: 1, Class: "Walks"},
		{AgeBin: 2, IncomeBin: 4, Class: "Drives"},
		{AgeBin: 2, IncomeBin: 4, Class: "Drives"},
	}
}

func TestAccuracyPerfectPredictor(t *testing.T) {
	perfect := stubClassifier{predict: func(ageBin, _ int) string {
		if ageBin == 0 {
			return "Walks"
		}
		return "Drives"
	}}

	cm, err := EvaluateDiscretized(perfect, preprocessing.NewLabelEncoder("Walks", "Drives"), balanced())
	require.NoError(t, err)
	assert.Equal(t, 1.0, Accuracy(cm))
	assert.Equal(t, [][]int{{2, 0}, {0, 2}}, cm.Counts)
}

func TestAccuracyAlwaysWrongPredictor(t *testing.T) {
	wrong := stubClassifier{predict: func(ageBin, _ int) string {
		if ageBin == 0 {
			return "Drives"
		}
		return "Walks"
	}}

	cm, err := EvaluateDiscretized(wrong, preprocessing.NewLabelEncoder("Walks", "Drives"), balanced())
	require.NoError(t, err)
	assert.Equal(t, 0.0, Accuracy(cm))
}

func TestAccuracyEmptyMatrix(t *testing.T) {
	assert.Equal(t, 0.0, Accuracy(NewConfusionMatrix([]string{"Walks", "Drives"})))
}

func TestConfusionTotals(t *testing.T) {
	rows := []data.DiscretizedObservation{
		{AgeBin: 0, Class: "Walks"},
		{AgeBin: 1, Class: "Walks"},
		{AgeBin: 2, Class: "Walks"},
		{AgeBin: 1, Class: "Drives"},
		{AgeBin: 2, Class: "Drives"},
	}
	classifier := stubClassifier{predict: func(ageBin, _ int) string {
		if ageBin == 0 {
			return "Walks"
		}
		return "Drives"
	}}

	cm, err := EvaluateDiscretized(classifier, preprocessing.NewLabelEncoder("Walks", "Drives"), rows)
	require.NoError(t, err)

	assert.Equal(t, 3, cm.RowTotal(0))
	assert.Equal(t, 2, cm.RowTotal(1))
	assert.Equal(t, 1, cm.ColTotal(0))
	assert.Equal(t, 4, cm.ColTotal(1))
	assert.Equal(t, 5, cm.Total())
	assert.Equal(t, 3, cm.Correct())
	assert.InDelta(t, 0.6, Accuracy(cm), 1e-12)
}

func TestOutcome(t *testing.T) {
	cm := NewConfusionMatrix([]string{"Walks", "Drives"})
	cm.Counts = [][]int{{8, 2}, {3, 7}}

	assert.Equal(t, Outcome{TP: 8, FN: 2, TN: 7, FP: 3}, cm.Outcome(0))
	assert.Equal(t, Outcome{TP: 7, FN: 3, TN: 8, FP: 2}, cm.Outcome(1))
}

func TestEvaluateUnfitModelUsesLastColumn(t *testing.T) {
	predictor := models.NewPredictor(nil)

	cm, err := EvaluateDiscretized(predictor, preprocessing.NewLabelEncoder("Walks", "Drives"), balanced())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2}, {0, 2}}, cm.Counts)
}

func TestEvaluateUnknownActualClass(t *testing.T) {
	rows := append(balanced(), data.DiscretizedObservation{Class: "Bikes"})
	_, err := EvaluateDiscretized(models.NewPredictor(nil), preprocessing.NewLabelEncoder("Walks", "Drives"), rows)
	assert.ErrorIs(t, err, ErrUnknownClass)
	assert.ErrorIs(t, err, preprocessing.ErrUnknownLabel)
	assert.ErrorContains(t, err, `"Bikes" at position 4`)
}

func TestEvaluateDiscretizesRawRows(t *testing.T) {
	d, err := preprocessing.NewDiscretizer(preprocessing.DefaultBinConfig())
	require.NoError(t, err)

	predictor := models.NewPredictor(models.Fit(balanced(), d.AgeBins(), d.IncomeBins()))
	test := []data.Observation{
		data.NewObservation(22, 25000, "Walks"),
		data.NewObservation(70, 55000, "Drives"),
	}

	cm, err := Evaluate(predictor, d, preprocessing.NewLabelEncoder("Walks", "Drives"), test)
	require.NoError(t, err)
	assert.Equal(t, 1.0, Accuracy(cm))

	_, err = Evaluate(predictor, d, preprocessing.NewLabelEncoder("Walks", "Drives"),
		[]data.Observation{data.NewObservation(5, 25000, "Walks")})
	assert.ErrorIs(t, err, preprocessing.ErrOutOfDomain)
}

func TestConfusionMatrixIndexesActualByPredicted(t *testing.T) {
	cm := NewConfusionMatrix([]string{"Walks", "Drives"})
	cm.add(0, 1)
	cm.add(0, 1)
	cm.add(1, 0)

	assert.Equal(t, [][]int{{0, 2}, {1, 0}}, cm.Counts)
	assert.Equal(t, Outcome{TP: 0, FN: 2, TN: 0, FP: 1}, cm.Outcome(0))
}
