package evaluation

import (
	"fmt"
	"math"
)

// Sensitivity is TP/(TP+FN), 0 when nothing was actually positive.
func Sensitivity(tp, fn int) float64 {
	return safeDivide(float64(tp), float64(tp+fn))
}

// Specificity is TN/(TN+FP), 0 when nothing was actually negative.
func Specificity(tn, fp int) float64 {
	return safeDivide(float64(tn), float64(tn+fp))
}

func Precision(tp, fp int) float64 {
	return safeDivide(float64(tp), float64(tp+fp))
}

func F1(precision, recall float64) float64 {
	return safeDivide(2*precision*recall, precision+recall)
}

type ClassificationMetrics struct {
	Accuracy         float64                 `json:"accuracy"`
	BalancedAccuracy float64                 `json:"balanced_accuracy"`
	MacroPrecision   float64                 `json:"macro_precision"`
	MacroRecall      float64                 `json:"macro_recall"`
	MacroF1          float64                 `json:"macro_f1"`
	PerClassMetrics  map[string]ClassMetrics `json:"per_class_metrics"`
	ConfusionMatrix  [][]int                 `json:"confusion_matrix"`
	Classes          []string                `json:"classes"`
	NumSamples       int                     `json:"num_samples"`
}

type ClassMetrics struct {
	Precision   float64 `json:"precision"`
	Recall      float64 `json:"recall"`
	F1Score     float64 `json:"f1_score"`
	Specificity float64 `json:"specificity"`
	Support     int     `json:"support"`
	Outcome     Outcome `json:"outcome"`
}

// CalculateMetrics derives one-vs-rest metrics for every class of cm.
func CalculateMetrics(cm *ConfusionMatrix) *ClassificationMetrics {
	numClasses := len(cm.Labels)
	perClass := make(map[string]ClassMetrics, numClasses)

	var macroPrec, macroRec, macroF1 float64
	for i, class := range cm.Labels {
		o := cm.Outcome(i)

		precision := Precision(o.TP, o.FP)
		recall := Sensitivity(o.TP, o.FN)
		perClass[class] = ClassMetrics{
			Precision:   precision,
			Recall:      recall,
			F1Score:     F1(precision, recall),
			Specificity: Specificity(o.TN, o.FP),
			Support:     cm.RowTotal(i),
			Outcome:     o,
		}

		macroPrec += precision
		macroRec += recall
		macroF1 += perClass[class].F1Score
	}

	matrix := make([][]int, numClasses)
	for i, row := range cm.Counts {
		matrix[i] = append([]int(nil), row...)
	}

	return &ClassificationMetrics{
		Accuracy:         Accuracy(cm),
		BalancedAccuracy: safeDivide(macroRec, float64(numClasses)),
		MacroPrecision:   safeDivide(macroPrec, float64(numClasses)),
		MacroRecall:      safeDivide(macroRec, float64(numClasses)),
		MacroF1:          safeDivide(macroF1, float64(numClasses)),
		PerClassMetrics:  perClass,
		ConfusionMatrix:  matrix,
		Classes:          append([]string(nil), cm.Labels...),
		NumSamples:       cm.Total(),
	}
}

func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0.0
	}
	result := numerator / denominator
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0.0
	}
	return result
}

func (m *ClassificationMetrics) FormatMetrics() string {
	result := fmt.Sprintf("Accuracy: %.4f\n", m.Accuracy)
	result += fmt.Sprintf("Balanced Accuracy: %.4f\n", m.BalancedAccuracy)
	result += fmt.Sprintf("Macro Avg - Precision: %.4f, Recall: %.4f, F1: %.4f\n",
		m.MacroPrecision, m.MacroRecall, m.MacroF1)
	for _, class := range m.Classes {
		c := m.PerClassMetrics[class]
		result += fmt.Sprintf("%s - Sensitivity: %.4f, Specificity: %.4f, Support: %d\n",
			class, c.Recall, c.Specificity, c.Support)
	}
	return result
}
