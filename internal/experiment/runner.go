package experiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
	"github.com/victortelles/ClasificadorBayesiano/internal/evaluation"
	"github.com/victortelles/ClasificadorBayesiano/internal/models"
	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
)

type ExperimentRunner struct {
	Config Config
	logger *zap.SugaredLogger
}

func NewRunner(cfg Config, logger *zap.SugaredLogger) *ExperimentRunner {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ExperimentRunner{Config: cfg, logger: logger}
}

type ExperimentResult struct {
	Dataset      string
	Discretizer  *preprocessing.Discretizer
	Encoder      *preprocessing.LabelEncoder
	Model        *models.ProbabilityModel
	Predictor    *models.Predictor
	Matrix       *evaluation.ConfusionMatrix
	Metrics      *evaluation.ClassificationMetrics
	Accuracy     float64
	TrainSize    int
	TestSize     int
	TrainingTime time.Duration
}

// Sensitivity and Specificity treat the first configured class as positive.
func (r *ExperimentResult) Sensitivity() float64 {
	o := r.Matrix.Outcome(0)
	return evaluation.Sensitivity(o.TP, o.FN)
}

func (r *ExperimentResult) Specificity() float64 {
	o := r.Matrix.Outcome(0)
	return evaluation.Specificity(o.TN, o.FP)
}

func (r *ExperimentRunner) LoadData(filename string) ([]data.Observation, error) {
	reader, err := data.NewCSVReader(filename)
	if err != nil {
		return nil, err
	}
	observations, err := reader.LoadData()
	if err != nil {
		return nil, err
	}
	r.logger.Infow("dataset loaded", "file", filename, "samples", len(observations), "skipped", reader.Skipped())
	return observations, nil
}

func (r *ExperimentRunner) RunFile(filename string) (*ExperimentResult, error) {
	observations, err := r.LoadData(filename)
	if err != nil {
		return nil, err
	}
	result, err := r.Run(observations)
	if err != nil {
		return nil, err
	}
	result.Dataset = filename
	return result, nil
}

// Run splits the observations, fits the model on the training part and
// evaluates it on the test part.
func (r *ExperimentRunner) Run(observations []data.Observation) (*ExperimentResult, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}

	validator := data.NewDataValidator()
	if err := validator.ValidateDataset(observations); err != nil {
		return nil, fmt.Errorf("data validation failed: %w", err)
	}
	if err := validator.ValidateLabels(observations, r.Config.Classes); err != nil {
		return nil, fmt.Errorf("data validation failed: %w", err)
	}

	discretizer, err := preprocessing.NewDiscretizer(r.Config.BinConfig())
	if err != nil {
		return nil, err
	}
	encoder := preprocessing.NewLabelEncoder(r.Config.Classes...)

	splitter := evaluation.NewTrainTestSplitter(r.Config.TestFraction, r.Config.Seed)
	train, test, err := splitter.Split(observations)
	if err != nil {
		return nil, err
	}
	r.logger.Infow("data split", "train", len(train), "test", len(test), "seed", r.Config.Seed)
	if len(train) == 0 || len(test) == 0 {
		r.logger.Warnw("empty partition", "train", len(train), "test", len(test))
	}

	trainRows, err := discretizer.DiscretizeDataset(train)
	if err != nil {
		return nil, fmt.Errorf("training set: %w", err)
	}

	startTime := time.Now()
	model := models.FitOrdered(trainRows, discretizer.AgeBins(), discretizer.IncomeBins(), encoder.Classes())
	trainingTime := time.Since(startTime)
	r.logger.Debugw("model fitted", "classes", model.Classes(), "priors", model.Priors(), "combinations", model.Combinations())

	predictor := models.NewPredictor(model)
	matrix, err := evaluation.Evaluate(predictor, discretizer, encoder, test)
	if err != nil {
		return nil, fmt.Errorf("test set: %w", err)
	}

	result := &ExperimentResult{
		Discretizer:  discretizer,
		Encoder:      encoder,
		Model:        model,
		Predictor:    predictor,
		Matrix:       matrix,
		Metrics:      evaluation.CalculateMetrics(matrix),
		Accuracy:     evaluation.Accuracy(matrix),
		TrainSize:    len(train),
		TestSize:     len(test),
		TrainingTime: trainingTime,
	}
	r.logger.Infow("evaluation finished", "accuracy", result.Accuracy, "correct", matrix.Correct(), "total", matrix.Total())

	return result, nil
}

// ExportResults writes one CSV row per class with its one-vs-rest metrics.
func (r *ExperimentRunner) ExportResults(result *ExperimentResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{
		"Dataset", "Seed", "TestFraction", "TrainSize", "TestSize", "Class",
		"TP", "FN", "TN", "FP", "Sensitivity", "Specificity", "Precision", "F1Score", "Accuracy",
	}); err != nil {
		return err
	}

	for i, class := range result.Matrix.Labels {
		m := result.Metrics.PerClassMetrics[class]
		o := result.Matrix.Outcome(i)
		if err := writer.Write([]string{
			result.Dataset,
			fmt.Sprintf("%d", r.Config.Seed),
			fmt.Sprintf("%.2f", r.Config.TestFraction),
			fmt.Sprintf("%d", result.TrainSize),
			fmt.Sprintf("%d", result.TestSize),
			class,
			fmt.Sprintf("%d", o.TP),
			fmt.Sprintf("%d", o.FN),
			fmt.Sprintf("%d", o.TN),
			fmt.Sprintf("%d", o.FP),
			fmt.Sprintf("%.4f", m.Recall),
			fmt.Sprintf("%.4f", m.Specificity),
			fmt.Sprintf("%.4f", m.Precision),
			fmt.Sprintf("%.4f", m.F1Score),
			fmt.Sprintf("%.4f", result.Accuracy),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
