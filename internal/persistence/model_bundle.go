package persistence

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/victortelles/ClasificadorBayesiano/internal/models"
	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
)

// ModelBundle is everything needed to predict again without the training data.
type ModelBundle struct {
	Model     models.ModelSnapshot
	Bins      preprocessing.BinConfig
	Metadata  BundleMetadata
	CreatedAt time.Time
}

type BundleMetadata struct {
	Dataset      string
	Seed         int64
	TestFraction float64
	TrainSize    int
	TestSize     int
	Accuracy     float64
	Sensitivity  float64
	Specificity  float64
	TrainingTime time.Duration
	Classes      []string
	Summary      string
}

func NewModelBundle(model *models.ProbabilityModel, bins preprocessing.BinConfig) *ModelBundle {
	return &ModelBundle{
		Model:     model.Snapshot(),
		Bins:      bins,
		CreatedAt: time.Now(),
		Metadata: BundleMetadata{
			TrainSize: model.TrainingSize(),
			Classes:   model.Classes(),
		},
	}
}

// Restore rebuilds the fitted model and its discretizer.
func (mb *ModelBundle) Restore() (*models.ProbabilityModel, *preprocessing.Discretizer, error) {
	discretizer, err := preprocessing.NewDiscretizer(mb.Bins)
	if err != nil {
		return nil, nil, fmt.Errorf("bundle bins: %w", err)
	}
	return models.FromSnapshot(mb.Model), discretizer, nil
}

func (mb *ModelBundle) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(mb); err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	return nil
}

func LoadModelBundle(filename string) (*ModelBundle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var bundle ModelBundle
	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}

	return &bundle, nil
}

func (mb *ModelBundle) SaveMetadata(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Model: bayes-joint\n")
	fmt.Fprintf(file, "Dataset: %s\n", mb.Metadata.Dataset)
	fmt.Fprintf(file, "Created: %s\n", mb.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(file, "Classes: %v\n", mb.Metadata.Classes)
	fmt.Fprintf(file, "Seed: %d\n", mb.Metadata.Seed)
	fmt.Fprintf(file, "Train/Test: %d/%d\n", mb.Metadata.TrainSize, mb.Metadata.TestSize)
	fmt.Fprintf(file, "Accuracy: %.4f\n", mb.Metadata.Accuracy)
	fmt.Fprintf(file, "Sensitivity: %.4f\n", mb.Metadata.Sensitivity)
	fmt.Fprintf(file, "Specificity: %.4f\n", mb.Metadata.Specificity)
	fmt.Fprintf(file, "Training Time: %v\n", mb.Metadata.TrainingTime)
	if mb.Metadata.Summary != "" {
		fmt.Fprintf(file, "\n%s", mb.Metadata.Summary)
	}

	return nil
}
