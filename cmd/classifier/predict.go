package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/victortelles/ClasificadorBayesiano/internal/models"
	"github.com/victortelles/ClasificadorBayesiano/internal/persistence"
	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
	"github.com/victortelles/ClasificadorBayesiano/internal/report"
)

func newPredictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of one person from raw age and income",
		RunE:  runPredict,
	}
	cmd.Flags().String("age", "", "Age in years")
	cmd.Flags().String("income", "", "Income")
	cmd.Flags().String("model", "", "Saved model bundle; fits on the dataset when empty")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func runPredict(cmd *cobra.Command, _ []string) error {
	ageFlag, _ := cmd.Flags().GetString("age")
	incomeFlag, _ := cmd.Flags().GetString("income")

	age, err := decimal.NewFromString(ageFlag)
	if err != nil {
		return fmt.Errorf("invalid age %q: %w", ageFlag, err)
	}
	income, err := decimal.NewFromString(incomeFlag)
	if err != nil {
		return fmt.Errorf("invalid income %q: %w", incomeFlag, err)
	}

	model, discretizer, err := resolveModel(cmd)
	if err != nil {
		return err
	}

	predictor := models.NewPredictor(model)
	prediction, err := predictor.PredictValue(discretizer, age, income)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(cmd.OutOrStdout())
	printer.Evidence(predictor.Breakdown(prediction.AgeBin, prediction.IncomeBin))
	printer.Prediction(prediction.Class, prediction.Probability)
	return nil
}

func resolveModel(cmd *cobra.Command) (*models.ProbabilityModel, *preprocessing.Discretizer, error) {
	if path, _ := cmd.Flags().GetString("model"); path != "" {
		bundle, err := persistence.LoadModelBundle(path)
		if err != nil {
			return nil, nil, err
		}
		return bundle.Restore()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	_, discretizer, rows, err := loadDiscretized(cfg)
	if err != nil {
		return nil, nil, err
	}
	model := models.FitOrdered(rows, discretizer.AgeBins(), discretizer.IncomeBins(), cfg.Classes)
	return model, discretizer, nil
}
