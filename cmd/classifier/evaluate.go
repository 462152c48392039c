package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/victortelles/ClasificadorBayesiano/internal/experiment"
	"github.com/victortelles/ClasificadorBayesiano/internal/persistence"
	"github.com/victortelles/ClasificadorBayesiano/internal/report"
)

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Split the dataset, train on one part and evaluate on the other",
		RunE:  runEvaluate,
	}
	cmd.Flags().Int64("seed", 42, "Shuffle seed for the train/test split")
	cmd.Flags().Float64("test-fraction", 0.2, "Fraction of the dataset used for testing")
	cmd.Flags().Bool("save", true, "Save the model bundle and results under the output directory")
	return cmd
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	runner := experiment.NewRunner(cfg, logger)
	result, err := runner.RunFile(cfg.Data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := report.NewPrinter(out)
	fmt.Fprintf(out, "Train: %d  Test: %d  Seed: %d\n", result.TrainSize, result.TestSize, cfg.Seed)
	printer.Priors(result.Model)
	printer.Joint(result.Model)
	printer.Confusion(result.Matrix)
	printer.Metrics(result.Metrics)

	if save, _ := cmd.Flags().GetBool("save"); !save {
		return nil
	}

	timestamp := time.Now().Format("20060102_150405")
	expDir := filepath.Join(cfg.Output, fmt.Sprintf("experiment_%s", timestamp))
	if err := os.MkdirAll(expDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	resultsFile := filepath.Join(expDir, "experiment_results.csv")
	if err := runner.ExportResults(result, resultsFile); err != nil {
		logger.Warnw("failed to export results", "file", resultsFile, "error", err)
	} else {
		fmt.Fprintf(out, "%s Results saved to: %s\n", color.GreenString("✓"), resultsFile)
	}

	bundle := persistence.NewModelBundle(result.Model, result.Discretizer.Config())
	bundle.Metadata.Dataset = result.Dataset
	bundle.Metadata.Seed = cfg.Seed
	bundle.Metadata.TestFraction = cfg.TestFraction
	bundle.Metadata.TestSize = result.TestSize
	bundle.Metadata.Accuracy = result.Accuracy
	bundle.Metadata.Sensitivity = result.Sensitivity()
	bundle.Metadata.Specificity = result.Specificity()
	bundle.Metadata.TrainingTime = result.TrainingTime
	bundle.Metadata.Summary = result.Metrics.FormatMetrics()

	modelPath := filepath.Join(expDir, "bayes.model")
	if err := bundle.Save(modelPath); err != nil {
		return err
	}
	if err := bundle.SaveMetadata(filepath.Join(expDir, "bayes.txt")); err != nil {
		logger.Warnw("failed to write metadata", "error", err)
	}
	fmt.Fprintf(out, "%s Model saved to: %s\n", color.GreenString("✓"), modelPath)

	return nil
}
