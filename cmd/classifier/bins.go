package main

import (
	"github.com/spf13/cobra"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
	"github.com/victortelles/ClasificadorBayesiano/internal/experiment"
	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
	"github.com/victortelles/ClasificadorBayesiano/internal/report"
)

func newBinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bins",
		Short: "Show the bin ranges and how the dataset falls into them",
		RunE:  runBins,
	}
}

func runBins(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	observations, discretizer, rows, err := loadDiscretized(cfg)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(cmd.OutOrStdout())
	printer.Dataset(data.NewDataValidator().GetDatasetStats(observations))
	printer.Bins(discretizer, discretizer.Distribution(rows))
	return nil
}

func loadDiscretized(cfg experiment.Config) ([]data.Observation, *preprocessing.Discretizer, []data.DiscretizedObservation, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	defer logger.Sync()

	observations, err := experiment.NewRunner(cfg, logger).LoadData(cfg.Data)
	if err != nil {
		return nil, nil, nil, err
	}
	validator := data.NewDataValidator()
	if err := validator.ValidateDataset(observations); err != nil {
		return nil, nil, nil, err
	}
	if err := validator.ValidateLabels(observations, cfg.Classes); err != nil {
		return nil, nil, nil, err
	}

	discretizer, err := preprocessing.NewDiscretizer(cfg.BinConfig())
	if err != nil {
		return nil, nil, nil, err
	}
	rows, err := discretizer.DiscretizeDataset(observations)
	if err != nil {
		return nil, nil, nil, err
	}
	return observations, discretizer, rows, nil
}
