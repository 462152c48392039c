package main

import (
	"github.com/spf13/cobra"

	"github.com/victortelles/ClasificadorBayesiano/internal/models"
	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
	"github.com/victortelles/ClasificadorBayesiano/internal/report"
)

func newTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Fit on the whole dataset and print prior and joint probability tables",
		RunE:  runTables,
	}
}

func runTables(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, discretizer, rows, err := loadDiscretized(cfg)
	if err != nil {
		return err
	}

	encoder := preprocessing.NewLabelEncoder(cfg.Classes...)
	model := models.FitOrdered(rows, discretizer.AgeBins(), discretizer.IncomeBins(), encoder.Classes())

	printer := report.NewPrinter(cmd.OutOrStdout())
	printer.Priors(model)
	printer.Joint(model)
	return nil
}
