package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/victortelles/ClasificadorBayesiano/internal/experiment"
	"github.com/victortelles/ClasificadorBayesiano/internal/logging"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "classifier",
		Short:         "Bayesian walks/drives classifier over age and income bins",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to YAML configuration file")
	root.PersistentFlags().String("data", "", "Path to dataset CSV (overrides config)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newEvaluateCommand())
	root.AddCommand(newTablesCommand())
	root.AddCommand(newPredictCommand())
	root.AddCommand(newBinsCommand())

	return root
}

// loadConfig resolves the configuration: defaults, then --config, then flags.
func loadConfig(cmd *cobra.Command) (experiment.Config, error) {
	cfg := experiment.DefaultConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := experiment.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if dataFile, _ := cmd.Flags().GetString("data"); dataFile != "" {
		cfg.Data = dataFile
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("test-fraction") {
		cfg.TestFraction, _ = cmd.Flags().GetFloat64("test-fraction")
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg experiment.Config) (*zap.SugaredLogger, error) {
	return logging.NewLogger("classifier", cfg.LogLevel)
}
