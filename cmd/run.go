package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/soilsense/internal/analysis"
	"github.com/abhisek/soilsense/internal/app"
	"github.com/abhisek/soilsense/internal/batch"
)

// runApp builds the engine and launches the TUI. The terminal owns
// stderr, so logs go to --log-file or nowhere.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		cfg.Logging.OutputPath = path
		if logger, err = newLogger(cmd, cfg); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	engine := analysis.NewEngine(analysis.Config{Seed: cfg.Seed})
	runner := batch.NewRunner(engine, logger, batch.Config{Workers: 1})
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	logger.Info("starting TUI", zap.Duration("analysis_delay", cfg.AnalysisDelay))
	return app.Run(app.Options{
		Analyzer:   runner,
		Delay:      cfg.AnalysisDelay,
		Defaults:   cfg.Defaults.Input(),
		Logger:     logger,
		SkipSplash: noSplash,
	})
}
