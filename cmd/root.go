package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/soilsense/internal/config"
	"github.com/abhisek/soilsense/internal/logging"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "soilsense",
		Short: "Soil analysis and amendment recommendations",
		Long: "SoilSense estimates soil nutrients from field readings (pH, temperature, moisture,\n" +
			"EC, organic carbon, soil type) and recommends amendments.\n\n" +
			"Run without arguments for the interactive terminal UI.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to YAML config file (overrides SOILSENSE_CONFIG env var)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().String("log-format", "", "Log encoding: json or console (overrides config)")

	root.Flags().String("log-file", "", "Write TUI logs to this file (logging is off otherwise)")
	root.Flags().Bool("no-splash", false, "Skip the welcome animation")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command. Ctrl+C cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves configuration from --config, the environment and
// --log-format.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if f, _ := cmd.Flags().GetString("log-format"); f != "" {
		cfg.Logging.Format = f
	}
	return cfg, nil
}

// newLogger builds the command logger from cfg and --verbose.
func newLogger(cmd *cobra.Command, cfg config.Config) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(cfg.Logging, verbose)
}
