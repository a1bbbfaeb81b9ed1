package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/soilsense/internal/analysis"
	"github.com/abhisek/soilsense/internal/batch"
	"github.com/abhisek/soilsense/internal/report"
	"github.com/abhisek/soilsense/internal/soil"
)

// sampleFlags maps analyze flags to the sample fields they set.
var sampleFlags = []struct {
	name  string
	param soil.Parameter
	usage string
}{
	{"ph", soil.ParameterPH, "Soil pH"},
	{"temp", soil.ParameterTemperature, "Soil temperature in °C"},
	{"moisture", soil.ParameterMoisture, "Moisture in percent"},
	{"ec", soil.ParameterEC, "Electrical conductivity in dS/m"},
	{"oc", soil.ParameterOrganicCarbon, "Organic carbon in percent"},
}

func newAnalyzeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one soil sample given as flags",
		Long: "Analyze one soil sample. Flags that are not given take the configured defaults\n" +
			"(pH 6.5, 25 °C, 50% moisture, EC 1.2, OC 2.2%, loam).",
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	for _, f := range sampleFlags {
		c.Flags().Float64(f.name, 0, f.usage)
	}
	c.Flags().String("soil-type", "", "Soil type: clay, sandy, loam, silt, peat or chalk")
	c.Flags().Uint64("seed", 0, "Noise seed for reproducible output (0 seeds from the clock)")
	c.Flags().StringP("format", "o", "text", "Output format: text, json or yaml")
	return c
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(mustString(cmd, "format"))
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	in := cfg.Defaults.Input()
	for _, f := range sampleFlags {
		if cmd.Flags().Changed(f.name) {
			v, _ := cmd.Flags().GetFloat64(f.name)
			in = in.With(f.param, v)
		}
	}
	if cmd.Flags().Changed("soil-type") {
		in.SoilType = soil.ParseSoilType(mustString(cmd, "soil-type"))
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	engine := analysis.NewEngine(analysis.Config{Seed: seed})
	runner := batch.NewRunner(engine, logger, batch.Config{Workers: 1})
	return report.WriteOne(cmd.OutOrStdout(), format, runner.Analyze(in))
}

func mustString(cmd *cobra.Command, name string) string {
	s, _ := cmd.Flags().GetString(name)
	return s
}
