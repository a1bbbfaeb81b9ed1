// Package config loads soilsense settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/soilsense/internal/logging"
	"github.com/abhisek/soilsense/internal/soil"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "SOILSENSE_CONFIG"
	EnvSeed       = "SOILSENSE_SEED"
	EnvLogLevel   = "SOILSENSE_LOG_LEVEL"
	EnvLogFormat  = "SOILSENSE_LOG_FORMAT"
	EnvWorkers    = "SOILSENSE_WORKERS"
)

// Config holds all soilsense configuration.
type Config struct {
	// Seed seeds the analysis noise. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`

	// Workers bounds concurrent analyses in batch mode.
	Workers int `yaml:"workers"`

	// AnalysisDelay is the artificial processing time the TUI shows
	// before revealing a result.
	AnalysisDelay time.Duration `yaml:"analysis_delay"`

	// Defaults fill fields missing from submitted samples.
	Defaults InputDefaults `yaml:"defaults"`

	Logging logging.Config `yaml:"logging"`
}

// InputDefaults mirrors soil.Input with YAML keys.
type InputDefaults struct {
	PH                     float64 `yaml:"ph"`
	TemperatureC           float64 `yaml:"temperature"`
	MoisturePercent        float64 `yaml:"moisture"`
	ElectricalConductivity float64 `yaml:"ec"`
	OrganicCarbonPercent   float64 `yaml:"organic_carbon"`
	SoilType               string  `yaml:"soil_type"`
}

// Input converts the defaults to a soil.Input.
func (d InputDefaults) Input() soil.Input {
	return soil.Input{
		PH:                     d.PH,
		TemperatureC:           d.TemperatureC,
		MoisturePercent:        d.MoisturePercent,
		ElectricalConductivity: d.ElectricalConductivity,
		OrganicCarbonPercent:   d.OrganicCarbonPercent,
		SoilType:               soil.ParseSoilType(d.SoilType),
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	in := soil.DefaultInput()
	return Config{
		Workers:       4,
		AnalysisDelay: 1500 * time.Millisecond,
		Defaults: InputDefaults{
			PH:                     in.PH,
			TemperatureC:           in.TemperatureC,
			MoisturePercent:        in.MoisturePercent,
			ElectricalConductivity: in.ElectricalConductivity,
			OrganicCarbonPercent:   in.OrganicCarbonPercent,
			SoilType:               string(in.SoilType),
		},
		Logging: logging.DefaultConfig(),
	}
}

// ErrInvalidConfig reports a config file or variable that could not be
// used.
type ErrInvalidConfig struct {
	Key string
	Err error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Key, e.Err)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.Err }

// Load builds the configuration: defaults, then the YAML file at path (or
// $SOILSENSE_CONFIG when path is empty), then environment overrides. A
// missing file is only an error when path was given explicitly.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return cfg, err
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &ErrInvalidConfig{Key: path, Err: err}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return &ErrInvalidConfig{Key: EnvSeed, Err: err}
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ErrInvalidConfig{Key: EnvWorkers, Err: err}
		}
		cfg.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return &ErrInvalidConfig{Key: "workers", Err: fmt.Errorf("must be at least 1, got %d", c.Workers)}
	}
	if c.AnalysisDelay < 0 {
		return &ErrInvalidConfig{Key: "analysis_delay", Err: fmt.Errorf("must not be negative, got %s", c.AnalysisDelay)}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ErrInvalidConfig{Key: "logging.level", Err: err}
	}
	return nil
}
