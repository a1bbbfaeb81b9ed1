// Package batch analyzes many soil samples concurrently.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/soilsense/internal/analysis"
	"github.com/abhisek/soilsense/internal/soil"
)

// Report pairs one analyzed sample with its result.
type Report struct {
	ID     string          `json:"id" yaml:"id"`
	Index  int             `json:"index" yaml:"index"`
	Input  soil.Input      `json:"input" yaml:"input"`
	Result analysis.Result `json:"result" yaml:"result"`
}

// ErrRecord wraps a failure for the sample at Index.
type ErrRecord struct {
	Index int
	Err   error
}

func (e *ErrRecord) Error() string {
	return fmt.Sprintf("sample %d: %v", e.Index, e.Err)
}

func (e *ErrRecord) Unwrap() error { return e.Err }

// Config controls a Runner.
type Config struct {
	// Workers bounds the number of samples analyzed at once.
	Workers int
}

// DefaultConfig returns a Config with 4 workers.
func DefaultConfig() Config {
	return Config{Workers: 4}
}

// Runner fans samples out to a Predictor.
type Runner struct {
	predictor analysis.Predictor
	logger    *zap.Logger
	cfg       Config
	newID     func() string
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(p analysis.Predictor, logger *zap.Logger, cfg Config) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Runner{
		predictor: p,
		logger:    logger,
		cfg:       cfg,
		newID:     func() string { return uuid.New().String() },
	}
}

// Analyze runs a single sample.
func (r *Runner) Analyze(in soil.Input) Report {
	return r.analyze(0, in)
}

// Run analyzes every sample and returns reports in input order. It stops
// scheduling new samples once ctx is done and returns the context error
// wrapped in ErrRecord for the first sample that was not analyzed.
func (r *Runner) Run(ctx context.Context, inputs []soil.Input) ([]Report, error) {
	reports := make([]Report, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i, in := range inputs {
		if err := gctx.Err(); err != nil {
			_ = g.Wait()
			return nil, &ErrRecord{Index: i, Err: err}
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return &ErrRecord{Index: i, Err: err}
			}
			reports[i] = r.analyze(i, in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("batch complete",
		zap.Int("samples", len(inputs)),
		zap.Int("workers", r.cfg.Workers))
	return reports, nil
}

func (r *Runner) analyze(index int, in soil.Input) Report {
	start := time.Now()
	id := r.newID()
	res := r.predictor.Predict(in)

	r.logger.Debug("sample analyzed",
		zap.String("analysis_id", id),
		zap.Int("index", index),
		zap.String("soil_type", string(in.Normalized().SoilType)),
		zap.String("suitability", string(res.Suitability)),
		zap.Int("risk_count", res.RiskCount()),
		zap.Int("recommendations", len(res.Recommendations)),
		zap.Duration("duration", time.Since(start)))

	if inc := res.Inconsistencies(); len(inc) > 0 {
		r.logger.Debug("recommendations issued despite low risk",
			zap.String("analysis_id", id),
			zap.Any("categories", inc))
	}

	return Report{ID: id, Index: index, Input: in, Result: res}
}
