package analysis

import (
	"math"

	"github.com/abhisek/soilsense/internal/soil"
)

// Confidence bounds. The confidence value is cosmetic and carries no
// statistical meaning.
const (
	ConfidenceMin  = 85.0
	ConfidenceSpan = 15.0
)

// Predictor analyzes one soil sample.
type Predictor interface {
	Predict(in soil.Input) Result
}

// Config controls an Engine.
type Config struct {
	// Seed seeds the stream that per-call noise generators are derived
	// from. Zero seeds from the clock.
	Seed uint64
}

// DefaultConfig returns a clock-seeded configuration.
func DefaultConfig() Config {
	return Config{}
}

// Engine is the prediction entry point. It keeps no per-call state and is
// safe for concurrent use: every Predict call draws its noise from a
// generator that no other call sees.
type Engine struct {
	seeds *seedStream
}

var _ Predictor = (*Engine)(nil)

// NewEngine creates an Engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{seeds: newSeedStream(cfg.Seed)}
}

// Predict analyzes in with a fresh call-local noise source.
func (e *Engine) Predict(in soil.Input) Result {
	return PredictWith(in, NewSource(e.seeds.next()))
}

// PredictWith analyzes in, drawing nutrient noise and confidence from src.
// With a seeded src the result is reproducible.
func PredictWith(in soil.Input, src Source) Result {
	in = in.Normalized()

	n := Estimate(in, src)
	health := SoilHealth(in, n)
	fertility := FertilityIndex(n)

	return Result{
		Nutrients:       n,
		SoilHealth:      health,
		FertilityIndex:  fertility,
		Risks:           AssessRisks(in, n),
		Suitability:     SuitabilityFor(health, fertility),
		Confidence:      confidence(src),
		Recommendations: Recommend(in, n),
	}
}

// confidence returns a value in [85, 100) truncated to one decimal.
func confidence(src Source) float64 {
	c := ConfidenceMin + src.Float64()*ConfidenceSpan
	return math.Floor(c*10) / 10
}

// PredictorFunc adapts a function to the Predictor interface.
type PredictorFunc func(in soil.Input) Result

// Predict calls f(in).
func (f PredictorFunc) Predict(in soil.Input) Result { return f(in) }
