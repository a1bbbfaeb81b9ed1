package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/soilsense/internal/analysis"
	"github.com/abhisek/soilsense/internal/soil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func samples(n int) []soil.Input {
	out := make([]soil.Input, n)
	for i := range out {
		in := soil.DefaultInput()
		in.PH = 4 + float64(i%10)*0.5
		out[i] = in
	}
	return out
}

func TestRun_PreservesOrder(t *testing.T) {
	// The fake encodes the input pH in the confidence field so order can be
	// checked without depending on noise.
	p := analysis.PredictorFunc(func(in soil.Input) analysis.Result {
		return analysis.Result{Confidence: in.PH}
	})
	r := NewRunner(p, nil, Config{Workers: 3})

	inputs := samples(25)
	reports, err := r.Run(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, reports, len(inputs))

	ids := map[string]bool{}
	for i, rep := range reports {
		assert.Equal(t, i, rep.Index)
		assert.Equal(t, inputs[i], rep.Input)
		assert.Equal(t, inputs[i].PH, rep.Result.Confidence)
		_, err := uuid.Parse(rep.ID)
		assert.NoError(t, err)
		ids[rep.ID] = true
	}
	assert.Len(t, ids, len(inputs), "analysis IDs must be unique")
}

func TestRun_RespectsWorkerLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	p := analysis.PredictorFunc(func(in soil.Input) analysis.Result {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		<-release
		inFlight.Add(-1)
		return analysis.Result{}
	})
	r := NewRunner(p, nil, Config{Workers: 2})

	done := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), samples(6))
		done <- err
	}()
	close(release)
	require.NoError(t, <-done)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(analysis.NewEngine(analysis.Config{Seed: 1}), nil, DefaultConfig())
	_, err := r.Run(ctx, samples(10))
	require.Error(t, err)

	var recErr *ErrRecord
	require.True(t, errors.As(err, &recErr))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RealEngineBounds(t *testing.T) {
	r := NewRunner(analysis.NewEngine(analysis.Config{Seed: 9}), zap.NewNop(), Config{Workers: 8})
	reports, err := r.Run(context.Background(), samples(200))
	require.NoError(t, err)
	for _, rep := range reports {
		res := rep.Result
		for _, v := range []float64{res.Nitrogen, res.Phosphorus, res.Potassium, res.SoilHealth, res.FertilityIndex} {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestRun_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := NewRunner(analysis.NewEngine(analysis.Config{Seed: 4}), zap.New(core), Config{Workers: 2})

	_, err := r.Run(context.Background(), samples(3))
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("sample analyzed").Len())
	done := logs.FilterMessage("batch complete").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(3), done[0].ContextMap()["samples"])
}

func TestAnalyze_Single(t *testing.T) {
	r := NewRunner(analysis.NewEngine(analysis.Config{Seed: 2}), nil, Config{})
	rep := r.Analyze(soil.DefaultInput())
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, soil.DefaultInput(), rep.Input)
	assert.NotEmpty(t, rep.Result.Risks)
}
