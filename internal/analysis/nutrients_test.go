package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/soilsense/internal/soil"
)

// constSource always returns the same value.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// almostOne is the largest value a Source may return.
const almostOne = constSource(1 - 1e-12)

func TestEstimate_DefaultsWithoutNoise(t *testing.T) {
	got := Estimate(soil.DefaultInput(), constSource(0))

	assert.Equal(t, 34.9, got.Nitrogen)
	assert.Equal(t, 39.1, got.Phosphorus)
	assert.Equal(t, 47.3, got.Potassium)
}

func TestEstimate_NoiseBounds(t *testing.T) {
	in := soil.DefaultInput()
	lo := Estimate(in, constSource(0))
	hi := Estimate(in, almostOne)

	assert.InDelta(t, lo.Nitrogen+NitrogenNoise, hi.Nitrogen, 0.1)
	assert.InDelta(t, lo.Phosphorus+PhosphorusNoise, hi.Phosphorus, 0.1)
	assert.InDelta(t, lo.Potassium+PotassiumNoise, hi.Potassium, 0.1)

	src := NewSource(7)
	for i := 0; i < 500; i++ {
		got := Estimate(in, src)
		require.GreaterOrEqual(t, got.Nitrogen, lo.Nitrogen)
		require.LessOrEqual(t, got.Nitrogen, hi.Nitrogen)
		require.GreaterOrEqual(t, got.Phosphorus, lo.Phosphorus)
		require.LessOrEqual(t, got.Phosphorus, hi.Phosphorus)
		require.GreaterOrEqual(t, got.Potassium, lo.Potassium)
		require.LessOrEqual(t, got.Potassium, hi.Potassium)
	}
}

func TestEstimate_SoilTypeModifiers(t *testing.T) {
	base := soil.DefaultInput()
	loam := Estimate(base, constSource(0))

	tests := []struct {
		soilType soil.SoilType
		want     Nutrients
	}{
		// Potassium on clay also gets the 1.2 clay factor of the base formula.
		{soil.Clay, Nutrients{Nitrogen: 38.4, Phosphorus: 35.2, Potassium: 56.8}},
		{soil.Sandy, Nutrients{Nitrogen: 28.0, Phosphorus: 43.0, Potassium: 42.6}},
		{soil.Loam, loam},
		{soil.Silt, Nutrients{Nitrogen: 31.4, Phosphorus: 39.1, Potassium: 52.0}},
		{soil.Peat, Nutrients{Nitrogen: 41.9, Phosphorus: 31.3, Potassium: 37.8}},
		{soil.Chalk, Nutrients{Nitrogen: 24.5, Phosphorus: 46.9, Potassium: 42.6}},
	}

	for _, tt := range tests {
		t.Run(string(tt.soilType), func(t *testing.T) {
			in := base
			in.SoilType = tt.soilType
			got := Estimate(in, constSource(0))
			assert.InDelta(t, tt.want.Nitrogen, got.Nitrogen, 1e-9)
			assert.InDelta(t, tt.want.Phosphorus, got.Phosphorus, 1e-9)
			assert.InDelta(t, tt.want.Potassium, got.Potassium, 1e-9)
		})
	}
}

func TestEstimate_UnknownSoilTypeUsesLoam(t *testing.T) {
	for _, st := range []soil.SoilType{"", "volcanic", "LOAMY"} {
		in := soil.DefaultInput()
		in.SoilType = st
		loamIn := soil.DefaultInput()

		// Same seed on both sides, so the noise draws match.
		got := Estimate(in, NewSource(99))
		want := Estimate(loamIn, NewSource(99))
		assert.Equal(t, want, got, "soil type %q", st)
	}
}

func TestModifierFor_AllSoilTypes(t *testing.T) {
	loam := Modifier{N: 1, P: 1, K: 1}
	for _, st := range soil.AllSoilTypes() {
		m := ModifierFor(st)
		if st == soil.Loam {
			assert.Equal(t, loam, m)
			continue
		}
		assert.NotEqual(t, loam, m, "soil type %q should have its own modifier", st)
	}
	assert.Equal(t, loam, ModifierFor("basalt"))
}

func TestEstimate_ExtremeInputsStayClamped(t *testing.T) {
	inputs := []soil.Input{
		{PH: 20, TemperatureC: 80, MoisturePercent: 500, ElectricalConductivity: 100, OrganicCarbonPercent: 100, SoilType: soil.Peat},
		{PH: -3, TemperatureC: -40, MoisturePercent: -10, ElectricalConductivity: -5, OrganicCarbonPercent: -2, SoilType: soil.Chalk},
		{PH: 0, TemperatureC: 0, MoisturePercent: 0, ElectricalConductivity: 0, OrganicCarbonPercent: 0, SoilType: soil.Sandy},
		{PH: 14, TemperatureC: 1e9, MoisturePercent: 1e9, ElectricalConductivity: 1e9, OrganicCarbonPercent: 1e9, SoilType: soil.Clay},
		{PH: math.NaN(), TemperatureC: 25, MoisturePercent: 50, ElectricalConductivity: 1.2, OrganicCarbonPercent: 2.2},
	}

	for _, in := range inputs {
		for _, src := range []Source{constSource(0), almostOne, NewSource(3)} {
			got := Estimate(in, src)
			for name, v := range map[string]float64{"nitrogen": got.Nitrogen, "phosphorus": got.Phosphorus, "potassium": got.Potassium} {
				if v < 0 || v > 100 || math.IsNaN(v) {
					t.Errorf("%s = %v out of [0,100] for input %+v", name, v, in)
				}
			}
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1, 0, 100))
	assert.Equal(t, 100.0, clamp(101, 0, 100))
	assert.Equal(t, 42.0, clamp(42, 0, 100))
	assert.Equal(t, 0.0, clamp(math.NaN(), 0, 100))
}
