package analysis

import (
	"math"

	"github.com/abhisek/soilsense/internal/soil"
)

// Modifier scales the base nitrogen, phosphorus and potassium estimates
// for a soil type.
type Modifier struct {
	N, P, K float64
}

// ModifierFor returns the nutrient modifier for t. Unrecognized soil types
// get the loam modifier.
func ModifierFor(t soil.SoilType) Modifier {
	switch t {
	case soil.Clay:
		return Modifier{N: 1.1, P: 0.9, K: 1.0}
	case soil.Sandy:
		return Modifier{N: 0.8, P: 1.1, K: 0.9}
	case soil.Silt:
		return Modifier{N: 0.9, P: 1.0, K: 1.1}
	case soil.Peat:
		return Modifier{N: 1.2, P: 0.8, K: 0.8}
	case soil.Chalk:
		return Modifier{N: 0.7, P: 1.2, K: 0.9}
	default:
		return Modifier{N: 1.0, P: 1.0, K: 1.0}
	}
}

// Upper bounds (exclusive) of the uniform noise added to each base estimate.
const (
	NitrogenNoise   = 10.0
	PhosphorusNoise = 15.0
	PotassiumNoise  = 12.0
)

// Estimate derives nitrogen, phosphorus and potassium levels for in.
//
// Each estimate carries uniform noise drawn from src, so two calls with the
// same input are not expected to agree. Values are clamped to [0, 100] and
// rounded to one decimal.
func Estimate(in soil.Input, src Source) Nutrients {
	mod := ModifierFor(in.SoilType)
	return Nutrients{
		Nitrogen:   round1(clamp((nitrogenBase(in)+noise(src, NitrogenNoise))*mod.N, 0, 100)),
		Phosphorus: round1(clamp((phosphorusBase(in)+noise(src, PhosphorusNoise))*mod.P, 0, 100)),
		Potassium:  round1(clamp((potassiumBase(in)+noise(src, PotassiumNoise))*mod.K, 0, 100)),
	}
}

func nitrogenBase(in soil.Input) float64 {
	phFactor := 1 - 0.15*math.Abs(in.PH-6.75)
	tempFactor := 1 - 0.02*math.Abs(in.TemperatureC-25)
	moistFactor := 0.9
	if in.MoisturePercent > 40 && in.MoisturePercent < 70 {
		moistFactor = 1.1
	}
	return in.OrganicCarbonPercent * 15 * phFactor * tempFactor * moistFactor
}

func phosphorusBase(in soil.Input) float64 {
	phFactor := 1.2
	if in.PH >= 7 {
		phFactor = 1 - 0.1*(in.PH-7)
	}
	tempFactor := 0.9
	if in.TemperatureC > 20 {
		tempFactor = 1.1
	}
	return (in.OrganicCarbonPercent*8 + in.ElectricalConductivity*10) * phFactor * tempFactor
}

func potassiumBase(in soil.Input) float64 {
	phFactor := 0.9
	if in.PH > 6 && in.PH < 8 {
		phFactor = 1.1
	}
	clayFactor := 1.0
	if in.SoilType == soil.Clay {
		clayFactor = 1.2
	}
	return (in.ElectricalConductivity*15 + in.MoisturePercent*0.5) * phFactor * clayFactor
}

func noise(src Source, upper float64) float64 {
	return src.Float64() * upper
}

// clamp bounds v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
