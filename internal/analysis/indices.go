package analysis

import (
	"math"

	"github.com/abhisek/soilsense/internal/soil"
)

// Weights of the soil health score. They sum to 1.0.
const (
	healthWeightNutrients = 0.4
	healthWeightPH        = 0.3
	healthWeightCarbon    = 0.3
)

// Weights of the fertility index. They sum to 1.0.
const (
	fertilityWeightN = 0.4
	fertilityWeightP = 0.35
	fertilityWeightK = 0.25
)

// SoilHealth combines the nutrient average with a pH score that peaks at
// 6.8 and an organic carbon score that saturates at 4%. Each term is
// floored at 0, so extreme pH or negative carbon readings cannot push the
// score below 0.
func SoilHealth(in soil.Input, n Nutrients) float64 {
	phScore := clamp(100-10*math.Abs(in.PH-6.8), 0, 100)
	carbonScore := clamp(in.OrganicCarbonPercent*25, 0, 100)
	health := healthWeightNutrients*n.Average() +
		healthWeightPH*phScore +
		healthWeightCarbon*carbonScore
	return round1(clamp(health, 0, 100))
}

// FertilityIndex is the weighted sum of the nutrient levels.
func FertilityIndex(n Nutrients) float64 {
	fi := fertilityWeightN*n.Nitrogen + fertilityWeightP*n.Phosphorus + fertilityWeightK*n.Potassium
	return round1(clamp(fi, 0, 100))
}
