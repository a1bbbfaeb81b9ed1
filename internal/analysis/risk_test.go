package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/soilsense/internal/soil"
)

func healthyNutrients() Nutrients {
	return Nutrients{Nitrogen: 60, Phosphorus: 60, Potassium: 60}
}

func TestAssessRisks(t *testing.T) {
	tests := []struct {
		name string
		ph   float64
		ec   float64
		n    Nutrients
		want []string
	}{
		{"nothing fires", 6.5, 1.2, healthyNutrients(), []string{LowRisk}},
		{"acidic", 5.4, 1.2, healthyNutrients(), []string{RiskAcidity}},
		{"pH at acidity threshold", 5.5, 1.2, healthyNutrients(), []string{LowRisk}},
		{"alkaline", 8.6, 1.2, healthyNutrients(), []string{RiskAlkalinity}},
		{"pH at alkalinity threshold", 8.5, 1.2, healthyNutrients(), []string{LowRisk}},
		{"saline", 6.5, 2.6, healthyNutrients(), []string{RiskSalinity}},
		{"EC at salinity threshold", 6.5, 2.5, healthyNutrients(), []string{LowRisk}},
		{
			"all deficiencies",
			6.5, 1.2,
			Nutrients{Nitrogen: 29.9, Phosphorus: 24.9, Potassium: 34.9},
			[]string{RiskNitrogenDeficiency, RiskPhosphorusDeficiency, RiskPotassiumDeficiency},
		},
		{
			"deficiency thresholds are exclusive",
			6.5, 1.2,
			Nutrients{Nitrogen: 30, Phosphorus: 25, Potassium: 35},
			[]string{LowRisk},
		},
		{
			"evaluation order is fixed",
			4.0, 3.0,
			Nutrients{Nitrogen: 10, Phosphorus: 60, Potassium: 10},
			[]string{RiskAcidity, RiskSalinity, RiskNitrogenDeficiency, RiskPotassiumDeficiency},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := soil.DefaultInput()
			in.PH = tt.ph
			in.ElectricalConductivity = tt.ec
			assert.Equal(t, tt.want, AssessRisks(in, tt.n))
		})
	}
}

func TestAssessRisks_LowRiskProperty(t *testing.T) {
	src := NewSource(11)
	for i := 0; i < 300; i++ {
		in := soil.Input{
			PH:                     5.5 + src.Float64()*3,
			ElectricalConductivity: src.Float64() * 2.5,
		}
		n := Nutrients{
			Nitrogen:   30 + src.Float64()*70,
			Phosphorus: 25 + src.Float64()*75,
			Potassium:  35 + src.Float64()*65,
		}
		assert.Equal(t, []string{LowRisk}, AssessRisks(in, n))
	}
}
