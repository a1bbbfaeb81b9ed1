package analysis

import "github.com/abhisek/soilsense/internal/soil"

// Risk thresholds. Comparisons are strict.
const (
	AcidityThreshold    = 5.5
	AlkalinityThreshold = 8.5
	SalinityThreshold   = 2.5
	NitrogenRiskLevel   = 30.0
	PhosphorusRiskLevel = 25.0
	PotassiumRiskLevel  = 35.0
)

// Risk labels, in evaluation order.
const (
	RiskAcidity              = "Soil acidity"
	RiskAlkalinity           = "Soil alkalinity"
	RiskSalinity             = "High salinity"
	RiskNitrogenDeficiency   = "Nitrogen deficiency"
	RiskPhosphorusDeficiency = "Phosphorus deficiency"
	RiskPotassiumDeficiency  = "Potassium deficiency"
)

// riskRule appends Label when Fires holds.
type riskRule struct {
	Label string
	Fires func(in soil.Input, n Nutrients) bool
}

// riskRules are evaluated in order: pH, salinity, nitrogen, phosphorus,
// potassium. The output follows this order, not severity.
var riskRules = []riskRule{
	{RiskAcidity, func(in soil.Input, _ Nutrients) bool { return in.PH < AcidityThreshold }},
	{RiskAlkalinity, func(in soil.Input, _ Nutrients) bool { return in.PH > AlkalinityThreshold }},
	{RiskSalinity, func(in soil.Input, _ Nutrients) bool { return in.ElectricalConductivity > SalinityThreshold }},
	{RiskNitrogenDeficiency, func(_ soil.Input, n Nutrients) bool { return n.Nitrogen < NitrogenRiskLevel }},
	{RiskPhosphorusDeficiency, func(_ soil.Input, n Nutrients) bool { return n.Phosphorus < PhosphorusRiskLevel }},
	{RiskPotassiumDeficiency, func(_ soil.Input, n Nutrients) bool { return n.Potassium < PotassiumRiskLevel }},
}

// AssessRisks returns the label of every risk rule that fires, or the
// single LowRisk label when none do.
func AssessRisks(in soil.Input, n Nutrients) []string {
	var labels []string
	for _, r := range riskRules {
		if r.Fires(in, n) {
			labels = append(labels, r.Label)
		}
	}
	if len(labels) == 0 {
		return []string{LowRisk}
	}
	return labels
}
