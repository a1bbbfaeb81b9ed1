package analysis

import "github.com/abhisek/soilsense/internal/soil"

// Recommendation thresholds. Comparisons are strict.
const (
	LimeBelowPH             = 6.0
	SulfurAbovePH           = 8.0
	NitrogenAmendBelow      = 40.0
	PhosphorusAmendBelow    = 30.0
	PotassiumAmendBelow     = 40.0
	OrganicCarbonAmendBelow = 2.0
)

// Remediation actions.
const (
	ActionApplyLime     = "Apply lime to raise pH"
	ActionApplySulfur   = "Apply sulfur to lower pH"
	ActionNitrogen      = "Apply nitrogen fertilizer or compost"
	ActionPhosphate     = "Apply phosphate fertilizer"
	ActionPotash        = "Apply potash fertilizer"
	ActionOrganicMatter = "Add compost or organic amendments"
)

// Recommend returns remediation actions in a fixed order: pH, nitrogen,
// phosphorus, potassium, organic matter. An empty result means no
// remediation is needed.
//
// The thresholds are independent of the risk rules, so a sample can be
// reported as "Low risk" and still receive a fertilizer recommendation.
func Recommend(in soil.Input, n Nutrients) []Recommendation {
	recs := make([]Recommendation, 0, 5)

	switch {
	case in.PH < LimeBelowPH:
		recs = append(recs, Recommendation{CategoryPH, ActionApplyLime, PriorityHigh})
	case in.PH > SulfurAbovePH:
		recs = append(recs, Recommendation{CategoryPH, ActionApplySulfur, PriorityHigh})
	}

	if n.Nitrogen < NitrogenAmendBelow {
		recs = append(recs, Recommendation{CategoryNitrogen, ActionNitrogen, PriorityMedium})
	}
	if n.Phosphorus < PhosphorusAmendBelow {
		recs = append(recs, Recommendation{CategoryPhosphorus, ActionPhosphate, PriorityMedium})
	}
	if n.Potassium < PotassiumAmendBelow {
		recs = append(recs, Recommendation{CategoryPotassium, ActionPotash, PriorityMedium})
	}
	if in.OrganicCarbonPercent < OrganicCarbonAmendBelow {
		recs = append(recs, Recommendation{CategoryOrganicMatter, ActionOrganicMatter, PriorityHigh})
	}

	return recs
}
