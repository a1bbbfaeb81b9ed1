package analysis

import "strings"

// Status is the qualitative band a single measured parameter falls in.
type Status string

const (
	StatusLow     Status = "Low"
	StatusOptimal Status = "Optimal"
	StatusGood    Status = "Good"
	StatusHigh    Status = "High"
	StatusUnknown Status = "Unknown"
)

// Suitability is the crop-suitability category derived from the combined
// soil health and fertility scores.
type Suitability string

const (
	SuitabilityExcellent      Suitability = "excellent"
	SuitabilityGood           Suitability = "good"
	SuitabilityWithAmendments Suitability = "suitable_with_amendments"
	SuitabilityNeedsWork      Suitability = "needs_improvement"
)

// DisplayName returns a human-readable label for the suitability.
func (s Suitability) DisplayName() string {
	switch s {
	case SuitabilityExcellent:
		return "Excellent"
	case SuitabilityGood:
		return "Good"
	case SuitabilityWithAmendments:
		return "Suitable with amendments"
	case SuitabilityNeedsWork:
		return "Needs improvement"
	default:
		return string(s)
	}
}

// Category is the remediation area a recommendation targets.
type Category string

const (
	CategoryPH            Category = "pH"
	CategoryNitrogen      Category = "Nitrogen"
	CategoryPhosphorus    Category = "Phosphorus"
	CategoryPotassium     Category = "Potassium"
	CategoryOrganicMatter Category = "Organic Matter"
)

// Priority ranks how urgent a recommendation is.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

// Recommendation is one remediation action.
type Recommendation struct {
	Category Category `json:"category" yaml:"category"`
	Action   string   `json:"action" yaml:"action"`
	Priority Priority `json:"priority" yaml:"priority"`
}

// Nutrients holds estimated nitrogen, phosphorus and potassium levels on a
// 0–100 scale, rounded to one decimal.
type Nutrients struct {
	Nitrogen   float64 `json:"nitrogen" yaml:"nitrogen"`
	Phosphorus float64 `json:"phosphorus" yaml:"phosphorus"`
	Potassium  float64 `json:"potassium" yaml:"potassium"`
}

// Average returns the mean of the three nutrient levels.
func (n Nutrients) Average() float64 {
	return (n.Nitrogen + n.Phosphorus + n.Potassium) / 3
}

// LowRisk is the single risk label reported when no risk rule fires.
const LowRisk = "Low risk"

// Result is the outcome of analyzing one soil sample. A new Result is built
// for every call; nothing in it is shared with other calls.
type Result struct {
	Nutrients       `yaml:",inline"`
	SoilHealth      float64          `json:"soil_health" yaml:"soil_health"`
	FertilityIndex  float64          `json:"fertility_index" yaml:"fertility_index"`
	Risks           []string         `json:"risks" yaml:"risks"`
	Suitability     Suitability      `json:"crop_suitability" yaml:"crop_suitability"`
	Confidence      float64          `json:"confidence" yaml:"confidence"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// RiskSummary joins the risk labels for single-line display.
func (r Result) RiskSummary() string {
	if len(r.Risks) == 0 {
		return LowRisk
	}
	return strings.Join(r.Risks, ", ")
}

// LowRisk reports whether no risk rule fired.
func (r Result) LowRisk() bool {
	return len(r.Risks) == 0 || (len(r.Risks) == 1 && r.Risks[0] == LowRisk)
}

// RiskCount returns the number of risk rules that fired.
func (r Result) RiskCount() int {
	if r.LowRisk() {
		return 0
	}
	return len(r.Risks)
}

// Inconsistencies lists the recommendation categories that ask for a
// nutrient or pH amendment while the risk assessment reports "Low risk".
// Risk and recommendation thresholds differ (nitrogen 30 vs 40, pH 5.5 vs
// 6.0, ...), so samples near a boundary can get both. The result itself is
// left as is.
func (r Result) Inconsistencies() []Category {
	if !r.LowRisk() {
		return nil
	}
	var out []Category
	for _, rec := range r.Recommendations {
		if rec.Category == CategoryOrganicMatter {
			continue
		}
		out = append(out, rec.Category)
	}
	return out
}
