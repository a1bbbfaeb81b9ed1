package analysis

// Lower bounds (inclusive) of the suitability bands, applied to the mean of
// soil health and fertility index.
const (
	ExcellentThreshold      = 80.0
	GoodThreshold           = 65.0
	WithAmendmentsThreshold = 50.0
)

// SuitabilityFor maps soil health and fertility index to a crop
// suitability category.
func SuitabilityFor(soilHealth, fertilityIndex float64) Suitability {
	avg := (soilHealth + fertilityIndex) / 2
	switch {
	case avg >= ExcellentThreshold:
		return SuitabilityExcellent
	case avg >= GoodThreshold:
		return SuitabilityGood
	case avg >= WithAmendmentsThreshold:
		return SuitabilityWithAmendments
	default:
		return SuitabilityNeedsWork
	}
}
