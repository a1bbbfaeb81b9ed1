package analysis

import (
	"math"

	"github.com/abhisek/soilsense/internal/soil"
)

// Band holds the reference thresholds for one measured parameter.
type Band struct {
	Low     float64
	Optimal float64
	High    float64
}

// OptimalTolerance is the fraction of the optimal value within which a
// reading counts as Optimal rather than Good.
const OptimalTolerance = 0.2

// BandFor returns the reference band for p. The second result is false for
// parameters that have no band.
func BandFor(p soil.Parameter) (Band, bool) {
	switch p {
	case soil.ParameterPH:
		return Band{Low: 5.5, Optimal: 7.0, High: 8.5}, true
	case soil.ParameterTemperature:
		return Band{Low: 18, Optimal: 25, High: 30}, true
	case soil.ParameterMoisture:
		return Band{Low: 30, Optimal: 50, High: 70}, true
	case soil.ParameterEC:
		return Band{Low: 0.5, Optimal: 1.2, High: 2.0}, true
	case soil.ParameterOrganicCarbon:
		return Band{Low: 1.0, Optimal: 2.5, High: 3.5}, true
	default:
		return Band{}, false
	}
}

// Classify maps a single reading to its status band. Unknown parameters
// and NaN readings return StatusUnknown; it never fails.
func Classify(p soil.Parameter, value float64) Status {
	b, ok := BandFor(p)
	if !ok || math.IsNaN(value) {
		return StatusUnknown
	}
	switch {
	case value < b.Low:
		return StatusLow
	case value > b.High:
		return StatusHigh
	case math.Abs(value-b.Optimal) <= OptimalTolerance*b.Optimal:
		return StatusOptimal
	default:
		return StatusGood
	}
}

// ClassifyName is Classify for a free-text parameter name, as typed on the
// command line.
func ClassifyName(name string, value float64) Status {
	return Classify(soil.ParseParameter(name), value)
}

// ClassifyInput returns the status of every measured parameter of in.
func ClassifyInput(in soil.Input) map[soil.Parameter]Status {
	out := make(map[soil.Parameter]Status, len(soil.AllParameters()))
	for _, p := range soil.AllParameters() {
		v, _ := in.Value(p)
		out[p] = Classify(p, v)
	}
	return out
}
