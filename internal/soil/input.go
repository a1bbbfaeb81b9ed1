package soil

// Input is one soil sample submitted for analysis. It is passed by value
// and never modified by the analysis engine.
type Input struct {
	PH                     float64  `json:"ph" yaml:"ph"`
	TemperatureC           float64  `json:"temperature" yaml:"temperature"`
	MoisturePercent        float64  `json:"moisture" yaml:"moisture"`
	ElectricalConductivity float64  `json:"ec" yaml:"ec"`
	OrganicCarbonPercent   float64  `json:"organic_carbon" yaml:"organic_carbon"`
	SoilType               SoilType `json:"soil_type" yaml:"soil_type"`
}

// Defaults used when a field is missing from a submitted sample.
const (
	DefaultPH                     = 6.5
	DefaultTemperatureC           = 25.0
	DefaultMoisturePercent        = 50.0
	DefaultElectricalConductivity = 1.2
	DefaultOrganicCarbonPercent   = 2.2
	DefaultSoilType               = Loam
)

// DefaultInput returns the sample a reset form starts from.
func DefaultInput() Input {
	return Input{
		PH:                     DefaultPH,
		TemperatureC:           DefaultTemperatureC,
		MoisturePercent:        DefaultMoisturePercent,
		ElectricalConductivity: DefaultElectricalConductivity,
		OrganicCarbonPercent:   DefaultOrganicCarbonPercent,
		SoilType:               DefaultSoilType,
	}
}

// Value returns the measured value for p. The second result is false for
// ParameterUnknown.
func (in Input) Value(p Parameter) (float64, bool) {
	switch p {
	case ParameterPH:
		return in.PH, true
	case ParameterTemperature:
		return in.TemperatureC, true
	case ParameterMoisture:
		return in.MoisturePercent, true
	case ParameterEC:
		return in.ElectricalConductivity, true
	case ParameterOrganicCarbon:
		return in.OrganicCarbonPercent, true
	default:
		return 0, false
	}
}

// With returns a copy of in with parameter p set to v. Unknown parameters
// return in unchanged.
func (in Input) With(p Parameter, v float64) Input {
	switch p {
	case ParameterPH:
		in.PH = v
	case ParameterTemperature:
		in.TemperatureC = v
	case ParameterMoisture:
		in.MoisturePercent = v
	case ParameterEC:
		in.ElectricalConductivity = v
	case ParameterOrganicCarbon:
		in.OrganicCarbonPercent = v
	}
	return in
}

// Normalized returns a copy of in whose soil type is one of the enumerated
// values, falling back to Loam.
func (in Input) Normalized() Input {
	in.SoilType = ParseSoilType(string(in.SoilType))
	return in
}
