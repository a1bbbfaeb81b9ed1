package soil

import "strings"

// SoilType identifies the texture class of a soil sample.
type SoilType string

const (
	Clay  SoilType = "clay"
	Sandy SoilType = "sandy"
	Loam  SoilType = "loam"
	Silt  SoilType = "silt"
	Peat  SoilType = "peat"
	Chalk SoilType = "chalk"
)

// AllSoilTypes returns all soil types in display order.
func AllSoilTypes() []SoilType {
	return []SoilType{Clay, Sandy, Loam, Silt, Peat, Chalk}
}

// DisplayName returns a human-readable label for the soil type.
func (t SoilType) DisplayName() string {
	switch t {
	case Clay:
		return "Clay"
	case Sandy:
		return "Sandy"
	case Loam:
		return "Loam"
	case Silt:
		return "Silt"
	case Peat:
		return "Peat"
	case Chalk:
		return "Chalk"
	default:
		return string(t)
	}
}

// Known reports whether t is one of the enumerated soil types.
func (t SoilType) Known() bool {
	for _, s := range AllSoilTypes() {
		if s == t {
			return true
		}
	}
	return false
}

// Next returns the soil type after t in display order, wrapping around.
func (t SoilType) Next() SoilType {
	all := AllSoilTypes()
	for i, s := range all {
		if s == t {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// ParseSoilType maps free text to a SoilType. Matching is case-insensitive.
// Empty or unrecognized values fall back to Loam.
func ParseSoilType(s string) SoilType {
	t := SoilType(strings.ToLower(strings.TrimSpace(s)))
	if t.Known() {
		return t
	}
	return Loam
}

// Parameter names a single measured soil property.
type Parameter string

const (
	ParameterPH            Parameter = "ph"
	ParameterTemperature   Parameter = "temperature"
	ParameterMoisture      Parameter = "moisture"
	ParameterEC            Parameter = "ec"
	ParameterOrganicCarbon Parameter = "organic_carbon"
	ParameterUnknown       Parameter = ""
)

// AllParameters returns the measured parameters in form order.
func AllParameters() []Parameter {
	return []Parameter{
		ParameterPH,
		ParameterTemperature,
		ParameterMoisture,
		ParameterEC,
		ParameterOrganicCarbon,
	}
}

// DisplayName returns a human-readable label for the parameter.
func (p Parameter) DisplayName() string {
	switch p {
	case ParameterPH:
		return "pH"
	case ParameterTemperature:
		return "Temperature"
	case ParameterMoisture:
		return "Moisture"
	case ParameterEC:
		return "Electrical Conductivity"
	case ParameterOrganicCarbon:
		return "Organic Carbon"
	default:
		return string(p)
	}
}

// Unit returns the measurement unit shown next to the parameter.
func (p Parameter) Unit() string {
	switch p {
	case ParameterTemperature:
		return "°C"
	case ParameterMoisture, ParameterOrganicCarbon:
		return "%"
	case ParameterEC:
		return "dS/m"
	default:
		return ""
	}
}

// ParseParameter maps a parameter name or one of its aliases to a Parameter.
// Unrecognized names return ParameterUnknown.
func ParseParameter(s string) Parameter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ph":
		return ParameterPH
	case "temperature", "temp":
		return ParameterTemperature
	case "moisture":
		return ParameterMoisture
	case "ec", "electrical_conductivity", "electricalconductivity":
		return ParameterEC
	case "organic_carbon", "organiccarbon", "oc":
		return ParameterOrganicCarbon
	default:
		return ParameterUnknown
	}
}
