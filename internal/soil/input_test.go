package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultInput(t *testing.T) {
	in := DefaultInput()
	assert.Equal(t, 6.5, in.PH)
	assert.Equal(t, 25.0, in.TemperatureC)
	assert.Equal(t, 50.0, in.MoisturePercent)
	assert.Equal(t, 1.2, in.ElectricalConductivity)
	assert.Equal(t, 2.2, in.OrganicCarbonPercent)
	assert.Equal(t, Loam, in.SoilType)
}

func TestInput_ValueAndWith(t *testing.T) {
	in := DefaultInput()
	for i, p := range AllParameters() {
		v := float64(i) + 0.5
		updated := in.With(p, v)

		got, ok := updated.Value(p)
		assert.True(t, ok)
		assert.Equal(t, v, got, "parameter %q", p)

		orig, _ := in.Value(p)
		assert.NotEqual(t, v, orig, "With must not modify the receiver")
	}

	_, ok := in.Value(ParameterUnknown)
	assert.False(t, ok)
	assert.Equal(t, in, in.With(ParameterUnknown, 99))
}

func TestInput_Normalized(t *testing.T) {
	in := Input{SoilType: " Clay"}
	assert.Equal(t, Clay, in.Normalized().SoilType)
	assert.Equal(t, SoilType(" Clay"), in.SoilType)

	assert.Equal(t, Loam, Input{}.Normalized().SoilType)
}
