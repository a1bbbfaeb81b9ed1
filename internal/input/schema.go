package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SampleSchema is the JSON schema every submitted soil sample must satisfy.
// All fields are optional; missing ones are filled from defaults.
var SampleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"ph": map[string]any{
			"type":        "number",
			"minimum":     0,
			"maximum":     14,
			"description": "Soil pH",
		},
		"temperature": map[string]any{
			"type":        "number",
			"description": "Soil temperature in °C",
		},
		"moisture": map[string]any{
			"type":        "number",
			"description": "Volumetric moisture in percent",
		},
		"ec": map[string]any{
			"type":        "number",
			"description": "Electrical conductivity in dS/m",
		},
		"organic_carbon": map[string]any{
			"type":        "number",
			"description": "Organic carbon in percent",
		},
		"soil_type": map[string]any{
			"type":        "string",
			"description": "clay, sandy, loam, silt, peat or chalk; anything else is read as loam",
		},
	},
	"additionalProperties": false,
}

const sampleSchemaURL = "schema://soil-sample.json"

// compiledSampleSchema compiles SampleSchema once.
var compiledSampleSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON value, not Go literals.
	defBytes, err := json.Marshal(SampleSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(sampleSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(sampleSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateSample checks one decoded sample against SampleSchema.
func validateSample(v any) error {
	schema, err := compiledSampleSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
