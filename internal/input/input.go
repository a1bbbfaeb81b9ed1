// Package input reads soil samples from JSON or YAML documents.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/soilsense/internal/soil"
)

// Format is the encoding of an input document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ErrInvalidInput reports a sample that failed validation. Index is the
// position of the sample in the document.
type ErrInvalidInput struct {
	Index int
	Err   error
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid sample %d: %v", e.Index, e.Err)
}

func (e *ErrInvalidInput) Unwrap() error { return e.Err }

// ErrEmpty is returned for documents that contain no samples.
var ErrEmpty = errors.New("no soil samples in input")

// sample has pointer fields so missing values can be told apart from zero.
type sample struct {
	PH                     *float64 `json:"ph"`
	TemperatureC           *float64 `json:"temperature"`
	MoisturePercent        *float64 `json:"moisture"`
	ElectricalConductivity *float64 `json:"ec"`
	OrganicCarbonPercent   *float64 `json:"organic_carbon"`
	SoilType               *string  `json:"soil_type"`
}

func (s sample) withDefaults(def soil.Input) soil.Input {
	in := def
	if s.PH != nil {
		in.PH = *s.PH
	}
	if s.TemperatureC != nil {
		in.TemperatureC = *s.TemperatureC
	}
	if s.MoisturePercent != nil {
		in.MoisturePercent = *s.MoisturePercent
	}
	if s.ElectricalConductivity != nil {
		in.ElectricalConductivity = *s.ElectricalConductivity
	}
	if s.OrganicCarbonPercent != nil {
		in.OrganicCarbonPercent = *s.OrganicCarbonPercent
	}
	if s.SoilType != nil {
		in.SoilType = soil.ParseSoilType(*s.SoilType)
	}
	return in.Normalized()
}

// ReadFile reads samples from path, choosing the format by extension.
// "-" reads JSON or YAML from stdin.
func ReadFile(path string, defaults soil.Input) ([]soil.Input, error) {
	if path == "-" {
		return Read(os.Stdin, FormatYAML, defaults)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Read(f, FormatForPath(path), defaults)
}

// Read decodes a document holding one sample or a list of samples,
// validates each sample and fills missing fields from defaults. YAML is a
// superset of JSON, so FormatYAML also accepts JSON.
func Read(r io.Reader, format Format, defaults soil.Input) ([]soil.Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	var raw []any
	switch v := doc.(type) {
	case []any:
		raw = v
	case nil:
		return nil, ErrEmpty
	default:
		raw = []any{v}
	}
	if len(raw) == 0 {
		return nil, ErrEmpty
	}

	out := make([]soil.Input, 0, len(raw))
	for i, item := range raw {
		if err := validateSample(item); err != nil {
			return nil, &ErrInvalidInput{Index: i, Err: err}
		}
		b, err := json.Marshal(item)
		if err != nil {
			return nil, &ErrInvalidInput{Index: i, Err: err}
		}
		var s sample
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, &ErrInvalidInput{Index: i, Err: err}
		}
		out = append(out, s.withDefaults(defaults))
	}
	return out, nil
}

// decode returns the document as a JSON value tree (json.Number for
// numbers), the shape the schema validator expects.
func decode(data []byte, format Format) (any, error) {
	if format == FormatYAML {
		var y any
		if err := yaml.Unmarshal(data, &y); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
		if y == nil {
			return nil, nil
		}
		b, err := json.Marshal(y)
		if err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		data = b
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return doc, nil
}
