package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/soilsense/internal/analysis"
	"github.com/abhisek/soilsense/internal/batch"
	"github.com/abhisek/soilsense/internal/soil"
)

type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }

func defaultReport() batch.Report {
	in := soil.DefaultInput()
	return batch.Report{
		ID:     "sample-1",
		Input:  in,
		Result: analysis.PredictWith(in, zeroSource{}),
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":      FormatText,
		"text":  FormatText,
		"JSON":  FormatJSON,
		" yaml": FormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteOne_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOne(&buf, FormatJSON, defaultReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "sample-1", got["id"])

	res := got["result"].(map[string]any)
	assert.Equal(t, 34.9, res["nitrogen"])
	assert.Equal(t, "suitable_with_amendments", res["crop_suitability"])
	assert.Equal(t, []any{"Low risk"}, res["risks"])
}

func TestWrite_YAMLList(t *testing.T) {
	reps := []batch.Report{defaultReport(), defaultReport()}
	reps[1].ID = "sample-2"
	reps[1].Index = 1

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, reps))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "sample-2", got[1]["id"])

	res := got[0]["result"].(map[string]any)
	assert.Equal(t, 39.1, res["phosphorus"], "nutrients are inlined")
	assert.Equal(t, "suitable_with_amendments", res["crop_suitability"])
}

func TestText_ContainsSections(t *testing.T) {
	out := Text(defaultReport())

	for _, want := range []string{
		"Soil Analysis",
		"sample-1",
		"Nitrogen",
		"Fertility",
		"Suitable with amendments",
		"Low risk",
		"85.0%",
		"Apply nitrogen fertilizer or compost",
	} {
		assert.Contains(t, out, want)
	}
}

func TestText_NotesInconsistency(t *testing.T) {
	out := Text(defaultReport())
	assert.Contains(t, out, "Nitrogen amendments suggested")
}

func TestText_NoRecommendations(t *testing.T) {
	rep := defaultReport()
	rep.Result.Recommendations = nil
	out := Text(rep)
	assert.Contains(t, out, "No remediation needed")
	assert.NotContains(t, out, "Note:")
}

func TestWrite_TextSeparatesReports(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, []batch.Report{defaultReport(), defaultReport()}))
	assert.Equal(t, 2, strings.Count(buf.String(), "Soil Analysis"))
}
