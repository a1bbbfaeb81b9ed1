// Package report renders analysis reports as styled text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/soilsense/internal/analysis"
	"github.com/abhisek/soilsense/internal/batch"
	"github.com/abhisek/soilsense/internal/ui/components"
	"github.com/abhisek/soilsense/internal/ui/theme"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// barWidth is the width of the nutrient and score bars in text output.
const barWidth = 56

// WriteOne writes a single report. JSON and YAML encode the report object
// itself rather than a one-element list.
func WriteOne(w io.Writer, f Format, rep batch.Report) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, rep)
	case FormatYAML:
		return writeYAML(w, rep)
	default:
		_, err := fmt.Fprintln(w, Text(rep))
		return err
	}
}

// Write writes a list of reports.
func Write(w io.Writer, f Format, reps []batch.Report) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, reps)
	case FormatYAML:
		return writeYAML(w, reps)
	default:
		for i, rep := range reps {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, Text(rep)); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}

// Text renders one report for a terminal.
func Text(rep batch.Report) string {
	res := rep.Result
	var b strings.Builder

	title := theme.Title.Render("Soil Analysis")
	if rep.ID != "" {
		title += "  " + theme.Subtitle.Render(rep.ID)
	}
	b.WriteString(title + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"pH %.1f · %.1f°C · moisture %.1f%% · EC %.2f dS/m · OC %.1f%% · %s",
		rep.Input.PH, rep.Input.TemperatureC, rep.Input.MoisturePercent,
		rep.Input.ElectricalConductivity, rep.Input.OrganicCarbonPercent,
		rep.Input.Normalized().SoilType.DisplayName(),
	)) + "\n\n")

	b.WriteString(section("Nutrients"))
	b.WriteString(bar("Nitrogen", res.Nitrogen, theme.Primary) + "\n")
	b.WriteString(bar("Phosphorus", res.Phosphorus, theme.Secondary) + "\n")
	b.WriteString(bar("Potassium", res.Potassium, theme.Accent) + "\n\n")

	b.WriteString(section("Indices"))
	b.WriteString(bar("Soil health", res.SoilHealth, theme.ScoreColor(res.SoilHealth)) + "\n")
	b.WriteString(bar("Fertility", res.FertilityIndex, theme.ScoreColor(res.FertilityIndex)) + "\n\n")

	b.WriteString(field("Suitability", theme.Body.Bold(true).Render(res.Suitability.DisplayName())))
	b.WriteString(field("Risks", riskText(res)))
	b.WriteString(field("Confidence", theme.Body.Render(fmt.Sprintf("%.1f%%", res.Confidence))))
	b.WriteString("\n")

	b.WriteString(section("Recommendations"))
	if len(res.Recommendations) == 0 {
		b.WriteString("  " + theme.Body.Render("No remediation needed") + "\n")
	}
	for _, rec := range res.Recommendations {
		b.WriteString("  " + priorityBadge(rec.Priority) + " " +
			theme.Body.Render(fmt.Sprintf("%s: %s", rec.Category, rec.Action)) + "\n")
	}

	if inc := res.Inconsistencies(); len(inc) > 0 {
		names := make([]string, len(inc))
		for i, c := range inc {
			names[i] = string(c)
		}
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf(
			"Note: %s amendments suggested although no risk was flagged; thresholds differ.",
			strings.Join(names, ", "))))
	}

	return strings.TrimRight(b.String(), "\n")
}

func section(name string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(strings.ToUpper(name)) + "\n"
}

func field(label, value string) string {
	return "  " + theme.Label.Render(label) + value + "\n"
}

func bar(label string, value float64, fill color.Color) string {
	p := components.NewProgressBar(label, value/100, false, barWidth)
	p.LabelWidth = 14
	p.Fill = fill
	return "  " + p.View() + "  " + theme.Body.Render(fmt.Sprintf("%5.1f", value))
}

func riskText(res analysis.Result) string {
	if res.LowRisk() {
		return lipgloss.NewStyle().Foreground(theme.Success).Render(analysis.LowRisk)
	}
	return lipgloss.NewStyle().Foreground(theme.Warning).Render(res.RiskSummary())
}

func priorityBadge(p analysis.Priority) string {
	c := theme.Warning
	if p == analysis.PriorityHigh {
		c = theme.Error
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf("[%s]", p))
}
