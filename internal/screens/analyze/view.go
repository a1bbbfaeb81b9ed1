package analyze

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soilsense/internal/analysis"
	"github.com/abhisek/soilsense/internal/ui/components"
	"github.com/abhisek/soilsense/internal/ui/theme"
)

// labelStyle fits the longest parameter name.
var labelStyle = theme.Label.Width(25)

func (s *AnalyzeScreen) View(width, height int) string {
	var rows []string

	rows = append(rows, theme.Title.Render("Soil sample"), "")
	for i, f := range s.fields {
		rows = append(rows, s.renderField(i, f))
	}
	rows = append(rows, s.renderSoilType(), "")

	submit := components.NewButton("Analyze", s.focus == focusSubmit, nil)
	submit.Disabled = s.state == StateAnalyzing
	rows = append(rows, submit.View())

	if s.state == StateAnalyzing {
		bar := components.NewProgressBar("Analyzing", s.Progress(), true, 52)
		bar.Fill = theme.Primary
		rows = append(rows, "", bar.View())
	}
	if s.errMsg != "" {
		rows = append(rows, "", theme.ErrorText.Render(s.errMsg))
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *AnalyzeScreen) renderField(i int, f field) string {
	label := labelStyle.Render(f.param.DisplayName())
	if i == s.focus {
		label = labelStyle.Foreground(theme.Primary).Bold(true).Render(f.param.DisplayName())
	}

	unit := lipgloss.NewStyle().Foreground(theme.TextDim).Width(6).Render(f.param.Unit())

	var badge string
	v, ok, err := f.input.Float()
	switch {
	case err != nil:
		badge = theme.ErrorText.Render("invalid")
	case !ok:
		d, _ := s.defaults.Value(f.param)
		badge = theme.Badge(string(analysis.Classify(f.param, d))) + theme.Hint.Render(" (default)")
	default:
		badge = theme.Badge(string(analysis.Classify(f.param, v)))
	}

	input := lipgloss.NewStyle().Width(inputWidth + 4).Render(f.input.View())
	return label + input + " " + unit + " " + badge
}

func (s *AnalyzeScreen) renderSoilType() string {
	label := labelStyle.Render("Soil type")
	value := theme.Body.Render("◂ " + s.soilType.DisplayName() + " ▸")
	if s.focus == focusSoilType {
		label = labelStyle.Foreground(theme.Primary).Bold(true).Render("Soil type")
		value = theme.Selected.Render("◂ " + s.soilType.DisplayName() + " ▸")
	}
	return label + value
}
