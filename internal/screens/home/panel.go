package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soilsense/internal/soil"
	"github.com/abhisek/soilsense/internal/ui/theme"
)

const titleCompact = "S · O · I · L · S · E · N · S · E"

const sprout = `  \ /
   |
▓▓▓▓▓▓▓`

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	var art string
	if !compact {
		art = lipgloss.NewStyle().Foreground(theme.Primary).Render(sprout) + "\n\n"
	}
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(titleCompact)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(art + title)
}

// renderDefaultsBar shows the sample a new form starts from.
func renderDefaultsBar(in soil.Input, cw int, compact bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var text string
	if compact {
		text = val.Render(fmt.Sprintf("pH %g · %s", in.PH, in.SoilType.DisplayName()))
	} else {
		text = dim.Render("defaults ") + val.Render(fmt.Sprintf(
			"pH %g · %g°C · %g%% · EC %g · OC %g%% · %s",
			in.PH, in.TemperatureC, in.MoisturePercent,
			in.ElectricalConductivity, in.OrganicCarbonPercent,
			in.SoilType.DisplayName()))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

func renderMenu(items []string, descriptions []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")
	if selected >= 0 && selected < len(descriptions) {
		block += "\n" + theme.Hint.Render(descriptions[selected])
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
