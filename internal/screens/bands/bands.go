// Package bands shows the classifier thresholds and soil-type modifiers.
package bands

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soilsense/internal/analysis"
	"github.com/abhisek/soilsense/internal/screen"
	"github.com/abhisek/soilsense/internal/soil"
	"github.com/abhisek/soilsense/internal/ui/theme"
)

// BandsScreen is a read-only reference card.
type BandsScreen struct{}

var _ screen.Screen = (*BandsScreen)(nil)

// New creates a BandsScreen.
func New() *BandsScreen {
	return &BandsScreen{}
}

func (b *BandsScreen) Init() tea.Cmd {
	return nil
}

func (b *BandsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return b, nil
}

func (b *BandsScreen) Title() string {
	return "Reference Bands"
}

func (b *BandsScreen) View(width, height int) string {
	head := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	col := lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	name := lipgloss.NewStyle().Width(32).Foreground(theme.Text)

	var rows []string
	rows = append(rows, theme.Title.Render("Parameter bands"), "")
	rows = append(rows, head.Render(name.Render("")+col.Render("Low <")+col.Render("Optimal")+col.Render("High >")))
	for _, p := range soil.AllParameters() {
		band, _ := analysis.BandFor(p)
		label := p.DisplayName()
		if u := p.Unit(); u != "" {
			label += " (" + u + ")"
		}
		rows = append(rows, name.Render(label)+
			col.Render(fmt.Sprintf("%g", band.Low))+
			col.Foreground(theme.Success).Render(fmt.Sprintf("%g", band.Optimal))+
			col.Render(fmt.Sprintf("%g", band.High)))
	}
	rows = append(rows, "", theme.Hint.Render(fmt.Sprintf(
		"Optimal means within %.0f%% of the optimal value.", analysis.OptimalTolerance*100)))

	rows = append(rows, "", theme.Title.Render("Soil-type nutrient modifiers"), "")
	rows = append(rows, head.Render(name.Render("")+col.Render("N")+col.Render("P")+col.Render("K")))
	for _, t := range soil.AllSoilTypes() {
		m := analysis.ModifierFor(t)
		rows = append(rows, name.Render(t.DisplayName())+
			col.Render(fmt.Sprintf("%.2f", m.N))+
			col.Render(fmt.Sprintf("%.2f", m.P))+
			col.Render(fmt.Sprintf("%.2f", m.K)))
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
