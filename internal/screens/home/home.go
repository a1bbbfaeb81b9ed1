package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/soilsense/internal/router"
	"github.com/abhisek/soilsense/internal/screen"
	"github.com/abhisek/soilsense/internal/screens/bands"
	"github.com/abhisek/soilsense/internal/soil"
	"github.com/abhisek/soilsense/internal/ui/components"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu     components.Menu
	defaults soil.Input
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. newAnalysis builds a fresh form each time the
// user starts an analysis.
func New(newAnalysis func() screen.Screen, defaults soil.Input) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:       "NEW ANALYSIS",
			Description: "Enter a soil sample and analyze it",
			Action: func() tea.Cmd {
				next := newAnalysis()
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		},
		{
			Label:       "REFERENCE BANDS",
			Description: "Classifier thresholds and soil modifiers",
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: bands.New()} }
			},
		},
		{
			Label:       "QUIT",
			Description: "Leave SoilSense",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		defaults: defaults.Normalized(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 90
	cw := contentWidth(width)

	labels := make([]string, len(h.menu.Items))
	descriptions := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
		descriptions[i] = item.Description
	}

	sections := []string{
		renderTitle(cw, compact),
		renderDefaultsBar(h.defaults, cw, compact),
		renderMenu(labels, descriptions, h.menu.Selected, cw),
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
