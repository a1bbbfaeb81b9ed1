// Package result shows a finished soil analysis.
package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soilsense/internal/batch"
	"github.com/abhisek/soilsense/internal/report"
	"github.com/abhisek/soilsense/internal/router"
	"github.com/abhisek/soilsense/internal/screen"
	"github.com/abhisek/soilsense/internal/ui/layout"
)

// ResultScreen displays one analysis report. Tall reports scroll.
type ResultScreen struct {
	report batch.Report
	lines  []string
	offset int
	height int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for rep.
func New(rep batch.Report) *ResultScreen {
	return &ResultScreen{
		report: rep,
		lines:  strings.Split(report.Text(rep), "\n"),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Analysis Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "New analysis"},
		{Key: "Esc", Description: "Back"},
	}
	if s.scrollable() {
		hints = append([]layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}, hints...)
	}
	return hints
}

// Report returns the report on display.
func (s *ResultScreen) Report() batch.Report {
	return s.report
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			// Back to the form, which keeps the submitted values.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < s.maxOffset() {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *ResultScreen) scrollable() bool {
	return s.height > 0 && len(s.lines) > s.height
}

func (s *ResultScreen) maxOffset() int {
	if !s.scrollable() {
		return 0
	}
	return len(s.lines) - s.height
}

func (s *ResultScreen) View(width, height int) string {
	s.height = height
	if s.offset > s.maxOffset() {
		s.offset = s.maxOffset()
	}

	visible := s.lines[s.offset:]
	if height > 0 && len(visible) > height {
		visible = visible[:height]
	}

	content := strings.Join(visible, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
