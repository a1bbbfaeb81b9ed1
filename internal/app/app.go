// Package app hosts the root Bubble Tea model.
package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/soilsense/internal/batch"
	"github.com/abhisek/soilsense/internal/router"
	"github.com/abhisek/soilsense/internal/screen"
	"github.com/abhisek/soilsense/internal/screens/analyze"
	"github.com/abhisek/soilsense/internal/screens/home"
	"github.com/abhisek/soilsense/internal/screens/result"
	"github.com/abhisek/soilsense/internal/screens/welcome"
	"github.com/abhisek/soilsense/internal/soil"
	"github.com/abhisek/soilsense/internal/ui/layout"
)

// Options holds dependencies for the TUI.
type Options struct {
	Analyzer analyze.Analyzer
	Delay    time.Duration
	Defaults soil.Input
	Logger   *zap.Logger

	// SkipSplash starts on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates an AppModel starting on the splash screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	newResult := func(rep batch.Report) screen.Screen {
		logger.Info("analysis shown",
			zap.String("analysis_id", rep.ID),
			zap.String("suitability", string(rep.Result.Suitability)),
			zap.Int("risk_count", rep.Result.RiskCount()),
		)
		return result.New(rep)
	}
	newAnalysis := func() screen.Screen {
		return analyze.New(opts.Analyzer, newResult, opts.Defaults, opts.Delay)
	}
	newHome := func() screen.Screen {
		return home.New(newAnalysis, opts.Defaults)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = newHome()
	} else {
		initial = welcome.New(newHome)
	}

	return AppModel{
		router: router.New(initial),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer at the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
