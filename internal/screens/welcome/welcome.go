package welcome

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soilsense/internal/router"
	"github.com/abhisek/soilsense/internal/screen"
	"github.com/abhisek/soilsense/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	sproutEnd    = 800 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Know your soil before you sow."

// sproutFrames grow a seedling above the soil profile.
var sproutFrames = []string{
	"       \n       \n   .   ",
	"       \n   ,   \n   |   ",
	"  \\ /  \n   |   \n   |   ",
	" \\\\ // \n  \\|/  \n   |   ",
}

// soilProfile is drawn under the sprout, topsoil first.
var soilProfile = []struct {
	line  string
	style lipgloss.Style
}{
	{"▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓", lipgloss.NewStyle().Foreground(theme.Secondary)},
	{"▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒", lipgloss.NewStyle().Foreground(theme.TextDim)},
	{"░░░░░░░░░░░░░░░░░░░", lipgloss.NewStyle().Foreground(theme.Border)},
}

type tickMsg time.Time

// WelcomeScreen plays a short splash, then hands over to the home screen
// on the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with homeFactory().
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		if w.elapsed >= totalDur {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) sproutFrame() string {
	n := int(w.elapsed * time.Duration(len(sproutFrames)) / sproutEnd)
	if n >= len(sproutFrames) {
		n = len(sproutFrames) - 1
	}
	return sproutFrames[n]
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sprout := lipgloss.NewStyle().Foreground(theme.Primary).Render(w.sproutFrame())
	sections = append(sections, sprout)
	for _, layer := range soilProfile {
		sections = append(sections, layer.style.Render(layer.line))
	}

	if w.elapsed >= bannerAt {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline))
	}

	sections = append(sections, "", theme.Hint.Render("press any key to continue"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Done reports whether the splash has finished playing.
func (w *WelcomeScreen) Done() bool {
	return w.elapsed >= totalDur
}
