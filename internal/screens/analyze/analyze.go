// Package analyze implements the soil sample form. Submitting the form
// runs one analysis at a time behind a progress bar, then pushes the
// result screen.
package analyze

import (
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/soilsense/internal/batch"
	"github.com/abhisek/soilsense/internal/router"
	"github.com/abhisek/soilsense/internal/screen"
	"github.com/abhisek/soilsense/internal/soil"
	"github.com/abhisek/soilsense/internal/ui/components"
	"github.com/abhisek/soilsense/internal/ui/layout"
)

// State is the form's single-flight state.
type State int

const (
	StateIdle State = iota
	StateAnalyzing
)

func (s State) String() string {
	if s == StateAnalyzing {
		return "Analyzing"
	}
	return "Idle"
}

// Analyzer runs one sample. *batch.Runner satisfies it.
type Analyzer interface {
	Analyze(in soil.Input) batch.Report
}

// ResultFactory builds the screen pushed once an analysis completes.
type ResultFactory func(rep batch.Report) screen.Screen

const progressInterval = 50 * time.Millisecond

const inputWidth = 10

// field is one numeric form row.
type field struct {
	param soil.Parameter
	input components.NumberInput
}

// Focus positions after the numeric fields.
const (
	focusSoilType = iota + 5
	focusSubmit
	focusCount
)

// AnalyzeScreen is the sample entry form.
type AnalyzeScreen struct {
	analyzer  Analyzer
	newResult ResultFactory
	defaults  soil.Input
	delay     time.Duration

	fields   []field
	soilType soil.SoilType
	focus    int

	state   State
	seq     int
	elapsed time.Duration
	pending soil.Input
	errMsg  string
}

var _ screen.Screen = (*AnalyzeScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyzeScreen)(nil)
var _ screen.StatusProvider = (*AnalyzeScreen)(nil)

// New creates the form pre-filled with defaults. delay is the artificial
// processing time shown as a progress bar before the result appears.
func New(analyzer Analyzer, newResult ResultFactory, defaults soil.Input, delay time.Duration) *AnalyzeScreen {
	s := &AnalyzeScreen{
		analyzer:  analyzer,
		newResult: newResult,
		defaults:  defaults.Normalized(),
		delay:     delay,
	}
	for _, p := range soil.AllParameters() {
		s.fields = append(s.fields, field{
			param: p,
			input: components.NewNumberInput(p.DisplayName(), inputWidth),
		})
	}
	s.reset()
	return s
}

func (s *AnalyzeScreen) Init() tea.Cmd {
	return s.setFocus(0)
}

func (s *AnalyzeScreen) Title() string {
	return "New Analysis"
}

// Status reports the single-flight state for the header.
func (s *AnalyzeScreen) Status() string {
	return s.state.String()
}

// State returns the current single-flight state.
func (s *AnalyzeScreen) State() State {
	return s.state
}

func (s *AnalyzeScreen) KeyHints() []layout.KeyHint {
	if s.state == StateAnalyzing {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓/Tab", Description: "Move"},
	}
	if s.focus == focusSoilType {
		hints = append(hints, layout.KeyHint{Key: "←→/Space", Description: "Soil type"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Analyze"},
		layout.KeyHint{Key: "Ctrl+R", Description: "Reset"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *AnalyzeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressTickMsg:
		return s, s.handleTick(msg)
	case analysisDoneMsg:
		return s, s.handleDone(msg)
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.focus < len(s.fields) {
		var cmd tea.Cmd
		s.fields[s.focus].input, cmd = s.fields[s.focus].input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AnalyzeScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if s.state == StateAnalyzing {
		return nil
	}

	switch msg.String() {
	case "ctrl+r":
		s.reset()
		return s.setFocus(0)
	case "tab", "down":
		return s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab", "up":
		return s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "enter":
		if s.focus < len(s.fields) {
			return s.setFocus(s.focus + 1)
		}
		return s.Submit()
	}

	if s.focus == focusSoilType {
		switch msg.String() {
		case "left", "right", "space", " ":
			s.soilType = s.soilType.Next()
		}
		return nil
	}

	if s.focus < len(s.fields) {
		var cmd tea.Cmd
		s.fields[s.focus].input, cmd = s.fields[s.focus].input.Update(msg)
		s.errMsg = ""
		return cmd
	}
	return nil
}

// Submit starts an analysis of the form contents. It is a no-op while an
// analysis is already running.
func (s *AnalyzeScreen) Submit() tea.Cmd {
	if s.state == StateAnalyzing {
		return nil
	}
	in, err := s.Input()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.errMsg = ""
	s.state = StateAnalyzing
	s.seq++
	s.elapsed = 0
	s.pending = in

	if s.delay <= 0 {
		return s.run()
	}
	return s.tick()
}

func (s *AnalyzeScreen) tick() tea.Cmd {
	seq := s.seq
	return tea.Tick(progressInterval, func(time.Time) tea.Msg {
		return progressTickMsg{seq: seq}
	})
}

// run analyzes the pending sample off the update loop.
func (s *AnalyzeScreen) run() tea.Cmd {
	seq, in, analyzer := s.seq, s.pending, s.analyzer
	return func() tea.Msg {
		return analysisDoneMsg{seq: seq, report: analyzer.Analyze(in)}
	}
}

func (s *AnalyzeScreen) handleTick(msg progressTickMsg) tea.Cmd {
	if s.state != StateAnalyzing || msg.seq != s.seq {
		return nil
	}
	s.elapsed += progressInterval
	if s.elapsed >= s.delay {
		s.elapsed = s.delay
		return s.run()
	}
	return s.tick()
}

func (s *AnalyzeScreen) handleDone(msg analysisDoneMsg) tea.Cmd {
	if s.state != StateAnalyzing || msg.seq != s.seq {
		return nil
	}
	s.state = StateIdle
	next := s.newResult(msg.report)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// Progress returns the fraction of the artificial delay that has passed.
func (s *AnalyzeScreen) Progress() float64 {
	if s.state != StateAnalyzing {
		return 0
	}
	if s.delay <= 0 {
		return 1
	}
	return float64(s.elapsed) / float64(s.delay)
}

// Input builds a sample from the form. Empty fields take their default.
func (s *AnalyzeScreen) Input() (soil.Input, error) {
	in := s.defaults
	for _, f := range s.fields {
		v, ok, err := f.input.Float()
		if err != nil {
			return soil.Input{}, fmt.Errorf("%s: %q is not a number", f.param.DisplayName(), f.input.Value())
		}
		if ok {
			in = in.With(f.param, v)
		}
	}
	in.SoilType = s.soilType
	return in, nil
}

func (s *AnalyzeScreen) reset() {
	for i := range s.fields {
		v, _ := s.defaults.Value(s.fields[i].param)
		s.fields[i].input.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
	}
	s.soilType = s.defaults.SoilType
	s.errMsg = ""
}

func (s *AnalyzeScreen) setFocus(i int) tea.Cmd {
	if s.focus < len(s.fields) {
		s.fields[s.focus].input.Blur()
	}
	s.focus = i
	if i < len(s.fields) {
		return s.fields[i].input.Focus()
	}
	return nil
}
