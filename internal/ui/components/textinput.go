package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput for decimal readings. Keys other
// than digits, '.' and '-' are dropped.
type NumberInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewNumberInput creates a blurred numeric input showing placeholder when
// empty.
func NewNumberInput(placeholder string, maxWidth int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return NumberInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Focus focuses the input and returns the cursor blink command.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur removes focus.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Focused reports whether the input has focus.
func (n NumberInput) Focused() bool {
	return n.Model.Focused()
}

// Update handles messages.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !isNumericKey(key[0]) {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

func isNumericKey(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

// View renders the input.
func (n NumberInput) View() string {
	return n.Model.View()
}

// Value returns the current raw text.
func (n NumberInput) Value() string {
	return n.Model.Value()
}

// SetValue replaces the text.
func (n *NumberInput) SetValue(s string) {
	n.Model.SetValue(s)
}

// Float parses the input. Empty input returns ok=false with a nil error so
// callers can fall back to a default.
func (n NumberInput) Float() (v float64, ok bool, err error) {
	s := strings.TrimSpace(n.Model.Value())
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
