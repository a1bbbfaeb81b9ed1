package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyPressMsg {
	if s == "enter" {
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestNumberInput_FiltersNonNumericKeys(t *testing.T) {
	in := NewNumberInput("6.5", 8)
	in.Focus()

	for _, k := range []string{"6", "x", ".", "r", "5"} {
		in, _ = in.Update(key(k))
	}
	assert.Equal(t, "6.5", in.Value())

	v, ok, err := in.Float()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 6.5, v)
}

func TestNumberInput_Float(t *testing.T) {
	in := NewNumberInput("", 8)

	_, ok, err := in.Float()
	assert.NoError(t, err)
	assert.False(t, ok, "empty input has no value")

	in.SetValue("1.2.3")
	_, ok, err = in.Float()
	assert.Error(t, err)
	assert.False(t, ok)

	in.SetValue(" -4 ")
	v, ok, err := in.Float()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -4.0, v)
}

func TestMenu_SkipsDisabledAndRunsAction(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { ran = "B"; return nil }},
		{Label: "C", Action: func() tea.Cmd { ran = "C"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected, "cannot move onto a disabled item")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(key("enter"))
	assert.Equal(t, "C", ran)
}

func TestButton_DisabledIgnoresEnter(t *testing.T) {
	pressed := 0
	b := NewButton("Analyze", true, func() tea.Cmd { pressed++; return nil })
	b.Update(key("enter"))
	b.Disabled = true
	b.Update(key("enter"))
	assert.Equal(t, 1, pressed)
	assert.Contains(t, b.View(), "Analyze")
}

func TestProgressBar_View(t *testing.T) {
	p := NewProgressBar("Nitrogen", 0.349, true, 60)
	v := p.View()
	assert.Contains(t, v, "Nitrogen")
	assert.Contains(t, v, "34.9%")
	assert.False(t, strings.Contains(v, "\n"))
}
