package components

import (
	"fmt"
	"image/color"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/koten/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector component. It only collects the
// learner's choice; the caller grades it and calls Reveal.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	Revealed     bool
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: -1,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Digit keys choose an
// option directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if i, ok := OptionIndex(kmsg.String(), len(m.Options)); ok {
		m.Selected = i
		m.Submitted = true
		m.ChosenIndex = i
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, Keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, Keys.Select):
		if len(m.Options) > 0 {
			m.Submitted = true
			m.ChosenIndex = m.Selected
		}
	}

	return m, nil
}

// Reveal marks the correct option for display.
func (m *MultiChoice) Reveal(correctIndex int) {
	m.CorrectIndex = correctIndex
	m.Revealed = true
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var fg color.Color = theme.Text
		bold := false
		switch {
		case m.Revealed && i == m.CorrectIndex:
			fg, bold = theme.Success, true
		case m.Revealed && i == m.ChosenIndex:
			fg, bold = theme.Error, true
		case m.Submitted:
			fg = theme.TextDim
		case i == m.Selected:
			fg, bold = theme.Secondary, true
		}
		s += lipgloss.NewStyle().Foreground(fg).Bold(bold).Render(line) + "\n"
	}

	return s
}

// IsCorrect returns true if the learner chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.ChosenIndex == m.CorrectIndex
}
