package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/koten/internal/ui/theme"
)

// RoundProgress is the quiz progress bar: a filled track for the answered
// share of the round, followed by the "i / N" question counter.
type RoundProgress struct {
	Current  int     // 1-based number of the question on screen
	Total    int     // questions in the round
	Fraction float64 // filled share of the track, 0..1
	Width    int     // total width including the counter
}

// Counter returns the "i / N" label.
func (p RoundProgress) Counter() string {
	return fmt.Sprintf("%d / %d", p.Current, p.Total)
}

// View renders the track and counter on one line.
func (p RoundProgress) View() string {
	counter := "  " + p.Counter()
	track := max(p.Width-lipgloss.Width(counter), 4)

	filled := int(float64(track) * min(max(p.Fraction, 0), 1))
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(counter)
}
