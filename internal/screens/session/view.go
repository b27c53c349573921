package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/koten/internal/ui/components"
	"github.com/abhisek/koten/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.session.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No round in progress")
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	// Mood strip: the round's running color with its tally.
	answered := s.session.Answers()
	mood := theme.MoodStyle(s.session.Score(), answered)
	tally := fmt.Sprintf("○ %d   × %d", s.session.Score(), answered-s.session.Score())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		mood.Width(cw).Align(lipgloss.Center).Bold(true).Render(tally)))
	b.WriteString("\n\n")

	bar := components.RoundProgress{
		Current:  s.session.Index() + 1,
		Total:    s.session.Len(),
		Fraction: s.session.Progress(),
		Width:    cw,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	card := components.Card(s.choice.View(), cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if s.outcome != nil {
		b.WriteString(s.renderFeedback(width, cw))
	}

	return b.String()
}

// renderFeedback renders the verdict and explanation below the options.
func (s *SessionScreen) renderFeedback(width, cw int) string {
	out := s.outcome
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	if out.Correct {
		b.WriteString(center.Inherit(theme.Correct).Render("正解！"))
	} else {
		b.WriteString(center.Inherit(theme.Incorrect).Render("不正解…"))
	}
	b.WriteString("\n\n")

	if out.Explanation != "" {
		exp := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(out.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if s.warnMsg != "" {
		b.WriteString(center.Inherit(theme.Warning).Render("⚠ " + s.warnMsg))
		b.WriteString("\n\n")
	}

	next := "Enter で次の問題へ"
	if out.Last {
		next = "Enter で結果を見る"
	}
	b.WriteString(center.Foreground(theme.TextDim).Render(next))
	return b.String()
}
