package summary

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/koten/internal/router"
	"github.com/abhisek/koten/internal/screen"
	"github.com/abhisek/koten/internal/session"
	"github.com/abhisek/koten/internal/ui/components"
	"github.com/abhisek/koten/internal/ui/layout"
	"github.com/abhisek/koten/internal/ui/theme"
)

// Router depths of the screens the result actions return to.
const (
	menuDepth  = 1
	partsDepth = 2
)

// QuizFactory builds the quiz screen for a started session.
type QuizFactory func(*session.Session) screen.Screen

type action int

const (
	actionRetry action = iota
	actionParts
	actionMenu
)

var actionLabels = []string{"もう一度", "部分選択へ", "メニューへ"}

// SummaryScreen displays the result of a finished round.
type SummaryScreen struct {
	session  *session.Session
	summary  session.Summary
	quiz     QuizFactory
	selected action
	errMsg   string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a completed session.
func New(s *session.Session, quiz QuizFactory) *SummaryScreen {
	return &SummaryScreen{
		session: s,
		summary: s.Summary(),
		quiz:    quiz,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.Keys.Select, components.Keys.Retry,
		components.Keys.Parts, components.Keys.Menu)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, components.Keys.Up):
		if s.selected > actionRetry {
			s.selected--
		}
	case key.Matches(kmsg, components.Keys.Down):
		if s.selected < actionMenu {
			s.selected++
		}
	case key.Matches(kmsg, components.Keys.Select):
		return s.run(s.selected)
	case key.Matches(kmsg, components.Keys.Retry):
		return s.run(actionRetry)
	case key.Matches(kmsg, components.Keys.Parts):
		return s.run(actionParts)
	case key.Matches(kmsg, components.Keys.Menu):
		return s.run(actionMenu)
	}
	return s, nil
}

func (s *SummaryScreen) run(a action) (screen.Screen, tea.Cmd) {
	switch a {
	case actionRetry:
		if err := s.session.Retry(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		next := s.quiz(s.session)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case actionParts:
		return s, func() tea.Msg { return router.PopToDepthMsg{Depth: partsDepth} }
	default:
		return s, func() tea.Msg { return router.PopToDepthMsg{Depth: menuDepth} }
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Title).Render("結果"))
	b.WriteString("\n\n")

	mood := theme.MoodStyle(sum.Score, sum.Total)
	score := mood.Bold(true).Padding(0, 3).Render(fmt.Sprintf("%d / %d", sum.Score, sum.Total))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, score))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("%d%%", sum.Percent)))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	msg := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.Text).Render(sum.Message)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, msg))
	b.WriteString("\n\n")

	var buttons []string
	for i, label := range actionLabels {
		buttons = append(buttons, components.ActionButton(label, action(i) == s.selected, 20))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(buttons, "\n")))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(center.Inherit(theme.Warning).Render(s.errMsg))
	}
	return b.String()
}
