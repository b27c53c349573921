package session

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/router"
	"github.com/abhisek/koten/internal/screen"
	sess "github.com/abhisek/koten/internal/session"
	"github.com/abhisek/koten/internal/ui/components"
	"github.com/abhisek/koten/internal/ui/layout"
)

// SessionScreen implements screen.Screen for the round in progress. The
// round must already be started; the screen only answers and advances.
type SessionScreen struct {
	session *sess.Session
	choice  components.MultiChoice
	outcome *sess.Outcome
	warnMsg string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for a started session.
func New(s *sess.Session) screen.Screen {
	scr := &SessionScreen{session: s}
	scr.loadQuestion()
	return scr
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	work, err := s.session.Catalog().Work(s.session.WorkKey())
	if err != nil {
		return "Quiz"
	}
	part, err := work.Part(s.session.PartKey())
	if err != nil {
		return work.Title
	}
	return work.Title + " · " + part.Title
}

func (s *SessionScreen) Status() string {
	return fmt.Sprintf("正解 %d / %d", s.session.Score(), s.session.Len())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.outcome != nil {
		return components.Hints(components.Keys.Next, components.Keys.Back)
	}
	return append([]layout.KeyHint{{Key: "1-9", Description: "Answer"}},
		components.Hints(components.Keys.Up, components.Keys.Down, components.Keys.Select, components.Keys.Back)...)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.outcome != nil {
		if key.Matches(kmsg, components.Keys.Next) {
			return s.advance()
		}
		return s, nil
	}

	s.choice, _ = s.choice.Update(kmsg)
	if s.choice.Submitted {
		return s.submitAnswer()
	}
	return s, nil
}

// submitAnswer grades the chosen option through the session.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	out, err := s.session.Answer(context.Background(), s.choice.ChosenIndex)
	switch {
	case errors.Is(err, sess.ErrNoQuestion), errors.Is(err, sess.ErrAlreadyAnswered):
		s.choice.Submitted = false
		return s, nil
	case err != nil:
		s.warnMsg = "進捗を保存できませんでした"
	default:
		s.warnMsg = ""
	}

	s.outcome = &out
	s.choice.Reveal(out.Answer)
	return s, nil
}

// advance moves to the next question or replaces this screen with the result.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if s.session.Advance() == sess.PhaseCompleted {
		next := newSummaryScreenAdapter(s.session)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	s.loadQuestion()
	return s, nil
}

func (s *SessionScreen) loadQuestion() {
	s.outcome = nil
	q, ok := s.session.Current()
	if !ok {
		q = catalog.Question{}
	}
	s.choice = components.NewMultiChoice(q.Question, q.Options)
}
