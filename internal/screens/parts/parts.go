package parts

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/progress"
	"github.com/abhisek/koten/internal/router"
	"github.com/abhisek/koten/internal/screen"
	"github.com/abhisek/koten/internal/selector"
	"github.com/abhisek/koten/internal/session"
	"github.com/abhisek/koten/internal/ui/components"
	"github.com/abhisek/koten/internal/ui/layout"
	"github.com/abhisek/koten/internal/ui/theme"
)

// QuizFactory builds the quiz screen for a started session.
type QuizFactory func(*session.Session) screen.Screen

// Counts summarizes one part's mastery record.
type Counts struct {
	Correct     int
	Incorrect   int
	Unattempted int
}

// PartCounts returns the mastery counts for a part. A part that was never
// visited counts every question as unattempted.
func PartCounts(t progress.Table, workKey string, p catalog.Part) Counts {
	rec, ok := t.Get(workKey, p.Key)
	if !ok {
		return Counts{Unattempted: len(p.Questions)}
	}
	c, i, u := rec.Counts()
	return Counts{Correct: c, Incorrect: i, Unattempted: u}
}

// PartsScreen lists the parts of one work with their mastery counts.
type PartsScreen struct {
	work     catalog.Work
	session  *session.Session
	progress progress.Repo
	quiz     QuizFactory
	menu     components.Menu
	notice   string
}

var _ screen.Screen = (*PartsScreen)(nil)
var _ screen.KeyHintProvider = (*PartsScreen)(nil)
var _ screen.Resumer = (*PartsScreen)(nil)

// New creates a PartsScreen for work.
func New(work catalog.Work, s *session.Session, repo progress.Repo, quiz QuizFactory) *PartsScreen {
	p := &PartsScreen{
		work:     work,
		session:  s,
		progress: repo,
		quiz:     quiz,
	}
	p.refresh()
	return p
}

func (p *PartsScreen) Init() tea.Cmd {
	return nil
}

// Resume abandons any round left behind and reloads the counts.
func (p *PartsScreen) Resume() tea.Cmd {
	p.session.Reset()
	p.refresh()
	return nil
}

func (p *PartsScreen) Title() string {
	return p.work.Title
}

func (p *PartsScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.Keys.Up, components.Keys.Down,
		components.Keys.Select, components.Keys.Back)
}

func (p *PartsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

// refresh rebuilds the menu from the stored mastery table.
func (p *PartsScreen) refresh() {
	table := p.progress.Load(context.Background())

	items := make([]components.MenuItem, 0, len(p.work.Parts))
	for _, part := range p.work.Parts {
		c := PartCounts(table, p.work.Key, part)
		items = append(items, components.MenuItem{
			Label:  part.Title,
			Detail: fmt.Sprintf("○%d ×%d －%d", c.Correct, c.Incorrect, c.Unattempted),
			Action: p.startAction(part.Key),
		})
	}

	selected := p.menu.Selected
	p.menu = components.NewMenu(items)
	if selected < len(items) {
		p.menu.Selected = selected
	}
}

// startAction starts a round on the part and pushes the quiz screen. A part
// without questions only shows a notice.
func (p *PartsScreen) startAction(partKey string) func() tea.Cmd {
	return func() tea.Cmd {
		p.notice = ""
		err := p.session.Start(context.Background(), p.work.Key, partKey)
		switch {
		case errors.Is(err, selector.ErrNoQuestions):
			p.notice = "この部分にはまだ問題がありません"
			return nil
		case err != nil:
			p.notice = err.Error()
			return nil
		}
		next := p.quiz(p.session)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (p *PartsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	content := center.Inherit(theme.Title).Render(p.work.Title)
	if p.work.Author != "" {
		content += "\n" + center.Inherit(theme.Subtitle).Render(p.work.Author)
	}
	content += "\n\n"

	card := components.Card(p.menu.View(), cw)
	content += lipgloss.PlaceHorizontal(width, lipgloss.Center, card)

	legend := "○ 正解  × 誤答  － 未回答"
	content += "\n" + center.Inherit(theme.Hint).Render(legend)

	if p.notice != "" {
		content += "\n\n" + center.Inherit(theme.Warning).Render("⚠ "+p.notice)
	}
	return content
}
