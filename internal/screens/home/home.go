package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/progress"
	"github.com/abhisek/koten/internal/router"
	"github.com/abhisek/koten/internal/screen"
	"github.com/abhisek/koten/internal/screens/history"
	"github.com/abhisek/koten/internal/screens/parts"
	"github.com/abhisek/koten/internal/session"
	"github.com/abhisek/koten/internal/store"
	"github.com/abhisek/koten/internal/ui/components"
	"github.com/abhisek/koten/internal/ui/layout"
)

// stats aggregates mastery counts over the whole catalog.
type stats struct {
	correct   int
	incorrect int
	total     int
}

// HomeScreen is the works menu.
type HomeScreen struct {
	catalog   *catalog.Catalog
	session   *session.Session
	progress  progress.Repo
	eventRepo store.EventRepo
	quiz      parts.QuizFactory
	menu      components.Menu
	labels    []string
	stats     stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. eventRepo may be nil, which hides history.
func New(s *session.Session, repo progress.Repo, eventRepo store.EventRepo, quiz parts.QuizFactory) *HomeScreen {
	h := &HomeScreen{
		catalog:   s.Catalog(),
		session:   s,
		progress:  repo,
		eventRepo: eventRepo,
		quiz:      quiz,
	}

	var items []components.MenuItem
	for _, w := range h.catalog.Works {
		items = append(items, components.MenuItem{Label: w.Title, Action: h.openWork(w)})
	}
	if eventRepo != nil {
		items = append(items, components.MenuItem{Label: "学習履歴", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.catalog, eventRepo)}
			}
		}})
	}
	items = append(items, components.MenuItem{Label: "終了", Action: func() tea.Cmd {
		return tea.Quit
	}})

	h.menu = components.NewMenu(items)
	for _, it := range items {
		h.labels = append(h.labels, it.Label)
	}
	h.refresh()
	return h
}

func (h *HomeScreen) openWork(w catalog.Work) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: parts.New(w, h.session, h.progress, h.quiz)}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume abandons any round left behind and reloads the totals.
func (h *HomeScreen) Resume() tea.Cmd {
	h.session.Reset()
	h.refresh()
	return nil
}

func (h *HomeScreen) refresh() {
	table := h.progress.Load(context.Background())
	var st stats
	for _, w := range h.catalog.Works {
		for _, p := range w.Parts {
			c := parts.PartCounts(table, w.Key, p)
			st.correct += c.Correct
			st.incorrect += c.Incorrect
			st.total += len(p.Questions)
		}
	}
	h.stats = st
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.Keys.Up, components.Keys.Down,
		components.Keys.Select, components.Keys.Quit)
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)

	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.stats, cw, compact),
		renderMenu(h.labels, h.menu.Selected, cw, compact),
	}

	content := strings.Join(sections, "\n\n")
	return components.ScrollFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
