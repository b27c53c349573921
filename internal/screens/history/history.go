package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/router"
	"github.com/abhisek/koten/internal/screen"
	"github.com/abhisek/koten/internal/store"
	"github.com/abhisek/koten/internal/ui/components"
	"github.com/abhisek/koten/internal/ui/layout"
	"github.com/abhisek/koten/internal/ui/theme"
)

// historyLimit caps the number of round events shown.
const historyLimit = 50

type historyLoadedMsg struct {
	Rounds []store.RoundRecord
	Totals map[string]store.PartTotals // "work/part" → all-time answers
	Err    error
}

// HistoryScreen displays finished and abandoned rounds, newest first.
type HistoryScreen struct {
	catalog   *catalog.Catalog
	eventRepo store.EventRepo
	rounds    []store.RoundRecord
	totals    map[string]store.PartTotals
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
	now       func() time.Time
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(c *catalog.Catalog, eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		catalog:   c,
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
		now:       time.Now,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		events, err := repo.QueryRounds(ctx, store.QueryOpts{Limit: historyLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Start events only matter while the round is running.
		var rounds []store.RoundRecord
		for _, e := range events {
			if e.Action != store.RoundStart {
				rounds = append(rounds, e)
			}
		}

		totals := make(map[string]store.PartTotals)
		all, err := repo.AnswerTotals(ctx)
		if err == nil {
			for _, pt := range all {
				totals[pt.WorkKey+"/"+pt.PartKey] = pt
			}
		}
		return historyLoadedMsg{Rounds: rounds, Totals: totals}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rounds = msg.Rounds
			s.totals = msg.Totals
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.Keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, components.Keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, components.Keys.Down):
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
		case key.Matches(msg, components.Keys.Select):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rounds) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  まだ記録がありません。問題に挑戦しましょう！")
	}

	now := s.now()
	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.rounds {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		result := fmt.Sprintf("%d / %d", r.Score, r.Questions)
		if r.Action == store.RoundAbandon {
			result = "中断"
		}
		line := fmt.Sprintf("%s%-12s  %s  %s",
			prefix, humanize.RelTime(r.Timestamp, now, "ago", "from now"), s.partTitle(r.WorkKey, r.PartKey), result)

		style := lipgloss.NewStyle().Foreground(roundColor(r))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("    "+s.detail(r))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// detail describes the all-time record of the round's part.
func (s *HistoryScreen) detail(r store.RoundRecord) string {
	pt, ok := s.totals[r.WorkKey+"/"+r.PartKey]
	if !ok || pt.Answers == 0 {
		return "No answers recorded for this part"
	}
	return fmt.Sprintf("%s answers, %.0f%% correct, last %s",
		humanize.Comma(int64(pt.Answers)), pt.Accuracy()*100, humanize.Time(pt.LastSeen))
}

func (s *HistoryScreen) partTitle(workKey, partKey string) string {
	if s.catalog == nil {
		return workKey + "/" + partKey
	}
	w, err := s.catalog.Work(workKey)
	if err != nil {
		return workKey + "/" + partKey
	}
	p, err := w.Part(partKey)
	if err != nil {
		return w.Title + " · " + partKey
	}
	return w.Title + " · " + p.Title
}

func roundColor(r store.RoundRecord) color.Color {
	switch {
	case r.Action == store.RoundAbandon:
		return theme.TextDim
	case r.Questions > 0 && r.Score == r.Questions:
		return theme.Success
	case r.Score*2 < r.Questions:
		return theme.Error
	default:
		return theme.Text
	}
}
