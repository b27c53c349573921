package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/progress"
	"github.com/abhisek/koten/internal/router"
	"github.com/abhisek/koten/internal/screen"
	"github.com/abhisek/koten/internal/screens/history"
	"github.com/abhisek/koten/internal/screens/parts"
	"github.com/abhisek/koten/internal/session"
	"github.com/abhisek/koten/internal/store"
)

type stubScreen struct {
	screen.Screen
}

func stubQuiz(*session.Session) screen.Screen { return &stubScreen{} }

// nopEvents satisfies store.EventRepo without recording anything.
type nopEvents struct{}

func (nopEvents) AppendRoundEvent(context.Context, store.RoundEventData) error   { return nil }
func (nopEvents) AppendAnswerEvent(context.Context, store.AnswerEventData) error { return nil }
func (nopEvents) QueryRounds(context.Context, store.QueryOpts) ([]store.RoundRecord, error) {
	return nil, nil
}
func (nopEvents) AnswerTotals(context.Context) ([]store.PartTotals, error) { return nil, nil }
func (nopEvents) DeleteHistory(context.Context, string, string) error     { return nil }

func testCatalog() *catalog.Catalog {
	part := func(key string, n int) catalog.Part {
		p := catalog.Part{Key: key, Title: key}
		for id := 1; id <= n; id++ {
			p.Questions = append(p.Questions, catalog.Question{ID: id, Question: "q", Options: []string{"a", "b"}})
		}
		return p
	}
	return &catalog.Catalog{Works: []catalog.Work{
		{Key: "heike", Title: "平家物語", Parts: []catalog.Part{part("gion", 3)}},
		{Key: "hojoki", Title: "方丈記", Parts: []catalog.Part{part("yukukawa", 2)}},
	}}
}

func newTestHome(t *testing.T, events store.EventRepo) (*HomeScreen, *session.Session, *progress.MemoryRepo) {
	t.Helper()
	repo := progress.NewMemoryRepo(nil)
	s := session.New(session.Options{Catalog: testCatalog(), Progress: repo})
	return New(s, repo, events, stubQuiz), s, repo
}

func TestHomeScreen_MenuItems(t *testing.T) {
	h, _, _ := newTestHome(t, nopEvents{})
	want := []string{"平家物語", "方丈記", "学習履歴", "終了"}
	if len(h.labels) != len(want) {
		t.Fatalf("labels = %v, want %v", h.labels, want)
	}
	for i, l := range want {
		if h.labels[i] != l {
			t.Errorf("labels[%d] = %q, want %q", i, h.labels[i], l)
		}
	}
}

func TestHomeScreen_NoHistoryWithoutEvents(t *testing.T) {
	h, _, _ := newTestHome(t, nil)
	for _, l := range h.labels {
		if l == "学習履歴" {
			t.Error("history item should be hidden without an event repo")
		}
	}
}

func TestHomeScreen_OpenWorkPushesParts(t *testing.T) {
	h, _, _ := newTestHome(t, nopEvents{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*parts.PartsScreen); !ok {
		t.Errorf("expected parts screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_OpenHistory(t *testing.T) {
	h, _, _ := newTestHome(t, nopEvents{})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("expected history screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_ResumeRefreshesStats(t *testing.T) {
	h, s, _ := newTestHome(t, nil)
	if h.stats != (stats{total: 5}) {
		t.Fatalf("initial stats = %+v", h.stats)
	}

	ctx := context.Background()
	if err := s.Start(ctx, "heike", "gion"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Answer(ctx, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}

	h.Resume()
	if s.Phase() != session.PhaseIdle {
		t.Errorf("phase after resume = %v, want idle", s.Phase())
	}
	if h.stats != (stats{correct: 1, total: 5}) {
		t.Errorf("stats after resume = %+v", h.stats)
	}
}

func TestHomeScreen_View(t *testing.T) {
	h, _, _ := newTestHome(t, nil)
	view := h.View(80, 30)
	if !strings.Contains(view, "平家物語") {
		t.Error("expected work title in view")
	}
}
