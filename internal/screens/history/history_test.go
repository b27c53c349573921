package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/store"
)

type mockEventRepo struct {
	rounds []store.RoundRecord
	totals []store.PartTotals
}

func (m *mockEventRepo) AppendRoundEvent(context.Context, store.RoundEventData) error { return nil }
func (m *mockEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) QueryRounds(_ context.Context, _ store.QueryOpts) ([]store.RoundRecord, error) {
	return m.rounds, nil
}
func (m *mockEventRepo) AnswerTotals(context.Context) ([]store.PartTotals, error) {
	return m.totals, nil
}
func (m *mockEventRepo) DeleteHistory(context.Context, string, string) error { return nil }

var now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func round(action string, score, n int, ago time.Duration) store.RoundRecord {
	return store.RoundRecord{
		Timestamp: now.Add(-ago),
		RoundEventData: store.RoundEventData{
			RoundID: "r", WorkKey: "heike", PartKey: "gion",
			Action: action, Questions: n, Score: score,
		},
	}
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{Works: []catalog.Work{{
		Key: "heike", Title: "平家物語",
		Parts: []catalog.Part{{Key: "gion", Title: "祇園精舎"}},
	}}}
}

func loadedScreen(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	s := New(testCatalog(), repo)
	s.now = func() time.Time { return now }
	s.Update(s.Init()())
	return s
}

func TestHistoryScreen_SkipsStartEvents(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{rounds: []store.RoundRecord{
		round(store.RoundStart, 0, 5, time.Minute),
		round(store.RoundComplete, 4, 5, 2*time.Hour),
		round(store.RoundAbandon, 1, 5, 3*time.Hour),
	}})

	if len(s.rounds) != 2 {
		t.Fatalf("rounds = %d, want 2", len(s.rounds))
	}
	view := s.View(80, 24)
	for _, want := range []string{"平家物語 · 祇園精舎", "4 / 5", "中断", "2 hours ago"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{})
	if !strings.Contains(s.View(80, 24), "まだ記録がありません") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryScreen_ExpandShowsTotals(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{
		rounds: []store.RoundRecord{round(store.RoundComplete, 3, 5, time.Hour)},
		totals: []store.PartTotals{{WorkKey: "heike", PartKey: "gion", Answers: 1200, Correct: 900, LastSeen: now}},
	})

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[0] {
		t.Fatal("expected row to expand")
	}
	view := s.View(100, 24)
	if !strings.Contains(view, "1,200 answers, 75% correct") {
		t.Errorf("expected all-time totals in view:\n%s", view)
	}
}

func TestRoundColor(t *testing.T) {
	if roundColor(round(store.RoundAbandon, 5, 5, 0)) == roundColor(round(store.RoundComplete, 5, 5, 0)) {
		t.Error("abandoned rounds should be dimmed")
	}
	if roundColor(round(store.RoundComplete, 1, 5, 0)) == roundColor(round(store.RoundComplete, 5, 5, 0)) {
		t.Error("perfect and poor rounds should differ")
	}
}
