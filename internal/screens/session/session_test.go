package session

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/progress"
	"github.com/abhisek/koten/internal/router"
	sess "github.com/abhisek/koten/internal/session"
	"github.com/abhisek/koten/internal/screens/summary"
)

func testCatalog() *catalog.Catalog {
	part := catalog.Part{Key: "gion", Title: "祇園精舎"}
	for id := 1; id <= 2; id++ {
		part.Questions = append(part.Questions, catalog.Question{
			ID:          id,
			Question:    "祇園精舎の鐘の声、何の響きあり？",
			Options:     []string{"諸行無常", "盛者必衰", "春の夜の夢"},
			Answer:      0,
			Explanation: "冒頭の一文。",
		})
	}
	return &catalog.Catalog{
		Version: "v1.0.0",
		Works:   []catalog.Work{{Key: "heike", Title: "平家物語", Parts: []catalog.Part{part}}},
	}
}

func startedScreen(t *testing.T) (*SessionScreen, *sess.Session) {
	t.Helper()
	s := sess.New(sess.Options{Catalog: testCatalog(), Progress: progress.NewMemoryRepo(nil)})
	if err := s.Start(context.Background(), "heike", "gion"); err != nil {
		t.Fatalf("start: %v", err)
	}
	return New(s).(*SessionScreen), s
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSessionScreen_Title(t *testing.T) {
	scr, _ := startedScreen(t)
	if got := scr.Title(); got != "平家物語 · 祇園精舎" {
		t.Errorf("Title = %q", got)
	}
	if got := scr.Status(); got != "正解 0 / 2" {
		t.Errorf("Status = %q", got)
	}
}

func TestSessionScreen_DigitAnswers(t *testing.T) {
	scr, s := startedScreen(t)

	scr.Update(keyPress('1'))
	if scr.outcome == nil {
		t.Fatal("expected outcome after digit key")
	}
	if !scr.outcome.Correct {
		t.Error("option 1 should be correct")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}

	view := scr.View(80, 24)
	if !strings.Contains(view, "正解！") {
		t.Error("expected correct feedback in view")
	}
	if !strings.Contains(view, "冒頭の一文。") {
		t.Error("expected explanation in view")
	}
}

func TestSessionScreen_ArrowAndEnter(t *testing.T) {
	scr, s := startedScreen(t)

	scr.Update(specialKey(tea.KeyDown))
	scr.Update(specialKey(tea.KeyEnter))
	if scr.outcome == nil {
		t.Fatal("expected outcome after enter")
	}
	if scr.outcome.Correct {
		t.Error("option 2 should be incorrect")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
	if !strings.Contains(scr.View(80, 24), "不正解") {
		t.Error("expected incorrect feedback in view")
	}
}

func TestSessionScreen_IgnoresKeysDuringFeedback(t *testing.T) {
	scr, s := startedScreen(t)

	scr.Update(keyPress('1'))
	scr.Update(keyPress('2'))
	if s.Score() != 1 || s.Index() != 0 {
		t.Errorf("answer keys during feedback changed state: score=%d index=%d", s.Score(), s.Index())
	}
}

func TestSessionScreen_AdvanceThenComplete(t *testing.T) {
	scr, s := startedScreen(t)

	scr.Update(keyPress('1'))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("advancing mid-round should not emit a command")
	}
	if s.Index() != 1 || scr.outcome != nil {
		t.Fatalf("expected second question, index=%d", s.Index())
	}

	scr.Update(keyPress('1'))
	_, cmd = scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command after last question")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
	if s.Phase() != sess.PhaseCompleted {
		t.Errorf("phase = %v, want completed", s.Phase())
	}
}

func TestSessionScreen_View(t *testing.T) {
	scr, _ := startedScreen(t)
	view := scr.View(80, 24)
	if !strings.Contains(view, "1 / 2") {
		t.Error("expected question counter in view")
	}
	if !strings.Contains(view, "諸行無常") {
		t.Error("expected options in view")
	}
}
