package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/progress"
	"github.com/abhisek/koten/internal/session"
)

func playCatalog() *catalog.Catalog {
	part := catalog.Part{Key: "gion", Title: "祇園精舎"}
	for id := 1; id <= 2; id++ {
		part.Questions = append(part.Questions, catalog.Question{
			ID: id, Question: "q", Options: []string{"一", "二", "三"}, Answer: 1, Explanation: "解説",
		})
	}
	return &catalog.Catalog{
		Version: "v1.0.0",
		Works:   []catalog.Work{{Key: "heike", Title: "平家物語", Parts: []catalog.Part{part}}},
	}
}

func TestPlayRound(t *testing.T) {
	ctx := context.Background()
	repo := progress.NewMemoryRepo(nil)
	s := session.New(session.Options{Catalog: playCatalog(), Progress: repo})
	require.NoError(t, s.Start(ctx, "heike", "gion"))

	// An invalid entry re-prompts; then one right and one wrong answer.
	in := strings.NewReader("9\n2\n1\n")
	var out bytes.Buffer
	require.NoError(t, playRound(ctx, s, in, &out))

	text := out.String()
	assert.Contains(t, text, "── Question 1/2 ──")
	assert.Contains(t, text, "Enter a number between 1 and 3")
	assert.Contains(t, text, "正解！")
	assert.Contains(t, text, "不正解… 正解は 2) 二")
	assert.Contains(t, text, "── Summary: 1/2 correct (50%) ──")
	assert.Equal(t, session.PhaseCompleted, s.Phase())

	rec, ok := repo.Load(ctx).Get("heike", "gion")
	require.True(t, ok)
	assert.Equal(t, []int{1}, rec.Correct)
	assert.Equal(t, []int{2}, rec.Incorrect)
}

func TestPlayRound_Quit(t *testing.T) {
	ctx := context.Background()
	s := session.New(session.Options{Catalog: playCatalog(), Progress: progress.NewMemoryRepo(nil)})
	require.NoError(t, s.Start(ctx, "heike", "gion"))

	var out bytes.Buffer
	require.NoError(t, playRound(ctx, s, strings.NewReader("q\n"), &out))
	assert.Contains(t, out.String(), "Round abandoned.")
	assert.Equal(t, session.PhaseInRound, s.Phase())
	assert.NotContains(t, out.String(), "Summary")
}
