// Package selector builds bounded practice rounds from a part's mastery record.
package selector

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/progress"
)

// RoundSize is the maximum number of questions in one round.
const RoundSize = 5

// ErrNoQuestions is returned when no question can be selected for a round.
var ErrNoQuestions = errors.New("no questions available")

// SelectIDs orders the record's IDs for a round:
// 1. Every incorrect ID, in stored order
// 2. Unattempted IDs, in stored (pool) order
// 3. Correct IDs, shuffled
// The result is truncated to RoundSize. rng may be nil, in which case the
// package-level source is used.
func SelectIDs(rec *progress.Record, rng *rand.Rand) []int {
	if rec == nil {
		return nil
	}

	ids := make([]int, 0, RoundSize)
	ids = append(ids, rec.Incorrect...)
	if len(ids) < RoundSize {
		ids = append(ids, rec.Unattempted...)
	}
	if len(ids) < RoundSize {
		correct := slices.Clone(rec.Correct)
		shuffle(rng, correct)
		ids = append(ids, correct...)
	}

	if len(ids) > RoundSize {
		ids = ids[:RoundSize]
	}
	return ids
}

// Select maps SelectIDs onto the part's questions. IDs that are no longer in
// the pool are skipped. Returns ErrNoQuestions if the round is empty.
func Select(rec *progress.Record, part catalog.Part, rng *rand.Rand) ([]catalog.Question, error) {
	var round []catalog.Question
	for _, id := range SelectIDs(rec, rng) {
		q, ok := part.Question(id)
		if !ok {
			continue
		}
		round = append(round, q)
	}

	if len(round) == 0 {
		return nil, fmt.Errorf("part %q: %w", part.Key, ErrNoQuestions)
	}
	return round, nil
}

func shuffle(rng *rand.Rand, ids []int) {
	swap := func(i, j int) { ids[i], ids[j] = ids[j], ids[i] }
	if rng == nil {
		rand.Shuffle(len(ids), swap)
		return
	}
	rng.Shuffle(len(ids), swap)
}
