package progress

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPartition checks that the three lists are disjoint, duplicate free
// and together cover exactly ids.
func assertPartition(t *testing.T, r *Record, ids []int) {
	t.Helper()
	seen := make(map[int]int)
	for _, list := range [][]int{r.Correct, r.Incorrect, r.Unattempted} {
		for _, id := range list {
			seen[id]++
		}
	}
	for _, id := range ids {
		assert.Equal(t, 1, seen[id], "id %d should appear exactly once", id)
		delete(seen, id)
	}
	assert.Empty(t, seen, "record holds IDs outside the pool")
}

func TestEnsureInitialized(t *testing.T) {
	table := Table{}
	ids := []int{3, 1, 2}

	r := table.EnsureInitialized("w", "p", ids)
	assert.Equal(t, []int{3, 1, 2}, r.Unattempted)
	assert.Empty(t, r.Correct)
	assert.Empty(t, r.Incorrect)
	assertPartition(t, r, ids)

	// Mutating the caller's slice must not leak into the record.
	ids[0] = 99
	assert.Equal(t, []int{3, 1, 2}, r.Unattempted)
}

func TestEnsureInitializedIdempotent(t *testing.T) {
	table := Table{}
	r := table.EnsureInitialized("w", "p", []int{1, 2, 3})
	r.Reclassify(2, true)

	again := table.EnsureInitialized("w", "p", []int{1, 2, 3})
	assert.Same(t, r, again)
	assert.Equal(t, []int{2}, again.Correct)
	assert.Equal(t, []int{1, 3}, again.Unattempted)
}

func TestReclassify(t *testing.T) {
	ids := []int{1, 2, 3, 4}
	r := NewRecord(ids)

	r.Reclassify(2, false)
	assert.Equal(t, StatusIncorrect, r.Status(2))
	assertPartition(t, r, ids)

	r.Reclassify(2, true)
	assert.Equal(t, StatusCorrect, r.Status(2))
	assertPartition(t, r, ids)

	r.Reclassify(2, true)
	assert.Equal(t, []int{2}, r.Correct)
	assertPartition(t, r, ids)

	r.Reclassify(3, false)
	r.Reclassify(1, false)
	assert.Equal(t, []int{3, 1}, r.Incorrect, "incorrect keeps answer order")
	assert.Equal(t, []int{4}, r.Unattempted)
	assert.Equal(t, StatusUnknown, r.Status(42))
}

func TestReclassifyLatestAnswerWins(t *testing.T) {
	ids := []int{1, 2, 3}
	answers := []bool{true, false, false, true, false}

	r := NewRecord(ids)
	for _, correct := range answers {
		r.Reclassify(1, correct)
		want := StatusIncorrect
		if correct {
			want = StatusCorrect
		}
		assert.Equal(t, want, r.Status(1))
		assertPartition(t, r, ids)
	}
}

func TestCounts(t *testing.T) {
	r := NewRecord([]int{1, 2, 3, 4, 5})
	r.Reclassify(1, true)
	r.Reclassify(2, false)

	c, i, u := r.Counts()
	assert.Equal(t, 1, c)
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, u)
	assert.Equal(t, 5, r.Total())
}

func TestDelete(t *testing.T) {
	newTable := func() Table {
		tb := Table{}
		tb.EnsureInitialized("a", "1", []int{1})
		tb.EnsureInitialized("a", "2", []int{1})
		tb.EnsureInitialized("b", "1", []int{1})
		return tb
	}

	tb := newTable()
	assert.Equal(t, 1, tb.Delete("a", "1"))
	_, ok := tb.Get("a", "1")
	assert.False(t, ok)
	_, ok = tb.Get("a", "2")
	assert.True(t, ok)

	tb = newTable()
	assert.Equal(t, 2, tb.Delete("a", ""))
	assert.NotContains(t, tb, "a")

	tb = newTable()
	assert.Equal(t, 3, tb.Delete("", ""))
	assert.Empty(t, tb)

	tb = newTable()
	assert.Equal(t, 0, tb.Delete("c", "1"))
	assert.Equal(t, 0, tb.Delete("a", "9"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw := `{"makura":{"haru":{"correct":[1,7],"incorrect":[2],"unattempted":[]}},"w":{"p":{"correct":[],"incorrect":[],"unattempted":[3,1,2]}}}`

	tb, err := Decode([]byte(raw))
	require.NoError(t, err)

	out, err := Encode(tb)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))

	again, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, tb, again)
}

func TestEncodeEmptyListsAsArrays(t *testing.T) {
	tb := Table{"w": {"p": &Record{Unattempted: []int{1}}}}
	out, err := Encode(tb)
	require.NoError(t, err)
	assert.JSONEq(t, `{"w":{"p":{"correct":[],"incorrect":[],"unattempted":[1]}}}`, string(out))
}

func TestDecodeMalformed(t *testing.T) {
	for _, raw := range []string{`not json`, `[1,2]`, `{"w":{"p":{"correct":"x"}}}`} {
		_, err := Decode([]byte(raw))
		assert.Error(t, err, raw)
	}

	tb, err := Decode([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, tb)
}

func TestMemoryRepo(t *testing.T) {
	ctx := context.Background()

	repo := NewMemoryRepo(nil)
	assert.Empty(t, repo.Load(ctx))

	tb := Table{}
	r := tb.EnsureInitialized("w", "p", []int{1, 2, 3})
	r.Reclassify(2, false)
	require.NoError(t, repo.Save(ctx, tb))

	loaded := repo.Load(ctx)
	got, ok := loaded.Get("w", "p")
	require.True(t, ok)
	assert.Equal(t, []int{2}, got.Incorrect)
	assert.Equal(t, []int{1, 3}, got.Unattempted)

	// save(load()) leaves the stored value unchanged.
	before := slices.Clone(repo.Raw())
	require.NoError(t, repo.Save(ctx, repo.Load(ctx)))
	assert.JSONEq(t, string(before), string(repo.Raw()))
}

func TestMemoryRepoMalformedFailsSoft(t *testing.T) {
	repo := NewMemoryRepo([]byte(`{broken`))
	tb := repo.Load(context.Background())
	assert.NotNil(t, tb)
	assert.Empty(t, tb)
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name        string
		rec         *Record
		ids         []int
		want        *Record
		wantChanged bool
	}{
		{
			name:        "in sync",
			rec:         &Record{Correct: []int{1}, Incorrect: []int{2}, Unattempted: []int{3}},
			ids:         []int{1, 2, 3},
			want:        &Record{Correct: []int{1}, Incorrect: []int{2}, Unattempted: []int{3}},
			wantChanged: false,
		},
		{
			name:        "stale IDs dropped, pool refilled",
			rec:         &Record{Correct: []int{}, Incorrect: []int{10, 11, 12, 13, 14}, Unattempted: []int{}},
			ids:         []int{1, 2, 3},
			want:        &Record{Correct: []int{}, Incorrect: []int{}, Unattempted: []int{1, 2, 3}},
			wantChanged: true,
		},
		{
			name:        "added question becomes unattempted",
			rec:         &Record{Correct: []int{1, 2, 3, 4, 5, 6, 7}, Incorrect: []int{}, Unattempted: []int{}},
			ids:         []int{1, 2, 3, 4, 5, 6, 7, 8},
			want:        &Record{Correct: []int{1, 2, 3, 4, 5, 6, 7}, Incorrect: []int{}, Unattempted: []int{8}},
			wantChanged: true,
		},
		{
			name:        "empty decoded record",
			rec:         &Record{},
			ids:         []int{2, 1},
			want:        &Record{Correct: []int{}, Incorrect: []int{}, Unattempted: []int{2, 1}},
			wantChanged: true,
		},
		{
			name:        "duplicates across lists keep incorrect",
			rec:         &Record{Correct: []int{1, 2}, Incorrect: []int{2}, Unattempted: []int{1, 3, 3}},
			ids:         []int{1, 2, 3},
			want:        &Record{Correct: []int{1}, Incorrect: []int{2}, Unattempted: []int{3}},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := tt.rec.Reconcile(tt.ids)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, tt.rec)
			assertPartition(t, tt.rec, tt.ids)
		})
	}
}

func TestSync(t *testing.T) {
	tb := Table{}

	r, changed := tb.Sync("w", "p", []int{1, 2})
	assert.True(t, changed, "a new record must be saved")
	assert.Equal(t, []int{1, 2}, r.Unattempted)

	again, changed := tb.Sync("w", "p", []int{1, 2})
	assert.False(t, changed)
	assert.Same(t, r, again)

	_, changed = tb.Sync("w", "p", []int{1, 2, 3})
	assert.True(t, changed)
	assertPartition(t, r, []int{1, 2, 3})
}

func TestDecodeThenSyncRepairsEmptyRecord(t *testing.T) {
	tb, err := Decode([]byte(`{"w":{"p":{}}}`))
	require.NoError(t, err)

	r, changed := tb.Sync("w", "p", []int{4, 5})
	assert.True(t, changed)
	assert.Equal(t, []int{4, 5}, r.Unattempted)
}
