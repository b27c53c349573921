package progress

import "slices"

// Record classifies the questions of one part into three disjoint lists.
// After initialization their union is exactly the part's question ID set.
type Record struct {
	Correct     []int `json:"correct"`
	Incorrect   []int `json:"incorrect"`
	Unattempted []int `json:"unattempted"`
}

// NewRecord returns a record with every ID unattempted, in the given order.
func NewRecord(ids []int) *Record {
	return &Record{
		Correct:     []int{},
		Incorrect:   []int{},
		Unattempted: slices.Clone(ids),
	}
}

// Reclassify removes id from whichever list holds it and appends it to
// Correct or Incorrect depending on the latest answer.
func (r *Record) Reclassify(id int, correct bool) {
	r.Correct = without(r.Correct, id)
	r.Incorrect = without(r.Incorrect, id)
	r.Unattempted = without(r.Unattempted, id)

	if correct {
		r.Correct = append(r.Correct, id)
	} else {
		r.Incorrect = append(r.Incorrect, id)
	}
}

// Counts returns the sizes of the three lists.
func (r *Record) Counts() (correct, incorrect, unattempted int) {
	return len(r.Correct), len(r.Incorrect), len(r.Unattempted)
}

// Reconcile aligns the record with the part's current pool: IDs missing
// from ids are dropped, an ID held by more than one list keeps its first
// place (incorrect, then correct, then unattempted), and pool IDs the record
// does not hold are appended to Unattempted in pool order. It reports
// whether the record changed.
func (r *Record) Reconcile(ids []int) bool {
	pool := make(map[int]bool, len(ids))
	for _, id := range ids {
		pool[id] = true
	}

	seen := make(map[int]bool, len(ids))
	changed := false
	keep := func(list []int) []int {
		out := make([]int, 0, len(list))
		for _, id := range list {
			if !pool[id] || seen[id] {
				changed = true
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
		return out
	}
	r.Incorrect = keep(r.Incorrect)
	r.Correct = keep(r.Correct)
	r.Unattempted = keep(r.Unattempted)

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			r.Unattempted = append(r.Unattempted, id)
			changed = true
		}
	}
	return changed
}

// normalize replaces nil lists with empty ones so they encode as [].
func (r *Record) normalize() {
	if r.Correct == nil {
		r.Correct = []int{}
	}
	if r.Incorrect == nil {
		r.Incorrect = []int{}
	}
	if r.Unattempted == nil {
		r.Unattempted = []int{}
	}
}

// without returns ids minus every occurrence of id. Never returns nil.
func without(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
