package progress

import (
	"encoding/json"
	"fmt"
)

// Namespace is the storage key the mastery table is persisted under.
const Namespace = "classical_quiz_progress"

// Table maps work key → part key → mastery record.
type Table map[string]map[string]*Record

// Get returns the record for a work/part pair, if one exists.
func (t Table) Get(work, part string) (*Record, bool) {
	parts, ok := t[work]
	if !ok {
		return nil, false
	}
	r, ok := parts[part]
	return r, ok && r != nil
}

// EnsureInitialized creates a record with every ID unattempted if none
// exists for the pair, and returns the (possibly pre-existing) record.
func (t Table) EnsureInitialized(work, part string, ids []int) *Record {
	if r, ok := t.Get(work, part); ok {
		return r
	}
	if t[work] == nil {
		t[work] = make(map[string]*Record)
	}
	r := NewRecord(ids)
	t[work][part] = r
	return r
}

// Sync returns the record for a work/part pair, creating it or reconciling
// it with ids. changed is true when the table differs from what was loaded
// and should be saved.
func (t Table) Sync(work, part string, ids []int) (r *Record, changed bool) {
	if r, ok := t.Get(work, part); ok {
		return r, r.Reconcile(ids)
	}
	return t.EnsureInitialized(work, part, ids), true
}

// Delete removes the record for a work/part pair. An empty part key
// removes every record of the work; empty work removes everything.
// Returns the number of records removed.
func (t Table) Delete(work, part string) int {
	switch {
	case work == "":
		n := 0
		for w := range t {
			n += len(t[w])
			delete(t, w)
		}
		return n
	case part == "":
		n := len(t[work])
		delete(t, work)
		return n
	}
	parts, ok := t[work]
	if !ok {
		return 0
	}
	if _, ok := parts[part]; !ok {
		return 0
	}
	delete(parts, part)
	if len(parts) == 0 {
		delete(t, work)
	}
	return 1
}

// Encode serializes the table to its JSON storage form.
func Encode(t Table) ([]byte, error) {
	if t == nil {
		t = Table{}
	}
	for _, parts := range t {
		for _, r := range parts {
			if r != nil {
				r.normalize()
			}
		}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	return b, nil
}

// Decode parses the JSON storage form. Callers treat an error as an
// empty table.
func Decode(data []byte) (Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	if t == nil {
		return Table{}, nil
	}
	for w, parts := range t {
		if parts == nil {
			delete(t, w)
			continue
		}
		for p, r := range parts {
			if r == nil {
				delete(parts, p)
				continue
			}
			r.normalize()
		}
	}
	return t, nil
}
