package progress

import (
	"context"
	"sync"
)

// Repo persists the whole mastery table as a single value.
type Repo interface {
	// Load returns the persisted table, or an empty table when nothing is
	// stored or the stored value cannot be decoded. It never fails.
	Load(ctx context.Context) Table

	// Save replaces the persisted table with t.
	Save(ctx context.Context, t Table) error
}

// MemoryRepo keeps the encoded table in memory. Useful for tests and for
// running without a database.
type MemoryRepo struct {
	mu   sync.Mutex
	data []byte
}

var _ Repo = (*MemoryRepo)(nil)

// NewMemoryRepo returns a MemoryRepo holding raw, which may be nil.
func NewMemoryRepo(raw []byte) *MemoryRepo {
	return &MemoryRepo{data: raw}
}

func (m *MemoryRepo) Load(_ context.Context) Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.data) == 0 {
		return Table{}
	}
	t, err := Decode(m.data)
	if err != nil {
		return Table{}
	}
	return t
}

func (m *MemoryRepo) Save(_ context.Context, t Table) error {
	b, err := Encode(t)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = b
	m.mu.Unlock()
	return nil
}

// Raw returns the last saved encoding.
func (m *MemoryRepo) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data
}
