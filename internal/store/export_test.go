package store

import (
	"context"

	"github.com/abhisek/koten/internal/progress"
)

// Raw returns the stored JSON for the namespace, or "" when absent.
func (r *ProgressRepo) Raw(ctx context.Context) (string, error) {
	return r.get(ctx, progress.Namespace)
}

// PutRaw overwrites the stored JSON without validation.
func (r *ProgressRepo) PutRaw(ctx context.Context, raw string) error {
	return r.put(ctx, progress.Namespace, raw)
}
