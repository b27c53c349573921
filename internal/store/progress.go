package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/koten/internal/progress"
)

// ProgressRepo stores the mastery table as one JSON value under
// progress.Namespace in the kv table.
type ProgressRepo struct {
	db  *sql.DB
	log *zap.Logger
}

var _ progress.Repo = (*ProgressRepo)(nil)

// Load returns the stored table. Missing or undecodable values yield an
// empty table; the cause is logged.
func (r *ProgressRepo) Load(ctx context.Context) progress.Table {
	raw, err := r.get(ctx, progress.Namespace)
	if err != nil {
		r.log.Warn("load progress", zap.Error(err))
		return progress.Table{}
	}
	if raw == "" {
		return progress.Table{}
	}

	t, err := progress.Decode([]byte(raw))
	if err != nil {
		r.log.Warn("discarding malformed progress",
			zap.String("key", progress.Namespace),
			zap.Int("bytes", len(raw)),
			zap.Error(err))
		return progress.Table{}
	}
	return t
}

// Save replaces the stored table.
func (r *ProgressRepo) Save(ctx context.Context, t progress.Table) error {
	b, err := progress.Encode(t)
	if err != nil {
		return err
	}
	return r.put(ctx, progress.Namespace, string(b))
}

func (r *ProgressRepo) get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return v, nil
}

func (r *ProgressRepo) put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
