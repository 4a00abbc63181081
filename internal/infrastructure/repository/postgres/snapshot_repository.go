package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golazo-app/golazo-api/internal/domain/snapshot"
	"github.com/jmoiron/sqlx"
)

// SnapshotRepository persists snapshots in the snapshots table so warm
// caches survive restarts and are shared across instances.
type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

type snapshotRow struct {
	Key     string    `db:"key"`
	Payload []byte    `db:"payload"`
	SavedAt time.Time `db:"saved_at"`
}

func (r *SnapshotRepository) Get(ctx context.Context, key string) (snapshot.Record, bool, error) {
	var row snapshotRow
	err := r.db.GetContext(ctx, &row,
		`SELECT key, payload, saved_at FROM snapshots WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return snapshot.Record{}, false, nil
	}
	if err != nil {
		return snapshot.Record{}, false, fmt.Errorf("select snapshot key=%s: %w", key, err)
	}

	return snapshot.Record{Key: row.Key, Payload: row.Payload, SavedAt: row.SavedAt}, true, nil
}

func (r *SnapshotRepository) Set(ctx context.Context, key string, payload []byte, savedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, payload, saved_at)
VALUES ($1, $2, $3)
ON CONFLICT (key)
DO UPDATE SET payload = EXCLUDED.payload, saved_at = EXCLUDED.saved_at`,
		key, payload, savedAt)
	if err != nil {
		return fmt.Errorf("upsert snapshot key=%s: %w", key, err)
	}

	return nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete snapshot key=%s: %w", key, err)
	}

	return nil
}
