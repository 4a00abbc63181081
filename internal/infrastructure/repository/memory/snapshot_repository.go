package memory

import (
	"context"
	"sync"
	"time"

	"github.com/golazo-app/golazo-api/internal/domain/snapshot"
)

// SnapshotRepository keeps snapshots in process memory. It is the
// default store for single-instance deployments and for tests.
type SnapshotRepository struct {
	mu      sync.RWMutex
	records map[string]snapshot.Record
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{records: make(map[string]snapshot.Record)}
}

func (r *SnapshotRepository) Get(ctx context.Context, key string) (snapshot.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[key]
	return rec, ok, nil
}

func (r *SnapshotRepository) Set(ctx context.Context, key string, payload []byte, savedAt time.Time) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[key] = snapshot.Record{Key: key, Payload: stored, SavedAt: savedAt}
	return nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, key)
	return nil
}
