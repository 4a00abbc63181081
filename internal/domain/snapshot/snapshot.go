package snapshot

import (
	"context"
	"time"
)

// Record is a timestamped JSON blob. Freshness is judged by the
// consumer against its own TTL; the store only remembers when the blob
// was written.
type Record struct {
	Key     string
	Payload []byte
	SavedAt time.Time
}

// Repository is the cache port behind tournament-list and match-detail
// snapshots. Implementations are expected to be safe for concurrent
// use; last write wins.
type Repository interface {
	Get(ctx context.Context, key string) (Record, bool, error)
	Set(ctx context.Context, key string, payload []byte, savedAt time.Time) error
	Delete(ctx context.Context, key string) error
}
