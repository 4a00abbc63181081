package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/golazo-app/golazo-api/internal/domain/match"
	"github.com/golazo-app/golazo-api/internal/domain/snapshot"
	"github.com/golazo-app/golazo-api/internal/domain/tournament"
)

type fakeProvider struct {
	mu sync.Mutex

	matches    []match.Match
	matchesErr error

	detail    match.Match
	detailErr error

	shots    []ExternalShot
	shotsErr error

	stats    []ExternalPlayerStats
	statsErr error

	incidents    []ExternalIncident
	incidentsErr error

	tournaments    []tournament.Tournament
	tournamentsErr error

	calls map[string]int
}

func (f *fakeProvider) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeProvider) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeProvider) MatchesByDate(ctx context.Context, date string) ([]match.Match, error) {
	f.record("matches")
	return f.matches, f.matchesErr
}

func (f *fakeProvider) MatchByID(ctx context.Context, matchID int64) (match.Match, error) {
	f.record("match")
	return f.detail, f.detailErr
}

func (f *fakeProvider) ShotmapByMatch(ctx context.Context, matchID int64) ([]ExternalShot, error) {
	f.record("shotmap")
	return f.shots, f.shotsErr
}

func (f *fakeProvider) LineupStatsByMatch(ctx context.Context, matchID int64) ([]ExternalPlayerStats, error) {
	f.record("lineups")
	return f.stats, f.statsErr
}

func (f *fakeProvider) IncidentsByMatch(ctx context.Context, matchID int64) ([]ExternalIncident, error) {
	f.record("incidents")
	return f.incidents, f.incidentsErr
}

func (f *fakeProvider) TournamentSuggestions(ctx context.Context) ([]tournament.Tournament, error) {
	f.record("tournaments")
	return f.tournaments, f.tournamentsErr
}

type fakeSnapshotRepo struct {
	mu      sync.Mutex
	records map[string]snapshot.Record
	getErr  error
	setErr  error
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{records: make(map[string]snapshot.Record)}
}

func (f *fakeSnapshotRepo) Get(ctx context.Context, key string) (snapshot.Record, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return snapshot.Record{}, false, f.getErr
	}
	rec, ok := f.records[key]
	return rec, ok, nil
}

func (f *fakeSnapshotRepo) Set(ctx context.Context, key string, payload []byte, savedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.records[key] = snapshot.Record{Key: key, Payload: payload, SavedAt: savedAt}
	return nil
}

func (f *fakeSnapshotRepo) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, key)
	return nil
}

func snapshotRecord(key string, payload []byte, savedAt time.Time) snapshot.Record {
	return snapshot.Record{Key: key, Payload: payload, SavedAt: savedAt}
}
