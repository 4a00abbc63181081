package usecase

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/golazo-app/golazo-api/internal/domain/snapshot"
	"github.com/golazo-app/golazo-api/internal/domain/tournament"
	"github.com/golazo-app/golazo-api/internal/platform/cache"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
)

const tournamentSnapshotKey = "tournaments:list"

// TournamentService serves the tournament catalog. Results are held in
// an in-process cache backed by a persistent snapshot; when the
// upstream feed fails, a stale snapshot is preferred and the static
// backup list is the last resort. Fallback results are served but never
// cached. List never returns an error.
type TournamentService struct {
	provider  TournamentProvider
	snapshots snapshot.Repository
	memory    *cache.Store
	ttl       time.Duration
	logger    *logging.Logger
	now       func() time.Time
}

func NewTournamentService(
	provider TournamentProvider,
	snapshots snapshot.Repository,
	memory *cache.Store,
	ttl time.Duration,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TournamentService{
		provider:  provider,
		snapshots: snapshots,
		memory:    memory,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *TournamentService) List(ctx context.Context) []tournament.Tournament {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	out, err := s.memory.GetOrLoad(ctx, tournamentSnapshotKey, s.load)
	if err != nil {
		// Fallbacks never enter the memory cache, so the next call
		// consults the provider again once it recovers.
		s.logger.WarnContext(ctx, "tournament load failed, serving fallback", "error", err)
		return s.fallback(ctx)
	}

	list, ok := out.([]tournament.Tournament)
	if !ok || len(list) == 0 {
		return s.fallback(ctx)
	}
	return list
}

// load yields only cacheable data: a fresh snapshot or a non-empty
// provider result. Everything else is an error so the caller can fall
// back without pinning the fallback for the full TTL.
func (s *TournamentService) load(ctx context.Context) (any, error) {
	rec, found, err := s.snapshots.Get(ctx, tournamentSnapshotKey)
	if err != nil {
		s.logger.WarnContext(ctx, "read tournament snapshot failed", "error", err)
		found = false
	}

	if found && s.now().Sub(rec.SavedAt) < s.ttl {
		if list, decodeErr := decodeTournaments(rec.Payload); decodeErr == nil {
			return list, nil
		} else {
			s.logger.WarnContext(ctx, "decode tournament snapshot failed, refetching", "error", decodeErr)
		}
	}

	list, err := s.provider.TournamentSuggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tournament suggestions: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("provider returned no tournaments")
	}

	payload, err := sonic.Marshal(list)
	if err != nil {
		s.logger.WarnContext(ctx, "encode tournament snapshot failed", "error", err)
		return list, nil
	}
	if err := s.snapshots.Set(ctx, tournamentSnapshotKey, payload, s.now()); err != nil {
		s.logger.WarnContext(ctx, "write tournament snapshot failed", "error", err)
	}

	return list, nil
}

func (s *TournamentService) fallback(ctx context.Context) []tournament.Tournament {
	rec, found, err := s.snapshots.Get(ctx, tournamentSnapshotKey)
	if err == nil && found {
		if stale, decodeErr := decodeTournaments(rec.Payload); decodeErr == nil && len(stale) > 0 {
			s.logger.InfoContext(ctx, "serving stale tournament snapshot", "saved_at", rec.SavedAt)
			return stale
		}
	}
	return tournament.Backup()
}

func decodeTournaments(payload []byte) ([]tournament.Tournament, error) {
	var list []tournament.Tournament
	if err := sonic.Unmarshal(payload, &list); err != nil {
		return nil, fmt.Errorf("decode tournament snapshot: %w", err)
	}
	return list, nil
}
