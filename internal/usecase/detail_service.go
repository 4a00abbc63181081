package usecase

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/golazo-app/golazo-api/internal/domain/match"
	"github.com/golazo-app/golazo-api/internal/domain/snapshot"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"github.com/valyala/bytebufferpool"
)

// DetailService composes the per-match detail record: metadata plus the
// reconciled event summary, cached as a snapshot between polls.
//
// Metadata failure is fatal to the whole composition. Each sub-resource
// fetch degrades to an empty feed on failure, so a broken shotmap or
// incidents endpoint still yields a partial summary.
type DetailService struct {
	provider  StatsProvider
	snapshots snapshot.Repository
	ttl       time.Duration
	windowMin int
	logger    *logging.Logger
	now       func() time.Time
}

func NewDetailService(
	provider StatsProvider,
	snapshots snapshot.Repository,
	ttl time.Duration,
	windowMin int,
	logger *logging.Logger,
) *DetailService {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	if windowMin <= 0 {
		windowMin = DefaultFoulCardWindowMin
	}
	return &DetailService{
		provider:  provider,
		snapshots: snapshots,
		ttl:       ttl,
		windowMin: windowMin,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *DetailService) GetMatchDetail(ctx context.Context, matchID int64) (match.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DetailService.GetMatchDetail")
	defer span.End()

	if matchID <= 0 {
		return match.Detail{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	key := detailSnapshotKey(matchID)
	rec, found, err := s.snapshots.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "read match detail snapshot failed", "match_id", matchID, "error", err)
		found = false
	}
	if found && s.now().Sub(rec.SavedAt) < s.ttl {
		var detail match.Detail
		decodeErr := sonic.Unmarshal(rec.Payload, &detail)
		if decodeErr == nil {
			return detail, nil
		}
		s.logger.WarnContext(ctx, "decode match detail snapshot failed, recomposing", "match_id", matchID, "error", decodeErr)
	}

	return s.RefreshMatchDetail(ctx, matchID)
}

// RefreshMatchDetail recomposes the detail from the provider and
// rewrites the snapshot, bypassing any fresh cached copy. Warm-up jobs
// use it to keep snapshots hot during live play.
func (s *DetailService) RefreshMatchDetail(ctx context.Context, matchID int64) (match.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DetailService.RefreshMatchDetail")
	defer span.End()

	if matchID <= 0 {
		return match.Detail{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	detail, err := s.compose(ctx, matchID)
	if err != nil {
		return match.Detail{}, err
	}

	s.storeSnapshot(ctx, detailSnapshotKey(matchID), detail)
	return detail, nil
}

func (s *DetailService) compose(ctx context.Context, matchID int64) (match.Detail, error) {
	var (
		meta    match.Match
		metaErr error

		shots     []ExternalShot
		stats     []ExternalPlayerStats
		incidents []ExternalIncident
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		meta, metaErr = s.provider.MatchByID(ctx, matchID)
	})
	wg.Go(func() {
		v, err := s.provider.ShotmapByMatch(ctx, matchID)
		if err != nil {
			s.logger.WarnContext(ctx, "fetch shotmap failed, using empty shot list", "match_id", matchID, "error", err)
			return
		}
		shots = v
	})
	wg.Go(func() {
		v, err := s.provider.LineupStatsByMatch(ctx, matchID)
		if err != nil {
			s.logger.WarnContext(ctx, "fetch lineups failed, using empty statistics", "match_id", matchID, "error", err)
			return
		}
		stats = v
	})
	wg.Go(func() {
		v, err := s.provider.IncidentsByMatch(ctx, matchID)
		if err != nil {
			s.logger.WarnContext(ctx, "fetch incidents failed, using statistics-only fouls", "match_id", matchID, "error", err)
			return
		}
		incidents = v
	})
	wg.Wait()

	if metaErr != nil {
		return match.Detail{}, fmt.Errorf("fetch match %d: %w", matchID, metaErr)
	}

	return match.Detail{
		Match:   meta,
		Summary: BuildMatchSummary(shots, stats, incidents, s.windowMin),
	}, nil
}

func (s *DetailService) storeSnapshot(ctx context.Context, key string, detail match.Detail) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(detail); err != nil {
		s.logger.WarnContext(ctx, "encode match detail snapshot failed", "key", key, "error", err)
		return
	}

	// The pooled buffer is reused after Put; persist a copy.
	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())

	if err := s.snapshots.Set(ctx, key, payload, s.now()); err != nil {
		s.logger.WarnContext(ctx, "write match detail snapshot failed", "key", key, "error", err)
	}
}

func detailSnapshotKey(matchID int64) string {
	return fmt.Sprintf("match-detail:%d", matchID)
}
