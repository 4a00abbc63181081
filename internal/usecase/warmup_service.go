package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/golazo-app/golazo-api/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
)

// WarmupService refreshes match-detail snapshots for every match of a
// date through a bounded worker pool. The live-refresh loop and the
// internal warm job both go through here, so overlapping polls share
// the same concurrency budget.
type WarmupService struct {
	matches    *MatchService
	details    *DetailService
	maxWorkers int
	logger     *logging.Logger
}

type WarmResult struct {
	Date      string `json:"date"`
	Requested int    `json:"requested"`
	Warmed    int    `json:"warmed"`
	Failed    int    `json:"failed"`
}

func NewWarmupService(matches *MatchService, details *DetailService, maxWorkers int, logger *logging.Logger) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WarmupService{
		matches:    matches,
		details:    details,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

func (s *WarmupService) WarmDate(ctx context.Context, date string) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.WarmDate")
	defer span.End()

	list, err := s.matches.ListByDate(ctx, date)
	if err != nil {
		return WarmResult{}, err
	}

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create warm worker pool: %w", err)
	}
	defer pool.Release()

	var warmed, failed atomic.Int32
	var wg sync.WaitGroup

	for _, m := range list {
		matchID := m.ID
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			if _, refreshErr := s.details.RefreshMatchDetail(ctx, matchID); refreshErr != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "warm match detail failed", "match_id", matchID, "error", refreshErr)
				return
			}
			warmed.Add(1)
		}); submitErr != nil {
			wg.Done()
			failed.Add(1)
			s.logger.WarnContext(ctx, "submit warm task failed", "match_id", matchID, "error", submitErr)
		}
	}
	wg.Wait()

	result := WarmResult{
		Date:      date,
		Requested: len(list),
		Warmed:    int(warmed.Load()),
		Failed:    int(failed.Load()),
	}
	s.logger.InfoContext(ctx, "warmed match details",
		"date", date,
		"requested", result.Requested,
		"warmed", result.Warmed,
		"failed", result.Failed,
	)

	return result, nil
}
