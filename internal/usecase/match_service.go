package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golazo-app/golazo-api/internal/domain/match"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
)

const dateLayout = "2006-01-02"

// MatchService serves the scheduled-match listings.
type MatchService struct {
	provider StatsProvider
	logger   *logging.Logger
}

func NewMatchService(provider StatsProvider, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{provider: provider, logger: logger}
}

func (s *MatchService) ListByDate(ctx context.Context, date string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByDate")
	defer span.End()

	date = strings.TrimSpace(date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrInvalidInput)
	}

	matches, err := s.provider.MatchesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list matches date=%s: %w", date, err)
	}

	return matches, nil
}
