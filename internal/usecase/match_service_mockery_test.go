package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golazo-app/golazo-api/internal/domain/match"
	usecasemock "github.com/golazo-app/golazo-api/internal/mocks/usecase"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
	"github.com/golazo-app/golazo-api/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestMatchService_ListByDate_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewStatsProvider(t)

	service := usecase.NewMatchService(provider, logging.NewNop())
	date := "2026-03-14"
	expected := []match.Match{
		{ID: 101, HomeTeam: match.Team{ID: 1, Name: "Real Madrid"}},
		{ID: 102, HomeTeam: match.Team{ID: 3, Name: "Sevilla"}},
	}

	provider.
		On("MatchesByDate", mock.Anything, date).
		Return(expected, nil).
		Once()

	got, err := service.ListByDate(ctx, date)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected match count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID {
		t.Fatalf("unexpected match id: got=%d want=%d", got[0].ID, expected[0].ID)
	}
}

func TestMatchService_ListByDate_ProviderErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewStatsProvider(t)

	service := usecase.NewMatchService(provider, logging.NewNop())
	date := "2026-03-14"
	upstream := errors.New("upstream down")

	provider.
		On("MatchesByDate", mock.Anything, date).
		Return(nil, upstream).
		Once()

	_, err := service.ListByDate(ctx, date)
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
