package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golazo-app/golazo-api/internal/domain/match"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
)

func TestMatchServiceListByDate(t *testing.T) {
	provider := &fakeProvider{
		matches: []match.Match{{ID: 1}, {ID: 2}},
	}
	svc := NewMatchService(provider, logging.NewNop())

	list, err := svc.ListByDate(context.Background(), "2026-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("unexpected match count: got=%d want=2", len(list))
	}
}

func TestMatchServiceListByDateValidation(t *testing.T) {
	svc := NewMatchService(&fakeProvider{}, logging.NewNop())

	for _, date := range []string{"", "tomorrow", "2026-3-14", "14-03-2026", "2026/03/14"} {
		if _, err := svc.ListByDate(context.Background(), date); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("date %q should be rejected, got err=%v", date, err)
		}
	}

	// Surrounding whitespace is tolerated.
	if _, err := svc.ListByDate(context.Background(), " 2026-03-14 "); err != nil {
		t.Fatalf("trimmed date should pass: %v", err)
	}
}

func TestMatchServiceListByDateWrapsProviderError(t *testing.T) {
	provider := &fakeProvider{matchesErr: errors.New("upstream down")}
	svc := NewMatchService(provider, logging.NewNop())

	if _, err := svc.ListByDate(context.Background(), "2026-03-14"); err == nil {
		t.Fatal("provider failure must surface")
	}
}
