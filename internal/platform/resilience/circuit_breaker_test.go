package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold int, cooldown time.Duration, probes int) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:        true,
		TripThreshold:  threshold,
		Cooldown:       cooldown,
		HalfOpenProbes: probes,
	})
	now := time.Unix(1_700_000_000, 0)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreakerTripsAfterThreshold(t *testing.T) {
	b, _ := newTestBreaker(3, time.Minute, 1)

	for i := 0; i < 3; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("unexpected rejection on attempt %d: %v", i, err)
		}
		b.RecordFailure()
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("unexpected state: got=%s want=%s", got, CircuitStateOpen)
	}
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	b, now := newTestBreaker(1, time.Minute, 2)

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}

	*now = now.Add(2 * time.Minute)

	for i := 0; i < 2; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("expected probe %d allowed, got %v", i, err)
		}
		b.RecordSuccess()
	}

	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("unexpected state after recovery: got=%s want=%s", got, CircuitStateClosed)
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	b, now := newTestBreaker(1, time.Minute, 1)

	b.RecordFailure()
	*now = now.Add(2 * time.Minute)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe allowed, got %v", err)
	}
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected reopened circuit, got %v", err)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	cfg := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	defaults := DefaultCircuitBreakerConfig()

	if cfg.TripThreshold != defaults.TripThreshold {
		t.Fatalf("unexpected threshold: got=%d want=%d", cfg.TripThreshold, defaults.TripThreshold)
	}
	if cfg.Cooldown != defaults.Cooldown {
		t.Fatalf("unexpected cooldown: got=%s want=%s", cfg.Cooldown, defaults.Cooldown)
	}
	if cfg.HalfOpenProbes != defaults.HalfOpenProbes {
		t.Fatalf("unexpected probes: got=%d want=%d", cfg.HalfOpenProbes, defaults.HalfOpenProbes)
	}
}
