package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlightCollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var executions atomic.Int32

	release := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]any, 8)

	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			val, err, _ := g.Do("key", func() (any, error) {
				executions.Add(1)
				<-release
				return "value", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[idx] = val
		}(i)
	}

	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("unexpected executions: got=%d want=1", got)
	}
	for idx, val := range results {
		if val != "value" {
			t.Fatalf("unexpected result at %d: got=%v", idx, val)
		}
	}
}

func TestSingleFlightSequentialCallsRunSeparately(t *testing.T) {
	var g SingleFlight
	var executions atomic.Int32

	for i := 0; i < 3; i++ {
		_, err, shared := g.Do("key", func() (any, error) {
			executions.Add(1)
			return nil, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shared {
			t.Fatalf("sequential call %d unexpectedly shared", i)
		}
	}

	if got := executions.Load(); got != 3 {
		t.Fatalf("unexpected executions: got=%d want=3", got)
	}
}
