package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPollerFetchesUntilCancelled(t *testing.T) {
	var calls atomic.Int64
	p := &Poller{
		Name:     "test",
		Interval: 5 * time.Millisecond,
		Fetch: func(ctx context.Context) error {
			calls.Add(1)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("poller fetched %d times, want at least 3", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}

	settled := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != settled {
		t.Errorf("poller kept fetching after stop: %d -> %d", settled, calls.Load())
	}
}

func TestPollerSurvivesFetchFailures(t *testing.T) {
	var calls atomic.Int64
	p := &Poller{
		Name:     "flaky",
		Interval: 5 * time.Millisecond,
		Fetch: func(ctx context.Context) error {
			calls.Add(1)
			return errors.New("store unavailable")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("poller gave up after %d failed fetches, want retries on later ticks", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}
