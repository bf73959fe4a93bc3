package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerRefreshesUntilStopped(t *testing.T) {
	var calls atomic.Int32
	ticked := make(chan struct{}, 10)

	s, err := NewScheduler(20*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		select {
		case ticked <- struct{}{}:
		default:
		}
		if calls.Load() == 1 {
			return errors.New("temporary failure")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	for i := 0; i < 2; i++ {
		select {
		case <-ticked:
		case <-time.After(2 * time.Second):
			t.Fatalf("refresh ran %d times, want at least 2", calls.Load())
		}
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	after := calls.Load()
	time.Sleep(60 * time.Millisecond)
	if calls.Load() != after {
		t.Errorf("refresh ran after Stop: %d -> %d", after, calls.Load())
	}
}

func TestSchedulerSkipsCancelledContext(t *testing.T) {
	var calls atomic.Int32
	s, err := NewScheduler(10*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}

	if calls.Load() != 0 {
		t.Errorf("refresh ran %d times with a cancelled context", calls.Load())
	}
}

func TestNewSchedulerRejectsInterval(t *testing.T) {
	if _, err := NewScheduler(0, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected error for zero interval")
	}
}
