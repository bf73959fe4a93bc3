package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler reruns a refresh function on a fixed interval until stopped.
type Scheduler struct {
	s        gocron.Scheduler
	interval time.Duration
	refresh  func(context.Context) error
}

func NewScheduler(interval time.Duration, refresh func(context.Context) error) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("watch interval must be positive, got %s", interval)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:        s,
		interval: interval,
		refresh:  refresh,
	}, nil
}

// Start runs the first refresh immediately. Overlapping runs are skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.run(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	slog.Debug("Refreshing", "interval", s.interval)
	if err := s.refresh(ctx); err != nil {
		slog.Error("Failed to refresh", "error", err)
	}
}
