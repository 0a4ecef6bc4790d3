package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"auction-engine/internal/pkg/config"
	"auction-engine/internal/usecase/commands"
)

// Scheduler drives the auction lifecycle on a fixed interval. Each tick runs
// expose, deadline, end and then the optional broadcast; a failing step is
// logged and the rest of the tick still runs.
type Scheduler struct {
	lifecycle commands.LifecycleCommands
	cfg       config.SchedulerConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(lifecycle commands.LifecycleCommands, cfg config.Config) *Scheduler {
	return &Scheduler{lifecycle: lifecycle, cfg: cfg.Scheduler}
}

func (s *Scheduler) Start(parent context.Context) {
	if !s.cfg.Enabled {
		slog.Info("scheduler disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
	slog.Info("scheduler started", "interval", s.cfg.Interval)
}

func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Tick runs one pass of every lifecycle step.
func (s *Scheduler) Tick(ctx context.Context) {
	steps := []struct {
		name string
		run  func(context.Context) ([]int64, error)
	}{
		{"expose", s.lifecycle.Expose},
		{"deadline", s.lifecycle.MarkDeadline},
		{"end", s.lifecycle.End},
	}
	for _, step := range steps {
		if ctx.Err() != nil {
			return
		}
		ids, err := step.run(ctx)
		if err != nil {
			slog.Error("scheduler step failed", "step", step.name, "error", err.Error())
			continue
		}
		if len(ids) > 0 {
			slog.Debug("scheduler step moved auctions", "step", step.name, "count", len(ids))
		}
	}

	if !s.cfg.BroadcastActive || ctx.Err() != nil {
		return
	}
	if _, err := s.lifecycle.BroadcastActive(ctx); err != nil {
		slog.Error("scheduler step failed", "step", "broadcast", "error", err.Error())
	}
}
