package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"auction-engine/internal/pkg/config"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/shared"
)

// ReconcilerPool runs the configured number of consumers, each feeding
// accepted bids to the reconcile use case.
type ReconcilerPool struct {
	consumer  shared.BidConsumer
	reconcile commands.ReconcileCommands
	workers   int
	name      string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReconcilerPool(consumer shared.BidConsumer, reconcile commands.ReconcileCommands, cfg config.Config) *ReconcilerPool {
	return &ReconcilerPool{
		consumer:  consumer,
		reconcile: reconcile,
		workers:   max(cfg.Reconcile.Workers, 1),
		name:      cfg.Reconcile.Consumer,
	}
}

// Start returns immediately; workers run until Stop.
func (p *ReconcilerPool) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	p.cancel = cancel

	for i := range p.workers {
		name := fmt.Sprintf("%s-%d", p.name, i)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			slog.Info("reconcile worker started", "consumer", name)
			if err := p.consumer.Consume(ctx, name, p.reconcile.Reconcile); err != nil && ctx.Err() == nil {
				slog.Error("reconcile worker stopped", "consumer", name, "error", err.Error())
			}
		}()
	}
}

// Stop cancels the workers and waits for in-flight bids until ctx is done.
func (p *ReconcilerPool) Stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("reconcile workers stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
