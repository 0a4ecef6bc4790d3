package components

import (
	"context"

	"auction-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewReconcilerPool,
		worker.NewScheduler,
	),
	fx.Invoke(registerWorkers),
)

func registerWorkers(lc fx.Lifecycle, pool *worker.ReconcilerPool, scheduler *worker.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pool.Start(ctx)
			scheduler.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := scheduler.Stop(ctx); err != nil {
				return err
			}
			return pool.Stop(ctx)
		},
	})
}
