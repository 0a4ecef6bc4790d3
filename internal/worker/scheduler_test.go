//go:build unit

package worker_test

import (
	"context"
	"testing"
	"time"

	"auction-engine/internal/pkg/config"
	"auction-engine/internal/worker"
	commandsmock "auction-engine/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSchedulerTick(t *testing.T) {
	ctx := context.Background()

	t.Run("runs every step in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lifecycle := commandsmock.NewMockLifecycleCommands(ctrl)
		cfg := config.NewTestConfig()
		cfg.Scheduler.BroadcastActive = true

		gomock.InOrder(
			lifecycle.EXPECT().Expose(gomock.Any()).Return([]int64{1}, nil),
			lifecycle.EXPECT().MarkDeadline(gomock.Any()).Return(nil, nil),
			lifecycle.EXPECT().End(gomock.Any()).Return([]int64{2}, nil),
			lifecycle.EXPECT().BroadcastActive(gomock.Any()).Return(1, nil),
		)

		worker.NewScheduler(lifecycle, cfg).Tick(ctx)
	})

	t.Run("a failing step does not stop the tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lifecycle := commandsmock.NewMockLifecycleCommands(ctrl)
		cfg := config.NewTestConfig()
		cfg.Scheduler.BroadcastActive = false

		lifecycle.EXPECT().Expose(gomock.Any()).Return(nil, assert.AnError)
		lifecycle.EXPECT().MarkDeadline(gomock.Any()).Return(nil, nil)
		lifecycle.EXPECT().End(gomock.Any()).Return(nil, assert.AnError)

		worker.NewScheduler(lifecycle, cfg).Tick(ctx)
	})

	t.Run("cancelled context skips remaining steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lifecycle := commandsmock.NewMockLifecycleCommands(ctrl)
		cctx, cancel := context.WithCancel(ctx)

		lifecycle.EXPECT().Expose(gomock.Any()).DoAndReturn(func(context.Context) ([]int64, error) {
			cancel()
			return nil, nil
		})

		worker.NewScheduler(lifecycle, config.NewTestConfig()).Tick(cctx)
	})
}

func TestSchedulerLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	lifecycle := commandsmock.NewMockLifecycleCommands(ctrl)
	cfg := config.NewTestConfig()
	cfg.Scheduler.Enabled = true
	cfg.Scheduler.Interval = 10 * time.Millisecond

	ticked := make(chan struct{}, 1)
	lifecycle.EXPECT().Expose(gomock.Any()).DoAndReturn(func(context.Context) ([]int64, error) {
		select {
		case ticked <- struct{}{}:
		default:
		}
		return nil, nil
	}).MinTimes(1)
	lifecycle.EXPECT().MarkDeadline(gomock.Any()).Return(nil, nil).AnyTimes()
	lifecycle.EXPECT().End(gomock.Any()).Return(nil, nil).AnyTimes()

	s := worker.NewScheduler(lifecycle, cfg)
	s.Start(context.Background())

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("scheduler never ticked")
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))
}
