//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/infra/lock"
	"auction-engine/internal/infra/queue"
	"auction-engine/internal/infra/redisstore"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"
	"auction-engine/internal/usecase/shared"
	"auction-engine/tests/common/builder"
	"auction-engine/tests/common/redistest"
	sharedmock "auction-engine/tests/mock/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fastPath wires the real Redis-backed stores against miniredis and mocks
// every durable dependency.
type fastPath struct {
	ctrl *gomock.Controller
	srv  *miniredis.Miniredis
	cfg  config.Config
	clk  *clock.MockClock

	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	auctions *sharedmock.MockAuctionRepository
	bids     *sharedmock.MockBidRepository
	wallets  *sharedmock.MockWalletRepository
	requests *sharedmock.MockBidRequestRepository
	moves    *sharedmock.MockAuctionTransitionRepository

	snapshotStore *redisstore.SnapshotStore
	fundStore     *redisstore.FundStore
	guard         *redisstore.RequestGuard
	index         *redisstore.PriceIndex
	locker        *lock.RedsyncLocker
	queue         *queue.MemoryQueue
	events        *recordingPublisher

	snapshots queries.SnapshotQueries
	funds     commands.FundCommands
}

func newFastPath(t *testing.T) *fastPath {
	t.Helper()

	ctrl := gomock.NewController(t)
	srv, client := redistest.New(t)
	cfg := config.NewTestConfig()

	f := &fastPath{
		ctrl:     ctrl,
		srv:      srv,
		cfg:      cfg,
		clk:      clock.NewMockClock(builder.BaseTime),
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		auctions: sharedmock.NewMockAuctionRepository(ctrl),
		bids:     sharedmock.NewMockBidRepository(ctrl),
		wallets:  sharedmock.NewMockWalletRepository(ctrl),
		requests: sharedmock.NewMockBidRequestRepository(ctrl),
		moves:    sharedmock.NewMockAuctionTransitionRepository(ctrl),

		snapshotStore: redisstore.NewSnapshotStore(client),
		fundStore:     redisstore.NewFundStore(client),
		guard:         redisstore.NewRequestGuard(client),
		index:         redisstore.NewPriceIndex(client),
		locker:        lock.NewRedsyncLocker(client),
		queue:         queue.NewMemoryQueue(cfg.Reconcile.BufferSize, queue.DefaultRedelivery(), slog.Default()),
		events:        &recordingPublisher{},
	}
	f.passThroughUoW()
	f.snapshots = queries.NewSnapshotQueries(f.snapshotStore, f.auctions, f.uow, f.clk)
	f.funds = commands.NewFundUseCase(f.fundStore, f.wallets, f.uow, cfg)
	return f
}

// passThroughUoW runs every callback directly against the mocked tx.
func (f *fastPath) passThroughUoW() {
	run := func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
		return fn(ctx, nil)
	}
	f.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Auctions().Return(f.auctions).AnyTimes()
	f.tx.EXPECT().Bids().Return(f.bids).AnyTimes()
	f.tx.EXPECT().Wallets().Return(f.wallets).AnyTimes()
	f.tx.EXPECT().BidRequests().Return(f.requests).AnyTimes()
	f.tx.EXPECT().Transitions().Return(f.moves).AnyTimes()
}

// durableWallet makes the wallet row of userID readable for cache warm-up.
func (f *fastPath) durableWallet(userID int64, balance, locked int64) *wallet.Wallet {
	w := builder.NewWalletBuilder(userID).Funds(balance, locked).BuildDomain()
	f.wallets.EXPECT().FindByUserID(gomock.Any(), gomock.Any(), userID).Return(w, nil).AnyTimes()
	return w
}

func (f *fastPath) seedSnapshot(t *testing.T, b *builder.AuctionBuilder) *shared.AuctionSnapshot {
	t.Helper()
	snap := b.BuildSnapshot()
	require.NoError(t, f.snapshotStore.Write(context.Background(), *snap, shared.SnapshotTTL(snap.EndAt, f.clk.Now())))
	return snap
}

func (f *fastPath) cachedFunds(t *testing.T, userID int64) (decimal.Decimal, decimal.Decimal) {
	t.Helper()
	balance, locked, found, err := f.fundStore.Balances(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, found, "fund cache for user %d", userID)
	return balance, locked
}

func (f *fastPath) currentSnapshot(t *testing.T, auctionID int64) *shared.AuctionSnapshot {
	t.Helper()
	snap, ok, err := f.snapshots.GetSnapshotIfPresent(context.Background(), auctionID)
	require.NoError(t, err)
	require.True(t, ok)
	return snap
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) types() []shared.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}
