package components

import (
	"auction-engine/internal/infra/lock"
	"auction-engine/internal/infra/redisstore"
	"auction-engine/internal/infra/repository"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/infra/uow"
	"auction-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		uow.NewPostgresUoW,
		// Durable store
		fx.Annotate(
			repository.NewAuctionRepository,
			fx.As(new(shared.AuctionRepository)),
		),
		fx.Annotate(
			repository.NewBidRepository,
			fx.As(new(shared.BidRepository)),
		),
		fx.Annotate(
			repository.NewWalletRepository,
			fx.As(new(shared.WalletRepository)),
		),
		fx.Annotate(
			repository.NewBidRequestRepository,
			fx.As(new(shared.BidRequestRepository)),
		),
		fx.Annotate(NewSQLQueries, fx.As(new(repository.AuctionQueries))),
		fx.Annotate(NewSQLQueries, fx.As(new(repository.BidQueries))),
		fx.Annotate(NewSQLQueries, fx.As(new(repository.WalletQueries))),
		fx.Annotate(NewSQLQueries, fx.As(new(repository.BidRequestQueries))),
		// Fast path
		fx.Annotate(
			redisstore.NewSnapshotStore,
			fx.As(new(shared.SnapshotStore)),
		),
		fx.Annotate(
			redisstore.NewFundStore,
			fx.As(new(shared.FundStore)),
		),
		fx.Annotate(
			redisstore.NewRequestGuard,
			fx.As(new(shared.RequestGuard)),
		),
		fx.Annotate(
			redisstore.NewPriceIndex,
			fx.As(new(shared.PriceIndex)),
			fx.As(new(shared.PriceRanking)),
		),
		fx.Annotate(
			lock.NewRedsyncLocker,
			fx.As(new(shared.Locker)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}
