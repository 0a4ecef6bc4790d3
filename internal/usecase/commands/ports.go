package commands

import (
	"context"
	"time"

	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/usecase/shared"
)

// Extender is the soft-close hook run after a bid is accepted.
type Extender interface {
	ExtendIfImminent(ctx context.Context, auctionID int64, bidAt time.Time) (bool, error)
}

// CategoryLookup resolves the category an auction is indexed under.
type CategoryLookup interface {
	CategoryOf(ctx context.Context, auctionID int64) (*int64, error)
}

type categoryLookup struct {
	uow      shared.UnitOfWork
	auctions shared.AuctionRepository
}

func NewCategoryLookup(uow shared.UnitOfWork, auctions shared.AuctionRepository) CategoryLookup {
	return &categoryLookup{uow: uow, auctions: auctions}
}

func (l *categoryLookup) CategoryOf(ctx context.Context, auctionID int64) (*int64, error) {
	var category *int64
	err := l.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var cerr error
		category, cerr = l.auctions.CategoryID(ctx, db, auctionID)
		return cerr
	})
	return category, err
}
