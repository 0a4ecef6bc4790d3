package shared

import (
	"context"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/domain/wallet"
	sqlc "auction-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Auctions() AuctionRepository
	Bids() BidRepository
	Wallets() WalletRepository
	BidRequests() BidRequestRepository
	Transitions() AuctionTransitionRepository
	DB() sqlc.DBTX
}

type AuctionRepository interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*auction.Auction, error)
	FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (*auction.Auction, error)
	FindByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]*auction.Auction, error)
	ListLiveIDsLedBy(ctx context.Context, db sqlc.DBTX, userID int64) ([]int64, error)
	ListLiveIDs(ctx context.Context, db sqlc.DBTX) ([]int64, error)
	CategoryID(ctx context.Context, db sqlc.DBTX, id int64) (*int64, error)
	ApplyBid(ctx context.Context, db sqlc.DBTX, auctionID, bidderID int64, amount decimal.Decimal) error
	Restore(ctx context.Context, db sqlc.DBTX, plan auction.RollbackPlan) error
	ExtendEnd(ctx context.Context, db sqlc.DBTX, id int64, expectedEnd, newEnd time.Time) (bool, error)
	Cancel(ctx context.Context, db sqlc.DBTX, id int64) (bool, error)
}

type BidRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, bid auction.Bid) (int64, error)
	ListByAuction(ctx context.Context, db sqlc.DBTX, auctionID int64) ([]auction.Bid, error)
	DeleteByAuctionAndBidder(ctx context.Context, db sqlc.DBTX, auctionID, bidderID int64) (int64, error)
	MaxPrice(ctx context.Context, db sqlc.DBTX, auctionID int64) (decimal.Decimal, error)
}

type WalletRepository interface {
	FindByUserID(ctx context.Context, db sqlc.DBTX, userID int64) (*wallet.Wallet, error)
	FindByUserIDForUpdate(ctx context.Context, db sqlc.DBTX, userID int64) (*wallet.Wallet, error)
	Save(ctx context.Context, db sqlc.DBTX, w *wallet.Wallet) error
	RecordTransaction(ctx context.Context, db sqlc.DBTX, t WalletTransaction) error
}

type BidRequestRepository interface {
	TryInsert(ctx context.Context, db sqlc.DBTX, ev BidAccepted) (bool, error)
	Get(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (*BidRequestRecord, error)
	MarkCommitted(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (bool, error)
	RecordAttempt(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID, lastErr string) error
	MarkFailed(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID, lastErr string) (bool, error)
	ResetFailed(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (bool, error)
	ListFailed(ctx context.Context, db sqlc.DBTX, limit int32) ([]*BidRequestRecord, error)
	CountPendingByAuction(ctx context.Context, db sqlc.DBTX, auctionID int64) (int64, error)
}

// AuctionTransitionRepository performs the bulk conditional status updates of the scheduler.
type AuctionTransitionRepository interface {
	Candidates(ctx context.Context, db sqlc.DBTX, spec TransitionSpec) ([]int64, error)
	Transition(ctx context.Context, db sqlc.DBTX, spec TransitionSpec) ([]TransitionedAuction, error)
}
