package shared

import (
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/domain/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletTransaction struct {
	WalletID  int64
	Type      wallet.TransactionType
	Amount    decimal.Decimal
	AuctionID *int64
	RequestID *uuid.UUID
}

type BidRequestStatus string

const (
	BidRequestPending   BidRequestStatus = "pending"
	BidRequestCommitted BidRequestStatus = "committed"
	BidRequestFailed    BidRequestStatus = "failed"
)

type BidRequestRecord struct {
	Event     BidAccepted
	Status    BidRequestStatus
	Attempts  int
	LastError *string
	UpdatedAt time.Time
}

// TransitionSpec is one old-status to new-status move guarded by time predicates.
// Zero-valued guards are not applied.
type TransitionSpec struct {
	From auction.Status
	To   auction.Status
	Now  time.Time

	StartedBy     bool // start_at IS NULL OR start_at <= Now
	CreatedBefore time.Time
	EndedBefore   time.Time
	NoPending     bool
	IDs           []int64

	SetStartAt    bool
	SettleDeposit bool
}

// TransitionedAuction is returned for every row a transition actually moved.
type TransitionedAuction struct {
	ID       int64
	SellerID int64
	Deposit  decimal.Decimal
}
