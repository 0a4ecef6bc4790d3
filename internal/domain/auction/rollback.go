package auction

import "github.com/shopspring/decimal"

// RollbackPlan describes how one auction is restored after its leader is blocked.
type RollbackPlan struct {
	AuctionID        int64
	BlockedUserID    int64
	ReleasedAmount   decimal.Decimal
	RestoredPrice    decimal.Decimal
	RestoredLeaderID *int64
	RestoredBidCount int
}

func (p RollbackPlan) HasRestoredLeader() bool {
	return p.RestoredLeaderID != nil
}

// PlanRollback computes the state preceding the blocked user's final run of
// consecutive bids. It returns false when there is nothing to undo: the user
// does not lead the auction, never bid on it durably, or was never challenged
// by anyone else.
func PlanRollback(a *Auction, bids []Bid, blockedUserID int64) (RollbackPlan, bool) {
	if !a.IsLedBy(blockedUserID) {
		return RollbackPlan{}, false
	}

	ordered := make([]Bid, len(bids))
	copy(ordered, bids)
	SortByCreation(ordered)

	run := len(ordered)
	for run > 0 && ordered[run-1].BidderID == blockedUserID {
		run--
	}
	// run == 0: nobody else ever bid. run == len: history does not end with the leader.
	if run == 0 || run == len(ordered) {
		return RollbackPlan{}, false
	}

	prev := ordered[run-1]
	leader := prev.BidderID
	return RollbackPlan{
		AuctionID:        a.ID(),
		BlockedUserID:    blockedUserID,
		ReleasedAmount:   a.CurrentPrice(),
		RestoredPrice:    prev.Price,
		RestoredLeaderID: &leader,
		RestoredBidCount: run,
	}, true
}
