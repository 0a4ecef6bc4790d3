package redisstore

import "strconv"

const (
	fieldCurrentPrice    = "currentPrice"
	fieldCurrentBidder   = "currentBidder"
	fieldCurrentBidCount = "currentBidCount"
	fieldEndTime         = "endTime"
	fieldImminentMinutes = "imminentMinutes"
	fieldIsExtended      = "isExtended"
	fieldStatus          = "status"

	// noBidder is stored in currentBidder while an auction has no leader.
	noBidder = "0"

	livePriceIndexKey = "auction:live:price"
)

// snapshotFields is the read order of the seven required auction keys.
var snapshotFields = []string{
	fieldCurrentPrice,
	fieldCurrentBidder,
	fieldCurrentBidCount,
	fieldEndTime,
	fieldImminentMinutes,
	fieldIsExtended,
	fieldStatus,
}

func AuctionKey(auctionID int64, field string) string {
	return "auction:" + strconv.FormatInt(auctionID, 10) + ":" + field
}

func auctionKeys(auctionID int64) []string {
	keys := make([]string, len(snapshotFields))
	for i, f := range snapshotFields {
		keys[i] = AuctionKey(auctionID, f)
	}
	return keys
}

func BalanceKey(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10) + ":balance"
}

func LockedBalanceKey(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10) + ":lockedBalance"
}

func IdempotencyKey(requestID string) string {
	return "bid_idempotency:" + requestID
}

func categoryPriceIndexKey(categoryID int64) string {
	return "auction:category:" + strconv.FormatInt(categoryID, 10) + ":price"
}
