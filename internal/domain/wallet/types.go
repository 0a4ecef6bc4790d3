package wallet

type TransactionType string

const (
	TxBidHold         TransactionType = "BID_HOLD"
	TxBidRelease      TransactionType = "BID_RELEASE"
	TxDepositReturn   TransactionType = "DEPOSIT_RETURN"
	TxDepositForfeit  TransactionType = "DEPOSIT_FORFEIT"
	TxRollbackRelease TransactionType = "ROLLBACK_RELEASE"
	TxRollbackHold    TransactionType = "ROLLBACK_HOLD"
)

func (t TransactionType) String() string {
	return string(t)
}
