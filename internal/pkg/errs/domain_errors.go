package errs

// Use case level sentinels. Validation errors of the bid itself live in the
// domain packages (auction, wallet).
var (
	// Contention: the per-auction mutex could not be acquired in time. Retryable.
	ErrLockContention = New("lock acquisition failed")

	// Idempotency: a request id was already accepted.
	ErrDuplicateRequest = New("duplicate bid request")
	ErrInvalidRequest   = New("invalid bid request")

	// Lookup errors
	ErrAuctionNotFound = New("auction not found")
	ErrWalletNotFound  = New("wallet not found")

	// Seller operations
	ErrNotSeller       = New("only the seller can cancel the auction")
	ErrAuctionHasBids  = New("auction already has bids")
	ErrNotCancellable  = New("auction cannot be cancelled in its current status")
	ErrRollbackChanged = New("auction state changed while planning rollback")

	// The reconciliation queue rejected an accepted bid.
	ErrQueueUnavailable = New("bid queue unavailable")

	// Reconciliation exhausted its retry budget.
	ErrReconciliationFailed = New("durable reconciliation failed")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrCacheOperationFailed    = New("cache operation failed")
)
