package wallet

import (
	"auction-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds  = errs.New("insufficient available balance")
	ErrInsufficientLocked = errs.New("insufficient locked balance")
	ErrInvalidAmount      = errs.New("wallet amount must be positive")
)

// Wallet is the durable ledger row of one user. Available and locked balances
// never go negative; Hold and Release conserve their sum.
type Wallet struct {
	id      int64
	userID  int64
	balance decimal.Decimal
	locked  decimal.Decimal
}

func Reconstruct(id, userID int64, balance, locked decimal.Decimal) *Wallet {
	return &Wallet{id: id, userID: userID, balance: balance, locked: locked}
}

func (w *Wallet) ID() int64                { return w.id }
func (w *Wallet) UserID() int64            { return w.userID }
func (w *Wallet) Balance() decimal.Decimal { return w.balance }
func (w *Wallet) Locked() decimal.Decimal  { return w.locked }
func (w *Wallet) Total() decimal.Decimal   { return w.balance.Add(w.locked) }

// Hold moves amount from available to locked.
func (w *Wallet) Hold(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if w.balance.LessThan(amount) {
		return errs.Wrapf(ErrInsufficientFunds, "user %d has %s, needs %s", w.userID, w.balance, amount)
	}
	w.balance = w.balance.Sub(amount)
	w.locked = w.locked.Add(amount)
	return nil
}

// Release moves amount from locked back to available.
func (w *Wallet) Release(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if w.locked.LessThan(amount) {
		return errs.Wrapf(ErrInsufficientLocked, "user %d has %s locked, releasing %s", w.userID, w.locked, amount)
	}
	w.locked = w.locked.Sub(amount)
	w.balance = w.balance.Add(amount)
	return nil
}

// Consume removes amount from locked without crediting it back (forfeited deposits).
func (w *Wallet) Consume(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if w.locked.LessThan(amount) {
		return errs.Wrapf(ErrInsufficientLocked, "user %d has %s locked, consuming %s", w.userID, w.locked, amount)
	}
	w.locked = w.locked.Sub(amount)
	return nil
}
