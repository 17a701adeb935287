package safeholdtest

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
)

// Mover is the custody transfer functionality, as implemented by the cash
// controller.
type Mover interface {
	MoveCoins(db safehold.KVStore, src, dest safehold.Address, amount coin.Amount) error
}

// FailingMover is a Mover that refuses transfers. If FailTo is set, only
// transfers to that address fail and all others are passed to the wrapped
// Mover. Otherwise every transfer fails.
type FailingMover struct {
	Mover
	// FailTo limits the failure to transfers to this destination.
	FailTo safehold.Address
	// Err is returned for refused transfers. Defaults to ErrDatabase.
	Err error

	calls int
}

func (m *FailingMover) MoveCoins(db safehold.KVStore, src, dest safehold.Address, amount coin.Amount) error {
	m.calls++
	if m.FailTo == nil || m.FailTo.Equals(dest) {
		if m.Err != nil {
			return m.Err
		}
		return errors.Wrap(errors.ErrDatabase, "transfer refused")
	}
	if m.Mover == nil {
		return nil
	}
	return m.Mover.MoveCoins(db, src, dest, amount)
}

// CallCount returns the number of transfer attempts.
func (m *FailingMover) CallCount() int {
	return m.calls
}
