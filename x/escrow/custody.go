package escrow

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/x/cash"
)

// custodyPrefix indexes custody addresses of stored escrows. The value is
// the escrow id.
const custodyPrefix = "escrowcus:"

func custodyKey(addr safehold.Address) []byte {
	return append([]byte(custodyPrefix), addr...)
}

// balancer is implemented by movers that can report wallet content, such
// as the cash controller.
type balancer interface {
	Balance(db safehold.ReadOnlyKVStore, addr safehold.Address) (coin.Amount, error)
}

// IsCustody returns true if the address holds the funds of a stored
// escrow.
func IsCustody(db safehold.ReadOnlyKVStore, addr safehold.Address) (bool, error) {
	ok, err := db.Has(custodyKey(addr))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// custodyTaken returns true if the address cannot hold the funds of a new
// escrow: it either belongs to another escrow or already received funds
// from somewhere else.
func (c *Controller) custodyTaken(db safehold.ReadOnlyKVStore, addr safehold.Address) (bool, error) {
	if ok, err := IsCustody(db, addr); err != nil || ok {
		return ok, err
	}
	b, ok := c.mover.(balancer)
	if !ok {
		return false, nil
	}
	held, err := b.Balance(db, addr)
	if err != nil {
		return false, err
	}
	return !held.IsZero(), nil
}

// CustodyGuard rejects cash transfers into escrow custody. Only the
// escrow itself moves funds in and out of its custody address.
type CustodyGuard struct{}

var _ safehold.Decorator = CustodyGuard{}

// NewCustodyGuard returns the decorator.
func NewCustodyGuard() CustodyGuard {
	return CustodyGuard{}
}

// Check rejects the transaction before it reaches the mempool.
func (g CustodyGuard) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Checker) (*safehold.CheckResult, error) {
	if err := g.inspect(db, tx); err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

// Deliver rejects the transaction before any handler runs.
func (g CustodyGuard) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Deliverer) (*safehold.DeliverResult, error) {
	if err := g.inspect(db, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (CustodyGuard) inspect(db safehold.ReadOnlyKVStore, tx safehold.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return err
	}
	send, ok := msg.(*cash.SendMsg)
	if !ok {
		return nil
	}
	switch custody, err := IsCustody(db, send.Destination); {
	case err != nil:
		return err
	case custody:
		return errors.Wrapf(ErrCustodyDestination, "%s", send.Destination)
	}
	return nil
}
