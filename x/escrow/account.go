package escrow

import (
	"time"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/x"
)

// Clock provides the current time for deadline computations.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Account is a handle to a single escrow. The caller identity is passed to
// every operation and time is read from the clock.
//
// Any number of handles may refer to the same escrow. Operations and
// accessors of all handles built on one Controller are serialized by the
// controller lock, and accessors always read the stored state. Each
// operation runs in its own cache wrap of the store and either writes all
// of its changes or none.
type Account struct {
	ctx   safehold.Context
	db    safehold.CacheableKVStore
	ctrl  *Controller
	clock Clock
	id    []byte
}

// Create stores a new escrow with the buyer as the caller and returns a
// handle to it.
func Create(ctx safehold.Context, db safehold.CacheableKVStore, ctrl *Controller, clock Clock, buyer, seller safehold.Address, amount coin.Amount) (*Account, error) {
	a := &Account{ctx: ctx, db: db, ctrl: ctrl, clock: clock}
	err := a.apply(func(ctx safehold.Context, db safehold.KVStore) error {
		id, _, err := ctrl.Create(ctx, db, buyer, seller, amount)
		a.id = id
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Open returns a handle to an existing escrow.
func Open(ctx safehold.Context, db safehold.CacheableKVStore, ctrl *Controller, clock Clock, id []byte) (*Account, error) {
	a := &Account{ctx: ctx, db: db, ctrl: ctrl, clock: clock, id: id}
	if _, err := a.load(); err != nil {
		return nil, err
	}
	return a, nil
}

// Deposit moves value from the buyer into custody.
func (a *Account) Deposit(sender safehold.Address, value coin.Amount) error {
	return a.apply(func(ctx safehold.Context, db safehold.KVStore) error {
		_, err := a.ctrl.Deposit(ctx, db, x.AddressAuth{sender}, a.id, value)
		return err
	})
}

// ConfirmDelivery marks the goods as delivered by the seller.
func (a *Account) ConfirmDelivery(sender safehold.Address) error {
	return a.apply(func(ctx safehold.Context, db safehold.KVStore) error {
		_, err := a.ctrl.ConfirmDelivery(ctx, db, x.AddressAuth{sender}, a.id)
		return err
	})
}

// AcceptDelivery releases the funds to the seller.
func (a *Account) AcceptDelivery(sender safehold.Address) error {
	return a.apply(func(ctx safehold.Context, db safehold.KVStore) error {
		_, err := a.ctrl.AcceptDelivery(ctx, db, x.AddressAuth{sender}, a.id)
		return err
	})
}

// Refund returns the funds to the buyer after the deadline.
func (a *Account) Refund(sender safehold.Address) error {
	return a.apply(func(ctx safehold.Context, db safehold.KVStore) error {
		_, err := a.ctrl.Refund(ctx, db, x.AddressAuth{sender}, a.id)
		return err
	})
}

// ID returns the escrow id.
func (a *Account) ID() []byte {
	return a.id
}

// Address returns the custody address.
func (a *Account) Address() safehold.Address {
	return Condition(a.id).Address()
}

func (a *Account) Buyer() safehold.Address {
	return a.current().Buyer
}

func (a *Account) Seller() safehold.Address {
	return a.current().Seller
}

func (a *Account) Amount() coin.Amount {
	return a.current().Amount
}

// Deadline returns the zero time until the deposit.
func (a *Account) Deadline() time.Time {
	e := a.current()
	if e.Deadline.IsZero() {
		return time.Time{}
	}
	return e.Deadline.Time()
}

func (a *Account) Status() Status {
	return a.current().Status
}

// Events returns all notifications emitted so far, oldest first.
func (a *Account) Events() ([]*Event, error) {
	a.ctrl.mu.Lock()
	defer a.ctrl.mu.Unlock()
	return a.ctrl.Events(a.db, a.id)
}

// apply runs fn under the controller lock in a cache wrap of the store
// that is written only if fn succeeds. The current clock reading is
// passed as the block time.
func (a *Account) apply(fn func(safehold.Context, safehold.KVStore) error) (err error) {
	a.ctrl.mu.Lock()
	defer a.ctrl.mu.Unlock()

	cache := a.db.CacheWrap()
	defer func() {
		if err != nil {
			cache.Discard()
		}
	}()
	defer errors.Recover(&err)

	ctx := safehold.WithBlockTime(a.ctx, a.clock.Now())
	if err := fn(ctx, cache); err != nil {
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write changes")
	}
	return nil
}

// current returns the stored escrow. An escrow is never deleted once an
// Account refers to it, so a failing read means the store is broken.
func (a *Account) current() *Escrow {
	e, err := a.load()
	if err != nil {
		panic(err)
	}
	return e
}

func (a *Account) load() (*Escrow, error) {
	a.ctrl.mu.Lock()
	defer a.ctrl.mu.Unlock()
	return a.ctrl.Escrow(a.db, a.id)
}
