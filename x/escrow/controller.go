package escrow

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/orm"
	"github.com/safehold/safehold/x"
	"github.com/safehold/safehold/x/cash"
)

// Controller implements the escrow state machine on top of a store.
//
// None of the methods is atomic on its own: a failing custody transfer
// may leave the escrow update written. Callers must run each method in a
// cache wrap that is discarded on error, as Account and the Savepoint
// decorator do.
//
// Account handles created with the same controller share its lock, so
// their calls are serialized even when they refer to the same escrow. A
// store must be shared by Accounts of a single controller only.
type Controller struct {
	// mu guards the store used by Account handles.
	mu sync.Mutex

	bucket orm.ModelBucket
	events EventLog
	mover  cash.CoinMover
}

// NewController returns a controller moving custody with the given mover.
func NewController(mover cash.CoinMover) *Controller {
	return &Controller{
		bucket: NewBucket(),
		events: NewEventLog(),
		mover:  mover,
	}
}

// Create stores a new escrow in AwaitingPayment state and returns its id.
func (c *Controller) Create(ctx safehold.Context, db safehold.KVStore, buyer, seller safehold.Address, amount coin.Amount) ([]byte, *Event, error) {
	if err := seller.Validate(); err != nil {
		return nil, nil, errors.Wrap(ErrInvalidSeller, err.Error())
	}
	if !amount.IsPositive() {
		return nil, nil, errors.Wrap(ErrInvalidAmount, "must be positive")
	}
	if err := buyer.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "buyer")
	}

	// Custody addresses follow from the sequence, so funds may reach one
	// before its escrow exists. Such an id is skipped for good.
	seq := orm.NewSequence(BucketName, orm.SeqID)
	var (
		id   []byte
		addr safehold.Address
	)
	for {
		next, err := seq.NextVal(db)
		if err != nil {
			return nil, nil, errors.Wrap(err, "cannot acquire id")
		}
		addr = Condition(next).Address()
		taken, err := c.custodyTaken(db, addr)
		if err != nil {
			return nil, nil, errors.Wrap(err, "custody")
		}
		if !taken {
			id = next
			break
		}
	}
	e := &Escrow{
		Metadata: &safehold.Metadata{Schema: 1},
		Buyer:    buyer,
		Seller:   seller,
		Amount:   amount,
		Status:   AwaitingPayment,
		Address:  addr,
	}
	if _, err := c.bucket.Put(db, id, e); err != nil {
		return nil, nil, errors.Wrap(err, "cannot store escrow")
	}
	if err := db.Set(custodyKey(addr), id); err != nil {
		return nil, nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	ev := &Event{
		Kind:   EventCreated,
		Buyer:  buyer,
		Seller: seller,
		Amount: amount,
	}
	if err := c.emit(ctx, db, id, ev); err != nil {
		return nil, nil, err
	}
	safehold.GetLogger(ctx).Info("escrow created", "escrow", hex.EncodeToString(id), "amount", amount.String())
	return id, ev, nil
}

// Escrow loads the escrow with the given id.
func (c *Controller) Escrow(db safehold.ReadOnlyKVStore, id []byte) (*Escrow, error) {
	var e Escrow
	if err := c.bucket.One(db, id, &e); err != nil {
		return nil, errors.Wrap(err, "cannot load escrow")
	}
	return &e, nil
}

// Events returns the notifications emitted for the escrow, oldest first.
func (c *Controller) Events(db safehold.ReadOnlyKVStore, id []byte) ([]*Event, error) {
	return c.events.List(db, id)
}

// Deposit moves value from the buyer into custody and starts the refund
// timeout.
func (c *Controller) Deposit(ctx safehold.Context, db safehold.KVStore, auth x.Authenticator, id []byte, value coin.Amount) (*Event, error) {
	e, err := c.Escrow(db, id)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, e.Buyer) {
		return nil, ErrUnauthorizedBuyer
	}
	next, err := e.Status.next(opDeposit)
	if err != nil {
		return nil, err
	}
	if !value.Equals(e.Amount) {
		return nil, errors.Wrapf(ErrIncorrectAmount, "want %s, got %s", e.Amount, value)
	}
	now, ok := safehold.BlockTime(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "block time not present")
	}

	if err := c.mover.MoveCoins(db, e.Buyer, e.Address, value); err != nil {
		return nil, errors.Wrapf(ErrTransferFailed, "deposit: %s", err)
	}
	e.Deadline = refundDeadline(now)
	ev := &Event{Kind: EventDeposited, Buyer: e.Buyer, Amount: e.Amount}
	if err := c.transition(ctx, db, id, e, next, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// ConfirmDelivery is called by the seller once the goods were delivered.
func (c *Controller) ConfirmDelivery(ctx safehold.Context, db safehold.KVStore, auth x.Authenticator, id []byte) (*Event, error) {
	e, err := c.Escrow(db, id)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, e.Seller) {
		return nil, ErrUnauthorizedSeller
	}
	next, err := e.Status.next(opConfirm)
	if err != nil {
		return nil, err
	}
	ev := &Event{Kind: EventSellerConfirmed, Seller: e.Seller}
	if err := c.transition(ctx, db, id, e, next, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// AcceptDelivery completes the escrow and releases the funds to the
// seller.
func (c *Controller) AcceptDelivery(ctx safehold.Context, db safehold.KVStore, auth x.Authenticator, id []byte) (*Event, error) {
	e, err := c.Escrow(db, id)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, e.Buyer) {
		return nil, ErrUnauthorizedBuyer
	}
	next, err := e.Status.next(opAccept)
	if err != nil {
		return nil, err
	}
	ev := &Event{Kind: EventBuyerAccepted, Buyer: e.Buyer}
	if err := c.transition(ctx, db, id, e, next, ev); err != nil {
		return nil, err
	}
	if err := c.mover.MoveCoins(db, e.Address, e.Seller, e.Amount); err != nil {
		return nil, errors.Wrapf(ErrTransferFailed, "release to seller: %s", err)
	}
	return ev, nil
}

// Refund returns the funds to the buyer once the deadline has passed.
func (c *Controller) Refund(ctx safehold.Context, db safehold.KVStore, auth x.Authenticator, id []byte) (*Event, error) {
	e, err := c.Escrow(db, id)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, e.Buyer) {
		return nil, ErrUnauthorizedBuyer
	}
	next, err := e.Status.next(opRefund)
	if err != nil {
		return nil, err
	}
	if _, ok := safehold.BlockTime(ctx); !ok {
		return nil, errors.Wrap(errors.ErrHuman, "block time not present")
	}
	if !safehold.IsExpired(ctx, e.Deadline) {
		return nil, errors.Wrapf(ErrDeadlineNotReached, "deadline %s", e.Deadline)
	}
	ev := &Event{Kind: EventRefunded, Buyer: e.Buyer}
	if err := c.transition(ctx, db, id, e, next, ev); err != nil {
		return nil, err
	}
	if err := c.mover.MoveCoins(db, e.Address, e.Buyer, e.Amount); err != nil {
		return nil, errors.Wrapf(ErrTransferFailed, "refund to buyer: %s", err)
	}
	return ev, nil
}

// transition saves the escrow in the next state and emits the event.
func (c *Controller) transition(ctx safehold.Context, db safehold.KVStore, id []byte, e *Escrow, next Status, ev *Event) error {
	prev := e.Status
	e.Status = next
	if _, err := c.bucket.Put(db, id, e); err != nil {
		return errors.Wrap(err, "cannot store escrow")
	}
	if err := c.emit(ctx, db, id, ev); err != nil {
		return err
	}
	safehold.GetLogger(ctx).Info("escrow transition",
		"escrow", hex.EncodeToString(id), "from", prev.String(), "to", next.String())
	return nil
}

func (c *Controller) emit(ctx safehold.Context, db safehold.KVStore, id []byte, ev *Event) error {
	ev.Metadata = &safehold.Metadata{Schema: 1}
	ev.EscrowID = id
	if now, ok := safehold.BlockTime(ctx); ok {
		ev.Time = safehold.AsUnixTime(now)
	}
	return c.events.Append(db, ev)
}

// refundDeadline is the first whole second at which a deposit made at now
// may be refunded. It is never earlier than now plus RefundTimeout.
func refundDeadline(now time.Time) safehold.UnixTime {
	return safehold.CeilUnixTime(now).Add(RefundTimeout)
}
