package escrow

import (
	"time"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/orm"
)

const (
	// BucketName is where we store the escrows
	BucketName = "escrow"

	// RefundTimeout is how long after the deposit the buyer has to wait
	// before the funds can be taken back. Deadlines are stored in whole
	// seconds, rounded up from the deposit time.
	RefundTimeout = 72 * time.Hour
)

// Escrow is a single escrow agreement. It is stored under its id and never
// deleted.
type Escrow struct {
	Metadata *safehold.Metadata `json:"metadata"`
	Buyer    safehold.Address   `json:"buyer"`
	Seller   safehold.Address   `json:"seller"`
	Amount   coin.Amount        `json:"amount"`
	// Deadline is zero until the deposit.
	Deadline safehold.UnixTime `json:"deadline"`
	Status   Status            `json:"status"`
	// Address holds the funds between deposit and release.
	Address safehold.Address `json:"address"`
}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow is valid
func (e *Escrow) Validate() error {
	if err := e.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := e.Buyer.Validate(); err != nil {
		return errors.Wrap(err, "buyer")
	}
	if err := e.Seller.Validate(); err != nil {
		return errors.Wrap(ErrInvalidSeller, err.Error())
	}
	if !e.Amount.IsPositive() {
		return errors.Wrap(ErrInvalidAmount, "must be positive")
	}
	if err := e.Status.Validate(); err != nil {
		return errors.Wrap(err, "status")
	}
	if err := e.Deadline.Validate(); err != nil {
		return errors.Wrap(err, "deadline")
	}
	if e.Status == AwaitingPayment && !e.Deadline.IsZero() {
		return errors.Wrap(errors.ErrState, "deadline set before deposit")
	}
	if e.Status != AwaitingPayment && e.Deadline.IsZero() {
		return errors.Wrap(errors.ErrState, "missing deadline")
	}
	if err := e.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy returns a copy that does not share memory.
func (e *Escrow) Copy() *Escrow {
	return &Escrow{
		Metadata: e.Metadata.Copy(),
		Buyer:    e.Buyer.Clone(),
		Seller:   e.Seller.Clone(),
		Amount:   e.Amount,
		Deadline: e.Deadline,
		Status:   e.Status,
		Address:  e.Address.Clone(),
	}
}

// Condition returns the condition controlling the custody of the escrow
// with the given id.
func Condition(id []byte) safehold.Condition {
	return safehold.NewCondition("escrow", "seq", id)
}

// NewBucket returns a bucket storing escrows under the next value of the
// escrow id sequence.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Escrow{}, cdc)
}

// RegisterQuery will register the escrows as "/escrows" and their events
// as "/escrows/events".
func RegisterQuery(qr safehold.QueryRouter) {
	NewBucket().Register("escrows", qr)
	qr.Register("/escrows/events", NewEventLog())
}

// DecodeEscrow parses an escrow as returned by the /escrows query.
func DecodeEscrow(raw []byte) (*Escrow, error) {
	var e Escrow
	if err := cdc.UnmarshalBinaryBare(raw, &e); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &e, nil
}
