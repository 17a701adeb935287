package escrow

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
)

const (
	pathCreateMsg          = "escrow/create"
	pathDepositMsg         = "escrow/deposit"
	pathConfirmDeliveryMsg = "escrow/confirm"
	pathAcceptDeliveryMsg  = "escrow/accept"
	pathRefundMsg          = "escrow/refund"
)

// CreateMsg creates an escrow. The main signer becomes the buyer.
type CreateMsg struct {
	Metadata *safehold.Metadata `json:"metadata"`
	Seller   safehold.Address   `json:"seller"`
	Amount   coin.Amount        `json:"amount"`
}

var _ safehold.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (m *CreateMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Seller.Validate(); err != nil {
		return errors.Wrap(ErrInvalidSeller, err.Error())
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(ErrInvalidAmount, "must be positive")
	}
	return nil
}

// DepositMsg funds an escrow. Amount must equal the escrowed amount.
type DepositMsg struct {
	Metadata *safehold.Metadata `json:"metadata"`
	EscrowID []byte             `json:"escrow_id"`
	Amount   coin.Amount        `json:"amount"`
}

var _ safehold.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return pathDepositMsg
}

func (m *DepositMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateEscrowID(m.EscrowID)
}

// ConfirmDeliveryMsg is sent by the seller.
type ConfirmDeliveryMsg struct {
	Metadata *safehold.Metadata `json:"metadata"`
	EscrowID []byte             `json:"escrow_id"`
}

var _ safehold.Msg = (*ConfirmDeliveryMsg)(nil)

func (ConfirmDeliveryMsg) Path() string {
	return pathConfirmDeliveryMsg
}

func (m *ConfirmDeliveryMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateEscrowID(m.EscrowID)
}

// AcceptDeliveryMsg is sent by the buyer.
type AcceptDeliveryMsg struct {
	Metadata *safehold.Metadata `json:"metadata"`
	EscrowID []byte             `json:"escrow_id"`
}

var _ safehold.Msg = (*AcceptDeliveryMsg)(nil)

func (AcceptDeliveryMsg) Path() string {
	return pathAcceptDeliveryMsg
}

func (m *AcceptDeliveryMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateEscrowID(m.EscrowID)
}

// RefundMsg is sent by the buyer.
type RefundMsg struct {
	Metadata *safehold.Metadata `json:"metadata"`
	EscrowID []byte             `json:"escrow_id"`
}

var _ safehold.Msg = (*RefundMsg)(nil)

func (RefundMsg) Path() string {
	return pathRefundMsg
}

func (m *RefundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateEscrowID(m.EscrowID)
}

// validateEscrowID returns an error if this is an obviously invalid escrow
// ID.
func validateEscrowID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "escrow id: %X", id)
	}
	return nil
}
