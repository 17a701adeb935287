package escrow

import (
	"encoding/json"

	"github.com/safehold/safehold/errors"
)

// Status is the lifecycle state of an escrow.
type Status int32

const (
	AwaitingPayment Status = iota
	AwaitingDelivery
	AwaitingAcceptance
	Completed
	Refunded
)

var statusNames = map[Status]string{
	AwaitingPayment:    "AWAITING_PAYMENT",
	AwaitingDelivery:   "AWAITING_DELIVERY",
	AwaitingAcceptance: "AWAITING_ACCEPTANCE",
	Completed:          "COMPLETED",
	Refunded:           "REFUNDED",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// Validate returns an error if this is not one of the declared states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errors.Wrapf(errors.ErrState, "unknown status %d", int32(s))
	}
	return nil
}

// IsTerminal returns true once funds were released.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Refunded
}

// Funded returns true if custody holds the escrowed amount in this state.
func (s Status) Funded() bool {
	return s == AwaitingDelivery || s == AwaitingAcceptance
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrInput, "status must be a string")
	}
	for st, n := range statusNames {
		if n == name {
			*s = st
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown status %q", name)
}

// operation is a state changing call on an existing escrow.
type operation int

const (
	opDeposit operation = iota
	opConfirm
	opAccept
	opRefund
)

func (op operation) String() string {
	switch op {
	case opDeposit:
		return "deposit"
	case opConfirm:
		return "confirm delivery"
	case opAccept:
		return "accept delivery"
	case opRefund:
		return "refund"
	default:
		return "unknown operation"
	}
}

// next returns the state reached by applying op. Every combination that
// is not a declared transition is an ErrInvalidState.
func (s Status) next(op operation) (Status, error) {
	switch s {
	case AwaitingPayment:
		if op == opDeposit {
			return AwaitingDelivery, nil
		}
	case AwaitingDelivery:
		switch op {
		case opConfirm:
			return AwaitingAcceptance, nil
		case opRefund:
			return Refunded, nil
		}
	case AwaitingAcceptance:
		switch op {
		case opAccept:
			return Completed, nil
		case opRefund:
			return Refunded, nil
		}
	case Completed, Refunded:
		// terminal
	default:
		return s, errors.Wrapf(ErrInvalidState, "unknown status %d", int32(s))
	}
	return s, errors.Wrapf(ErrInvalidState, "cannot %s when %s", op, s)
}
