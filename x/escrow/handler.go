package escrow

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/x"
)

const (
	createEscrowCost  int64 = 300
	depositEscrowCost int64 = 100
	updateEscrowCost  int64 = 50
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r safehold.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle(pathCreateMsg, CreateEscrowHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathDepositMsg, DepositHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathConfirmDeliveryMsg, ConfirmDeliveryHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathAcceptDeliveryMsg, AcceptDeliveryHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathRefundMsg, RefundHandler{auth: auth, ctrl: ctrl})
}

// result converts the emitted event into a deliver result.
func result(id []byte, ev *Event) *safehold.DeliverResult {
	return &safehold.DeliverResult{
		Data: id,
		Log:  ev.Kind.String(),
		Tags: ev.Tags(),
	}
}

// CreateEscrowHandler creates a new escrow with the main signer as the
// buyer.
type CreateEscrowHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ safehold.Handler = CreateEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateEscrowHandler) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &safehold.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver stores the escrow and returns its id as data.
func (h CreateEscrowHandler) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	msg, buyer, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	id, ev, err := h.ctrl.Create(ctx, db, buyer, msg.Seller, msg.Amount)
	if err != nil {
		return nil, err
	}
	return result(id, ev), nil
}

func (h CreateEscrowHandler) validate(ctx safehold.Context, tx safehold.Tx) (*CreateMsg, safehold.Address, error) {
	var msg CreateMsg
	if err := safehold.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "buyer signature missing")
	}
	return &msg, signer.Address(), nil
}

// DepositHandler funds an escrow from the buyer wallet.
type DepositHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ safehold.Handler = DepositHandler{}

// Check runs the whole deposit. The result is discarded together with the
// check state.
func (h DepositHandler) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	if _, err := h.Deliver(ctx, db, tx); err != nil {
		return nil, err
	}
	return &safehold.CheckResult{GasAllocated: depositEscrowCost}, nil
}

func (h DepositHandler) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	var msg DepositMsg
	if err := safehold.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := h.ctrl.Deposit(ctx, db, h.auth, msg.EscrowID, msg.Amount)
	if err != nil {
		return nil, err
	}
	return result(msg.EscrowID, ev), nil
}

// ConfirmDeliveryHandler lets the seller confirm the delivery.
type ConfirmDeliveryHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ safehold.Handler = ConfirmDeliveryHandler{}

func (h ConfirmDeliveryHandler) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	if _, err := h.Deliver(ctx, db, tx); err != nil {
		return nil, err
	}
	return &safehold.CheckResult{GasAllocated: updateEscrowCost}, nil
}

func (h ConfirmDeliveryHandler) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	var msg ConfirmDeliveryMsg
	if err := safehold.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := h.ctrl.ConfirmDelivery(ctx, db, h.auth, msg.EscrowID)
	if err != nil {
		return nil, err
	}
	return result(msg.EscrowID, ev), nil
}

// AcceptDeliveryHandler lets the buyer accept the delivery, releasing the
// funds to the seller.
type AcceptDeliveryHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ safehold.Handler = AcceptDeliveryHandler{}

func (h AcceptDeliveryHandler) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	if _, err := h.Deliver(ctx, db, tx); err != nil {
		return nil, err
	}
	return &safehold.CheckResult{GasAllocated: updateEscrowCost}, nil
}

func (h AcceptDeliveryHandler) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	var msg AcceptDeliveryMsg
	if err := safehold.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := h.ctrl.AcceptDelivery(ctx, db, h.auth, msg.EscrowID)
	if err != nil {
		return nil, err
	}
	return result(msg.EscrowID, ev), nil
}

// RefundHandler lets the buyer take the funds back after the deadline.
type RefundHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ safehold.Handler = RefundHandler{}

func (h RefundHandler) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	if _, err := h.Deliver(ctx, db, tx); err != nil {
		return nil, err
	}
	return &safehold.CheckResult{GasAllocated: updateEscrowCost}, nil
}

func (h RefundHandler) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	var msg RefundMsg
	if err := safehold.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ev, err := h.ctrl.Refund(ctx, db, h.auth, msg.EscrowID)
	if err != nil {
		return nil, err
	}
	return result(msg.EscrowID, ev), nil
}
