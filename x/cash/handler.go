package cash

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/x"
	"github.com/tendermint/tendermint/libs/common"
)

// RegisterRoutes adds the send handler. Transfers always debit the
// signer's own wallet.
func RegisterRoutes(r safehold.Registry, auth x.Authenticator, mover CoinMover) {
	r.Handle(SendMsg{}.Path(), NewSendHandler(auth, mover))
}

// SendHandler moves coins between wallets on behalf of the source owner.
type SendHandler struct {
	auth  x.Authenticator
	mover CoinMover
}

var _ safehold.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, mover CoinMover) SendHandler {
	return SendHandler{auth: auth, mover: mover}
}

// Check does not look at balances, those are only known at delivery.
func (h SendHandler) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	if _, err := h.load(ctx, tx); err != nil {
		return nil, err
	}
	return &safehold.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver tags the result with both wallets so that transfers can be
// searched for by address.
func (h SendHandler) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	msg, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.mover.MoveCoins(db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &safehold.DeliverResult{
		Tags: []common.KVPair{
			safehold.Tag([]byte("cash.source"), []byte(msg.Source.String())),
			safehold.Tag([]byte("cash.destination"), []byte(msg.Destination.String())),
		},
	}, nil
}

func (h SendHandler) load(ctx safehold.Context, tx safehold.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := safehold.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "signature of %s missing", msg.Source)
	}
	return &msg, nil
}
