package sigs

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/safeholdtest"
)

// StdTx is a transaction mock carrying raw sign bytes.
type StdTx struct {
	safehold.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ safehold.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	tx := &safeholdtest.Tx{Msg: &safeholdtest.Msg{RoutePath: "test/mock"}}
	return &StdTx{Tx: tx, Payload: payload}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []safehold.Condition
}

var _ safehold.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx safehold.Context, store safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &safehold.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx safehold.Context, store safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &safehold.DeliverResult{}, nil
}
