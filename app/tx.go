package app

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/crypto"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/x/cash"
	"github.com/safehold/safehold/x/escrow"
	"github.com/safehold/safehold/x/sigs"
	amino "github.com/tendermint/go-amino"
)

// cdc knows every message that a Tx can carry.
var cdc = newCodec()

func newCodec() *amino.Codec {
	c := amino.NewCodec()
	c.RegisterInterface((*safehold.Msg)(nil), nil)
	cash.RegisterAmino(c)
	sigs.RegisterAmino(c)
	escrow.RegisterAmino(c)
	c.Seal()
	return c
}

// Tx is the transaction envelope: one message and the signatures of
// everyone authorizing it.
type Tx struct {
	Msg        safehold.Msg          `json:"msg"`
	Signatures []*sigs.StdSignature `json:"signatures"`
}

// make sure tx fulfills all interfaces
var _ safehold.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (safehold.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg returns the carried message.
func (tx *Tx) GetMsg() (safehold.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrInput, "no message")
	}
	return tx.Msg, nil
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign. The signatures are not part of
// them, so every signer signs the same bytes.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Msg: tx.Msg}
	return unsigned.Marshal()
}

// Marshal encodes the transaction for broadcasting.
func (tx *Tx) Marshal() ([]byte, error) {
	bz, err := cdc.MarshalBinaryBare(tx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return bz, nil
}

// Unmarshal decodes a transaction encoded with Marshal.
func (tx *Tx) Unmarshal(bz []byte) error {
	if err := cdc.UnmarshalBinaryBare(bz, tx); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// Sign adds the signature of the signer using the given sequence.
func (tx *Tx) Sign(signer crypto.Signer, chainID string, seq int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}
