package app

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/commands"
	"github.com/safehold/safehold/crypto"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/x/escrow"
)

// Examples returns a signed transaction for every escrow message and a
// stored escrow, built from a fixed key so the output is stable.
func Examples() []commands.Example {
	buyer := crypto.PrivKeyEd25519FromSeed(make([]byte, 32))
	seed := make([]byte, 32)
	seed[0] = 1
	seller := crypto.PrivKeyEd25519FromSeed(seed)
	meta := &safehold.Metadata{Schema: 1}
	id := []byte{0, 0, 0, 0, 0, 0, 0, 1}
	amount := coin.MustParseAmount("1000000000000000000")

	signed := func(key *crypto.PrivateKey, seq int64, msg safehold.Msg) *Tx {
		tx := &Tx{Msg: msg}
		if err := tx.Sign(key, "safehold-example", seq); err != nil {
			panic(err)
		}
		return tx
	}

	return []commands.Example{
		{Filename: "create_tx", Obj: signed(buyer, 0, &escrow.CreateMsg{
			Metadata: meta,
			Seller:   seller.PublicKey().Address(),
			Amount:   amount,
		})},
		{Filename: "deposit_tx", Obj: signed(buyer, 1, &escrow.DepositMsg{
			Metadata: meta,
			EscrowID: id,
			Amount:   amount,
		})},
		{Filename: "confirm_tx", Obj: signed(seller, 0, &escrow.ConfirmDeliveryMsg{Metadata: meta, EscrowID: id})},
		{Filename: "accept_tx", Obj: signed(buyer, 2, &escrow.AcceptDeliveryMsg{Metadata: meta, EscrowID: id})},
		{Filename: "refund_tx", Obj: signed(buyer, 2, &escrow.RefundMsg{Metadata: meta, EscrowID: id})},
		{Filename: "escrow", Obj: &escrow.Escrow{
			Metadata: meta,
			Buyer:    buyer.PublicKey().Address(),
			Seller:   seller.PublicKey().Address(),
			Amount:   amount,
			Deadline: 1553943340,
			Status:   escrow.AwaitingDelivery,
			Address:  escrow.Condition(id).Address(),
		}},
	}
}

// EncodeExample returns the binary encoding used on the wire.
func EncodeExample(obj interface{}) ([]byte, error) {
	bz, err := cdc.MarshalBinaryBare(obj)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return bz, nil
}
