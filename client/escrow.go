package client

import (
	"context"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/crypto"
	"github.com/safehold/safehold/x/escrow"
)

func meta() *safehold.Metadata {
	return &safehold.Metadata{Schema: 1}
}

// result returns the error of a failed transaction.
func result(res *CommitResult, err error) (*CommitResult, error) {
	if err != nil {
		return nil, err
	}
	if res.Err != nil {
		return res, res.Err
	}
	return res, nil
}

// CreateEscrow creates an escrow paying the seller. The buyer signs and
// the id of the new escrow is returned.
func (c *Client) CreateEscrow(ctx context.Context, buyer crypto.Signer, seller safehold.Address, amount coin.Amount) ([]byte, error) {
	res, err := result(c.SignAndSubmit(ctx, buyer, &escrow.CreateMsg{
		Metadata: meta(),
		Seller:   seller,
		Amount:   amount,
	}))
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Deposit moves the amount from the buyer into the custody of the escrow.
func (c *Client) Deposit(ctx context.Context, buyer crypto.Signer, id []byte, amount coin.Amount) (*CommitResult, error) {
	return result(c.SignAndSubmit(ctx, buyer, &escrow.DepositMsg{
		Metadata: meta(),
		EscrowID: id,
		Amount:   amount,
	}))
}

// ConfirmDelivery is sent by the seller once the goods are delivered.
func (c *Client) ConfirmDelivery(ctx context.Context, seller crypto.Signer, id []byte) (*CommitResult, error) {
	return result(c.SignAndSubmit(ctx, seller, &escrow.ConfirmDeliveryMsg{
		Metadata: meta(),
		EscrowID: id,
	}))
}

// AcceptDelivery is sent by the buyer and releases the funds to the seller.
func (c *Client) AcceptDelivery(ctx context.Context, buyer crypto.Signer, id []byte) (*CommitResult, error) {
	return result(c.SignAndSubmit(ctx, buyer, &escrow.AcceptDeliveryMsg{
		Metadata: meta(),
		EscrowID: id,
	}))
}

// Refund returns the funds to the buyer once the deadline passed.
func (c *Client) Refund(ctx context.Context, buyer crypto.Signer, id []byte) (*CommitResult, error) {
	return result(c.SignAndSubmit(ctx, buyer, &escrow.RefundMsg{
		Metadata: meta(),
		EscrowID: id,
	}))
}
