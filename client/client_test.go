package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/app"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/crypto"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/safeholdtest"
	"github.com/safehold/safehold/safeholdtest/assert"
	"github.com/safehold/safehold/x/escrow"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

const testChainID = "safehold-client-test"

var oneEther = coin.MustParseAmount("1000000000000000000")

type fixture struct {
	node   *LocalNode
	client *Client
	buyer  *crypto.PrivateKey
	seller *crypto.PrivateKey
}

func newFixture(t *testing.T) fixture {
	buyer := safeholdtest.NewKey()
	seller := safeholdtest.NewKey()
	state := fmt.Sprintf(`{"cash": [{"address": %q, "balance": %q}]}`,
		buyer.PublicKey().Address().String(), oneEther.String())
	stack, err := app.Stack(nil)
	assert.Nil(t, err)
	application, err := app.Application(app.Name, stack, app.TxDecoder, "", false, log.NewNopLogger())
	assert.Nil(t, err)
	node := NewLocalNode(application, testChainID, []byte(state),
		time.Date(2019, 3, 27, 10, 55, 40, 0, time.UTC))
	return fixture{
		node:   node,
		client: NewClient(node),
		buyer:  buyer,
		seller: seller,
	}
}

func (f fixture) balance(t *testing.T, addr safehold.Address) string {
	t.Helper()
	amount, err := f.client.Balance(context.Background(), addr)
	assert.Nil(t, err)
	return amount.String()
}

func kinds(t *testing.T, c *Client, id []byte) []escrow.EventKind {
	t.Helper()
	events, err := c.EscrowEvents(context.Background(), id)
	assert.Nil(t, err)
	var res []escrow.EventKind
	for _, ev := range events {
		res = append(res, ev.Kind)
	}
	return res
}

func TestStatus(t *testing.T) {
	f := newFixture(t)
	status, err := f.client.Status(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, testChainID, status.ChainID)
	assert.Equal(t, int64(1), status.Height)
	assert.Equal(t, false, status.CatchingUp)
}

func TestNonce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	addr := f.buyer.PublicKey().Address()

	nonce, err := f.client.Nonce(ctx, addr)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), nonce)

	_, err = f.client.CreateEscrow(ctx, f.buyer, f.seller.PublicKey().Address(), oneEther)
	assert.Nil(t, err)

	nonce, err = f.client.Nonce(ctx, addr)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), nonce)
}

func TestHappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sellerAddr := f.seller.PublicKey().Address()

	id, err := f.client.CreateEscrow(ctx, f.buyer, sellerAddr, oneEther)
	assert.Nil(t, err)

	e, err := f.client.Escrow(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, escrow.AwaitingPayment, e.Status)
	assert.Equal(t, sellerAddr, e.Seller)

	_, err = f.client.Deposit(ctx, f.buyer, id, oneEther)
	assert.Nil(t, err)
	assert.Equal(t, "0", f.balance(t, f.buyer.PublicKey().Address()))
	assert.Equal(t, oneEther.String(), f.balance(t, e.Address))

	// the seller has no funds, but confirming does not cost anything
	_, err = f.client.ConfirmDelivery(ctx, f.seller, id)
	assert.Nil(t, err)

	res, err := f.client.AcceptDelivery(ctx, f.buyer, id)
	assert.Nil(t, err)
	assert.Equal(t, "buyer_accepted", res.Log)
	assert.Equal(t, oneEther.String(), f.balance(t, sellerAddr))
	assert.Equal(t, "0", f.balance(t, e.Address))

	e, err = f.client.Escrow(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, escrow.Completed, e.Status)
	assert.Equal(t, []escrow.EventKind{
		escrow.EventCreated,
		escrow.EventDeposited,
		escrow.EventSellerConfirmed,
		escrow.EventBuyerAccepted,
	}, kinds(t, f.client, id))
}

func TestRefund(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.client.CreateEscrow(ctx, f.buyer, f.seller.PublicKey().Address(), oneEther)
	assert.Nil(t, err)
	_, err = f.client.Deposit(ctx, f.buyer, id, oneEther)
	assert.Nil(t, err)

	_, err = f.client.Refund(ctx, f.buyer, id)
	assert.IsErr(t, escrow.ErrDeadlineNotReached, err)

	_, err = f.client.Refund(ctx, f.seller, id)
	assert.IsErr(t, escrow.ErrUnauthorizedBuyer, err)

	f.node.Advance(escrow.RefundTimeout + time.Second)
	_, err = f.client.Refund(ctx, f.buyer, id)
	assert.Nil(t, err)
	assert.Equal(t, oneEther.String(), f.balance(t, f.buyer.PublicKey().Address()))

	_, err = f.client.AcceptDelivery(ctx, f.buyer, id)
	assert.IsErr(t, escrow.ErrInvalidState, err)
}

func TestRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.CreateEscrow(ctx, f.buyer, nil, oneEther)
	assert.IsErr(t, escrow.ErrInvalidSeller, err)

	id, err := f.client.CreateEscrow(ctx, f.buyer, f.seller.PublicKey().Address(), oneEther)
	assert.Nil(t, err)
	_, err = f.client.Deposit(ctx, f.buyer, id, coin.NewAmount(1))
	assert.IsErr(t, escrow.ErrIncorrectAmount, err)

	_, err = f.client.Escrow(ctx, []byte{0, 0, 0, 0, 0, 0, 0, 99})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = f.client.Query(ctx, "/unknown", nil)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestUnknownAddress(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "0", f.balance(t, f.seller.PublicKey().Address()))
}

// downNode fails every call.
type downNode struct{}

func (downNode) ABCIQuery(string, cmn.HexBytes) (*ctypes.ResultABCIQuery, error) {
	return nil, stderrors.New("connection refused")
}

func (downNode) BroadcastTxCommit(tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error) {
	return nil, stderrors.New("connection refused")
}

func (downNode) Status() (*ctypes.ResultStatus, error) {
	return nil, stderrors.New("connection refused")
}

func TestNetworkFailure(t *testing.T) {
	ctx := context.Background()
	c := NewClient(downNode{})
	key := safeholdtest.NewKey()

	_, err := c.Status(ctx)
	assert.IsErr(t, errors.ErrNetwork, err)
	_, err = c.Balance(ctx, key.PublicKey().Address())
	assert.IsErr(t, errors.ErrNetwork, err)
	_, err = c.SubmitTx(ctx, &app.Tx{Msg: &escrow.RefundMsg{
		Metadata: &safehold.Metadata{Schema: 1},
		EscrowID: []byte{0, 0, 0, 0, 0, 0, 0, 1},
	}})
	assert.IsErr(t, errors.ErrNetwork, err)
}

func TestCancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.client.SignAndSubmit(ctx, f.buyer, &escrow.RefundMsg{
		Metadata: &safehold.Metadata{Schema: 1},
		EscrowID: []byte{0, 0, 0, 0, 0, 0, 0, 1},
	})
	assert.IsErr(t, errors.ErrNetwork, err)
}
