package client

import (
	"context"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/app"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/crypto"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/x/cash"
	"github.com/safehold/safehold/x/escrow"
	"github.com/safehold/safehold/x/sigs"
)

// Client is a tendermint client wrapped to provide simple access to the
// escrow state and to submit signed transactions.
//
// Basic accessors are declared here. The escrow operations are built on
// top of them in escrow.go.
type Client struct {
	conn Node
}

// NewClient wraps a Client around an existing tendermint connection.
func NewClient(conn Node) *Client {
	return &Client{conn: conn}
}

// Status returns current height and other (subjective) status info from this node
func (c *Client) Status(ctx context.Context) (*Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrNetwork, err.Error())
	}
	status, err := c.conn.Status()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "status: %s", err.Error())
	}
	return &Status{
		ChainID:    status.NodeInfo.Network,
		Height:     status.SyncInfo.LatestBlockHeight,
		Time:       status.SyncInfo.LatestBlockTime,
		CatchingUp: status.SyncInfo.CatchingUp,
	}, nil
}

// Query runs an abci query and decodes the returned result sets. An
// error response is turned back into the error registered for its code.
func (c *Client) Query(ctx context.Context, path string, data []byte) ([]safehold.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrNetwork, err.Error())
	}
	res, err := c.conn.ABCIQuery(path, data)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "query %s: %s", path, err.Error())
	}
	if res.Response.IsErr() {
		return nil, errors.FromABCI(res.Response.Code, res.Response.Log)
	}
	models, err := app.DecodeModels(res.Response.Key, res.Response.Value)
	if err != nil {
		return nil, errors.Wrap(errors.ErrNetwork, err.Error())
	}
	return models, nil
}

// Nonce returns the sequence the next transaction signed by the owner of
// the address must use.
func (c *Client) Nonce(ctx context.Context, addr safehold.Address) (int64, error) {
	models, err := c.Query(ctx, "/auth", addr)
	if err != nil {
		return 0, err
	}
	if len(models) == 0 {
		return 0, nil
	}
	user, err := sigs.DecodeUserData(models[0].Value)
	if err != nil {
		return 0, err
	}
	return user.Sequence, nil
}

// Balance returns the cash held by the address. Unknown addresses hold
// nothing.
func (c *Client) Balance(ctx context.Context, addr safehold.Address) (coin.Amount, error) {
	models, err := c.Query(ctx, "/wallets", addr)
	if err != nil {
		return coin.Amount{}, err
	}
	if len(models) == 0 {
		return coin.NewAmount(0), nil
	}
	w, err := cash.DecodeWallet(models[0].Value)
	if err != nil {
		return coin.Amount{}, err
	}
	return w.Balance, nil
}

// Escrow returns the escrow stored under the id.
func (c *Client) Escrow(ctx context.Context, id []byte) (*escrow.Escrow, error) {
	models, err := c.Query(ctx, "/escrows", id)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "escrow %X", id)
	}
	return escrow.DecodeEscrow(models[0].Value)
}

// EscrowEvents returns the events emitted by the escrow, oldest first.
func (c *Client) EscrowEvents(ctx context.Context, id []byte) ([]*escrow.Event, error) {
	models, err := c.Query(ctx, "/escrows/events", id)
	if err != nil {
		return nil, err
	}
	events := make([]*escrow.Event, len(models))
	for i, m := range models {
		ev, err := escrow.DecodeEvent(m.Value)
		if err != nil {
			return nil, err
		}
		events[i] = ev
	}
	return events, nil
}

// SubmitTx broadcasts the transaction and blocks until it is part of a
// block. A transaction rejected by the mempool returns an error. A
// transaction that is part of a block but failed has its error in the
// result.
func (c *Client) SubmitTx(ctx context.Context, tx *app.Tx) (*CommitResult, error) {
	bz, err := tx.Marshal()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrNetwork, err.Error())
	}
	res, err := c.conn.BroadcastTxCommit(bz)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "submit tx: %s", err.Error())
	}
	// a checktx error didn't make it into mempool, so will not make it into block
	if res.CheckTx.IsErr() {
		return nil, errors.FromABCI(res.CheckTx.Code, res.CheckTx.Log)
	}
	return &CommitResult{
		ID:     res.Hash,
		Height: res.Height,
		Data:   res.DeliverTx.Data,
		Log:    res.DeliverTx.Log,
		Tags:   res.DeliverTx.Tags,
		Err:    errors.FromABCI(res.DeliverTx.Code, res.DeliverTx.Log),
	}, nil
}

// SignAndSubmit wraps the message in a transaction signed by the signer
// with its current sequence and submits it.
func (c *Client) SignAndSubmit(ctx context.Context, signer crypto.Signer, msg safehold.Msg) (*CommitResult, error) {
	status, err := c.Status(ctx)
	if err != nil {
		return nil, err
	}
	seq, err := c.Nonce(ctx, signer.PublicKey().Address())
	if err != nil {
		return nil, errors.Wrap(err, "nonce")
	}
	tx := &app.Tx{Msg: msg}
	if err := tx.Sign(signer, status.ChainID, seq); err != nil {
		return nil, err
	}
	return c.SubmitTx(ctx, tx)
}
