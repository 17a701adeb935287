package app

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp runs decoded transactions through the handler stack on top of
// the state and queries served by StoreApp.
type BaseApp struct {
	*StoreApp
	decoder safehold.TxDecoder
	handler safehold.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp builds the application. With debug set, error responses
// carry full error details instead of the redacted log.
func NewBaseApp(store *StoreApp, decoder safehold.TxDecoder, handler safehold.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

func (b BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	tx, err := b.decode(raw)
	if err != nil {
		return safehold.DeliverTxError(err, b.debug)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	res, err := b.handler.Deliver(b.txContext("deliver_tx", tx), b.DeliverStore(), tx)
	return safehold.DeliverOrError(res, err, b.debug)
}

func (b BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	tx, err := b.decode(raw)
	if err != nil {
		return safehold.CheckTxError(err, b.debug)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	res, err := b.handler.Check(b.txContext("check_tx", tx), b.CheckStore(), tx)
	return safehold.CheckOrError(res, err, b.debug)
}

// txContext must be called with b.mu held.
func (b BaseApp) txContext(call string, tx safehold.Tx) safehold.Context {
	return safehold.WithLogInfo(b.BlockContext(), "call", call, "path", safehold.GetPath(tx))
}

// decode turns a decoder panic on malformed bytes into an error.
func (b BaseApp) decode(raw []byte) (tx safehold.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(raw)
}
