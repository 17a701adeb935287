package client

import (
	"sync"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/p2p"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

// LocalNode runs an application in process, without consensus. Every
// broadcasted transaction that passes the check is committed in a block of
// its own. Block time only moves on Advance.
//
// LocalNode is useful for tests and demos only.
type LocalNode struct {
	mu      sync.Mutex
	app     abci.Application
	chainID string
	height  int64
	now     time.Time
}

var _ Node = (*LocalNode)(nil)

// NewLocalNode initializes the chain with the given genesis app state
// and commits the first block at the given time.
func NewLocalNode(app abci.Application, chainID string, appState []byte, now time.Time) *LocalNode {
	app.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: appState})
	n := &LocalNode{
		app:     app,
		chainID: chainID,
		now:     now,
	}
	n.block()
	return n
}

func (n *LocalNode) block(txs ...[]byte) []abci.ResponseDeliverTx {
	n.height++
	n.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{
		ChainID: n.chainID,
		Height:  n.height,
		Time:    n.now,
	}})
	res := make([]abci.ResponseDeliverTx, len(txs))
	for i, tx := range txs {
		res[i] = n.app.DeliverTx(tx)
	}
	n.app.EndBlock(abci.RequestEndBlock{Height: n.height})
	n.app.Commit()
	return res
}

// Advance moves the clock and commits an empty block at the new time.
func (n *LocalNode) Advance(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.now = n.now.Add(d)
	n.block()
}

func (n *LocalNode) ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return &ctypes.ResultABCIQuery{
		Response: n.app.Query(abci.RequestQuery{Path: path, Data: data}),
	}, nil
}

func (n *LocalNode) BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	res := &ctypes.ResultBroadcastTxCommit{
		CheckTx: n.app.CheckTx(tx),
		Hash:    tx.Hash(),
	}
	if res.CheckTx.IsErr() {
		return res, nil
	}
	res.DeliverTx = n.block(tx)[0]
	res.Height = n.height
	return res, nil
}

func (n *LocalNode) Status() (*ctypes.ResultStatus, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return &ctypes.ResultStatus{
		NodeInfo: p2p.DefaultNodeInfo{Network: n.chainID},
		SyncInfo: ctypes.SyncInfo{
			LatestBlockHeight: n.height,
			LatestBlockTime:   n.now,
		},
	}, nil
}
