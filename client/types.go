package client

import (
	"time"

	cmn "github.com/tendermint/tendermint/libs/common"
)

// TransactionID is the hash used to identify the transaction
type TransactionID = cmn.HexBytes

// CommitResult is returned once a transaction is part of a block.
// Err is set if the transaction was included but failed.
type CommitResult struct {
	ID     TransactionID
	Height int64
	Data   []byte
	Log    string
	Tags   []cmn.KVPair
	Err    error
}

// Status is the current status of the node we connect to.
type Status struct {
	ChainID    string
	Height     int64
	Time       time.Time
	CatchingUp bool
}
