package app

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp contains a data store and all info needed
// to perform queries and handshakes.
//
// It should be embedded in another struct for CheckTx,
// DeliverTx and initializing state from the genesis.
//
// Errors on ABCI steps that do not take user input (Info, InitChain,
// BeginBlock, EndBlock and Commit) cannot be reported to tendermint and
// are raised as panics.
type StoreApp struct {
	// mu guards the stores and contexts. Tendermint calls the
	// consensus, mempool and query connections from different
	// goroutines.
	mu sync.Mutex

	logger log.Logger

	// name is what is returned from abci.Info
	name string

	// Database state (committed, check, deliver....)
	store *stateStore

	// Code to initialize from a genesis file
	initializer safehold.Initializer

	// How to handle queries
	queryRouter safehold.QueryRouter

	// chainID is loaded from db in initialization
	// saved once in parseGenesis
	chainID string

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext safehold.Context

	// blockContext contains context info that is valid for the
	// current block (eg. height, block time), reset on BeginBlock
	blockContext safehold.Context
}

var _ abci.Application = (*StoreApp)(nil)

// NewStoreApp initializes this app into a ready state with some defaults.
// It fails if the state cannot be loaded from the given store.
func NewStoreApp(name string, store safehold.CommitKVStore,
	queryRouter safehold.QueryRouter, baseContext safehold.Context) (*StoreApp, error) {
	cs, err := newStateStore(store)
	if err != nil {
		return nil, err
	}
	s := &StoreApp{
		name:        name,
		store:       cs,
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	s.chainID, err = loadChainID(s.store.DeliverStore())
	if err != nil {
		return nil, err
	}
	if s.chainID != "" {
		s.baseContext = safehold.WithChainID(s.baseContext, s.chainID)
	}

	info, err := s.store.LatestVersion()
	if err != nil {
		return nil, err
	}
	s.blockContext = safehold.WithHeight(s.baseContext, info.Version)
	return s, nil
}

func (s *StoreApp) GetChainID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chainID
}

// WithInit sets what loads the genesis app_state.
func (s *StoreApp) WithInit(init safehold.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger replaces the logger of the app and of every handler context.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = safehold.WithLogger(s.baseContext, logger)
	s.logger = logger
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext holds height, block time and chain id of the current block.
func (s *StoreApp) BlockContext() safehold.Context {
	return s.blockContext
}

func (s *StoreApp) DeliverStore() safehold.CacheableKVStore {
	return s.store.DeliverStore()
}

func (s *StoreApp) CheckStore() safehold.CacheableKVStore {
	return s.store.CheckStore()
}

// parseAppState is called from InitChain, the first time the chain
// starts, and not on restarts.
func (s *StoreApp) parseAppState(data []byte, chainID string, init safehold.Initializer) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state previously loaded for chain: %s", s.chainID)
	}
	if len(data) == 0 {
		return errors.Wrap(errors.ErrState, "app_state not set in genesis.json, please initialize application before launching the blockchain")
	}

	var appState safehold.Options
	if err := json.Unmarshal(data, &appState); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if err := s.storeChainID(chainID); err != nil {
		return err
	}
	if init == nil {
		return nil
	}
	return init.FromGenesis(appState, s.DeliverStore())
}

func (s *StoreApp) storeChainID(chainID string) error {
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = safehold.WithChainID(s.baseContext, s.chainID)
	return nil
}

//----------------------- ABCI ---------------------

// Info reports the last committed height and app hash so tendermint can
// replay the blocks the app has not seen yet.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := s.store.LatestVersion()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced",
		"height", info.Version,
		"hash", fmt.Sprintf("%X", info.Hash))

	return abci.ResponseInfo{
		Data:             s.name,
		Version:          safehold.Version(),
		AppVersion:       safehold.AppVersion,
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

func (s *StoreApp) SetOption(res abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// Query reads the last committed state. The path names a query handler,
// such as "/escrows" or "/escrows/events", and may end with "?<mod>" to
// select how Data is interpreted. Key and Value of the response are
// ResultSets of equal length.
func (s *StoreApp) Query(reqQuery abci.RequestQuery) abci.ResponseQuery {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, mod := splitPath(reqQuery.Path)
	qh := s.queryRouter.Handler(path)
	if qh == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "unexpected query path: %v", reqQuery.Path))
	}

	info, err := s.store.LatestVersion()
	if err != nil {
		return queryError(err)
	}
	// queries always read the last committed state
	db := s.store.committed.CacheWrap()
	defer db.Discard()

	models, err := qh.Query(db, mod, reqQuery.Data)
	if err != nil {
		return queryError(err)
	}

	keys, err := ResultsFromKeys(models).Marshal()
	if err != nil {
		return queryError(err)
	}
	values, err := ResultsFromValues(models).Marshal()
	if err != nil {
		return queryError(err)
	}
	return abci.ResponseQuery{
		Height: info.Version,
		Key:    keys,
		Value:  values,
	}
}

// splitPath separates the query modifier following "?".
func splitPath(path string) (string, string) {
	path, mod, _ := strings.Cut(path, "?")
	return path, mod
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{
		Log:  log,
		Code: code,
	}
}

// Commit persists the delivered state. A failure here would fork the node
// from the network, so it panics.
func (s *StoreApp) Commit() abci.ResponseCommit {
	s.mu.Lock()
	defer s.mu.Unlock()

	commitID, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced",
		"height", commitID.Version,
		"hash", fmt.Sprintf("%X", commitID.Hash),
	)
	return abci.ResponseCommit{Data: commitID.Hash}
}

// InitChain implements ABCI. The app_state of the genesis file is passed
// to the initializer.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.parseAppState(req.AppStateBytes, req.ChainId, s.initializer); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// BeginBlock takes the block time from the header. Escrow deadlines are
// checked against it, never against the local clock.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := safehold.WithHeight(s.baseContext, req.Header.GetHeight())
	ctx = safehold.WithBlockTime(ctx, req.Header.GetTime())
	s.blockContext = ctx
	return abci.ResponseBeginBlock{}
}

func (s *StoreApp) EndBlock(_ abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

// CheckTx is implemented by BaseApp.
func (s *StoreApp) CheckTx(tx []byte) abci.ResponseCheckTx {
	return safehold.CheckTxError(errors.Wrap(errors.ErrHuman, "no transaction handler"), false)
}

// DeliverTx is implemented by BaseApp.
func (s *StoreApp) DeliverTx(tx []byte) abci.ResponseDeliverTx {
	return safehold.DeliverTxError(errors.Wrap(errors.ErrHuman, "no transaction handler"), false)
}
