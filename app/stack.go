package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/store/iavl"
	"github.com/safehold/safehold/x"
	"github.com/safehold/safehold/x/cash"
	"github.com/safehold/safehold/x/escrow"
	"github.com/safehold/safehold/x/sigs"
	"github.com/safehold/safehold/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is returned by the abci Info call.
const Name = "safehold"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// CashControl returns a controller for cash functions
func CashControl() cash.BaseController {
	return cash.NewController(cash.NewWalletBucket())
}

// EscrowControl returns the escrow state machine, holding custody in
// cash wallets.
func EscrowControl() *escrow.Controller {
	return escrow.NewController(CashControl())
}

// Chain returns a chain of decorators, to handle authentication,
// logging, metrics and recovery. Metrics are skipped if reg is nil.
func Chain(reg prometheus.Registerer) (Decorators, error) {
	var metrics safehold.Decorator
	if reg != nil {
		m, err := utils.NewMetrics(reg)
		if err != nil {
			return Decorators{}, err
		}
		metrics = m
	}
	return ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		metrics,
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// funds enter escrow custody only through a deposit
		escrow.NewCustodyGuard(),
		// on DeliverTx, a failing message still increments the
		// signer sequence, but nothing the handler wrote is kept
		utils.NewSavepoint().OnDeliver(),
	), nil
}

// Routes returns a router dispatching to the escrow, cash and sigs
// messages.
func Routes(authFn x.Authenticator) *Router {
	r := NewRouter()
	cash.RegisterRoutes(r, authFn, CashControl())
	sigs.RegisterRoutes(r, authFn)
	escrow.RegisterRoutes(r, authFn, EscrowControl())
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/escrows", "/escrows/events", "/wallets" and "/auth"
func QueryRouter() safehold.QueryRouter {
	r := safehold.NewQueryRouter()
	r.RegisterAll(
		escrow.RegisterQuery,
		cash.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() safehold.Initializer {
	return safehold.GenesisInitializers{
		cash.NewInitializer(CashControl()),
		escrow.NewInitializer(EscrowControl()),
	}
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(reg prometheus.Registerer) (safehold.Handler, error) {
	authFn := Authenticator()
	chain, err := Chain(reg)
	if err != nil {
		return nil, err
	}
	return chain.WithHandler(Routes(authFn)), nil
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h safehold.Handler,
	tx safehold.TxDecoder, dbPath string, debug bool, logger log.Logger) (BaseApp, error) {

	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return BaseApp{}, err
	}
	store, err := NewStoreApp(name, kv, QueryRouter(), context.Background())
	if err != nil {
		return BaseApp{}, err
	}
	store.WithInit(Initializers()).WithLogger(logger)
	return NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (safehold.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
