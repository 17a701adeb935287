package app

import (
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/x/cash"
	"github.com/safehold/safehold/x/escrow"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultGenesisBalance is given to the rich account when no balance is
// provided.
const DefaultGenesisBalance = "1000000000000000000000"

type genesisState struct {
	Cash    []cash.GenesisAccount `json:"cash"`
	Escrows []escrow.GenesisEscrow `json:"escrow"`
}

// GenInitOptions will produce the app state for one rich account, to use
// for dev mode.
//
//   args[0] address of the account, hex or bech32 encoded (required)
//   args[1] balance, DefaultGenesisBalance if missing
func GenInitOptions(args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "address required")
	}
	addr, err := safehold.ParseAddress(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "address")
	}
	raw := DefaultGenesisBalance
	if len(args) > 1 {
		raw = args[1]
	}
	balance, err := coin.ParseAmount(raw)
	if err != nil {
		return nil, errors.Wrap(err, "balance")
	}

	state := genesisState{
		Cash:    []cash.GenesisAccount{{Address: addr, Balance: balance}},
		Escrows: []escrow.GenesisEscrow{},
	}
	return json.MarshalIndent(state, "", "  ")
}

// GenerateApp is used to create the application for the start command.
func GenerateApp(dbPath string, logger log.Logger, debug bool, reg prometheus.Registerer) (abci.Application, error) {
	stack, err := Stack(reg)
	if err != nil {
		return nil, err
	}
	application, err := Application(Name, stack, TxDecoder, dbPath, debug, logger)
	if err != nil {
		return nil, err
	}
	return application, nil
}
