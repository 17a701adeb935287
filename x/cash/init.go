package cash

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file.
// Address is given in any format accepted by safehold.ParseAddress.
type GenesisAccount struct {
	Address safehold.Address `json:"address"`
	Balance coin.Amount      `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct {
	control CoinIssuer
}

var _ safehold.Initializer = Initializer{}

// NewInitializer returns an initializer that credits genesis balances
// through the given issuer.
func NewInitializer(control CoinIssuer) Initializer {
	return Initializer{control: control}
}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (i Initializer) FromGenesis(opts safehold.Options, kv safehold.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	for n, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", n)
		}
		if err := i.control.IssueCoins(kv, acct.Address, acct.Balance); err != nil {
			return errors.Wrapf(err, "account %d", n)
		}
	}
	return nil
}
