package cash

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds the balance of a single address. The address is the key
// under which the wallet is stored.
type Wallet struct {
	Metadata *safehold.Metadata `json:"metadata"`
	Balance  coin.Amount        `json:"balance"`
}

var _ orm.Model = (*Wallet)(nil)

// Validate makes sure the wallet metadata is present.
func (w *Wallet) Validate() error {
	if err := w.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return nil
}

// NewWalletBucket returns a bucket that stores wallets by address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{}, cdc)
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr safehold.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
}

// DecodeWallet parses a wallet as returned by the /wallets query.
func DecodeWallet(raw []byte) (*Wallet, error) {
	var w Wallet
	if err := cdc.UnmarshalBinaryBare(raw, &w); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &w, nil
}
