package cash

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/orm"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to the
	// destination account. This operation is atomic: it either fully
	// succeeds or the store is left untouched.
	MoveCoins(db safehold.KVStore, src, dest safehold.Address, amount coin.Amount) error
}

// CoinIssuer creates value out of nothing. Only the genesis uses it.
type CoinIssuer interface {
	IssueCoins(db safehold.KVStore, dest safehold.Address, amount coin.Amount) error
}

// Controller is the functionality needed by cash.Handler and
// cash.Initializer. Extensions that depend on cash should only use the
// CoinMover subset.
type Controller interface {
	CoinMover
	CoinIssuer
	Balance(db safehold.ReadOnlyKVStore, addr safehold.Address) (coin.Amount, error)
}

// BaseController is a simple implementation of Controller.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on given wallet bucket.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount held by the given address. An address that has
// never received anything holds zero.
func (c BaseController) Balance(db safehold.ReadOnlyKVStore, addr safehold.Address) (coin.Amount, error) {
	w, err := c.wallet(db, addr)
	if err != nil {
		return coin.Amount{}, err
	}
	return w.Balance, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails. If dest balance would overflow, it fails.
// Both checks happen before any write.
func (c BaseController) MoveCoins(db safehold.KVStore, src, dest safehold.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}

	sender, err := c.wallet(db, src)
	if err != nil {
		return err
	}
	if sender.Balance.IsZero() {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	senderBalance, err := sender.Balance.Sub(amount)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if src.Equals(dest) {
		// nothing changes, but the funds check applies
		return nil
	}

	recipient, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	recipientBalance, err := recipient.Balance.Add(amount)
	if err != nil {
		return errors.Wrap(err, "destination")
	}

	sender.Balance = senderBalance
	recipient.Balance = recipientBalance
	if _, err := c.bucket.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "cannot save source wallet")
	}
	if _, err := c.bucket.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot save destination wallet")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db safehold.KVStore, dest safehold.Address, amount coin.Amount) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	recipient, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	balance, err := recipient.Balance.Add(amount)
	if err != nil {
		return err
	}
	recipient.Balance = balance
	_, err = c.bucket.Put(db, dest, recipient)
	return err
}

// wallet loads the wallet of the given address, or returns an empty one if
// none was stored yet.
func (c BaseController) wallet(db safehold.ReadOnlyKVStore, addr safehold.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{Metadata: &safehold.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}
