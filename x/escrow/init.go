package escrow

import (
	"context"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
)

const optKey = "escrow"

// GenesisEscrow is an escrow created when the chain starts, waiting for
// the deposit.
type GenesisEscrow struct {
	Buyer  safehold.Address `json:"buyer"`
	Seller safehold.Address `json:"seller"`
	Amount coin.Amount      `json:"amount"`
}

// Initializer creates the genesis escrows.
type Initializer struct {
	ctrl *Controller
}

var _ safehold.Initializer = Initializer{}

// NewInitializer returns an initializer creating escrows with ctrl.
func NewInitializer(ctrl *Controller) Initializer {
	return Initializer{ctrl: ctrl}
}

// FromGenesis creates every escrow listed in the escrow section, in order.
func (i Initializer) FromGenesis(opts safehold.Options, db safehold.KVStore) error {
	stream, err := opts.Stream(optKey)
	switch {
	case errors.ErrEmpty.Is(err):
		return nil
	case err != nil:
		return err
	}
	ctx := context.Background()
	for n := 0; ; n++ {
		var g GenesisEscrow
		switch err := stream(&g); {
		case errors.ErrEmpty.Is(err):
			return nil
		case err != nil:
			return errors.Wrapf(err, "escrow %d", n)
		}
		if _, _, err := i.ctrl.Create(ctx, db, g.Buyer, g.Seller, g.Amount); err != nil {
			return errors.Wrapf(err, "escrow %d", n)
		}
	}
}
