package sigs

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// signatureVerifyCost is the gas charged in CheckTx per valid signature.
const signatureVerifyCost = 500

// Decorator verifies the signatures of a transaction and puts the signer
// conditions into the context for the handlers below. Unsigned
// transactions are rejected unless AllowMissingSigs was called.
type Decorator struct {
	allowMissingSigs bool
}

var _ safehold.Decorator = Decorator{}

func NewDecorator() Decorator {
	return Decorator{}
}

func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

func (d Decorator) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Checker) (*safehold.CheckResult, error) {
	ctx, signers, err := d.verify(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.GasAllocated += int64(len(signers) * signatureVerifyCost)
	return res, nil
}

func (d Decorator) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Deliverer) (*safehold.DeliverResult, error) {
	ctx, _, err := d.verify(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d Decorator) verify(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (safehold.Context, []safehold.Condition, error) {
	var signers []safehold.Condition
	if stx, ok := tx.(SignedTx); ok {
		var err error
		signers, err = VerifyTxSignatures(db, stx, safehold.GetChainID(ctx))
		if err != nil {
			return nil, nil, errors.Wrap(err, "cannot verify signatures")
		}
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), signers, nil
}
