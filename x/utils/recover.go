package utils

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// Recovery converts a panic below it into an ErrPanic result, so a broken
// handler fails only its own transaction. The panic value is logged with
// the message path.
type Recovery struct{}

var _ safehold.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Checker) (_ *safehold.CheckResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Deliverer) (_ *safehold.DeliverResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Deliver(ctx, db, tx)
}

// recoverTx must be deferred directly for recover to see the panic.
func recoverTx(ctx safehold.Context, tx safehold.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", r)
	safehold.GetLogger(ctx).Error("transaction panicked", "path", safehold.GetPath(tx), "panic", r)
}
