package utils

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// Savepoint runs the rest of the stack in a cache wrap and keeps its
// writes only on success. It is off for both phases until enabled with
// OnCheck or OnDeliver. Stores that cannot be wrapped pass through.
type Savepoint struct {
	check   bool
	deliver bool
}

var _ safehold.Decorator = Savepoint{}

func NewSavepoint() Savepoint {
	return Savepoint{}
}

func (s Savepoint) OnCheck() Savepoint {
	s.check = true
	return s
}

func (s Savepoint) OnDeliver() Savepoint {
	s.deliver = true
	return s
}

func (s Savepoint) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Checker) (*safehold.CheckResult, error) {
	if !s.check {
		return next.Check(ctx, db, tx)
	}
	var res *safehold.CheckResult
	err := isolate(db, func(db safehold.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Deliverer) (*safehold.DeliverResult, error) {
	if !s.deliver {
		return next.Deliver(ctx, db, tx)
	}
	var res *safehold.DeliverResult
	err := isolate(db, func(db safehold.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func isolate(db safehold.KVStore, fn func(safehold.KVStore) error) error {
	c, ok := db.(safehold.CacheableKVStore)
	if !ok {
		return fn(db)
	}
	cache := c.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write savepoint")
	}
	return nil
}
