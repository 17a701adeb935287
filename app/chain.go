package app

import (
	"reflect"

	"github.com/safehold/safehold"
)

// Decorators is an ordered stack of decorators waiting for the handler
// at its bottom. The first decorator sees a transaction first.
type Decorators struct {
	chain []safehold.Decorator
}

// ChainDecorators starts a stack. Nil entries are skipped, which lets
// optional decorators such as metrics be passed unconditionally.
func ChainDecorators(ds ...safehold.Decorator) Decorators {
	return Decorators{}.Chain(ds...)
}

// Chain returns a new stack with ds appended below the existing ones.
// The receiver is left unchanged.
func (d Decorators) Chain(ds ...safehold.Decorator) Decorators {
	chain := make([]safehold.Decorator, 0, len(d.chain)+len(ds))
	chain = append(chain, d.chain...)
	for _, dec := range ds {
		if !isNil(dec) {
			chain = append(chain, dec)
		}
	}
	return Decorators{chain: chain}
}

// WithHandler closes the stack over h.
func (d Decorators) WithHandler(h safehold.Handler) safehold.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

func isNil(d safehold.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// step binds one decorator to the rest of the stack.
type step struct {
	d    safehold.Decorator
	next safehold.Handler
}

var _ safehold.Handler = step{}

func (s step) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
