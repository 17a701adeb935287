package x

import (
	"github.com/safehold/safehold"
)

// Authenticator tells a handler who approved the current transaction.
// Handlers take it as a constructor argument, so the escrow Account can
// authenticate callers without signatures.
type Authenticator interface {
	// GetConditions lists the satisfied conditions, main signer first.
	GetConditions(safehold.Context) []safehold.Condition
	HasAddress(safehold.Context, safehold.Address) bool
}

// MultiAuth accepts what any of its members accepts.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth(impls)
}

// GetConditions concatenates the conditions in member order.
func (m MultiAuth) GetConditions(ctx safehold.Context) []safehold.Condition {
	var res []safehold.Condition
	for _, a := range m {
		res = append(res, a.GetConditions(ctx)...)
	}
	return res
}

func (m MultiAuth) HasAddress(ctx safehold.Context, addr safehold.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// AddressAuth authenticates a fixed set of addresses whose owners were
// identified outside of a transaction. It reveals no conditions.
type AddressAuth []safehold.Address

var _ Authenticator = AddressAuth(nil)

func (AddressAuth) GetConditions(safehold.Context) []safehold.Condition {
	return nil
}

// HasAddress never matches an empty address.
func (a AddressAuth) HasAddress(_ safehold.Context, addr safehold.Address) bool {
	if len(addr) == 0 {
		return false
	}
	for _, known := range a {
		if addr.Equals(known) {
			return true
		}
	}
	return false
}

// MainSigner is the first condition, or nil without any.
func MainSigner(ctx safehold.Context, auth Authenticator) safehold.Condition {
	conds := auth.GetConditions(ctx)
	if len(conds) == 0 {
		return nil
	}
	return conds[0]
}
