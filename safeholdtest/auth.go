package safeholdtest

import (
	"context"

	"github.com/safehold/safehold"
)

// Auth authenticates a fixed list of conditions. Signer, when set, comes
// first and is what x.MainSigner returns.
type Auth struct {
	Signer  safehold.Condition
	Signers []safehold.Condition
}

func (a *Auth) GetConditions(safehold.Context) []safehold.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]safehold.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx safehold.Context, addr safehold.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth reads the authenticated conditions from the context, so a test
// can switch the signer per transaction with SetConditions.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx safehold.Context, conds ...safehold.Condition) safehold.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx safehold.Context) []safehold.Condition {
	conds, _ := ctx.Value(ctxAuthKey(a.Key)).([]safehold.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx safehold.Context, addr safehold.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
