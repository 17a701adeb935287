package safeholdtest

import (
	"context"
	"reflect"
	"testing"

	"github.com/safehold/safehold"
)

func TestAuthNoSigners(t *testing.T) {
	var a Auth

	if got := a.GetConditions(nil); got != nil {
		t.Fatalf("unexpected conditions: %+v", got)
	}

	if a.HasAddress(nil, NewCondition().Address()) {
		t.Fatal("random condition must not be present")
	}
}

func TestAuthUsingSignerAndSigners(t *testing.T) {
	conds := []safehold.Condition{
		NewCondition(),
		NewCondition(),
		NewCondition(),
	}

	a := Auth{
		Signer:  conds[0],
		Signers: conds[1:],
	}

	if got := a.GetConditions(nil); !reflect.DeepEqual(got, conds) {
		for i, c := range got {
			t.Logf("condition %d: %s", i, c)
		}
		t.Fatalf("unexpected conditions")
	}

	for i, c := range conds {
		if !a.HasAddress(nil, c.Address()) {
			t.Errorf("condition %d (%s) address should be present", i, c)
		}
	}

	if a.HasAddress(nil, NewCondition().Address()) {
		t.Fatal("random condition must not be present")
	}
}

func TestCtxAuth(t *testing.T) {
	a := &CtxAuth{Key: "auth"}
	cond := NewCondition()
	ctx := a.SetConditions(context.Background(), cond)

	if got := a.GetConditions(ctx); len(got) != 1 || !got[0].Equals(cond) {
		t.Fatalf("unexpected conditions: %+v", got)
	}
	if !a.HasAddress(ctx, cond.Address()) {
		t.Fatal("condition should be present")
	}
	if a.HasAddress(context.Background(), cond.Address()) {
		t.Fatal("empty context must not authenticate")
	}
	other := &CtxAuth{Key: "other"}
	if other.HasAddress(ctx, cond.Address()) {
		t.Fatal("conditions leaked across keys")
	}
}
