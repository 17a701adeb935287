package x_test

import (
	"context"
	"testing"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/safeholdtest"
	"github.com/safehold/safehold/safeholdtest/assert"
	"github.com/safehold/safehold/x"
)

func TestAuth(t *testing.T) {
	a := safeholdtest.NewCondition()
	b := safeholdtest.NewCondition()
	c := safeholdtest.NewCondition()

	cases := map[string]struct {
		auth       x.Authenticator
		mainSigner safehold.Condition
		want       []safehold.Condition
		notIn      safehold.Condition
	}{
		"nobody": {
			auth:  &safeholdtest.Auth{},
			notIn: b,
		},
		"single signer": {
			auth:       &safeholdtest.Auth{Signer: a},
			mainSigner: a,
			want:       []safehold.Condition{a},
			notIn:      b,
		},
		"chained keeps member order": {
			auth: x.ChainAuth(
				&safeholdtest.Auth{Signer: b},
				&safeholdtest.Auth{Signer: a}),
			mainSigner: b,
			want:       []safehold.Condition{b, a},
			notIn:      c,
		},
		"chained with an empty member": {
			auth: x.ChainAuth(
				&safeholdtest.Auth{},
				&safeholdtest.Auth{Signers: []safehold.Condition{c, a}}),
			mainSigner: c,
			want:       []safehold.Condition{c, a},
			notIn:      b,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			assert.Equal(t, tc.mainSigner, x.MainSigner(ctx, tc.auth))
			assert.Equal(t, tc.want, tc.auth.GetConditions(ctx))
			for _, cond := range tc.want {
				if !tc.auth.HasAddress(ctx, cond.Address()) {
					t.Fatalf("address of %s not authenticated", cond)
				}
			}
			if tc.auth.HasAddress(ctx, tc.notIn.Address()) {
				t.Fatal("unexpected address authenticated")
			}
		})
	}
}

func TestAddressAuth(t *testing.T) {
	buyer := safeholdtest.NewCondition().Address()
	seller := safeholdtest.NewCondition().Address()
	ctx := context.Background()

	auth := x.AddressAuth{buyer}
	if !auth.HasAddress(ctx, buyer) {
		t.Fatal("buyer not authenticated")
	}
	if auth.HasAddress(ctx, seller) {
		t.Fatal("seller authenticated")
	}
	if auth.HasAddress(ctx, nil) {
		t.Fatal("empty address authenticated")
	}
	if x.MainSigner(ctx, auth) != nil {
		t.Fatal("address authentication must not reveal conditions")
	}

	chained := x.ChainAuth(auth, x.AddressAuth{seller})
	if !chained.HasAddress(ctx, seller) {
		t.Fatal("chained authenticator lost an address")
	}
}
