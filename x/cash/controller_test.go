package cash

import (
	"testing"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/safeholdtest"
	"github.com/safehold/safehold/safeholdtest/assert"
	"github.com/safehold/safehold/store"
)

const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

func TestMoveCoins(t *testing.T) {
	alice := safeholdtest.NewCondition().Address()
	bob := safeholdtest.NewCondition().Address()

	cases := map[string]struct {
		aliceHas coin.Amount
		bobHas   coin.Amount
		src      safehold.Address
		dest     safehold.Address
		amount   coin.Amount
		wantErr  *errors.Error
		wantA    coin.Amount
		wantB    coin.Amount
	}{
		"full balance": {
			aliceHas: coin.NewAmount(100),
			src:      alice,
			dest:     bob,
			amount:   coin.NewAmount(100),
			wantA:    coin.NewAmount(0),
			wantB:    coin.NewAmount(100),
		},
		"partial balance": {
			aliceHas: coin.NewAmount(100),
			bobHas:   coin.NewAmount(5),
			src:      alice,
			dest:     bob,
			amount:   coin.NewAmount(30),
			wantA:    coin.NewAmount(70),
			wantB:    coin.NewAmount(35),
		},
		"zero amount": {
			aliceHas: coin.NewAmount(100),
			src:      alice,
			dest:     bob,
			amount:   coin.NewAmount(0),
			wantErr:  errors.ErrAmount,
			wantA:    coin.NewAmount(100),
		},
		"empty source": {
			src:     alice,
			dest:    bob,
			amount:  coin.NewAmount(1),
			wantErr: errors.ErrEmpty,
		},
		"insufficient funds": {
			aliceHas: coin.NewAmount(10),
			src:      alice,
			dest:     bob,
			amount:   coin.NewAmount(11),
			wantErr:  errors.ErrInsufficientAmount,
			wantA:    coin.NewAmount(10),
		},
		"destination overflow": {
			aliceHas: coin.NewAmount(10),
			bobHas:   coin.MustParseAmount(maxUint256),
			src:      alice,
			dest:     bob,
			amount:   coin.NewAmount(1),
			wantErr:  errors.ErrOverflow,
			wantA:    coin.NewAmount(10),
			wantB:    coin.MustParseAmount(maxUint256),
		},
		"send to self": {
			aliceHas: coin.NewAmount(10),
			src:      alice,
			dest:     alice,
			amount:   coin.NewAmount(4),
			wantA:    coin.NewAmount(10),
		},
		"invalid destination": {
			aliceHas: coin.NewAmount(10),
			src:      alice,
			dest:     safehold.Address{0x01},
			amount:   coin.NewAmount(4),
			wantErr:  errors.ErrInput,
			wantA:    coin.NewAmount(10),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewWalletBucket())
			if tc.aliceHas.IsPositive() {
				assert.Nil(t, ctrl.IssueCoins(db, alice, tc.aliceHas))
			}
			if tc.bobHas.IsPositive() {
				assert.Nil(t, ctrl.IssueCoins(db, bob, tc.bobHas))
			}

			err := ctrl.MoveCoins(db, tc.src, tc.dest, tc.amount)
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}

			a, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			if !a.Equals(tc.wantA) {
				t.Errorf("alice: want %s, got %s", tc.wantA, a)
			}
			b, err := ctrl.Balance(db, bob)
			assert.Nil(t, err)
			if !b.Equals(tc.wantB) {
				t.Errorf("bob: want %s, got %s", tc.wantB, b)
			}
		})
	}
}

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewWalletBucket())
	addr := safeholdtest.NewCondition().Address()

	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewAmount(7)))
	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.MustParseAmount("1000000000000000000")))

	got, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, "1000000000000000007", got.String())

	err = ctrl.IssueCoins(db, addr, coin.MustParseAmount(maxUint256))
	assert.IsErr(t, errors.ErrOverflow, err)

	err = ctrl.IssueCoins(db, nil, coin.NewAmount(1))
	assert.IsErr(t, errors.ErrInput, err)
}
