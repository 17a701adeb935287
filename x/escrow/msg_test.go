package escrow

import (
	"testing"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/safeholdtest"
)

func TestMsgValidate(t *testing.T) {
	meta := &safehold.Metadata{Schema: 1}
	seller := safeholdtest.NewCondition().Address()
	id := []byte{0, 0, 0, 0, 0, 0, 0, 3}

	cases := map[string]struct {
		msg     safehold.Msg
		wantErr *errors.Error
	}{
		"valid create": {
			msg: &CreateMsg{Metadata: meta, Seller: seller, Amount: coin.NewAmount(1)},
		},
		"create without metadata": {
			msg:     &CreateMsg{Seller: seller, Amount: coin.NewAmount(1)},
			wantErr: errors.ErrModel,
		},
		"create without seller": {
			msg:     &CreateMsg{Metadata: meta, Amount: coin.NewAmount(1)},
			wantErr: ErrInvalidSeller,
		},
		"create with a short seller": {
			msg:     &CreateMsg{Metadata: meta, Seller: seller[:10], Amount: coin.NewAmount(1)},
			wantErr: ErrInvalidSeller,
		},
		"create of nothing": {
			msg:     &CreateMsg{Metadata: meta, Seller: seller},
			wantErr: ErrInvalidAmount,
		},
		"valid deposit": {
			msg: &DepositMsg{Metadata: meta, EscrowID: id, Amount: coin.NewAmount(1)},
		},
		"deposit without id": {
			msg:     &DepositMsg{Metadata: meta, Amount: coin.NewAmount(1)},
			wantErr: errors.ErrEmpty,
		},
		"deposit with a malformed id": {
			msg:     &DepositMsg{Metadata: meta, EscrowID: []byte{1, 2}},
			wantErr: errors.ErrInput,
		},
		"valid confirm": {
			msg: &ConfirmDeliveryMsg{Metadata: meta, EscrowID: id},
		},
		"confirm without metadata": {
			msg:     &ConfirmDeliveryMsg{EscrowID: id},
			wantErr: errors.ErrModel,
		},
		"valid accept": {
			msg: &AcceptDeliveryMsg{Metadata: meta, EscrowID: id},
		},
		"accept without id": {
			msg:     &AcceptDeliveryMsg{Metadata: meta},
			wantErr: errors.ErrEmpty,
		},
		"valid refund": {
			msg: &RefundMsg{Metadata: meta, EscrowID: id},
		},
		"refund with a malformed id": {
			msg:     &RefundMsg{Metadata: meta, EscrowID: []byte("escrow")},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
		})
	}
}
