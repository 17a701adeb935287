package utils

import (
	"context"
	"testing"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/safeholdtest"
	"github.com/safehold/safehold/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

func TestActionTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &safeholdtest.Tx{Msg: &safeholdtest.Msg{RoutePath: "escrow/create"}}

	h := &safeholdtest.Handler{
		DeliverResult: safehold.DeliverResult{
			Tags: []common.KVPair{safehold.Tag([]byte("escrow.id"), []byte("1"))},
		},
	}
	res, err := NewActionTagger().Deliver(ctx, db, tx, h)
	require.NoError(t, err)
	require.Len(t, res.Tags, 2)
	assert.Equal(t, []byte(ActionKey), res.Tags[1].Key)
	assert.Equal(t, []byte("escrow/create"), res.Tags[1].Value)

	// no tag on failure
	h = &safeholdtest.Handler{DeliverErr: errors.ErrState}
	_, err = NewActionTagger().Deliver(ctx, db, tx, h)
	assert.True(t, errors.ErrState.Is(err))

	// check is untouched
	_, err = NewActionTagger().Check(ctx, db, tx, &safeholdtest.Handler{})
	assert.NoError(t, err)

	_, err = NewActionTagger().Deliver(ctx, db, &safeholdtest.Tx{}, &safeholdtest.Handler{})
	assert.True(t, errors.ErrInput.Is(err))
}
