package cash

import (
	"encoding/json"
	"testing"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"cash": [
			{"address": "hex:0123456789012345678901234567890123456789", "balance": "1000000000000000000"},
			{"address": "hex:9876543210987654321098765432109876543210", "balance": 7}
		]
	}`
	var opts safehold.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	kv := store.MemStore()
	ctrl := NewController(NewWalletBucket())
	require.NoError(t, NewInitializer(ctrl).FromGenesis(opts, kv))

	addr, err := safehold.ParseAddress("hex:0123456789012345678901234567890123456789")
	require.NoError(t, err)
	got, err := ctrl.Balance(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", got.String())

	addr, err = safehold.ParseAddress("hex:9876543210987654321098765432109876543210")
	require.NoError(t, err)
	got, err = ctrl.Balance(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, "7", got.String())
}

func TestGenesisMissingSection(t *testing.T) {
	kv := store.MemStore()
	ctrl := NewController(NewWalletBucket())
	assert.NoError(t, NewInitializer(ctrl).FromGenesis(safehold.Options{}, kv))
}

func TestGenesisInvalidAddress(t *testing.T) {
	const genesis = `{"cash": [{"address": "hex:0123", "balance": "1"}]}`
	var opts safehold.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	kv := store.MemStore()
	err := NewInitializer(NewController(NewWalletBucket())).FromGenesis(opts, kv)
	assert.True(t, errors.ErrInput.Is(err))
}
