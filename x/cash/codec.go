package cash

import (
	amino "github.com/tendermint/go-amino"
)

// cdc encodes the models stored by this package.
var cdc = amino.NewCodec()

// RegisterAmino registers all messages of this package with the given
// codec, so that they can be carried by a transaction.
func RegisterAmino(c *amino.Codec) {
	c.RegisterConcrete(&SendMsg{}, "cash/send", nil)
}
