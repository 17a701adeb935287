package sigs

import amino "github.com/tendermint/go-amino"

var cdc = amino.NewCodec()

// RegisterAmino registers all messages of this package with the given
// codec.
func RegisterAmino(c *amino.Codec) {
	c.RegisterConcrete(&BumpSequenceMsg{}, pathBumpSequenceMsg, nil)
}
