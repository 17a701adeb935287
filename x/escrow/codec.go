package escrow

import amino "github.com/tendermint/go-amino"

var cdc = amino.NewCodec()

// RegisterAmino registers all messages of this package with the given
// codec.
func RegisterAmino(c *amino.Codec) {
	c.RegisterConcrete(&CreateMsg{}, pathCreateMsg, nil)
	c.RegisterConcrete(&DepositMsg{}, pathDepositMsg, nil)
	c.RegisterConcrete(&ConfirmDeliveryMsg{}, pathConfirmDeliveryMsg, nil)
	c.RegisterConcrete(&AcceptDeliveryMsg{}, pathAcceptDeliveryMsg, nil)
	c.RegisterConcrete(&RefundMsg{}, pathRefundMsg, nil)
}
