/*
Package escrow implements a two-party delivery escrow.

A buyer creates an escrow naming a seller and an amount, then deposits
exactly that amount into custody. The seller confirms delivery and the
buyer accepts it, which releases the funds to the seller. If the handshake
does not complete within RefundTimeout of the deposit, the buyer can take
the funds back.

	AwaitingPayment --deposit--> AwaitingDelivery --confirm--> AwaitingAcceptance --accept--> Completed
	                                    |                              |
	                                    +-----------refund-------------+--> Refunded

Custody is the cash wallet of the escrow address, derived from the escrow
id. Funds enter it once on deposit and leave it once, in full, to exactly
one of the parties.

The same state machine is reachable in two ways: through signed
transactions routed to the handlers of this package, and through the
Account handle which authenticates the caller by address and reads time
from an injected Clock.
*/
package escrow
