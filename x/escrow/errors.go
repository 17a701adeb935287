package escrow

import "github.com/safehold/safehold/errors"

var (
	ErrInvalidSeller      = errors.Register(1030, "invalid seller")
	ErrInvalidAmount      = errors.Register(1031, "invalid amount")
	ErrUnauthorizedBuyer  = errors.Register(1032, "caller is not the buyer")
	ErrUnauthorizedSeller = errors.Register(1033, "caller is not the seller")
	ErrInvalidState       = errors.Register(1034, "invalid escrow state")
	ErrIncorrectAmount    = errors.Register(1035, "incorrect amount")
	ErrDeadlineNotReached = errors.Register(1036, "deadline not reached")
	ErrTransferFailed     = errors.Register(1037, "transfer failed")
	ErrCustodyDestination = errors.Register(1038, "escrow custody cannot receive transfers")
)
