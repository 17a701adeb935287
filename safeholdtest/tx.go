package safeholdtest

import "github.com/safehold/safehold"

// Tx represents a transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg safehold.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ safehold.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (safehold.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a message with a configurable route.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ safehold.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
