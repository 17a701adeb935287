package safeholdtest

import (
	"testing"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/crypto"
)

// NewKey returns a new private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a signature condition of a freshly generated key.
func NewCondition() safehold.Condition {
	return NewKey().PublicKey().Condition()
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// safehold.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) safehold.Address {
	t.Helper()

	addr, err := safehold.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
