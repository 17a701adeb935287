/*
Package crypto provides the ed25519 keys used to sign transactions and the
conditions they authorize.
*/
package crypto

import (
	"github.com/safehold/safehold"
)

// ExtensionName is used for the Conditions we get from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() safehold.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// PrivateKey is an ed25519 private key, in the 64 byte form.
type PrivateKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `json:"ed25519"`
}

// Address returns the address of the condition this key authorizes.
//    p.Condition().Address()
func (p *PublicKey) Address() safehold.Address {
	c := p.Condition()
	if c == nil {
		return nil
	}
	return c.Address()
}
