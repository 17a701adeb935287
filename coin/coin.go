/*
Package coin defines Amount, the unsigned 256-bit quantity of the single
native asset moved between wallets and escrow custody.
*/
package coin

import (
	"encoding/json"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/safehold/safehold/errors"
)

// Amount is a non negative quantity of the native asset, in its smallest
// unit. The zero value represents nothing.
type Amount struct {
	v uint256.Int
}

// NewAmount returns an amount of the given value.
func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// ParseAmount decodes a base 10 representation of an amount.
func ParseAmount(s string) (Amount, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "cannot parse %q: %s", s, err)
	}
	return Amount{v: *v}, nil
}

// MustParseAmount is like ParseAmount but panics on malformed input. Use
// it only with constant values.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromBig converts a big integer into an amount. Negative values and values
// that do not fit in 256 bits are rejected.
func FromBig(b *big.Int) (Amount, error) {
	if b == nil || b.Sign() < 0 {
		return Amount{}, errors.Wrap(errors.ErrAmount, "negative value")
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return Amount{}, errors.ErrOverflow
	}
	return Amount{v: *v}, nil
}

// Big returns the value as a big integer.
func (a Amount) Big() *big.Int {
	return a.v.ToBig()
}

// IsZero returns true if this amount represents no value.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// IsPositive returns true if the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return !a.v.IsZero()
}

// Cmp compares two amounts and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Equals returns true if both amounts represent the same value.
func (a Amount) Equals(b Amount) bool {
	return a.v.Eq(&b.v)
}

// Add returns the sum of both amounts or ErrOverflow if the result does not
// fit in 256 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	var res Amount
	if _, overflow := res.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return res, nil
}

// Sub returns a - b. Subtracting more than available returns
// ErrInsufficientAmount.
func (a Amount) Sub(b Amount) (Amount, error) {
	var res Amount
	if _, underflow := res.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, errors.Wrapf(errors.ErrInsufficientAmount, "%s - %s", a, b)
	}
	return res, nil
}

// String returns the base 10 representation.
func (a Amount) String() string {
	return a.v.Dec()
}

// MarshalJSON encodes the amount as a decimal string, so that values
// bigger than 2^53 survive JavaScript clients.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a decimal string and a JSON number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrAmount, "amount must be a string or a number")
		}
		s = n.String()
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalAmino represents the amount as a decimal string in the binary
// encoding.
func (a Amount) MarshalAmino() (string, error) {
	return a.String(), nil
}

// UnmarshalAmino is the inverse of MarshalAmino.
func (a *Amount) UnmarshalAmino(s string) error {
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
