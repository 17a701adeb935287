// Package bech32 gives addresses a checksummed text form, such as the
// shold1... strings accepted on the command line.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/safehold/safehold/errors"
)

// Encode packs payload into 5 bit groups and appends the checksum.
func Encode(hrp string, payload []byte) (string, error) {
	groups, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
	}
	s, err := bech32.Encode(hrp, groups)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 encode: %s", err)
	}
	return s, nil
}

// Decode verifies the checksum of s and returns its human readable part
// and payload.
func Decode(s string) (string, []byte, error) {
	hrp, groups, err := bech32.Decode(s)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 decode: %s", err)
	}
	payload, err := bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
	}
	return hrp, payload, nil
}
