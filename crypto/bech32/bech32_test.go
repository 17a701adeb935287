package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/safehold/safehold/errors"
)

func TestDecodeKnownVector(t *testing.T) {
	// bech32 -e -h tsafe 746573742d7061796c6f6164
	const enc = `tsafe1w3jhxapdwpshjmr0v9jq9rypy5`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}

	hrp, payload, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if hrp != "tsafe" {
		t.Fatalf("unexpected human readable part %q", hrp)
	}
	if !bytes.Equal(want, payload) {
		t.Logf("want %d", want)
		t.Logf("got  %d", payload)
		t.Fatal("invalid decode")
	}

	raw, err := Encode(hrp, payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if raw != enc {
		t.Fatalf("invalid encoding: %q", raw)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	addr := bytes.Repeat([]byte{0xA7}, 20)

	raw, err := Encode("shold", addr)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	hrp, payload, err := Decode(raw)
	if err != nil {
		t.Fatalf("cannot decode %q: %s", raw, err)
	}
	if hrp != "shold" {
		t.Fatalf("unexpected human readable part %q", hrp)
	}
	if !bytes.Equal(addr, payload) {
		t.Fatalf("want %X, got %X", addr, payload)
	}
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	_, _, err := Decode(`tsafe1w3jhxapdwpshjmr0v9jq9rypy6`)
	if !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
}
