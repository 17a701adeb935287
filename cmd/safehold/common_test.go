package main

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/app"
	"github.com/safehold/safehold/safeholdtest/assert"
	"github.com/safehold/safehold/x/escrow"
)

func fromHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("cannot decode %q: %s", s, err)
	}
	return b
}

func TestSequenceID(t *testing.T) {
	for _, n := range []uint64{0, 1, 123456789, 1 << 63} {
		got, err := fromSequence(sequenceID(n))
		assert.Nil(t, err)
		assert.Equal(t, n, got)
	}
	if _, err := fromSequence([]byte{1, 2}); err == nil {
		t.Fatal("short sequence must be rejected")
	}
}

func TestTxStream(t *testing.T) {
	var buf bytes.Buffer
	for i := uint64(1); i <= 3; i++ {
		tx := &app.Tx{Msg: &escrow.RefundMsg{
			Metadata: &safehold.Metadata{Schema: 1},
			EscrowID: sequenceID(i),
		}}
		if _, err := writeTx(&buf, tx); err != nil {
			t.Fatalf("cannot write: %s", err)
		}
	}
	for i := uint64(1); i <= 3; i++ {
		tx, _, err := readTx(&buf)
		if err != nil {
			t.Fatalf("cannot read %d: %s", i, err)
		}
		assert.Equal(t, sequenceID(i), tx.Msg.(*escrow.RefundMsg).EscrowID)
	}
	if _, _, err := readTx(&buf); err == nil {
		t.Fatal("want error on empty input")
	}
}
