package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/safeholdtest"
	"github.com/safehold/safehold/store"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewTMLogger(log.NewSyncWriter(&buf))
	ctx := safehold.WithLogger(context.Background(), logger)
	db := store.MemStore()
	tx := &safeholdtest.Tx{Msg: &safeholdtest.Msg{RoutePath: "escrow/deposit"}}

	h := &safeholdtest.Handler{DeliverResult: safehold.DeliverResult{Log: "deposited"}}
	if _, err := NewLogging().Deliver(ctx, db, tx, h); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	out := buf.String()
	if !strings.Contains(out, "deposited") || !strings.Contains(out, "path=escrow/deposit") {
		t.Fatalf("unexpected log output: %q", out)
	}

	buf.Reset()
	h = &safeholdtest.Handler{DeliverErr: errors.ErrState}
	if _, err := NewLogging().Deliver(ctx, db, tx, h); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := buf.String(); !strings.HasPrefix(out, "E[") || !strings.Contains(out, "err=") {
		t.Fatalf("unexpected log output: %q", out)
	}
}
