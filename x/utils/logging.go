package utils

import (
	"time"

	"github.com/safehold/safehold"
)

// Logging writes one line per transaction with its path and duration.
// Failures are logged as errors, deliveries as info and checks as debug,
// so a node at info level shows only what reached a block.
type Logging struct{}

var _ safehold.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Checker) (*safehold.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logTx(ctx, tx, start, msg, err, true)
	return res, err
}

func (Logging) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Deliverer) (*safehold.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logTx(ctx, tx, start, msg, err, false)
	return res, err
}

// logTx logs even an empty msg, the attached fields are what matters.
func logTx(ctx safehold.Context, tx safehold.Tx, start time.Time, msg string, err error, check bool) {
	logger := safehold.GetLogger(ctx).With(
		"path", safehold.GetPath(tx),
		"duration", time.Since(start)/time.Microsecond,
	)
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case check:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
