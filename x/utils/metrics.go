package utils

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// Metrics is a decorator that counts processed transactions and measures
// their duration, labeled by message path and ABCI result code.
type Metrics struct {
	txs     *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

var _ safehold.Decorator = Metrics{}

// NewMetrics creates the collectors and registers them with given
// registerer. Registration fails if called twice for the same registry.
func NewMetrics(reg prometheus.Registerer) (Metrics, error) {
	m := Metrics{
		txs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "safehold",
			Subsystem: "tx",
			Name:      "processed_total",
			Help:      "Total transactions processed segmented by stage, message path and result code.",
		}, []string{"stage", "path", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "safehold",
			Subsystem: "tx",
			Name:      "duration_seconds",
			Help:      "Latency distribution of transaction processing.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage", "path"}),
	}
	for _, c := range []prometheus.Collector{m.txs, m.latency} {
		if err := reg.Register(c); err != nil {
			return Metrics{}, errors.Wrapf(errors.ErrHuman, "register metrics: %s", err)
		}
	}
	return m, nil
}

// Check counts the checked transaction.
func (m Metrics) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Checker) (*safehold.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	m.observe("check", tx, start, err)
	return res, err
}

// Deliver counts the delivered transaction.
func (m Metrics) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Deliverer) (*safehold.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	m.observe("deliver", tx, start, err)
	return res, err
}

func (m Metrics) observe(stage string, tx safehold.Tx, start time.Time, err error) {
	path := safehold.GetPath(tx)
	code, _ := errors.ABCIInfo(err, false)
	m.txs.WithLabelValues(stage, path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.latency.WithLabelValues(stage, path).Observe(time.Since(start).Seconds())
}
