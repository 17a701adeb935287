package safeholdtest

import "github.com/safehold/safehold"

// Decorator passes every call on to the next handler unless an error is
// configured for that phase. It records the message path of each call it
// sees, failed or not.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	checks   []string
	delivers []string
}

var _ safehold.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Checker) (*safehold.CheckResult, error) {
	d.checks = append(d.checks, safehold.GetPath(tx))
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Deliverer) (*safehold.DeliverResult, error) {
	d.delivers = append(d.delivers, safehold.GetPath(tx))
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// DeliveredPaths lists the message paths of all Deliver calls in order.
func (d *Decorator) DeliveredPaths() []string {
	return d.delivers
}

func (d *Decorator) DeliverCallCount() int {
	return len(d.delivers)
}

func (d *Decorator) CallCount() int {
	return len(d.checks) + len(d.delivers)
}
