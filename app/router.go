package app

import (
	"fmt"
	"regexp"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// isPath is the expected format for message paths, for example
// escrow/deposit.
var isPath = regexp.MustCompile(`^[a-z0-9_]+(/[a-z0-9_]+)*$`).MatchString

// Router dispatches a transaction to the handler registered for the path
// of its message.
type Router struct {
	routes map[string]safehold.Handler
}

var _ safehold.Registry = (*Router)(nil)
var _ safehold.Handler = (*Router)(nil)

// NewRouter returns a router without routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]safehold.Handler, 10),
	}
}

// Handle registers the handler for the path. It panics on a malformed
// path or when the path is already taken.
func (r *Router) Handle(path string, h safehold.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the handler for the message of the transaction.
func (r *Router) handler(tx safehold.Tx) (safehold.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrInput, "no message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", msg.Path())
	}
	return h, nil
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx safehold.Context, store safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx safehold.Context, store safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, tx)
}
