package safeholdtest

import "github.com/safehold/safehold"

// Handler is a mock implementation of the safehold.Handler interface.
//
// Each method call is counted. Set the error attributes to force a failure.
// If a write key is configured, the value is written to the store before
// returning, regardless of the result.
type Handler struct {
	checkCall   int
	CheckResult safehold.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult safehold.DeliverResult
	DeliverErr    error

	// WriteKey and WriteValue if set are written to the store on every
	// call.
	WriteKey   []byte
	WriteValue []byte
}

var _ safehold.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx) (*safehold.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db safehold.KVStore) error {
	if h.WriteKey == nil {
		return nil
	}
	return db.Set(h.WriteKey, h.WriteValue)
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// PanicHandler panics with the given value on every call.
type PanicHandler struct {
	Value interface{}
}

var _ safehold.Handler = PanicHandler{}

func (h PanicHandler) Check(safehold.Context, safehold.KVStore, safehold.Tx) (*safehold.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(safehold.Context, safehold.KVStore, safehold.Tx) (*safehold.DeliverResult, error) {
	panic(h.Value)
}
