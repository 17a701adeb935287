package safehold

import (
	"bytes"
	"encoding/json"

	"github.com/safehold/safehold/errors"
)

// Handler is a core engine that can process a few specific messages
// This could represent "coin transfer", or "deposit into an escrow"
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, or savepoints, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "%s: %s", key, err)
	}
	return nil
}

// Stream expects an array of json elements under the given key and returns
// a function that decodes one element into obj on each call. Once all
// elements were consumed it returns ErrEmpty, every call after that (or after
// a decoding failure) returns ErrState.
func (o Options) Stream(key string) (func(obj interface{}) error, error) {
	raw, ok := o[key]
	if !ok {
		return nil, errors.Wrapf(errors.ErrEmpty, "no %q key", key)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var started, closed bool
	return func(obj interface{}) error {
		if closed {
			return errors.Wrap(errors.ErrState, "stream closed")
		}
		if !started {
			started = true
			tok, err := dec.Token()
			if err != nil {
				closed = true
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			if d, ok := tok.(json.Delim); !ok || d != '[' {
				closed = true
				return errors.Wrapf(errors.ErrInput, "%q is not an array", key)
			}
		}
		if !dec.More() {
			closed = true
			return errors.ErrEmpty
		}
		if err := dec.Decode(obj); err != nil {
			closed = true
			return errors.Wrap(errors.ErrInput, err.Error())
		}
		return nil
	}, nil
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// GenesisInitializers combines multiple Initializers into one, executing
// them in order.
type GenesisInitializers []Initializer

// FromGenesis runs every initializer and stops on the first failure.
func (g GenesisInitializers) FromGenesis(opts Options, kv KVStore) error {
	for _, i := range g {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
