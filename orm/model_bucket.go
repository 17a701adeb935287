package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
	amino "github.com/tendermint/go-amino"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	Validate() error
}

// ModelBucket stores models of a single type under a common key prefix.
type ModelBucket interface {
	safehold.QueryHandler

	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db safehold.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists and
	// ErrNotFound otherwise.
	Has(db safehold.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. If key is nil, the next
	// value of the bucket sequence is used. The key used is returned.
	Put(db safehold.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db safehold.KVStore, key []byte) error

	// Register exposes this bucket content under /<name> in the router.
	Register(name string, r safehold.QueryRouter)
}

// ModelBucketOption configures a ModelBucket.
type ModelBucketOption func(*modelBucket)

// WithIDSequence configures the bucket to use the given sequence instance for
// generating ID.
func WithIDSequence(s Sequence) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.idSeq = s
	}
}

// NewModelBucket returns a ModelBucket instance storing models of the same
// type as proto. All models are serialized using the given codec.
func NewModelBucket(name string, proto Model, cdc *amino.Codec, opts ...ModelBucketOption) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	typ := reflect.TypeOf(proto)
	if typ == nil || typ.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("model prototype must be a pointer, got %T", proto))
	}

	mb := &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		typ:    typ,
		cdc:    cdc,
		idSeq:  NewSequence(name, SeqID),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

const (
	// SeqID is a constant to use to get a default ID sequence
	SeqID = "id"
)

type modelBucket struct {
	name   string
	prefix []byte
	typ    reflect.Type
	cdc    *amino.Codec
	idSeq  Sequence
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consequetive calls to overwrite the same byte array.
func (mb *modelBucket) dbKey(key []byte) []byte {
	l := len(mb.prefix)
	out := make([]byte, l+len(key))
	copy(out, mb.prefix)
	copy(out[l:], key)
	return out
}

func (mb *modelBucket) One(db safehold.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != mb.typ {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot load into %T", mb.name, dest)
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot get from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := mb.cdc.UnmarshalBinaryBare(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return nil
}

func (mb *modelBucket) Has(db safehold.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrNotFound, "nil key")
	}
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot check the database")
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db safehold.KVStore, key []byte, m Model) ([]byte, error) {
	if reflect.TypeOf(m) != mb.typ {
		return nil, errors.Wrapf(errors.ErrType, "%s bucket cannot store %T", mb.name, m)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	if len(key) == 0 {
		var err error
		key, err = mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "ID sequence")
		}
	}

	raw, err := mb.cdc.MarshalBinaryBare(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return nil, errors.Wrap(err, "cannot store in the database")
	}
	return key, nil
}

func (mb *modelBucket) Delete(db safehold.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

// Query handles queries from the QueryRouter. Only a key lookup is
// supported. Returned values are the amino encoded models.
func (mb *modelBucket) Query(db safehold.ReadOnlyKVStore, mod string, data []byte) ([]safehold.Model, error) {
	switch mod {
	case safehold.KeyQueryMod:
		key := mb.dbKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []safehold.Model{safehold.Pair(key, value)}, nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// Register registers this bucket for queries. You can define a name here
// which is different than the bucket name used to prefix the data.
func (mb *modelBucket) Register(name string, r safehold.QueryRouter) {
	if name == "" {
		name = mb.name
	}
	r.Register("/"+name, mb)
}
