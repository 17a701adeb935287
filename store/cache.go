package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/safehold/safehold/errors"
)

// backing is everything a cache wrap needs from the store below it.
type backing interface {
	ReadOnlyKVStore
	SetDeleter
}

// CacheWrap keeps pending writes in a btree on top of another store.
// Reads see the pending writes first. Write flushes them to the parent
// in key order, Discard drops them.
type CacheWrap struct {
	parent  backing
	pending *btree.BTree
}

var _ KVCacheWrap = (*CacheWrap)(nil)

// NewCacheWrap starts an empty cache over parent.
func NewCacheWrap(parent backing) *CacheWrap {
	return &CacheWrap{parent: parent, pending: btree.New(2)}
}

// MemStore returns a store that lives only in memory, for tests and
// simulations. Writing it drops everything.
func MemStore() CacheableKVStore {
	return NewCacheWrap(nullStore{})
}

// CacheWrap nests another cache on top of this one.
func (c *CacheWrap) CacheWrap() KVCacheWrap {
	return NewCacheWrap(c)
}

func (c *CacheWrap) NewBatch() Batch {
	return NewBatch(c)
}

// Write flushes the pending writes and leaves the cache empty.
func (c *CacheWrap) Write() error {
	var err error
	c.pending.Ascend(func(i btree.Item) bool {
		e := i.(entry)
		if e.deleted {
			err = c.parent.Delete(e.key)
		} else {
			err = c.parent.Set(e.key, e.value)
		}
		return err == nil
	})
	c.Discard()
	return err
}

func (c *CacheWrap) Discard() {
	c.pending.Clear(false)
}

func (c *CacheWrap) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	c.pending.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

func (c *CacheWrap) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	c.pending.ReplaceOrInsert(entry{key: key, deleted: true})
	return nil
}

func (c *CacheWrap) Get(key []byte) ([]byte, error) {
	if e, ok := c.lookup(key); ok {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return c.parent.Get(key)
}

func (c *CacheWrap) Has(key []byte) (bool, error) {
	if e, ok := c.lookup(key); ok {
		return !e.deleted, nil
	}
	return c.parent.Has(key)
}

func (c *CacheWrap) lookup(key []byte) (entry, bool) {
	i := c.pending.Get(entry{key: key})
	if i == nil {
		return entry{}, false
	}
	return i.(entry), true
}

// entry is a pending write. A deleted entry hides the parent value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}

// NewBatch queues writes for out and applies them in order on Write.
// It gives no atomicity of its own, so out must be an in-memory
// structure or a cache wrap.
func NewBatch(out SetDeleter) Batch {
	return &batch{out: out}
}

type batch struct {
	out SetDeleter
	ops []entry
}

func (b *batch) Set(key, value []byte) error {
	b.ops = append(b.ops, entry{key: key, value: value})
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.ops = append(b.ops, entry{key: key, deleted: true})
	return nil
}

func (b *batch) Write() error {
	for _, op := range b.ops {
		var err error
		if op.deleted {
			err = b.out.Delete(op.key)
		} else {
			err = b.out.Set(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// nullStore holds nothing and forgets every write.
type nullStore struct{}

func (nullStore) Get([]byte) ([]byte, error) { return nil, nil }
func (nullStore) Has([]byte) (bool, error) { return false, nil }
func (nullStore) Set(_, _ []byte) error { return nil }
func (nullStore) Delete([]byte) error { return nil }
