package orm

import (
	"encoding/binary"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// Sequence is a persistent counter handing out ids. Values are encoded
// big endian, so byte order and numeric order agree and ids can be used
// directly as ordered keys, as escrow ids are.
type Sequence struct {
	key []byte
}

// NewSequence stores the counter under _s.<bucket>:<name>.
func NewSequence(bucket, name string) Sequence {
	return Sequence{key: []byte("_s." + bucket + ":" + name)}
}

// NextVal advances the counter and returns the new value encoded. The
// first call returns 1.
func (s Sequence) NextVal(db safehold.KVStore) ([]byte, error) {
	n, err := s.Latest(db)
	if err != nil {
		return nil, err
	}
	raw := EncodeSequence(n + 1)
	if err := db.Set(s.key, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Latest is the last value handed out, zero before the first.
func (s Sequence) Latest(db safehold.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return 0, err
	}
	return DecodeSequence(raw)
}

// DecodeSequence reads a value written by EncodeSequence. Nil is zero.
func DecodeSequence(raw []byte) (int64, error) {
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrDatabase, "invalid sequence length %d", len(raw))
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

func EncodeSequence(n int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(n))
	return raw
}
