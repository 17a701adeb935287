package sigs

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/crypto"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// maxSequenceValue is limited by the client. The greatest supported
// nonce value at client side is
//   Number.MAX_SAFE_INTEGER = 9007199254740991 = 2^53 - 1
const maxSequenceValue = (1 << 53) - 1

// UserData is the state of a single signer.
type UserData struct {
	Metadata *safehold.Metadata `json:"metadata"`
	Pubkey   *crypto.PublicKey  `json:"pubkey"`
	Sequence int64              `json:"sequence"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	if err := u.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if seq := u.Sequence; seq < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	} else if seq > 0 && u.Pubkey == nil {
		return errors.Wrap(ErrInvalidSequence, "needs pubkey")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores user data by address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &UserData{}, cdc),
	}
}

// GetOrCreate loads the user owning given public key. A new user with
// sequence zero is returned if none exists yet.
func (b Bucket) GetOrCreate(db safehold.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var u UserData
	switch err := b.One(db, pubkey.Address(), &u); {
	case err == nil:
		return &u, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{
			Metadata: &safehold.Metadata{Schema: 1},
			Pubkey:   pubkey,
		}, nil
	default:
		return nil, err
	}
}

// Save stores the user under the address of its public key.
func (b Bucket) Save(db safehold.KVStore, u *UserData) error {
	if u.Pubkey == nil {
		return errors.Wrap(errors.ErrModel, "missing pubkey")
	}
	_, err := b.Put(db, u.Pubkey.Address(), u)
	return err
}

// RegisterQuery will register this bucket as "/auth"
func RegisterQuery(qr safehold.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// DecodeUserData parses a value as returned by the "/auth" query.
func DecodeUserData(raw []byte) (*UserData, error) {
	var u UserData
	if err := cdc.UnmarshalBinaryBare(raw, &u); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &u, nil
}
