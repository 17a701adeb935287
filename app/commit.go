package app

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// stateStore keeps the committed tree together with the two working
// copies tendermint needs: one for the block being delivered and one for
// the mempool checks. Both are rebuilt from the committed state after
// every commit.
type stateStore struct {
	committed safehold.CommitKVStore
	deliver   safehold.KVCacheWrap
	check     safehold.KVCacheWrap
}

func newStateStore(committed safehold.CommitKVStore) (*stateStore, error) {
	if err := committed.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	s := &stateStore{committed: committed}
	s.reset()
	return s, nil
}

func (s *stateStore) reset() {
	s.deliver = s.committed.CacheWrap()
	s.check = s.committed.CacheWrap()
}

func (s *stateStore) LatestVersion() (safehold.CommitID, error) {
	return s.committed.LatestVersion()
}

// Commit persists everything delivered in this block. Pending checks are
// dropped since the mempool is rechecked against the new state.
func (s *stateStore) Commit() (safehold.CommitID, error) {
	if err := s.deliver.Write(); err != nil {
		return safehold.CommitID{}, errors.Wrap(err, "flush delivered state")
	}
	s.check.Discard()
	id, err := s.committed.Commit()
	if err != nil {
		return id, err
	}
	s.reset()
	return id, nil
}

func (s *stateStore) CheckStore() safehold.CacheableKVStore {
	return s.check
}

func (s *stateStore) DeliverStore() safehold.CacheableKVStore {
	return s.deliver
}

// chainIDKey lives under the _sh: prefix reserved for node data, away from
// the escrow, wallet and signer buckets.
var chainIDKey = []byte("_sh:chainID")

// loadChainID returns an empty string before genesis.
func loadChainID(db safehold.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID records the chain id once. A second call fails.
func saveChainID(db safehold.KVStore, chainID string) error {
	if !safehold.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	switch ok, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case ok:
		return errors.Wrap(errors.ErrImmutable, "chain id already set at genesis")
	}
	if err := db.Set(chainIDKey, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
