package store

import "github.com/safehold/safehold"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = safehold.ReadOnlyKVStore
type SetDeleter = safehold.SetDeleter
type KVStore = safehold.KVStore
type Batch = safehold.Batch
type CacheableKVStore = safehold.CacheableKVStore
type KVCacheWrap = safehold.KVCacheWrap
type CommitKVStore = safehold.CommitKVStore
type CommitID = safehold.CommitID
type Model = safehold.Model
