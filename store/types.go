//nolint
package store

import quickex "github.com/supreme2580/QiuckEx"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = quickex.ReadOnlyKVStore
type KVStore = quickex.KVStore
type SetDeleter = quickex.SetDeleter
type Batch = quickex.Batch
type Iterator = quickex.Iterator
type CacheableKVStore = quickex.CacheableKVStore
type KVCacheWrap = quickex.KVCacheWrap
type Model = quickex.Model
