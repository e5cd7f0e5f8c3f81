//nolint
package store

import "github.com/iov-one/nftoken"

// Move references for all storage types into this package
// for shorter names everywhere

type KVStore = nftoken.KVStore
type ReadOnlyKVStore = nftoken.ReadOnlyKVStore
type Iterator = nftoken.Iterator
type SetDeleter = nftoken.SetDeleter
type Batch = nftoken.Batch
type CacheableKVStore = nftoken.CacheableKVStore
type KVCacheWrap = nftoken.KVCacheWrap
type Model = nftoken.Model

var Pair = nftoken.Pair
