package orm

import (
	"testing"

	"github.com/iov-one/nftoken/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustRef creates a test object or fails
func mustRef(t testing.TB, key []byte, strs ...string) Object {
	t.Helper()
	m, err := multiRefFromStrings(strs...)
	require.NoError(t, err)
	return NewSimpleObj(key, m)
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("mybuck", NewSimpleObj(nil, new(MultiRef)))

	k := []byte("alice")
	obj := mustRef(t, k, "foo", "bar")

	// missing at first
	got, err := bucket.Get(db, k)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, bucket.Save(db, obj))

	got, err = bucket.Get(db, k)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, k, got.Key())
	assert.Equal(t, [][]byte{[]byte("bar"), []byte("foo")},
		got.Value().(*MultiRef).GetRefs())

	require.NoError(t, bucket.Delete(db, k))
	got, err = bucket.Get(db, k)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBucketSaveInvalid(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("mybuck", NewSimpleObj(nil, new(MultiRef)))

	// empty object is rejected by validation
	err := bucket.Save(db, NewSimpleObj([]byte("k"), new(MultiRef)))
	assert.Error(t, err)

	// missing key as well
	m, err := multiRefFromStrings("foo")
	require.NoError(t, err)
	err = bucket.Save(db, NewSimpleObj(nil, m))
	assert.Error(t, err)
}

func TestBucketsDontOverlap(t *testing.T) {
	db := store.MemStore()
	a := NewBucket("alpha", NewSimpleObj(nil, new(MultiRef)))
	b := NewBucket("beta", NewSimpleObj(nil, new(MultiRef)))

	k := []byte("shared")
	require.NoError(t, a.Save(db, mustRef(t, k, "from-a")))
	require.NoError(t, b.Save(db, mustRef(t, k, "from-b")))

	got, err := a.Get(db, k)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("from-a")}, got.Value().(*MultiRef).GetRefs())

	got, err = b.Get(db, k)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("from-b")}, got.Value().(*MultiRef).GetRefs())
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("query", NewSimpleObj(nil, new(MultiRef)))

	require.NoError(t, bucket.Save(db, mustRef(t, []byte("aa"), "1")))
	require.NoError(t, bucket.Save(db, mustRef(t, []byte("ab"), "2")))
	require.NoError(t, bucket.Save(db, mustRef(t, []byte("ba"), "3")))

	// exact key
	res, err := bucket.Query(db, "", []byte("ab"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, bucket.DBKey([]byte("ab")), res[0].Key)

	// miss returns nothing
	res, err = bucket.Query(db, "", []byte("zz"))
	require.NoError(t, err)
	assert.Nil(t, res)

	// prefix scan
	res, err = bucket.Query(db, "prefix", []byte("a"))
	require.NoError(t, err)
	assert.Len(t, res, 2)

	// unknown modifier
	_, err = bucket.Query(db, "nonsense", []byte("a"))
	assert.Error(t, err)
}

// firstRefIndexer indexes an object by its first reference
func firstRefIndexer(obj Object) ([]byte, error) {
	if obj == nil {
		return nil, nil
	}
	refs := obj.Value().(*MultiRef).GetRefs()
	if len(refs) == 0 {
		return nil, nil
	}
	return refs[0], nil
}

func TestBucketIndex(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("indexed", NewSimpleObj(nil, new(MultiRef))).
		WithIndex("first", firstRefIndexer, false)

	require.NoError(t, bucket.Save(db, mustRef(t, []byte("k1"), "apple")))
	require.NoError(t, bucket.Save(db, mustRef(t, []byte("k2"), "apple")))
	require.NoError(t, bucket.Save(db, mustRef(t, []byte("k3"), "banana")))

	objs, err := bucket.GetIndexed(db, "first", []byte("apple"))
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, []byte("k1"), objs[0].Key())
	assert.Equal(t, []byte("k2"), objs[1].Key())

	// moving k1 to another index value updates both sides
	require.NoError(t, bucket.Save(db, mustRef(t, []byte("k1"), "banana")))

	objs, err = bucket.GetIndexed(db, "first", []byte("apple"))
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, []byte("k2"), objs[0].Key())

	objs, err = bucket.GetIndexed(db, "first", []byte("banana"))
	require.NoError(t, err)
	assert.Len(t, objs, 2)

	// deleting removes the reference
	require.NoError(t, bucket.Delete(db, []byte("k3")))
	objs, err = bucket.GetIndexed(db, "first", []byte("banana"))
	require.NoError(t, err)
	assert.Len(t, objs, 1)

	// unknown index name errors
	_, err = bucket.GetIndexed(db, "missing", []byte("apple"))
	assert.Error(t, err)
}

func TestUniqueIndexConflict(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("uniq", NewSimpleObj(nil, new(MultiRef))).
		WithIndex("first", firstRefIndexer, true)

	require.NoError(t, bucket.Save(db, mustRef(t, []byte("k1"), "apple")))
	// second object with the same index value violates the constraint
	err := bucket.Save(db, mustRef(t, []byte("k2"), "apple"))
	assert.Error(t, err)
}
