package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGet(t *testing.T, db ReadOnlyKVStore, key []byte) []byte {
	t.Helper()
	v, err := db.Get(key)
	require.NoError(t, err)
	return v
}

func mustHas(t *testing.T, db ReadOnlyKVStore, key []byte) bool {
	t.Helper()
	ok, err := db.Has(key)
	require.NoError(t, err)
	return ok
}

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// iterating over ranges, and general fuzzing
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results
	// that are writen to it
	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, mustGet(t, base, k))
	assert.False(t, mustHas(t, base, k))
	require.NoError(t, base.Set(k, v))
	assert.Equal(t, v, mustGet(t, base, k))
	assert.True(t, mustHas(t, base, k))

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assert.Equal(t, v, mustGet(t, cache, k))
	assert.True(t, mustHas(t, cache, k))

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assert.Nil(t, mustGet(t, cache, k2))
	assert.False(t, mustHas(t, cache, k2))
	require.NoError(t, cache.Set(k2, v2))
	assert.Equal(t, v2, mustGet(t, cache, k2))
	assert.Nil(t, mustGet(t, base, k2))
	assert.True(t, mustHas(t, cache, k2))
	assert.False(t, mustHas(t, base, k2))

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assert.Equal(t, v, mustGet(t, base, k))
	assert.Equal(t, v2, mustGet(t, base, k2))
	assert.True(t, mustHas(t, base, k))
	assert.True(t, mustHas(t, base, k2))

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	assert.Equal(t, v, mustGet(t, c2, k))
	assert.Equal(t, v2, mustGet(t, c2, k2))
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	assert.Equal(t, v, mustGet(t, c3, k))
	assert.Equal(t, v2, mustGet(t, c3, k2))
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	assert.Nil(t, mustGet(t, base, k))
	assert.Equal(t, v2, mustGet(t, base, k2))
	assert.Nil(t, mustGet(t, base, k3))

	// and to test devnull....
	require.NoError(t, base.Write())
	assert.Nil(t, mustGet(t, devnull, k2))
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// make 10 keys and 20 values....
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := [...]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model // Key is what we query, Value is what we expect
	}{
		// overwrite one, delete another, add a third
		0: {
			[]Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			[]Op{SetOp(ks[1], vs[11]), SetOp(ks[3], vs[7]), DelOp(ks[2])},
			[]Model{pair(ks[1], vs[1]), pair(ks[2], vs[2]), pair(ks[3], nil)},
			[]Model{pair(ks[1], vs[11]), pair(ks[2], nil), pair(ks[3], vs[7])},
		},
	}

	for i, tc := range cases {
		parent := devnull.CacheWrap()
		for _, op := range tc.parentOps {
			require.NoError(t, op.Apply(parent))
		}

		child := parent.CacheWrap()
		for _, op := range tc.childOps {
			require.NoError(t, op.Apply(child))
		}

		// now check the parent is unaffected
		for j, q := range tc.parentQueries {
			res := mustGet(t, parent, q.Key)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has := mustHas(t, parent, q.Key)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}

		// the child shows changes
		for j, q := range tc.childQueries {
			res := mustGet(t, child, q.Key)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has := mustHas(t, child, q.Key)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}

		// write child to parent and make sure it also shows proper data
		require.NoError(t, child.Write())
		for j, q := range tc.childQueries {
			res := mustGet(t, parent, q.Key)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has := mustHas(t, parent, q.Key)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}
	}
}

func pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// TestSliceIterator makes sure the basic slice iterator works
func TestSliceIterator(t *testing.T) {
	const Size = 10

	ks := randKeys(Size, 8)
	vs := randKeys(Size, 40)

	models := make([]Model, Size)
	for i := 0; i < Size; i++ {
		models[i].Key = ks[i]
		models[i].Value = vs[i]
	}

	// make sure proper iteration works
	iter := NewSliceIterator(models)
	for i := 0; iter.Valid(); i++ {
		assert.True(t, i < Size)
		assert.Equal(t, ks[i], iter.Key())
		assert.Equal(t, vs[i], iter.Value())
		require.NoError(t, iter.Next())
	}

	// iterator is invalid after close
	trash := NewSliceIterator(models)
	assert.True(t, trash.Valid())
	trash.Close()
	assert.False(t, trash.Valid())
}

// TestBTreeCacheBasicIterator makes sure the basic iterator
// works. Includes random deletes, but not nested iterators.
func TestBTreeCacheBasicIterator(t *testing.T) {
	const Size = 50
	const DeleteCount = 20
	const TotalSize = Size + DeleteCount

	models := make([]Model, TotalSize)
	for i := 0; i < TotalSize; i++ {
		models[i].Key = randBytes(8)
		models[i].Value = randBytes(40)
	}

	devnull := BTreeCacheable{EmptyKVStore{}}
	base := devnull.CacheWrap()
	// add them all to the cache
	for i := 0; i < TotalSize; i++ {
		require.NoError(t, base.Set(models[i].Key, models[i].Value))
	}
	// delete the first chunk
	for i := 0; i < DeleteCount; i++ {
		require.NoError(t, base.Delete(models[i].Key))
	}
	models = models[DeleteCount:]

	// sort all remaining key/value pairs... this is our expected results
	sort.Slice(models, func(i, j int) bool {
		return bytes.Compare(models[i].Key, models[j].Key) < 0
	})

	// iterate over everything
	verifyIterator(t, models, openIter(t, base, nil, nil))
	// iterate with lower end defined
	verifyIterator(t, models[10:], openIter(t, base, models[10].Key, nil))
	// iterate with upper end defined
	verifyIterator(t, models[:Size-8], openIter(t, base, nil, models[Size-8].Key))
	// iterate with both ends defined
	verifyIterator(t, models[17:28], openIter(t, base, models[17].Key, models[28].Key))

	// and now in reverse....
	verifyIterator(t, reverse(models), openRevIter(t, base, nil, nil))
	// iterate with lower end defined
	verifyIterator(t, reverse(models[34:]),
		openRevIter(t, base, models[34].Key, nil))
	// iterate with upper end defined
	verifyIterator(t, reverse(models[:19]),
		openRevIter(t, base, nil, models[19].Key))
	// iterate with both ends defined
	verifyIterator(t, reverse(models[6:26]),
		openRevIter(t, base, models[6].Key, models[26].Key))
}

func openIter(t *testing.T, db ReadOnlyKVStore, start, end []byte) Iterator {
	t.Helper()
	it, err := db.Iterator(start, end)
	require.NoError(t, err)
	return it
}

func openRevIter(t *testing.T, db ReadOnlyKVStore, start, end []byte) Iterator {
	t.Helper()
	it, err := db.ReverseIterator(start, end)
	require.NoError(t, err)
	return it
}

// TestBTreeCacheIteratorAcrossLayers iterates over a range that
// spans both the parent and child caches, combining different
// values, overwrites, and deletes
func TestBTreeCacheIteratorAcrossLayers(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}
	parent := devnull.CacheWrap()

	a, b, c, d := []byte("a"), []byte("b"), []byte("c"), []byte("d")
	require.NoError(t, parent.Set(a, []byte{1}))
	require.NoError(t, parent.Set(b, []byte{2}))
	require.NoError(t, parent.Set(c, []byte{3}))

	child := parent.CacheWrap()
	// overwrite b, delete c, add d
	require.NoError(t, child.Set(b, []byte{22}))
	require.NoError(t, child.Delete(c))
	require.NoError(t, child.Set(d, []byte{4}))

	expect := []Model{
		pair(a, []byte{1}),
		pair(b, []byte{22}),
		pair(d, []byte{4}),
	}
	verifyIterator(t, expect, openIter(t, child, nil, nil))
	verifyIterator(t, reverse(expect), openRevIter(t, child, nil, nil))

	// and the parent remains untouched
	orig := []Model{
		pair(a, []byte{1}),
		pair(b, []byte{2}),
		pair(c, []byte{3}),
	}
	verifyIterator(t, orig, openIter(t, parent, nil, nil))
}

func verifyIterator(t *testing.T, models []Model, iter Iterator) {
	t.Helper()
	// make sure proper iteration works
	for i := 0; i < len(models); i++ {
		require.True(t, iter.Valid(), "%d", i)
		assert.Equal(t, models[i].Key, iter.Key(), "%d", i)
		assert.Equal(t, models[i].Value, iter.Value(), "%d", i)
		require.NoError(t, iter.Next())
	}
	assert.False(t, iter.Valid())
	iter.Close()
}

// reverse returns a copy of the slice with elements in reverse order
func reverse(models []Model) []Model {
	max := len(models)
	res := make([]Model, max)
	for i := 0; i < max; i++ {
		res[i] = models[max-1-i]
	}
	return res
}

// randKeys returns a slice of count keys, all of length
func randKeys(count, length int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = randBytes(length)
	}
	return res
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	rand.Read(res)
	return res
}
