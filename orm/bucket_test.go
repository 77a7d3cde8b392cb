package orm

import (
	"encoding/binary"
	"testing"

	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/quickextest/assert"
	"github.com/supreme2580/QiuckEx/store"
)

// counter is a minimal CloneableData for tests, stored as 8 bytes
type counter struct {
	Count int64
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

func (c *counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrap(errors.ErrInput, "expected 8 bytes")
	}
	c.Count = int64(binary.BigEndian.Uint64(bz))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

func newCounterBucket() Bucket {
	return NewBucket("cnts", NewSimpleObj(nil, new(counter)))
}

func TestBucketNameValidation(t *testing.T) {
	cases := map[string]struct {
		name      string
		wantPanic bool
	}{
		"all letters":         {"george", false},
		"with underscore":     {"big_bank", false},
		"too short":           {"ab", true},
		"too long":            {"supercalifragilistic", true},
		"upper case":          {"Bucket", true},
		"with digits":         {"bucket2", true},
		"with separator":      {"with:colon", true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantPanic {
				assert.Panics(t, func() {
					NewBucket(tc.name, NewSimpleObj(nil, new(counter)))
				})
			} else {
				NewBucket(tc.name, NewSimpleObj(nil, new(counter)))
			}
		})
	}
}

func TestBucketDBKey(t *testing.T) {
	b := newCounterBucket()
	k1 := b.DBKey([]byte("ABC"))
	k2 := b.DBKey([]byte("LED"))
	assert.Equal(t, []byte("cnts:ABC"), k1)
	assert.Equal(t, []byte("cnts:LED"), k2)
	// consecutive calls must not share a backing array
	assert.Equal(t, []byte("cnts:ABC"), k1)
}

func TestBucketGetSave(t *testing.T) {
	const key = "first"

	cases := map[string]struct {
		save    Object
		saveErr *errors.Error
		get     []byte
		found   bool
		count   int64
	}{
		"save and load": {
			save:  NewSimpleObj([]byte(key), &counter{Count: 77}),
			get:   []byte(key),
			found: true,
			count: 77,
		},
		"load a missing key": {
			save:  NewSimpleObj([]byte(key), &counter{Count: 77}),
			get:   []byte("missing"),
			found: false,
		},
		"cannot save without a key": {
			save:    NewSimpleObj(nil, &counter{Count: 1}),
			saveErr: errors.ErrEmpty,
		},
		"cannot save invalid value": {
			save:    NewSimpleObj([]byte(key), &counter{Count: -234}),
			saveErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			b := newCounterBucket()

			err := b.Save(db, tc.save)
			if tc.saveErr != nil {
				assert.IsErr(t, tc.saveErr, err)
				return
			}
			assert.Nil(t, err)

			obj, err := b.Get(db, tc.get)
			assert.Nil(t, err)
			if !tc.found {
				if obj != nil {
					t.Fatalf("expected no object, got %v", obj)
				}
				return
			}
			if obj == nil {
				t.Fatal("expected an object")
			}
			assert.Equal(t, tc.get, obj.Key())
			got, ok := obj.Value().(*counter)
			if !ok {
				t.Fatalf("unexpected value type: %T", obj.Value())
			}
			assert.Equal(t, tc.count, got.Count)
		})
	}
}

func TestBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	obj := NewSimpleObj([]byte("gone"), &counter{Count: 5})
	assert.Nil(t, b.Save(db, obj))

	has, err := b.Has(db, []byte("gone"))
	assert.Nil(t, err)
	assert.Equal(t, true, has)

	assert.Nil(t, b.Delete(db, []byte("gone")))

	has, err = b.Has(db, []byte("gone"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	// deleting a missing key is a noop
	assert.Nil(t, b.Delete(db, []byte("never-there")))
}

func TestBucketSequence(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	s := b.Sequence("id")
	for i := int64(1); i < 10; i++ {
		n, err := s.NextInt(db)
		assert.Nil(t, err)
		assert.Equal(t, i, n)
	}

	// a sequence under a different name is independent
	other := b.Sequence("other")
	n, err := other.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)
}
