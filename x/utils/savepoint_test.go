package utils

import (
	"context"
	"testing"

	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/quickextest"
	"github.com/supreme2580/QiuckEx/quickextest/assert"
	"github.com/supreme2580/QiuckEx/store"
)

// writeHandler writes the given key/value pair on every call and
// returns the configured error.
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ quickex.Handler = writeHandler{}

func (h writeHandler) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &quickex.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &quickex.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	failure := errors.Wrap(errors.ErrHuman, "do not pass go")

	cases := map[string]struct {
		save    Savepoint
		handler quickex.Handler
		deliver bool
		wantErr *errors.Error
		// written is true when the handler write must survive the call
		written bool
	}{
		"check succeeds and writes are kept": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: []byte("a"), value: []byte("1")},
			written: true,
		},
		"check fails and writes are discarded": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: []byte("a"), value: []byte("1"), err: failure},
			wantErr: errors.ErrHuman,
		},
		"deliver succeeds and writes are kept": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: []byte("a"), value: []byte("1")},
			deliver: true,
			written: true,
		},
		"deliver fails and writes are discarded": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: []byte("a"), value: []byte("1"), err: failure},
			deliver: true,
			wantErr: errors.ErrHuman,
		},
		"inactive savepoint does not roll back": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: []byte("a"), value: []byte("1"), err: failure},
			deliver: true,
			wantErr: errors.ErrHuman,
			written: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			db := store.MemStore()
			tx := &quickextest.Tx{Msg: &quickextest.Msg{RoutePath: "test/savepoint"}}

			var err error
			if tc.deliver {
				_, err = tc.save.Deliver(ctx, db, tx, tc.handler)
			} else {
				_, err = tc.save.Check(ctx, db, tx, tc.handler)
			}
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}

			raw, err := db.Get([]byte("a"))
			assert.Nil(t, err)
			if tc.written && raw == nil {
				t.Fatal("expected the write to be committed")
			}
			if !tc.written && raw != nil {
				t.Fatal("expected the write to be rolled back")
			}
		})
	}
}
