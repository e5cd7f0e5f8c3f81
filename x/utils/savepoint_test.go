package utils

import (
	"context"
	"testing"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/x"
	"github.com/stretchr/testify/assert"
)

func TestSavepoint(t *testing.T) {
	var helpers x.TestHelpers

	nope := errors.ErrHuman.New("not implemented")
	key, value := []byte("lost"), []byte("data")

	cases := map[string]struct {
		save    Savepoint
		handler nftoken.Handler
		check   bool
		wantErr error
		// whether the write made it to the backing store
		written bool
	}{
		"check with no savepoint, write survives an error": {
			save:    NewSavepoint(),
			handler: helpers.WriteHandler(key, value, nope),
			check:   true,
			wantErr: nope,
			written: true,
		},
		"check with savepoint, error rolls back": {
			save:    NewSavepoint().OnCheck(),
			handler: helpers.WriteHandler(key, value, nope),
			check:   true,
			wantErr: nope,
			written: false,
		},
		"check with savepoint, success commits": {
			save:    NewSavepoint().OnCheck(),
			handler: helpers.WriteHandler(key, value, nil),
			check:   true,
			written: true,
		},
		"deliver with savepoint, error rolls back": {
			save:    NewSavepoint().OnDeliver(),
			handler: helpers.WriteHandler(key, value, nope),
			wantErr: nope,
			written: false,
		},
		"deliver with savepoint, success commits": {
			save:    NewSavepoint().OnDeliver(),
			handler: helpers.WriteHandler(key, value, nil),
			written: true,
		},
		"deliver trigger does not apply to check": {
			save:    NewSavepoint().OnDeliver(),
			handler: helpers.WriteHandler(key, value, nope),
			check:   true,
			wantErr: nope,
			written: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			db := store.MemStore()

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, db, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, db, nil, tc.handler)
			}

			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.written, db.Has(key))
		})
	}
}

func TestSavepointWithNonCacheable(t *testing.T) {
	var helpers x.TestHelpers

	key, value := []byte("key"), []byte("value")
	save := NewSavepoint().OnCheck().OnDeliver()
	h := helpers.WriteHandler(key, value, nil)

	// a bare store without CacheWrap support is passed through
	db := store.EmptyKVStore{}
	if _, err := save.Check(context.Background(), db, nil, h); err != nil {
		t.Fatal(err)
	}
	if _, err := save.Deliver(context.Background(), db, nil, h); err != nil {
		t.Fatal(err)
	}
}
