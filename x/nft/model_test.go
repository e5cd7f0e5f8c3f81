package nft

import (
	"bytes"
	"testing"

	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/tokentest"
	"github.com/iov-one/nftoken/tokentest/assert"
)

func TestTokenKeyOrdered(t *testing.T) {
	// Iterating the bucket by key must return tokens in id order.
	prev := TokenKey(1)
	for id := uint64(2); id < 300; id++ {
		key := TokenKey(id)
		if bytes.Compare(prev, key) >= 0 {
			t.Fatalf("key of %d is not greater than its predecessor", id)
		}
		prev = key
	}
}

func TestTokenValidate(t *testing.T) {
	owner := tokentest.NewCondition().Address()
	delegate := tokentest.NewCondition().Address()

	cases := map[string]struct {
		token   *Token
		wantErr *errors.Error
	}{
		"owned, no approval": {
			token: &Token{Owner: owner},
		},
		"owned with approval": {
			token: &Token{Owner: owner, Approved: delegate},
		},
		"missing owner": {
			token:   &Token{Approved: delegate},
			wantErr: errors.ErrInput,
		},
		"bad owner length": {
			token:   &Token{Owner: []byte("too short")},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.token.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestRegistryInfoValidate(t *testing.T) {
	admin := tokentest.NewCondition().Address()

	cases := map[string]struct {
		info    *RegistryInfo
		wantErr *errors.Error
	}{
		"open registry": {
			info: &RegistryInfo{},
		},
		"restricted with admin": {
			info: &RegistryInfo{Admin: admin, RestrictMint: true},
		},
		"restricted without admin": {
			info:    &RegistryInfo{RestrictMint: true},
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.info.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestTokenBucketRoundtrip(t *testing.T) {
	db := store.MemStore()
	bucket := NewTokenBucket()
	owner := tokentest.NewCondition().Address()

	if err := bucket.Save(db, 7, &Token{Owner: owner}); err != nil {
		t.Fatalf("cannot save: %+v", err)
	}

	token, err := bucket.GetToken(db, 7)
	assert.Nil(t, err)
	assert.Equal(t, owner, token.Owner)

	missing, err := bucket.GetToken(db, 8)
	assert.Nil(t, err)
	if missing != nil {
		t.Fatalf("unminted id must not resolve, got %v", missing)
	}
}

func TestTokenBucketOwnerIndex(t *testing.T) {
	db := store.MemStore()
	bucket := NewTokenBucket()
	alice := tokentest.NewCondition().Address()
	bob := tokentest.NewCondition().Address()

	assert.Nil(t, bucket.Save(db, 1, &Token{Owner: alice}))
	assert.Nil(t, bucket.Save(db, 2, &Token{Owner: alice}))
	assert.Nil(t, bucket.Save(db, 3, &Token{Owner: bob}))

	objs, err := bucket.GetIndexed(db, "owner", alice)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(objs))

	// reassigning the token must move the index entry
	assert.Nil(t, bucket.Save(db, 2, &Token{Owner: bob}))
	objs, err = bucket.GetIndexed(db, "owner", bob)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(objs))
}

func TestCountBucket(t *testing.T) {
	db := store.MemStore()
	counts := NewCountBucket()
	owner := tokentest.NewCondition().Address()

	cnt, err := counts.CountOf(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), cnt)

	assert.Nil(t, counts.Add(db, owner, 3))
	assert.Nil(t, counts.Add(db, owner, -1))

	cnt, err = counts.CountOf(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), cnt)

	// a count can never drop below zero
	if err := counts.Add(db, owner, -5); !errors.ErrState.Is(err) {
		t.Fatalf("want invalid state, got %+v", err)
	}
}
