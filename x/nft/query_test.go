package nft

import (
	"testing"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/orm"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/tokentest"
	"github.com/iov-one/nftoken/tokentest/assert"
	"github.com/iov-one/nftoken/x"
)

func TestQueryTotal(t *testing.T) {
	db := store.MemStore()
	qr := nftoken.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/nfts/total")
	if h == nil {
		t.Fatal("total query not registered")
	}

	// before any mint the counter reads zero
	models, err := h.Query(db, nftoken.KeyQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
	assert.Equal(t, int64(0), orm.DecodeSequence(models[0].Value))

	alice := tokentest.NewCondition().Address()
	_, _, err = NewController().Mint(db, alice, 7)
	assert.Nil(t, err)

	models, err = h.Query(db, nftoken.KeyQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, int64(7), orm.DecodeSequence(models[0].Value))

	// only the plain key mod is supported
	if _, err := h.Query(db, nftoken.PrefixQueryMod, nil); !errors.ErrHuman.Is(err) {
		t.Fatalf("unexpected error for prefix query: %+v", err)
	}
}

func TestQueryTokens(t *testing.T) {
	db := store.MemStore()
	qr := nftoken.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/nfts")
	if h == nil {
		t.Fatal("token query not registered")
	}

	alice := tokentest.NewCondition().Address()
	control := NewController()
	_, _, err := control.Mint(db, alice, 2)
	assert.Nil(t, err)

	models, err := h.Query(db, nftoken.KeyQueryMod, TokenKey(1))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
	assert.Equal(t, x.MustMarshalValid(&Token{Owner: alice}), models[0].Value)

	// an unminted id returns nothing, not an error
	models, err = h.Query(db, nftoken.KeyQueryMod, TokenKey(3))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(models))
}

func TestQueryTokensByOwner(t *testing.T) {
	db := store.MemStore()
	qr := nftoken.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/nfts/owner")
	if h == nil {
		t.Fatal("owner index query not registered")
	}

	alice := tokentest.NewCondition().Address()
	control := NewController()
	_, _, err := control.Mint(db, alice, 2)
	assert.Nil(t, err)

	// one model per owned token, in id order
	models, err := h.Query(db, nftoken.KeyQueryMod, alice)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(models))
	bucket := NewTokenBucket()
	for j, m := range models {
		assert.Equal(t, bucket.DBKey(TokenKey(uint64(j+1))), m.Key)
		var token Token
		assert.Nil(t, token.Unmarshal(m.Value))
		assert.Equal(t, alice, token.Owner)
	}
}

func TestQueryBalances(t *testing.T) {
	db := store.MemStore()
	qr := nftoken.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/balances")
	if h == nil {
		t.Fatal("balance query not registered")
	}

	alice := tokentest.NewCondition().Address()
	bob := tokentest.NewCondition().Address()
	control := NewController()
	_, _, err := control.Mint(db, alice, 5)
	assert.Nil(t, err)

	models, err := h.Query(db, nftoken.KeyQueryMod, alice)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))

	var count TokenCount
	assert.Nil(t, count.Unmarshal(models[0].Value))
	assert.Equal(t, int64(5), count.Count)

	// an account that never held a token has no record at all
	models, err = h.Query(db, nftoken.KeyQueryMod, bob)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(models))
}
