package nft

import (
	"testing"

	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/tokentest"
	"github.com/iov-one/nftoken/tokentest/assert"
)

func TestMintExactCount(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	alice := tokentest.NewCondition().Address()

	first, total, err := control.Mint(db, alice, 100)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), first)
	assert.Equal(t, int64(100), total)

	// every id of the allocated range must resolve to the recipient
	for id := uint64(1); id <= 100; id++ {
		token, err := control.Token(db, id)
		assert.Nil(t, err)
		assert.Equal(t, alice, token.Owner)
	}
	// and not a single token more was created
	if _, err := control.Token(db, 101); !ErrUnknownToken.Is(err) {
		t.Fatalf("id above the allocated range resolved: %+v", err)
	}

	// a second mint continues the range
	first, total, err = control.Mint(db, alice, 3)
	assert.Nil(t, err)
	assert.Equal(t, uint64(101), first)
	assert.Equal(t, int64(103), total)
	assert.Equal(t, int64(103), control.TotalMinted(db))
}

func TestMintCreditsRecipient(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	alice := tokentest.NewCondition().Address()
	bob := tokentest.NewCondition().Address()

	_, _, err := control.Mint(db, alice, 5)
	assert.Nil(t, err)
	_, _, err = control.Mint(db, bob, 2)
	assert.Nil(t, err)

	cnt, err := control.CountOf(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), cnt)

	cnt, err = control.CountOf(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), cnt)
}

func TestTransferMovesOwnershipAndCounts(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	alice := tokentest.NewCondition().Address()
	bob := tokentest.NewCondition().Address()

	_, _, err := control.Mint(db, alice, 3)
	assert.Nil(t, err)

	assert.Nil(t, control.Transfer(db, alice, bob, 2))

	token, err := control.Token(db, 2)
	assert.Nil(t, err)
	assert.Equal(t, bob, token.Owner)

	cnt, err := control.CountOf(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), cnt)
	cnt, err = control.CountOf(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), cnt)

	// the old owner lost all rights
	if err := control.Transfer(db, alice, bob, 2); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("past owner moved the token: %+v", err)
	}
	// moving to the current owner makes no sense
	if err := control.Transfer(db, bob, bob, 2); !errors.ErrInput.Is(err) {
		t.Fatalf("self transfer accepted: %+v", err)
	}
	// an unminted token cannot move
	if err := control.Transfer(db, alice, bob, 44); !ErrUnknownToken.Is(err) {
		t.Fatalf("unminted token moved: %+v", err)
	}
}

func TestTransferClearsApproval(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	alice := tokentest.NewCondition().Address()
	bob := tokentest.NewCondition().Address()
	carl := tokentest.NewCondition().Address()

	_, _, err := control.Mint(db, alice, 1)
	assert.Nil(t, err)
	assert.Nil(t, control.SetApproval(db, 1, carl, true))

	assert.Nil(t, control.Transfer(db, alice, bob, 1))

	token, err := control.Token(db, 1)
	assert.Nil(t, err)
	if len(token.Approved) != 0 {
		t.Fatalf("approval survived the transfer: %X", token.Approved)
	}
}

func TestSetApproval(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	alice := tokentest.NewCondition().Address()
	carl := tokentest.NewCondition().Address()
	dave := tokentest.NewCondition().Address()

	_, _, err := control.Mint(db, alice, 1)
	assert.Nil(t, err)

	// the slot holds a single delegate, a new grant overwrites
	assert.Nil(t, control.SetApproval(db, 1, carl, true))
	assert.Nil(t, control.SetApproval(db, 1, dave, true))

	token, err := control.Token(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, dave, token.Approved)

	// revoking the wrong delegate must not touch the slot
	if err := control.SetApproval(db, 1, carl, false); !ErrNoApproval.Is(err) {
		t.Fatalf("revoked a delegate that was not approved: %+v", err)
	}
	assert.Nil(t, control.SetApproval(db, 1, dave, false))

	token, err = control.Token(db, 1)
	assert.Nil(t, err)
	if len(token.Approved) != 0 {
		t.Fatalf("revocation left an approval: %X", token.Approved)
	}

	// the owner cannot be its own delegate
	if err := control.SetApproval(db, 1, alice, true); !errors.ErrInput.Is(err) {
		t.Fatalf("owner approved itself: %+v", err)
	}
}
