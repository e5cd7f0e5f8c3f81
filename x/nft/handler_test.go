package nft

import (
	"bytes"
	"context"
	"testing"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/app"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/tokentest"
	"github.com/iov-one/nftoken/tokentest/assert"
	"github.com/iov-one/nftoken/x/utils"
)

func TestMintHandlerOpenRegistry(t *testing.T) {
	alice := tokentest.NewCondition()

	db := store.MemStore()
	auth := &tokentest.Auth{Signer: alice}
	h := MintHandler{auth: auth, control: NewController()}
	ctx := context.Background()

	tx := &tokentest.Tx{Msg: &MintMsg{Recipient: alice.Address(), Amount: 4}}

	cres, err := h.Check(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 4*mintTokenCost, cres.GasAllocated)

	dres, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(dres.Tags))
	assert.Equal(t, []byte(pathMintMsg), dres.Tags[0].Key)

	var event MintEvent
	assert.Nil(t, event.Unmarshal(dres.Tags[0].Value))
	assert.Equal(t, alice.Address(), event.Owner)
	assert.Equal(t, int64(4), event.Total)

	// a mint without any signer must be refused
	h.auth = &tokentest.Auth{}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("unsigned mint accepted: %+v", err)
	}
}

func TestMintHandlerRestrictedRegistry(t *testing.T) {
	admin := tokentest.NewCondition()
	alice := tokentest.NewCondition()

	db := store.MemStore()
	info := &RegistryInfo{Admin: admin.Address(), RestrictMint: true}
	assert.Nil(t, newRegistryBucket().SetInfo(db, info))

	ctx := context.Background()
	tx := &tokentest.Tx{Msg: &MintMsg{Recipient: alice.Address(), Amount: 1}}

	h := MintHandler{auth: &tokentest.Auth{Signer: alice}, control: NewController()}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("non admin minted on a restricted registry: %+v", err)
	}

	// the admin can mint for anyone
	h.auth = &tokentest.Auth{Signer: admin}
	dres, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(dres.Tags))

	control := NewController()
	token, err := control.Token(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, alice.Address(), token.Owner)
}

func TestTransferHandlerAuth(t *testing.T) {
	alice := tokentest.NewCondition()
	bob := tokentest.NewCondition()

	db := store.MemStore()
	control := NewController()
	_, _, err := control.Mint(db, alice.Address(), 1)
	assert.Nil(t, err)

	ctx := context.Background()
	tx := &tokentest.Tx{Msg: &TransferMsg{Destination: bob.Address(), TokenId: 1}}

	h := TransferHandler{auth: &tokentest.Auth{Signer: bob}, control: control}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("non owner moved the token: %+v", err)
	}

	h.auth = &tokentest.Auth{Signer: alice}
	dres, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(dres.Tags))
	assert.Equal(t, []byte(pathTransferMsg), dres.Tags[0].Key)

	var event TransferEvent
	assert.Nil(t, event.Unmarshal(dres.Tags[0].Value))
	assert.Equal(t, alice.Address(), event.From)
	assert.Equal(t, bob.Address(), event.To)
	assert.Equal(t, uint64(1), event.TokenId)
}

func TestDelegateTransferHandlerAuth(t *testing.T) {
	alice := tokentest.NewCondition()
	bob := tokentest.NewCondition()
	carl := tokentest.NewCondition()

	db := store.MemStore()
	control := NewController()
	_, _, err := control.Mint(db, alice.Address(), 2)
	assert.Nil(t, err)
	assert.Nil(t, control.SetApproval(db, 1, carl.Address(), true))

	ctx := context.Background()
	h := DelegateTransferHandler{control: control}

	// without an approval only the owner may move the token
	h.auth = &tokentest.Auth{Signer: carl}
	tx := &tokentest.Tx{Msg: &DelegateTransferMsg{Destination: bob.Address(), TokenId: 2}}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("moved a token without approval: %+v", err)
	}

	// the approved delegate moves the token it was granted
	tx = &tokentest.Tx{Msg: &DelegateTransferMsg{Destination: bob.Address(), TokenId: 1}}
	dres, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, []byte(pathDelegateTransferMsg), dres.Tags[0].Key)

	token, err := control.Token(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, bob.Address(), token.Owner)

	// the grant was consumed together with the transfer
	tx = &tokentest.Tx{Msg: &DelegateTransferMsg{Destination: alice.Address(), TokenId: 1}}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("past delegate moved the token again: %+v", err)
	}

	// ownership always wins: the owner moves the token even while
	// another delegate sits in the approval slot
	assert.Nil(t, control.SetApproval(db, 2, carl.Address(), true))
	h.auth = &tokentest.Auth{Signer: alice}
	tx = &tokentest.Tx{Msg: &DelegateTransferMsg{Destination: bob.Address(), TokenId: 2}}
	_, err = h.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	token, err = control.Token(db, 2)
	assert.Nil(t, err)
	assert.Equal(t, bob.Address(), token.Owner)
	if len(token.Approved) != 0 {
		t.Fatalf("stale delegate kept rights over the new owner: %X", token.Approved)
	}
}

func TestUpdateApprovalHandlerAuth(t *testing.T) {
	alice := tokentest.NewCondition()
	carl := tokentest.NewCondition()

	db := store.MemStore()
	control := NewController()
	_, _, err := control.Mint(db, alice.Address(), 1)
	assert.Nil(t, err)

	ctx := context.Background()
	tx := &tokentest.Tx{Msg: &UpdateApprovalMsg{Delegate: carl.Address(), TokenId: 1, Approved: true}}

	// the delegate itself cannot grant
	h := UpdateApprovalHandler{auth: &tokentest.Auth{Signer: carl}, control: control}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("non owner updated an approval: %+v", err)
	}

	h.auth = &tokentest.Auth{Signer: alice}
	dres, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(dres.Tags))

	var event ApprovalEvent
	assert.Nil(t, event.Unmarshal(dres.Tags[0].Value))
	assert.Equal(t, alice.Address(), event.Owner)
	assert.Equal(t, carl.Address(), event.Spender)
	assert.Equal(t, true, event.Approved)
}

// TestRegistryLifecycle drives the full message flow through a router,
// the way the application wires it.
func TestRegistryLifecycle(t *testing.T) {
	alice := tokentest.NewCondition()
	bob := tokentest.NewCondition()
	carl := tokentest.NewCondition()
	dave := tokentest.NewCondition()

	db := store.MemStore()
	ctxAuth := &tokentest.CtxAuth{Key: "auth"}
	rt := app.NewRouter()
	RegisterRoutes(rt, ctxAuth)
	control := NewController()

	deliver := func(t *testing.T, signer nftoken.Condition, msg nftoken.Msg) (nftoken.DeliverResult, error) {
		t.Helper()
		ctx := ctxAuth.SetConditions(context.Background(), signer)
		return rt.Deliver(ctx, db, &tokentest.Tx{Msg: msg})
	}

	// alice mints a batch for herself
	dres, err := deliver(t, alice, &MintMsg{Recipient: alice.Address(), Amount: 100})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(dres.Tags))
	assert.Equal(t, int64(100), control.TotalMinted(db))

	cnt, err := control.CountOf(db, alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(100), cnt)

	// she hands token 1 to bob
	_, err = deliver(t, alice, &TransferMsg{Destination: bob.Address(), TokenId: 1})
	assert.Nil(t, err)

	cnt, err = control.CountOf(db, alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(99), cnt)
	cnt, err = control.CountOf(db, bob.Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), cnt)

	// approving dave on token 2 overwrites the earlier grant to carl
	_, err = deliver(t, alice, &UpdateApprovalMsg{Delegate: carl.Address(), TokenId: 2, Approved: true})
	assert.Nil(t, err)
	_, err = deliver(t, alice, &UpdateApprovalMsg{Delegate: dave.Address(), TokenId: 2, Approved: true})
	assert.Nil(t, err)

	_, err = deliver(t, carl, &DelegateTransferMsg{Destination: carl.Address(), TokenId: 2})
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("overwritten delegate moved the token: %+v", err)
	}
	_, err = deliver(t, dave, &DelegateTransferMsg{Destination: dave.Address(), TokenId: 2})
	assert.Nil(t, err)

	token, err := control.Token(db, 2)
	assert.Nil(t, err)
	assert.Equal(t, dave.Address(), token.Owner)
	if len(token.Approved) != 0 {
		t.Fatalf("approval survived the delegated transfer: %X", token.Approved)
	}

	// after a grant and a revocation no delegate remains
	_, err = deliver(t, alice, &UpdateApprovalMsg{Delegate: carl.Address(), TokenId: 3, Approved: true})
	assert.Nil(t, err)
	_, err = deliver(t, alice, &UpdateApprovalMsg{Delegate: carl.Address(), TokenId: 3, Approved: false})
	assert.Nil(t, err)
	_, err = deliver(t, carl, &DelegateTransferMsg{Destination: carl.Address(), TokenId: 3})
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("revoked delegate moved the token: %+v", err)
	}

	// minting never reuses ids, the counter keeps growing
	_, err = deliver(t, bob, &MintMsg{Recipient: bob.Address(), Amount: 1})
	assert.Nil(t, err)
	assert.Equal(t, int64(101), control.TotalMinted(db))
	token, err = control.Token(db, 101)
	assert.Nil(t, err)
	assert.Equal(t, bob.Address(), token.Owner)
}

// TestDeliverFailureLeavesNoTrace makes sure a failing delivery inside
// the savepoint decorator does not leak partial writes.
func TestDeliverFailureLeavesNoTrace(t *testing.T) {
	alice := tokentest.NewCondition()
	bob := tokentest.NewCondition()

	db := store.MemStore()
	ctxAuth := &tokentest.CtxAuth{Key: "auth"}
	rt := app.NewRouter()
	RegisterRoutes(rt, ctxAuth)
	stack := app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(rt)
	control := NewController()

	var logs bytes.Buffer
	ctx := nftoken.WithLogger(context.Background(), nftoken.NewLogfmtLogger(&logs))
	ctx = ctxAuth.SetConditions(ctx, alice)
	tx := &tokentest.Tx{Msg: &MintMsg{Recipient: alice.Address(), Amount: 2}}
	_, err := stack.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	// every delivery is logged with its outcome
	if logs.Len() == 0 {
		t.Fatal("no log output captured")
	}
	logs.Reset()

	// bob cannot move what he does not own; the state must not move
	// either
	ctx = ctxAuth.SetConditions(nftoken.WithLogger(context.Background(),
		nftoken.NewLogfmtLogger(&logs)), bob)
	tx = &tokentest.Tx{Msg: &TransferMsg{Destination: bob.Address(), TokenId: 1}}
	_, err = stack.Deliver(ctx, db, tx)
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}

	token, err := control.Token(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, alice.Address(), token.Owner)
	cnt, err := control.CountOf(db, bob.Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(0), cnt)

	// the rejection was logged too
	if logs.Len() == 0 {
		t.Fatal("no log output captured for the failure")
	}
}
