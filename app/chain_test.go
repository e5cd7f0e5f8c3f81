package app

import (
	"context"
	"testing"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/x"
)

func TestChain(t *testing.T) {
	var helpers x.TestHelpers

	// generic args here...
	ctx := context.Background()
	db := store.MemStore()
	tx := helpers.MockTx(helpers.MockMsg([]byte{1, 2, 3, 4}))

	// silly decorator that counts calls
	c1 := helpers.CountingDecorator()
	c2 := helpers.CountingDecorator()
	h := helpers.CountingHandler()

	stack := ChainDecorators(c1, nil, c2).WithHandler(h)
	if _, err := stack.Check(ctx, db, tx); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if _, err := stack.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	// 2x per decorator per call, 1x per handler call
	if c1.GetCount() != 4 || c2.GetCount() != 4 {
		t.Fatalf("decorators not traversed: %d, %d", c1.GetCount(), c2.GetCount())
	}
	if h.GetCount() != 2 {
		t.Fatalf("handler not reached: %d", h.GetCount())
	}
}

func TestChainAbort(t *testing.T) {
	var helpers x.TestHelpers

	ctx := context.Background()
	db := store.MemStore()
	tx := helpers.MockTx(helpers.MockMsg([]byte{1}))

	reject := errors.ErrUnauthorized.New("begone")
	h := helpers.CountingHandler()

	// an erroring decorator stops the chain before the handler
	stack := ChainDecorators(
		helpers.ErrorDecorator(reject),
	).WithHandler(h)

	if _, err := stack.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
	if h.GetCount() != 0 {
		t.Fatal("handler must not be reached")
	}
}

func TestChainNilDecorators(t *testing.T) {
	var helpers x.TestHelpers

	// typed nil pointers are removed as well
	var typedNil *nilDecorator
	stack := ChainDecorators(nil, typedNil).WithHandler(helpers.CountingHandler())

	ctx := context.Background()
	db := store.MemStore()
	tx := helpers.MockTx(helpers.MockMsg([]byte{9}))
	if _, err := stack.Check(ctx, db, tx); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
}

type nilDecorator struct{}

func (*nilDecorator) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Checker) (nftoken.CheckResult, error) {
	return next.Check(ctx, store, tx)
}

func (*nilDecorator) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Deliverer) (nftoken.DeliverResult, error) {
	return next.Deliver(ctx, store, tx)
}
