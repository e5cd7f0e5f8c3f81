package app

import (
	"context"
	"testing"

	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/x"
)

func TestRouter(t *testing.T) {
	var helpers x.TestHelpers

	r := NewRouter()
	good := helpers.CountingHandler()
	r.Handle("good/path", good)

	ctx := context.Background()
	db := store.MemStore()

	// registered path gets dispatched
	tx := helpers.MockTx(&pathMsg{path: "good/path"})
	if _, err := r.Check(ctx, db, tx); err != nil {
		t.Fatalf("unexpected check error: %+v", err)
	}
	if _, err := r.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("unexpected deliver error: %+v", err)
	}
	if good.GetCount() != 2 {
		t.Fatalf("want 2 calls, got %d", good.GetCount())
	}

	// missing path returns not found
	missing := helpers.MockTx(&pathMsg{path: "missing/path"})
	if _, err := r.Check(ctx, db, missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	if _, err := r.Deliver(ctx, db, missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestRouterBadRegistration(t *testing.T) {
	var helpers x.TestHelpers
	h := helpers.CountingHandler()

	assertPanics(t, "invalid path", func() {
		NewRouter().Handle("Bad/Path!", h)
	})

	assertPanics(t, "duplicate path", func() {
		r := NewRouter()
		r.Handle("dup/path", h)
		r.Handle("dup/path", h)
	})
}

func assertPanics(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("%s: expected a panic", msg)
		}
	}()
	fn()
}

// pathMsg is a mock message with a configurable path
type pathMsg struct {
	path string
}

func (p *pathMsg) Marshal() ([]byte, error) { return []byte(p.path), nil }
func (p *pathMsg) Unmarshal(bz []byte) error {
	p.path = string(bz)
	return nil
}
func (p *pathMsg) Path() string    { return p.path }
func (p *pathMsg) Validate() error { return nil }
