package utils

import (
	"context"
	"testing"

	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/x"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	var helpers x.TestHelpers

	r := NewRecovery()
	boom := errors.ErrHuman.New("boom")
	h := helpers.PanicHandler(boom)

	ctx := context.Background()
	db := store.MemStore()

	// panics are converted to errors on both paths
	_, err := r.Check(ctx, db, nil, h)
	assert.Error(t, err)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, db, nil, h)
	assert.Error(t, err)
	assert.True(t, errors.ErrPanic.Is(err))

	// normal errors pass through untouched
	quiet := helpers.ErrorHandler(boom)
	_, err = r.Check(ctx, db, nil, quiet)
	assert.True(t, errors.ErrHuman.Is(err))
}
