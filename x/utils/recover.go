package utils

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ nftoken.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Checker) (_ nftoken.CheckResult, err error) {

	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Deliverer) (_ nftoken.DeliverResult, err error) {

	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
