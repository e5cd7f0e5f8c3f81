package nft

import (
	"github.com/iov-one/nftoken/errors"
)

var (
	// ErrUnknownToken is returned when an operation references a token
	// id that was never minted.
	ErrUnknownToken = errors.Register(500, "unknown token")

	// ErrNoApproval is returned when a revocation names a delegate that
	// holds no approval for the token.
	ErrNoApproval = errors.Register(501, "no matching approval")
)
