package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/x"
)

// Gas costs charged for the work a delivery performs. Minting pays per
// created token.
const (
	mintTokenCost      int64 = 50
	transferCost       int64 = 100
	updateApprovalCost int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r nftoken.Registry, auth x.Authenticator) {
	control := NewController()
	r.Handle(pathMintMsg, MintHandler{auth: auth, control: control})
	r.Handle(pathTransferMsg, TransferHandler{auth: auth, control: control})
	r.Handle(pathDelegateTransferMsg, DelegateTransferHandler{auth: auth, control: control})
	r.Handle(pathUpdateApprovalMsg, UpdateApprovalHandler{auth: auth, control: control})
}

// RegisterQuery will register the token bucket under "/nfts" (with the
// owner index under "/nfts/owner"), the counts under "/balances" and
// the mint counter under "/nfts/total".
func RegisterQuery(qr nftoken.QueryRouter) {
	NewTokenBucket().Register("nfts", qr)
	NewCountBucket().Register("balances", qr)
	qr.Register("/nfts/total", TotalQuery{})
}

// MintHandler creates new tokens.
type MintHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ nftoken.Handler = MintHandler{}

// Check verifies the mint is authorized and allocates gas per token.
func (h MintHandler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (nftoken.CheckResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nftoken.CheckResult{}, err
	}
	return nftoken.CheckResult{GasAllocated: mintTokenCost * msg.Amount}, nil
}

// Deliver creates the tokens and emits one mint event.
func (h MintHandler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (nftoken.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}

	_, total, err := h.control.Mint(db, msg.Recipient, msg.Amount)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}

	event, err := NewMintEvent(msg.Recipient, total)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}
	tags, err := eventTags(pathMintMsg, event)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}
	return nftoken.DeliverResult{Tags: tags}, nil
}

func (h MintHandler) validate(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*MintMsg, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	msg, ok := rmsg.(*MintMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	info, err := newRegistryBucket().GetInfo(db)
	if err != nil {
		return nil, err
	}
	if info != nil && info.RestrictMint {
		if !h.auth.HasAddress(ctx, info.Admin) {
			return nil, errors.Wrap(errors.ErrUnauthorized, "minting is restricted to the admin")
		}
	} else if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return msg, nil
}

// TransferHandler moves a token, authorized by the owner only.
type TransferHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ nftoken.Handler = TransferHandler{}

// Check verifies the transfer is authorized and allocates gas.
func (h TransferHandler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (nftoken.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nftoken.CheckResult{}, err
	}
	return nftoken.CheckResult{GasAllocated: transferCost}, nil
}

// Deliver moves the token and emits one transfer event.
func (h TransferHandler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (nftoken.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}

	from := token.Owner
	if err := h.control.Transfer(db, from, msg.Destination, msg.TokenId); err != nil {
		return nftoken.DeliverResult{}, err
	}

	event, err := NewTransferEvent(from, msg.Destination, msg.TokenId)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}
	tags, err := eventTags(pathTransferMsg, event)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}
	return nftoken.DeliverResult{Tags: tags}, nil
}

func (h TransferHandler) validate(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*TransferMsg, *Token, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	msg, ok := rmsg.(*TransferMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrMsg, rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	token, err := h.control.Token(db, msg.TokenId)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, token.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the token owner")
	}
	return msg, token, nil
}

// DelegateTransferHandler moves a token, authorized by the owner or by
// the approved delegate.
type DelegateTransferHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ nftoken.Handler = DelegateTransferHandler{}

// Check verifies the transfer is authorized and allocates gas.
func (h DelegateTransferHandler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (nftoken.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nftoken.CheckResult{}, err
	}
	return nftoken.CheckResult{GasAllocated: transferCost}, nil
}

// Deliver moves the token and emits one transfer event. The approval
// slot is cleared by the transfer, so a delegate can move a token at
// most once per grant.
func (h DelegateTransferHandler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (nftoken.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}

	from := token.Owner
	if err := h.control.Transfer(db, from, msg.Destination, msg.TokenId); err != nil {
		return nftoken.DeliverResult{}, err
	}

	event, err := NewTransferEvent(from, msg.Destination, msg.TokenId)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}
	tags, err := eventTags(pathDelegateTransferMsg, event)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}
	return nftoken.DeliverResult{Tags: tags}, nil
}

func (h DelegateTransferHandler) validate(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*DelegateTransferMsg, *Token, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	msg, ok := rmsg.(*DelegateTransferMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrMsg, rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	token, err := h.control.Token(db, msg.TokenId)
	if err != nil {
		return nil, nil, err
	}
	allowed := h.auth.HasAddress(ctx, token.Owner)
	if !allowed && len(token.Approved) != 0 {
		allowed = h.auth.HasAddress(ctx, token.Approved)
	}
	if !allowed {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "neither owner nor approved delegate")
	}
	return msg, token, nil
}

// UpdateApprovalHandler grants or revokes the single approval slot of
// a token. Only the owner is authorized.
type UpdateApprovalHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ nftoken.Handler = UpdateApprovalHandler{}

// Check verifies the update is authorized and allocates gas.
func (h UpdateApprovalHandler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (nftoken.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nftoken.CheckResult{}, err
	}
	return nftoken.CheckResult{GasAllocated: updateApprovalCost}, nil
}

// Deliver updates the approval slot and emits one approval event.
func (h UpdateApprovalHandler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (nftoken.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}

	if err := h.control.SetApproval(db, msg.TokenId, msg.Delegate, msg.Approved); err != nil {
		return nftoken.DeliverResult{}, err
	}

	event, err := NewApprovalEvent(token.Owner, msg.Delegate, msg.TokenId, msg.Approved)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}
	tags, err := eventTags(pathUpdateApprovalMsg, event)
	if err != nil {
		return nftoken.DeliverResult{}, err
	}
	return nftoken.DeliverResult{Tags: tags}, nil
}

func (h UpdateApprovalHandler) validate(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*UpdateApprovalMsg, *Token, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	msg, ok := rmsg.(*UpdateApprovalMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrMsg, rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	token, err := h.control.Token(db, msg.TokenId)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, token.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the token owner")
	}
	return msg, token, nil
}
