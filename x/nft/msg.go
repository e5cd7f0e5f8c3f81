package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

// Path constants are used to register the handlers and to route
// incoming transactions.
const (
	pathMintMsg             = "nft/mint"
	pathTransferMsg         = "nft/transfer"
	pathDelegateTransferMsg = "nft/transfer_from"
	pathUpdateApprovalMsg   = "nft/update_approval"
)

var (
	_ nftoken.Msg = (*MintMsg)(nil)
	_ nftoken.Msg = (*TransferMsg)(nil)
	_ nftoken.Msg = (*DelegateTransferMsg)(nil)
	_ nftoken.Msg = (*UpdateApprovalMsg)(nil)
)

// Path returns the routing path for this message.
func (MintMsg) Path() string {
	return pathMintMsg
}

// Validate makes sure that this is sensible.
func (m *MintMsg) Validate() error {
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.Amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "mint %d tokens", m.Amount)
	}
	return nil
}

// Path returns the routing path for this message.
func (TransferMsg) Path() string {
	return pathTransferMsg
}

// Validate makes sure that this is sensible.
func (m *TransferMsg) Validate() error {
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.TokenId == 0 {
		return errors.Wrap(errors.ErrInput, "token id is required")
	}
	return nil
}

// Path returns the routing path for this message.
func (DelegateTransferMsg) Path() string {
	return pathDelegateTransferMsg
}

// Validate makes sure that this is sensible.
func (m *DelegateTransferMsg) Validate() error {
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.TokenId == 0 {
		return errors.Wrap(errors.ErrInput, "token id is required")
	}
	return nil
}

// Path returns the routing path for this message.
func (UpdateApprovalMsg) Path() string {
	return pathUpdateApprovalMsg
}

// Validate makes sure that this is sensible.
func (m *UpdateApprovalMsg) Validate() error {
	if err := m.Delegate.Validate(); err != nil {
		return errors.Wrap(err, "delegate")
	}
	if m.TokenId == 0 {
		return errors.Wrap(errors.ErrInput, "token id is required")
	}
	return nil
}
