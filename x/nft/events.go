package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

// NewMintEvent returns a mint event, enforcing its invariants.
func NewMintEvent(owner nftoken.Address, total int64) (*MintEvent, error) {
	if len(owner) == 0 {
		return nil, errors.Wrap(errors.ErrHuman, "mint event without owner")
	}
	if total <= 0 {
		return nil, errors.Wrapf(errors.ErrHuman, "mint event with total %d", total)
	}
	return &MintEvent{Owner: owner, Total: total}, nil
}

// NewTransferEvent returns a transfer event, enforcing its invariants.
func NewTransferEvent(from, to nftoken.Address, id uint64) (*TransferEvent, error) {
	if from.Equals(to) {
		return nil, errors.Wrap(errors.ErrHuman, "transfer event to self")
	}
	if id == 0 {
		return nil, errors.Wrap(errors.ErrHuman, "transfer event without token")
	}
	return &TransferEvent{From: from, To: to, TokenId: id}, nil
}

// NewApprovalEvent returns an approval event, enforcing its invariants.
func NewApprovalEvent(owner, spender nftoken.Address, id uint64, approved bool) (*ApprovalEvent, error) {
	if len(owner) == 0 || len(spender) == 0 {
		return nil, errors.Wrap(errors.ErrHuman, "approval event without party")
	}
	if id == 0 {
		return nil, errors.Wrap(errors.ErrHuman, "approval event without token")
	}
	return &ApprovalEvent{
		Owner:    owner,
		Spender:  spender,
		TokenId:  id,
		Approved: approved,
	}, nil
}

// eventTags wraps a single event into the tag set of a DeliverResult.
// The tag key is the path of the message that caused the event, the
// value its serialized form.
func eventTags(path string, event nftoken.Persistent) ([]nftoken.KVPair, error) {
	value, err := event.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal event")
	}
	return []nftoken.KVPair{{Key: []byte(path), Value: value}}, nil
}
