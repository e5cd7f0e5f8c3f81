package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/orm"
)

// Controller is the functionality needed by the message handlers. The
// interface is exposed so other extensions can manipulate tokens
// without going through the message server.
type Controller interface {
	// Mint creates amount new tokens owned by recipient and returns
	// the first id of the allocated range together with the total
	// number of tokens ever minted.
	Mint(db nftoken.KVStore, recipient nftoken.Address, amount int64) (first uint64, total int64, err error)
	// Transfer moves the token to dst. From must be the current owner.
	Transfer(db nftoken.KVStore, from, dst nftoken.Address, id uint64) error
	// SetApproval grants the transfer right of one token to delegate,
	// or revokes it again. Any previous grant is overwritten.
	SetApproval(db nftoken.KVStore, id uint64, delegate nftoken.Address, approved bool) error
	// Token loads the token state, failing with ErrUnknownToken when
	// the id was never minted.
	Token(db nftoken.ReadOnlyKVStore, id uint64) (*Token, error)
	// CountOf returns the number of tokens held by owner.
	CountOf(db nftoken.ReadOnlyKVStore, owner nftoken.Address) (int64, error)
	// TotalMinted returns the number of tokens ever minted.
	TotalMinted(db nftoken.ReadOnlyKVStore) int64
}

// BaseController implements Controller over the token and count
// buckets. All mutations keep the per owner counts consistent with the
// ownership records.
type BaseController struct {
	tokens TokenBucket
	counts CountBucket
	minted orm.Sequence
}

var _ Controller = BaseController{}

// NewController returns a controller over the default buckets.
func NewController() BaseController {
	return BaseController{
		tokens: NewTokenBucket(),
		counts: NewCountBucket(),
		minted: orm.NewSequence("nft", orm.SeqID),
	}
}

// Mint allocates a dense range of ids from the minted sequence, writes
// one token per id owned by the recipient and credits the recipient
// count. With the sequence starting at zero the very first token gets
// id 1.
func (c BaseController) Mint(db nftoken.KVStore, recipient nftoken.Address, amount int64) (uint64, int64, error) {
	if amount <= 0 {
		return 0, 0, errors.Wrapf(errors.ErrAmount, "mint %d tokens", amount)
	}
	total := c.minted.NextN(db, amount)
	first := uint64(total - amount + 1)
	for i := int64(0); i < amount; i++ {
		token := &Token{Owner: recipient}
		if err := c.tokens.Save(db, first+uint64(i), token); err != nil {
			return 0, 0, err
		}
	}
	if err := c.counts.Add(db, recipient, amount); err != nil {
		return 0, 0, err
	}
	return first, total, nil
}

// Transfer reassigns the token to dst and updates both counts. Any
// outstanding approval is cleared so that a past delegate can never
// move the token for its new owner.
func (c BaseController) Transfer(db nftoken.KVStore, from, dst nftoken.Address, id uint64) error {
	token, err := c.Token(db, id)
	if err != nil {
		return err
	}
	if !token.Owner.Equals(from) {
		return errors.Wrap(errors.ErrUnauthorized, "not the token owner")
	}
	if dst.Equals(from) {
		return errors.Wrap(errors.ErrInput, "destination already owns the token")
	}

	token.Owner = dst
	token.Approved = nil
	if err := c.tokens.Save(db, id, token); err != nil {
		return err
	}
	if err := c.counts.Add(db, from, -1); err != nil {
		return err
	}
	return c.counts.Add(db, dst, 1)
}

// SetApproval writes the single approval slot of the token. Granting
// replaces whatever delegate was approved before. Revoking requires
// the named delegate to be the one currently approved.
func (c BaseController) SetApproval(db nftoken.KVStore, id uint64, delegate nftoken.Address, approved bool) error {
	token, err := c.Token(db, id)
	if err != nil {
		return err
	}
	if approved {
		if delegate.Equals(token.Owner) {
			return errors.Wrap(errors.ErrInput, "cannot approve the owner")
		}
		token.Approved = delegate
	} else {
		if !token.Approved.Equals(delegate) {
			return errors.Wrap(ErrNoApproval, delegate.String())
		}
		token.Approved = nil
	}
	return c.tokens.Save(db, id, token)
}

// Token loads the token state, failing with ErrUnknownToken when the
// id was never minted.
func (c BaseController) Token(db nftoken.ReadOnlyKVStore, id uint64) (*Token, error) {
	token, err := c.tokens.GetToken(db, id)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, errors.Wrapf(ErrUnknownToken, "id %d", id)
	}
	return token, nil
}

// CountOf returns the number of tokens held by owner.
func (c BaseController) CountOf(db nftoken.ReadOnlyKVStore, owner nftoken.Address) (int64, error) {
	return c.counts.CountOf(db, owner)
}

// TotalMinted returns the number of tokens ever minted. Tokens are
// never burned, so this equals the highest id handed out.
func (c BaseController) TotalMinted(db nftoken.ReadOnlyKVStore) int64 {
	total, _ := c.minted.Latest(db)
	return total
}
