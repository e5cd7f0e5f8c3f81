package nft

import (
	"encoding/binary"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/orm"
)

var _ orm.CloneableData = (*Token)(nil)

// Validate ensures the token refers to valid addresses.
func (t *Token) Validate() error {
	if err := t.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(t.Approved) != 0 {
		if err := t.Approved.Validate(); err != nil {
			return errors.Wrap(err, "approved")
		}
	}
	return nil
}

// Copy makes a new token with the same data
func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Owner:    t.Owner.Clone(),
		Approved: t.Approved.Clone(),
	}
}

var _ orm.CloneableData = (*TokenCount)(nil)

// Validate ensures the count is never negative.
func (c *TokenCount) Validate() error {
	if c.Count < 0 {
		return errors.Wrapf(errors.ErrState, "negative count %d", c.Count)
	}
	return nil
}

// Copy makes a new count with the same data
func (c *TokenCount) Copy() orm.CloneableData {
	return &TokenCount{
		Count: c.Count,
	}
}

var _ orm.CloneableData = (*RegistryInfo)(nil)

// Validate ensures a restricted registry always names an admin.
func (i *RegistryInfo) Validate() error {
	if len(i.Admin) != 0 {
		if err := i.Admin.Validate(); err != nil {
			return errors.Wrap(err, "admin")
		}
	} else if i.RestrictMint {
		return errors.Wrap(errors.ErrEmpty, "restricted registry without admin")
	}
	return nil
}

// Copy makes a new registry info with the same data
func (i *RegistryInfo) Copy() orm.CloneableData {
	return &RegistryInfo{
		Admin:        i.Admin.Clone(),
		RestrictMint: i.RestrictMint,
	}
}

// TokenKey returns the bucket key of the token with the given id,
// the big endian encoding of the id.
func TokenKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// TokenBucket is a type-safe wrapper around a bucket of Token.
type TokenBucket struct {
	orm.Bucket
}

// NewTokenBucket initializes a TokenBucket with its owner index.
func NewTokenBucket() TokenBucket {
	return TokenBucket{
		Bucket: orm.NewBucket("nft",
			orm.NewSimpleObj(nil, &Token{})).
			WithIndex("owner", ownerIndexer, false),
	}
}

func ownerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	token, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Token")
	}
	return token.Owner, nil
}

// GetToken loads the token with the given id, or nil if not minted.
func (b TokenBucket) GetToken(db nftoken.ReadOnlyKVStore, id uint64) (*Token, error) {
	obj, err := b.Get(db, TokenKey(id))
	if err != nil || obj == nil {
		return nil, err
	}
	token, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return token, nil
}

// Save persists the token under its id.
func (b TokenBucket) Save(db nftoken.KVStore, id uint64, token *Token) error {
	obj := orm.NewSimpleObj(TokenKey(id), token)
	return b.Bucket.Save(db, obj)
}

// CountBucket is a type-safe wrapper around a bucket of TokenCount,
// keyed by the owner address.
type CountBucket struct {
	orm.Bucket
}

// NewCountBucket initializes a CountBucket.
func NewCountBucket() CountBucket {
	return CountBucket{
		Bucket: orm.NewBucket("balance",
			orm.NewSimpleObj(nil, &TokenCount{})),
	}
}

// CountOf returns the number of tokens held by the owner. Addresses
// that never held a token report zero.
func (b CountBucket) CountOf(db nftoken.ReadOnlyKVStore, owner nftoken.Address) (int64, error) {
	obj, err := b.Get(db, owner)
	if err != nil || obj == nil {
		return 0, err
	}
	count, ok := obj.Value().(*TokenCount)
	if !ok {
		return 0, errors.WithType(errors.ErrModel, obj.Value())
	}
	return count.Count, nil
}

// Add adjusts the count of the owner by delta, which may be negative.
func (b CountBucket) Add(db nftoken.KVStore, owner nftoken.Address, delta int64) error {
	cnt, err := b.CountOf(db, owner)
	if err != nil {
		return err
	}
	obj := orm.NewSimpleObj(owner, &TokenCount{Count: cnt + delta})
	return b.Bucket.Save(db, obj)
}

// registryInfoKey is the fixed key of the RegistryInfo singleton.
var registryInfoKey = []byte("info")

type registryBucket struct {
	orm.Bucket
}

func newRegistryBucket() registryBucket {
	return registryBucket{
		Bucket: orm.NewBucket("registry",
			orm.NewSimpleObj(nil, &RegistryInfo{})),
	}
}

func (b registryBucket) GetInfo(db nftoken.ReadOnlyKVStore) (*RegistryInfo, error) {
	obj, err := b.Get(db, registryInfoKey)
	if err != nil || obj == nil {
		return nil, err
	}
	info, ok := obj.Value().(*RegistryInfo)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return info, nil
}

func (b registryBucket) SetInfo(db nftoken.KVStore, info *RegistryInfo) error {
	obj := orm.NewSimpleObj(registryInfoKey, info)
	return b.Bucket.Save(db, obj)
}
