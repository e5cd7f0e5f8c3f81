package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/orm"
)

// TotalQuery reports the number of tokens ever minted. It answers the
// plain key query mod only and ignores the request data.
type TotalQuery struct{}

var _ nftoken.QueryHandler = TotalQuery{}

// Query returns the mint counter as a single 8 byte big endian model.
func (TotalQuery) Query(db nftoken.ReadOnlyKVStore, mod string, data []byte) ([]nftoken.Model, error) {
	if mod != nftoken.KeyQueryMod {
		return nil, errors.Wrap(errors.ErrHuman, "not implemented: "+mod)
	}
	minted := orm.NewSequence("nft", orm.SeqID)
	total, raw := minted.Latest(db)
	if raw == nil {
		raw = orm.EncodeSequence(total)
	}
	return []nftoken.Model{{Key: []byte("nfts:total"), Value: raw}}, nil
}
