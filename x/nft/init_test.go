package nft

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
	"github.com/iov-one/nftoken/tokentest"
	"github.com/iov-one/nftoken/tokentest/assert"
)

func TestGenesisInitialSupply(t *testing.T) {
	admin := tokentest.NewCondition().Address()

	opts := nftoken.Options{
		"nft": json.RawMessage(fmt.Sprintf(`{
			"admin": %q,
			"initial_supply": 10,
			"restrict_mint": true
		}`, admin.String())),
	}

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	control := NewController()
	assert.Equal(t, int64(10), control.TotalMinted(db))

	cnt, err := control.CountOf(db, admin)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), cnt)

	token, err := control.Token(db, 10)
	assert.Nil(t, err)
	assert.Equal(t, admin, token.Owner)

	info, err := newRegistryBucket().GetInfo(db)
	assert.Nil(t, err)
	assert.Equal(t, admin, info.Admin)
	assert.Equal(t, true, info.RestrictMint)
}

func TestGenesisWithoutConfiguration(t *testing.T) {
	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(nftoken.Options{}, db))

	// nothing was written, minting stays open
	info, err := newRegistryBucket().GetInfo(db)
	assert.Nil(t, err)
	if info != nil {
		t.Fatalf("registry configured from empty genesis: %v", info)
	}
	assert.Equal(t, int64(0), NewController().TotalMinted(db))
}

func TestGenesisInvalidConfiguration(t *testing.T) {
	admin := tokentest.NewCondition().Address()

	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
	}{
		"restricted without admin": {
			raw:     `{"restrict_mint": true}`,
			wantErr: errors.ErrEmpty,
		},
		"initial supply without admin": {
			raw:     `{"initial_supply": 4}`,
			wantErr: errors.ErrEmpty,
		},
		"negative initial supply": {
			raw:     fmt.Sprintf(`{"admin": %q, "initial_supply": -2}`, admin.String()),
			wantErr: errors.ErrAmount,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			var ini Initializer
			err := ini.FromGenesis(nftoken.Options{"nft": json.RawMessage(tc.raw)}, db)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
