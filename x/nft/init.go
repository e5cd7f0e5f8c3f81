package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

// Initializer fulfils the Initializer interface to load registry
// configuration from the genesis file.
type Initializer struct{}

var _ nftoken.Initializer = (*Initializer)(nil)

// FromGenesis will parse the initial registry setup from the genesis
// and save it to the database. Without an "nft" section minting stays
// open to everyone and no tokens exist at the start.
func (Initializer) FromGenesis(opts nftoken.Options, db nftoken.KVStore) error {
	var state struct {
		Admin         nftoken.Address `json:"admin"`
		InitialSupply int64           `json:"initial_supply"`
		RestrictMint  bool            `json:"restrict_mint"`
	}
	if err := opts.ReadOptions("nft", &state); err != nil {
		return errors.Wrap(err, "options")
	}
	if len(state.Admin) == 0 && !state.RestrictMint && state.InitialSupply == 0 {
		return nil
	}

	if state.InitialSupply < 0 {
		return errors.Wrapf(errors.ErrAmount, "initial supply %d", state.InitialSupply)
	}
	if state.InitialSupply > 0 && len(state.Admin) == 0 {
		return errors.Wrap(errors.ErrEmpty, "initial supply without admin")
	}

	info := &RegistryInfo{
		Admin:        state.Admin,
		RestrictMint: state.RestrictMint,
	}
	if err := newRegistryBucket().SetInfo(db, info); err != nil {
		return err
	}

	if state.InitialSupply > 0 {
		control := NewController()
		if _, _, err := control.Mint(db, state.Admin, state.InitialSupply); err != nil {
			return errors.Wrap(err, "initial supply")
		}
	}
	return nil
}
