package cash

import (
	quickex "github.com/supreme2580/QiuckEx"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use quickex.Address, so address in hex, not base64
type GenesisAccount struct {
	Address quickex.Address `json:"address"`
	Set
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ quickex.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts quickex.Options, kv quickex.KVStore) error {
	accts := []GenesisAccount{}
	err := opts.ReadOptions(optKey, &accts)
	if err != nil {
		return err
	}
	bucket := NewBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return err
		}
		wallet, err := WalletWith(acct.Address, acct.Set.Coins...)
		if err != nil {
			return err
		}
		err = bucket.Save(kv, wallet)
		if err != nil {
			return err
		}
	}
	return nil
}

// RegisterQuery will register the wallet bucket as "/wallets"
func RegisterQuery(qr quickex.QueryRouter) {
	NewBucket().Register("wallets", qr)
}
