package escrow

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ quickex.Initializer = Initializer{}

// FromGenesis will parse the initial configuration from genesis and
// save it to the database. The configuration is required, without it
// no owner exists and the extension could never be paused or
// administered.
func (Initializer) FromGenesis(opts quickex.Options, kv quickex.KVStore) error {
	return gconf.InitConfig(kv, opts, pkgName, &Configuration{})
}
