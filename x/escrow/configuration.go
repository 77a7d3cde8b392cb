package escrow

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/gconf"
	"github.com/supreme2580/QiuckEx/x"
)

// pkgName scopes the gconf singleton of this extension.
const pkgName = "escrow"

var _ gconf.OwnedConfig = (*Configuration)(nil)

// Validate ensures the configuration can be persisted. An owner is
// required, without one the configuration could never be updated
// again.
func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// NewConfigHandler returns the handler for the configuration update
// message. Updates replace the configuration wholesale and must be
// signed by the current owner. The configuration must be created via
// the genesis, there is no bootstrap admin.
func NewConfigHandler(auth x.Authenticator) quickex.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(pkgName, &conf, auth, nil)
}
