/*
Package std wires the individual extensions into one runnable stack:
the decorator chain, the message router and the genesis initializers.

Use it as the reference assembly. Applications with custom needs can
build their own chain from the same pieces.
*/
package std

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/app"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/x"
	"github.com/supreme2580/QiuckEx/x/cash"
	"github.com/supreme2580/QiuckEx/x/escrow"
	"github.com/supreme2580/QiuckEx/x/privacy"
	"github.com/supreme2580/QiuckEx/x/utils"
)

// Router returns a router with all message handlers registered.
func Router(auth x.Authenticator) *app.Router {
	r := app.NewRouter()
	ctrl := cash.NewController(cash.NewBucket())
	escrow.RegisterRoutes(r, auth, ctrl)
	privacy.RegisterRoutes(r, auth)
	return r
}

// QueryRouter returns a router with all query handlers registered.
func QueryRouter() quickex.QueryRouter {
	r := quickex.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		escrow.RegisterQuery,
		privacy.RegisterQuery,
	)
	return r
}

// Stack wraps the router with the standard decorator chain. Every
// call is logged, panics become errors, escrow operations respect the
// pause flag, and each delivery runs inside a savepoint so a failing
// handler leaves no partial writes behind.
func Stack(auth x.Authenticator) quickex.Handler {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		escrow.NewPauseDecorator(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(Router(auth))
}

// Initializers returns the genesis initializers in execution order.
func Initializers() []quickex.Initializer {
	return []quickex.Initializer{
		cash.Initializer{},
		escrow.Initializer{},
	}
}

// Health reports whether the backing store responds. It performs a
// single read against a key that is never written, so a nil error
// means the store is reachable and serving.
func Health(db quickex.ReadOnlyKVStore) error {
	if _, err := db.Get([]byte("_health")); err != nil {
		return errors.Wrap(err, "store unreachable")
	}
	return nil
}
