package escrow

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/errors"
)

// PauseDecorator rejects escrow operations while the configuration
// pause flag is set. Configuration updates always pass through so the
// owner can unpause. Messages of other extensions are not touched.
type PauseDecorator struct{}

var _ quickex.Decorator = PauseDecorator{}

// NewPauseDecorator creates the pause guard.
func NewPauseDecorator() PauseDecorator {
	return PauseDecorator{}
}

// Check enforces the pause flag before passing the transaction on.
func (d PauseDecorator) Check(ctx quickex.Context, store quickex.KVStore, tx quickex.Tx, next quickex.Checker) (*quickex.CheckResult, error) {
	if err := d.assertRunning(store, tx); err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver enforces the pause flag before passing the transaction on.
func (d PauseDecorator) Deliver(ctx quickex.Context, store quickex.KVStore, tx quickex.Tx, next quickex.Deliverer) (*quickex.DeliverResult, error) {
	if err := d.assertRunning(store, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d PauseDecorator) assertRunning(store quickex.KVStore, tx quickex.Tx) error {
	switch quickex.GetPath(tx) {
	case pathDepositMsg, pathWithdrawMsg, pathCreateEscrowMsg:
	default:
		return nil
	}
	conf, err := loadConf(store)
	switch {
	case err == nil:
		if conf.Paused {
			return errors.Wrap(ErrPaused, "operations are suspended")
		}
		return nil
	case errors.ErrNotFound.Is(err):
		// Without a configuration the extension cannot be paused.
		return nil
	default:
		return err
	}
}
