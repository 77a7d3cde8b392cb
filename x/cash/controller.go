package cash

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/coin"
	"github.com/supreme2580/QiuckEx/errors"
)

// CoinMover is the interface that must be fulfilled to move coins
// between accounts. Extensions that only transfer funds should
// depend on this, not on the full Controller.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. This operation is atomic.
	MoveCoins(store quickex.KVStore, src quickex.Address, dest quickex.Address, amount coin.Coin) error
}

// Controller is the functionality needed by cash.Handler and cash.Decorator.
// BaseController should work plenty fine, but you can add other logic if so
// desired
type Controller interface {
	CoinMover

	// Balance returns the amount of funds stored under given account
	// address.
	Balance(quickex.ReadOnlyKVStore, quickex.Address) (coin.Coins, error)

	// IssueCoins increase the number of funds at the given account by the
	// given amount.
	IssueCoins(quickex.KVStore, quickex.Address, coin.Coin) error
}

// BaseController implements Controller interface, using WalletBucket as the
// storage engine. Wallet must be initialized before use.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored under given account address.
func (c BaseController) Balance(store quickex.ReadOnlyKVStore, src quickex.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if wallet == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "no wallet")
	}
	return wallet.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(store quickex.KVStore,
	src quickex.Address, dest quickex.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "funds %s", amount)
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(store quickex.KVStore,
	dest quickex.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	return c.bucket.Save(store, recipient)
}
