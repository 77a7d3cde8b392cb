package coin

import (
	"regexp"

	"cosmossdk.io/math"

	"github.com/supreme2580/QiuckEx/errors"
)

// IsCC is the RegExp to ensure valid currency codes
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// MaxAmountBits bounds stored amounts to what fits a signed 128 bit
// integer, matching the widest amount the wire format carries.
const MaxAmountBits = 127

// NewCoin creates a new coin object
func NewCoin(amount math.Int, ticker string) Coin {
	return Coin{
		Ticker: ticker,
		Amount: amount,
	}
}

// NewCoinFromInt64 is a convenience constructor for small amounts.
func NewCoinFromInt64(amount int64, ticker string) Coin {
	return NewCoin(math.NewInt(amount), ticker)
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount int64, ticker string) *Coin {
	c := NewCoinFromInt64(amount, ticker)
	return &c
}

// ID returns a coin ticker name.
func (c Coin) ID() string {
	return c.Ticker
}

// Add combines two coins.
// Returns error if they are of different currencies, or if the
// combination would leave the allowed amount range.
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins represents no value and does not have a ticker
	// set then it has no influence on the addition result.
	if c.Ticker == "" && c.IsZero() {
		return o, nil
	}
	if o.Ticker == "" && o.IsZero() {
		return c, nil
	}

	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Ticker, o.Ticker)
	}

	sum := Coin{
		Ticker: c.Ticker,
		Amount: c.Amount.Add(o.Amount),
	}
	if sum.Amount.BigInt().BitLen() > MaxAmountBits {
		return Coin{}, errors.ErrOverflow
	}
	return sum, nil
}

// Negative returns the opposite coins value
//   c.Add(c.Negative()).IsZero() == true
func (c Coin) Negative() Coin {
	return Coin{
		Ticker: c.Ticker,
		Amount: c.Amount.Neg(),
	}
}

// Subtract given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Compare will check values of two coins, without
// inspecting the currency code. It is up to the caller
// to determine if they want to check this.
//
// Returns 1 if c is larger, -1 if o is larger, 0 if equal
func (c Coin) Compare(o Coin) int {
	return c.normalized().BigInt().Cmp(o.normalized().BigInt())
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker && c.normalized().Equal(o.normalized())
}

// IsEmpty returns true on null or zero amount
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true if the amount is 0
func (c Coin) IsZero() bool {
	return c.normalized().IsZero()
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.normalized().IsPositive()
}

// IsNonNegative returns true if the value is 0 or higher
func (c Coin) IsNonNegative() bool {
	return !c.normalized().IsNegative()
}

// IsGTE returns true if c is same type and at least as large as o.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Compare(o) >= 0
}

// SameType returns true if they have the same currency
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{
		Ticker: c.Ticker,
		Amount: c.Amount,
	}
}

// Validate ensures that the coin has a valid currency code and that the
// amount is initialized and within the allowed range. It accepts negative
// values, so you may want to make other checks in your business logic.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker)
	}
	if c.Amount.IsNil() {
		return errors.Wrap(errors.ErrAmount, "amount not initialized")
	}
	if c.Amount.BigInt().BitLen() > MaxAmountBits {
		return errors.Wrap(errors.ErrOverflow, "amount out of range")
	}
	return nil
}

// String provides a human readable representation of the coin
func (c Coin) String() string {
	return c.normalized().String() + " " + c.Ticker
}

// normalized protects against operations on an uninitialized amount.
func (c Coin) normalized() math.Int {
	if c.Amount.IsNil() {
		return math.ZeroInt()
	}
	return c.Amount
}
