package coin

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supreme2580/QiuckEx/errors"
)

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid coin":      {coin: NewCoinFromInt64(42, "QEX")},
		"valid negative":  {coin: NewCoinFromInt64(-42, "QEX")},
		"four letter":     {coin: NewCoinFromInt64(1, "ATOM")},
		"bad ticker":      {coin: NewCoinFromInt64(1, "qe"), wantErr: errors.ErrCurrency},
		"no ticker":       {coin: NewCoinFromInt64(1, ""), wantErr: errors.ErrCurrency},
		"nil amount":      {coin: Coin{Ticker: "QEX"}, wantErr: errors.ErrAmount},
		"amount too wide": {coin: NewCoin(math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 127)), "QEX"), wantErr: errors.ErrOverflow},
		"widest amount":   {coin: NewCoin(math.NewIntFromBigInt(maxAmount()), "QEX")},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestCoinAdd(t *testing.T) {
	a := NewCoinFromInt64(10, "QEX")
	b := NewCoinFromInt64(32, "QEX")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewCoinFromInt64(42, "QEX")))

	// adding a zero value coin without a ticker is a noop
	sum, err = a.Add(Coin{Amount: math.ZeroInt()})
	require.NoError(t, err)
	assert.True(t, sum.Equals(a))

	// mixing currencies fails
	_, err = a.Add(NewCoinFromInt64(1, "BTC"))
	assert.True(t, errors.ErrCurrency.Is(err))

	// a sum beyond the 128 bit range fails
	huge := NewCoin(math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 126)), "QEX")
	_, err = huge.Add(huge)
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestCoinString(t *testing.T) {
	// the custom stringer is the only one; the codec must not
	// generate a competing String method
	assert.Equal(t, "1000 QEX", NewCoinFromInt64(1000, "QEX").String())
	assert.Equal(t, "0 QEX", Coin{Ticker: "QEX"}.String())
}

func TestCoinSubtractAndNegative(t *testing.T) {
	a := NewCoinFromInt64(42, "QEX")

	diff, err := a.Subtract(NewCoinFromInt64(50, "QEX"))
	require.NoError(t, err)
	assert.True(t, diff.Amount.IsNegative())

	zero, err := a.Add(a.Negative())
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestCoinCompare(t *testing.T) {
	small := NewCoinFromInt64(1, "QEX")
	big := NewCoinFromInt64(1000, "QEX")

	assert.Equal(t, -1, small.Compare(big))
	assert.Equal(t, 1, big.Compare(small))
	assert.Equal(t, 0, big.Compare(big))
	assert.True(t, big.IsGTE(small))
	assert.False(t, small.IsGTE(big))
	assert.False(t, small.IsGTE(NewCoinFromInt64(0, "BTC")))
}

func TestCoinSerializationKeepsWideAmounts(t *testing.T) {
	amount, ok := math.NewIntFromString("170141183460469231731687303715884105727")
	require.True(t, ok)

	src := NewCoin(amount, "QEX")
	raw, err := src.Marshal()
	require.NoError(t, err)

	var got Coin
	require.NoError(t, got.Unmarshal(raw))
	assert.True(t, src.Equals(got))
}

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoinFromInt64(7, "QEX"),
		NewCoinFromInt64(3, "BTC"),
		NewCoinFromInt64(5, "QEX"),
	)
	require.NoError(t, err)

	// sorted by ticker, duplicates merged
	assert.Equal(t, 2, cs.Count())
	assert.Equal(t, "BTC", cs[0].Ticker)
	assert.Equal(t, "QEX", cs[1].Ticker)
	assert.True(t, cs[1].Equals(NewCoinFromInt64(12, "QEX")))

	assert.True(t, cs.Contains(NewCoinFromInt64(10, "QEX")))
	assert.False(t, cs.Contains(NewCoinFromInt64(13, "QEX")))
	assert.False(t, cs.Contains(NewCoinFromInt64(1, "ETH")))
}

func TestCoinsAddRemove(t *testing.T) {
	var cs Coins

	cs, err := cs.Add(NewCoinFromInt64(11, "QEX"))
	require.NoError(t, err)
	cs, err = cs.Add(NewCoinFromInt64(1, "BTC"))
	require.NoError(t, err)
	assert.True(t, cs.IsPositive())

	// draining a currency removes it from the set
	cs, err = cs.Subtract(NewCoinFromInt64(1, "BTC"))
	require.NoError(t, err)
	assert.Equal(t, 1, cs.Count())
	assert.Nil(t, cs.Validate())
}

// maxAmount returns the largest value that still fits the signed
// 128 bit range.
func maxAmount() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 127)
	return max.Sub(max, big.NewInt(1))
}
