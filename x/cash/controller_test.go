package cash

import (
	"testing"

	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/coin"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/quickextest"
	"github.com/supreme2580/QiuckEx/quickextest/assert"
	"github.com/supreme2580/QiuckEx/store"
)

func TestMoveCoins(t *testing.T) {
	alice := quickextest.NewCondition().Address()
	bob := quickextest.NewCondition().Address()
	charlie := quickextest.NewCondition().Address()

	qex := func(amount int64) coin.Coin {
		return coin.NewCoinFromInt64(amount, "QEX")
	}

	cases := map[string]struct {
		funded      coin.Coin
		move        coin.Coin
		dest        quickex.Address
		wantErr     *errors.Error
		wantSrcRest coin.Coin
	}{
		"full transfer to a new account": {
			funded:      qex(100),
			move:        qex(100),
			dest:        bob,
			wantSrcRest: qex(0),
		},
		"partial transfer": {
			funded:      qex(100),
			move:        qex(37),
			dest:        charlie,
			wantSrcRest: qex(63),
		},
		"insufficient funds": {
			funded:  qex(5),
			move:    qex(100),
			dest:    bob,
			wantErr: errors.ErrInsufficientAmount,
		},
		"zero amount is rejected": {
			funded:  qex(5),
			move:    qex(0),
			dest:    bob,
			wantErr: errors.ErrAmount,
		},
		"negative amount is rejected": {
			funded:  qex(5),
			move:    qex(-2),
			dest:    bob,
			wantErr: errors.ErrAmount,
		},
		"wrong currency": {
			funded:  qex(5),
			move:    coin.NewCoinFromInt64(5, "BTC"),
			dest:    bob,
			wantErr: errors.ErrInsufficientAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())

			assert.Nil(t, ctrl.IssueCoins(db, alice, tc.funded))

			err := ctrl.MoveCoins(db, alice, tc.dest, tc.move)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			dstCoins, err := ctrl.Balance(db, tc.dest)
			assert.Nil(t, err)
			assert.Equal(t, true, dstCoins.Contains(tc.move))

			srcCoins, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			if tc.wantSrcRest.IsZero() {
				assert.Equal(t, true, srcCoins.IsEmpty())
			} else {
				assert.Equal(t, true, srcCoins.Contains(tc.wantSrcRest))
			}
		})
	}
}

func TestMoveCoinsFromMissingAccount(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	src := quickextest.NewCondition().Address()
	dest := quickextest.NewCondition().Address()

	err := ctrl.MoveCoins(db, src, dest, coin.NewCoinFromInt64(10, "QEX"))
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	addr := quickextest.NewCondition().Address()
	qex := coin.NewCoinFromInt64(1000, "QEX")

	assert.Nil(t, ctrl.IssueCoins(db, addr, qex))
	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoinFromInt64(234, "BTC")))

	balance, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, 2, balance.Count())
	assert.Equal(t, true, balance.Contains(qex))

	// issuing can also take away
	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoinFromInt64(-234, "BTC")))
	balance, err = ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, 1, balance.Count())
}
