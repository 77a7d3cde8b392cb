package escrow

import (
	"testing"

	"cosmossdk.io/math"

	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/quickextest"
	"github.com/supreme2580/QiuckEx/quickextest/assert"
	"github.com/supreme2580/QiuckEx/store"
)

func TestEscrowValidate(t *testing.T) {
	alice := quickextest.NewCondition().Address()

	cases := map[string]struct {
		esc     *Escrow
		wantErr *errors.Error
	}{
		"valid pending": {
			esc: &Escrow{Ticker: "QEX", Amount: math.NewInt(100), Depositor: alice, Status: Status_PENDING},
		},
		"valid spent": {
			esc: &Escrow{Ticker: "QEX", Amount: math.NewInt(100), Depositor: alice, Status: Status_SPENT},
		},
		"zero amount": {
			esc:     &Escrow{Ticker: "QEX", Amount: math.NewInt(0), Depositor: alice, Status: Status_PENDING},
			wantErr: errors.ErrAmount,
		},
		"missing ticker": {
			esc:     &Escrow{Amount: math.NewInt(100), Depositor: alice, Status: Status_PENDING},
			wantErr: errors.ErrCurrency,
		},
		"missing depositor": {
			esc:     &Escrow{Ticker: "QEX", Amount: math.NewInt(100), Status: Status_PENDING},
			wantErr: errors.ErrEmpty,
		},
		"invalid status": {
			esc:     &Escrow{Ticker: "QEX", Amount: math.NewInt(100), Depositor: alice},
			wantErr: errors.ErrState,
		},
		"expired is not a storable status": {
			esc:     &Escrow{Ticker: "QEX", Amount: math.NewInt(100), Depositor: alice, Status: Status_EXPIRED},
			wantErr: errors.ErrState,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantErr == nil {
				assert.Nil(t, tc.esc.Validate())
			} else {
				assert.IsErr(t, tc.wantErr, tc.esc.Validate())
			}
		})
	}
}

func TestBucketRoundTrip(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	alice := quickextest.NewCondition().Address()
	digest := Commit(alice, math.NewInt(125), []byte("x"))

	stored := &Escrow{
		Ticker:    "QEX",
		Amount:    math.NewInt(125),
		Depositor: alice,
		Status:    Status_PENDING,
		CreatedAt: 1612345678,
	}
	assert.Nil(t, bucket.Save(db, digest, stored))

	loaded, err := bucket.GetEscrow(db, digest)
	assert.Nil(t, err)
	if loaded == nil {
		t.Fatal("record not found")
	}
	assert.Equal(t, stored.Ticker, loaded.Ticker)
	assert.Equal(t, true, stored.Amount.Equal(loaded.Amount))
	assert.Equal(t, stored.Depositor, loaded.Depositor)
	assert.Equal(t, stored.Status, loaded.Status)
	assert.Equal(t, stored.CreatedAt, loaded.CreatedAt)

	missing, err := bucket.GetEscrow(db, Commit(alice, math.NewInt(1), []byte("y")))
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestCustodyIsPerDigest(t *testing.T) {
	alice := quickextest.NewCondition().Address()
	a := Custody(Commit(alice, math.NewInt(1), []byte("a"))).Address()
	b := Custody(Commit(alice, math.NewInt(1), []byte("b"))).Address()
	if a.Equals(b) {
		t.Fatal("custody addresses must differ per commitment")
	}
	assert.Nil(t, a.Validate())
}
