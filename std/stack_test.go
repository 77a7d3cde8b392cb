package std

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/math"

	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/coin"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/quickextest"
	"github.com/supreme2580/QiuckEx/quickextest/assert"
	"github.com/supreme2580/QiuckEx/store"
	"github.com/supreme2580/QiuckEx/x/cash"
	"github.com/supreme2580/QiuckEx/x/escrow"
	"github.com/supreme2580/QiuckEx/x/privacy"
)

func TestFullStack(t *testing.T) {
	var (
		admin = quickextest.NewCondition()
		alice = quickextest.NewCondition()
		bob   = quickextest.NewCondition()
	)

	db := store.MemStore()
	opts := quickex.Options{
		"cash": []byte(fmt.Sprintf(
			`[{"address": %q, "coins": [{"ticker": "QEX", "amount": "1000"}]}]`,
			alice.Address())),
		"conf": []byte(fmt.Sprintf(
			`{"escrow": {"owner": %q, "paused": false}}`,
			admin.Address())),
	}
	for _, ini := range Initializers() {
		if err := ini.FromGenesis(opts, db); err != nil {
			t.Fatalf("genesis: %+v", err)
		}
	}

	auth := &quickextest.CtxAuth{Key: "auth"}
	stack := Stack(auth)

	as := func(cond quickex.Condition) quickex.Context {
		ctx := context.Background()
		ctx = quickex.WithBlockTime(ctx, time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC))
		return auth.SetConditions(ctx, cond)
	}

	amount := math.NewInt(1000)
	salt := []byte("under the doormat")
	commitment := escrow.Commit(bob.Address(), amount, salt)

	// Alice locks her funds so only the reveal can claim them.
	deliver := func(ctx quickex.Context, msg quickex.Msg) error {
		_, err := stack.Deliver(ctx, db, &quickextest.Tx{Msg: msg})
		return err
	}

	err := deliver(as(alice), &escrow.DepositMsg{
		Depositor:  alice.Address(),
		Ticker:     "QEX",
		Amount:     amount,
		Commitment: commitment,
	})
	assert.Nil(t, err)

	status, ok := escrow.GetCommitmentState(db, commitment)
	assert.Equal(t, true, ok)
	assert.Equal(t, escrow.Status_PENDING, status)

	// A wrong reveal hashes to a different digest.
	err = deliver(as(bob), &escrow.WithdrawMsg{
		Claimant: bob.Address(),
		Amount:   amount,
		Salt:     []byte("wrong"),
	})
	assert.IsErr(t, escrow.ErrNoCommitment, err)

	err = deliver(as(bob), &escrow.WithdrawMsg{
		Claimant: bob.Address(),
		Amount:   amount,
		Salt:     salt,
	})
	assert.Nil(t, err)

	ctrl := cash.NewController(cash.NewBucket())
	balance, err := ctrl.Balance(db, bob.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, balance.Equals(coin.Coins{coin.NewCoinp(1000, "QEX")}))

	status, ok = escrow.GetCommitmentState(db, commitment)
	assert.Equal(t, true, ok)
	assert.Equal(t, escrow.Status_SPENT, status)

	// The second reveal of the same commitment must not pay twice.
	err = deliver(as(bob), &escrow.WithdrawMsg{
		Claimant: bob.Address(),
		Amount:   amount,
		Salt:     salt,
	})
	assert.IsErr(t, escrow.ErrAlreadySpent, err)
}

func TestFullStackPause(t *testing.T) {
	var (
		admin = quickextest.NewCondition()
		alice = quickextest.NewCondition()
	)

	db := store.MemStore()
	opts := quickex.Options{
		"cash": []byte(fmt.Sprintf(
			`[{"address": %q, "coins": [{"ticker": "QEX", "amount": "100"}]}]`,
			alice.Address())),
		"conf": []byte(fmt.Sprintf(
			`{"escrow": {"owner": %q, "paused": true}}`,
			admin.Address())),
	}
	for _, ini := range Initializers() {
		if err := ini.FromGenesis(opts, db); err != nil {
			t.Fatalf("genesis: %+v", err)
		}
	}

	auth := &quickextest.CtxAuth{Key: "auth"}
	stack := Stack(auth)

	as := func(cond quickex.Condition) quickex.Context {
		ctx := context.Background()
		ctx = quickex.WithBlockTime(ctx, time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC))
		return auth.SetConditions(ctx, cond)
	}

	deposit := &quickextest.Tx{Msg: &escrow.DepositMsg{
		Depositor:  alice.Address(),
		Ticker:     "QEX",
		Amount:     math.NewInt(100),
		Commitment: escrow.Commit(alice.Address(), math.NewInt(100), []byte("s")),
	}}

	if _, err := stack.Deliver(as(alice), db, deposit); !escrow.ErrPaused.Is(err) {
		t.Fatalf("want paused, got %+v", err)
	}

	// The owner can lift the pause through the stack itself.
	unpause := &quickextest.Tx{Msg: &escrow.UpdateConfigurationMsg{
		Patch: &escrow.Configuration{Owner: admin.Address(), Paused: false},
	}}
	if _, err := stack.Deliver(as(admin), db, unpause); err != nil {
		t.Fatalf("unpause: %+v", err)
	}

	if _, err := stack.Deliver(as(alice), db, deposit); err != nil {
		t.Fatalf("deposit after unpause: %+v", err)
	}
}

func TestFullStackSavepointRollsBack(t *testing.T) {
	var (
		admin = quickextest.NewCondition()
		alice = quickextest.NewCondition()
	)

	db := store.MemStore()
	opts := quickex.Options{
		"cash": []byte(fmt.Sprintf(
			`[{"address": %q, "coins": [{"ticker": "QEX", "amount": "10"}]}]`,
			alice.Address())),
		"conf": []byte(fmt.Sprintf(
			`{"escrow": {"owner": %q, "paused": false}}`,
			admin.Address())),
	}
	for _, ini := range Initializers() {
		if err := ini.FromGenesis(opts, db); err != nil {
			t.Fatalf("genesis: %+v", err)
		}
	}

	auth := &quickextest.CtxAuth{Key: "auth"}
	stack := Stack(auth)
	ctx := auth.SetConditions(context.Background(), alice)

	// More than the wallet holds, so the transfer fails after
	// validation and the savepoint discards any partial write.
	commitment := escrow.Commit(alice.Address(), math.NewInt(50), []byte("s"))
	tx := &quickextest.Tx{Msg: &escrow.DepositMsg{
		Depositor:  alice.Address(),
		Ticker:     "QEX",
		Amount:     math.NewInt(50),
		Commitment: commitment,
	}}
	if _, err := stack.Deliver(ctx, db, tx); !errors.ErrInsufficientAmount.Is(err) {
		t.Fatalf("want insufficient amount, got %+v", err)
	}

	if esc := escrow.GetEscrowDetails(db, commitment); esc != nil {
		t.Fatalf("expected no record, got %#v", esc)
	}
	ctrl := cash.NewController(cash.NewBucket())
	balance, err := ctrl.Balance(db, alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, balance.Equals(coin.Coins{coin.NewCoinp(10, "QEX")}))
}

func TestFullStackPrivacy(t *testing.T) {
	var (
		admin = quickextest.NewCondition()
		alice = quickextest.NewCondition()
	)

	db := store.MemStore()
	opts := quickex.Options{
		"conf": []byte(fmt.Sprintf(
			`{"escrow": {"owner": %q, "paused": false}}`,
			admin.Address())),
	}
	for _, ini := range Initializers() {
		if err := ini.FromGenesis(opts, db); err != nil {
			t.Fatalf("genesis: %+v", err)
		}
	}

	auth := &quickextest.CtxAuth{Key: "auth"}
	stack := Stack(auth)
	ctx := auth.SetConditions(context.Background(), alice)

	for _, level := range []uint32{3, 7} {
		tx := &quickextest.Tx{Msg: &privacy.SetLevelMsg{
			Account: alice.Address(),
			Level:   level,
		}}
		if _, err := stack.Deliver(ctx, db, tx); err != nil {
			t.Fatalf("set level %d: %+v", level, err)
		}
	}

	settings, err := privacy.NewBucket().GetSettings(db, alice.Address())
	assert.Nil(t, err)
	if settings == nil {
		t.Fatal("expected settings")
	}
	assert.Equal(t, uint32(7), settings.Level)
	assert.Equal(t, []uint32{3}, settings.History)
}

// brokenStore fails every read.
type brokenStore struct {
	quickex.ReadOnlyKVStore
}

func (brokenStore) Get([]byte) ([]byte, error) {
	return nil, errors.Wrap(errors.ErrDatabase, "disk on fire")
}

func TestHealth(t *testing.T) {
	if err := Health(store.MemStore()); err != nil {
		t.Fatalf("healthy store reported: %+v", err)
	}
	if err := Health(brokenStore{}); !errors.ErrDatabase.Is(err) {
		t.Fatalf("want database error, got %+v", err)
	}
}

func TestQueryRouterPaths(t *testing.T) {
	qr := QueryRouter()
	for _, path := range []string{"/wallets", "/escrows", "/privacy"} {
		if qr.Handler(path) == nil {
			t.Errorf("no handler registered for %q", path)
		}
	}
}
