package escrow

import (
	"testing"

	"cosmossdk.io/math"

	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/quickextest"
	"github.com/supreme2580/QiuckEx/quickextest/assert"
)

func TestDepositMsgValidate(t *testing.T) {
	alice := quickextest.NewCondition().Address()
	digest := Commit(alice, math.NewInt(100), []byte("salt"))

	cases := map[string]struct {
		msg     *DepositMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &DepositMsg{Depositor: alice, Ticker: "QEX", Amount: math.NewInt(100), Commitment: digest},
		},
		"zero amount": {
			msg:     &DepositMsg{Depositor: alice, Ticker: "QEX", Amount: math.NewInt(0), Commitment: digest},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg:     &DepositMsg{Depositor: alice, Ticker: "QEX", Amount: math.NewInt(-5), Commitment: digest},
			wantErr: errors.ErrAmount,
		},
		"missing amount": {
			msg:     &DepositMsg{Depositor: alice, Ticker: "QEX", Commitment: digest},
			wantErr: errors.ErrAmount,
		},
		"bad ticker": {
			msg:     &DepositMsg{Depositor: alice, Ticker: "qex!", Amount: math.NewInt(100), Commitment: digest},
			wantErr: errors.ErrCurrency,
		},
		"short commitment": {
			msg:     &DepositMsg{Depositor: alice, Ticker: "QEX", Amount: math.NewInt(100), Commitment: []byte("nope")},
			wantErr: errors.ErrInput,
		},
		"missing commitment": {
			msg:     &DepositMsg{Depositor: alice, Ticker: "QEX", Amount: math.NewInt(100)},
			wantErr: errors.ErrInput,
		},
		"bad depositor": {
			msg:     &DepositMsg{Depositor: quickex.Address("too-short"), Ticker: "QEX", Amount: math.NewInt(100), Commitment: digest},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantErr == nil {
				assert.Nil(t, tc.msg.Validate())
			} else {
				assert.IsErr(t, tc.wantErr, tc.msg.Validate())
			}
		})
	}
}

func TestWithdrawMsgValidate(t *testing.T) {
	bob := quickextest.NewCondition().Address()

	tooWide, ok := math.NewIntFromString("170141183460469231731687303715884105728")
	if !ok {
		t.Fatal("cannot parse amount")
	}

	cases := map[string]struct {
		msg     *WithdrawMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &WithdrawMsg{Claimant: bob, Amount: math.NewInt(100), Salt: []byte("s1")},
		},
		"zero amount": {
			msg:     &WithdrawMsg{Claimant: bob, Amount: math.NewInt(0), Salt: []byte("s1")},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg:     &WithdrawMsg{Claimant: bob, Amount: math.NewInt(-1), Salt: []byte("s1")},
			wantErr: errors.ErrAmount,
		},
		"missing amount": {
			msg:     &WithdrawMsg{Claimant: bob, Salt: []byte("s1")},
			wantErr: errors.ErrAmount,
		},
		"amount too wide": {
			msg:     &WithdrawMsg{Claimant: bob, Amount: tooWide, Salt: []byte("s1")},
			wantErr: errors.ErrOverflow,
		},
		"missing salt": {
			msg:     &WithdrawMsg{Claimant: bob, Amount: math.NewInt(100)},
			wantErr: errors.ErrEmpty,
		},
		"bad claimant": {
			msg:     &WithdrawMsg{Claimant: quickex.Address("x"), Amount: math.NewInt(100), Salt: []byte("s1")},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantErr == nil {
				assert.Nil(t, tc.msg.Validate())
			} else {
				assert.IsErr(t, tc.wantErr, tc.msg.Validate())
			}
		})
	}
}

func TestCreateEscrowMsgValidate(t *testing.T) {
	alice := quickextest.NewCondition().Address()
	bob := quickextest.NewCondition().Address()

	cases := map[string]struct {
		msg     *CreateEscrowMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &CreateEscrowMsg{Src: alice, Dst: bob},
		},
		"missing src": {
			msg:     &CreateEscrowMsg{Dst: bob},
			wantErr: errors.ErrEmpty,
		},
		"missing dst": {
			msg:     &CreateEscrowMsg{Src: alice},
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantErr == nil {
				assert.Nil(t, tc.msg.Validate())
			} else {
				assert.IsErr(t, tc.wantErr, tc.msg.Validate())
			}
		})
	}
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	owner := quickextest.NewCondition().Address()

	cases := map[string]struct {
		msg     *UpdateConfigurationMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &UpdateConfigurationMsg{Patch: &Configuration{Owner: owner}},
		},
		"paused with owner": {
			msg: &UpdateConfigurationMsg{Patch: &Configuration{Owner: owner, Paused: true}},
		},
		"missing patch": {
			msg:     &UpdateConfigurationMsg{},
			wantErr: errors.ErrEmpty,
		},
		"missing owner": {
			msg:     &UpdateConfigurationMsg{Patch: &Configuration{Paused: true}},
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantErr == nil {
				assert.Nil(t, tc.msg.Validate())
			} else {
				assert.IsErr(t, tc.wantErr, tc.msg.Validate())
			}
		})
	}
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "escrow/deposit", (&DepositMsg{}).Path())
	assert.Equal(t, "escrow/withdraw", (&WithdrawMsg{}).Path())
	assert.Equal(t, "escrow/create", (&CreateEscrowMsg{}).Path())
	assert.Equal(t, "escrow/update_configuration", (&UpdateConfigurationMsg{}).Path())
}
