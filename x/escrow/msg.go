package escrow

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/coin"
	"github.com/supreme2580/QiuckEx/errors"
)

const (
	pathDepositMsg             = "escrow/deposit"
	pathWithdrawMsg            = "escrow/withdraw"
	pathCreateEscrowMsg        = "escrow/create"
	pathUpdateConfigurationMsg = "escrow/update_configuration"
)

var _ quickex.Msg = (*DepositMsg)(nil)
var _ quickex.Msg = (*WithdrawMsg)(nil)
var _ quickex.Msg = (*CreateEscrowMsg)(nil)
var _ quickex.Msg = (*UpdateConfigurationMsg)(nil)

// Path fulfills quickex.Msg interface to allow routing
func (DepositMsg) Path() string {
	return pathDepositMsg
}

// Path fulfills quickex.Msg interface to allow routing
func (WithdrawMsg) Path() string {
	return pathWithdrawMsg
}

// Path fulfills quickex.Msg interface to allow routing
func (CreateEscrowMsg) Path() string {
	return pathCreateEscrowMsg
}

// Path fulfills quickex.Msg interface to allow routing
func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

// Validate makes sure that this is sensible. The amount is checked
// first so that a non-positive value is rejected before anything else
// is looked at.
func (m *DepositMsg) Validate() error {
	c := coin.NewCoin(m.Amount, m.Ticker)
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !c.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit amount must be positive")
	}
	if len(m.Commitment) != CommitmentSize {
		return errors.Wrapf(errors.ErrInput, "commitment must be %d bytes", CommitmentSize)
	}
	return m.Depositor.Validate()
}

// Validate makes sure that this is sensible. The amount is checked
// first so that a non-positive value is rejected before the ledger is
// consulted.
func (m *WithdrawMsg) Validate() error {
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "withdraw amount must be positive")
	}
	if m.Amount.BigInt().BitLen() > coin.MaxAmountBits {
		return errors.Wrap(errors.ErrOverflow, "withdraw amount out of range")
	}
	if len(m.Salt) == 0 {
		return errors.Wrap(errors.ErrEmpty, "salt")
	}
	return m.Claimant.Validate()
}

// Validate makes sure both parties are set.
func (m *CreateEscrowMsg) Validate() error {
	if err := m.Src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := m.Dst.Validate(); err != nil {
		return errors.Wrap(err, "dst")
	}
	return nil
}

// Validate requires a complete configuration as payload.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return m.Patch.Validate()
}
