package escrow

import (
	"encoding/hex"

	"github.com/tendermint/tendermint/libs/common"

	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/coin"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/orm"
	"github.com/supreme2580/QiuckEx/x"
	"github.com/supreme2580/QiuckEx/x/cash"
)

const (
	// pay deposit cost up-front
	depositCost  int64 = 300
	withdrawCost int64 = 0
	createCost   int64 = 100
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r quickex.Registry, auth x.Authenticator, ctrl cash.Controller) {
	bucket := NewBucket()

	r.Handle(pathDepositMsg, DepositHandler{auth, bucket, ctrl})
	r.Handle(pathWithdrawMsg, WithdrawHandler{auth, bucket, ctrl})
	r.Handle(pathCreateEscrowMsg, CreateEscrowHandler{auth, newRefBucket()})
	r.Handle(pathUpdateConfigurationMsg, NewConfigHandler(auth))
}

// RegisterQuery will register the escrow bucket as "/escrows"
func RegisterQuery(qr quickex.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

//---- deposit

// DepositHandler locks funds under a commitment digest.
type DepositHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   cash.CoinMover
}

var _ quickex.Handler = DepositHandler{}

// Check does the validation and sets the cost of the transaction
func (h DepositHandler) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quickex.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver moves the funds into per-commitment custody and records the
// pending escrow. Funds move first, the record is written only once
// the transfer went through.
func (h DepositHandler) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	amount := coin.NewCoin(msg.Amount, msg.Ticker)
	if err := h.bank.MoveCoins(db, msg.Depositor, Custody(msg.Commitment).Address(), amount); err != nil {
		return nil, errors.Wrap(err, "cannot fund custody")
	}

	var createdAt quickex.UnixTime
	if t, ok := quickex.BlockTime(ctx); ok {
		createdAt = quickex.AsUnixTime(t)
	}
	esc := &Escrow{
		Ticker:    msg.Ticker,
		Amount:    msg.Amount,
		Depositor: msg.Depositor,
		Status:    Status_PENDING,
		CreatedAt: createdAt,
	}
	if err := h.bucket.Save(db, msg.Commitment, esc); err != nil {
		return nil, err
	}

	res := &quickex.DeliverResult{
		Data: msg.Commitment,
		Tags: []common.KVPair{
			quickex.NewTag("action", "deposit"),
			quickex.NewTag("commitment", hex.EncodeToString(msg.Commitment)),
			quickex.NewTag("amount", amount.String()),
		},
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h DepositHandler) validate(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := quickex.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Depositor must authorize this
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor did not sign transaction")
	}

	has, err := h.bucket.Has(db, msg.Commitment)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, errors.Wrapf(ErrCommitmentTaken, "commitment %X", msg.Commitment)
	}
	return &msg, nil
}

//---- withdraw

// WithdrawHandler releases the funds locked under a commitment to the
// claimant that reveals it.
type WithdrawHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   cash.CoinMover
}

var _ quickex.Handler = WithdrawHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h WithdrawHandler) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quickex.CheckResult{GasAllocated: withdrawCost}, nil
}

// Deliver flips the record to spent and then moves the funds from
// custody to the claimant. A spent record is persisted before the
// transfer, so a failed transfer aborts the whole transaction and no
// state where funds left custody under a pending record can exist.
func (h WithdrawHandler) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	digest := Commit(msg.Claimant, msg.Amount, msg.Salt)

	esc, err := h.bucket.GetEscrow(db, digest)
	if err != nil {
		return nil, err
	}
	if esc == nil {
		return nil, errors.Wrapf(ErrNoCommitment, "commitment %X", digest)
	}
	if esc.Status != Status_PENDING {
		return nil, errors.Wrapf(ErrAlreadySpent, "commitment %X", digest)
	}
	// The amount is bound into the digest, so a lookup hit with a
	// different stored amount means corrupted state.
	if !esc.Amount.Equal(msg.Amount) {
		return nil, errors.Wrapf(ErrCommitmentMismatch, "commitment %X", digest)
	}

	esc.Status = Status_SPENT
	if err := h.bucket.Save(db, digest, esc); err != nil {
		return nil, err
	}

	amount := coin.NewCoin(esc.Amount, esc.Ticker)
	if err := h.bank.MoveCoins(db, Custody(digest).Address(), msg.Claimant, amount); err != nil {
		return nil, errors.Wrap(err, "cannot release custody")
	}

	res := &quickex.DeliverResult{
		Data: digest,
		Tags: []common.KVPair{
			quickex.NewTag("action", "withdraw"),
			quickex.NewTag("commitment", hex.EncodeToString(digest)),
			quickex.NewTag("claimant", msg.Claimant.String()),
		},
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h WithdrawHandler) validate(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*WithdrawMsg, error) {
	var msg WithdrawMsg
	if err := quickex.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Claimant must authorize this
	if !h.auth.HasAddress(ctx, msg.Claimant) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "claimant did not sign transaction")
	}
	return &msg, nil
}

//---- create

// CreateEscrowHandler registers a numbered escrow reference. The
// reference holds no funds, it only reserves an id for both parties.
type CreateEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.Bucket
}

var _ quickex.Handler = CreateEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateEscrowHandler) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quickex.CheckResult{GasAllocated: createCost}, nil
}

// Deliver assigns the next sequence id and stores the reference under
// it. The id is returned as result data.
func (h CreateEscrowHandler) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	seq := h.bucket.Sequence(orm.SeqID)
	id, err := seq.NextVal(db)
	if err != nil {
		return nil, err
	}

	ref := &EscrowRef{Src: msg.Src, Dst: msg.Dst}
	if err := h.bucket.Save(db, orm.NewSimpleObj(id, ref)); err != nil {
		return nil, err
	}

	return &quickex.DeliverResult{Data: id}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateEscrowHandler) validate(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*CreateEscrowMsg, error) {
	var msg CreateEscrowMsg
	if err := quickex.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}
