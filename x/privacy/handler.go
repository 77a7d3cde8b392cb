package privacy

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/x"
)

const settingsCost int64 = 50

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r quickex.Registry, auth x.Authenticator) {
	bucket := NewBucket()

	r.Handle(pathSetLevelMsg, SetLevelHandler{auth, bucket})
	r.Handle(pathTogglePrivacyMsg, ToggleHandler{auth, bucket})
}

// RegisterQuery will register the settings bucket as "/privacy"
func RegisterQuery(qr quickex.QueryRouter) {
	NewBucket().Register("privacy", qr)
}

// SetLevelHandler replaces the account privacy level and pushes the
// previous one onto the history.
type SetLevelHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ quickex.Handler = SetLevelHandler{}

// Check does the validation and sets the cost of the transaction
func (h SetLevelHandler) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &quickex.CheckResult{GasAllocated: settingsCost}, nil
}

// Deliver updates the level. The first update creates the settings
// with an empty history, later updates push the replaced level to the
// front.
func (h SetLevelHandler) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}

	settings, err := h.bucket.GetSettings(db, msg.Account)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &Settings{}
	} else {
		settings.History = append([]uint32{settings.Level}, settings.History...)
	}
	settings.Level = msg.Level

	if err := h.bucket.Save(db, msg.Account, settings); err != nil {
		return nil, err
	}
	return &quickex.DeliverResult{}, nil
}

func (h SetLevelHandler) validate(ctx quickex.Context, tx quickex.Tx) (*SetLevelMsg, error) {
	var msg SetLevelMsg
	if err := quickex.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Account) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account did not sign transaction")
	}
	return &msg, nil
}

// ToggleHandler switches the account privacy flag. The level and the
// history are untouched.
type ToggleHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ quickex.Handler = ToggleHandler{}

// Check does the validation and sets the cost of the transaction
func (h ToggleHandler) Check(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &quickex.CheckResult{GasAllocated: settingsCost}, nil
}

// Deliver flips the flag, creating the settings when needed.
func (h ToggleHandler) Deliver(ctx quickex.Context, db quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}

	settings, err := h.bucket.GetSettings(db, msg.Account)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &Settings{}
	}
	settings.Enabled = msg.Enabled

	if err := h.bucket.Save(db, msg.Account, settings); err != nil {
		return nil, err
	}
	return &quickex.DeliverResult{}, nil
}

func (h ToggleHandler) validate(ctx quickex.Context, tx quickex.Tx) (*TogglePrivacyMsg, error) {
	var msg TogglePrivacyMsg
	if err := quickex.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Account) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account did not sign transaction")
	}
	return &msg, nil
}
