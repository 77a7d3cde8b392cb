package privacy

import (
	quickex "github.com/supreme2580/QiuckEx"
)

const (
	pathSetLevelMsg      = "privacy/set_level"
	pathTogglePrivacyMsg = "privacy/toggle"
)

var _ quickex.Msg = (*SetLevelMsg)(nil)
var _ quickex.Msg = (*TogglePrivacyMsg)(nil)

// Path fulfills quickex.Msg interface to allow routing
func (SetLevelMsg) Path() string {
	return pathSetLevelMsg
}

// Path fulfills quickex.Msg interface to allow routing
func (TogglePrivacyMsg) Path() string {
	return pathTogglePrivacyMsg
}

// Validate only requires a proper account, any level value is
// accepted.
func (m *SetLevelMsg) Validate() error {
	return m.Account.Validate()
}

// Validate only requires a proper account.
func (m *TogglePrivacyMsg) Validate() error {
	return m.Account.Validate()
}
