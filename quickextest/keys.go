package quickextest

import (
	"crypto/rand"

	quickex "github.com/supreme2580/QiuckEx"
)

// NewCondition returns a random signature condition. Each call returns
// a different condition, and therefore a different address.
func NewCondition() quickex.Condition {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return quickex.NewCondition("sigs", "ed25519", data)
}
