package escrow

import (
	"github.com/supreme2580/QiuckEx/errors"
)

// escrow reserves the 1100-1109 error code range.
var (
	// ErrCommitmentTaken is returned on deposit when the commitment
	// digest is already occupied.
	ErrCommitmentTaken = errors.Register(1100, "commitment already exists")

	// ErrNoCommitment is returned on withdraw when no record exists
	// under the recomputed digest.
	ErrNoCommitment = errors.Register(1101, "commitment not found")

	// ErrAlreadySpent is returned on withdraw when the record exists
	// but its funds were released before.
	ErrAlreadySpent = errors.Register(1102, "commitment already spent")

	// ErrCommitmentMismatch is returned when the revealed values hash
	// to the stored digest but do not match the stored record. With a
	// collision free hash this cannot happen, the check fails closed.
	ErrCommitmentMismatch = errors.Register(1103, "invalid commitment")

	// ErrPaused rejects state changing operations while the
	// configuration pause flag is set.
	ErrPaused = errors.Register(1104, "contract paused")
)
