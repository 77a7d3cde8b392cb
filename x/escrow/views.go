package escrow

import (
	"cosmossdk.io/math"

	quickex "github.com/supreme2580/QiuckEx"
)

// Read paths for off-chain tooling and other extensions. Negative
// outcomes collapse to a zero value or false, they never produce an
// error.

// GetCommitmentState returns the status of the record stored under
// the digest. The second return value is false when no record exists.
func GetCommitmentState(db quickex.ReadOnlyKVStore, digest []byte) (Status, bool) {
	esc, err := NewBucket().GetEscrow(db, digest)
	if err != nil || esc == nil {
		return Status_INVALID, false
	}
	return esc.Status, true
}

// GetEscrowDetails returns the full record stored under the digest,
// or nil when absent.
func GetEscrowDetails(db quickex.ReadOnlyKVStore, digest []byte) *Escrow {
	esc, err := NewBucket().GetEscrow(db, digest)
	if err != nil {
		return nil
	}
	return esc
}

// VerifyProof reports whether the revealed values match a pending
// record: the recomputed digest is occupied, the record is pending
// and the stored amount equals the revealed one.
func VerifyProof(db quickex.ReadOnlyKVStore, claimant quickex.Address, amount math.Int, salt []byte) bool {
	if amount.IsNil() || !amount.IsPositive() {
		return false
	}
	digest := Commit(claimant, amount, salt)
	esc, err := NewBucket().GetEscrow(db, digest)
	if err != nil || esc == nil {
		return false
	}
	return esc.Status == Status_PENDING && esc.Amount.Equal(amount)
}
