package escrow

import (
	"bytes"
	"crypto/sha256"
	"math/big"

	"cosmossdk.io/math"

	quickex "github.com/supreme2580/QiuckEx"
)

// CommitmentSize is the length of a commitment digest in bytes.
const CommitmentSize = sha256.Size

var twoPow128 = new(big.Int).Lsh(big.NewInt(1), 128)

// Commit computes the commitment digest binding a claimant, an amount
// and a salt:
//
//	sha256(claimant || amount || salt)
//
// The amount is encoded as a big-endian 16 byte two's complement
// integer, so the digest is bit for bit reproducible by off-chain
// tooling. The currency ticker is not part of the commitment.
func Commit(claimant quickex.Address, amount math.Int, salt []byte) []byte {
	h := sha256.New()
	h.Write(claimant)
	h.Write(amountBytes(amount))
	h.Write(salt)
	return h.Sum(nil)
}

// VerifyCommitment recomputes the digest from the revealed values and
// compares it against the given one.
func VerifyCommitment(digest []byte, claimant quickex.Address, amount math.Int, salt []byte) bool {
	return bytes.Equal(digest, Commit(claimant, amount, salt))
}

// amountBytes returns the big-endian 16 byte two's complement
// encoding of the amount. The caller must ensure the amount fits a
// signed 128 bit integer.
func amountBytes(amount math.Int) []byte {
	v := new(big.Int).Set(amount.BigInt())
	if v.Sign() < 0 {
		v.Add(v, twoPow128)
	}
	buf := make([]byte, 16)
	v.FillBytes(buf)
	return buf
}
