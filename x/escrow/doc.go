/*
Package escrow implements a commitment based escrow.

A depositor locks funds under a 32 byte commitment digest computed
off-chain as sha256(claimant || amount || salt). Funds move into a
per-commitment custody account and the record waits in pending state.
Whoever can reveal matching values withdraws exactly once: the record
flips to spent and the funds move to the claimant. The amount is part
of the digest, so revealing a different amount produces a different
digest and the lookup simply misses.

Records are never deleted. A spent record stays in the bucket as
settlement history.

The extension carries a gconf configuration with an owner and a pause
flag. While paused, deposit, withdraw and create are rejected by the
PauseDecorator; configuration updates pass through so the owner can
unpause.
*/
package escrow
