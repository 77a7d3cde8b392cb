/*
Package privacy keeps per account privacy bookkeeping.

Each account owns a Settings record with a numeric privacy level, an
enabled flag and the history of previously set levels, most recent
first. Only the account itself can change its settings.

The package is deliberately independent of the escrow extension, the
two share no state.
*/
package privacy
