/*
Package quickex defines all common interfaces that tie together the
subpackages of the commitment escrow engine, as well as implementations of
some of the simpler components (when interfaces would be too much overhead).

The root package knows nothing about the escrow semantics. It provides the
building blocks: addresses and conditions, the transaction and message
interfaces, the handler and decorator contracts, the key-value store
interface hierarchy and context helpers used to carry block metadata and a
logger through a call.
*/
package quickex
