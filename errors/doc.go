/*
Package errors implements custom error interfaces for quickex.

The package provides a set of root errors. Each root error is registered
under a unique numeric code that is returned to the caller over the ABCI
interface. Extensions may register their own root errors, using codes
outside of the range reserved by this package (1-99).

Create errors by wrapping a root error, never by returning a root error
directly:

  errors.Wrap(errors.ErrNotFound, "no such wallet")

Test errors by root type, never by message:

  if errors.ErrNotFound.Is(err) { ... }

*/
package errors
