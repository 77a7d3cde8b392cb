package errors

// internalABCICode is the ABCI code attached to all errors that are not
// created by wrapping a registered root error. Those errors may contain
// sensitive details and are redacted before leaving the process.
const internalABCICode uint32 = 1

// ABCICode returns the ABCI response code of any error. For errors that do
// not wrap a registered root error the internal error code is returned.
func ABCICode(err error) uint32 {
	if err == nil {
		return 0
	}
	if c, ok := err.(coder); ok {
		return c.ABCICode()
	}
	if c, ok := err.(causer); ok {
		return ABCICode(c.Cause())
	}
	return internalABCICode
}

// Redact replaces an error that could leak implementation details with a
// bare root error. Use this on any error that crosses the process boundary.
func Redact(err error) error {
	if ErrPanic.Is(err) {
		return ErrPanic
	}
	if ABCICode(err) == internalABCICode {
		return Wrap(ErrHuman, "internal error")
	}
	return err
}
