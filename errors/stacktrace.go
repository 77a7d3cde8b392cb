package errors

import (
	"github.com/pkg/errors"
)

// stackTracer is implemented by errors created using github.com/pkg/errors
// WithStack function. It provides access to the stack trace collected when
// the error instance was created.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found in the error chain, or nil
// if none of the wrapped errors carry one.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
	return nil
}
