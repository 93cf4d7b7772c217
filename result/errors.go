package result

import "errors"

var (
	// ErrUnsuccessfulResult is the panic value used by Unwrap when it is
	// applied to an Err result.  Its message is the fixed string
	// "unsuccessful result".
	ErrUnsuccessfulResult = errors.New("unsuccessful result")
)

// UnmetExpectationError is the panic value used by Expect when it is applied
// to an Err result.  It carries the caller supplied message verbatim.
type UnmetExpectationError struct {
	message string
}

func (e *UnmetExpectationError) Error() string {
	return e.message
}
