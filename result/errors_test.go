package result

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrUnsuccessfulResultMessage(t *testing.T) {
	require := require.New(t)

	// the message is fixed and suitable for golden tests
	require.EqualError(ErrUnsuccessfulResult, "unsuccessful result")
}

func TestUnmetExpectationError(t *testing.T) {
	require := require.New(t)

	err := &UnmetExpectationError{message: "expected a parsed config"}
	require.EqualError(err, "expected a parsed config")

	err = &UnmetExpectationError{}
	require.EqualError(err, "")
}
