package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreconditionError_Message(t *testing.T) {
	err := &PreconditionError{Reason: "API key is required"}
	assert.Equal(t, "precondition failed: API key is required", err.Error())
}

func TestAttemptError_Message(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &AttemptError{Attempt: 0, Kind: FailureTransport, Err: cause}

		assert.Equal(t, "attempt 1: transport: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("incomplete has no cause", func(t *testing.T) {
		err := &AttemptError{Attempt: 2, Kind: FailureIncomplete}
		assert.Equal(t, "attempt 3: incomplete", err.Error())
	})
}

func TestExhaustedError_UnwrapsLastAttempt(t *testing.T) {
	last := &AttemptError{Attempt: 2, Kind: FailureTimeout}
	err := &ExhaustedError{Attempts: 3, Last: last}

	assert.Contains(t, err.Error(), "all 3 attempts failed or were incomplete")

	var attempt *AttemptError
	assert.ErrorAs(t, err, &attempt)
	assert.Equal(t, FailureTimeout, attempt.Kind)
}
