package llm

import "fmt"

// FailureKind labels why a single attempt did not produce an accepted response.
type FailureKind string

const (
	// FailureTimeout means the attempt exceeded its per-attempt deadline.
	FailureTimeout FailureKind = "timeout"
	// FailureTransport covers connection errors, non-2xx statuses, and
	// responses missing a usable choices array.
	FailureTransport FailureKind = "transport"
	// FailureIncomplete means a response arrived but was classified as
	// truncated.
	FailureIncomplete FailureKind = "incomplete"
)

// PreconditionError reports invalid input detected before any network call.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// AttemptError records the outcome of one failed attempt.
type AttemptError struct {
	Attempt int // 0-based index
	Kind    FailureKind
	Err     error // underlying cause, nil for incomplete responses
}

func (e *AttemptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("attempt %d: %s: %v", e.Attempt+1, e.Kind, e.Err)
	}
	return fmt.Sprintf("attempt %d: %s", e.Attempt+1, e.Kind)
}

func (e *AttemptError) Unwrap() error { return e.Err }

// ExhaustedError is returned when every attempt in the retry budget failed
// or produced an incomplete response.
type ExhaustedError struct {
	Attempts int
	Last     *AttemptError
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d attempts failed or were incomplete (last: %v)", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
