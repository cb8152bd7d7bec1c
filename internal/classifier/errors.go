package classifier

import "errors"

var (
	// ErrUnavailable indicates the inference backend is unreachable.
	ErrUnavailable = errors.New("classifier backend unavailable")

	// ErrTimeout indicates the classification request exceeded the
	// configured timeout.
	ErrTimeout = errors.New("classification request timed out")

	// ErrInvalidOutput indicates the backend response could not be parsed
	// into a ranked list of emotion scores.
	ErrInvalidOutput = errors.New("invalid classifier output")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("classifier retry attempts exhausted")
)
