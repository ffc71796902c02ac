package kickoff

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrEmptyInput indicates a turn was submitted with no text.
	// The session is untouched; the caller may simply ignore it.
	ErrEmptyInput = errors.New("empty input")

	// ErrTurnInFlight indicates a turn was submitted while the current
	// step's assistant response is still streaming. Turns are rejected,
	// not queued.
	ErrTurnInFlight = errors.New("turn already in flight")

	// ErrSessionDone indicates a turn was submitted after the session
	// completed, failed, or was cancelled.
	ErrSessionDone = errors.New("session done")

	// ErrStreamNotReady indicates Text() was called before Next().
	ErrStreamNotReady = errors.New("stream not ready: call Next() first")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")
)
