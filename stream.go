package kickoff

// StreamState indicates the current state of a Stream.
type StreamState int

const (
	StreamStateNew       StreamState = iota // Before Next() is ever called.
	StreamStateStreaming                    // Mid-stream, receiving fragments.
	StreamStateComplete                     // Next() returned io.EOF.
	StreamStateError                        // Next() returned non-EOF error.
	StreamStateClosed                       // Close() called before terminal state.
)

// Stream uses a pull-based iterator pattern. Cancellation flows through the
// context passed to Generator.Stream().
//
// Next() returns the next EventFragment, io.EOF on normal completion, or a
// non-EOF error on failure. Fragments are delivered strictly in arrival
// order; the accumulated text after any prefix of the fragment sequence is
// a prefix of the final text.
//
// Text() returns the accumulated text. Behavior by stream state:
//   - StreamStateComplete: complete text, nil error.
//   - StreamStateStreaming/Error/Closed: partial text, nil error.
//   - StreamStateNew: empty string, ErrStreamNotReady.
type Stream interface {
	Next() (Event, error)
	State() StreamState
	Text() (string, error)
	Close() error
}
