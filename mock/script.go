package mock

import (
	"io"
	"strings"

	"github.com/fwojciec/kickoff"
)

// Interface compliance check.
var _ kickoff.Stream = (*ScriptStream)(nil)

// ScriptStream replays a fixed fragment sequence as a kickoff.Stream.
// Next yields one EventFragment per scripted fragment, then io.EOF — or
// the configured error when built with NewFailingStream, after the
// scripted fragments have been delivered.
type ScriptStream struct {
	fragments []string
	err       error // returned instead of io.EOF when set
	pos       int
	state     kickoff.StreamState
}

// NewScriptStream creates a stream that delivers the given fragments and
// then completes normally.
func NewScriptStream(fragments ...string) *ScriptStream {
	return &ScriptStream{fragments: fragments, state: kickoff.StreamStateNew}
}

// NewFailingStream creates a stream that delivers the given fragments and
// then fails with err instead of completing.
func NewFailingStream(err error, fragments ...string) *ScriptStream {
	return &ScriptStream{fragments: fragments, err: err, state: kickoff.StreamStateNew}
}

// Next returns the next scripted fragment.
func (s *ScriptStream) Next() (kickoff.Event, error) {
	switch s.state {
	case kickoff.StreamStateComplete:
		return nil, io.EOF
	case kickoff.StreamStateError:
		return nil, s.err
	case kickoff.StreamStateClosed:
		return nil, kickoff.ErrStreamClosed
	}
	if s.pos < len(s.fragments) {
		s.state = kickoff.StreamStateStreaming
		frag := s.fragments[s.pos]
		s.pos++
		return kickoff.EventFragment{Delta: frag}, nil
	}
	if s.err != nil {
		s.state = kickoff.StreamStateError
		return nil, s.err
	}
	s.state = kickoff.StreamStateComplete
	return nil, io.EOF
}

// State returns the current stream state.
func (s *ScriptStream) State() kickoff.StreamState {
	return s.state
}

// Text returns the fragments delivered so far, joined.
func (s *ScriptStream) Text() (string, error) {
	if s.state == kickoff.StreamStateNew {
		return "", kickoff.ErrStreamNotReady
	}
	return strings.Join(s.fragments[:s.pos], ""), nil
}

// Close marks the stream closed if no terminal state was reached.
func (s *ScriptStream) Close() error {
	if s.state != kickoff.StreamStateComplete && s.state != kickoff.StreamStateError {
		s.state = kickoff.StreamStateClosed
	}
	return nil
}
