package gemini

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"google.golang.org/genai"

	"github.com/fwojciec/kickoff"
)

// stream implements [kickoff.Stream] by wrapping the genai SDK's
// streaming iterator. Each response chunk's text parts become one
// fragment, appended to the running buffer in arrival order.
type stream struct {
	pull  func() (*genai.GenerateContentResponse, error, bool)
	stop  func()
	state kickoff.StreamState
	buf   strings.Builder
	err   error
}

// Interface compliance check.
var _ kickoff.Stream = (*stream)(nil)

func newStream(iterFn iter.Seq2[*genai.GenerateContentResponse, error]) *stream {
	next, stop := iter.Pull2(iterFn)
	return &stream{
		pull:  next,
		stop:  stop,
		state: kickoff.StreamStateNew,
	}
}

// Next returns the next fragment, io.EOF on normal completion.
func (s *stream) Next() (kickoff.Event, error) {
	switch s.state {
	case kickoff.StreamStateComplete:
		return nil, io.EOF
	case kickoff.StreamStateError:
		return nil, s.err
	case kickoff.StreamStateClosed:
		return nil, fmt.Errorf("gemini: %w", kickoff.ErrStreamClosed)
	}

	for {
		resp, err, ok := s.pull()
		if !ok {
			s.state = kickoff.StreamStateComplete
			return nil, io.EOF
		}
		if err != nil {
			s.state = kickoff.StreamStateError
			s.err = fmt.Errorf("gemini: %w", err)
			return nil, s.err
		}
		s.state = kickoff.StreamStateStreaming
		if delta := chunkText(resp); delta != "" {
			s.buf.WriteString(delta)
			return kickoff.EventFragment{Delta: delta}, nil
		}
		// Chunk carried no text (e.g. usage metadata) - keep reading.
	}
}

// State returns the current stream state.
func (s *stream) State() kickoff.StreamState {
	return s.state
}

// Text returns the accumulated text.
func (s *stream) Text() (string, error) {
	if s.state == kickoff.StreamStateNew {
		return "", fmt.Errorf("gemini: %w", kickoff.ErrStreamNotReady)
	}
	return s.buf.String(), nil
}

// Close releases the underlying iterator.
func (s *stream) Close() error {
	if s.state != kickoff.StreamStateComplete && s.state != kickoff.StreamStateError {
		s.state = kickoff.StreamStateClosed
	}
	s.stop()
	return nil
}

// chunkText joins a chunk's non-thought text parts.
func chunkText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
