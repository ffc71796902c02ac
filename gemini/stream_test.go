package gemini

import (
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/fwojciec/kickoff"
)

func textChunk(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func thoughtChunk(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text, Thought: true}},
			},
		}},
	}
}

func fakeIter(chunks []*genai.GenerateContentResponse, err error) iter.Seq2[*genai.GenerateContentResponse, error] {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, c := range chunks {
			if !yield(c, nil) {
				return
			}
		}
		if err != nil {
			yield(nil, err)
		}
	}
}

func TestStream_EmitsOneFragmentPerTextChunk(t *testing.T) {
	t.Parallel()
	s := newStream(fakeIter([]*genai.GenerateContentResponse{
		textChunk("Hel"),
		textChunk("lo"),
	}, nil))

	evt, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, kickoff.EventFragment{Delta: "Hel"}, evt)

	evt, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, kickoff.EventFragment{Delta: "lo"}, evt)

	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, kickoff.StreamStateComplete, s.State())

	text, err := s.Text()
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
}

func TestStream_SkipsThoughtParts(t *testing.T) {
	t.Parallel()
	s := newStream(fakeIter([]*genai.GenerateContentResponse{
		thoughtChunk("let me think"),
		textChunk("answer"),
	}, nil))

	evt, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, kickoff.EventFragment{Delta: "answer"}, evt)

	_, err = s.Next()
	assert.Equal(t, io.EOF, err)

	text, err := s.Text()
	require.NoError(t, err)
	assert.Equal(t, "answer", text)
}

func TestStream_MidStreamError(t *testing.T) {
	t.Parallel()
	boom := errors.New("quota")
	s := newStream(fakeIter([]*genai.GenerateContentResponse{
		textChunk("partial "),
	}, boom))

	_, err := s.Next()
	require.NoError(t, err)

	_, err = s.Next()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, kickoff.StreamStateError, s.State())

	// Partial text stays readable after the failure.
	text, err := s.Text()
	require.NoError(t, err)
	assert.Equal(t, "partial ", text)
}

func TestStream_TextBeforeNext(t *testing.T) {
	t.Parallel()
	s := newStream(fakeIter(nil, nil))
	_, err := s.Text()
	assert.ErrorIs(t, err, kickoff.ErrStreamNotReady)
}

func TestStream_CloseBeforeTerminal(t *testing.T) {
	t.Parallel()
	s := newStream(fakeIter([]*genai.GenerateContentResponse{textChunk("a"), textChunk("b")}, nil))
	_, err := s.Next()
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.Equal(t, kickoff.StreamStateClosed, s.State())

	_, err = s.Next()
	assert.ErrorIs(t, err, kickoff.ErrStreamClosed)
}
