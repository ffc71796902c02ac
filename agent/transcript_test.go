package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/kickoff"
)

func TestTranscript_IDsAreMonotonic(t *testing.T) {
	t.Parallel()
	var tr transcript
	a := tr.add(kickoff.Message{Role: kickoff.RoleAssistant, Content: "welcome"})
	b := tr.add(kickoff.Message{Role: kickoff.RoleUser, Content: "hi"})
	assert.Equal(t, 0, a.ID)
	assert.Equal(t, 1, b.ID)

	// A dropped streaming entry still consumes its sequence number.
	tr.openStreaming(kickoff.RoleAssistant, false)
	tr.dropStreaming()
	c := tr.add(kickoff.Message{Role: kickoff.RoleSystem, Content: "sorry"})
	assert.Equal(t, 3, c.ID)
}

func TestTranscript_StreamingLifecycle(t *testing.T) {
	t.Parallel()
	var tr transcript
	id := tr.openStreaming(kickoff.RoleAssistant, false)

	tr.setStreamingContent("Hel")
	tr.setStreamingContent("Hello")
	require.Len(t, tr.msgs, 1)
	assert.Equal(t, "Hello", tr.msgs[0].Content)
	assert.True(t, tr.msgs[0].Streaming)

	done := tr.finalize("Hello there", []string{"a", "b"})
	assert.Equal(t, id, done.ID)
	assert.Equal(t, "Hello there", done.Content)
	assert.Equal(t, []string{"a", "b"}, done.Suggestions)
	assert.False(t, done.Streaming)

	// Finalized entries are immutable: further writes are ignored.
	tr.setStreamingContent("mutated")
	assert.Equal(t, "Hello there", tr.msgs[0].Content)
}

func TestTranscript_DropStreamingRemovesOnlyInFlight(t *testing.T) {
	t.Parallel()
	var tr transcript
	tr.add(kickoff.Message{Role: kickoff.RoleUser, Content: "hi"})

	// Nothing streaming: drop is a no-op.
	tr.dropStreaming()
	assert.Len(t, tr.msgs, 1)

	tr.openStreaming(kickoff.RoleAssistant, false)
	tr.setStreamingContent("half a rep")
	tr.dropStreaming()
	require.Len(t, tr.msgs, 1)
	assert.Equal(t, "hi", tr.msgs[0].Content)
}

func TestTranscript_SnapshotIsACopy(t *testing.T) {
	t.Parallel()
	var tr transcript
	tr.add(kickoff.Message{Role: kickoff.RoleUser, Content: "hi"})

	snap := tr.snapshot()
	snap[0].Content = "mutated"
	assert.Equal(t, "hi", tr.msgs[0].Content)
}
