package agent

import (
	"time"

	"github.com/fwojciec/kickoff"
)

// transcript owns the ordered message log for one session. Message IDs
// are sequence numbers, unique and monotonically increasing even when a
// failed streaming entry is dropped. The streaming target, when one
// exists, is always the last entry.
type transcript struct {
	msgs   []kickoff.Message
	nextID int
}

// add appends a completed message and returns it.
func (t *transcript) add(msg kickoff.Message) kickoff.Message {
	msg.ID = t.nextID
	msg.CreatedAt = time.Now()
	t.nextID++
	t.msgs = append(t.msgs, msg)
	return msg
}

// openStreaming appends a new in-flight message. The caller must ensure
// no other message is streaming (the orchestrator's in-flight guard).
func (t *transcript) openStreaming(role kickoff.Role, synthesis bool) int {
	msg := t.add(kickoff.Message{Role: role, Synthesis: synthesis, Streaming: true})
	return msg.ID
}

// setStreamingContent replaces the in-flight message's content with the
// folded buffer. Content only ever grows by appended fragments, so every
// observed value is a prefix of the final text.
func (t *transcript) setStreamingContent(text string) {
	if last := t.last(); last != nil && last.Streaming {
		last.Content = text
	}
}

// finalize marks the in-flight message complete, setting its final
// content and suggestions. A finalized message is immutable.
func (t *transcript) finalize(text string, suggestions []string) kickoff.Message {
	last := t.last()
	if last == nil || !last.Streaming {
		return kickoff.Message{}
	}
	last.Content = text
	last.Suggestions = suggestions
	last.Streaming = false
	return *last
}

// dropStreaming removes the in-flight message, if any. Used when a
// generation failure discards the partial buffer from the transcript.
func (t *transcript) dropStreaming() {
	if last := t.last(); last != nil && last.Streaming {
		t.msgs = t.msgs[:len(t.msgs)-1]
	}
}

func (t *transcript) last() *kickoff.Message {
	if len(t.msgs) == 0 {
		return nil
	}
	return &t.msgs[len(t.msgs)-1]
}

// snapshot returns a copy of the message log.
func (t *transcript) snapshot() []kickoff.Message {
	out := make([]kickoff.Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}
