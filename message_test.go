package kickoff_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/kickoff"
)

func TestMessage_Fields(t *testing.T) {
	t.Parallel()
	now := time.Now()
	msg := kickoff.Message{
		ID:          3,
		Role:        kickoff.RoleAssistant,
		Content:     "What timeline do you have in mind?",
		Suggestions: []string{"About a month"},
		CreatedAt:   now,
	}
	assert.Equal(t, 3, msg.ID)
	assert.Equal(t, kickoff.RoleAssistant, msg.Role)
	assert.Equal(t, []string{"About a month"}, msg.Suggestions)
	assert.False(t, msg.Streaming)
	assert.Equal(t, now, msg.CreatedAt)
}

func TestSession_Fields(t *testing.T) {
	t.Parallel()
	now := time.Now()
	s := kickoff.Session{
		ID:        "sess-123",
		Step:      2,
		State:     kickoff.StateGathering,
		Context:   kickoff.ProjectContext{Type: "a web application"},
		Messages:  []kickoff.Message{{ID: 0, Role: kickoff.RoleAssistant, Content: "hello"}},
		StartedAt: now,
	}
	assert.Equal(t, "sess-123", s.ID)
	assert.Equal(t, 2, s.Step)
	assert.Len(t, s.Messages, 1)
	assert.Equal(t, now, s.StartedAt)
}
