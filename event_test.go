package kickoff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/kickoff"
)

func TestEventTypeSwitch_Exhaustive(t *testing.T) {
	t.Parallel()
	events := []kickoff.Event{
		kickoff.EventFragment{Delta: "hel"},
		kickoff.EventMessageBegin{ID: 1, Role: kickoff.RoleAssistant},
		kickoff.EventMessageEnd{Message: kickoff.Message{ID: 1}},
		kickoff.EventStateChange{State: kickoff.StateGathering, Step: 2},
	}
	for _, evt := range events {
		switch evt.(type) {
		case kickoff.EventFragment:
		case kickoff.EventMessageBegin:
		case kickoff.EventMessageEnd:
		case kickoff.EventStateChange:
		default:
			t.Fatalf("unexpected event type: %T", evt)
		}
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		state kickoff.State
		want  string
	}{
		{kickoff.StateIdle, "idle"},
		{kickoff.StateGathering, "gathering"},
		{kickoff.StateSynthesizing, "synthesizing"},
		{kickoff.StateComplete, "complete"},
		{kickoff.StateFailed, "failed"},
		{kickoff.State(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestSpeechFailure_Error(t *testing.T) {
	t.Parallel()
	err := kickoff.SpeechFailure{Code: "no-speech", Message: "nothing heard"}
	assert.Contains(t, err.Error(), "no-speech")
	assert.Contains(t, err.Error(), "nothing heard")
}
