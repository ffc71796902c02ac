package kickoff

import (
	"context"
	"fmt"
)

// Speech is the external speech-recognition capability. StartListening
// blocks until one utterance is recognized or the context is cancelled.
// The orchestrator treats a recognized utterance identically to typed
// input; callers pass it to SubmitTurn with voice = true.
type Speech interface {
	StartListening(ctx context.Context) (string, error)
	StopListening()
}

// SpeechFailure is a recognizer error surfaced to the caller. It belongs
// to the caller-facing error path, never to the dialogue transcript.
type SpeechFailure struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (f SpeechFailure) Error() string {
	return fmt.Sprintf("speech recognition failed (%s): %s", f.Code, f.Message)
}
