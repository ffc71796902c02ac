package kickoff

import "context"

// Generator is a strategy pattern interface for the external generation
// capability. Implementations must be assumed to be able to fail
// asynchronously (network/quota/model errors); such failures surface as
// non-EOF errors from Stream.Next().
type Generator interface {
	Stream(ctx context.Context, req Request) (Stream, error)
}

// Request carries one generation call's inputs.
//
// Context-gathering turns set Step and UserInput; the synthesis call sets
// Synthesis and carries the completed Context. SessionID is set on both.
type Request struct {
	SessionID string
	Model     string // model ID, generator-specific; empty = generator default

	// Context-gathering turn fields.
	Step      int
	UserInput string

	// Synthesis marks the final generation call. Context then holds the
	// complete ProjectContext with defaults applied.
	Synthesis bool

	Context ProjectContext
}
