package kickoff

import "time"

// Session is a point-in-time snapshot of one dialogue.
// The live state is owned by the orchestrator; a Session is what it
// exposes for rendering and what the json package persists.
type Session struct {
	ID        string
	Step      int
	State     State
	Context   ProjectContext
	Messages  []Message
	StartedAt time.Time
}
