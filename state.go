package kickoff

// State is the dialogue state machine's current phase.
type State int

const (
	StateIdle         State = iota // Before the welcome message is emitted.
	StateGathering                 // Awaiting a user turn for the current step.
	StateSynthesizing              // Final generation call in flight.
	StateComplete                  // Project synthesized and delivered.
	StateFailed                    // Hard failure; no further turns accepted.
)

// String returns the state name for display and logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGathering:
		return "gathering"
	case StateSynthesizing:
		return "synthesizing"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepCount is the number of context-gathering steps. Each step owns one
// ProjectContext field (step 1 owns two: the type and the derived name).
const StepCount = 6
