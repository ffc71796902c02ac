package kickoff

// Event is a sealed interface representing a dialogue event.
// Events are purely semantic. Transport/protocol errors come from
// Stream.Next()'s error return, not from events.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventFragment is one incremental piece of generated text. Fragments are
// appended in arrival order; the transcript's in-flight message content is
// the fold of every fragment received so far.
type EventFragment struct {
	Delta string
}

func (EventFragment) event() {}

// EventMessageBegin signals that a transcript entry has been opened.
type EventMessageBegin struct {
	ID   int
	Role Role
}

func (EventMessageBegin) event() {}

// EventMessageEnd signals that a transcript entry is final, carrying the
// completed message (including any suggestions).
type EventMessageEnd struct {
	Message Message
}

func (EventMessageEnd) event() {}

// EventStateChange signals a dialogue state machine transition.
type EventStateChange struct {
	State State
	Step  int
}

func (EventStateChange) event() {}

// Interface compliance checks.
var (
	_ Event = EventFragment{}
	_ Event = EventMessageBegin{}
	_ Event = EventMessageEnd{}
	_ Event = EventStateChange{}
)
