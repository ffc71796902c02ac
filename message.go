package kickoff

import "time"

// Message is one transcript entry in a dialogue session.
//
// Content is mutable only while the message is the in-flight streaming
// target; once Streaming flips to false the entry is final. At most one
// message in a transcript has Streaming = true at any time.
type Message struct {
	// ID is a sequence number, unique and monotonically increasing
	// within a session.
	ID int

	Role    Role
	Content string

	// Suggestions are quick-reply options attached to completed
	// assistant messages. Absent on the final synthesis message.
	Suggestions []string

	// Source is set on user messages only.
	Source Source

	// Synthesis marks the dedicated final message whose content is the
	// synthesized project text.
	Synthesis bool

	Streaming bool
	CreatedAt time.Time
}
