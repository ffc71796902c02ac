package kickoff

// Role represents the role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Source identifies how a user turn was captured.
type Source string

const (
	SourceTyped Source = "typed"
	SourceVoice Source = "voice"
)
