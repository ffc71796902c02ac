package kickoff

// Task is one entry in a generated project's task breakdown.
type Task struct {
	Name string
}

// GenerationMetadata records how a GeneratedProject was produced.
type GenerationMetadata struct {
	SessionID string
	Model     string
	Context   ProjectContext
}

// GeneratedProject is the terminal artifact of a session: the synthesized
// project plus its task breakdown. Tasks may be empty when the synthesis
// text contained no parsable task markers; that is a partial success, not
// an error.
type GeneratedProject struct {
	Name        string
	Description string
	Tasks       []Task
	Metadata    GenerationMetadata
}
