package kickoff

// ProjectContext is the intent record accumulated across gathering steps.
// It is partial by construction: any field may be empty until its step has
// been answered. Fields are write-once per session — Merge never overwrites
// a field that is already set.
type ProjectContext struct {
	Name              string   // derived from the type answer, not user-entered verbatim
	Type              string   // step 1
	Description       string   // step 2
	Timeline          string   // step 3
	Team              string   // step 4
	Goals             []string // step 5
	AdditionalContext string   // step 6, optional
}

// Merge returns c with any unset fields filled from update. Fields already
// set on c are never overwritten, which enforces the write-once rule.
func (c ProjectContext) Merge(update ProjectContext) ProjectContext {
	if c.Name == "" {
		c.Name = update.Name
	}
	if c.Type == "" {
		c.Type = update.Type
	}
	if c.Description == "" {
		c.Description = update.Description
	}
	if c.Timeline == "" {
		c.Timeline = update.Timeline
	}
	if c.Team == "" {
		c.Team = update.Team
	}
	if len(c.Goals) == 0 {
		c.Goals = update.Goals
	}
	if c.AdditionalContext == "" {
		c.AdditionalContext = update.AdditionalContext
	}
	return c
}

// Defaults used by WithDefaults for fields still absent at synthesis time.
const (
	DefaultName     = "New Project"
	DefaultType     = "General project"
	DefaultTimeline = "Flexible"
	DefaultTeam     = "Solo"
)

// WithDefaults returns c with documented defaults filled into any field
// that is still empty. The description falls back to the type answer so
// the synthesis request always carries some description of intent.
func (c ProjectContext) WithDefaults() ProjectContext {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Type == "" {
		c.Type = DefaultType
	}
	if c.Description == "" {
		c.Description = c.Type
	}
	if c.Timeline == "" {
		c.Timeline = DefaultTimeline
	}
	if c.Team == "" {
		c.Team = DefaultTeam
	}
	return c
}
