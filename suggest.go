package kickoff

// SuggestionGenerator produces quick-reply suggestions for the step about
// to begin. The context argument exists so context-aware strategies can be
// substituted; the baseline table ignores it.
type SuggestionGenerator interface {
	Suggest(upcomingStep int, ctx ProjectContext) []string
}

// StaticSuggestions is the default SuggestionGenerator: a fixed table
// keyed by step number. Steps outside [1, StepCount] have no suggestions.
type StaticSuggestions struct{}

// Interface compliance check.
var _ SuggestionGenerator = StaticSuggestions{}

var suggestionTable = map[int][]string{
	1: {
		"A web application",
		"A mobile app",
		"A marketing campaign",
		"A personal side project",
	},
	2: {
		"It solves a problem I have at work",
		"It's a tool for a small community",
		"It's a product I want to sell",
	},
	3: {
		"About a month",
		"One quarter",
		"Six months or more",
		"No fixed deadline",
	},
	4: {
		"Just me",
		"Two or three people",
		"A full cross-functional team",
	},
	5: {
		"Launch an MVP",
		"Learn new skills",
		"Build a portfolio piece",
		"Validate an idea",
	},
	6: {
		"Nothing else, let's go",
		"Budget is tight",
		"This has a hard external deadline",
	},
}

// Suggest implements SuggestionGenerator. The returned slice is a copy;
// callers may mutate it freely.
func (StaticSuggestions) Suggest(upcomingStep int, _ ProjectContext) []string {
	opts, ok := suggestionTable[upcomingStep]
	if !ok {
		return nil
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}
