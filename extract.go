package kickoff

import (
	"strings"
	"unicode"
)

// Turn is one normalized user contribution.
type Turn struct {
	Text   string
	Source Source
}

// NormalizeTurn trims a raw contribution and tags its source. The second
// return value is false when nothing usable remains, in which case the
// turn must be rejected without touching session state.
func NormalizeTurn(raw string, voice bool) (Turn, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Turn{}, false
	}
	src := SourceTyped
	if voice {
		src = SourceVoice
	}
	return Turn{Text: text, Source: src}, true
}

// ContextExtractor derives one step's contribution to the accumulating
// ProjectContext from the raw turn text. Implementations must be pure:
// the same (step, text) pair always yields the same partial context, and
// extraction never fails — absence of extractable signal falls back to a
// safe default.
type ContextExtractor interface {
	Extract(step int, text string) ProjectContext
}

// HeuristicExtractor is the default ContextExtractor. The step-to-field
// mapping is fixed: step 1 sets Type plus the derived Name, step 2
// Description, step 3 Timeline, step 4 Team, step 5 Goals, step 6
// AdditionalContext. Only steps 1 and 5 parse structure; the other steps
// store the raw text verbatim.
type HeuristicExtractor struct{}

// Interface compliance check.
var _ ContextExtractor = HeuristicExtractor{}

// nameStopwords are dropped before deriving a project name from the step-1
// answer. Pronouns, articles, common fillers and verbs of intent. Action
// verbs that describe the project itself (build, create, make) are kept —
// "build a web app" names a "Build Web App" project.
var nameStopwords = map[string]struct{}{
	"i": {}, "we": {}, "you": {}, "me": {}, "my": {}, "our": {}, "your": {}, "it": {},
	"a": {}, "an": {}, "the": {},
	"to": {}, "for": {}, "of": {}, "in": {}, "on": {}, "with": {}, "and": {},
	"want": {}, "need": {}, "like": {}, "would": {}, "wanna": {}, "please": {}, "help": {},
}

// Extract implements ContextExtractor.
func (HeuristicExtractor) Extract(step int, text string) ProjectContext {
	switch step {
	case 1:
		return ProjectContext{Type: text, Name: deriveName(text)}
	case 2:
		return ProjectContext{Description: text}
	case 3:
		return ProjectContext{Timeline: text}
	case 4:
		return ProjectContext{Team: text}
	case 5:
		return ProjectContext{Goals: splitGoals(text)}
	case 6:
		return ProjectContext{AdditionalContext: text}
	default:
		return ProjectContext{}
	}
}

// deriveName tokenizes the step-1 answer, drops stopwords, title-cases and
// joins the first three remaining tokens. Falls back to DefaultName when
// nothing survives filtering.
func deriveName(text string) string {
	var kept []string
	for _, tok := range strings.Fields(text) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if tok == "" {
			continue
		}
		if _, stop := nameStopwords[strings.ToLower(tok)]; stop {
			continue
		}
		kept = append(kept, titleWord(tok))
		if len(kept) == 3 {
			break
		}
	}
	if len(kept) == 0 {
		return DefaultName
	}
	return strings.Join(kept, " ")
}

// titleWord upper-cases the first rune and leaves the rest untouched, so
// acronyms like "API" survive.
func titleWord(tok string) string {
	r := []rune(tok)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// splitGoals splits the step-5 answer on commas, semicolons and periods,
// trims each segment and discards empties, preserving order.
func splitGoals(text string) []string {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '.'
	})
	var goals []string
	for _, seg := range segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			goals = append(goals, seg)
		}
	}
	return goals
}
