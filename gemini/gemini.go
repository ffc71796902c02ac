// Package gemini implements [kickoff.Generator] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating a kickoff.Request
// into a prompt and wrapping the SDK's iter.Seq2 streaming iterator into
// the pull-based [kickoff.Stream] interface.
package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/kickoff"
)

const (
	defaultModel     = "gemini-3.1-pro-preview"
	defaultMaxTokens = 8192
)

// stepTopics names what each gathering step asks about. Indexed by step.
var stepTopics = [kickoff.StepCount + 1]string{
	1: "what kind of project this is",
	2: "what the project is about",
	3: "the timeline",
	4: "the team",
	5: "the goals",
	6: "any additional context",
}

const gatherSystemPrompt = "You are a friendly project-planning assistant. " +
	"You gather project details one question at a time. Acknowledge the " +
	"user's answer briefly, then ask exactly one question about the next topic. " +
	"Keep replies to two or three sentences."

const synthesisSystemPrompt = "You are a project-planning assistant. Given " +
	"the collected project details, write a short project summary followed by " +
	"a markdown bullet list of concrete tasks, one task per bullet."

// buildGatherPrompt renders a context-gathering turn into prompt text.
func buildGatherPrompt(req kickoff.Request) string {
	var sb strings.Builder
	writeContext(&sb, req.Context)
	fmt.Fprintf(&sb, "The user was asked about %s (step %d of %d) and answered:\n%s\n",
		stepTopics[req.Step], req.Step, kickoff.StepCount, req.UserInput)
	if req.Step < kickoff.StepCount {
		fmt.Fprintf(&sb, "\nAcknowledge the answer and ask about %s.\n", stepTopics[req.Step+1])
	} else {
		sb.WriteString("\nAcknowledge the answer and say you are ready to put the plan together.\n")
	}
	return sb.String()
}

// buildSynthesisPrompt renders the final synthesis request into prompt text.
func buildSynthesisPrompt(req kickoff.Request) string {
	var sb strings.Builder
	sb.WriteString("Create a project plan from these details.\n\n")
	writeContext(&sb, req.Context)
	return sb.String()
}

func writeContext(sb *strings.Builder, c kickoff.ProjectContext) {
	sb.WriteString("Project details so far:\n")
	writeField(sb, "Name", c.Name)
	writeField(sb, "Type", c.Type)
	writeField(sb, "Description", c.Description)
	writeField(sb, "Timeline", c.Timeline)
	writeField(sb, "Team", c.Team)
	if len(c.Goals) > 0 {
		fmt.Fprintf(sb, "- Goals: %s\n", strings.Join(c.Goals, "; "))
	}
	writeField(sb, "Additional context", c.AdditionalContext)
	sb.WriteString("\n")
}

func writeField(sb *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(sb, "- %s: %s\n", label, value)
	}
}
