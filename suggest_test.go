package kickoff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/kickoff"
)

func TestStaticSuggestions_AllGatheringStepsCovered(t *testing.T) {
	t.Parallel()
	s := kickoff.StaticSuggestions{}
	for step := 1; step <= kickoff.StepCount; step++ {
		assert.NotEmpty(t, s.Suggest(step, kickoff.ProjectContext{}), "step %d", step)
	}
}

func TestStaticSuggestions_OutOfRangeStepsHaveNone(t *testing.T) {
	t.Parallel()
	s := kickoff.StaticSuggestions{}
	assert.Nil(t, s.Suggest(0, kickoff.ProjectContext{}))
	assert.Nil(t, s.Suggest(kickoff.StepCount+1, kickoff.ProjectContext{}))
}

func TestStaticSuggestions_ReturnsCopy(t *testing.T) {
	t.Parallel()
	s := kickoff.StaticSuggestions{}
	first := s.Suggest(2, kickoff.ProjectContext{})
	first[0] = "mutated"
	second := s.Suggest(2, kickoff.ProjectContext{})
	assert.NotEqual(t, "mutated", second[0])
}

func TestStaticSuggestions_IgnoresContext(t *testing.T) {
	t.Parallel()
	s := kickoff.StaticSuggestions{}
	withCtx := s.Suggest(3, kickoff.ProjectContext{Type: "web app", Name: "Web App"})
	withoutCtx := s.Suggest(3, kickoff.ProjectContext{})
	assert.Equal(t, withoutCtx, withCtx)
}
