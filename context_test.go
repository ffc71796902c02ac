package kickoff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/kickoff"
)

func TestProjectContext_MergeFillsEmptyFields(t *testing.T) {
	t.Parallel()
	var c kickoff.ProjectContext
	c = c.Merge(kickoff.ProjectContext{Type: "web app", Name: "Web App"})
	c = c.Merge(kickoff.ProjectContext{Description: "scheduling tool"})
	c = c.Merge(kickoff.ProjectContext{Goals: []string{"launch"}})

	assert.Equal(t, "web app", c.Type)
	assert.Equal(t, "Web App", c.Name)
	assert.Equal(t, "scheduling tool", c.Description)
	assert.Equal(t, []string{"launch"}, c.Goals)
}

func TestProjectContext_MergeNeverOverwrites(t *testing.T) {
	t.Parallel()
	c := kickoff.ProjectContext{
		Name:        "Web App",
		Type:        "web app",
		Description: "original",
		Timeline:    "a month",
		Team:        "solo",
		Goals:       []string{"launch"},
	}
	got := c.Merge(kickoff.ProjectContext{
		Name:              "Other",
		Type:              "other",
		Description:       "other",
		Timeline:          "other",
		Team:              "other",
		Goals:             []string{"other"},
		AdditionalContext: "new",
	})

	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Type, got.Type)
	assert.Equal(t, c.Description, got.Description)
	assert.Equal(t, c.Timeline, got.Timeline)
	assert.Equal(t, c.Team, got.Team)
	assert.Equal(t, c.Goals, got.Goals)
	// The one still-empty field is filled.
	assert.Equal(t, "new", got.AdditionalContext)
}

func TestProjectContext_WithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty context gets all defaults", func(t *testing.T) {
		t.Parallel()
		got := kickoff.ProjectContext{}.WithDefaults()
		assert.Equal(t, kickoff.DefaultName, got.Name)
		assert.Equal(t, kickoff.DefaultType, got.Type)
		assert.Equal(t, kickoff.DefaultTimeline, got.Timeline)
		assert.Equal(t, kickoff.DefaultTeam, got.Team)
		// Description falls back to the type answer.
		assert.Equal(t, got.Type, got.Description)
	})

	t.Run("set fields survive", func(t *testing.T) {
		t.Parallel()
		c := kickoff.ProjectContext{Name: "Web App", Type: "web app", Timeline: "Q3"}
		got := c.WithDefaults()
		assert.Equal(t, "Web App", got.Name)
		assert.Equal(t, "web app", got.Type)
		assert.Equal(t, "Q3", got.Timeline)
		assert.Equal(t, "web app", got.Description)
		assert.Equal(t, kickoff.DefaultTeam, got.Team)
	})
}
