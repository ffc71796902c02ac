package json_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/kickoff"
	kjson "github.com/fwojciec/kickoff/json"
)

func sampleSession() kickoff.Session {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return kickoff.Session{
		ID:        "sess-1",
		Step:      3,
		State:     kickoff.StateGathering,
		StartedAt: now,
		Context: kickoff.ProjectContext{
			Name:        "Build Web Application",
			Type:        "a web application",
			Description: "scheduling for clinics",
			Goals:       []string{"launch", "learn"},
		},
		Messages: []kickoff.Message{
			{ID: 0, Role: kickoff.RoleAssistant, Content: "welcome", Suggestions: []string{"A web application"}, CreatedAt: now},
			{ID: 1, Role: kickoff.RoleUser, Content: "a web application", Source: kickoff.SourceVoice, CreatedAt: now},
			{ID: 2, Role: kickoff.RoleAssistant, Content: "great", CreatedAt: now},
		},
	}
}

func TestSession_RoundTrip(t *testing.T) {
	t.Parallel()
	want := sampleSession()

	data, err := kjson.MarshalSession(want)
	require.NoError(t, err)

	got, err := kjson.UnmarshalSession(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarshalSession_SkipsStreamingMessages(t *testing.T) {
	t.Parallel()
	s := sampleSession()
	s.Messages = append(s.Messages, kickoff.Message{
		ID: 3, Role: kickoff.RoleAssistant, Content: "half a rep", Streaming: true,
	})

	data, err := kjson.MarshalSession(s)
	require.NoError(t, err)

	got, err := kjson.UnmarshalSession(data)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 3)
}

func TestUnmarshalSession_RejectsUnknownVersion(t *testing.T) {
	t.Parallel()
	_, err := kjson.UnmarshalSession([]byte(`{"version": 2, "id": "x", "state": "gathering"}`))
	assert.ErrorContains(t, err, "unsupported envelope version")
}

func TestUnmarshalSession_RejectsUnknownState(t *testing.T) {
	t.Parallel()
	_, err := kjson.UnmarshalSession([]byte(`{"version": 1, "id": "x", "state": "confused"}`))
	assert.ErrorContains(t, err, "unknown state")
}

func TestUnmarshalSession_RejectsGarbage(t *testing.T) {
	t.Parallel()
	_, err := kjson.UnmarshalSession([]byte(`{not json`))
	assert.Error(t, err)
}

func TestSaveLoad_Session(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	want := sampleSession()

	require.NoError(t, kjson.Save(path, want))
	got, err := kjson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProject_RoundTrip(t *testing.T) {
	t.Parallel()
	want := kickoff.GeneratedProject{
		Name:        "Build Web Application",
		Description: "scheduling for clinics",
		Tasks:       []kickoff.Task{{Name: "set up repo"}, {Name: "ship"}},
		Metadata: kickoff.GenerationMetadata{
			SessionID: "sess-1",
			Model:     "gemini-3.1-pro-preview",
			Context:   kickoff.ProjectContext{Type: "a web application", Name: "Build Web Application"},
		},
	}

	data, err := kjson.MarshalProject(want)
	require.NoError(t, err)

	got, err := kjson.UnmarshalProject(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProject_RoundTripWithoutTasks(t *testing.T) {
	t.Parallel()
	want := kickoff.GeneratedProject{
		Name:     "New Project",
		Metadata: kickoff.GenerationMetadata{SessionID: "sess-2"},
	}

	data, err := kjson.MarshalProject(want)
	require.NoError(t, err)
	got, err := kjson.UnmarshalProject(data)
	require.NoError(t, err)
	assert.Empty(t, got.Tasks)
	assert.Equal(t, want.Name, got.Name)
}

func TestSaveLoadProject(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "project.json")
	want := kickoff.GeneratedProject{
		Name:  "Build Web Application",
		Tasks: []kickoff.Task{{Name: "ship"}},
		Metadata: kickoff.GenerationMetadata{
			SessionID: "sess-1",
		},
	}

	require.NoError(t, kjson.SaveProject(path, want))
	got, err := kjson.LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
