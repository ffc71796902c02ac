// Package json persists kickoff sessions and generated projects in a
// versioned JSON envelope. Persistence policy belongs to the caller; this
// package only owns the codec and small file helpers.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/kickoff"
)

// sessionEnvelope is the v1 wire format for a persisted session.
type sessionEnvelope struct {
	Version   int          `json:"version"`
	ID        string       `json:"id"`
	Step      int          `json:"step"`
	State     string       `json:"state"`
	StartedAt time.Time    `json:"started_at"`
	Context   contextDTO   `json:"context"`
	Messages  []messageDTO `json:"messages"`
}

// messageDTO is the JSON representation of a Message.
type messageDTO struct {
	ID          int       `json:"id"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Source      string    `json:"source,omitempty"`
	Synthesis   bool      `json:"synthesis,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// contextDTO is the JSON representation of a ProjectContext.
type contextDTO struct {
	Name              string   `json:"name,omitempty"`
	Type              string   `json:"type,omitempty"`
	Description       string   `json:"description,omitempty"`
	Timeline          string   `json:"timeline,omitempty"`
	Team              string   `json:"team,omitempty"`
	Goals             []string `json:"goals,omitempty"`
	AdditionalContext string   `json:"additional_context,omitempty"`
}

var stateNames = map[string]kickoff.State{
	"idle":         kickoff.StateIdle,
	"gathering":    kickoff.StateGathering,
	"synthesizing": kickoff.StateSynthesizing,
	"complete":     kickoff.StateComplete,
	"failed":       kickoff.StateFailed,
}

// MarshalSession serializes a Session to JSON in v1 envelope format.
// In-flight streaming messages are skipped: a persisted transcript holds
// only finalized entries.
func MarshalSession(s kickoff.Session) ([]byte, error) {
	env := sessionEnvelope{
		Version:   1,
		ID:        s.ID,
		Step:      s.Step,
		State:     s.State.String(),
		StartedAt: s.StartedAt,
		Context:   toContextDTO(s.Context),
	}
	for _, msg := range s.Messages {
		if msg.Streaming {
			continue
		}
		env.Messages = append(env.Messages, messageDTO{
			ID:          msg.ID,
			Role:        string(msg.Role),
			Content:     msg.Content,
			Suggestions: msg.Suggestions,
			Source:      string(msg.Source),
			Synthesis:   msg.Synthesis,
			CreatedAt:   msg.CreatedAt,
		})
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalSession deserializes a Session from JSON in v1 envelope format.
func UnmarshalSession(data []byte) (kickoff.Session, error) {
	var env sessionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return kickoff.Session{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return kickoff.Session{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	state, ok := stateNames[env.State]
	if !ok {
		return kickoff.Session{}, fmt.Errorf("unknown state %q", env.State)
	}
	s := kickoff.Session{
		ID:        env.ID,
		Step:      env.Step,
		State:     state,
		StartedAt: env.StartedAt,
		Context:   fromContextDTO(env.Context),
	}
	for _, dto := range env.Messages {
		s.Messages = append(s.Messages, kickoff.Message{
			ID:          dto.ID,
			Role:        kickoff.Role(dto.Role),
			Content:     dto.Content,
			Suggestions: dto.Suggestions,
			Source:      kickoff.Source(dto.Source),
			Synthesis:   dto.Synthesis,
			CreatedAt:   dto.CreatedAt,
		})
	}
	return s, nil
}

// Save writes a Session to a JSON file, creating parent directories as
// needed. The write goes through a temp file and rename so a crash never
// leaves a truncated envelope behind.
func Save(path string, s kickoff.Session) error {
	data, err := MarshalSession(s)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return writeFile(path, data)
}

// Load reads a Session from a JSON file.
func Load(path string) (kickoff.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return kickoff.Session{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalSession(data)
}

func toContextDTO(c kickoff.ProjectContext) contextDTO {
	return contextDTO{
		Name:              c.Name,
		Type:              c.Type,
		Description:       c.Description,
		Timeline:          c.Timeline,
		Team:              c.Team,
		Goals:             c.Goals,
		AdditionalContext: c.AdditionalContext,
	}
}

func fromContextDTO(dto contextDTO) kickoff.ProjectContext {
	return kickoff.ProjectContext{
		Name:              dto.Name,
		Type:              dto.Type,
		Description:       dto.Description,
		Timeline:          dto.Timeline,
		Team:              dto.Team,
		Goals:             dto.Goals,
		AdditionalContext: dto.AdditionalContext,
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
