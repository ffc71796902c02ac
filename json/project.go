package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/kickoff"
)

// projectEnvelope is the v1 wire format for a generated project.
type projectEnvelope struct {
	Version     int         `json:"version"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Tasks       []taskDTO   `json:"tasks"`
	Metadata    metadataDTO `json:"metadata"`
}

type taskDTO struct {
	Name string `json:"name"`
}

type metadataDTO struct {
	SessionID string     `json:"session_id"`
	Model     string     `json:"model,omitempty"`
	Context   contextDTO `json:"context"`
}

// MarshalProject serializes a GeneratedProject to JSON in v1 envelope format.
func MarshalProject(p kickoff.GeneratedProject) ([]byte, error) {
	env := projectEnvelope{
		Version:     1,
		Name:        p.Name,
		Description: p.Description,
		Tasks:       make([]taskDTO, len(p.Tasks)),
		Metadata: metadataDTO{
			SessionID: p.Metadata.SessionID,
			Model:     p.Metadata.Model,
			Context:   toContextDTO(p.Metadata.Context),
		},
	}
	for i, t := range p.Tasks {
		env.Tasks[i] = taskDTO{Name: t.Name}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalProject deserializes a GeneratedProject from JSON in v1
// envelope format.
func UnmarshalProject(data []byte) (kickoff.GeneratedProject, error) {
	var env projectEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return kickoff.GeneratedProject{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return kickoff.GeneratedProject{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	p := kickoff.GeneratedProject{
		Name:        env.Name,
		Description: env.Description,
		Metadata: kickoff.GenerationMetadata{
			SessionID: env.Metadata.SessionID,
			Model:     env.Metadata.Model,
			Context:   fromContextDTO(env.Metadata.Context),
		},
	}
	for _, t := range env.Tasks {
		p.Tasks = append(p.Tasks, kickoff.Task{Name: t.Name})
	}
	return p, nil
}

// SaveProject writes a GeneratedProject to a JSON file, creating parent
// directories as needed.
func SaveProject(path string, p kickoff.GeneratedProject) error {
	data, err := MarshalProject(p)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return writeFile(path, data)
}

// LoadProject reads a GeneratedProject from a JSON file.
func LoadProject(path string) (kickoff.GeneratedProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return kickoff.GeneratedProject{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalProject(data)
}
