package world

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Scene - Serializable Output Envelope
// =============================================================================

// Scene is the canonical serialization format for a generated agent world.
// It carries the placement records together with the layout parameters that
// produced them, so a scene file can be re-rendered without the original
// configuration.
//
// The format is human-readable and round-trip stable: generate → export →
// re-import → render produces identical artifacts.
type Scene struct {
	Placements []Placement `json:"placements"`

	// Echo of the generating options, for reproducible re-rendering.
	Spacing    float64 `json:"spacing,omitempty"`
	AgentSize  float64 `json:"agent_size,omitempty"`
	ShowLabels bool    `json:"show_labels,omitempty"`
}

// Leaders returns the leader placements in scene order.
func (s *Scene) Leaders() []Placement { return s.byCategory(CategoryLeader) }

// Teachers returns the teacher placements in scene order.
func (s *Scene) Teachers() []Placement { return s.byCategory(CategoryTeacher) }

// Students returns the student placements in scene order.
func (s *Scene) Students() []Placement { return s.byCategory(CategoryStudent) }

func (s *Scene) byCategory(cat string) []Placement {
	var out []Placement
	for i := range s.Placements {
		if s.Placements[i].Category == cat {
			out = append(out, s.Placements[i])
		}
	}
	return out
}

// StudentsOf returns the students grouped under the teacher with the given ID.
func (s *Scene) StudentsOf(teacherID string) []Placement {
	var out []Placement
	for i := range s.Placements {
		p := s.Placements[i]
		if p.Category == CategoryStudent && p.ParentID == teacherID {
			out = append(out, p)
		}
	}
	return out
}

// =============================================================================
// Scene Serialization API
// =============================================================================

// MarshalScene serializes a Scene to pretty-printed JSON bytes.
func MarshalScene(s Scene) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalScene deserializes JSON bytes into a Scene and validates the
// placement invariants.
func UnmarshalScene(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("unmarshal scene: %w", err)
	}
	if err := Validate(s.Placements); err != nil {
		return Scene{}, fmt.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

// WriteScene writes a Scene as JSON to an io.Writer.
func WriteScene(s Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteSceneFile writes a Scene to a JSON file.
// The file is created with 0644 permissions.
func WriteSceneFile(s Scene, path string) error {
	data, err := MarshalScene(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadSceneFile reads a Scene from a JSON file.
// Returns validation errors for malformed scenes.
func ReadSceneFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalScene(data)
}

// ReadScene decodes a JSON scene from an io.Reader.
// Use ReadSceneFile for files or pass bytes.NewReader for in-memory data.
func ReadScene(r io.Reader) (Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Scene{}, fmt.Errorf("read: %w", err)
	}
	return UnmarshalScene(data)
}
