package world

import (
	"fmt"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Category identifies the role of a generated agent.
// The set is closed; renderers may rely on it being exactly these three values.
const (
	CategoryLeader  = "leader"
	CategoryTeacher = "teacher"
	CategoryStudent = "student"
)

// ValidCategories is the set of recognized agent categories.
var ValidCategories = map[string]bool{
	CategoryLeader:  true,
	CategoryTeacher: true,
	CategoryStudent: true,
}

// =============================================================================
// Vec3 - 3D Position
// =============================================================================

// Vec3 is a 3D coordinate. X/Y span the ground plane, Z is elevation.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// =============================================================================
// Placement - Generated Agent Record
// =============================================================================

// Placement describes one agent for the rendering collaborator: where it sits,
// what it looks like, and how it relates to the rest of the scene.
//
// ParentID is a grouping relation, not ownership: students reference the
// teacher they circle; leaders and teachers have no parent. Tag carries an
// optional free-form grouping hint (teachers store the name of the leader
// they are assigned to round-robin).
type Placement struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Label    string  `json:"label,omitempty"` // Display label (defaults to ID)
	Position Vec3    `json:"position"`
	Color    Color   `json:"color"`
	Size     float64 `json:"size"`
	ParentID string  `json:"parent_id,omitempty"`
	Tag      string  `json:"tag,omitempty"`
}

// IsLeader returns true if this placement is a leader agent.
func (p *Placement) IsLeader() bool { return p.Category == CategoryLeader }

// IsTeacher returns true if this placement is a teacher agent.
func (p *Placement) IsTeacher() bool { return p.Category == CategoryTeacher }

// IsStudent returns true if this placement is a student agent.
func (p *Placement) IsStudent() bool { return p.Category == CategoryStudent }

// DisplayLabel returns the label if set, otherwise the ID.
func (p *Placement) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.ID
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks the structural invariants of a placement set:
//
//   - every ID is non-empty and unique
//   - every category is one of the recognized values
//   - every size is strictly positive
//   - every student's ParentID resolves to a teacher in the same set
//
// The layout generator always produces sets that pass; Validate guards
// scene files arriving from disk or other tools.
func Validate(placements []Placement) error {
	seen := make(map[string]string, len(placements))
	for i := range placements {
		p := &placements[i]
		if p.ID == "" {
			return fmt.Errorf("placement %d: empty id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate placement id %q", p.ID)
		}
		if !ValidCategories[p.Category] {
			return fmt.Errorf("placement %s: unknown category %q", p.ID, p.Category)
		}
		if p.Size <= 0 {
			return fmt.Errorf("placement %s: size must be positive, got %g", p.ID, p.Size)
		}
		seen[p.ID] = p.Category
	}

	for i := range placements {
		p := &placements[i]
		if p.Category != CategoryStudent {
			continue
		}
		cat, ok := seen[p.ParentID]
		if !ok {
			return fmt.Errorf("student %s: parent %q not in scene", p.ID, p.ParentID)
		}
		if cat != CategoryTeacher {
			return fmt.Errorf("student %s: parent %q is a %s, not a teacher", p.ID, p.ParentID, cat)
		}
	}

	return nil
}

// CountByCategory returns the number of placements per category.
func CountByCategory(placements []Placement) map[string]int {
	counts := make(map[string]int, 3)
	for i := range placements {
		counts[placements[i].Category]++
	}
	return counts
}
