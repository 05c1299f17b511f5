package layout

import (
	"fmt"
	"math"

	"github.com/blackroad/agentworld/pkg/world"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Pipeline
// =============================================================================

const (
	// DefaultSpacing is the base distance unit for all layout offsets.
	DefaultSpacing = 200.0

	// DefaultAgentSize is the base agent radius. Leaders render at 1.5x,
	// students at 0.8x.
	DefaultAgentSize = 50.0

	// DefaultLeaderElevation is the Z coordinate of the leader row.
	DefaultLeaderElevation = 500.0

	// DefaultTeacherElevation is the Z coordinate of the teacher grid.
	DefaultTeacherElevation = -500.0

	// DefaultTeacherCount is the number of teachers generated when
	// unconfigured.
	DefaultTeacherCount = 20

	// DefaultStudentsPerTeacher is the number of students circling each
	// teacher when unconfigured.
	DefaultStudentsPerTeacher = 2
)

// Size multipliers per category.
const (
	LeaderSizeScale  = 1.5
	StudentSizeScale = 0.8
)

// teachersPerRow is the fixed width of the teacher grid.
const teachersPerRow = 5

// DefaultLeaderNames is the default leader roster.
func DefaultLeaderNames() []string {
	return []string{"phi", "gpt", "mistral", "codex", "lucidia"}
}

// =============================================================================
// Config
// =============================================================================

// Config holds the static parameters the generator is a function of.
// The zero value is usable but empty; DefaultConfig returns the standard
// world.
type Config struct {
	// LeaderNames defines leader count and identity, in order.
	LeaderNames []string `json:"leader_names,omitempty"`

	// TeacherCount is the number of teachers to place. Negative values
	// clamp to zero.
	TeacherCount int `json:"teacher_count"`

	// StudentsPerTeacher is the number of students circling each teacher.
	// Negative values clamp to zero.
	StudentsPerTeacher int `json:"students_per_teacher"`

	// Spacing is the base distance unit for every offset in the layout.
	Spacing float64 `json:"spacing"`

	// AgentSize is the base size; leaders scale by 1.5, students by 0.8.
	AgentSize float64 `json:"agent_size"`

	// Elevations of the leader row and the teacher grid.
	LeaderElevation  float64 `json:"leader_elevation"`
	TeacherElevation float64 `json:"teacher_elevation"`

	// Per-category colors.
	LeaderColor  world.Color `json:"leader_color"`
	TeacherColor world.Color `json:"teacher_color"`
	StudentColor world.Color `json:"student_color"`

	// ShowLabels asks the renderer to attach a text label per agent.
	// The generator itself only passes it through.
	ShowLabels bool `json:"show_labels"`
}

// DefaultConfig returns the standard agent world configuration:
// five leaders, twenty teachers with two students each, gold/blue/green.
func DefaultConfig() Config {
	return Config{
		LeaderNames:        DefaultLeaderNames(),
		TeacherCount:       DefaultTeacherCount,
		StudentsPerTeacher: DefaultStudentsPerTeacher,
		Spacing:            DefaultSpacing,
		AgentSize:          DefaultAgentSize,
		LeaderElevation:    DefaultLeaderElevation,
		TeacherElevation:   DefaultTeacherElevation,
		LeaderColor:        world.Gold,
		TeacherColor:       world.Blue,
		StudentColor:       world.Green,
		ShowLabels:         true,
	}
}

// Validate checks that the continuous parameters are usable.
// Counts are not validated here: negative counts clamp during generation.
func (c Config) Validate() error {
	if c.Spacing <= 0 {
		return fmt.Errorf("spacing must be positive, got %g", c.Spacing)
	}
	if c.AgentSize <= 0 {
		return fmt.Errorf("agent size must be positive, got %g", c.AgentSize)
	}
	return nil
}

// TotalAgents returns the number of placements Generate will produce.
func (c Config) TotalAgents() int {
	teachers := max(c.TeacherCount, 0)
	students := teachers * max(c.StudentsPerTeacher, 0)
	return len(c.LeaderNames) + teachers + students
}

// =============================================================================
// Generation
// =============================================================================

// Generate computes the full placement set for cfg.
//
// The output order is stable: all leaders in roster order, then for each
// teacher (grid order) the teacher followed by its students (angular order).
// Calling Generate twice with the same configuration yields bit-identical
// results.
func Generate(cfg Config) []world.Placement {
	placements := make([]world.Placement, 0, cfg.TotalAgents())
	placements = appendLeaders(placements, cfg)
	placements = appendTeachersAndStudents(placements, cfg)
	return placements
}

// appendLeaders places leaders along the X axis at the leader elevation,
// evenly spaced by twice the base spacing.
func appendLeaders(out []world.Placement, cfg Config) []world.Placement {
	for i, name := range cfg.LeaderNames {
		out = append(out, world.Placement{
			ID:       fmt.Sprintf("Leader_%s", name),
			Category: world.CategoryLeader,
			Position: world.Vec3{
				X: float64(i) * cfg.Spacing * 2,
				Y: 0,
				Z: cfg.LeaderElevation,
			},
			Color: cfg.LeaderColor,
			Size:  cfg.AgentSize * LeaderSizeScale,
		})
	}
	return out
}

// appendTeachersAndStudents places teachers in a fixed-width grid at the
// teacher elevation and, for each teacher, its students on a circle of
// radius Spacing at the same elevation.
func appendTeachersAndStudents(out []world.Placement, cfg Config) []world.Placement {
	teacherCount := max(cfg.TeacherCount, 0)
	studentsPer := max(cfg.StudentsPerTeacher, 0)

	for i := 0; i < teacherCount; i++ {
		row := i / teachersPerRow
		col := i % teachersPerRow
		pos := world.Vec3{
			X: float64(col) * cfg.Spacing * 3,
			Y: float64(row) * cfg.Spacing * 4,
			Z: cfg.TeacherElevation,
		}

		teacher := world.Placement{
			ID:       fmt.Sprintf("Teacher_%d", i+1),
			Category: world.CategoryTeacher,
			Position: pos,
			Color:    cfg.TeacherColor,
			Size:     cfg.AgentSize,
		}
		// Round-robin leader affinity; ungrouped when there are no leaders.
		if len(cfg.LeaderNames) > 0 {
			teacher.Tag = cfg.LeaderNames[i%len(cfg.LeaderNames)]
		}
		out = append(out, teacher)

		for j := 0; j < studentsPer; j++ {
			angle := float64(j) * 360 / float64(studentsPer) * math.Pi / 180
			offset := world.Vec3{
				X: math.Cos(angle) * cfg.Spacing,
				Y: math.Sin(angle) * cfg.Spacing,
				Z: 0,
			}
			out = append(out, world.Placement{
				ID:       fmt.Sprintf("Teacher_%d_Student_%d", i+1, j+1),
				Category: world.CategoryStudent,
				Position: pos.Add(offset),
				Color:    cfg.StudentColor,
				Size:     cfg.AgentSize * StudentSizeScale,
				ParentID: teacher.ID,
			})
		}
	}
	return out
}

// GenerateScene runs Generate and wraps the result in a serializable Scene.
func GenerateScene(cfg Config) world.Scene {
	return world.Scene{
		Placements: Generate(cfg),
		Spacing:    cfg.Spacing,
		AgentSize:  cfg.AgentSize,
		ShowLabels: cfg.ShowLabels,
	}
}
