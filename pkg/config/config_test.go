package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackroad/agentworld/pkg/errors"
	"github.com/blackroad/agentworld/pkg/layout"
	"github.com/blackroad/agentworld/pkg/world"
)

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// An empty file is just the defaults.
	def := layout.DefaultConfig()
	if cfg.TeacherCount != def.TeacherCount {
		t.Errorf("teacher count = %d, want default %d", cfg.TeacherCount, def.TeacherCount)
	}
	if cfg.Spacing != def.Spacing {
		t.Errorf("spacing = %g, want default %g", cfg.Spacing, def.Spacing)
	}
	if cfg.LeaderColor != world.Gold {
		t.Error("leader color should default to gold")
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
[agents]
leaders = ["alpha", "beta"]
teachers = 8
students_per_teacher = 3

[layout]
spacing = 150.0
agent_size = 25.0
leader_elevation = 300.0
teacher_elevation = -200.0

[colors]
leader = "#ff0000"

[render]
show_labels = false
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(cfg.LeaderNames) != 2 || cfg.LeaderNames[0] != "alpha" {
		t.Errorf("leaders = %v", cfg.LeaderNames)
	}
	if cfg.TeacherCount != 8 {
		t.Errorf("teacher count = %d, want 8", cfg.TeacherCount)
	}
	if cfg.StudentsPerTeacher != 3 {
		t.Errorf("students per teacher = %d, want 3", cfg.StudentsPerTeacher)
	}
	if cfg.Spacing != 150 || cfg.AgentSize != 25 {
		t.Errorf("layout overrides not applied: spacing %g size %g", cfg.Spacing, cfg.AgentSize)
	}
	if cfg.LeaderElevation != 300 || cfg.TeacherElevation != -200 {
		t.Errorf("elevations not applied: %g, %g", cfg.LeaderElevation, cfg.TeacherElevation)
	}
	if cfg.LeaderColor != world.RGB(1, 0, 0) {
		t.Errorf("leader color = %+v, want red", cfg.LeaderColor)
	}
	// Untouched colors keep their defaults.
	if cfg.TeacherColor != world.Blue {
		t.Error("teacher color should remain blue")
	}
	if cfg.ShowLabels {
		t.Error("show_labels = false should be applied")
	}
}

func TestParsePartialSection(t *testing.T) {
	cfg, err := Parse([]byte("[agents]\nteachers = 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TeacherCount != 2 {
		t.Errorf("teacher count = %d, want 2", cfg.TeacherCount)
	}
	// Everything else defaults.
	if cfg.StudentsPerTeacher != layout.DefaultStudentsPerTeacher {
		t.Errorf("students per teacher should default, got %d", cfg.StudentsPerTeacher)
	}
}

func TestParseZeroCounts(t *testing.T) {
	// Explicit zero is distinct from absent.
	cfg, err := Parse([]byte("[agents]\nteachers = 0\nstudents_per_teacher = 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TeacherCount != 0 || cfg.StudentsPerTeacher != 0 {
		t.Errorf("explicit zeros not applied: %d, %d", cfg.TeacherCount, cfg.StudentsPerTeacher)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"invalid toml", "not [valid", errors.ErrCodeInvalidConfig},
		{"bad color", "[colors]\nleader = \"chartreuse\"\n", errors.ErrCodeInvalidColor},
		{"zero spacing", "[layout]\nspacing = 0.0\n", errors.ErrCodeInvalidConfig},
		{"bad leader name", "[agents]\nleaders = [\"a/b\"]\n", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentworld.toml")
	if err := os.WriteFile(path, []byte("[agents]\nteachers = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TeacherCount != 4 {
		t.Errorf("teacher count = %d, want 4", cfg.TeacherCount)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want file not found", errors.GetCode(err))
	}
}
