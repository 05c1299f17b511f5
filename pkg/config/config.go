// Package config loads agent world configuration from TOML files.
//
// A config file overrides the layout defaults field by field; anything left
// out keeps its default, so a minimal file like
//
//	[agents]
//	teachers = 8
//
// is valid. Colors are written as hex strings ("#ffd700") and parsed into
// the world color type.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/blackroad/agentworld/pkg/errors"
	"github.com/blackroad/agentworld/pkg/layout"
	"github.com/blackroad/agentworld/pkg/world"
)

// DefaultFilename is the config file the CLI looks for in the working directory.
const DefaultFilename = "agentworld.toml"

// File is the TOML schema. Pointer fields distinguish "absent" from "zero".
type File struct {
	Agents struct {
		Leaders            []string `toml:"leaders"`
		Teachers           *int     `toml:"teachers"`
		StudentsPerTeacher *int     `toml:"students_per_teacher"`
	} `toml:"agents"`

	Layout struct {
		Spacing          *float64 `toml:"spacing"`
		AgentSize        *float64 `toml:"agent_size"`
		LeaderElevation  *float64 `toml:"leader_elevation"`
		TeacherElevation *float64 `toml:"teacher_elevation"`
	} `toml:"layout"`

	Colors struct {
		Leader  string `toml:"leader"`
		Teacher string `toml:"teacher"`
		Student string `toml:"student"`
	} `toml:"colors"`

	Render struct {
		ShowLabels *bool `toml:"show_labels"`
	} `toml:"render"`
}

// Load reads a TOML config file and merges it onto the layout defaults.
func Load(path string) (layout.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return layout.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML bytes and merges them onto the layout defaults.
func Parse(data []byte) (layout.Config, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return layout.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	return f.Apply(layout.DefaultConfig())
}

// Apply overlays the file's set fields onto base and validates the result.
func (f *File) Apply(base layout.Config) (layout.Config, error) {
	cfg := base

	if f.Agents.Leaders != nil {
		for _, name := range f.Agents.Leaders {
			if err := errors.ValidateAgentName(name); err != nil {
				return layout.Config{}, err
			}
		}
		cfg.LeaderNames = f.Agents.Leaders
	}
	if f.Agents.Teachers != nil {
		cfg.TeacherCount = *f.Agents.Teachers
	}
	if f.Agents.StudentsPerTeacher != nil {
		cfg.StudentsPerTeacher = *f.Agents.StudentsPerTeacher
	}

	if f.Layout.Spacing != nil {
		cfg.Spacing = *f.Layout.Spacing
	}
	if f.Layout.AgentSize != nil {
		cfg.AgentSize = *f.Layout.AgentSize
	}
	if f.Layout.LeaderElevation != nil {
		cfg.LeaderElevation = *f.Layout.LeaderElevation
	}
	if f.Layout.TeacherElevation != nil {
		cfg.TeacherElevation = *f.Layout.TeacherElevation
	}

	var err error
	if cfg.LeaderColor, err = overlayColor(f.Colors.Leader, cfg.LeaderColor); err != nil {
		return layout.Config{}, err
	}
	if cfg.TeacherColor, err = overlayColor(f.Colors.Teacher, cfg.TeacherColor); err != nil {
		return layout.Config{}, err
	}
	if cfg.StudentColor, err = overlayColor(f.Colors.Student, cfg.StudentColor); err != nil {
		return layout.Config{}, err
	}

	if f.Render.ShowLabels != nil {
		cfg.ShowLabels = *f.Render.ShowLabels
	}

	if err := cfg.Validate(); err != nil {
		return layout.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	return cfg, nil
}

func overlayColor(hex string, base world.Color) (world.Color, error) {
	if hex == "" {
		return base, nil
	}
	c, err := world.ParseColor(hex)
	if err != nil {
		return world.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color %q", hex)
	}
	return c, nil
}
