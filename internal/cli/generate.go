package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/agentworld/pkg/config"
	"github.com/blackroad/agentworld/pkg/errors"
	"github.com/blackroad/agentworld/pkg/layout"
	"github.com/blackroad/agentworld/pkg/pipeline"
	"github.com/blackroad/agentworld/pkg/world"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string   // TOML config file path
	output     string   // scene output file
	noCache    bool     // disable caching
	refresh    bool     // bypass the cache for this run
	leaders    []string // leader roster override
	teachers   int      // teacher count override
	students   int      // students-per-teacher override
	spacing    float64  // spacing override
	agentSize  float64  // agent size override
	noLabels   bool     // omit labels from the scene
}

// generateCommand creates the generate command for computing agent placements.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{teachers: -1, students: -1}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute agent placements from configuration",
		Long: `Compute agent placements from configuration.

The generate command computes a deterministic 3D layout for the configured
agent hierarchy: leaders on an elevated axis, teachers in a grid below, and
students circling their teacher. The output is a scene.json file that can be
rendered with the 'render' command.

Configuration is read from agentworld.toml in the working directory (or the
file given with --config); command-line flags override individual values.
Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./"+config.DefaultFilename+" if present)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "scene.json", "output file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")

	cmd.Flags().StringSliceVar(&opts.leaders, "leaders", nil, "leader names (overrides config)")
	cmd.Flags().IntVar(&opts.teachers, "teachers", -1, "teacher count (overrides config)")
	cmd.Flags().IntVar(&opts.students, "students", -1, "students per teacher (overrides config)")
	cmd.Flags().Float64Var(&opts.spacing, "spacing", 0, "base spacing (overrides config)")
	cmd.Flags().Float64Var(&opts.agentSize, "size", 0, "base agent size (overrides config)")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "do not label agents")

	return cmd
}

// runGenerate resolves configuration, computes the scene, and writes output.
func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{Layout: cfg, Refresh: opts.refresh, Logger: c.Logger}

	tracker := newProgress(c.Logger)
	scene, cacheHit, err := runner.GenerateSceneWithCacheInfo(ctx, pipeOpts)
	if err != nil {
		return fmt.Errorf("generate scene: %w", err)
	}
	tracker.done(fmt.Sprintf("Placed %d agents", len(scene.Placements)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := world.WriteSceneFile(scene, opts.output); err != nil {
		return fmt.Errorf("write output %s: %w", opts.output, err)
	}

	counts := world.CountByCategory(scene.Placements)
	printSuccess("Scene generated")
	printFile(opts.output)
	printStats(counts[world.CategoryLeader], counts[world.CategoryTeacher], counts[world.CategoryStudent], cacheHit)
	printNewline()
	printNextStep("Render", "agentworld render "+opts.output)

	return nil
}

// resolveConfig builds the layout config from file and flag overrides.
// An explicit --config path must exist; the default agentworld.toml is
// optional.
func resolveConfig(opts generateOpts) (cfg layout.Config, err error) {
	path := opts.configPath
	optional := false
	if path == "" {
		path = config.DefaultFilename
		optional = true
	}

	cfg, err = config.Load(path)
	if err != nil {
		if optional && errors.Is(err, errors.ErrCodeFileNotFound) {
			cfg = layout.DefaultConfig()
			err = nil
		} else {
			return cfg, err
		}
	}

	if opts.leaders != nil {
		for _, name := range opts.leaders {
			if nameErr := errors.ValidateAgentName(name); nameErr != nil {
				return cfg, nameErr
			}
		}
		cfg.LeaderNames = opts.leaders
	}
	if opts.teachers >= 0 {
		cfg.TeacherCount = opts.teachers
	}
	if opts.students >= 0 {
		cfg.StudentsPerTeacher = opts.students
	}
	if opts.spacing > 0 {
		cfg.Spacing = opts.spacing
	}
	if opts.agentSize > 0 {
		cfg.AgentSize = opts.agentSize
	}
	if opts.noLabels {
		cfg.ShowLabels = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid configuration")
	}
	return cfg, nil
}
