package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackroad/agentworld/pkg/pipeline"
	"github.com/blackroad/agentworld/pkg/world"
)

// renderCommand creates the render command for producing visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		formats string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [scene.json]",
		Short: "Render a scene as SVG, JSON, or DOT",
		Long: `Render a scene as SVG, JSON, or DOT.

The render command takes a scene.json file (produced by 'generate') and
renders it into one or more output formats:

  svg   an oblique 2D projection of the 3D world (or, with -t hierarchy,
        a Graphviz node-link diagram of the agent relations)
  json  the full draw list including crown and label geometry
  dot   the relation graph in Graphviz DOT format (hierarchy only)

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formats)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output basename (default: input basename)")
	cmd.Flags().StringVarP(&formats, "formats", "f", "svg", "comma-separated output formats: svg, json, dot")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVarP(&opts.VizType, "type", "t", pipeline.DefaultVizType, "visualization type: scene (default), hierarchy")
	cmd.Flags().StringVar(&opts.Style, "style", pipeline.DefaultStyle, "visual style: flat (default), outline")
	cmd.Flags().BoolVar(&opts.ShowLinks, "links", false, "draw student-teacher lines (scene)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "verbose node labels (hierarchy)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cache")

	return cmd
}

// runRender loads the scene, renders all requested formats, and writes output files.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	scene, err := world.ReadSceneFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, scene, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}

	counts := world.CountByCategory(scene.Placements)
	printStats(counts[world.CategoryLeader], counts[world.CategoryTeacher], counts[world.CategoryStudent], cacheHit)

	return nil
}
