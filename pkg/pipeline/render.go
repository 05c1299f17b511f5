package pipeline

import (
	"github.com/blackroad/agentworld/pkg/errors"
	"github.com/blackroad/agentworld/pkg/render/hierarchy"
	"github.com/blackroad/agentworld/pkg/render/sink"
	"github.com/blackroad/agentworld/pkg/render/sink/styles"
	"github.com/blackroad/agentworld/pkg/world"
)

// RenderFromScene produces all requested artifacts from a scene.
// The scene visualization renders directly; the hierarchy visualization
// goes through DOT and, for SVG, through Graphviz.
func RenderFromScene(scene world.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		data, err := renderFormat(scene, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderFormat(scene world.Scene, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return sink.RenderJSON(scene, sink.WithJSONDecorations())

	case FormatDOT:
		return []byte(hierarchy.ToDOT(scene, hierarchy.Options{Detailed: opts.Detailed})), nil

	case FormatSVG:
		if opts.IsHierarchy() {
			dot := hierarchy.ToDOT(scene, hierarchy.Options{Detailed: opts.Detailed})
			return hierarchy.RenderSVG(dot)
		}
		svgOpts := []sink.SVGOption{sink.WithStyle(styles.ByName(opts.Style))}
		if opts.ShowLinks {
			svgOpts = append(svgOpts, sink.WithLinks())
		}
		return sink.RenderSVG(scene, svgOpts...), nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}
