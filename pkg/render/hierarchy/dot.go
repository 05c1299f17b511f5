// Package hierarchy renders the leader → teacher → student relation graph
// as a node-link diagram via Graphviz.
package hierarchy

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/blackroad/agentworld/pkg/world"
)

// Options configures hierarchy diagram rendering.
type Options struct {
	// Detailed includes positions and sizes in node labels.
	// When false, only the agent's display label is shown.
	Detailed bool
}

// ToDOT converts a scene's relation structure to Graphviz DOT format.
// Teachers link to the leader named in their Tag; students link to the
// teacher in their ParentID. The resulting DOT string can be rendered
// with [RenderSVG].
func ToDOT(s world.Scene, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph agents {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=18, fixedsize=false];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	leaderID := make(map[string]string, 8)
	for i := range s.Placements {
		p := &s.Placements[i]
		if p.Category == world.CategoryLeader {
			// Leaders are addressed by roster name in teacher tags.
			leaderID[strings.TrimPrefix(p.ID, "Leader_")] = p.ID
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n",
			p.ID, fmtLabel(p, opts.Detailed), p.Color.Hex())
	}

	buf.WriteString("\n")
	for i := range s.Placements {
		p := &s.Placements[i]
		switch p.Category {
		case world.CategoryTeacher:
			if id, ok := leaderID[p.Tag]; ok {
				fmt.Fprintf(&buf, "  %q -> %q;\n", id, p.ID)
			}
		case world.CategoryStudent:
			if p.ParentID != "" {
				fmt.Fprintf(&buf, "  %q -> %q;\n", p.ParentID, p.ID)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p *world.Placement, detailed bool) string {
	if !detailed {
		return p.DisplayLabel()
	}
	return fmt.Sprintf("%s\npos: (%g, %g, %g)\nsize: %g",
		p.DisplayLabel(), p.Position.X, p.Position.Y, p.Position.Z, p.Size)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
