// Package sink renders generated scenes to output artifacts.
//
// The SVG sink projects the 3D world onto the page with a simple oblique
// projection (x stays, depth and elevation share the vertical axis), which
// keeps the leader row, teacher grid, and student circles visually separate
// without a camera model. The JSON sink exports the full draw list,
// including decoration geometry, for external renderers.
package sink

import (
	"bytes"
	"fmt"

	"github.com/blackroad/agentworld/pkg/render/sink/styles"
	"github.com/blackroad/agentworld/pkg/world"
)

// sceneMargin is the padding around the projected content, in SVG units.
const sceneMargin = 60.0

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	links    bool
	noLabels bool
}

// WithStyle selects the visual style (default: flat).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLinks draws student-teacher relation lines under the agents.
func WithLinks() SVGOption { return func(r *svgRenderer) { r.links = true } }

// WithoutLabels suppresses labels even when the scene was generated with
// ShowLabels set.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.noLabels = true } }

// RenderSVG renders a scene as a standalone SVG document.
//
// Agents are drawn as discs colored per category, leaders carry a crown
// marker, and labels follow the scene's ShowLabels flag. RenderSVG does not
// modify the scene and is safe to call concurrently.
func RenderSVG(s world.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Flat{}}
	for _, opt := range opts {
		opt(&r)
	}

	agents := projectAgents(s)
	minX, minY, maxX, maxY := contentBounds(agents)

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f">`+"\n",
		minX-sceneMargin, minY-sceneMargin,
		maxX-minX+2*sceneMargin, maxY-minY+2*sceneMargin)

	buf.WriteString("  <defs>\n")
	r.style.RenderDefs(&buf)
	buf.WriteString("  </defs>\n")

	if r.links {
		buf.WriteString(`  <g class="links">` + "\n")
		for _, l := range buildLinks(s, agents) {
			r.style.RenderLink(&buf, l)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString(`  <g class="agents">` + "\n")
	for _, a := range agents {
		r.style.RenderAgent(&buf, a)
		if a.Category == world.CategoryLeader {
			r.style.RenderCrown(&buf, a)
		}
	}
	buf.WriteString("  </g>\n")

	if s.ShowLabels && !r.noLabels {
		buf.WriteString(`  <g class="labels">` + "\n")
		for _, a := range agents {
			r.style.RenderText(&buf, a)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// project maps a world position onto the page: x is kept, while depth and
// elevation share the vertical axis. SVG y grows downward, so higher
// elevation means smaller page y.
func project(p world.Vec3) (x, y float64) {
	return p.X, p.Y - p.Z
}

func projectAgents(s world.Scene) []styles.Agent {
	agents := make([]styles.Agent, len(s.Placements))
	for i := range s.Placements {
		p := &s.Placements[i]
		x, y := project(p.Position)
		agents[i] = styles.Agent{
			ID:       p.ID,
			Label:    p.DisplayLabel(),
			Category: p.Category,
			CX:       x,
			CY:       y,
			R:        p.Size,
			Fill:     p.Color.CSS(),
		}
	}
	return agents
}

func contentBounds(agents []styles.Agent) (minX, minY, maxX, maxY float64) {
	if len(agents) == 0 {
		return 0, 0, 100, 100
	}
	minX, minY = agents[0].CX, agents[0].CY
	maxX, maxY = minX, minY
	for _, a := range agents {
		// Crown and label extents are covered by the radius slack plus margin.
		minX = min(minX, a.CX-a.R)
		maxX = max(maxX, a.CX+a.R)
		minY = min(minY, a.CY-a.R)
		maxY = max(maxY, a.CY+a.R)
	}
	return minX, minY, maxX, maxY
}

func buildLinks(s world.Scene, agents []styles.Agent) []styles.Link {
	byID := make(map[string]styles.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}

	var links []styles.Link
	for i := range s.Placements {
		p := &s.Placements[i]
		if p.Category != world.CategoryStudent || p.ParentID == "" {
			continue
		}
		from, ok := byID[p.ID]
		if !ok {
			continue
		}
		to, ok := byID[p.ParentID]
		if !ok {
			continue
		}
		links = append(links, styles.Link{
			FromID: from.ID, ToID: to.ID,
			X1: from.CX, Y1: from.CY,
			X2: to.CX, Y2: to.CY,
		})
	}
	return links
}
