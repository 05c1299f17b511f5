package sink

import (
	"encoding/json"

	"github.com/blackroad/agentworld/pkg/decor"
	"github.com/blackroad/agentworld/pkg/world"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	decorations bool
}

// WithJSONDecorations includes crown and label geometry per agent, so an
// external renderer can draw the full scene without knowing the decoration
// rules.
func WithJSONDecorations() JSONOption {
	return func(r *jsonRenderer) { r.decorations = true }
}

type jsonOutput struct {
	Spacing    float64     `json:"spacing,omitempty"`
	AgentSize  float64     `json:"agent_size,omitempty"`
	ShowLabels bool        `json:"show_labels,omitempty"`
	Agents     []jsonAgent `json:"agents"`
}

type jsonAgent struct {
	ID       string        `json:"id"`
	Category string        `json:"category"`
	Position world.Vec3    `json:"position"`
	Color    string        `json:"color"`
	Size     float64       `json:"size"`
	ParentID string        `json:"parent_id,omitempty"`
	Tag      string        `json:"tag,omitempty"`
	Crown    []decor.Spike `json:"crown,omitempty"`
	Label    *decor.Label  `json:"label,omitempty"`
}

// RenderJSON exports the scene as a pretty-printed JSON draw list.
// This is the primary data interchange format for Agentworld, enabling:
//
//   - Integration with external renderers and engines
//   - Caching generated scenes for fast re-rendering
//   - Round-trip rendering (re-import and render identically)
//
// Colors are emitted as hex strings for portability. With
// [WithJSONDecorations], each leader carries its crown spike geometry and
// each agent its label marker.
//
// RenderJSON returns an error only if JSON marshaling fails (should not
// happen with well-formed scenes). It does not modify the scene and is safe
// to call concurrently.
func RenderJSON(s world.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Spacing:    s.Spacing,
		AgentSize:  s.AgentSize,
		ShowLabels: s.ShowLabels,
		Agents:     make([]jsonAgent, len(s.Placements)),
	}

	for i := range s.Placements {
		p := s.Placements[i]
		a := jsonAgent{
			ID:       p.ID,
			Category: p.Category,
			Position: p.Position,
			Color:    p.Color.Hex(),
			Size:     p.Size,
			ParentID: p.ParentID,
			Tag:      p.Tag,
		}
		if r.decorations {
			a.Crown = decor.Crown(p)
			if s.ShowLabels {
				label := decor.LabelFor(p)
				a.Label = &label
			}
		}
		out.Agents[i] = a
	}

	return json.MarshalIndent(out, "", "  ")
}
