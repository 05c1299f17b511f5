// Package decor computes decoration geometry for placed agents: the crown
// spikes that mark leaders and the floating text labels. Decorations are
// pure functions of a placement, so a renderer can ask "what else do I draw
// here" without the layout generator knowing anything about meshes or fonts.
package decor

import (
	"math"

	"github.com/blackroad/agentworld/pkg/world"
)

// Crown geometry. Five spikes on a ring above the agent, matching the
// classic five-point crown silhouette.
const (
	CrownSpikes    = 5
	CrownRadius    = 30.0
	CrownElevation = 120.0
)

// Label geometry.
const (
	LabelElevation = 150.0
	LabelTextSize  = 40.0
)

// Spike is one crown spike: a small elongated box at a world position.
type Spike struct {
	Position world.Vec3 `json:"position"`
	Scale    world.Vec3 `json:"scale"`
	Color    world.Color `json:"color"`
}

// Label is a floating text marker above an agent.
type Label struct {
	Text     string      `json:"text"`
	Position world.Vec3  `json:"position"`
	Size     float64     `json:"size"`
	Color    world.Color `json:"color"`
}

// Crown returns the spike geometry for a leader placement, or nil for any
// other category. Spikes sit on a radius-30 ring 120 above the agent, at
// 72 degree steps.
func Crown(p world.Placement) []Spike {
	if p.Category != world.CategoryLeader {
		return nil
	}

	center := p.Position.Add(world.Vec3{Z: CrownElevation})
	spikes := make([]Spike, 0, CrownSpikes)
	for i := 0; i < CrownSpikes; i++ {
		angle := float64(i) * (360.0 / CrownSpikes) * math.Pi / 180
		spikes = append(spikes, Spike{
			Position: center.Add(world.Vec3{
				X: math.Cos(angle) * CrownRadius,
				Y: math.Sin(angle) * CrownRadius,
			}),
			Scale: world.Vec3{X: 0.1, Y: 0.1, Z: 0.3},
			Color: world.Yellow,
		})
	}
	return spikes
}

// LabelFor returns the text label for a placement: the agent's display label
// floating 150 above it, white, centered.
func LabelFor(p world.Placement) Label {
	return Label{
		Text:     p.DisplayLabel(),
		Position: p.Position.Add(world.Vec3{Z: LabelElevation}),
		Size:     LabelTextSize,
		Color:    world.White,
	}
}
