// Package styles defines the visual styles for scene SVG rendering.
package styles

import "bytes"

// Style names accepted by the render pipeline.
const (
	StyleFlat    = "flat"
	StyleOutline = "outline"
)

// Style defines the visual appearance for scene rendering.
// Implementations control how agents, links, markers, and text are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderAgent writes the SVG for a single agent disc.
	RenderAgent(buf *bytes.Buffer, a Agent)
	// RenderLink writes the SVG for a student-teacher link line.
	RenderLink(buf *bytes.Buffer, l Link)
	// RenderCrown writes the SVG for a leader's crown marker.
	RenderCrown(buf *bytes.Buffer, a Agent)
	// RenderText writes the SVG for an agent's label text.
	RenderText(buf *bytes.Buffer, a Agent)
}

// Agent contains all data needed to render a single agent.
type Agent struct {
	ID       string  // Placement identifier
	Label    string  // Display text
	Category string  // leader, teacher, or student
	CX, CY   float64 // Projected center
	R        float64 // Projected radius
	Fill     string  // CSS color
}

// Link contains positioning data for a student-teacher relation line.
type Link struct {
	FromID, ToID   string
	X1, Y1, X2, Y2 float64
}

// ByName returns the style implementation for a style name,
// defaulting to flat for unknown names.
func ByName(name string) Style {
	if name == StyleOutline {
		return Outline{}
	}
	return Flat{}
}
