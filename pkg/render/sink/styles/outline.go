package styles

import (
	"bytes"
	"fmt"
)

// Outline renders unfilled discs with colored strokes and dashed links.
// Suited for print and for dense scenes where filled discs overlap.
type Outline struct{}

// RenderDefs writes nothing; the outline style needs no defs.
func (Outline) RenderDefs(buf *bytes.Buffer) {}

// RenderAgent draws a stroked, unfilled disc.
func (Outline) RenderAgent(buf *bytes.Buffer, a Agent) {
	fmt.Fprintf(buf,
		`    <circle id="agent-%s" class="agent agent-%s" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="2.5"/>`+"\n",
		a.ID, a.Category, a.CX, a.CY, a.R, a.Fill)
}

// RenderLink draws a dashed relation line.
func (Outline) RenderLink(buf *bytes.Buffer, l Link) {
	fmt.Fprintf(buf,
		`    <line class="link" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#bbb" stroke-width="1" stroke-dasharray="4 3"/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2)
}

// RenderCrown draws the crown as an unfilled polygon.
func (Outline) RenderCrown(buf *bytes.Buffer, a Agent) {
	renderCrownPolygon(buf, a, "none", a.Fill)
}

// RenderText draws the label in the agent's stroke color.
func (Outline) RenderText(buf *bytes.Buffer, a Agent) {
	fmt.Fprintf(buf,
		`    <text class="agent-label" x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" fill="%s" font-family="sans-serif">%s</text>`+"\n",
		a.CX, a.CY+a.R+14, labelFontSize(a.R), a.Fill, escapeText(a.Label))
}

// Ensure Outline implements Style.
var _ Style = Outline{}
