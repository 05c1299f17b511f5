package styles

import (
	"bytes"
	"fmt"
)

// Flat renders solid filled discs with a soft drop shadow.
// This is the default style.
type Flat struct{}

// RenderDefs writes the shared drop shadow filter.
func (Flat) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`    <filter id="agent-shadow" x="-20%" y="-20%" width="140%" height="140%">
      <feDropShadow dx="0" dy="2" stdDeviation="3" flood-opacity="0.25"/>
    </filter>
`)
}

// RenderAgent draws a filled disc with a dark outline.
func (Flat) RenderAgent(buf *bytes.Buffer, a Agent) {
	fmt.Fprintf(buf,
		`    <circle id="agent-%s" class="agent agent-%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="#333" stroke-width="1.5" filter="url(#agent-shadow)"/>`+"\n",
		a.ID, a.Category, a.CX, a.CY, a.R, a.Fill)
}

// RenderLink draws a solid grey relation line.
func (Flat) RenderLink(buf *bytes.Buffer, l Link) {
	fmt.Fprintf(buf,
		`    <line class="link" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#999" stroke-width="1"/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2)
}

// RenderCrown draws a five-point crown polygon above the agent.
func (Flat) RenderCrown(buf *bytes.Buffer, a Agent) {
	renderCrownPolygon(buf, a, "#ffff00", "#333")
}

// RenderText draws the label centered under the agent.
func (Flat) RenderText(buf *bytes.Buffer, a Agent) {
	fmt.Fprintf(buf,
		`    <text class="agent-label" x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" fill="#222" font-family="sans-serif">%s</text>`+"\n",
		a.CX, a.CY+a.R+14, labelFontSize(a.R), escapeText(a.Label))
}

// Ensure Flat implements Style.
var _ Style = Flat{}
