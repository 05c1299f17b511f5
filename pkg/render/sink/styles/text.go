package styles

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

// labelFontSize scales the label with the agent radius, clamped to stay
// legible at small sizes.
func labelFontSize(r float64) float64 {
	size := r * 0.55
	if size < 9 {
		return 9
	}
	if size > 18 {
		return 18
	}
	return size
}

// escapeText escapes the XML special characters that can appear in agent names.
func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// renderCrownPolygon writes a five-point crown above the agent disc.
// The crown width tracks the disc diameter; the five points echo the
// five-spike crown decoration of the 3D scene.
func renderCrownPolygon(buf *bytes.Buffer, a Agent, fill, stroke string) {
	w := a.R * 1.4
	h := a.R * 0.6
	baseY := a.CY - a.R - 4
	left := a.CX - w/2

	// Zig-zag across the top edge: base left, three peaks, base right.
	points := make([]string, 0, 7)
	points = append(points, fmt.Sprintf("%.2f,%.2f", left, baseY))
	for i := 0; i < 5; i++ {
		x := left + w*float64(i)/4
		y := baseY - h
		if i%2 == 1 {
			y = baseY - h*0.45
		}
		points = append(points, fmt.Sprintf("%.2f,%.2f", x, math.Min(y, baseY)))
	}
	points = append(points, fmt.Sprintf("%.2f,%.2f", left+w, baseY))

	fmt.Fprintf(buf,
		`    <polygon class="crown" points="%s" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		strings.Join(points, " "), fill, stroke)
}
