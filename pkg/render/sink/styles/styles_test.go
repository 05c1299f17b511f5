package styles

import (
	"bytes"
	"strings"
	"testing"
)

func TestByName(t *testing.T) {
	if _, ok := ByName(StyleFlat).(Flat); !ok {
		t.Error("ByName(flat) should return Flat")
	}
	if _, ok := ByName(StyleOutline).(Outline); !ok {
		t.Error("ByName(outline) should return Outline")
	}
	if _, ok := ByName("unknown").(Flat); !ok {
		t.Error("ByName should default to Flat")
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		r    float64
		want float64
	}{
		{5, 9},    // clamped low
		{20, 11},  // 20 * 0.55
		{100, 18}, // clamped high
	}
	for _, tt := range tests {
		if got := labelFontSize(tt.r); got != tt.want {
			t.Errorf("labelFontSize(%g) = %g, want %g", tt.r, got, tt.want)
		}
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a<b", "a&lt;b"},
		{"a&b", "a&amp;b"},
		{`a"b`, "a&quot;b"},
		{"a>b", "a&gt;b"},
	}
	for _, tt := range tests {
		if got := escapeText(tt.in); got != tt.want {
			t.Errorf("escapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFlatRendersAgent(t *testing.T) {
	var buf bytes.Buffer
	a := Agent{ID: "Teacher_1", Label: "Teacher_1", Category: "teacher", CX: 10, CY: 20, R: 50, Fill: "rgb(0,0,255)"}

	Flat{}.RenderAgent(&buf, a)
	out := buf.String()
	if !strings.Contains(out, "<circle") {
		t.Error("flat agent should be a circle")
	}
	if !strings.Contains(out, "rgb(0,0,255)") {
		t.Error("flat agent should carry its fill color")
	}
}

func TestOutlineRendersAgent(t *testing.T) {
	var buf bytes.Buffer
	a := Agent{ID: "Teacher_1", Label: "Teacher_1", Category: "teacher", CX: 10, CY: 20, R: 50, Fill: "rgb(0,0,255)"}

	Outline{}.RenderAgent(&buf, a)
	out := buf.String()
	if !strings.Contains(out, "<circle") {
		t.Error("outline agent should be a circle")
	}
	if !strings.Contains(out, "stroke") {
		t.Error("outline agent should be stroked")
	}
}

func TestCrownPolygon(t *testing.T) {
	var buf bytes.Buffer
	a := Agent{ID: "Leader_phi", CX: 0, CY: 0, R: 75}

	renderCrownPolygon(&buf, a, "gold", "black")
	out := buf.String()
	if !strings.Contains(out, `class="crown"`) {
		t.Error("crown polygon should carry the crown class")
	}
	// Base corners plus five zig-zag points.
	if got := strings.Count(out, ","); got != 7 {
		t.Errorf("expected 7 polygon points, got %d", got)
	}
}

func TestTextEscapesLabel(t *testing.T) {
	var buf bytes.Buffer
	a := Agent{ID: "x", Label: `A <"B"> & C`, CX: 0, CY: 0, R: 50}

	Flat{}.RenderText(&buf, a)
	out := buf.String()
	if strings.Contains(out, `<"B">`) {
		t.Error("label text should be XML-escaped")
	}
	if !strings.Contains(out, "&lt;") || !strings.Contains(out, "&amp;") {
		t.Error("expected escaped entities in label text")
	}
}
