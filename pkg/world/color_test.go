package world

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#ffd700", Color{R: 1, G: 215.0 / 255, B: 0, A: 1}, false},
		{"ffd700", Color{R: 1, G: 215.0 / 255, B: 0, A: 1}, false},
		{"#0000ff", Color{R: 0, G: 0, B: 1, A: 1}, false},
		{"#00ff0080", Color{R: 0, G: 1, B: 0, A: 128.0 / 255}, false},
		{"  #ffffff ", Color{R: 1, G: 1, B: 1, A: 1}, false},
		{"#fff", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if !colorNear(got, tt.want) {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func colorNear(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#ffd700", "#0000ff", "#00ff00", "#ffffff", "#000000"} {
		c, err := ParseColor(hex)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", hex, err)
		}
		if c.Hex() != hex {
			t.Errorf("Hex round trip: %q -> %q", hex, c.Hex())
		}
	}
}

func TestCSS(t *testing.T) {
	if got := Gold.CSS(); got != "rgb(255,214,0)" {
		t.Errorf("Gold.CSS() = %q", got)
	}
	translucent := Color{R: 1, G: 0, B: 0, A: 0.5}
	if got := translucent.CSS(); got != "rgba(255,0,0,0.5)" {
		t.Errorf("translucent CSS = %q", got)
	}
}

func TestChannelClamping(t *testing.T) {
	c := Color{R: -1, G: 2, B: 0.5, A: 1}
	if got := c.Hex(); got != "#00ff80" {
		t.Errorf("out-of-range components should clamp, got %q", got)
	}
}
