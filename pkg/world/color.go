package world

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA color with components in [0, 1].
// The zero value is fully transparent black; constructors default alpha to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Common agent colors, matching the defaults the layout generator assigns.
var (
	Gold   = RGB(1, 0.84, 0) // leaders
	Blue   = RGB(0, 0, 1)    // teachers
	Green  = RGB(0, 1, 0)    // students
	Yellow = RGB(1, 1, 0)    // crown spikes
	White  = RGB(1, 1, 1)    // labels
)

// ParseColor parses a hex color string of the form "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want RRGGBB or RRGGBBAA", s)
	}

	parse := func(part string) (float64, error) {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return float64(v) / 255, nil
	}

	var c Color
	var err error
	if c.R, err = parse(hex[0:2]); err != nil {
		return Color{}, err
	}
	if c.G, err = parse(hex[2:4]); err != nil {
		return Color{}, err
	}
	if c.B, err = parse(hex[4:6]); err != nil {
		return Color{}, err
	}
	c.A = 1
	if len(hex) == 8 {
		if c.A, err = parse(hex[6:8]); err != nil {
			return Color{}, err
		}
	}
	return c, nil
}

// Hex returns the color as "#RRGGBB" (alpha is dropped).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// CSS returns the color as a CSS color function, using rgba() only when
// the color is not fully opaque.
func (c Color) CSS() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d,%d,%d)", channel(c.R), channel(c.G), channel(c.B))
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", channel(c.R), channel(c.G), channel(c.B), c.A)
}

// channel converts a [0,1] component to an 8-bit value, clamping out-of-range input.
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
