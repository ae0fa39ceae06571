// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColorTemperature classifies a color as warm, cool, or neutral.
type ColorTemperature string

// Color temperature classes.
const (
	TemperatureWarm    ColorTemperature = "warm"
	TemperatureCool    ColorTemperature = "cool"
	TemperatureNeutral ColorTemperature = "neutral"
)

// Palette holds colors derived from a base color on the hue circle.
type Palette struct {
	Base          string   `json:"base"`
	Complementary string   `json:"complementary"`
	Analogous     []string `json:"analogous"`
	Triadic       []string `json:"triadic"`
}

// hsv is a color in hue/saturation/value space.
// Hue is in degrees [0, 360); saturation and value are in [0, 1].
type hsv struct {
	h, s, v float64
}

// parseHexColor converts "#rrggbb" to RGB components.
// Malformed input falls back to mid gray so a single bad color does not
// poison a whole wardrobe scan.
func parseHexColor(c string) (r, g, b uint8) {
	s := strings.TrimPrefix(strings.TrimSpace(c), "#")
	if len(s) != 6 {
		return 128, 128, 128
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 128, 128, 128
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// rgbToHSV converts RGB components to HSV.
func rgbToHSV(r, g, b uint8) hsv {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	var h float64
	switch {
	case delta == 0:
		h = 0
	case maxC == rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case maxC == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if maxC > 0 {
		s = delta / maxC
	}

	return hsv{h: h, s: s, v: maxC}
}

// hsvToHex converts an HSV color back to a "#rrggbb" string.
func hsvToHex(c hsv) string {
	h := math.Mod(c.h, 360)
	if h < 0 {
		h += 360
	}

	chroma := c.v * c.s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := c.v - chroma

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = chroma, x, 0
	case h < 120:
		rf, gf, bf = x, chroma, 0
	case h < 180:
		rf, gf, bf = 0, chroma, x
	case h < 240:
		rf, gf, bf = 0, x, chroma
	case h < 300:
		rf, gf, bf = x, 0, chroma
	default:
		rf, gf, bf = chroma, 0, x
	}

	r := uint8(math.Round((rf + m) * 255))
	g := uint8(math.Round((gf + m) * 255))
	b := uint8(math.Round((bf + m) * 255))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// colorToHSV parses a hex color straight into HSV.
func colorToHSV(c string) hsv {
	r, g, b := parseHexColor(c)
	return rgbToHSV(r, g, b)
}

// hueDistance returns the shortest distance between two hues on the
// 360-degree circle, in [0, 180].
func hueDistance(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	return math.Min(d, 360-d)
}

// PairHarmony scores the harmony of two colors in [0, 1].
//
// Rules are applied in priority order:
//   - a near-neutral color (saturation < 0.2) pairs with anything: 0.95
//   - monochromatic (hue distance < 15): 0.90
//   - analogous (< 60): 0.85
//   - complementary (150 to 210): 0.70 scaled by saturation balance
//   - triadic (100 to 140): 0.65
//   - loose contrast (120 to 180): 0.60
//   - anything else: 0.50
func PairHarmony(c1, c2 string) float64 {
	a := colorToHSV(c1)
	b := colorToHSV(c2)

	if a.s < 0.2 || b.s < 0.2 {
		return 0.95
	}

	diff := hueDistance(a.h, b.h)
	switch {
	case diff < 15:
		return 0.90
	case diff < 60:
		return 0.85
	case diff >= 150 && diff <= 210:
		return 0.70 * (1 - math.Abs(a.s-b.s))
	case diff >= 100 && diff <= 140:
		return 0.65
	case diff >= 120 && diff <= 180:
		return 0.60
	default:
		return 0.50
	}
}

// GroupHarmony scores how well a set of colors works together: the mean
// pair harmony over all unordered pairs of distinct colors. A group with
// one distinct color (or none) is perfectly harmonious.
func GroupHarmony(colors []string) float64 {
	distinct := dedupeColors(colors)
	if len(distinct) <= 1 {
		return 1.0
	}

	var total float64
	var pairs int
	for i := 0; i < len(distinct); i++ {
		for j := i + 1; j < len(distinct); j++ {
			total += PairHarmony(distinct[i], distinct[j])
			pairs++
		}
	}
	return total / float64(pairs)
}

// dedupeColors removes duplicate colors, comparing case-insensitively,
// while preserving first-seen order.
func dedupeColors(colors []string) []string {
	seen := make(map[string]struct{}, len(colors))
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Temperature classifies the color temperature of a hex color.
// Near-neutral colors (saturation < 0.2) are neutral regardless of hue.
func Temperature(color string) ColorTemperature {
	c := colorToHSV(color)
	if c.s < 0.2 {
		return TemperatureNeutral
	}
	switch {
	case c.h <= 60 || c.h >= 300:
		return TemperatureWarm
	case c.h >= 180 && c.h < 300:
		return TemperatureCool
	default:
		return TemperatureNeutral
	}
}

// ComplementaryPalette derives companion colors for a base color:
// the complementary hue, two analogous hues, and the triadic pair.
func ComplementaryPalette(base string) Palette {
	c := colorToHSV(base)
	return Palette{
		Base:          base,
		Complementary: hsvToHex(hsv{h: c.h + 180, s: c.s, v: c.v}),
		Analogous: []string{
			hsvToHex(hsv{h: c.h - 30, s: c.s, v: c.v}),
			hsvToHex(hsv{h: c.h + 30, s: c.s, v: c.v}),
		},
		Triadic: []string{
			hsvToHex(hsv{h: c.h + 120, s: c.s, v: c.v}),
			hsvToHex(hsv{h: c.h + 240, s: c.s, v: c.v}),
		},
	}
}
