// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

// styleAdjacency is the canonical style compatibility table. Adjacency
// is checked in both directions, so entries do not need to be mirrored.
var styleAdjacency = map[string][]string{
	"casual":       {"casual", "smart-casual", "sporty", "bohemian"},
	"formal":       {"formal", "business", "elegant", "classic"},
	"business":     {"business", "formal", "smart-casual", "classic"},
	"smart-casual": {"smart-casual", "casual", "business", "classic"},
	"sporty":       {"sporty", "casual", "athleisure"},
	"bohemian":     {"bohemian", "casual", "vintage", "artistic"},
	"vintage":      {"vintage", "classic", "bohemian", "retro"},
	"elegant":      {"elegant", "formal", "classic", "sophisticated"},
	"classic":      {"classic", "formal", "business", "elegant", "smart-casual"},
	"trendy":       {"trendy", "casual", "smart-casual", "modern"},
	"artistic":     {"artistic", "bohemian", "creative", "unique"},
	"minimalist":   {"minimalist", "classic", "modern", "clean"},
}

// styleFormality maps styles to a formality level in [0, 1].
// Unknown styles sit in the middle.
var styleFormality = map[string]float64{
	"formal":       0.9,
	"business":     0.8,
	"elegant":      0.85,
	"classic":      0.7,
	"smart-casual": 0.5,
	"casual":       0.3,
	"sporty":       0.2,
	"bohemian":     0.4,
	"trendy":       0.5,
	"artistic":     0.4,
	"minimalist":   0.6,
}

// StyleCompatibility scores how well two styles combine.
// Identical styles score 1.0, adjacent styles 0.8, and everything else
// gets a floor of 0.3 so no pairing is scored as impossible.
func StyleCompatibility(style1, style2 string) float64 {
	s1 := normalizeStyle(style1)
	s2 := normalizeStyle(style2)

	if s1 == s2 {
		return 1.0
	}
	if styleAdjacent(s1, s2) || styleAdjacent(s2, s1) {
		return 0.8
	}
	return 0.3
}

// styleAdjacent reports whether b appears in a's adjacency list.
func styleAdjacent(a, b string) bool {
	for _, s := range styleAdjacency[a] {
		if s == b {
			return true
		}
	}
	return false
}

// StyleFormality returns the formality level of a style in [0, 1].
// Unknown styles return 0.5.
func StyleFormality(style string) float64 {
	if f, ok := styleFormality[normalizeStyle(style)]; ok {
		return f
	}
	return 0.5
}
