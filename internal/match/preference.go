// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"math"
	"strings"
)

// PreferenceScore scores an item pair against a user's preferences.
//
// The score starts neutral at 0.5 and moves with the profile: +0.2 when
// either item uses a preferred color, +0.2 for a preferred style, and
// -penalty when an avoided color appears. The result is clamped to
// [0, 1]. A nil profile is neutral.
func PreferenceScore(a, b *ClothingItem, profile *PreferenceProfile, penalty float64) float64 {
	if profile == nil {
		return 0.5
	}

	score := 0.5
	colors := append(append([]string{}, a.Colors...), b.Colors...)
	styles := []string{a.Style, b.Style}

	if anyColorIn(colors, profile.PreferredColors) {
		score += 0.2
	}
	if anyStyleIn(styles, profile.PreferredStyles) {
		score += 0.2
	}
	if anyColorIn(colors, profile.AvoidedColors) {
		score -= penalty
	}

	return clamp01(score)
}

// PreferenceBoost computes the additive boost an item earns from a
// profile when ranking suggestions for an occasion.
//
// General preferences contribute 0.05 each; occasion-specific color and
// style preferences contribute 0.10 each. The boost is capped at 1.0.
// An empty profile yields exactly 0.0.
func PreferenceBoost(item *ClothingItem, profile *PreferenceProfile, occasion string) float64 {
	if profile == nil {
		return 0.0
	}

	var boost float64
	if anyColorIn(item.Colors, profile.PreferredColors) {
		boost += 0.05
	}
	if anyStyleIn([]string{item.Style}, profile.PreferredStyles) {
		boost += 0.05
	}

	key := strings.ToLower(strings.TrimSpace(occasion))
	if key != "" {
		if anyColorIn(item.Colors, profile.OccasionColors[key]) {
			boost += 0.10
		}
		if anyStyleIn([]string{item.Style}, profile.OccasionStyles[key]) {
			boost += 0.10
		}
	}

	return math.Min(boost, 1.0)
}

// anyColorIn reports whether any of colors appears in wanted,
// compared case-insensitively.
func anyColorIn(colors, wanted []string) bool {
	if len(wanted) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(wanted))
	for _, w := range wanted {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for _, c := range colors {
		if _, ok := set[strings.ToLower(strings.TrimSpace(c))]; ok {
			return true
		}
	}
	return false
}

// anyStyleIn reports whether any of styles appears in wanted.
func anyStyleIn(styles, wanted []string) bool {
	if len(wanted) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(wanted))
	for _, w := range wanted {
		set[normalizeStyle(w)] = struct{}{}
	}
	for _, s := range styles {
		if _, ok := set[normalizeStyle(s)]; ok {
			return true
		}
	}
	return false
}
