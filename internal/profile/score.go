// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package profile

import (
	"fmt"
	"sort"

	"github.com/tomtom215/stylehaus/internal/match"
)

// Personalized score component weights.
const (
	colorWeight      = 0.25
	styleWeight      = 0.25
	categoryWeight   = 0.15
	occasionWeight   = 0.20
	similarityWeight = 0.15
)

// recommendThreshold is the minimum personalized score for a suggestion.
const recommendThreshold = 0.3

// defaultRecommendLimit caps suggestions when the caller passes no limit.
const defaultRecommendLimit = 5

// PersonalizedScore rates an item against a taste profile in [0, 1].
// Components: how much of the user's color and style frequency the item
// covers, its category share of the wardrobe, what the user wears for the
// occasion (60% style, 40% color), and embedding similarity to an optional
// target item.
func PersonalizedScore(item match.ClothingItem, prefs Preferences, target *match.ClothingItem, occasion string) float64 {
	score := 0.0

	var colorScore float64
	for _, color := range item.Colors {
		colorScore += prefs.Colors[color]
	}
	score += colorScore * colorWeight

	score += prefs.Styles[itemStyle(item)] * styleWeight
	score += prefs.Categories[itemCategory(item)] * categoryWeight

	if occasion != "" {
		if pattern, ok := prefs.Occasions[occasion]; ok {
			var occasionColors float64
			for _, color := range item.Colors {
				occasionColors += pattern.Colors[color]
			}
			occasionScore := pattern.Styles[itemStyle(item)]*0.6 + occasionColors*0.4
			score += occasionScore * occasionWeight
		}
	}

	if target != nil && len(target.Embedding) > 0 && len(item.Embedding) > 0 {
		score += match.EmbeddingSimilarity(target.Embedding, item.Embedding) * similarityWeight
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Recommend ranks available items by personalized score, best first.
// Items scoring at or below the recommendation threshold are dropped.
func Recommend(available []match.ClothingItem, prefs Preferences, target *match.ClothingItem, occasion string, limit int) []Recommendation {
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	recommendations := make([]Recommendation, 0, len(available))
	for _, item := range available {
		score := PersonalizedScore(item, prefs, target, occasion)
		if score <= recommendThreshold {
			continue
		}
		recommendations = append(recommendations, Recommendation{
			Item:    item,
			Score:   score,
			Reasons: recommendationReasons(item, prefs, target, occasion),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}

func recommendationReasons(item match.ClothingItem, prefs Preferences, target *match.ClothingItem, occasion string) []string {
	var reasons []string

	for _, color := range item.Colors {
		if prefs.Colors[color] > 0.1 {
			reasons = append(reasons, "Matches your preferred colors")
			break
		}
	}

	style := itemStyle(item)
	if prefs.Styles[style] > 0.2 {
		reasons = append(reasons, fmt.Sprintf("Fits your %s style preference", style))
	}

	if occasion != "" {
		if _, ok := prefs.Occasions[occasion]; ok {
			reasons = append(reasons, fmt.Sprintf("Perfect for %s occasions", occasion))
		}
	}

	if target != nil {
		name := target.Name
		if name == "" {
			name = "selected item"
		}
		reasons = append(reasons, fmt.Sprintf("Complements your %s", name))
	}

	if len(reasons) == 0 {
		reasons = []string{"Recommended based on your profile"}
	}
	return reasons
}

// ToPreferenceProfile converts analyzed preferences into the explicit
// profile the match engine understands. Colors above a 0.1 share and
// styles above 0.2 become declared preferences; occasion patterns carry
// over with the same cutoffs.
func (p Preferences) ToPreferenceProfile() *match.PreferenceProfile {
	profile := &match.PreferenceProfile{
		PreferredColors: keysAbove(p.Colors, 0.1),
		PreferredStyles: keysAbove(p.Styles, 0.2),
	}

	if len(p.Occasions) > 0 {
		profile.OccasionColors = make(map[string][]string, len(p.Occasions))
		profile.OccasionStyles = make(map[string][]string, len(p.Occasions))
		for occasion, pattern := range p.Occasions {
			if colors := keysAbove(pattern.Colors, 0.1); len(colors) > 0 {
				profile.OccasionColors[occasion] = colors
			}
			if styles := keysAbove(pattern.Styles, 0.2); len(styles) > 0 {
				profile.OccasionStyles[occasion] = styles
			}
		}
	}

	return profile
}

// keysAbove returns the keys whose value exceeds the cutoff, sorted for
// stable output.
func keysAbove(m map[string]float64, cutoff float64) []string {
	keys := make([]string, 0, len(m))
	for key, value := range m {
		if value > cutoff {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
