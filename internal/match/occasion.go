// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"math"
	"sort"
	"strings"
)

// OccasionProfile describes the expectations for one occasion.
type OccasionProfile struct {
	// Name is the occasion key (wedding, work, ...).
	Name string `json:"name"`

	// PreferredStyles score 0.9 for this occasion.
	PreferredStyles []string `json:"preferred_styles"`

	// AvoidStyles score 0.2 for this occasion.
	AvoidStyles []string `json:"avoid_styles"`

	// Formality is the occasion's formality level in [0, 1]. Styles that
	// are neither preferred nor avoided are scored by formality distance.
	Formality float64 `json:"formality"`
}

// occasionProfiles is the canonical occasion catalog.
var occasionProfiles = map[string]OccasionProfile{
	"wedding": {
		Name:            "wedding",
		PreferredStyles: []string{"formal", "elegant", "classic"},
		AvoidStyles:     []string{"casual", "sporty"},
		Formality:       0.9,
	},
	"church": {
		Name:            "church",
		PreferredStyles: []string{"formal", "business", "classic", "elegant"},
		AvoidStyles:     []string{"casual", "sporty", "revealing"},
		Formality:       0.8,
	},
	"home": {
		Name:            "home",
		PreferredStyles: []string{"casual", "comfortable", "relaxed"},
		AvoidStyles:     []string{"formal", "business"},
		Formality:       0.2,
	},
	"casual": {
		Name:            "casual",
		PreferredStyles: []string{"casual", "smart-casual", "trendy"},
		AvoidStyles:     []string{"formal", "business"},
		Formality:       0.3,
	},
	"work": {
		Name:            "work",
		PreferredStyles: []string{"business", "formal", "smart-casual", "classic"},
		AvoidStyles:     []string{"casual", "sporty"},
		Formality:       0.7,
	},
	"date": {
		Name:            "date",
		PreferredStyles: []string{"smart-casual", "elegant", "trendy", "classic"},
		AvoidStyles:     []string{"sporty", "too-casual"},
		Formality:       0.6,
	},
	"party": {
		Name:            "party",
		PreferredStyles: []string{"trendy", "elegant", "fun", "stylish"},
		AvoidStyles:     []string{"business", "too-formal"},
		Formality:       0.5,
	},
}

// OccasionScore scores how well a style fits an occasion.
//
// Unknown occasions are neutral (exactly 0.5). Preferred styles score
// 0.9, avoided styles 0.2, and everything else is scored by formality
// distance with a floor of 0.3.
func OccasionScore(style, occasion string) float64 {
	profile, ok := occasionProfiles[strings.ToLower(strings.TrimSpace(occasion))]
	if !ok {
		return 0.5
	}

	s := normalizeStyle(style)
	if containsString(profile.PreferredStyles, s) {
		return 0.9
	}
	if containsString(profile.AvoidStyles, s) {
		return 0.2
	}

	diff := math.Abs(StyleFormality(s) - profile.Formality)
	return math.Max(0.3, 1.0-diff)
}

// LookupOccasion returns the profile for an occasion, if known.
func LookupOccasion(name string) (OccasionProfile, bool) {
	profile, ok := occasionProfiles[strings.ToLower(strings.TrimSpace(name))]
	return profile, ok
}

// Occasions returns the occasion catalog sorted by name.
func Occasions() []OccasionProfile {
	out := make([]OccasionProfile, 0, len(occasionProfiles))
	for _, p := range occasionProfiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// containsString reports whether list contains s.
func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
