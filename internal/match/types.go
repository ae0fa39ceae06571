// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"strings"
)

// Category identifies a garment category. Categories are normalized to
// lowercase on input; the constants below are the canonical values.
type Category string

// Canonical garment categories.
const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryShoes       Category = "shoes"
	CategoryOuterwear   Category = "outerwear"
	CategoryDresses     Category = "dresses"
	CategoryAccessories Category = "accessories"
)

// NormalizeCategory lowercases and trims a category value.
func NormalizeCategory(c string) Category {
	return Category(strings.ToLower(strings.TrimSpace(c)))
}

// ClothingItem represents a single wardrobe item to be scored.
type ClothingItem struct {
	// ID uniquely identifies the item.
	ID string `json:"id"`

	// Name is the display name ("Navy blazer").
	Name string `json:"name"`

	// Category is the garment category (tops, bottoms, shoes, ...).
	Category Category `json:"category"`

	// Colors holds hex color strings ("#1a2b3c"). Malformed values are
	// scored as mid gray rather than rejected.
	Colors []string `json:"colors"`

	// Style is the item's style label (casual, formal, ...).
	Style string `json:"style"`

	// Brand is optional and only used for preference analysis.
	Brand string `json:"brand,omitempty"`

	// Occasions optionally tags occasions the item was bought or worn for.
	Occasions []string `json:"occasions,omitempty"`

	// Embedding is an optional externally computed feature vector.
	// Embeddings are accepted as input only, never computed here.
	Embedding []float64 `json:"embedding,omitempty"`
}

// PreferenceProfile captures a user's learned or declared taste. A nil
// profile is always legal; scoring then falls back to neutral values.
type PreferenceProfile struct {
	// PreferredColors and PreferredStyles raise the preference score.
	PreferredColors []string `json:"preferred_colors,omitempty"`
	PreferredStyles []string `json:"preferred_styles,omitempty"`

	// AvoidedColors lower the preference score.
	AvoidedColors []string `json:"avoided_colors,omitempty"`

	// OccasionColors and OccasionStyles hold per-occasion preferences,
	// keyed by occasion name. Used by the suggestion boost.
	OccasionColors map[string][]string `json:"occasion_colors,omitempty"`
	OccasionStyles map[string][]string `json:"occasion_styles,omitempty"`
}

// CompatibilityResult is the outcome of scoring a pair of items.
// All scores are in [0, 1].
type CompatibilityResult struct {
	// Score is the weighted composite of the component scores.
	Score float64 `json:"score"`

	// Component scores, before weighting.
	ColorScore      float64 `json:"color_score"`
	StyleScore      float64 `json:"style_score"`
	CategoryScore   float64 `json:"category_score"`
	OccasionScore   float64 `json:"occasion_score"`
	PreferenceScore float64 `json:"preference_score"`

	// Reasons are human-readable explanations for the score.
	Reasons []string `json:"reasons"`
}

// ScoreRequest asks for a composite score of one item pair.
type ScoreRequest struct {
	// A and B are the items to score. Order does not affect the result.
	A ClothingItem `json:"a"`
	B ClothingItem `json:"b"`

	// Occasion optionally scores both items against an occasion.
	// When empty the occasion component is neutral (1.0).
	Occasion string `json:"occasion,omitempty"`

	// Profile optionally applies user preferences.
	Profile *PreferenceProfile `json:"profile,omitempty"`
}

// SuggestionRequest asks for ranked matches for one item against a wardrobe.
type SuggestionRequest struct {
	// Item is the anchor item.
	Item ClothingItem `json:"item"`

	// Wardrobe is the candidate pool. The anchor itself and items sharing
	// its ID are excluded from results.
	Wardrobe []ClothingItem `json:"wardrobe"`

	// Occasion optionally focuses suggestions on an occasion.
	Occasion string `json:"occasion,omitempty"`

	// Profile optionally applies user preferences.
	Profile *PreferenceProfile `json:"profile,omitempty"`

	// Limit caps the number of suggestions. Zero means the engine default.
	Limit int `json:"limit,omitempty"`

	// Threshold overrides the engine's match threshold when positive.
	Threshold float64 `json:"threshold,omitempty"`
}

// Suggestion is one ranked match result.
type Suggestion struct {
	// Item is the matched wardrobe item.
	Item ClothingItem `json:"item"`

	// Result holds the scores and reasons for the pairing.
	Result CompatibilityResult `json:"result"`
}

// normalizeStyle lowercases and trims a style label.
func normalizeStyle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
