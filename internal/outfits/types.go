// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package outfits

import (
	"time"

	"github.com/tomtom215/stylehaus/internal/match"
)

// Outfit is one scored combination of wardrobe items.
type Outfit struct {
	// Items are the garments making up the outfit.
	Items []match.ClothingItem `json:"items"`

	// Score is the mean pairwise compatibility of the items in [0, 1].
	Score float64 `json:"score"`

	// OccasionFit is the mean per-item occasion fit (0.5 without an occasion).
	OccasionFit float64 `json:"occasion_fit"`

	// FormalityMatch is set when a formality level was requested.
	FormalityMatch *float64 `json:"formality_match,omitempty"`

	// Reasons explain why the outfit was suggested.
	Reasons []string `json:"reasons"`
}

// GenerateRequest asks for outfit ideas from a wardrobe.
type GenerateRequest struct {
	// Wardrobe is the item pool.
	Wardrobe []match.ClothingItem `json:"wardrobe"`

	// Occasion optionally focuses generation on an occasion.
	Occasion string `json:"occasion,omitempty"`

	// Formality optionally requests a dress code match score per outfit.
	Formality FormalityLevel `json:"formality,omitempty"`

	// Profile optionally applies user preferences to pair scoring.
	Profile *match.PreferenceProfile `json:"profile,omitempty"`

	// Limit caps the number of outfits returned. Zero means all that pass
	// the score threshold.
	Limit int `json:"limit,omitempty"`
}

// PlanRequest asks for a multi-day outfit plan.
type PlanRequest struct {
	// Wardrobe is the item pool for the whole event.
	Wardrobe []match.ClothingItem `json:"wardrobe"`

	// Occasion is the event's occasion.
	Occasion string `json:"occasion,omitempty"`

	// Formality optionally requests a dress code match score per outfit.
	Formality FormalityLevel `json:"formality,omitempty"`

	// Profile optionally applies user preferences.
	Profile *match.PreferenceProfile `json:"profile,omitempty"`

	// StartDate is the first day of the event.
	StartDate time.Time `json:"start_date"`

	// Days is the number of days to plan.
	Days int `json:"days"`
}

// Plan maps day keys ("day_1_2026-08-29") to that day's outfit options.
type Plan map[string][]Outfit
