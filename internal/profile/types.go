// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package profile

import (
	"time"

	"github.com/tomtom215/stylehaus/internal/match"
)

// OutfitRecord is one worn outfit from a user's history.
type OutfitRecord struct {
	// Date is when the outfit was worn. Used for seasonal analysis; a zero
	// date excludes the record from it.
	Date time.Time `json:"date,omitempty"`

	// Occasion the outfit was worn for. Defaults to "casual".
	Occasion string `json:"occasion,omitempty"`

	// Items are the garments worn together.
	Items []match.ClothingItem `json:"items"`
}

// BehaviorData is the raw input for preference analysis.
type BehaviorData struct {
	// WardrobeItems is everything the user owns.
	WardrobeItems []match.ClothingItem `json:"wardrobe_items"`

	// OutfitHistory holds outfits the user actually wore. Worn items count
	// more than merely owned ones.
	OutfitHistory []OutfitRecord `json:"outfit_history,omitempty"`
}

// OccasionPattern holds what a user tends to wear for one occasion.
// All maps are normalized frequency distributions.
type OccasionPattern struct {
	Styles     map[string]float64 `json:"styles"`
	Colors     map[string]float64 `json:"colors"`
	Categories map[string]float64 `json:"categories"`
}

// Preferences is the analyzed taste profile. Every map value is a
// normalized frequency in [0, 1]; absent keys mean no signal.
type Preferences struct {
	// Colors and Styles are weighted by wear frequency: a color worn in an
	// outfit counts double an owned one, a style triple.
	Colors map[string]float64 `json:"color_preferences"`
	Styles map[string]float64 `json:"style_preferences"`

	// Categories reflect wardrobe composition only.
	Categories map[string]float64 `json:"category_preferences"`

	// Occasions maps occasion names to what the user wears for them.
	Occasions map[string]OccasionPattern `json:"occasion_patterns"`

	// Seasons maps season names to worn category distributions.
	Seasons map[string]map[string]float64 `json:"seasonal_preferences"`

	// Brands reflect owned items with a brand set.
	Brands map[string]float64 `json:"brand_preferences"`
}

// Recommendation is one personalized item suggestion.
type Recommendation struct {
	// Item is the suggested garment.
	Item match.ClothingItem `json:"item"`

	// Score is the personalized fit in [0, 1].
	Score float64 `json:"score"`

	// Reasons explain the suggestion.
	Reasons []string `json:"reasons"`
}
