// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

// requests.go - API request structures with validation tags
//
// Validation uses go-playground/validator via internal/validation. Item
// contents are deliberately loose: malformed colors score as mid gray and
// unknown styles fall back to formality distance, matching the scoring
// engine's tolerance.
package api

import (
	"time"

	"github.com/tomtom215/stylehaus/internal/match"
	"github.com/tomtom215/stylehaus/internal/profile"
)

// ScoreRequest asks for the compatibility score of one item pair.
type ScoreRequest struct {
	A        match.ClothingItem       `json:"a"`
	B        match.ClothingItem       `json:"b"`
	Occasion string                   `json:"occasion,omitempty" validate:"omitempty,max=50"`
	Profile  *match.PreferenceProfile `json:"profile,omitempty"`
}

// SuggestionsRequest asks for ranked matches for an item against a wardrobe.
type SuggestionsRequest struct {
	Item      match.ClothingItem       `json:"item"`
	Wardrobe  []match.ClothingItem     `json:"wardrobe" validate:"required,min=1"`
	Occasion  string                   `json:"occasion,omitempty" validate:"omitempty,max=50"`
	Profile   *match.PreferenceProfile `json:"profile,omitempty"`
	Limit     int                      `json:"limit,omitempty" validate:"min=0,max=50"`
	Threshold float64                  `json:"threshold,omitempty" validate:"min=0,max=1"`
}

// GenerateOutfitsRequest asks for outfit ideas from a wardrobe.
type GenerateOutfitsRequest struct {
	Wardrobe  []match.ClothingItem     `json:"wardrobe" validate:"required,min=1"`
	Occasion  string                   `json:"occasion,omitempty" validate:"omitempty,max=50"`
	Formality string                   `json:"formality,omitempty" validate:"omitempty,oneof=very_casual casual smart_casual business formal black_tie"`
	Profile   *match.PreferenceProfile `json:"profile,omitempty"`
	Limit     int                      `json:"limit,omitempty" validate:"min=0,max=50"`
}

// PlanOutfitsRequest asks for a multi-day event plan.
type PlanOutfitsRequest struct {
	Wardrobe  []match.ClothingItem     `json:"wardrobe" validate:"required,min=1"`
	Occasion  string                   `json:"occasion,omitempty" validate:"omitempty,max=50"`
	Formality string                   `json:"formality,omitempty" validate:"omitempty,oneof=very_casual casual smart_casual business formal black_tie"`
	Profile   *match.PreferenceProfile `json:"profile,omitempty"`
	StartDate time.Time                `json:"start_date"`
	Days      int                      `json:"days" validate:"required,min=1,max=30"`
}

// FormalityRequest asks how well an outfit hits a dress code.
type FormalityRequest struct {
	Items     []match.ClothingItem `json:"items" validate:"required,min=1"`
	Formality string               `json:"formality" validate:"required,oneof=very_casual casual smart_casual business formal black_tie"`
}

// GapsRequest asks for a wardrobe gap analysis.
type GapsRequest struct {
	Wardrobe []match.ClothingItem `json:"wardrobe"`
}

// PaletteRequest asks for color harmony suggestions around a base color.
type PaletteRequest struct {
	BaseColor string `json:"base_color" validate:"required,hexcolor"`
}

// AnalyzeProfileRequest submits behavior data for preference analysis.
type AnalyzeProfileRequest struct {
	WardrobeItems []match.ClothingItem   `json:"wardrobe_items" validate:"required,min=1"`
	OutfitHistory []profile.OutfitRecord `json:"outfit_history,omitempty"`
}

// RecommendRequest asks for personalized item suggestions. Behavior data
// is analyzed on the fly and the available items ranked against it.
type RecommendRequest struct {
	WardrobeItems []match.ClothingItem   `json:"wardrobe_items" validate:"required,min=1"`
	OutfitHistory []profile.OutfitRecord `json:"outfit_history,omitempty"`
	Available     []match.ClothingItem   `json:"available" validate:"required,min=1"`
	Target        *match.ClothingItem    `json:"target,omitempty"`
	Occasion      string                 `json:"occasion,omitempty" validate:"omitempty,max=50"`
	Limit         int                    `json:"limit,omitempty" validate:"min=0,max=50"`
}
